/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package constants defines the OAuth 2.0 constants used by the token providers.
package constants

// OAuth2 request parameters.
const (
	RequestParamGrantType    = "grant_type"
	RequestParamClientID     = "client_id"
	RequestParamClientSecret = "client_secret"
)

// GrantType defines a type for OAuth2 grant types.
type GrantType string

// OAuth2 grant types.
const (
	GrantTypeClientCredentials GrantType = "client_credentials"
)

// OAuth2 response fields.
const (
	ResponseFieldError            = "error"
	ResponseFieldErrorDescription = "error_description"
)
