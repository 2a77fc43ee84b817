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

package token

import "github.com/asgardeo/certcampaign/internal/system/error/serviceerror"

// Errors returned by the token providers.
var (
	// ErrorMissingClientCredentials is the error when the client id or secret is empty.
	ErrorMissingClientCredentials = serviceerror.ServiceError{
		Type:             serviceerror.ConfigErrorType,
		Code:             "AUTH-1001",
		Error:            "Missing client credentials",
		ErrorDescription: "The client id and client secret are required for the client credentials mode",
	}
	// ErrorMissingStaticToken is the error when the static token mode has no token to use.
	ErrorMissingStaticToken = serviceerror.ServiceError{
		Type:             serviceerror.AuthErrorType,
		Code:             "AUTH-1002",
		Error:            "Missing access token",
		ErrorDescription: "The static token mode requires the CERTCAMPAIGN_ACCESS_TOKEN environment variable",
	}
	// ErrorTokenRequestFailed is the error when the token endpoint cannot be reached.
	ErrorTokenRequestFailed = serviceerror.ServiceError{
		Type:             serviceerror.AuthErrorType,
		Code:             "AUTH-1003",
		Error:            "Token request failed",
		ErrorDescription: "The token endpoint could not be reached",
	}
	// ErrorTokenRequestRejected is the error when the token endpoint answers with a non 200 status.
	ErrorTokenRequestRejected = serviceerror.ServiceError{
		Type:             serviceerror.AuthErrorType,
		Code:             "AUTH-1004",
		Error:            "Token request rejected",
		ErrorDescription: "The token endpoint rejected the client credentials",
	}
	// ErrorInvalidTokenResponse is the error when the token response cannot be used.
	ErrorInvalidTokenResponse = serviceerror.ServiceError{
		Type:             serviceerror.AuthErrorType,
		Code:             "AUTH-1005",
		Error:            "Invalid token response",
		ErrorDescription: "The token response does not contain an access token",
	}
	// ErrorUnsupportedAuthMode is the error when the configured authentication mode is unknown.
	ErrorUnsupportedAuthMode = serviceerror.ServiceError{
		Type:             serviceerror.ConfigErrorType,
		Code:             "AUTH-1006",
		Error:            "Unsupported authentication mode",
		ErrorDescription: "The configured authentication mode is not supported",
	}
)
