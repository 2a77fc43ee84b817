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

// Package constants defines global constants used across the system module.
package constants

const (
	// LogLevelEnvironmentVariable is the environment variable name for the log level.
	LogLevelEnvironmentVariable = "CERTCAMPAIGN_LOG_LEVEL"
	// DefaultLogLevel is the default log level used if not specified.
	DefaultLogLevel = "info"
)

// Environment variables read at startup.
const (
	// BaseURLEnvironmentVariable overrides the tenant API base URL.
	BaseURLEnvironmentVariable = "CERTCAMPAIGN_BASE_URL"
	// AuthModeEnvironmentVariable overrides the authentication mode.
	AuthModeEnvironmentVariable = "CERTCAMPAIGN_AUTH_MODE"
	// TimeZoneEnvironmentVariable overrides the campaign activation time zone.
	TimeZoneEnvironmentVariable = "CERTCAMPAIGN_TIME_ZONE"
	// ClientIDEnvironmentVariable holds the OAuth client id.
	ClientIDEnvironmentVariable = "CERTCAMPAIGN_CLIENT_ID"
	// ClientSecretEnvironmentVariable holds the OAuth client secret.
	ClientSecretEnvironmentVariable = "CERTCAMPAIGN_CLIENT_SECRET" //nolint:gosec
	// AccessTokenEnvironmentVariable holds a pre-issued bearer token for the static token mode.
	AccessTokenEnvironmentVariable = "CERTCAMPAIGN_ACCESS_TOKEN" //nolint:gosec
)

// AuthorizationHeaderName is the name of the authorization header used in HTTP requests.
const AuthorizationHeaderName = "Authorization"

// AcceptHeaderName is the name of the accept header used in HTTP requests.
const AcceptHeaderName = "Accept"

// ContentTypeHeaderName is the name of the content type header used in HTTP requests.
const ContentTypeHeaderName = "Content-Type"

// RequestIDHeaderName is the name of the header carrying the run correlation id.
const RequestIDHeaderName = "X-Request-ID"

// TokenTypeBearer is the token type used in bearer authentication.
const TokenTypeBearer = "Bearer"

// ContentTypeJSON is the content type for JSON data.
const ContentTypeJSON = "application/json"

// ContentTypeFormURLEncoded is the content type for form-urlencoded data.
const ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"

// MaxErrorBodySize caps the number of response bytes kept for error reporting.
const MaxErrorBodySize = 4096

// MaxResponseBodySize caps the number of response bytes read from the platform API.
const MaxResponseBodySize = 10 << 20
