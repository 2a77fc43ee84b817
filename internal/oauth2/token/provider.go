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

// Package token provides the bearer token providers used to authenticate against the identity platform.
package token

import (
	"context"
	"os"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/asgardeo/certcampaign/internal/system/config"
	"github.com/asgardeo/certcampaign/internal/system/constants"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
	httpservice "github.com/asgardeo/certcampaign/internal/system/http"
	"github.com/asgardeo/certcampaign/internal/system/log"
)

const loggerComponentName = "TokenProvider"

// TokenProviderInterface defines the contract for obtaining the bearer token of a run.
type TokenProviderInterface interface {
	GetToken(ctx context.Context) (*oauth2.Token, *serviceerror.ServiceError)
}

// Credentials holds the client credentials of the credential based mode.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// NewTokenProvider returns the token provider for the configured authentication mode.
func NewTokenProvider(cfg *config.Config, credentials Credentials,
	httpClient httpservice.HTTPClientInterface) (TokenProviderInterface, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(zap.String(log.LoggerKeyComponentName, loggerComponentName))

	switch cfg.Auth.Mode {
	case config.AuthModeStaticToken:
		logger.Debug("Using the static token provider")
		return NewStaticTokenProvider(os.Getenv(constants.AccessTokenEnvironmentVariable)), nil
	case config.AuthModeClientCredentials:
		logger.Debug("Using the client credentials token provider",
			zap.String("clientId", log.MaskString(credentials.ClientID)))
		return NewClientCredentialsProvider(cfg.TokenURL(), credentials, httpClient), nil
	default:
		return nil, serviceerror.CustomServiceError(ErrorUnsupportedAuthMode,
			"Unsupported authentication mode: "+cfg.Auth.Mode)
	}
}
