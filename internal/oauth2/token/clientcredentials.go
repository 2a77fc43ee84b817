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

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	oauth2const "github.com/asgardeo/certcampaign/internal/oauth2/constants"
	"github.com/asgardeo/certcampaign/internal/system/constants"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
	httpservice "github.com/asgardeo/certcampaign/internal/system/http"
	"github.com/asgardeo/certcampaign/internal/system/log"
)

// TokenResponse represents the response of the token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// clientCredentialsProvider exchanges client credentials for a bearer token.
type clientCredentialsProvider struct {
	tokenURL    string
	credentials Credentials
	httpClient  httpservice.HTTPClientInterface
}

// NewClientCredentialsProvider creates a provider issuing a single client credentials grant request.
func NewClientCredentialsProvider(tokenURL string, credentials Credentials,
	httpClient httpservice.HTTPClientInterface) TokenProviderInterface {
	if httpClient == nil {
		httpClient = httpservice.NewHTTPClient()
	}
	return &clientCredentialsProvider{
		tokenURL:    tokenURL,
		credentials: credentials,
		httpClient:  httpClient,
	}
}

// GetToken posts the client credentials grant to the token endpoint. Only an HTTP 200 response carrying an
// access token is accepted. There is no retry.
func (p *clientCredentialsProvider) GetToken(ctx context.Context) (*oauth2.Token, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(zap.String(log.LoggerKeyComponentName, loggerComponentName),
		zap.String("clientId", log.MaskString(p.credentials.ClientID)))

	if strings.TrimSpace(p.credentials.ClientID) == "" || strings.TrimSpace(p.credentials.ClientSecret) == "" {
		return nil, &ErrorMissingClientCredentials
	}

	httpReq, svcErr := p.buildTokenRequest(ctx, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	tokenResp, svcErr := p.sendTokenRequest(httpReq, logger)
	if svcErr != nil {
		return nil, svcErr
	}

	logger.Info("Access token obtained", zap.Int64("expiresIn", tokenResp.ExpiresIn))
	return toOAuth2Token(tokenResp), nil
}

func (p *clientCredentialsProvider) buildTokenRequest(ctx context.Context, logger *zap.Logger) (
	*http.Request, *serviceerror.ServiceError) {
	form := url.Values{}
	form.Set(oauth2const.RequestParamGrantType, string(oauth2const.GrantTypeClientCredentials))
	form.Set(oauth2const.RequestParamClientID, p.credentials.ClientID)
	form.Set(oauth2const.RequestParamClientSecret, p.credentials.ClientSecret)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		logger.Error("Failed to create token request", zap.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorTokenRequestFailed, "Invalid token endpoint: "+err.Error())
	}

	httpReq.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeFormURLEncoded)
	httpReq.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)
	return httpReq, nil
}

func (p *clientCredentialsProvider) sendTokenRequest(httpReq *http.Request, logger *zap.Logger) (
	*TokenResponse, *serviceerror.ServiceError) {
	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Token request failed", zap.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorTokenRequestFailed, err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close token response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		desc := "Token endpoint returned status " + strconv.Itoa(resp.StatusCode)
		if oauthErr := readOAuthError(resp.Body); oauthErr != "" {
			desc += ": " + oauthErr
		}
		logger.Error("Token endpoint returned an error response", zap.Int("statusCode", resp.StatusCode))
		return nil, serviceerror.CustomServiceError(ErrorTokenRequestRejected, desc)
	}

	var tokenResp TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		logger.Error("Failed to parse token response", zap.Error(err))
		return nil, serviceerror.CustomServiceError(ErrorInvalidTokenResponse,
			"The token response is not valid JSON")
	}
	if tokenResp.AccessToken == "" {
		logger.Error("Access token is empty in the token response")
		return nil, &ErrorInvalidTokenResponse
	}

	return &tokenResp, nil
}

// readOAuthError extracts the standard OAuth error fields. The raw body is not echoed since it may
// contain credential material.
func readOAuthError(body io.Reader) string {
	var errResp map[string]interface{}
	if err := json.NewDecoder(io.LimitReader(body, constants.MaxErrorBodySize)).Decode(&errResp); err != nil {
		return ""
	}

	code, _ := errResp[oauth2const.ResponseFieldError].(string)
	desc, _ := errResp[oauth2const.ResponseFieldErrorDescription].(string)
	switch {
	case code != "" && desc != "":
		return code + " (" + desc + ")"
	default:
		return code + desc
	}
}

func toOAuth2Token(tokenResp *TokenResponse) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken: tokenResp.AccessToken,
		TokenType:   tokenResp.TokenType,
	}
	if tok.TokenType == "" {
		tok.TokenType = constants.TokenTypeBearer
	}
	if tokenResp.ExpiresIn > 0 {
		tok.Expiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	}
	return tok
}
