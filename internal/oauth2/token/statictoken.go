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
	"strings"

	"golang.org/x/oauth2"

	"github.com/asgardeo/certcampaign/internal/system/constants"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
)

// staticTokenProvider hands out a pre-issued bearer token.
type staticTokenProvider struct {
	accessToken string
}

// NewStaticTokenProvider creates a provider for a token issued outside of this tool.
func NewStaticTokenProvider(accessToken string) TokenProviderInterface {
	return &staticTokenProvider{accessToken: strings.TrimSpace(accessToken)}
}

// GetToken returns the configured token.
func (p *staticTokenProvider) GetToken(_ context.Context) (*oauth2.Token, *serviceerror.ServiceError) {
	if p.accessToken == "" {
		return nil, &ErrorMissingStaticToken
	}
	return &oauth2.Token{
		AccessToken: p.accessToken,
		TokenType:   constants.TokenTypeBearer,
	}, nil
}
