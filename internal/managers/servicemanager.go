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


// Package managers wires the campaign components from the runtime configuration.
package managers

import (
	"net/http"

	"golang.org/x/oauth2"

	"github.com/asgardeo/certcampaign/internal/accessprofile"
	"github.com/asgardeo/certcampaign/internal/campaign"
	"github.com/asgardeo/certcampaign/internal/identity"
	"github.com/asgardeo/certcampaign/internal/oauth2/token"
	"github.com/asgardeo/certcampaign/internal/platform/client"
	"github.com/asgardeo/certcampaign/internal/runner"
	"github.com/asgardeo/certcampaign/internal/system/config"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
	httpservice "github.com/asgardeo/certcampaign/internal/system/http"
)

// ServiceManager builds the token provider and the platform services of a run.
type ServiceManager struct {
	config    *config.Config
	transport http.RoundTripper
}

// NewServiceManager creates a new instance of ServiceManager. The TLS material referenced by the
// configuration is resolved against the home directory.
func NewServiceManager(cfg *config.Config, homeDirectory string) (runner.ComponentFactoryInterface, error) {
	transport, err := httpservice.NewTransport(&cfg.HTTP, homeDirectory)
	if err != nil {
		return nil, err
	}

	return &ServiceManager{
		config:    cfg,
		transport: transport,
	}, nil
}

// TokenProvider returns the token provider of the configured authentication mode.
func (sm *ServiceManager) TokenProvider(credentials token.Credentials) (
	token.TokenProviderInterface, *serviceerror.ServiceError) {
	httpClient := httpservice.NewHTTPClientWithConfig(&http.Client{
		Timeout:   sm.config.HTTP.Timeout,
		Transport: sm.transport,
	})
	return token.NewTokenProvider(sm.config, credentials, httpClient)
}

// Components returns the platform services authenticated with the token. Every request carries
// the run id as its correlation id.
func (sm *ServiceManager) Components(tok *oauth2.Token, runID string) (
	*runner.Components, *serviceerror.ServiceError) {
	if tok == nil || tok.AccessToken == "" {
		return nil, &token.ErrorInvalidTokenResponse
	}

	apiClient := client.NewAPIClient(sm.config.APIBaseURL(),
		client.NewBearerHTTPClient(tok, sm.transport, sm.config.HTTP.Timeout),
		client.WithHeaders(sm.config.Tenant.Headers),
		client.WithRequestID(runID))

	return &runner.Components{
		IdentityResolver: identity.NewIdentityResolver(apiClient),
		AccessProfileResolver: accessprofile.NewAccessProfileResolver(apiClient, accessprofile.Options{
			Parallel:    sm.config.Resolution.ParallelAccessProfiles,
			MaxParallel: sm.config.Resolution.MaxParallel,
		}),
		CampaignService: campaign.NewCampaignService(apiClient, campaign.Options{
			TimeZone:                    sm.config.Campaign.ActivationTimeZone,
			Wait:                        sm.config.Campaign.ActivationWait,
			RollbackOnActivationFailure: sm.config.Campaign.RollbackOnActivationFailure,
		}),
	}, nil
}
