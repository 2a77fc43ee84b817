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


package runner

import (
	"golang.org/x/oauth2"

	"github.com/asgardeo/certcampaign/internal/accessprofile"
	"github.com/asgardeo/certcampaign/internal/campaign"
	"github.com/asgardeo/certcampaign/internal/identity"
	"github.com/asgardeo/certcampaign/internal/oauth2/token"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
)

// Components groups the services used by a run once a token is available.
type Components struct {
	IdentityResolver      identity.IdentityResolverInterface
	AccessProfileResolver accessprofile.AccessProfileResolverInterface
	CampaignService       campaign.CampaignServiceInterface
}

// ComponentFactoryInterface builds the collaborators of a run.
type ComponentFactoryInterface interface {
	TokenProvider(credentials token.Credentials) (token.TokenProviderInterface, *serviceerror.ServiceError)
	Components(tok *oauth2.Token, runID string) (*Components, *serviceerror.ServiceError)
}
