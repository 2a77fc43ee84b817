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


package campaign

import "github.com/asgardeo/certcampaign/internal/system/error/serviceerror"

// API paths of the campaign endpoints.
const (
	campaignsPath      = "/v2024/campaigns"
	deleteCampaignPath = "/v2024/campaigns/delete"
)

// Fixed values of the campaign definition.
const (
	CampaignTypeSearch            = "SEARCH"
	SearchTypeAccess              = "ACCESS"
	ReviewerTypeIdentity          = "IDENTITY"
	ConstraintTypeAccessProfile   = "ACCESS_PROFILE"
	ConstraintOperatorSelected    = "SELECTED"
	CommentRequirementNoDecisions = "NO_DECISIONS"
)

// CampaignDefinition is the body of the campaign creation request.
type CampaignDefinition struct {
	Name                        string             `json:"name" yaml:"name"`
	Type                        string             `json:"type" yaml:"type"`
	Description                 string             `json:"description" yaml:"description"`
	SearchCampaignInfo          SearchCampaignInfo `json:"searchCampaignInfo" yaml:"searchCampaignInfo"`
	AutoRevokeAllowed           bool               `json:"autoRevokeAllowed" yaml:"autoRevokeAllowed"`
	MandatoryCommentRequirement string             `json:"mandatoryCommentRequirement" yaml:"mandatoryCommentRequirement"`
}

// SearchCampaignInfo scopes a search campaign.
type SearchCampaignInfo struct {
	Type              string             `json:"type" yaml:"type"`
	Description       string             `json:"description" yaml:"description"`
	Query             string             `json:"query" yaml:"query"`
	IdentityIDs       []string           `json:"identityIds" yaml:"identityIds"`
	Reviewer          Reviewer           `json:"reviewer" yaml:"reviewer"`
	AccessConstraints []AccessConstraint `json:"accessConstraints" yaml:"accessConstraints"`
}

// Reviewer is the identity certifying the campaign.
type Reviewer struct {
	Type string `json:"type" yaml:"type"`
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// AccessConstraint limits the certified access.
type AccessConstraint struct {
	Type     string   `json:"type" yaml:"type"`
	IDs      []string `json:"ids" yaml:"ids"`
	Operator string   `json:"operator" yaml:"operator"`
}

type createCampaignResponse struct {
	ID string `json:"id"`
}

type activateRequest struct {
	TimeZone string `json:"timeZone"`
}

type deleteRequest struct {
	IDs []string `json:"ids"`
}

// ActivationOutcome records what happened to a campaign after it was created.
type ActivationOutcome struct {
	CampaignID       string                     `json:"campaignId" yaml:"campaignId"`
	Visible          bool                       `json:"visible" yaml:"visible"`
	Activated        bool                       `json:"activated" yaml:"activated"`
	ActivationStatus int                        `json:"activationStatus,omitempty" yaml:"activationStatus,omitempty"`
	ActivationError  *serviceerror.ServiceError `json:"activationError,omitempty" yaml:"activationError,omitempty"`
	RolledBack       bool                       `json:"rolledBack" yaml:"rolledBack"`
}
