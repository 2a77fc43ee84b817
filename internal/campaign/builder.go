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

// DefinitionParams holds the resolved values a campaign definition is built from.
type DefinitionParams struct {
	Name             string
	Description      string
	Query            string
	IdentityID       string
	ReviewerID       string
	ReviewerName     string
	AccessProfileIDs []string
}

// BuildDefinition assembles a search campaign certifying exactly the given access profiles of a
// single identity.
func BuildDefinition(params DefinitionParams) *CampaignDefinition {
	profileIDs := make([]string, len(params.AccessProfileIDs))
	copy(profileIDs, params.AccessProfileIDs)

	return &CampaignDefinition{
		Name:        params.Name,
		Type:        CampaignTypeSearch,
		Description: params.Description,
		SearchCampaignInfo: SearchCampaignInfo{
			Type:        SearchTypeAccess,
			Description: params.Description,
			Query:       params.Query,
			IdentityIDs: []string{params.IdentityID},
			Reviewer: Reviewer{
				Type: ReviewerTypeIdentity,
				ID:   params.ReviewerID,
				Name: params.ReviewerName,
			},
			AccessConstraints: []AccessConstraint{
				{
					Type:     ConstraintTypeAccessProfile,
					IDs:      profileIDs,
					Operator: ConstraintOperatorSelected,
				},
			},
		},
		AutoRevokeAllowed:           false,
		MandatoryCommentRequirement: CommentRequirementNoDecisions,
	}
}
