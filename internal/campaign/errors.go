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

// Errors returned by the campaign service.
var (
	// ErrorCampaignCreationFailed is the error when the campaign creation request could not be sent.
	ErrorCampaignCreationFailed = serviceerror.ServiceError{
		Type:             serviceerror.CampaignCreationErrorType,
		Code:             "CMP-1001",
		Error:            "Campaign creation failed",
		ErrorDescription: "The campaign creation request could not be completed",
	}
	// ErrorCampaignCreationRejected is the error when the platform did not create the campaign.
	ErrorCampaignCreationRejected = serviceerror.ServiceError{
		Type:             serviceerror.CampaignCreationErrorType,
		Code:             "CMP-1002",
		Error:            "Campaign creation rejected",
		ErrorDescription: "The platform rejected the campaign definition",
	}
	// ErrorMissingCampaignID is the error when the creation response carries no campaign id.
	ErrorMissingCampaignID = serviceerror.ServiceError{
		Type:             serviceerror.CampaignCreationErrorType,
		Code:             "CMP-1003",
		Error:            "Missing campaign id",
		ErrorDescription: "The campaign creation response does not contain a campaign id",
	}
	// ErrorActivationFailed is the error when the activation request could not be completed.
	ErrorActivationFailed = serviceerror.ServiceError{
		Type:             serviceerror.ActivationErrorType,
		Code:             "CMP-1101",
		Error:            "Campaign activation failed",
		ErrorDescription: "The campaign was created but could not be activated",
	}
)
