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


package accessprofile

import "github.com/asgardeo/certcampaign/internal/system/error/serviceerror"

// Errors returned by the access profile resolver.
var (
	// ErrorNoAccessProfileNames is the error when the name list holds no names.
	ErrorNoAccessProfileNames = serviceerror.ServiceError{
		Type:             serviceerror.ResolutionErrorType,
		Code:             "RES-1101",
		Error:            "No access profiles",
		ErrorDescription: "At least one access profile name is required",
	}
	// ErrorAccessProfilesNotResolved is the error when one or more names of the batch did not resolve.
	ErrorAccessProfilesNotResolved = serviceerror.ServiceError{
		Type:             serviceerror.ResolutionErrorType,
		Code:             "RES-1102",
		Error:            "Access profiles not found",
		ErrorDescription: "One or more access profiles could not be resolved",
	}
)
