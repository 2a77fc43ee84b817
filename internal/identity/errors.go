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


package identity

import "github.com/asgardeo/certcampaign/internal/system/error/serviceerror"

// Errors returned by the identity resolver.
var (
	// ErrorEmptyIdentifier is the error when there is nothing to resolve.
	ErrorEmptyIdentifier = serviceerror.ServiceError{
		Type:             serviceerror.ResolutionErrorType,
		Code:             "RES-1001",
		Error:            "Empty identifier",
		ErrorDescription: "An identity name, email or search text is required",
	}
	// ErrorIdentityNotFound is the error when every lookup strategy failed to produce an identity.
	ErrorIdentityNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ResolutionErrorType,
		Code:             "RES-1002",
		Error:            "Identity not found",
		ErrorDescription: "The identity could not be resolved by name, email or search",
	}
)
