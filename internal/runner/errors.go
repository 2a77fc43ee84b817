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

import "github.com/asgardeo/certcampaign/internal/system/error/serviceerror"

// Errors returned by the runner.
var (
	// ErrorInputFileUnavailable is the error when the input file cannot be read.
	ErrorInputFileUnavailable = serviceerror.ServiceError{
		Type:             serviceerror.ConfigErrorType,
		Code:             "CFG-1001",
		Error:            "Input file unavailable",
		ErrorDescription: "The campaign input file could not be read",
	}
	// ErrorMissingRequiredFields is the error when required input keys are absent or empty.
	ErrorMissingRequiredFields = serviceerror.ServiceError{
		Type:             serviceerror.ConfigErrorType,
		Code:             "CFG-1002",
		Error:            "Missing required fields",
		ErrorDescription: "Missing one or more required fields in input file",
	}
	// ErrorInternalServerError is the error when the run fails unexpectedly.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SRV-1001",
		Error:            "Internal error",
		ErrorDescription: "An unexpected error occurred while running the campaign",
	}
)
