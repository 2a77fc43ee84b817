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

// Package serviceerror defines the error structures for the service layer.
package serviceerror

import "fmt"

// ServiceErrorType defines the type of service error.
type ServiceErrorType string

const (
	// ConfigErrorType denotes a missing or unreadable input, or a missing required field.
	ConfigErrorType ServiceErrorType = "config_error"
	// AuthErrorType denotes a failed credential exchange.
	AuthErrorType ServiceErrorType = "auth_error"
	// ResolutionErrorType denotes an identity, reviewer or access profile that could not be resolved.
	ResolutionErrorType ServiceErrorType = "resolution_error"
	// CampaignCreationErrorType denotes a rejected campaign creation request.
	CampaignCreationErrorType ServiceErrorType = "campaign_creation_error"
	// ActivationErrorType denotes a rejected activation request. The campaign still exists.
	ActivationErrorType ServiceErrorType = "activation_error"
	// ServerErrorType denotes an unexpected internal failure.
	ServerErrorType ServiceErrorType = "server_error"
)

// ServiceError defines a generic error structure that can be used across the service layer.
type ServiceError struct {
	Code             string           `json:"code" yaml:"code"`
	Type             ServiceErrorType `json:"type" yaml:"type"`
	Error            string           `json:"error" yaml:"error"`
	ErrorDescription string           `json:"error_description,omitempty" yaml:"error_description,omitempty"`
}

// String returns a single line representation of the error.
func (e *ServiceError) String() string {
	if e.ErrorDescription == "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Error)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Error, e.ErrorDescription)
}

// CustomServiceError returns a copy of the given error with a specific description.
func CustomServiceError(svcError ServiceError, errorDesc string) *ServiceError {
	return &ServiceError{
		Code:             svcError.Code,
		Type:             svcError.Type,
		Error:            svcError.Error,
		ErrorDescription: errorDesc,
	}
}

// IsFatal reports whether the error aborts the run. Activation failures leave the created campaign in place
// and are reported without aborting.
func (e *ServiceError) IsFatal() bool {
	return e.Type != ActivationErrorType
}
