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


package main

import (
	"errors"

	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
)

// Process exit codes.
const (
	exitCodeSuccess          = 0
	exitCodeUnexpected       = 1
	exitCodeConfig           = 2
	exitCodeAuth             = 3
	exitCodeResolution       = 4
	exitCodeCampaignCreation = 5
	exitCodeActivation       = 6
)

// exitError carries the exit code of a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func newExitError(code int, err error) *exitError {
	return &exitError{code: code, err: err}
}

// serviceExitError maps a service error to the exit code of its class.
func serviceExitError(svcErr *serviceerror.ServiceError) *exitError {
	return newExitError(exitCodeFor(svcErr), errors.New(svcErr.String()))
}

func exitCodeFor(svcErr *serviceerror.ServiceError) int {
	if svcErr == nil {
		return exitCodeSuccess
	}

	switch svcErr.Type {
	case serviceerror.ConfigErrorType:
		return exitCodeConfig
	case serviceerror.AuthErrorType:
		return exitCodeAuth
	case serviceerror.ResolutionErrorType:
		return exitCodeResolution
	case serviceerror.CampaignCreationErrorType:
		return exitCodeCampaignCreation
	case serviceerror.ActivationErrorType:
		return exitCodeActivation
	default:
		return exitCodeUnexpected
	}
}
