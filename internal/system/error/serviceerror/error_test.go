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


package serviceerror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testError = ServiceError{
	Type:             ResolutionErrorType,
	Code:             "TST-1001",
	Error:            "Lookup failed",
	ErrorDescription: "The lookup could not be completed",
}

func TestCustomServiceErrorCopiesFields(t *testing.T) {
	custom := CustomServiceError(testError, "Could not resolve 'Jane Doe'")

	assert.Equal(t, testError.Code, custom.Code)
	assert.Equal(t, testError.Type, custom.Type)
	assert.Equal(t, testError.Error, custom.Error)
	assert.Equal(t, "Could not resolve 'Jane Doe'", custom.ErrorDescription)
	assert.Equal(t, "The lookup could not be completed", testError.ErrorDescription)
}

func TestServiceErrorString(t *testing.T) {
	assert.Equal(t, "[TST-1001] Lookup failed: The lookup could not be completed", testError.String())

	withoutDesc := CustomServiceError(testError, "")
	assert.Equal(t, "[TST-1001] Lookup failed", withoutDesc.String())
}

func TestIsFatal(t *testing.T) {
	for _, errType := range []ServiceErrorType{ConfigErrorType, AuthErrorType, ResolutionErrorType,
		CampaignCreationErrorType, ServerErrorType} {
		assert.True(t, (&ServiceError{Type: errType}).IsFatal(), string(errType))
	}
	assert.False(t, (&ServiceError{Type: ActivationErrorType}).IsFatal())
}
