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


package client

import (
	"encoding/json"
	"strings"

	"github.com/asgardeo/certcampaign/internal/system/constants"
)

// Response holds the status and the body of an API response.
type Response struct {
	StatusCode int
	Body       []byte
}

// HasStatus reports whether the response status is one of the given codes.
func (r *Response) HasStatus(codes ...int) bool {
	for _, code := range codes {
		if r.StatusCode == code {
			return true
		}
	}
	return false
}

// IsSuccess reports whether the response has a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// BodySnippet returns the body as text, truncated for error reporting.
func (r *Response) BodySnippet() string {
	body := strings.TrimSpace(string(r.Body))
	if len(body) > constants.MaxErrorBodySize {
		return body[:constants.MaxErrorBodySize] + "..."
	}
	return body
}
