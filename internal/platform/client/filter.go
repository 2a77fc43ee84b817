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
	"net/url"
	"strings"
)

// QueryParamFilters is the query parameter carrying the filter expression of a list call.
const QueryParamFilters = "filters"

var filterValueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// FilterEquals builds an exact match filter expression such as name eq "John Doe".
func FilterEquals(attribute, value string) string {
	return attribute + ` eq "` + filterValueEscaper.Replace(value) + `"`
}

// FilterQuery returns the query parameters of an exact match filter.
func FilterQuery(attribute, value string) url.Values {
	return url.Values{QueryParamFilters: []string{FilterEquals(attribute, value)}}
}
