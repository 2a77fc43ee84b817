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
	"net/http"
	"time"

	"golang.org/x/oauth2"

	httpservice "github.com/asgardeo/certcampaign/internal/system/http"
)

// NewBearerHTTPClient returns an HTTP client that sends the token as the bearer credential of every
// request. A nil base uses the default transport.
func NewBearerHTTPClient(token *oauth2.Token, base http.RoundTripper,
	timeout time.Duration) httpservice.HTTPClientInterface {
	return httpservice.NewHTTPClientWithConfig(&http.Client{
		Timeout: timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(token),
			Base:   base,
		},
	})
}
