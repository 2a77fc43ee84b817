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


// Package client provides the REST client used to talk to the identity platform API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/asgardeo/certcampaign/internal/system/constants"
	httpservice "github.com/asgardeo/certcampaign/internal/system/http"
	"github.com/asgardeo/certcampaign/internal/system/log"
)

const loggerComponentName = "PlatformAPIClient"

// APIClientInterface defines the calls made against the identity platform API.
type APIClientInterface interface {
	Get(ctx context.Context, path string, query url.Values) (*Response, error)
	Post(ctx context.Context, path string, body interface{}) (*Response, error)
}

// apiClient is the default implementation of the APIClientInterface.
type apiClient struct {
	baseURL    string
	httpClient httpservice.HTTPClientInterface
	headers    map[string]string
	requestID  string
}

// Option configures the API client.
type Option func(*apiClient)

// WithHeaders adds headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *apiClient) {
		for name, value := range headers {
			c.headers[name] = value
		}
	}
}

// WithRequestID sets the correlation id sent with every request.
func WithRequestID(requestID string) Option {
	return func(c *apiClient) {
		c.requestID = requestID
	}
}

// NewAPIClient creates a client for the API rooted at baseURL. The given HTTP client is expected to
// authenticate the requests, see NewBearerHTTPClient.
func NewAPIClient(baseURL string, httpClient httpservice.HTTPClientInterface, opts ...Option) APIClientInterface {
	c := &apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		headers:    map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get sends a GET request to the given path with the query parameters.
func (c *apiClient) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	return c.do(req, path)
}

// Post sends a POST request with the JSON encoding of body to the given path.
func (c *apiClient) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	return c.do(req, path)
}

func (c *apiClient) do(req *http.Request, path string) (*Response, error) {
	logger := log.GetLogger().With(zap.String(log.LoggerKeyComponentName, loggerComponentName),
		zap.String("method", req.Method), zap.String("path", path))

	req.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)
	if c.requestID != "" {
		req.Header.Set(constants.RequestIDHeaderName, c.requestID)
	}
	for name, value := range c.headers {
		req.Header.Set(name, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("Request failed", zap.Error(err))
		return nil, fmt.Errorf("%s %s failed: %w", req.Method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.Error("Failed to close response body", zap.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response of %s %s: %w", req.Method, path, err)
	}

	logger.Debug("Request completed", zap.Int("statusCode", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
