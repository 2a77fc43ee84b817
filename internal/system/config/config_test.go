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


package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/certcampaign/internal/system/constants"
)

const testDeploymentYAML = `tenant:
  base_url: "https://tenant.api.example.com/"
  token_endpoint: "/oauth/token"
  headers:
    X-SailPoint-Experimental: "true"
auth:
  mode: client_credentials
http:
  timeout: 45s
campaign:
  activation_time_zone: "Asia/Kolkata"
  activation_wait:
    mode: sleep
    delay: 3s
  rollback_on_activation_failure: true
resolution:
  parallel_access_profiles: true
  max_parallel: 8
`

type ConfigTestSuite struct {
	suite.Suite
	testDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.testDir = suite.T().TempDir()
	suite.T().Setenv(constants.BaseURLEnvironmentVariable, "")
	suite.T().Setenv(constants.AuthModeEnvironmentVariable, "")
	suite.T().Setenv(constants.TimeZoneEnvironmentVariable, "")
}

func (suite *ConfigTestSuite) writeFile(name, content string) string {
	path := filepath.Join(suite.testDir, name)
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	cfg, err := LoadConfig(suite.writeFile("deployment.yaml", testDeploymentYAML), false)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "https://tenant.api.example.com/", cfg.Tenant.BaseURL)
	assert.Equal(suite.T(), "https://tenant.api.example.com", cfg.APIBaseURL())
	assert.Equal(suite.T(), "https://tenant.api.example.com/oauth/token", cfg.TokenURL())
	assert.Equal(suite.T(), map[string]string{"X-SailPoint-Experimental": "true"}, cfg.Tenant.Headers)
	assert.Equal(suite.T(), AuthModeClientCredentials, cfg.Auth.Mode)
	assert.Equal(suite.T(), 45*time.Second, cfg.HTTP.Timeout)
	assert.Equal(suite.T(), "Asia/Kolkata", cfg.Campaign.ActivationTimeZone)
	assert.Equal(suite.T(), WaitModeSleep, cfg.Campaign.ActivationWait.Mode)
	assert.Equal(suite.T(), 3*time.Second, cfg.Campaign.ActivationWait.Delay)
	assert.True(suite.T(), cfg.Campaign.RollbackOnActivationFailure)
	assert.True(suite.T(), cfg.Resolution.ParallelAccessProfiles)
	assert.Equal(suite.T(), 8, cfg.Resolution.MaxParallel)

	// Values left out of the file fall back to the defaults.
	assert.Equal(suite.T(), DefaultWaitInterval, cfg.Campaign.ActivationWait.Interval)
	assert.Equal(suite.T(), DefaultWaitAttempts, cfg.Campaign.ActivationWait.Attempts)

	assert.NoError(suite.T(), cfg.Validate())
}

func (suite *ConfigTestSuite) TestLoadConfigDefaults() {
	tests := []struct {
		name     string
		path     func() string
		optional bool
	}{
		{"EmptyFile", func() string { return suite.writeFile("empty.yaml", "") }, false},
		{"MissingOptionalFile", func() string { return filepath.Join(suite.testDir, "absent.yaml") }, true},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			cfg, err := LoadConfig(tc.path(), tc.optional)
			suite.Require().NoError(err)

			assert.Equal(suite.T(), DefaultTokenEndpoint, cfg.Tenant.TokenEndpoint)
			assert.Equal(suite.T(), AuthModeClientCredentials, cfg.Auth.Mode)
			assert.Equal(suite.T(), DefaultHTTPTimeout, cfg.HTTP.Timeout)
			assert.Equal(suite.T(), DefaultTimeZone, cfg.Campaign.ActivationTimeZone)
			assert.Equal(suite.T(), DefaultWaitMode, cfg.Campaign.ActivationWait.Mode)
			assert.Equal(suite.T(), DefaultWaitDelay, cfg.Campaign.ActivationWait.Delay)
			assert.Equal(suite.T(), DefaultMaxParallelLookups, cfg.Resolution.MaxParallel)
			assert.False(suite.T(), cfg.Campaign.RollbackOnActivationFailure)

			// The tenant base URL has no default.
			assert.ErrorContains(suite.T(), cfg.Validate(), "Config.Tenant.BaseURL (required)")
		})
	}
}

func (suite *ConfigTestSuite) TestLoadConfigKeepsExplicitZeroValues() {
	path := suite.writeFile("deployment.yaml", `tenant:
  base_url: "https://tenant.api.example.com"
campaign:
  activation_wait:
    mode: sleep
    delay: 0s
    interval: 0s
`)

	cfg, err := LoadConfig(path, false)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), WaitModeSleep, cfg.Campaign.ActivationWait.Mode)
	assert.Equal(suite.T(), time.Duration(0), cfg.Campaign.ActivationWait.Delay)
	assert.Equal(suite.T(), time.Duration(0), cfg.Campaign.ActivationWait.Interval)
	assert.Equal(suite.T(), DefaultWaitAttempts, cfg.Campaign.ActivationWait.Attempts)
	assert.NoError(suite.T(), cfg.Validate())
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	cfg, err := LoadConfig(filepath.Join(suite.testDir, "absent.yaml"), false)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigRejectsUnknownFields() {
	path := suite.writeFile("unknown.yaml", "tenant:\n  base_url: https://a.example.com\n  client_secret: nope\n")

	cfg, err := LoadConfig(path, false)
	assert.ErrorContains(suite.T(), err, "failed to parse configuration file")
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	cfg, err := LoadConfig(suite.writeFile("broken.yaml", "tenant: [unclosed"), false)
	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigEnvironmentOverrides() {
	suite.T().Setenv(constants.BaseURLEnvironmentVariable, "https://override.example.com")
	suite.T().Setenv(constants.AuthModeEnvironmentVariable, AuthModeStaticToken)
	suite.T().Setenv(constants.TimeZoneEnvironmentVariable, "Europe/Berlin")

	cfg, err := LoadConfig(suite.writeFile("deployment.yaml", testDeploymentYAML), false)
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "https://override.example.com", cfg.Tenant.BaseURL)
	assert.Equal(suite.T(), AuthModeStaticToken, cfg.Auth.Mode)
	assert.Equal(suite.T(), "Europe/Berlin", cfg.Campaign.ActivationTimeZone)
	assert.NoError(suite.T(), cfg.Validate())
}

func (suite *ConfigTestSuite) TestValidateErrors() {
	tests := []struct {
		name     string
		mutate   func(cfg *Config)
		expected string
	}{
		{"InvalidBaseURL", func(cfg *Config) { cfg.Tenant.BaseURL = "not a url" }, "Config.Tenant.BaseURL (url)"},
		{"RelativeTokenEndpoint", func(cfg *Config) { cfg.Tenant.TokenEndpoint = "oauth/token" },
			"Config.Tenant.TokenEndpoint (startswith)"},
		{"UnknownAuthMode", func(cfg *Config) { cfg.Auth.Mode = "password" }, "Config.Auth.Mode (oneof)"},
		{"CertWithoutKey", func(cfg *Config) { cfg.HTTP.CertFile = "certs/client.pem" },
			"Config.HTTP.KeyFile (required_with)"},
		{"UnknownWaitMode", func(cfg *Config) { cfg.Campaign.ActivationWait.Mode = "forever" },
			"Config.Campaign.ActivationWait.Mode (oneof)"},
		{"NegativeDelay", func(cfg *Config) { cfg.Campaign.ActivationWait.Delay = -time.Second },
			"Config.Campaign.ActivationWait.Delay (gte)"},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			cfg, err := LoadConfig(suite.writeFile("deployment.yaml", testDeploymentYAML), false)
			suite.Require().NoError(err)

			tc.mutate(cfg)
			assert.ErrorContains(suite.T(), cfg.Validate(), tc.expected)
		})
	}
}
