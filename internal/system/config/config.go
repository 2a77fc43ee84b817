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

// Package config provides structures and functions for loading and managing the runtime configurations.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/asgardeo/certcampaign/internal/system/constants"
)

// Authentication modes.
const (
	AuthModeClientCredentials = "client_credentials"
	AuthModeStaticToken       = "static_token"
)

// Pre-activation wait modes.
const (
	WaitModeNone  = "none"
	WaitModeSleep = "sleep"
	WaitModePoll  = "poll"
)

// Default values applied when the deployment file leaves a value empty.
const (
	DefaultTokenEndpoint      = "/oauth/token"
	DefaultHTTPTimeout        = 30 * time.Second
	DefaultTimeZone           = "UTC"
	DefaultWaitMode           = WaitModePoll
	DefaultWaitDelay          = 10 * time.Second
	DefaultWaitInterval       = 2 * time.Second
	DefaultWaitAttempts       = 5
	DefaultMaxParallelLookups = 4
)

// TenantConfig holds the identity platform tenant details.
type TenantConfig struct {
	BaseURL       string            `yaml:"base_url" validate:"required,url"`
	TokenEndpoint string            `yaml:"token_endpoint" validate:"required,startswith=/"`
	Headers       map[string]string `yaml:"headers"`
}

// AuthConfig holds the authentication details. Secrets are never read from this file.
type AuthConfig struct {
	Mode string `yaml:"mode" validate:"required,oneof=client_credentials static_token"`
}

// HTTPConfig holds the outbound HTTP client details.
type HTTPConfig struct {
	Timeout  time.Duration `yaml:"timeout" validate:"gt=0"`
	CAFile   string        `yaml:"ca_file"`
	CertFile string        `yaml:"cert_file" validate:"required_with=KeyFile"`
	KeyFile  string        `yaml:"key_file" validate:"required_with=CertFile"`
}

// ActivationWaitConfig holds the details of the wait between campaign creation and activation.
type ActivationWaitConfig struct {
	Mode     string        `yaml:"mode" validate:"required,oneof=none sleep poll"`
	Delay    time.Duration `yaml:"delay" validate:"gte=0"`
	Interval time.Duration `yaml:"interval" validate:"gte=0"`
	Attempts int           `yaml:"attempts" validate:"gte=1"`
}

// CampaignConfig holds the campaign creation and activation details.
type CampaignConfig struct {
	ActivationTimeZone          string               `yaml:"activation_time_zone" validate:"required"`
	ActivationWait              ActivationWaitConfig `yaml:"activation_wait"`
	RollbackOnActivationFailure bool                 `yaml:"rollback_on_activation_failure"`
}

// ResolutionConfig holds the name resolution details.
type ResolutionConfig struct {
	ParallelAccessProfiles bool `yaml:"parallel_access_profiles"`
	MaxParallel            int  `yaml:"max_parallel" validate:"gte=1"`
}

// Config holds the complete runtime configuration.
type Config struct {
	Tenant     TenantConfig     `yaml:"tenant"`
	Auth       AuthConfig       `yaml:"auth"`
	HTTP       HTTPConfig       `yaml:"http"`
	Campaign   CampaignConfig   `yaml:"campaign"`
	Resolution ResolutionConfig `yaml:"resolution"`
}

var validate = validator.New()

// LoadConfig loads the configurations from the specified YAML file over the defaults and applies the
// environment overrides. Values present in the file, zero values included, replace the defaults.
// When optional is true a missing file yields the defaults.
func LoadConfig(path string, optional bool) (*Config, error) {
	cfg := newDefaultConfig()

	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
		}
	case optional && errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to open configuration file %s: %w", path, err)
	}

	cfg.applyEnvironmentOverrides()
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return errors.New("invalid configuration: " + strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// APIBaseURL returns the tenant base URL without a trailing slash.
func (c *Config) APIBaseURL() string {
	return strings.TrimRight(c.Tenant.BaseURL, "/")
}

// TokenURL returns the absolute token endpoint URL.
func (c *Config) TokenURL() string {
	return c.APIBaseURL() + c.Tenant.TokenEndpoint
}

func newDefaultConfig() *Config {
	return &Config{
		Tenant: TenantConfig{
			TokenEndpoint: DefaultTokenEndpoint,
		},
		Auth: AuthConfig{
			Mode: AuthModeClientCredentials,
		},
		HTTP: HTTPConfig{
			Timeout: DefaultHTTPTimeout,
		},
		Campaign: CampaignConfig{
			ActivationTimeZone: DefaultTimeZone,
			ActivationWait: ActivationWaitConfig{
				Mode:     DefaultWaitMode,
				Delay:    DefaultWaitDelay,
				Interval: DefaultWaitInterval,
				Attempts: DefaultWaitAttempts,
			},
		},
		Resolution: ResolutionConfig{
			MaxParallel: DefaultMaxParallelLookups,
		},
	}
}

func (c *Config) applyEnvironmentOverrides() {
	c.Tenant.BaseURL = GetEnv(constants.BaseURLEnvironmentVariable, c.Tenant.BaseURL)
	c.Auth.Mode = GetEnv(constants.AuthModeEnvironmentVariable, c.Auth.Mode)
	c.Campaign.ActivationTimeZone = GetEnv(constants.TimeZoneEnvironmentVariable, c.Campaign.ActivationTimeZone)
}
