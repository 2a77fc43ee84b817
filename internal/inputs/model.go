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

package inputs

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Recognized input keys.
const (
	KeyIdentityName        = "identity_name"
	KeyReviewerName        = "reviewer_name"
	KeyAccessProfileNames  = "access_profile_names"
	KeyCampaignName        = "campaign_name"
	KeyCampaignDescription = "campaign_description"
	KeyQueryString         = "query_string"
	KeyClientID            = "client_id"
	KeyClientSecret        = "client_secret" //nolint:gosec
)

// Defaults for the optional keys.
const (
	DefaultCampaignName        = "Default Campaign"
	DefaultCampaignDescription = "Default Description"
	DefaultQueryString         = "Access Profile Certification Query"
)

// CampaignInput is the typed view of the input file.
type CampaignInput struct {
	IdentityName        string `validate:"required" key:"identity_name"`
	ReviewerName        string `validate:"required" key:"reviewer_name"`
	AccessProfileNames  string `validate:"required" key:"access_profile_names"`
	CampaignName        string
	CampaignDescription string
	QueryString         string
	ClientID            string
	ClientSecret        string
}

var validate = validator.New()

func init() {
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("key")
	})
}

// FromMap builds a campaign input from the parsed key/value mapping, applying the defaults of the
// optional keys. Unrecognized keys are ignored.
func FromMap(values map[string]string) *CampaignInput {
	return &CampaignInput{
		IdentityName:        values[KeyIdentityName],
		ReviewerName:        values[KeyReviewerName],
		AccessProfileNames:  values[KeyAccessProfileNames],
		CampaignName:        valueOrDefault(values, KeyCampaignName, DefaultCampaignName),
		CampaignDescription: valueOrDefault(values, KeyCampaignDescription, DefaultCampaignDescription),
		QueryString:         valueOrDefault(values, KeyQueryString, DefaultQueryString),
		ClientID:            values[KeyClientID],
		ClientSecret:        values[KeyClientSecret],
	}
}

// MissingRequiredKeys returns the required keys that are absent or empty, in a stable order.
func (in *CampaignInput) MissingRequiredKeys() []string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		missing = append(missing, fieldErr.Field())
	}
	sort.Strings(missing)
	return missing
}

// Validate checks that every required key is present and non-empty.
func (in *CampaignInput) Validate() error {
	missing := in.MissingRequiredKeys()
	if len(missing) == 0 {
		return nil
	}
	return errors.New("missing one or more required fields in input file: " + strings.Join(missing, ", "))
}

func valueOrDefault(values map[string]string, key, defaultValue string) string {
	if value, ok := values[key]; ok && value != "" {
		return value
	}
	return defaultValue
}
