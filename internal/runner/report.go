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


package runner

import (
	"encoding/json"
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"github.com/asgardeo/certcampaign/internal/campaign"
	"github.com/asgardeo/certcampaign/internal/platform/model"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
)

// Report output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// RunReport summarizes a run.
type RunReport struct {
	RunID            string                       `json:"runId" yaml:"runId"`
	DryRun           bool                         `json:"dryRun" yaml:"dryRun"`
	Identity         *model.ResolvedEntity        `json:"identity,omitempty" yaml:"identity,omitempty"`
	Reviewer         *model.ResolvedEntity        `json:"reviewer,omitempty" yaml:"reviewer,omitempty"`
	AccessProfileIDs []string                     `json:"accessProfileIds,omitempty" yaml:"accessProfileIds,omitempty"`
	Definition       *campaign.CampaignDefinition `json:"definition,omitempty" yaml:"definition,omitempty"`
	Campaign         *campaign.ActivationOutcome  `json:"campaign,omitempty" yaml:"campaign,omitempty"`
	Error            *serviceerror.ServiceError   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Render writes the report to w in the given format.
func (r *RunReport) Render(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	case FormatYAML, "":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported report format '%s'", format)
	}
}
