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


package identity

import "github.com/asgardeo/certcampaign/internal/platform/model"

// API paths used by the lookup strategies.
const (
	identitiesPath       = "/v2024/identities"
	searchIdentitiesPath = "/v3/search/identities"
)

// Lookup strategy names in the order they are applied.
const (
	StrategyNameFilter  = "name_filter"
	StrategyEmailFilter = "email_filter"
	StrategySearch      = "search"
)

// Outcome describes how a single lookup strategy ended.
type Outcome string

const (
	// OutcomeFound means the strategy produced an identity id.
	OutcomeFound Outcome = "found"
	// OutcomeNoMatch means the platform answered properly without a usable match.
	OutcomeNoMatch Outcome = "no_match"
	// OutcomeFailed means the lookup itself failed and says nothing about the identity.
	OutcomeFailed Outcome = "failed"
)

// StrategyResult is the result of applying one lookup strategy.
type StrategyResult struct {
	Strategy   string
	Outcome    Outcome
	Entity     *model.ResolvedEntity
	Candidates int
	Err        error
}

// searchRequest is the body of the full-text identity search.
type searchRequest struct {
	Query string `json:"query"`
}
