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


// Package identity resolves free-text identifiers to identity ids of the platform.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/asgardeo/certcampaign/internal/platform/client"
	"github.com/asgardeo/certcampaign/internal/platform/model"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
	"github.com/asgardeo/certcampaign/internal/system/log"
)

const loggerComponentName = "IdentityResolver"

// IdentityResolverInterface defines the identity lookup used for both the subject and the reviewer.
type IdentityResolverInterface interface {
	Resolve(ctx context.Context, identifier, label string) (*model.ResolvedEntity, *serviceerror.ServiceError)
}

type lookupStrategy struct {
	name   string
	lookup func(ctx context.Context, identifier string) StrategyResult
}

// identityResolver tries the lookup strategies in order and stops at the first match.
type identityResolver struct {
	apiClient  client.APIClientInterface
	strategies []lookupStrategy
}

// NewIdentityResolver creates an identity resolver using the given API client.
func NewIdentityResolver(apiClient client.APIClientInterface) IdentityResolverInterface {
	r := &identityResolver{apiClient: apiClient}
	r.strategies = []lookupStrategy{
		{name: StrategyNameFilter, lookup: r.lookupByName},
		{name: StrategyEmailFilter, lookup: r.lookupByEmail},
		{name: StrategySearch, lookup: r.lookupBySearch},
	}
	return r
}

// Resolve returns the identity matching the identifier. Exact name matches take precedence over
// exact email matches, which take precedence over full-text search. When a strategy yields several
// candidates the first one is taken. The label names the role of the identity in log entries.
func (r *identityResolver) Resolve(ctx context.Context, identifier, label string) (
	*model.ResolvedEntity, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(zap.String(log.LoggerKeyComponentName, loggerComponentName),
		zap.String("label", label))

	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, serviceerror.CustomServiceError(ErrorEmptyIdentifier,
			fmt.Sprintf("No identifier given for the %s", label))
	}

	for _, strategy := range r.strategies {
		result := strategy.lookup(ctx, identifier)
		strategyLogger := logger.With(zap.String(log.LoggerKeyStrategy, result.Strategy))

		switch result.Outcome {
		case OutcomeFound:
			if result.Candidates > 1 {
				strategyLogger.Debug("Multiple identities matched, taking the first one",
					zap.Int("candidates", result.Candidates))
			}
			strategyLogger.Info("Resolved identity", zap.String("id", result.Entity.ID))
			if result.Entity.Name == "" {
				result.Entity.Name = identifier
			}
			return result.Entity, nil
		case OutcomeNoMatch:
			strategyLogger.Info("No identity matched", zap.NamedError("reason", result.Err))
		default:
			strategyLogger.Warn("Identity lookup failed", zap.Error(result.Err))
		}

		if ctx.Err() != nil {
			break
		}
	}

	logger.Error("Could not resolve identity", zap.String("identifier", identifier))
	return nil, serviceerror.CustomServiceError(ErrorIdentityNotFound,
		fmt.Sprintf("Could not resolve the %s '%s' by name, email or search", label, identifier))
}

func (r *identityResolver) lookupByName(ctx context.Context, identifier string) StrategyResult {
	resp, err := r.apiClient.Get(ctx, identitiesPath, client.FilterQuery("name", identifier))
	return toStrategyResult(StrategyNameFilter, resp, err, "")
}

func (r *identityResolver) lookupByEmail(ctx context.Context, identifier string) StrategyResult {
	resp, err := r.apiClient.Get(ctx, identitiesPath, client.FilterQuery("email", identifier))
	return toStrategyResult(StrategyEmailFilter, resp, err, "data")
}

func (r *identityResolver) lookupBySearch(ctx context.Context, identifier string) StrategyResult {
	resp, err := r.apiClient.Post(ctx, searchIdentitiesPath, searchRequest{Query: identifier})
	return toStrategyResult(StrategySearch, resp, err, "results")
}

// toStrategyResult classifies a lookup response. Transport errors, error statuses, undecodable
// bodies and a first entry without an id are failures. A well-formed body without a match is not.
func toStrategyResult(strategy string, resp *client.Response, err error, envelope string) StrategyResult {
	result := StrategyResult{Strategy: strategy}
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}
	if !resp.IsSuccess() {
		result.Outcome = OutcomeFailed
		result.Err = fmt.Errorf("unexpected status %d: %s", resp.StatusCode, resp.BodySnippet())
		return result
	}

	entity, candidates, err := model.FirstCandidate(resp.Body, envelope)
	result.Candidates = candidates
	switch {
	case err == nil:
		result.Outcome = OutcomeFound
		result.Entity = entity
	case errors.Is(err, model.ErrNoCandidates), errors.Is(err, model.ErrUnexpectedShape):
		result.Outcome = OutcomeNoMatch
		result.Err = err
	default:
		result.Outcome = OutcomeFailed
		result.Err = err
	}
	return result
}
