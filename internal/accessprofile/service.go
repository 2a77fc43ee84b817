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


// Package accessprofile resolves access profile names to their platform ids.
package accessprofile

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/asgardeo/certcampaign/internal/platform/client"
	"github.com/asgardeo/certcampaign/internal/platform/model"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
	"github.com/asgardeo/certcampaign/internal/system/log"
	"github.com/asgardeo/certcampaign/internal/system/utils"
)

const (
	loggerComponentName = "AccessProfileResolver"
	accessProfilesPath  = "/v3/access-profiles"
	nameSeparator       = ","
)

// AccessProfileResolverInterface defines the batch resolution of access profile names.
type AccessProfileResolverInterface interface {
	ResolveAll(ctx context.Context, names string) ([]string, *serviceerror.ServiceError)
}

// Options controls how the names of a batch are looked up.
type Options struct {
	Parallel    bool
	MaxParallel int
}

type accessProfileResolver struct {
	apiClient client.APIClientInterface
	options   Options
}

// NewAccessProfileResolver creates an access profile resolver using the given API client.
func NewAccessProfileResolver(apiClient client.APIClientInterface, options Options) AccessProfileResolverInterface {
	if options.MaxParallel < 1 {
		options.MaxParallel = 1
	}
	return &accessProfileResolver{apiClient: apiClient, options: options}
}

type lookupResult struct {
	name   string
	entity *model.ResolvedEntity
	err    error
}

// ResolveAll resolves a comma separated list of access profile names by exact name. Empty entries
// are skipped and repeated names are looked up once. The ids are returned in the order of the names.
// If any name cannot be resolved no ids are returned.
func (r *accessProfileResolver) ResolveAll(ctx context.Context, names string) (
	[]string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(zap.String(log.LoggerKeyComponentName, loggerComponentName))

	profileNames := utils.DeduplicateStrings(utils.ParseStringArray(names, nameSeparator))
	if len(profileNames) == 0 {
		return nil, &ErrorNoAccessProfileNames
	}

	var results []lookupResult
	if r.options.Parallel && len(profileNames) > 1 {
		results = r.lookupParallel(ctx, profileNames)
	} else {
		results = r.lookupSequential(ctx, profileNames)
	}

	ids := make([]string, 0, len(results))
	var unresolved []string
	for _, result := range results {
		if result.err != nil {
			logger.Warn("Could not resolve access profile", zap.String("name", result.name),
				zap.Error(result.err))
			unresolved = append(unresolved, result.name)
			continue
		}
		logger.Info("Resolved access profile", zap.String("name", result.name),
			zap.String("id", result.entity.ID))
		ids = append(ids, result.entity.ID)
	}

	if len(unresolved) > 0 {
		return nil, serviceerror.CustomServiceError(ErrorAccessProfilesNotResolved,
			"Could not resolve the access profiles: "+strings.Join(unresolved, ", "))
	}
	return ids, nil
}

func (r *accessProfileResolver) lookupSequential(ctx context.Context, names []string) []lookupResult {
	results := make([]lookupResult, 0, len(names))
	for _, name := range names {
		results = append(results, r.lookup(ctx, name))
	}
	return results
}

// lookupParallel looks up every name, bounded by MaxParallel. A failed lookup does not cancel the
// others so that every unresolved name is reported.
func (r *accessProfileResolver) lookupParallel(ctx context.Context, names []string) []lookupResult {
	results := make([]lookupResult, len(names))

	var g errgroup.Group
	g.SetLimit(r.options.MaxParallel)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = r.lookup(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *accessProfileResolver) lookup(ctx context.Context, name string) lookupResult {
	result := lookupResult{name: name}

	resp, err := r.apiClient.Get(ctx, accessProfilesPath, client.FilterQuery("name", name))
	if err != nil {
		result.err = err
		return result
	}
	if resp.StatusCode != http.StatusOK {
		result.err = fmt.Errorf("unexpected status %d: %s", resp.StatusCode, resp.BodySnippet())
		return result
	}

	result.entity, _, result.err = model.FirstCandidate(resp.Body, "")
	return result
}
