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


// Package runner runs the campaign pipeline from the input file to the activated campaign.
package runner

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asgardeo/certcampaign/internal/campaign"
	"github.com/asgardeo/certcampaign/internal/inputs"
	"github.com/asgardeo/certcampaign/internal/oauth2/token"
	"github.com/asgardeo/certcampaign/internal/system/config"
	"github.com/asgardeo/certcampaign/internal/system/constants"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
	"github.com/asgardeo/certcampaign/internal/system/log"
)

const loggerComponentName = "Runner"

// RunOptions holds the options of a single run.
type RunOptions struct {
	InputFile string
	DryRun    bool
}

// RunnerInterface defines the campaign pipeline.
type RunnerInterface interface {
	Run(ctx context.Context, options RunOptions) (*RunReport, *serviceerror.ServiceError)
}

type runner struct {
	factory  ComponentFactoryInterface
	newRunID func() string
}

// NewRunner creates a runner building its collaborators with the given factory.
func NewRunner(factory ComponentFactoryInterface) RunnerInterface {
	return &runner{
		factory:  factory,
		newRunID: uuid.NewString,
	}
}

// Run loads and validates the input file, authenticates, resolves the identity, the reviewer and
// the access profiles, and creates and activates the campaign. Any failure before the campaign is
// created stops the run. The returned report is never nil and carries the error of a failed run.
// An activation failure is returned with the report of the created campaign.
func (r *runner) Run(ctx context.Context, options RunOptions) (*RunReport, *serviceerror.ServiceError) {
	report := &RunReport{RunID: r.newRunID(), DryRun: options.DryRun}
	logger := log.GetLogger().With(zap.String(log.LoggerKeyComponentName, loggerComponentName),
		zap.String(log.LoggerKeyRunID, report.RunID))

	svcErr := r.run(ctx, options, report, logger)
	if svcErr != nil {
		report.Error = svcErr
		if svcErr.IsFatal() {
			logger.Error("Run failed", zap.String("code", svcErr.Code), zap.String("error", svcErr.Error),
				zap.String("description", svcErr.ErrorDescription))
		} else {
			logger.Warn("Run completed with errors", zap.String("code", svcErr.Code),
				zap.String("description", svcErr.ErrorDescription))
		}
		return report, svcErr
	}

	logger.Info("Run completed")
	return report, nil
}

func (r *runner) run(ctx context.Context, options RunOptions, report *RunReport, logger *zap.Logger) (
	svcErr *serviceerror.ServiceError) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Recovered from a panic", zap.Any("panic", rec), zap.Stack("stack"))
			svcErr = &ErrorInternalServerError
		}
	}()

	input, svcErr := LoadInput(options.InputFile)
	if svcErr != nil {
		return svcErr
	}
	logger.Debug("Input loaded", zap.String("inputFile", options.InputFile))

	provider, svcErr := r.factory.TokenProvider(resolveCredentials(input, logger))
	if svcErr != nil {
		return svcErr
	}
	tok, svcErr := provider.GetToken(ctx)
	if svcErr != nil {
		return svcErr
	}

	components, svcErr := r.factory.Components(tok, report.RunID)
	if svcErr != nil {
		return svcErr
	}

	report.Identity, svcErr = components.IdentityResolver.Resolve(ctx, input.IdentityName, "identity")
	if svcErr != nil {
		return svcErr
	}
	report.Reviewer, svcErr = components.IdentityResolver.Resolve(ctx, input.ReviewerName, "reviewer")
	if svcErr != nil {
		return svcErr
	}
	report.AccessProfileIDs, svcErr = components.AccessProfileResolver.ResolveAll(ctx, input.AccessProfileNames)
	if svcErr != nil {
		return svcErr
	}

	logger.Info("All required inputs successfully resolved", zap.String("identityId", report.Identity.ID),
		zap.String("reviewerId", report.Reviewer.ID), zap.Strings("accessProfileIds", report.AccessProfileIDs))

	definition := campaign.BuildDefinition(campaign.DefinitionParams{
		Name:             input.CampaignName,
		Description:      input.CampaignDescription,
		Query:            input.QueryString,
		IdentityID:       report.Identity.ID,
		ReviewerID:       report.Reviewer.ID,
		ReviewerName:     input.ReviewerName,
		AccessProfileIDs: report.AccessProfileIDs,
	})

	if options.DryRun {
		logger.Info("Dry run, the campaign is not created")
		report.Definition = definition
		return nil
	}

	report.Campaign, svcErr = components.CampaignService.CreateAndActivate(ctx, definition)
	return svcErr
}

// LoadInput reads and validates the input file. It makes no network calls.
func LoadInput(path string) (*inputs.CampaignInput, *serviceerror.ServiceError) {
	values, err := inputs.Load(path)
	if err != nil {
		return nil, serviceerror.CustomServiceError(ErrorInputFileUnavailable, err.Error())
	}

	input := inputs.FromMap(values)
	if missing := input.MissingRequiredKeys(); len(missing) > 0 {
		return nil, serviceerror.CustomServiceError(ErrorMissingRequiredFields,
			"Missing one or more required fields in input file: "+strings.Join(missing, ", "))
	}
	return input, nil
}

// resolveCredentials prefers the credentials of the input file over the environment.
func resolveCredentials(input *inputs.CampaignInput, logger *zap.Logger) token.Credentials {
	credentials := token.Credentials{
		ClientID:     input.ClientID,
		ClientSecret: input.ClientSecret,
	}
	if credentials.ClientID == "" {
		credentials.ClientID = config.GetEnv(constants.ClientIDEnvironmentVariable, "")
	}
	if credentials.ClientSecret == "" {
		credentials.ClientSecret = config.GetEnv(constants.ClientSecretEnvironmentVariable, "")
	} else {
		logger.Warn("The client secret is read from the input file, prefer the " +
			constants.ClientSecretEnvironmentVariable + " environment variable")
	}
	return credentials
}
