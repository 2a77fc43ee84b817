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


// Package campaign builds, creates and activates certification campaigns.
package campaign

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/asgardeo/certcampaign/internal/platform/client"
	"github.com/asgardeo/certcampaign/internal/system/config"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
	"github.com/asgardeo/certcampaign/internal/system/log"
)

const loggerComponentName = "CampaignService"

// CampaignServiceInterface defines the campaign lifecycle operations.
type CampaignServiceInterface interface {
	Create(ctx context.Context, definition *CampaignDefinition) (string, *serviceerror.ServiceError)
	WaitUntilVisible(ctx context.Context, campaignID string) bool
	Activate(ctx context.Context, campaignID string) (int, *serviceerror.ServiceError)
	Delete(ctx context.Context, campaignID string) error
	CreateAndActivate(ctx context.Context, definition *CampaignDefinition) (
		*ActivationOutcome, *serviceerror.ServiceError)
}

// Options configures the activation of created campaigns.
type Options struct {
	TimeZone                    string
	Wait                        config.ActivationWaitConfig
	RollbackOnActivationFailure bool
}

type campaignService struct {
	apiClient client.APIClientInterface
	options   Options
	sleep     sleepFunc
}

// NewCampaignService creates a campaign service using the given API client.
func NewCampaignService(apiClient client.APIClientInterface, options Options) CampaignServiceInterface {
	if options.TimeZone == "" {
		options.TimeZone = config.DefaultTimeZone
	}
	return &campaignService{
		apiClient: apiClient,
		options:   options,
		sleep:     sleepContext,
	}
}

// Create submits the campaign definition and returns the id assigned by the platform.
func (s *campaignService) Create(ctx context.Context, definition *CampaignDefinition) (
	string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(zap.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Info("Creating certification campaign", zap.String("name", definition.Name))

	resp, err := s.apiClient.Post(ctx, campaignsPath, definition)
	if err != nil {
		logger.Error("Campaign creation request failed", zap.Error(err))
		return "", serviceerror.CustomServiceError(ErrorCampaignCreationFailed, err.Error())
	}
	if !resp.HasStatus(http.StatusOK, http.StatusCreated) {
		logger.Error("Campaign creation rejected", zap.Int("statusCode", resp.StatusCode))
		return "", serviceerror.CustomServiceError(ErrorCampaignCreationRejected,
			fmt.Sprintf("Status: %d, Response: %s", resp.StatusCode, resp.BodySnippet()))
	}

	var created createCampaignResponse
	if err := resp.DecodeJSON(&created); err != nil || created.ID == "" {
		logger.Error("Campaign creation response has no campaign id", zap.Int("statusCode", resp.StatusCode))
		return "", serviceerror.CustomServiceError(ErrorMissingCampaignID,
			fmt.Sprintf("Status: %d, Response: %s", resp.StatusCode, resp.BodySnippet()))
	}

	logger.Info("Campaign created", zap.String("campaignId", created.ID))
	return created.ID, nil
}

// Activate starts the campaign in the configured time zone and returns the response status.
func (s *campaignService) Activate(ctx context.Context, campaignID string) (int, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(zap.String(log.LoggerKeyComponentName, loggerComponentName),
		zap.String("campaignId", campaignID))
	logger.Info("Activating campaign", zap.String("timeZone", s.options.TimeZone))

	resp, err := s.apiClient.Post(ctx, campaignPath(campaignID)+"/activate",
		activateRequest{TimeZone: s.options.TimeZone})
	if err != nil {
		logger.Warn("Campaign activation request failed", zap.Error(err))
		return 0, serviceerror.CustomServiceError(ErrorActivationFailed, err.Error())
	}
	if !resp.HasStatus(http.StatusOK, http.StatusAccepted, http.StatusNoContent) {
		logger.Warn("Campaign activation rejected", zap.Int("statusCode", resp.StatusCode))
		return resp.StatusCode, serviceerror.CustomServiceError(ErrorActivationFailed,
			fmt.Sprintf("Status: %d, Response: %s", resp.StatusCode, resp.BodySnippet()))
	}

	logger.Info("Campaign activated", zap.Int("statusCode", resp.StatusCode))
	return resp.StatusCode, nil
}

// Delete removes the campaign.
func (s *campaignService) Delete(ctx context.Context, campaignID string) error {
	resp, err := s.apiClient.Post(ctx, deleteCampaignPath, deleteRequest{IDs: []string{campaignID}})
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("campaign deletion returned status %d: %s", resp.StatusCode, resp.BodySnippet())
	}
	return nil
}

// CreateAndActivate creates the campaign, waits as configured and activates it. A creation failure
// is returned without an outcome and activation is not attempted. An activation failure is returned
// together with the outcome since the campaign exists at that point.
func (s *campaignService) CreateAndActivate(ctx context.Context, definition *CampaignDefinition) (
	*ActivationOutcome, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(zap.String(log.LoggerKeyComponentName, loggerComponentName))

	campaignID, svcErr := s.Create(ctx, definition)
	if svcErr != nil {
		return nil, svcErr
	}

	outcome := &ActivationOutcome{CampaignID: campaignID}
	outcome.Visible = s.WaitUntilVisible(ctx, campaignID)

	outcome.ActivationStatus, svcErr = s.Activate(ctx, campaignID)
	if svcErr == nil {
		outcome.Activated = true
		return outcome, nil
	}
	outcome.ActivationError = svcErr

	if !s.options.RollbackOnActivationFailure {
		logger.Warn("Campaign was created but not activated and is left in place",
			zap.String("campaignId", campaignID))
		return outcome, svcErr
	}

	if err := s.Delete(ctx, campaignID); err != nil {
		logger.Error("Failed to delete the campaign that could not be activated",
			zap.String("campaignId", campaignID), zap.Error(err))
		return outcome, svcErr
	}
	logger.Info("Deleted the campaign that could not be activated", zap.String("campaignId", campaignID))
	outcome.RolledBack = true
	return outcome, svcErr
}

func campaignPath(campaignID string) string {
	return campaignsPath + "/" + url.PathEscape(campaignID)
}
