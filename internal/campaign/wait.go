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


package campaign

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/asgardeo/certcampaign/internal/system/config"
	"github.com/asgardeo/certcampaign/internal/system/log"
)

type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitUntilVisible gives the platform time to index a new campaign before it is activated. In the
// poll mode the campaign is read back until it is found. It reports false when the campaign could
// not be confirmed or the wait was interrupted. The caller activates the campaign in any case.
func (s *campaignService) WaitUntilVisible(ctx context.Context, campaignID string) bool {
	logger := log.GetLogger().With(zap.String(log.LoggerKeyComponentName, loggerComponentName),
		zap.String("campaignId", campaignID))
	wait := s.options.Wait

	switch wait.Mode {
	case config.WaitModeSleep:
		logger.Debug("Waiting before activation", zap.Duration("delay", wait.Delay))
		if err := s.sleep(ctx, wait.Delay); err != nil {
			logger.Warn("Wait before activation interrupted", zap.Error(err))
			return false
		}
		return true
	case config.WaitModePoll:
		return s.poll(ctx, campaignID, logger)
	default:
		return true
	}
}

func (s *campaignService) poll(ctx context.Context, campaignID string, logger *zap.Logger) bool {
	wait := s.options.Wait
	for attempt := 1; attempt <= wait.Attempts; attempt++ {
		resp, err := s.apiClient.Get(ctx, campaignPath(campaignID), nil)
		switch {
		case err != nil:
			logger.Debug("Campaign lookup failed", zap.Int("attempt", attempt), zap.Error(err))
		case resp.StatusCode == http.StatusOK:
			logger.Debug("Campaign is visible", zap.Int("attempt", attempt))
			return true
		default:
			logger.Debug("Campaign is not visible yet", zap.Int("attempt", attempt),
				zap.Int("statusCode", resp.StatusCode))
		}

		if attempt == wait.Attempts {
			break
		}
		if err := s.sleep(ctx, wait.Interval); err != nil {
			logger.Warn("Wait before activation interrupted", zap.Error(err))
			return false
		}
	}

	logger.Warn("Campaign could not be confirmed before activation", zap.Int("attempts", wait.Attempts))
	return false
}
