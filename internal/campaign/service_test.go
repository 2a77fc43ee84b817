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
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/asgardeo/certcampaign/internal/platform/client"
	"github.com/asgardeo/certcampaign/internal/system/config"
	"github.com/asgardeo/certcampaign/internal/system/error/serviceerror"
	"github.com/asgardeo/certcampaign/internal/system/log"
	"github.com/asgardeo/certcampaign/tests/mocks/platform/clientmock"
)

const testCampaignID = "2c9180835d2e5168015d32f890ca1581"

type CampaignServiceTestSuite struct {
	suite.Suite
	mockAPIClient *clientmock.APIClientInterfaceMock
	sleeps        []time.Duration
	restoreLogger func()
	definition    *CampaignDefinition
}

func TestCampaignServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CampaignServiceTestSuite))
}

func (suite *CampaignServiceTestSuite) SetupTest() {
	suite.restoreLogger = log.ReplaceLogger(zaptest.NewLogger(suite.T()))
	suite.mockAPIClient = clientmock.NewAPIClientInterfaceMock(suite.T())
	suite.sleeps = nil
	suite.definition = BuildDefinition(DefinitionParams{
		Name: "Campaign", IdentityID: "I1", ReviewerID: "R1", ReviewerName: "Bob",
		AccessProfileIDs: []string{"A1"},
	})
}

func (suite *CampaignServiceTestSuite) TearDownTest() {
	suite.restoreLogger()
}

func (suite *CampaignServiceTestSuite) newService(options Options) *campaignService {
	service := NewCampaignService(suite.mockAPIClient, options).(*campaignService)
	service.sleep = func(ctx context.Context, d time.Duration) error {
		suite.sleeps = append(suite.sleeps, d)
		return ctx.Err()
	}
	return service
}

func response(status int, body string) *client.Response {
	return &client.Response{StatusCode: status, Body: []byte(body)}
}

func (suite *CampaignServiceTestSuite) expectCreate(status int, body string) {
	suite.mockAPIClient.On("Post", mock.Anything, campaignsPath, suite.definition).
		Return(response(status, body), nil).Once()
}

func (suite *CampaignServiceTestSuite) expectActivate(timeZone string, status int) {
	suite.mockAPIClient.On("Post", mock.Anything, campaignsPath+"/"+testCampaignID+"/activate",
		activateRequest{TimeZone: timeZone}).Return(response(status, ""), nil).Once()
}

func (suite *CampaignServiceTestSuite) TestCreateAndActivate() {
	suite.expectCreate(http.StatusCreated, `{"id":"`+testCampaignID+`","status":"STAGED"}`)
	suite.expectActivate("Asia/Kolkata", http.StatusAccepted)

	service := suite.newService(Options{TimeZone: "Asia/Kolkata", Wait: config.ActivationWaitConfig{
		Mode: config.WaitModeNone}})
	outcome, svcErr := service.CreateAndActivate(context.Background(), suite.definition)
	suite.Nil(svcErr)
	suite.Equal(&ActivationOutcome{
		CampaignID:       testCampaignID,
		Visible:          true,
		Activated:        true,
		ActivationStatus: http.StatusAccepted,
	}, outcome)
	suite.Empty(suite.sleeps)
}

func (suite *CampaignServiceTestSuite) TestActivationUsesDefaultTimeZone() {
	suite.expectActivate(config.DefaultTimeZone, http.StatusNoContent)

	status, svcErr := suite.newService(Options{}).Activate(context.Background(), testCampaignID)
	suite.Nil(svcErr)
	suite.Equal(http.StatusNoContent, status)
}

func (suite *CampaignServiceTestSuite) TestCreationRejectedSkipsActivation() {
	suite.expectCreate(http.StatusBadRequest, `{"detailCode":"400.1 Bad request content"}`)

	outcome, svcErr := suite.newService(Options{}).CreateAndActivate(context.Background(), suite.definition)
	suite.Nil(outcome)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorCampaignCreationRejected.Code, svcErr.Code)
	suite.Equal(serviceerror.CampaignCreationErrorType, svcErr.Type)
	suite.Contains(svcErr.ErrorDescription, "Status: 400")
	suite.Contains(svcErr.ErrorDescription, "Bad request content")
	suite.mockAPIClient.AssertNumberOfCalls(suite.T(), "Post", 1)
	suite.mockAPIClient.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CampaignServiceTestSuite) TestCreationWithoutIDSkipsActivation() {
	for _, body := range []string{`{}`, `{"id":""}`, `not json`} {
		suite.Run(body, func() {
			suite.mockAPIClient = clientmock.NewAPIClientInterfaceMock(suite.T())
			suite.expectCreate(http.StatusOK, body)

			outcome, svcErr := suite.newService(Options{}).CreateAndActivate(context.Background(), suite.definition)
			suite.Nil(outcome)
			suite.Require().NotNil(svcErr)
			suite.Equal(ErrorMissingCampaignID.Code, svcErr.Code)
			suite.mockAPIClient.AssertNumberOfCalls(suite.T(), "Post", 1)
		})
	}
}

func (suite *CampaignServiceTestSuite) TestCreationTransportFailure() {
	suite.mockAPIClient.On("Post", mock.Anything, campaignsPath, mock.Anything).
		Return(nil, errors.New("connection refused")).Once()

	campaignID, svcErr := suite.newService(Options{}).Create(context.Background(), suite.definition)
	suite.Empty(campaignID)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorCampaignCreationFailed.Code, svcErr.Code)
}

func (suite *CampaignServiceTestSuite) TestActivationFailureLeavesCampaign() {
	suite.expectCreate(http.StatusOK, `{"id":"`+testCampaignID+`"}`)
	suite.expectActivate(config.DefaultTimeZone, http.StatusBadRequest)

	outcome, svcErr := suite.newService(Options{}).CreateAndActivate(context.Background(), suite.definition)
	suite.Require().NotNil(svcErr)
	suite.Equal(serviceerror.ActivationErrorType, svcErr.Type)
	suite.False(svcErr.IsFatal())
	suite.Require().NotNil(outcome)
	suite.Equal(testCampaignID, outcome.CampaignID)
	suite.False(outcome.Activated)
	suite.False(outcome.RolledBack)
	suite.Equal(http.StatusBadRequest, outcome.ActivationStatus)
	suite.Equal(svcErr, outcome.ActivationError)
}

func (suite *CampaignServiceTestSuite) TestActivationFailureRollsBack() {
	suite.expectCreate(http.StatusOK, `{"id":"`+testCampaignID+`"}`)
	suite.expectActivate(config.DefaultTimeZone, http.StatusInternalServerError)
	suite.mockAPIClient.On("Post", mock.Anything, deleteCampaignPath, deleteRequest{IDs: []string{testCampaignID}}).
		Return(response(http.StatusAccepted, ""), nil).Once()

	service := suite.newService(Options{RollbackOnActivationFailure: true})
	outcome, svcErr := service.CreateAndActivate(context.Background(), suite.definition)
	suite.Require().NotNil(svcErr)
	suite.True(outcome.RolledBack)
}

func (suite *CampaignServiceTestSuite) TestRollbackFailureIsReported() {
	suite.expectCreate(http.StatusOK, `{"id":"`+testCampaignID+`"}`)
	suite.expectActivate(config.DefaultTimeZone, http.StatusConflict)
	suite.mockAPIClient.On("Post", mock.Anything, deleteCampaignPath, mock.Anything).
		Return(response(http.StatusForbidden, `{}`), nil).Once()

	service := suite.newService(Options{RollbackOnActivationFailure: true})
	outcome, svcErr := service.CreateAndActivate(context.Background(), suite.definition)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorActivationFailed.Code, svcErr.Code)
	suite.False(outcome.RolledBack)
}

func (suite *CampaignServiceTestSuite) TestSleepWait() {
	service := suite.newService(Options{Wait: config.ActivationWaitConfig{
		Mode: config.WaitModeSleep, Delay: 10 * time.Second}})

	suite.True(service.WaitUntilVisible(context.Background(), testCampaignID))
	suite.Equal([]time.Duration{10 * time.Second}, suite.sleeps)
}

func (suite *CampaignServiceTestSuite) TestPollWaitUntilVisible() {
	path := campaignsPath + "/" + testCampaignID
	suite.mockAPIClient.On("Get", mock.Anything, path, mock.Anything).
		Return(response(http.StatusNotFound, ""), nil).Once()
	suite.mockAPIClient.On("Get", mock.Anything, path, mock.Anything).
		Return(nil, errors.New("timeout")).Once()
	suite.mockAPIClient.On("Get", mock.Anything, path, mock.Anything).
		Return(response(http.StatusOK, `{"id":"`+testCampaignID+`"}`), nil).Once()

	service := suite.newService(Options{Wait: config.ActivationWaitConfig{
		Mode: config.WaitModePoll, Interval: 2 * time.Second, Attempts: 5}})

	suite.True(service.WaitUntilVisible(context.Background(), testCampaignID))
	suite.Equal([]time.Duration{2 * time.Second, 2 * time.Second}, suite.sleeps)
}

func (suite *CampaignServiceTestSuite) TestPollExhaustionStillActivates() {
	suite.expectCreate(http.StatusCreated, `{"id":"`+testCampaignID+`"}`)
	suite.mockAPIClient.On("Get", mock.Anything, campaignsPath+"/"+testCampaignID, mock.Anything).
		Return(response(http.StatusNotFound, ""), nil).Times(3)
	suite.expectActivate(config.DefaultTimeZone, http.StatusOK)

	service := suite.newService(Options{Wait: config.ActivationWaitConfig{
		Mode: config.WaitModePoll, Interval: time.Second, Attempts: 3}})
	outcome, svcErr := service.CreateAndActivate(context.Background(), suite.definition)
	suite.Nil(svcErr)
	suite.False(outcome.Visible)
	suite.True(outcome.Activated)
	suite.Len(suite.sleeps, 2)
}

func (suite *CampaignServiceTestSuite) TestCanceledWait() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := suite.newService(Options{Wait: config.ActivationWaitConfig{
		Mode: config.WaitModeSleep, Delay: time.Minute}})
	suite.False(service.WaitUntilVisible(ctx, testCampaignID))
}

func TestSleepContext(t *testing.T) {
	if err := sleepContext(context.Background(), time.Millisecond); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("sleep was not interrupted by the canceled context")
	}
}
