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


package accessprofile

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/asgardeo/certcampaign/internal/platform/client"
	"github.com/asgardeo/certcampaign/internal/system/log"
	"github.com/asgardeo/certcampaign/tests/mocks/platform/clientmock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type AccessProfileResolverTestSuite struct {
	suite.Suite
	mockAPIClient *clientmock.APIClientInterfaceMock
	restoreLogger func()
}

func TestAccessProfileResolverTestSuite(t *testing.T) {
	suite.Run(t, new(AccessProfileResolverTestSuite))
}

func (suite *AccessProfileResolverTestSuite) SetupTest() {
	suite.restoreLogger = log.ReplaceLogger(zaptest.NewLogger(suite.T()))
	suite.mockAPIClient = clientmock.NewAPIClientInterfaceMock(suite.T())
}

func (suite *AccessProfileResolverTestSuite) SetupSubTest() {
	suite.mockAPIClient = clientmock.NewAPIClientInterfaceMock(suite.T())
}

func (suite *AccessProfileResolverTestSuite) TearDownTest() {
	suite.restoreLogger()
}

func (suite *AccessProfileResolverTestSuite) expectLookup(name string, status int, body string) *mock.Call {
	return suite.mockAPIClient.On("Get", mock.Anything, accessProfilesPath, client.FilterQuery("name", name)).
		Return(&client.Response{StatusCode: status, Body: []byte(body)}, nil)
}

func (suite *AccessProfileResolverTestSuite) modes() map[string]Options {
	return map[string]Options{
		"Sequential": {},
		"Parallel":   {Parallel: true, MaxParallel: 2},
	}
}

func (suite *AccessProfileResolverTestSuite) TestResolveAllPreservesOrder() {
	for mode, options := range suite.modes() {
		suite.Run(mode, func() {
			suite.expectLookup("Payroll Admin", http.StatusOK, `[{"id":"A1","name":"Payroll Admin"}]`).Once()
			suite.expectLookup("HR Reader", http.StatusOK, `[{"id":"A2","name":"HR Reader"}]`).Once()
			suite.expectLookup("Ledger", http.StatusOK, `[{"id":"A3"},{"id":"A4"}]`).Once()

			resolver := NewAccessProfileResolver(suite.mockAPIClient, options)
			ids, svcErr := resolver.ResolveAll(context.Background(), " Payroll Admin, HR Reader ,,Ledger,HR Reader")
			suite.Nil(svcErr)
			suite.Equal([]string{"A1", "A2", "A3"}, ids)
			suite.mockAPIClient.AssertNumberOfCalls(suite.T(), "Get", 3)
		})
	}
}

func (suite *AccessProfileResolverTestSuite) TestResolveAllIsAllOrNothing() {
	for mode, options := range suite.modes() {
		suite.Run(mode, func() {
			suite.expectLookup("P1", http.StatusOK, `[{"id":"ID-P1"}]`).Once()
			suite.expectLookup("P2", http.StatusOK, `[]`).Once()

			resolver := NewAccessProfileResolver(suite.mockAPIClient, options)
			ids, svcErr := resolver.ResolveAll(context.Background(), "P1, P2")
			suite.Nil(ids)
			suite.Require().NotNil(svcErr)
			suite.Equal(ErrorAccessProfilesNotResolved.Code, svcErr.Code)
			suite.Contains(svcErr.ErrorDescription, "P2")
			suite.NotContains(svcErr.ErrorDescription, "P1")
		})
	}
}

func (suite *AccessProfileResolverTestSuite) TestResolveAllReportsEveryUnresolvedName() {
	suite.expectLookup("P1", http.StatusNotFound, `{}`).Once()
	suite.expectLookup("P2", http.StatusOK, `[{"id":"ID-P2"}]`).Once()
	suite.expectLookup("P3", http.StatusOK, `{"unexpected":"object"}`).Once()
	suite.mockAPIClient.On("Get", mock.Anything, accessProfilesPath, client.FilterQuery("name", "P4")).
		Return(nil, errors.New("timeout")).Once()

	resolver := NewAccessProfileResolver(suite.mockAPIClient, Options{})
	ids, svcErr := resolver.ResolveAll(context.Background(), "P1,P2,P3,P4")
	suite.Nil(ids)
	suite.Require().NotNil(svcErr)
	suite.Equal("Could not resolve the access profiles: P1, P3, P4", svcErr.ErrorDescription)
}

func (suite *AccessProfileResolverTestSuite) TestNonOKSuccessStatusIsRejected() {
	suite.expectLookup("P1", http.StatusAccepted, `[{"id":"ID-P1"}]`).Once()

	resolver := NewAccessProfileResolver(suite.mockAPIClient, Options{})
	ids, svcErr := resolver.ResolveAll(context.Background(), "P1")
	suite.Nil(ids)
	suite.NotNil(svcErr)
}

func (suite *AccessProfileResolverTestSuite) TestEmptyNameListMakesNoCalls() {
	resolver := NewAccessProfileResolver(suite.mockAPIClient, Options{Parallel: true})
	ids, svcErr := resolver.ResolveAll(context.Background(), " , ,")
	suite.Nil(ids)
	suite.Require().NotNil(svcErr)
	suite.Equal(ErrorNoAccessProfileNames.Code, svcErr.Code)
	suite.mockAPIClient.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccessProfileResolverTestSuite) TestParallelLookupsAreBounded() {
	var inFlight, peak atomic.Int32
	names := []string{"P1", "P2", "P3", "P4", "P5"}
	for _, name := range names {
		suite.expectLookup(name, http.StatusOK, `[{"id":"ID-`+name+`"}]`).
			Run(func(mock.Arguments) {
				current := inFlight.Add(1)
				for {
					seen := peak.Load()
					if current <= seen || peak.CompareAndSwap(seen, current) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
			}).Once()
	}

	resolver := NewAccessProfileResolver(suite.mockAPIClient, Options{Parallel: true, MaxParallel: 2})
	ids, svcErr := resolver.ResolveAll(context.Background(), "P1,P2,P3,P4,P5")
	suite.Nil(svcErr)
	suite.Equal([]string{"ID-P1", "ID-P2", "ID-P3", "ID-P4", "ID-P5"}, ids)
	suite.LessOrEqual(peak.Load(), int32(2))
}
