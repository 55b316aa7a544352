package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizsuite/loyalty/internal/domain/loyalty"
	apperrors "github.com/bizsuite/loyalty/internal/errors"
	"github.com/bizsuite/loyalty/internal/model"
	svcMocks "github.com/bizsuite/loyalty/internal/service/mocks"
	"github.com/bizsuite/loyalty/internal/validation"
)

const (
	testCustomerID = "7b45dbaa-ddf8-4ded-b858-78be123b3e6f"
	testRewardID   = "e7be204e-b693-4b99-b067-2eae1610b3ee"
)

type handlersTestSuite struct {
	suite.Suite
	app             *echo.Echo
	loyaltySvcMock  *svcMocks.LoyaltyService
	rewardSvcMock   *svcMocks.RewardService
	reportSvcMock   *svcMocks.ReportService
	settingsSvcMock *svcMocks.SettingsService
}

func (s *handlersTestSuite) SetupTest() {
	t := s.T()

	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		s.Require().Fail("failed to build echo validator because of missing en translations")
	}

	s.app = echo.New()
	s.app.Validator = validation.Echo(validator.New(), trans)

	s.loyaltySvcMock = svcMocks.NewLoyaltyService(t)
	s.rewardSvcMock = svcMocks.NewRewardService(t)
	s.reportSvcMock = svcMocks.NewReportService(t)
	s.settingsSvcMock = svcMocks.NewSettingsService(t)
}

func (s *handlersTestSuite) TestCustomerHTTPHandler() {
	t := s.T()
	require := s.Require()

	customerHTTPHandler := NewCustomerHTTPHandler(s.loyaltySvcMock)

	t.Log("enroll customer with wrong payload")
	{
		wrongPayloadJSON := `{"name":"John Walls","email":"john.wa`
		c, _ := s.echoPostContext("/api/v1/customers", wrongPayloadJSON)
		err := customerHTTPHandler.Post(c)
		require.Error(err, "wrong payload has been provided but no error raised")
		require.IsType(&echo.HTTPError{}, err, "error must be echo error")
	}

	t.Log("enroll customer with invalid data in payload")
	{
		invalidJSON := `{"name":"John Walls","email":"john.walls-somemail.com","phone":"+12025550101"}`
		c, _ := s.echoPostContext("/api/v1/customers", invalidJSON)
		err := customerHTTPHandler.Post(c)
		require.Error(err, "invalid data in payload has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("enroll customer successfully")
	{
		s.loyaltySvcMock.On("Enroll", mock.Anything, mock.AnythingOfType("loyalty.Enrollment")).
			Return(&model.Customer{ID: testCustomerID, Name: "John Walls", Level: "bronze"}, nil).Once()

		enrollJSON := `{"name":"John Walls","email":"john.walls@somemail.com","phone":"+12025550101","initialPoints":0}`
		c, rec := s.echoPostContext("/api/v1/customers", enrollJSON)
		err := customerHTTPHandler.Post(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusCreated, rec.Code, "response code must be Created")
	}

	t.Log("accrue points with invalid amount")
	{
		invalidJSON := `{"amount":-20}`
		c, _ := s.echoPostContext(fmt.Sprintf("/api/v1/customers/%s/purchases", testCustomerID), invalidJSON)
		c.SetParamNames("id")
		c.SetParamValues(testCustomerID)
		err := customerHTTPHandler.Purchase(c)
		require.Error(err, "invalid amount has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("accrue points successfully")
	{
		s.loyaltySvcMock.On("AddPointsFromPurchase", mock.Anything, testCustomerID, 25.5).
			Return(&model.Customer{ID: testCustomerID, Points: 26, Level: "bronze"}, nil).Once()

		c, rec := s.echoPostContext(fmt.Sprintf("/api/v1/customers/%s/purchases", testCustomerID), `{"amount":25.5}`)
		c.SetParamNames("id")
		c.SetParamValues(testCustomerID)
		err := customerHTTPHandler.Purchase(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")
	}

	t.Log("adjust points for customer with insufficient balance")
	{
		s.loyaltySvcMock.On("AddPointsManual", mock.Anything, testCustomerID, -500).
			Return(nil, apperrors.NewInsufficientPointsErr("customer has 30 points, debit of 500 is not possible")).Once()

		c, _ := s.echoPostContext(fmt.Sprintf("/api/v1/customers/%s/points", testCustomerID), `{"delta":-500}`)
		c.SetParamNames("id")
		c.SetParamValues(testCustomerID)
		err := customerHTTPHandler.Adjust(c)
		require.Error(err, "debit exceeds balance but no error raised")

		var insufficientErr *apperrors.InsufficientPointsErr
		require.ErrorAs(err, &insufficientErr, "error must be insufficient points error")
	}

	t.Log("adjust points successfully")
	{
		s.loyaltySvcMock.On("AddPointsManual", mock.Anything, testCustomerID, 50).
			Return(&model.Customer{ID: testCustomerID, Points: 80, Level: "bronze"}, nil).Once()

		c, rec := s.echoPostContext(fmt.Sprintf("/api/v1/customers/%s/points", testCustomerID), `{"delta":50}`)
		c.SetParamNames("id")
		c.SetParamValues(testCustomerID)
		err := customerHTTPHandler.Adjust(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")
	}

	t.Log("redeem reward with invalid reward id")
	{
		c, _ := s.echoPostContext(fmt.Sprintf("/api/v1/customers/%s/redemptions", testCustomerID), `{"rewardId":"1111"}`)
		c.SetParamNames("id")
		c.SetParamValues(testCustomerID)
		err := customerHTTPHandler.Redeem(c)
		require.Error(err, "invalid reward id has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("redeem reward successfully")
	{
		s.loyaltySvcMock.On("Redeem", mock.Anything, testCustomerID, testRewardID).
			Return(&model.Customer{ID: testCustomerID, Points: 200, Level: "bronze"}, nil).Once()

		redeemJSON := fmt.Sprintf(`{"rewardId":%q}`, testRewardID)
		c, rec := s.echoPostContext(fmt.Sprintf("/api/v1/customers/%s/redemptions", testCustomerID), redeemJSON)
		c.SetParamNames("id")
		c.SetParamValues(testCustomerID)
		err := customerHTTPHandler.Redeem(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")
	}

	t.Log("get missing customer by id")
	{
		s.loyaltySvcMock.On("FindByID", mock.Anything, testCustomerID).Return(nil, nil).Once()

		c, _ := s.echoGetContext(fmt.Sprintf("/api/v1/customers/%s", testCustomerID))
		c.SetParamNames("id")
		c.SetParamValues(testCustomerID)
		err := customerHTTPHandler.Get(c)
		require.Error(err, "customer doesn't exist but no error raised")

		var echoErr *echo.HTTPError
		require.ErrorAs(err, &echoErr, "error must be echo error")
		require.Equal(http.StatusNotFound, echoErr.Code, "code must be not found")
	}

	t.Log("get customer by id successfully")
	{
		s.loyaltySvcMock.On("FindByID", mock.Anything, testCustomerID).
			Return(&model.Customer{ID: testCustomerID, Name: "John Walls"}, nil).Once()

		c, rec := s.echoGetContext(fmt.Sprintf("/api/v1/customers/%s", testCustomerID))
		c.SetParamNames("id")
		c.SetParamValues(testCustomerID)
		err := customerHTTPHandler.Get(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")
	}

	t.Log("get all customers successfully")
	{
		s.loyaltySvcMock.On("FindAll", mock.Anything).
			Return([]*model.Customer{{ID: testCustomerID}}, nil).Once()

		c, rec := s.echoGetContext("/api/v1/customers")
		err := customerHTTPHandler.GetAll(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")
	}

	t.Log("delete customer by id")
	{
		s.loyaltySvcMock.On("DeleteByID", mock.Anything, testCustomerID).Return(nil).Once()

		c, rec := s.echoDeleteContext("/api/v1/customers", testCustomerID)
		err := customerHTTPHandler.DeleteByID(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusNoContent, rec.Code, "response status must be No Content")
	}
}

func (s *handlersTestSuite) TestRewardHTTPHandler() {
	t := s.T()
	require := s.Require()

	rewardHTTPHandler := NewRewardHTTPHandler(s.rewardSvcMock)

	t.Log("post reward with invalid data in payload")
	{
		invalidJSON := `{"title":"Free Coffee","description":"any size","pointsRequired":0}`
		c, _ := s.echoPostContext("/api/v1/rewards", invalidJSON)
		err := rewardHTTPHandler.Post(c)
		require.Error(err, "invalid data in payload has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("post reward successfully")
	{
		s.rewardSvcMock.On("Create", mock.Anything, mock.AnythingOfType("*model.Reward")).
			Return(&model.Reward{ID: testRewardID, Title: "Free Coffee"}, nil).Once()

		rewardJSON := `{"title":"Free Coffee","description":"any size","pointsRequired":100,"active":true}`
		c, rec := s.echoPostContext("/api/v1/rewards", rewardJSON)
		err := rewardHTTPHandler.Post(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusCreated, rec.Code, "response code must be Created")
	}

	t.Log("put missing reward")
	{
		s.rewardSvcMock.On("Update", mock.Anything, mock.AnythingOfType("*model.Reward")).
			Return(nil, apperrors.NewEntryNotFoundErr(fmt.Sprintf("reward with id %s doesn't exist", testRewardID))).Once()

		rewardJSON := `{"title":"Free Coffee","description":"any size","pointsRequired":150,"active":true}`
		c, _ := s.echoPutContext(fmt.Sprintf("/api/v1/rewards/%s", testRewardID), testRewardID, rewardJSON)
		err := rewardHTTPHandler.Put(c)
		require.Error(err, "reward doesn't exist but no error raised")

		var notFoundErr *apperrors.EntryNotFoundErr
		require.ErrorAs(err, &notFoundErr, "error must be not found error")
	}

	t.Log("put reward successfully")
	{
		s.rewardSvcMock.On("Update", mock.Anything, mock.AnythingOfType("*model.Reward")).
			Return(&model.Reward{ID: testRewardID, Title: "Free Coffee", PointsRequired: 150}, nil).Once()

		rewardJSON := `{"title":"Free Coffee","description":"any size","pointsRequired":150,"active":true}`
		c, rec := s.echoPutContext(fmt.Sprintf("/api/v1/rewards/%s", testRewardID), testRewardID, rewardJSON)
		err := rewardHTTPHandler.Put(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")
	}

	t.Log("get all rewards with active filter")
	{
		s.rewardSvcMock.On("FindAll", mock.Anything, true).
			Return([]*model.Reward{{ID: testRewardID, Active: true}}, nil).Once()

		c, rec := s.echoGetContext("/api/v1/rewards?activeOnly=true")
		err := rewardHTTPHandler.GetAll(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")
	}

	t.Log("delete reward by id")
	{
		s.rewardSvcMock.On("DeleteByID", mock.Anything, testRewardID).Return(nil).Once()

		c, rec := s.echoDeleteContext("/api/v1/rewards", testRewardID)
		err := rewardHTTPHandler.DeleteByID(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusNoContent, rec.Code, "response status must be No Content")
	}
}

func (s *handlersTestSuite) TestReportHTTPHandler() {
	t := s.T()
	require := s.Require()

	reportHTTPHandler := NewReportHTTPHandler(s.reportSvcMock)

	t.Log("get report successfully")
	{
		s.reportSvcMock.On("GenerateReport", mock.Anything).
			Return(&model.ProgramReport{CustomerCount: 3, TotalPoints: 4500}, nil).Once()

		c, rec := s.echoGetContext("/api/v1/report")
		err := reportHTTPHandler.Get(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")

		var report model.ProgramReport
		require.NoError(json.NewDecoder(rec.Body).Decode(&report), "failed to parse report from response")
		require.Equal(3, report.CustomerCount)
		require.Equal(4500, report.TotalPoints)
	}
}

func (s *handlersTestSuite) TestSettingsHTTPHandler() {
	t := s.T()
	require := s.Require()

	settings, err := loyalty.NewSettings(1, 100, loyalty.DefaultTierTable())
	require.NoError(err)

	settingsHTTPHandler := NewSettingsHTTPHandler(s.settingsSvcMock, s.loyaltySvcMock)

	t.Log("get settings snapshot")
	{
		s.settingsSvcMock.On("Snapshot").Return(settings).Once()

		c, rec := s.echoGetContext("/api/v1/settings")
		err := settingsHTTPHandler.Get(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")
	}

	t.Log("put settings with empty tier table")
	{
		invalidJSON := `{"pointsPerCurrencyUnit":1,"minimumRedeemPoints":100,"tiers":[]}`
		c, _ := s.echoPutContext("/api/v1/settings", "", invalidJSON)
		err := settingsHTTPHandler.Put(c)
		require.Error(err, "empty tier table has been provided but no error raised")
		require.IsType(&validation.PayloadError{}, err, "error must be payload error")
	}

	t.Log("put settings successfully")
	{
		s.settingsSvcMock.On("Update", mock.Anything, mock.AnythingOfType("model.ProgramSettings"), mock.AnythingOfType("[]loyalty.Tier")).
			Return(settings, nil).Once()

		settingsJSON := `{
			"pointsPerCurrencyUnit":1,
			"minimumRedeemPoints":100,
			"tiers":[{"id":"bronze","minPoints":0,"displayName":"Bronze"}]
		}`
		c, rec := s.echoPutContext("/api/v1/settings", "", settingsJSON)
		err := settingsHTTPHandler.Put(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")
	}

	t.Log("recompute levels")
	{
		s.loyaltySvcMock.On("RecomputeLevels", mock.Anything).Return(2, nil).Once()

		c, rec := s.echoPostContext("/api/v1/settings/recompute-levels", "")
		err := settingsHTTPHandler.RecomputeLevels(c)
		require.NoError(err, "no error must be raised")
		require.Equal(http.StatusOK, rec.Code, "response status must be OK")

		var resp recomputeResponse
		require.NoError(json.NewDecoder(rec.Body).Decode(&resp), "failed to parse response")
		require.Equal(2, resp.AdjustedCustomers)
	}
}

func (s *handlersTestSuite) echoPostContext(target, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *handlersTestSuite) echoGetContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	return s.app.NewContext(req, rec), rec
}

func (s *handlersTestSuite) echoDeleteContext(target, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodDelete, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := s.app.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func (s *handlersTestSuite) echoPutContext(target, id, payload string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.app.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

// start handlers test suite
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(handlersTestSuite))
}
