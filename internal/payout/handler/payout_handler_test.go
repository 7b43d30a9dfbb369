package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/middleware"
	mock "github.com/msmkdenis/yap-poolledger/internal/mocks"
	"github.com/msmkdenis/yap-poolledger/internal/payout/handler/dto"
	"github.com/msmkdenis/yap-poolledger/internal/payout/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

type PayoutHandlersSuite struct {
	suite.Suite
	h             *PayoutHandler
	payoutService *mock.MockPayoutService
	echo          *echo.Echo
	ctrl          *gomock.Controller
	jwtManager    *utils.JWTManager
	sellerCookie  *http.Cookie
	adminCookie   *http.Cookie
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(PayoutHandlersSuite))
}

func (p *PayoutHandlersSuite) SetupTest() {
	logger, _ := zap.NewProduction()
	jwtManager := utils.InitJWTManager("token", "supersecretkey", logger)
	jwtAuth := middleware.InitJWTAuth(jwtManager, logger)
	p.jwtManager = jwtManager
	p.ctrl = gomock.NewController(p.T())
	p.echo = echo.New()
	p.payoutService = mock.NewMockPayoutService(p.ctrl)
	p.h = NewPayoutHandler(p.echo, p.payoutService, logger, jwtAuth)

	var err error
	p.sellerCookie, err = p.createCookie("seller-1", utils.RoleSeller)
	require.NoError(p.T(), err)
	p.adminCookie, err = p.createCookie("admin-1", utils.RoleAdmin)
	require.NoError(p.T(), err)
}

func payout(status model.Status) *model.PayoutRequest {
	return &model.PayoutRequest{
		ID:        "payout-1",
		UserID:    "seller-1",
		Amount:    decimal.NewFromInt(150),
		Status:    status,
		CreatedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (p *PayoutHandlersSuite) TestCreate() {
	testCases := []struct {
		name         string
		cookie       *http.Cookie
		body         string
		prepare      func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Unauthorized - 401",
			body: `{"amount": 150}`,
			prepare: func() {
				p.payoutService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Success - 201",
			cookie: p.sellerCookie,
			body:   `{"amount": 150}`,
			prepare: func() {
				p.payoutService.EXPECT().Create(gomock.Any(), "seller-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, amount decimal.Decimal) (*model.PayoutRequest, error) {
						assert.True(p.T(), decimal.NewFromInt(150).Equal(amount))
						return payout(model.StatusPending), nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:   "Zero amount - 400",
			cookie: p.sellerCookie,
			body:   `{"amount": 0}`,
			prepare: func() {
				p.payoutService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: apperrors.ErrInvalidAmount.Error(),
		},
		{
			name:   "Insufficient balance - 402",
			cookie: p.sellerCookie,
			body:   `{"amount": 150}`,
			prepare: func() {
				p.payoutService.EXPECT().Create(gomock.Any(), "seller-1", gomock.Any()).
					Return(nil, apperrors.NewInsufficientBalanceError("user", decimal.NewFromInt(150), decimal.NewFromInt(20)))
			},
			expectedCode: http.StatusPaymentRequired,
		},
	}

	for _, test := range testCases {
		p.T().Run(test.name, func(t *testing.T) {
			test.prepare()

			request := httptest.NewRequest(http.MethodPost, "http://localhost:8000/api/user/payouts", strings.NewReader(test.body))
			request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if test.cookie != nil {
				request.AddCookie(test.cookie)
			}

			w := httptest.NewRecorder()
			p.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
			if test.expectedBody != "" {
				assert.Equal(t, test.expectedBody, w.Body.String())
			}
		})
	}
}

func (p *PayoutHandlersSuite) TestListEmpty() {
	p.payoutService.EXPECT().ListByUser(gomock.Any(), "seller-1").Return(nil, nil)

	request := httptest.NewRequest(http.MethodGet, "http://localhost:8000/api/user/payouts", nil)
	request.AddCookie(p.sellerCookie)
	w := httptest.NewRecorder()
	p.echo.ServeHTTP(w, request)

	assert.Equal(p.T(), http.StatusNoContent, w.Code)
}

func (p *PayoutHandlersSuite) TestCancel() {
	p.payoutService.EXPECT().Cancel(gomock.Any(), "payout-1", "seller-1").Return(nil, apperrors.ErrForbidden)

	request := httptest.NewRequest(http.MethodPost, "http://localhost:8000/api/user/payouts/payout-1/cancel", nil)
	request.AddCookie(p.sellerCookie)
	w := httptest.NewRecorder()
	p.echo.ServeHTTP(w, request)

	assert.Equal(p.T(), http.StatusForbidden, w.Code)
}

func (p *PayoutHandlersSuite) TestListPending() {
	testCases := []struct {
		name         string
		query        string
		prepare      func()
		expectedCode int
	}{
		{
			name: "Default limit - 200",
			prepare: func() {
				p.payoutService.EXPECT().ListPending(gomock.Any(), 0).Return([]model.PayoutRequest{*payout(model.StatusPending)}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Explicit limit - 200",
			query: "?limit=5",
			prepare: func() {
				p.payoutService.EXPECT().ListPending(gomock.Any(), 5).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Bad limit - 400",
			query: "?limit=abc",
			prepare: func() {
				p.payoutService.EXPECT().ListPending(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, test := range testCases {
		p.T().Run(test.name, func(t *testing.T) {
			test.prepare()

			request := httptest.NewRequest(http.MethodGet, "http://localhost:8000/api/admin/payouts"+test.query, nil)
			request.AddCookie(p.adminCookie)
			w := httptest.NewRecorder()
			p.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
		})
	}
}

func (p *PayoutHandlersSuite) TestProcess() {
	testCases := []struct {
		name           string
		cookie         *http.Cookie
		prepare        func()
		expectedCode   int
		expectedStatus string
	}{
		{
			name:   "Seller is forbidden - 403",
			cookie: p.sellerCookie,
			prepare: func() {
				p.payoutService.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Completed - 200",
			cookie: p.adminCookie,
			prepare: func() {
				completed := payout(model.StatusCompleted)
				completed.GatewayReference = "gw-1"
				p.payoutService.EXPECT().Process(gomock.Any(), "payout-1", "admin-1").Return(completed, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "COMPLETED",
		},
		{
			name:   "Gateway failed - 200",
			cookie: p.adminCookie,
			prepare: func() {
				failed := payout(model.StatusFailed)
				failed.FailureReason = apperrors.ErrServiceUnavailable.Error()
				p.payoutService.EXPECT().Process(gomock.Any(), "payout-1", "admin-1").Return(failed, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "FAILED",
		},
		{
			name:   "Already processing - 409",
			cookie: p.adminCookie,
			prepare: func() {
				p.payoutService.EXPECT().Process(gomock.Any(), "payout-1", "admin-1").
					Return(nil, apperrors.NewInvalidStateError("payout request", "PROCESSING", "process"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, test := range testCases {
		p.T().Run(test.name, func(t *testing.T) {
			test.prepare()

			request := httptest.NewRequest(http.MethodPost, "http://localhost:8000/api/admin/payouts/payout-1/process", nil)
			request.AddCookie(test.cookie)
			w := httptest.NewRecorder()
			p.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
			if test.expectedStatus != "" {
				var response dto.PayoutResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, test.expectedStatus, response.Status)
			}
		})
	}
}

func (p *PayoutHandlersSuite) TestRejectWithoutReason() {
	p.payoutService.EXPECT().Reject(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	request := httptest.NewRequest(http.MethodPost, "http://localhost:8000/api/admin/payouts/payout-1/reject", strings.NewReader(`{}`))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	request.AddCookie(p.adminCookie)
	w := httptest.NewRecorder()
	p.echo.ServeHTTP(w, request)

	assert.Equal(p.T(), http.StatusBadRequest, w.Code)
}

func (p *PayoutHandlersSuite) TestResolve() {
	testCases := []struct {
		name           string
		cookie         *http.Cookie
		body           string
		prepare        func()
		expectedCode   int
		expectedStatus string
	}{
		{
			name:   "Seller is forbidden - 403",
			cookie: p.sellerCookie,
			body:   `{"outcome": "failed"}`,
			prepare: func() {
				p.payoutService.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Completed - 200",
			cookie: p.adminCookie,
			body:   `{"outcome": "completed", "gateway_reference": "gw-late"}`,
			prepare: func() {
				completed := payout(model.StatusCompleted)
				completed.GatewayReference = "gw-late"
				p.payoutService.EXPECT().
					Resolve(gomock.Any(), "payout-1", model.OutcomeCompleted, "gw-late", "", "admin-1").
					Return(completed, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "COMPLETED",
		},
		{
			name:   "Failed - 200",
			cookie: p.adminCookie,
			body:   `{"outcome": "failed", "reason": "recipient account closed"}`,
			prepare: func() {
				failed := payout(model.StatusFailed)
				failed.FailureReason = "recipient account closed"
				p.payoutService.EXPECT().
					Resolve(gomock.Any(), "payout-1", model.OutcomeFailed, "", "recipient account closed", "admin-1").
					Return(failed, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "FAILED",
		},
		{
			name:   "Completed without reference - 400",
			cookie: p.adminCookie,
			body:   `{"outcome": "completed"}`,
			prepare: func() {
				p.payoutService.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Unknown outcome - 400",
			cookie: p.adminCookie,
			body:   `{"outcome": "refunded"}`,
			prepare: func() {
				p.payoutService.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Not processing - 409",
			cookie: p.adminCookie,
			body:   `{"outcome": "failed"}`,
			prepare: func() {
				p.payoutService.EXPECT().
					Resolve(gomock.Any(), "payout-1", model.OutcomeFailed, "", "", "admin-1").
					Return(nil, apperrors.NewInvalidStateError("payout request", "PENDING", "fail"))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, test := range testCases {
		p.T().Run(test.name, func(t *testing.T) {
			test.prepare()

			request := httptest.NewRequest(http.MethodPost, "http://localhost:8000/api/admin/payouts/payout-1/resolve",
				strings.NewReader(test.body))
			request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			request.AddCookie(test.cookie)
			w := httptest.NewRecorder()
			p.echo.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
			if test.expectedStatus != "" {
				var response dto.PayoutResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, test.expectedStatus, response.Status)
			}
		})
	}
}

func (p *PayoutHandlersSuite) createCookie(userID string, role string) (*http.Cookie, error) {
	token, err := p.jwtManager.BuildJWTString(userID, role)

	cookie := &http.Cookie{
		Name:  p.jwtManager.TokenName,
		Value: token,
	}

	return cookie, err
}
