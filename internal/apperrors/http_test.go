package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "Insufficient balance shows amounts",
			err:             fmt.Errorf("caller %w", NewInsufficientBalanceError("user balance", decimal.NewFromInt(80), decimal.NewFromInt(20))),
			expectedCode:    http.StatusPaymentRequired,
			expectedMessage: "user balance: insufficient balance, required 80, available 20",
		},
		{
			name:            "Invalid state shows state",
			err:             fmt.Errorf("caller %w", NewInvalidStateError("deposit request", "APPROVED", "approve")),
			expectedCode:    http.StatusConflict,
			expectedMessage: "cannot approve deposit request in state APPROVED",
		},
		{
			name:            "Not found hides resource",
			err:             fmt.Errorf("caller %w", ErrPayoutNotFound),
			expectedCode:    http.StatusNotFound,
			expectedMessage: "not found",
		},
		{
			name:            "Gateway failure is generic",
			err:             fmt.Errorf("%w: gateway responded 502", ErrServiceUnavailable),
			expectedCode:    http.StatusServiceUnavailable,
			expectedMessage: "service unavailable, try again later",
		},
		{
			name:            "Gateway credentials are not leaked",
			err:             ErrGatewayAuthenticationFailed,
			expectedCode:    http.StatusServiceUnavailable,
			expectedMessage: "service unavailable, try again later",
		},
		{
			name:            "Unknown login looks like a wrong password",
			err:             NewValueError("user not found", "repository.SelectByLogin", ErrUserNotFound),
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "invalid login or password",
		},
		{
			name:            "Missing gateway reference is a bad request",
			err:             fmt.Errorf("caller %w", ErrGatewayReferenceRequired),
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "gateway reference is required",
		},
		{
			name:            "Database error is internal",
			err:             NewValueError("query failed", "repository.Select", errors.New("connection reset")),
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			code, message := HTTPStatus(test.err)
			assert.Equal(t, test.expectedCode, code)
			assert.Equal(t, test.expectedMessage, message)
		})
	}
}
