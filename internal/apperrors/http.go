package apperrors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a service error to the status and the message shown to the
// caller. Internal details never leave this function.
func HTTPStatus(err error) (int, string) {
	var insufficient *InsufficientBalanceError
	switch {
	case errors.As(err, &insufficient):
		return http.StatusPaymentRequired, insufficient.Error()
	case errors.Is(err, ErrInsufficientBalance):
		return http.StatusPaymentRequired, ErrInsufficientBalance.Error()
	case errors.Is(err, ErrInvalidAmount):
		return http.StatusBadRequest, ErrInvalidAmount.Error()
	case errors.Is(err, ErrInvalidState):
		var invalid *InvalidStateError
		if errors.As(err, &invalid) {
			return http.StatusConflict, invalid.Error()
		}
		return http.StatusConflict, ErrInvalidState.Error()
	case errors.Is(err, ErrBalanceAlreadyExists):
		return http.StatusConflict, ErrBalanceAlreadyExists.Error()
	case errors.Is(err, ErrLoginAlreadyExists):
		return http.StatusConflict, ErrLoginAlreadyExists.Error()
	case errors.Is(err, ErrInvalidPassword), errors.Is(err, ErrUserNotFound):
		return http.StatusUnauthorized, "invalid login or password"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, ErrForbidden.Error()
	case errors.Is(err, ErrBalanceNotFound),
		errors.Is(err, ErrDepositNotFound),
		errors.Is(err, ErrPayoutNotFound),
		errors.Is(err, ErrEntryNotFound),
		errors.Is(err, ErrPoolNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, ErrGatewayReferenceRequired):
		return http.StatusBadRequest, ErrGatewayReferenceRequired.Error()
	case errors.Is(err, ErrUnknownProduct):
		return http.StatusBadRequest, ErrUnknownProduct.Error()
	case errors.Is(err, ErrPoolUnavailable):
		return http.StatusServiceUnavailable, ErrPoolUnavailable.Error()
	case errors.Is(err, ErrReconciliationAlreadyInProgress):
		return http.StatusConflict, ErrReconciliationAlreadyInProgress.Error()
	case errors.Is(err, ErrServiceUnavailable), errors.Is(err, ErrGatewayAuthenticationFailed):
		return http.StatusServiceUnavailable, ErrServiceUnavailable.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
