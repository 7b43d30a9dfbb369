package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrBalanceNotFound                 = errors.New("balance not found")
	ErrBalanceAlreadyExists            = errors.New("balance already exists")
	ErrPoolNotFound                    = errors.New("pool account not found")
	ErrDepositNotFound                 = errors.New("deposit request not found")
	ErrPayoutNotFound                  = errors.New("payout request not found")
	ErrEntryNotFound                   = errors.New("ledger entry not found")
	ErrInsufficientBalance             = errors.New("insufficient balance")
	ErrInvalidState                    = errors.New("invalid state")
	ErrInvalidAmount                   = errors.New("amount must be positive")
	ErrServiceUnavailable              = errors.New("service unavailable, try again later")
	ErrPoolUnavailable                 = errors.New("pool is not accepting deposits")
	ErrForbidden                       = errors.New("resource belongs to another user")
	ErrUnableToGetUserIDFromContext    = errors.New("unable to get user id from context")
	ErrUnableToGetAdminIDFromContext   = errors.New("unable to get admin id from context")
	ErrReservationAlreadyResolved      = errors.New("reservation already resolved")
	ErrUnknownProduct                  = errors.New("unknown product")
	ErrGatewayAuthenticationFailed     = errors.New("gateway authentication failed")
	ErrReconciliationAlreadyInProgress = errors.New("reconciliation already in progress")
	ErrLoginAlreadyExists              = errors.New("login already exists")
	ErrUserNotFound                    = errors.New("user not found")
	ErrInvalidPassword                 = errors.New("invalid password")
	ErrGatewayReferenceRequired        = errors.New("gateway reference is required")
)

type ValueError struct {
	caller  string
	message string
	err     error
}

func NewValueError(message string, caller string, err error) error {
	return &ValueError{
		caller:  caller,
		message: message,
		err:     err,
	}
}

func (v *ValueError) Error() string {
	return fmt.Sprintf("%s %s %s", v.caller, v.message, v.err)
}

func (v *ValueError) Unwrap() error {
	return v.err
}

// InsufficientBalanceError reports a failed funds check on either side of the
// pool boundary. It matches ErrInsufficientBalance with errors.Is.
type InsufficientBalanceError struct {
	Scope     string
	Required  decimal.Decimal
	Available decimal.Decimal
}

func NewInsufficientBalanceError(scope string, required, available decimal.Decimal) error {
	return &InsufficientBalanceError{
		Scope:     scope,
		Required:  required,
		Available: available,
	}
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: insufficient balance, required %s, available %s", e.Scope, e.Required, e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// InvalidStateError carries the state a resource was found in.
type InvalidStateError struct {
	Resource string
	State    string
	Action   string
}

func NewInvalidStateError(resource, state, action string) error {
	return &InvalidStateError{
		Resource: resource,
		State:    state,
		Action:   action,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s %s in state %s", e.Action, e.Resource, e.State)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}
