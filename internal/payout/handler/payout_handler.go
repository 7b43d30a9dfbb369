package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/middleware"
	"github.com/msmkdenis/yap-poolledger/internal/payout/handler/dto"
	"github.com/msmkdenis/yap-poolledger/internal/payout/model"
)

// PayoutService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_payout_service.go -package=mock github.com/msmkdenis/yap-poolledger/internal/payout/handler PayoutService
type PayoutService interface {
	Create(ctx context.Context, userID string, amount decimal.Decimal) (*model.PayoutRequest, error)
	Process(ctx context.Context, payoutID string, processedBy string) (*model.PayoutRequest, error)
	Reject(ctx context.Context, payoutID string, reason string) (*model.PayoutRequest, error)
	Cancel(ctx context.Context, payoutID string, userID string) (*model.PayoutRequest, error)
	ListByUser(ctx context.Context, userID string) ([]model.PayoutRequest, error)
	ListPending(ctx context.Context, limit int) ([]model.PayoutRequest, error)
	Resolve(ctx context.Context, payoutID string, outcome model.Outcome, gatewayReference, reason, resolvedBy string) (*model.PayoutRequest, error)
}

type PayoutHandler struct {
	payoutService PayoutService
	logger        *zap.Logger
	validate      *validator.Validate
}

func NewPayoutHandler(e *echo.Echo, service PayoutService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *PayoutHandler {
	handler := &PayoutHandler{
		payoutService: service,
		logger:        logger,
		validate:      validator.New(),
	}

	user := e.Group("/api/user/payouts", jwtAuth.JWTAuth())
	user.POST("", handler.Create)
	user.GET("", handler.List)
	user.POST("/:id/cancel", handler.Cancel)

	admin := e.Group("/api/admin/payouts", jwtAuth.JWTAuth(), jwtAuth.AdminOnly())
	admin.GET("", handler.ListPending)
	admin.POST("/:id/process", handler.Process)
	admin.POST("/:id/reject", handler.Reject)
	admin.POST("/:id/resolve", handler.Resolve)

	return handler
}

// @Summary       Request a payout
// @Description   Reserve funds for a withdrawal to the seller's payout account.
// @Tags          Payout API
// @Accept        json
// @Produce       json
// @Param         payout   body       dto.CreatePayoutRequest   true   "Amount to withdraw."
// @Success       201    {object}   dto.PayoutResponse
// @Failure       400
// @Failure       401
// @Failure       402
// @Security      JWT
// @Router        /api/user/payouts [post]
func (h *PayoutHandler) Create(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	request := new(dto.CreatePayoutRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	if !request.Amount.IsPositive() {
		return c.String(http.StatusBadRequest, apperrors.ErrInvalidAmount.Error())
	}

	payout, err := h.payoutService.Create(c.Request().Context(), userID, request.Amount)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to create payout", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusCreated, dto.MapToPayoutResponse(*payout))
}

// @Summary       List user payouts
// @Tags          Payout API
// @Produce       json
// @Success       200    {array}    dto.PayoutResponse
// @Success       204
// @Failure       401
// @Security      JWT
// @Router        /api/user/payouts [get]
func (h *PayoutHandler) List(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	payouts, err := h.payoutService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to list payouts", zap.Error(err))
		return c.String(status, msg)
	}

	if len(payouts) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, dto.MapToPayoutResponses(payouts))
}

// @Summary       Cancel a payout request
// @Tags          Payout API
// @Produce       json
// @Param         id     path       string   true   "Payout id"
// @Success       200    {object}   dto.PayoutResponse
// @Failure       401
// @Failure       403
// @Failure       404
// @Failure       409
// @Security      JWT
// @Router        /api/user/payouts/{id}/cancel [post]
func (h *PayoutHandler) Cancel(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	payout, err := h.payoutService.Cancel(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to cancel payout", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToPayoutResponse(*payout))
}

// @Summary       List pending payouts
// @Tags          Admin API
// @Produce       json
// @Param         limit   query      int   false   "Page size"
// @Success       200    {array}    dto.PayoutResponse
// @Failure       400
// @Failure       401
// @Failure       403
// @Security      JWT
// @Router        /api/admin/payouts [get]
func (h *PayoutHandler) ListPending(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return c.String(http.StatusBadRequest, "Invalid limit")
		}
		limit = parsed
	}

	payouts, err := h.payoutService.ListPending(c.Request().Context(), limit)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to list pending payouts", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToPayoutResponses(payouts))
}

// @Summary       Process a payout
// @Description   Send the payout through the gateway. A gateway failure returns the FAILED request.
// @Tags          Admin API
// @Produce       json
// @Param         id     path       string   true   "Payout id"
// @Success       200    {object}   dto.PayoutResponse
// @Failure       401
// @Failure       403
// @Failure       404
// @Failure       409
// @Security      JWT
// @Router        /api/admin/payouts/{id}/process [post]
func (h *PayoutHandler) Process(c echo.Context) error {
	adminID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetAdminIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	payout, err := h.payoutService.Process(c.Request().Context(), c.Param("id"), adminID)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to process payout", zap.String("payout_id", c.Param("id")), zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToPayoutResponse(*payout))
}

// @Summary       Reject a payout
// @Tags          Admin API
// @Accept        json
// @Produce       json
// @Param         id       path       string                    true   "Payout id"
// @Param         reason   body       dto.RejectPayoutRequest   true   "Rejection reason"
// @Success       200    {object}   dto.PayoutResponse
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       404
// @Failure       409
// @Security      JWT
// @Router        /api/admin/payouts/{id}/reject [post]
func (h *PayoutHandler) Reject(c echo.Context) error {
	request := new(dto.RejectPayoutRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	if validateErr := h.validate.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	payout, err := h.payoutService.Reject(c.Request().Context(), c.Param("id"), request.Reason)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to reject payout", zap.String("payout_id", c.Param("id")), zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToPayoutResponse(*payout))
}

// @Summary       Resolve a processing payout
// @Description   Record the gateway outcome of a payout left in PROCESSING.
// @Tags          Admin API
// @Accept        json
// @Produce       json
// @Param         id        path       string                     true   "Payout id"
// @Param         outcome   body       dto.ResolvePayoutRequest   true   "Confirmed gateway outcome"
// @Success       200    {object}   dto.PayoutResponse
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       404
// @Failure       409
// @Security      JWT
// @Router        /api/admin/payouts/{id}/resolve [post]
func (h *PayoutHandler) Resolve(c echo.Context) error {
	adminID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetAdminIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	request := new(dto.ResolvePayoutRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	if validateErr := h.validate.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	payout, err := h.payoutService.Resolve(c.Request().Context(), c.Param("id"),
		model.Outcome(request.Outcome), request.GatewayReference, request.Reason, adminID)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to resolve payout", zap.String("payout_id", c.Param("id")), zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToPayoutResponse(*payout))
}
