package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/deposit/handler/dto"
	"github.com/msmkdenis/yap-poolledger/internal/deposit/model"
	"github.com/msmkdenis/yap-poolledger/internal/middleware"
)

// DepositService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_deposit_service.go -package=mock github.com/msmkdenis/yap-poolledger/internal/deposit/handler DepositService
type DepositService interface {
	Create(ctx context.Context, userID string, amount decimal.Decimal) (*model.DepositRequest, error)
	Approve(ctx context.Context, depositID string, adminID string) (*model.DepositRequest, error)
	Reject(ctx context.Context, depositID string, reason string) (*model.DepositRequest, error)
	Cancel(ctx context.Context, depositID string, userID string) (*model.DepositRequest, error)
	ListByUser(ctx context.Context, userID string) ([]model.DepositRequest, error)
	ListPending(ctx context.Context) ([]model.DepositRequest, error)
}

type DepositHandler struct {
	depositService DepositService
	logger         *zap.Logger
	validate       *validator.Validate
}

func NewDepositHandler(e *echo.Echo, service DepositService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *DepositHandler {
	handler := &DepositHandler{
		depositService: service,
		logger:         logger,
		validate:       validator.New(),
	}

	user := e.Group("/api/user/deposits", jwtAuth.JWTAuth())
	user.POST("", handler.Create)
	user.GET("", handler.List)
	user.POST("/:id/cancel", handler.Cancel)

	admin := e.Group("/api/admin/deposits", jwtAuth.JWTAuth(), jwtAuth.AdminOnly())
	admin.GET("", handler.ListPending)
	admin.POST("/:id/approve", handler.Approve)
	admin.POST("/:id/reject", handler.Reject)

	return handler
}

// @Summary       Request a deposit
// @Description   File a top-up request. It is credited once an admin approves it.
// @Tags          Deposit API
// @Accept        json
// @Produce       json
// @Param         deposit   body       dto.CreateDepositRequest   true   "Amount to deposit."
// @Success       201    {object}   dto.DepositResponse
// @Failure       400
// @Failure       401
// @Failure       503
// @Security      JWT
// @Router        /api/user/deposits [post]
func (h *DepositHandler) Create(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	request := new(dto.CreateDepositRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	if !request.Amount.IsPositive() {
		return c.String(http.StatusBadRequest, apperrors.ErrInvalidAmount.Error())
	}

	deposit, err := h.depositService.Create(c.Request().Context(), userID, request.Amount)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to create deposit", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusCreated, dto.MapToDepositResponse(*deposit))
}

// @Summary       List user deposits
// @Tags          Deposit API
// @Produce       json
// @Success       200    {array}    dto.DepositResponse
// @Failure       401
// @Failure       500
// @Security      JWT
// @Router        /api/user/deposits [get]
func (h *DepositHandler) List(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	deposits, err := h.depositService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to list deposits", zap.Error(err))
		return c.String(status, msg)
	}

	if len(deposits) == 0 {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, dto.MapToDepositResponses(deposits))
}

// @Summary       Cancel a deposit request
// @Tags          Deposit API
// @Produce       json
// @Param         id     path       string   true   "Deposit id"
// @Success       200    {object}   dto.DepositResponse
// @Failure       401
// @Failure       403
// @Failure       404
// @Failure       409
// @Security      JWT
// @Router        /api/user/deposits/{id}/cancel [post]
func (h *DepositHandler) Cancel(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	deposit, err := h.depositService.Cancel(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to cancel deposit", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToDepositResponse(*deposit))
}

// @Summary       List pending deposits
// @Tags          Admin API
// @Produce       json
// @Success       200    {array}    dto.DepositResponse
// @Failure       401
// @Failure       403
// @Security      JWT
// @Router        /api/admin/deposits [get]
func (h *DepositHandler) ListPending(c echo.Context) error {
	deposits, err := h.depositService.ListPending(c.Request().Context())
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to list pending deposits", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToDepositResponses(deposits))
}

// @Summary       Approve a deposit
// @Description   Allocate pool funds to the depositor.
// @Tags          Admin API
// @Produce       json
// @Param         id     path       string   true   "Deposit id"
// @Success       200    {object}   dto.DepositResponse
// @Failure       401
// @Failure       402
// @Failure       403
// @Failure       404
// @Failure       409
// @Security      JWT
// @Router        /api/admin/deposits/{id}/approve [post]
func (h *DepositHandler) Approve(c echo.Context) error {
	adminID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetAdminIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	deposit, err := h.depositService.Approve(c.Request().Context(), c.Param("id"), adminID)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to approve deposit", zap.String("deposit_id", c.Param("id")), zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToDepositResponse(*deposit))
}

// @Summary       Reject a deposit
// @Tags          Admin API
// @Accept        json
// @Produce       json
// @Param         id       path       string                      true   "Deposit id"
// @Param         reason   body       dto.RejectDepositRequest   true   "Rejection reason"
// @Success       200    {object}   dto.DepositResponse
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       404
// @Failure       409
// @Security      JWT
// @Router        /api/admin/deposits/{id}/reject [post]
func (h *DepositHandler) Reject(c echo.Context) error {
	request := new(dto.RejectDepositRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	if validateErr := h.validate.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	deposit, err := h.depositService.Reject(c.Request().Context(), c.Param("id"), request.Reason)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to reject deposit", zap.String("deposit_id", c.Param("id")), zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToDepositResponse(*deposit))
}
