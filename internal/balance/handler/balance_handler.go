package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/balance/handler/dto"
	"github.com/msmkdenis/yap-poolledger/internal/balance/model"
	"github.com/msmkdenis/yap-poolledger/internal/middleware"
)

// BalanceService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_balance_service.go -package=mock github.com/msmkdenis/yap-poolledger/internal/balance/handler BalanceService
type BalanceService interface {
	GetBalance(ctx context.Context, userID string) (*model.Balance, error)
	GetBalanceSummary(ctx context.Context, userID string) (*model.Summary, error)
	InitializeBalance(ctx context.Context, userID string) (*model.Balance, error)
}

type BalanceHandler struct {
	balanceService BalanceService
	logger         *zap.Logger
	jwtAuth        *middleware.JWTAuth
}

func NewBalanceHandler(e *echo.Echo, service BalanceService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *BalanceHandler {
	handler := &BalanceHandler{
		balanceService: service,
		logger:         logger,
		jwtAuth:        jwtAuth,
	}

	protectedBalance := e.Group("/api/user", jwtAuth.JWTAuth())
	protectedBalance.GET("/balance", handler.GetBalance)
	protectedBalance.GET("/balance/summary", handler.GetSummary)

	admin := e.Group("/api/admin", jwtAuth.JWTAuth(), jwtAuth.AdminOnly())
	admin.POST("/balances", handler.InitializeBalance)

	return handler
}

// @Summary       Get user balance
// @Description   Get available, pending and reserved funds of the seller.
// @Tags          Balance API
// @Produce       json
// @Success       200    {object}   dto.BalanceResponse
// @Failure       401
// @Failure       404
// @Failure       500
// @Security      JWT
// @Router        /api/user/balance [get]
func (h *BalanceHandler) GetBalance(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	balance, err := h.balanceService.GetBalance(c.Request().Context(), userID)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to get balance", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToBalanceResponse(*balance))
}

// @Summary       Get balance summary
// @Description   Get balance together with recent ledger activity.
// @Tags          Balance API
// @Produce       json
// @Success       200    {object}   dto.SummaryResponse
// @Failure       401
// @Failure       404
// @Failure       500
// @Security      JWT
// @Router        /api/user/balance/summary [get]
func (h *BalanceHandler) GetSummary(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	summary, err := h.balanceService.GetBalanceSummary(c.Request().Context(), userID)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to get balance summary", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToSummaryResponse(*summary))
}

// @Summary       Initialize seller balance
// @Description   Create the zeroed balance of a newly registered seller.
// @Tags          Admin API
// @Accept        json
// @Param         balance   body       dto.InitializeBalanceRequest   true   "Seller id."
// @Success       201    {object}   dto.BalanceResponse
// @Failure       400
// @Failure       403
// @Failure       409
// @Failure       500
// @Security      JWT
// @Router        /api/admin/balances [post]
func (h *BalanceHandler) InitializeBalance(c echo.Context) error {
	request := new(dto.InitializeBalanceRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	if validateErr := validator.New().Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	balance, err := h.balanceService.InitializeBalance(c.Request().Context(), request.UserID)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to initialize balance", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusCreated, dto.MapToBalanceResponse(*balance))
}
