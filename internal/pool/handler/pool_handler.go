package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/middleware"
	"github.com/msmkdenis/yap-poolledger/internal/pool/handler/dto"
	"github.com/msmkdenis/yap-poolledger/internal/pool/model"
)

// PoolService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_pool_service.go -package=mock github.com/msmkdenis/yap-poolledger/internal/pool/handler PoolService
type PoolService interface {
	GetPoolStatus(ctx context.Context) (*model.PoolAccount, error)
	GetPoolHealth(ctx context.Context) (*model.HealthReport, error)
	SyncFromGateway(ctx context.Context) (*model.SyncResult, error)
}

type PoolHandler struct {
	poolService PoolService
	logger      *zap.Logger
}

func NewPoolHandler(e *echo.Echo, service PoolService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *PoolHandler {
	handler := &PoolHandler{
		poolService: service,
		logger:      logger,
	}

	admin := e.Group("/api/admin/pool", jwtAuth.JWTAuth(), jwtAuth.AdminOnly())
	admin.GET("", handler.GetStatus)
	admin.GET("/health", handler.GetHealth)
	admin.POST("/sync", handler.Sync)

	return handler
}

// @Summary       Get pool status
// @Description   Total, allocated, reserved and unallocated pool funds.
// @Tags          Admin API
// @Produce       json
// @Success       200    {object}   dto.PoolResponse
// @Failure       401
// @Failure       403
// @Failure       500
// @Security      JWT
// @Router        /api/admin/pool [get]
func (h *PoolHandler) GetStatus(c echo.Context) error {
	pool, err := h.poolService.GetPoolStatus(c.Request().Context())
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to get pool status", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToPoolResponse(*pool))
}

// @Summary       Get pool health
// @Tags          Admin API
// @Produce       json
// @Success       200    {object}   dto.HealthResponse
// @Failure       401
// @Failure       403
// @Failure       500
// @Security      JWT
// @Router        /api/admin/pool/health [get]
func (h *PoolHandler) GetHealth(c echo.Context) error {
	report, err := h.poolService.GetPoolHealth(c.Request().Context())
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to get pool health", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToHealthResponse(*report))
}

// @Summary       Sync pool with gateway
// @Description   Read the gateway wallet and adopt its available balance as the pool total.
// @Tags          Admin API
// @Produce       json
// @Success       200    {object}   dto.SyncResponse
// @Failure       401
// @Failure       403
// @Failure       503
// @Security      JWT
// @Router        /api/admin/pool/sync [post]
func (h *PoolHandler) Sync(c echo.Context) error {
	result, err := h.poolService.SyncFromGateway(c.Request().Context())
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to sync pool", zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToSyncResponse(*result))
}
