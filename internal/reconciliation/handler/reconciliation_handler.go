package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/middleware"
	"github.com/msmkdenis/yap-poolledger/internal/reconciliation/handler/dto"
	"github.com/msmkdenis/yap-poolledger/internal/reconciliation/model"
)

// ReconciliationService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_reconciliation_service.go -package=mock github.com/msmkdenis/yap-poolledger/internal/reconciliation/handler ReconciliationService
type ReconciliationService interface {
	Run(ctx context.Context, mode model.Mode) (*model.Report, error)
	ReconcileBalance(ctx context.Context, userID string) (*model.BalanceCheck, error)
}

type ReconciliationHandler struct {
	reconciliationService ReconciliationService
	logger                *zap.Logger
}

func NewReconciliationHandler(e *echo.Echo, service ReconciliationService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *ReconciliationHandler {
	handler := &ReconciliationHandler{
		reconciliationService: service,
		logger:                logger,
	}

	admin := e.Group("/api/admin/reconciliation", jwtAuth.JWTAuth(), jwtAuth.AdminOnly())
	admin.POST("/run", handler.Run)
	admin.GET("/users/:id", handler.CheckUser)

	return handler
}

// @Summary       Run a reconciliation
// @Description   Sampled runs check a random subset of users, full runs check all of them.
// @Tags          Admin API
// @Produce       json
// @Param         mode   query      string   false   "sampled (default) or full"
// @Success       200    {object}   dto.ReportResponse
// @Failure       400
// @Failure       401
// @Failure       403
// @Failure       409
// @Security      JWT
// @Router        /api/admin/reconciliation/run [post]
func (h *ReconciliationHandler) Run(c echo.Context) error {
	mode := model.Mode(c.QueryParam("mode"))
	switch mode {
	case "":
		mode = model.ModeSampled
	case model.ModeSampled, model.ModeFull:
	default:
		return c.String(http.StatusBadRequest, "Unknown reconciliation mode")
	}

	report, err := h.reconciliationService.Run(c.Request().Context(), mode)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to run reconciliation", zap.String("mode", string(mode)), zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToReportResponse(*report))
}

// @Summary       Reconcile one user
// @Tags          Admin API
// @Produce       json
// @Param         id     path       string   true   "User id"
// @Success       200    {object}   dto.BalanceCheckResponse
// @Failure       401
// @Failure       403
// @Failure       404
// @Security      JWT
// @Router        /api/admin/reconciliation/users/{id} [get]
func (h *ReconciliationHandler) CheckUser(c echo.Context) error {
	check, err := h.reconciliationService.ReconcileBalance(c.Request().Context(), c.Param("id"))
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to reconcile user", zap.String("user_id", c.Param("id")), zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToBalanceCheckResponse(*check))
}
