package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/middleware"
	"github.com/msmkdenis/yap-poolledger/internal/purchase/handler/dto"
	"github.com/msmkdenis/yap-poolledger/internal/purchase/model"
)

// PurchaseService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_purchase_service.go -package=mock github.com/msmkdenis/yap-poolledger/internal/purchase/handler PurchaseService
type PurchaseService interface {
	Purchase(ctx context.Context, order model.Order) (*model.Receipt, error)
}

type PurchaseHandler struct {
	purchaseService PurchaseService
	logger          *zap.Logger
	validate        *validator.Validate
}

func NewPurchaseHandler(e *echo.Echo, service PurchaseService, logger *zap.Logger, jwtAuth *middleware.JWTAuth) *PurchaseHandler {
	handler := &PurchaseHandler{
		purchaseService: service,
		logger:          logger,
		validate:        validator.New(),
	}

	e.POST("/api/user/purchases", handler.Purchase, jwtAuth.JWTAuth())

	return handler
}

// @Summary       Buy airtime or electricity
// @Description   Pays for the order from the seller's available balance.
// @Tags          Purchase API
// @Accept        json
// @Produce       json
// @Param         order   body       dto.PurchaseRequest   true   "Product, amount and recipient."
// @Success       200    {object}   dto.ReceiptResponse
// @Failure       400
// @Failure       401
// @Failure       402
// @Failure       503
// @Security      JWT
// @Router        /api/user/purchases [post]
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	userID, ok := c.Get(middleware.UserIDKey).(string)
	if !ok {
		h.logger.Error("Internal server error", zap.Error(apperrors.ErrUnableToGetUserIDFromContext))
		return c.NoContent(http.StatusInternalServerError)
	}

	request := new(dto.PurchaseRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	if validateErr := h.validate.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	receipt, err := h.purchaseService.Purchase(c.Request().Context(), dto.MapToOrder(userID, *request))
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to complete purchase", zap.String("user_id", userID), zap.Error(err))
		return c.String(status, msg)
	}

	return c.JSON(http.StatusOK, dto.MapToReceiptResponse(*receipt))
}
