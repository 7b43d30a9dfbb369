package handler

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/apperrors"
	"github.com/msmkdenis/yap-poolledger/internal/user/handler/dto"
	"github.com/msmkdenis/yap-poolledger/internal/user/model"
	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

// UserService mockgen --build_flags=--mod=mod -destination=internal/mocks/mock_user_service.go -package=mock github.com/msmkdenis/yap-poolledger/internal/user/handler UserService
type UserService interface {
	Register(ctx context.Context, login, password string) (*model.User, error)
	Login(ctx context.Context, login, password string) (*model.User, error)
}

type UserHandler struct {
	userService UserService
	jwtManager  *utils.JWTManager
	validator   *validator.Validate
	logger      *zap.Logger
}

func NewUserHandler(e *echo.Echo, service UserService, jwtManager *utils.JWTManager, logger *zap.Logger) *UserHandler {
	handler := &UserHandler{
		userService: service,
		jwtManager:  jwtManager,
		validator:   validator.New(),
		logger:      logger,
	}

	e.POST("/api/user/register", handler.RegisterUser)
	e.POST("/api/user/login", handler.LoginUser)

	return handler
}

// @Summary       Seller registration
// @Description   Creates a seller account with an empty balance and signs it in.
// @Tags          User API
// @Accept        json
// @Param         user   body       dto.UserRegisterRequest   true   "Seller login and password."
// @Success       200
// @Failure       400
// @Failure       409
// @Failure       500
// @Router        /api/user/register [post]
func (h *UserHandler) RegisterUser(c echo.Context) error {
	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.UserRegisterRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	if validateErr := h.validator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	user, err := h.userService.Register(c.Request().Context(), request.Login, request.Password)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Error("Unable to register user", zap.Error(err))
		return c.String(status, msg)
	}

	if errJWT := h.setAuthorizationCookie(c, user); errJWT != nil {
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

// @Summary       User authorization
// @Description   Signs a seller or an admin in by login and password.
// @Tags          User API
// @Accept        json
// @Param         user   body       dto.UserLoginRequest   true   "User login and password."
// @Success       200
// @Failure       400
// @Failure       401
// @Failure       500
// @Router        /api/user/login [post]
func (h *UserHandler) LoginUser(c echo.Context) error {
	header := c.Request().Header.Get("Content-Type")
	if header != "application/json" {
		msg := "Content-Type header is not application/json"
		h.logger.Error("StatusUnsupportedMediaType: " + msg)
		return c.String(http.StatusUnsupportedMediaType, msg)
	}

	request := new(dto.UserLoginRequest)
	if bindErr := c.Bind(request); bindErr != nil {
		h.logger.Warn("Unable to bind data", zap.Error(bindErr))
		return c.String(http.StatusBadRequest, "Bad request")
	}

	if validateErr := h.validator.Struct(request); validateErr != nil {
		h.logger.Warn("Bad Request: invalid request", zap.Error(validateErr))
		return c.String(http.StatusBadRequest, "Invalid request data")
	}

	user, err := h.userService.Login(c.Request().Context(), request.Login, request.Password)
	if err != nil {
		status, msg := apperrors.HTTPStatus(err)
		h.logger.Warn("Unable to login user", zap.String("login", request.Login), zap.Error(err))
		return c.String(status, msg)
	}

	if errCookie := h.setAuthorizationCookie(c, user); errCookie != nil {
		return c.NoContent(http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

func (h *UserHandler) setAuthorizationCookie(c echo.Context, user *model.User) error {
	token, err := h.jwtManager.BuildJWTString(user.ID, user.Role)
	if err != nil {
		h.logger.Error("Unable to create token", zap.Error(err))
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.jwtManager.TokenName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return nil
}
