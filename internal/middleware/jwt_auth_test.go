package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/msmkdenis/yap-poolledger/internal/utils"
)

func TestJWTAuth(t *testing.T) {
	logger := zap.NewNop()
	jwtManager := utils.InitJWTManager("token", "supersecretkey", logger)
	jwtAuth := InitJWTAuth(jwtManager, logger)

	e := echo.New()
	whoami := func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(UserIDKey).(string))
	}
	e.GET("/user", whoami, jwtAuth.JWTAuth())
	e.GET("/admin", whoami, jwtAuth.JWTAuth(), jwtAuth.AdminOnly())

	sellerToken, err := jwtManager.BuildJWTString("seller-1", utils.RoleSeller)
	require.NoError(t, err)
	adminToken, err := jwtManager.BuildJWTString("admin-1", utils.RoleAdmin)
	require.NoError(t, err)

	testCases := []struct {
		name         string
		path         string
		token        string
		expectedCode int
		expectedBody string
	}{
		{name: "No cookie", path: "/user", expectedCode: http.StatusUnauthorized},
		{name: "Broken token", path: "/user", token: "not-a-jwt", expectedCode: http.StatusUnauthorized},
		{name: "Seller on user route", path: "/user", token: sellerToken, expectedCode: http.StatusOK, expectedBody: "seller-1"},
		{name: "Seller on admin route", path: "/admin", token: sellerToken, expectedCode: http.StatusForbidden},
		{name: "Admin on admin route", path: "/admin", token: adminToken, expectedCode: http.StatusOK, expectedBody: "admin-1"},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, test.path, nil)
			if test.token != "" {
				request.AddCookie(&http.Cookie{Name: jwtManager.TokenName, Value: test.token})
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, request)

			assert.Equal(t, test.expectedCode, w.Code)
			assert.Equal(t, test.expectedBody, w.Body.String())
		})
	}
}
