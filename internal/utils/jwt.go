package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type JWTManager struct {
	TokenName string
	secretKey string
	tokenExp  time.Duration
	logger    *zap.Logger
}

func InitJWTManager(tokenName string, secretKey string, logger *zap.Logger) *JWTManager {
	j := &JWTManager{
		TokenName: tokenName,
		secretKey: secretKey,
		tokenExp:  24 * time.Hour,
		logger:    logger,
	}
	return j
}

func (j *JWTManager) BuildJWTString(userID string, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenExp)),
		},
		UserID: userID,
		Role:   role,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s %w", Caller(), err)
	}

	return tokenString, nil
}

func (j *JWTManager) GetClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s %w", Caller(), err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("%s token is not valid", Caller())
	}

	return claims, nil
}
