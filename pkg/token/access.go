package token

import (
	"baccarat_ledger/internal/model"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken Подписывает токен сессии, ID сессии кладется в jti
func GenerateSessionToken(sessionID string, secretKey []byte, expiresAt time.Time) (string, error) {
	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.SessionClaims, error) {
	return parse(tokenStr, secretKey)
}

// ExpiredSessionID ID сессии из токена с верной подписью без проверки срока действия
func ExpiredSessionID(tokenStr string, secretKey []byte) (string, error) {
	claims, err := parse(tokenStr, secretKey, jwt.WithoutClaimsValidation())
	if err != nil {
		return "", err
	}
	return claims.ID, nil
}

func parse(tokenStr string, secretKey []byte, opts ...jwt.ParserOption) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	if claims.ID == "" {
		return nil, errors.New("token has no session id")
	}

	return claims, nil
}
