package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired проверяет, истекла ли сессия на момент now
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionClaims Содержимое токена сессии. ID сессии лежит в jti
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SessionData Данные, которые получает клиент при открытии сессии
type SessionData struct {
	SessionID string
	Token     string
	ExpiresAt time.Time
}
