package middleware

import (
	"baccarat_ledger/internal/service"
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// SessionCookieName Имя cookie с токеном сессии
const SessionCookieName = "session_token"

type ctxKey struct{}

// WithSessionID Кладет ID сессии в контекст
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionIDFromContext Достает ID сессии из контекста
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// TokenFromRequest Токен из cookie, иначе из заголовка Authorization: Bearer
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	h := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// Session Проверяет токен и пропускает запрос дальше с ID сессии в контексте
func Session(serv service.SessionService, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r)
			if token == "" {
				http.Error(w, "no session token", http.StatusUnauthorized)
				return
			}

			sessionID, err := serv.Resolve(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrSessionExpired),
					errors.Is(err, service.ErrSessionNotFound),
					errors.Is(err, service.ErrInvalidToken):
					http.Error(w, err.Error(), http.StatusUnauthorized)
				default:
					log.Error("resolve session", zap.Error(err))
					http.Error(w, "internal error", http.StatusInternalServerError)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
		})
	}
}
