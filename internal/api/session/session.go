package session

import (
	"baccarat_ledger/internal/converter"
	"baccarat_ledger/internal/middleware"
	"baccarat_ledger/internal/service"
	"baccarat_ledger/pkg/resp"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv         service.SessionService
	Log          *zap.Logger
	SecureCookie bool
}

type Handler struct {
	serv         service.SessionService
	log          *zap.Logger
	secureCookie bool
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log, secureCookie: deps.SecureCookie}
}

// Open открывает сессию с пустым журналом.
// Токен отдается в cookie и в теле ответа
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	data, err := h.serv.Open(r.Context())
	if err != nil {
		h.log.Error("open session", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "open session failed")
		return
	}

	h.setSessionCookie(w, data.Token, data.ExpiresAt)

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToOpenResponse(*data))
}

// Close закрывает сессию, журнал удаляется
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "no session")
		return
	}

	if err := h.serv.Close(r.Context(), sessionID); err != nil {
		h.log.Error("close session", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "close session failed")
		return
	}

	h.deleteSessionCookie(w)

	w.WriteHeader(http.StatusNoContent)
}

// setSessionCookie устанавливает cookie с токеном сессии
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
		Expires:  expiresAt,
	})
}

// deleteSessionCookie удаляет cookie с токеном сессии
func (h *Handler) deleteSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}
