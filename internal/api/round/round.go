package round

import (
	dto "baccarat_ledger/internal/api/dto/round"
	"baccarat_ledger/internal/converter"
	"baccarat_ledger/internal/model"
	"baccarat_ledger/internal/service"
	"baccarat_ledger/pkg/req"
	"baccarat_ledger/pkg/resp"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.RoundService
	Log  *zap.Logger
}

type Handler struct {
	serv service.RoundService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log}
}

// EvaluateHands считает очки двух рук и автоматический исход
func (h *Handler) EvaluateHands(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.EvaluateHandsRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	player, err := converter.ToHand(payload.Player)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "player: "+err.Error())
		return
	}
	banker, err := converter.ToHand(payload.Banker)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "banker: "+err.Error())
		return
	}

	result, err := h.serv.EvaluateHands(player, banker)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEvaluateHandsResponse(*result))
}

// SettleBet предварительный расчет ставки без записи
func (h *Handler) SettleBet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SettleBetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.SettleBet(model.Side(payload.BetSide), model.Outcome(payload.Outcome), payload.Stake)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettleBetResponse(*result))
}

// Record записывает раунд в журнал сессии
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RecordRoundRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	input, err := converter.ToRoundInput(payload)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Record(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToRoundResponse(*result))
}

// Reset очищает журнал
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Reset(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Rounds весь журнал или последние ?last=n раундов
func (h *Handler) Rounds(w http.ResponseWriter, r *http.Request) {
	var (
		rounds []model.Round
		err    error
	)

	if last := r.URL.Query().Get("last"); last != "" {
		n, convErr := strconv.Atoi(last)
		if convErr != nil || n < 0 {
			resp.WriteError(w, http.StatusBadRequest, "last must be a non-negative integer")
			return
		}
		rounds, err = h.serv.Window(r.Context(), n)
	} else {
		rounds, err = h.serv.Rounds(r.Context())
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoundsResponse(rounds))
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Statistics(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatisticsResponse(*result))
}

func (h *Handler) Streak(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Streak(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStreakResponse(*result))
}

// Recommendation рекомендация по ?policy=threshold|confidence
func (h *Handler) Recommendation(w http.ResponseWriter, r *http.Request) {
	policy := model.Policy(r.URL.Query().Get("policy"))

	result, err := h.serv.Recommend(r.Context(), policy)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRecommendationResponse(*result))
}

func (h *Handler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Checkpoint(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCheckpointResponse(*result))
}

// writeError ошибки сервиса в HTTP статусы
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRound),
		errors.Is(err, service.ErrInvalidHand),
		errors.Is(err, service.ErrInvalidBet),
		errors.Is(err, service.ErrInvalidPolicy):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrSessionExpired):
		resp.WriteError(w, http.StatusUnauthorized, err.Error())
	default:
		h.log.Error("round handler", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
