package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pixelarcade/casino-rgs/games/coinflip"
	"github.com/pixelarcade/casino-rgs/games/mines"
	"github.com/pixelarcade/casino-rgs/games/roulette"
	"github.com/pixelarcade/casino-rgs/round"
	"github.com/pixelarcade/casino-rgs/wallet"
)

// APIError is the standard error response body.
type APIError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, errMsg, code string) {
	writeJSON(w, status, APIError{Error: errMsg, Code: code})
}

// writeEngineError maps engine/wallet errors to HTTP statuses and stable
// machine codes. Betting errors are never fatal; they surface as messages.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, round.ErrInvalidBet), errors.Is(err, wallet.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "enter a valid bet amount", "INVALID_BET")
	case errors.Is(err, wallet.ErrInsufficientFunds):
		writeError(w, http.StatusPaymentRequired, "not enough balance to place that bet", "INSUFFICIENT_FUNDS")
	case errors.Is(err, round.ErrInvalidState):
		writeError(w, http.StatusConflict, "action not allowed in the current round state", "INVALID_STATE")
	case errors.Is(err, roulette.ErrNoSelection):
		writeError(w, http.StatusBadRequest, "select a color to bet on", "NO_SELECTION")
	case errors.Is(err, coinflip.ErrInvalidSide):
		writeError(w, http.StatusBadRequest, "pick heads or tails", "INVALID_CHOICE")
	case errors.Is(err, mines.ErrInvalidCell):
		writeError(w, http.StatusBadRequest, "cell index out of range", "INVALID_CELL")
	case errors.Is(err, mines.ErrInvalidMineCount):
		writeError(w, http.StatusBadRequest, "mine count must be 3, 5, 8 or 12", "INVALID_MINE_COUNT")
	default:
		s.logger.Error("engine call failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "INVALID_BODY")
		return false
	}
	return true
}
