package server

import (
	"net/http"
	"strings"

	"github.com/pixelarcade/casino-rgs/games/coinflip"
	"github.com/pixelarcade/casino-rgs/games/roulette"
)

type coinFlipRequest struct {
	Bet    int64  `json:"bet"`
	Choice string `json:"choice"`
}

type rouletteSpinRequest struct {
	Bet   int64  `json:"bet"`
	Color string `json:"color"`
}

func (s *Server) handleCoinFlip(w http.ResponseWriter, r *http.Request) {
	var req coinFlipRequest
	if !decodeBody(w, r, &req) {
		return
	}
	choice := coinflip.Side(strings.ToLower(strings.TrimSpace(req.Choice)))
	s.mu.Lock()
	res, err := s.coin.Flip(req.Bet, choice)
	s.mu.Unlock()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.logger.Info("coin flip", "roundId", res.RoundID, "choice", res.Choice, "outcome", res.Outcome, "payout", res.Payout)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRouletteSpin(w http.ResponseWriter, r *http.Request) {
	var req rouletteSpinRequest
	if !decodeBody(w, r, &req) {
		return
	}
	color := roulette.Color(strings.ToLower(strings.TrimSpace(req.Color)))
	s.mu.Lock()
	res, err := s.roulette.Spin(req.Bet, color)
	s.mu.Unlock()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.logger.Info("roulette spin", "roundId", res.RoundID, "color", res.Choice, "result", res.Result, "payout", res.Payout)
	writeJSON(w, http.StatusOK, res)
}
