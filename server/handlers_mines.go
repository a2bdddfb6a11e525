package server

import "net/http"

type minesStartRequest struct {
	Bet   int64 `json:"bet"`
	Mines int   `json:"mines"`
}

type minesRevealRequest struct {
	Cell int `json:"cell"`
}

func (s *Server) handleMinesStart(w http.ResponseWriter, r *http.Request) {
	var req minesStartRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.mu.Lock()
	view, err := s.mines.StartGame(req.Bet, req.Mines)
	s.mu.Unlock()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.logger.Info("mines start", "roundId", view.RoundID, "bet", req.Bet, "mines", req.Mines)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleMinesReveal(w http.ResponseWriter, r *http.Request) {
	var req minesRevealRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.mu.Lock()
	view, err := s.mines.Reveal(req.Cell)
	s.mu.Unlock()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	if view.Outcome != "" {
		s.logger.Info("mines settled", "roundId", view.RoundID, "outcome", view.Outcome, "payout", view.Payout)
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleMinesCashout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view, err := s.mines.CashOut()
	s.mu.Unlock()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.logger.Info("mines settled", "roundId", view.RoundID, "outcome", view.Outcome, "payout", view.Payout)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleMinesForfeit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view, err := s.mines.Forfeit()
	s.mu.Unlock()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.logger.Info("mines forfeited", "roundId", view.RoundID)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleMinesState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view := s.mines.View()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}
