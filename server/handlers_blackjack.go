package server

import "net/http"

type blackjackDealRequest struct {
	Bet int64 `json:"bet"`
}

func (s *Server) handleBlackjackDeal(w http.ResponseWriter, r *http.Request) {
	var req blackjackDealRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.mu.Lock()
	view, err := s.blackjack.StartRound(req.Bet)
	s.mu.Unlock()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.logger.Info("blackjack deal", "roundId", view.RoundID, "bet", req.Bet)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleBlackjackHit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view, err := s.blackjack.Hit()
	s.mu.Unlock()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleBlackjackStand(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view, err := s.blackjack.Stand()
	s.mu.Unlock()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.logger.Info("blackjack settled", "roundId", view.RoundID, "outcome", view.Outcome, "payout", view.Payout)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleBlackjackForfeit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view, err := s.blackjack.Forfeit()
	s.mu.Unlock()
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.logger.Info("blackjack forfeited", "roundId", view.RoundID)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleBlackjackState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	view := s.blackjack.View()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, view)
}
