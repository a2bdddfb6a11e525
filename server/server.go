// Package server is the HTTP presentation adapter over the game engines. It
// owns no game rules: handlers decode a request, call an engine under the
// server mutex and encode the returned view.
package server

import (
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pixelarcade/casino-rgs/config"
	"github.com/pixelarcade/casino-rgs/games"
	"github.com/pixelarcade/casino-rgs/games/blackjack"
	"github.com/pixelarcade/casino-rgs/games/coinflip"
	"github.com/pixelarcade/casino-rgs/games/mines"
	"github.com/pixelarcade/casino-rgs/games/roulette"
	"github.com/pixelarcade/casino-rgs/paytable"
	"github.com/pixelarcade/casino-rgs/rng"
	"github.com/pixelarcade/casino-rgs/round"
	"github.com/pixelarcade/casino-rgs/wallet"
)

// Server wires the shared wallet and the four game engines behind JSON
// endpoints. One mutex serializes all engine and wallet access so each
// settlement applies its debit/credit sequence atomically.
type Server struct {
	cfg    *config.Config
	logger *log.Logger

	mu        sync.Mutex
	wallet    *wallet.Wallet
	registry  *games.Registry
	history   *round.History
	blackjack *blackjack.Engine
	mines     *mines.Engine
	coin      *coinflip.Engine
	roulette  *roulette.Engine
}

// New builds a server with the crypto-backed random source.
func New(cfg *config.Config, logger *log.Logger) (*Server, error) {
	table := paytable.Default()
	if cfg.PaytableFile != "" {
		loaded, err := paytable.LoadFile(cfg.PaytableFile)
		if err != nil {
			return nil, err
		}
		table = loaded
		logger.Info("loaded paytable override", "path", cfg.PaytableFile, "mineCounts", table.MineCounts())
	}
	return newServer(cfg, logger, rng.Crypto{}, table), nil
}

func newServer(cfg *config.Config, logger *log.Logger, src rng.Source, table paytable.MinesTable) *Server {
	w := wallet.New(cfg.StartingBalance)
	history := round.NewHistory(cfg.HistorySize)
	return &Server{
		cfg:       cfg,
		logger:    logger.WithPrefix("server"),
		wallet:    w,
		registry:  games.NewRegistry(),
		history:   history,
		blackjack: blackjack.New(w, src, history),
		mines:     mines.New(w, src, table, history),
		coin:      coinflip.New(w, src, history),
		roulette:  roulette.New(w, src, history),
	}
}

// Run listens on the configured address until the listener fails.
func (s *Server) Run() error {
	addr := s.cfg.Address()
	s.logger.Info("casino listening", "addr", addr, "startingBalance", s.cfg.StartingBalance)
	return http.ListenAndServe(addr, s.Routes())
}

// Routes builds the router. Exposed for httptest.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         60 * 15,
	}))
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(api chi.Router) {
		api.Get("/balance", s.handleBalance)
		api.Get("/games", s.handleGamesList)
		api.Get("/rounds/recent", s.handleRecentRounds)

		api.Route("/blackjack", func(bj chi.Router) {
			bj.Post("/deal", s.handleBlackjackDeal)
			bj.Post("/hit", s.handleBlackjackHit)
			bj.Post("/stand", s.handleBlackjackStand)
			bj.Post("/forfeit", s.handleBlackjackForfeit)
			bj.Get("/state", s.handleBlackjackState)
		})
		api.Route("/mines", func(m chi.Router) {
			m.Post("/start", s.handleMinesStart)
			m.Post("/reveal", s.handleMinesReveal)
			m.Post("/cashout", s.handleMinesCashout)
			m.Post("/forfeit", s.handleMinesForfeit)
			m.Get("/state", s.handleMinesState)
		})
		api.Post("/coin/flip", s.handleCoinFlip)
		api.Post("/roulette/spin", s.handleRouletteSpin)
	})
	return r
}

// requestLogger logs method and path for each request (no body).
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "casino"})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	balance := s.wallet.Balance()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]int64{"balance": balance})
}

func (s *Server) handleGamesList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"games": s.registry.List()})
}

func (s *Server) handleRecentRounds(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	recent := s.history.Recent(0)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"rounds": recent})
}
