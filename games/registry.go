// Package games holds the catalog of playable games.
package games

import "sync"

// Kind distinguishes games with an in-flight round from single-call games.
type Kind string

const (
	// KindRound games hold state between calls (blackjack, mines).
	KindRound Kind = "round"
	// KindInstant games settle in a single call (coin flip, roulette).
	KindInstant Kind = "instant"
)

// Game describes one catalog entry.
type Game struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Registry is the game catalog. The built-in suite is registered up front;
// Register stays exported so a deployment can mount extra games.
type Registry struct {
	mu    sync.RWMutex
	games map[string]Game
	order []string
}

// NewRegistry returns a registry preloaded with the built-in games.
func NewRegistry() *Registry {
	r := &Registry{games: make(map[string]Game)}
	r.Register(Game{ID: "blackjack", Name: "Blackjack", Kind: KindRound})
	r.Register(Game{ID: "mines", Name: "Mines", Kind: KindRound})
	r.Register(Game{ID: "coinflip", Name: "Coin Flip", Kind: KindInstant})
	r.Register(Game{ID: "roulette", Name: "Roulette", Kind: KindInstant})
	return r
}

// Register adds or replaces a catalog entry.
func (r *Registry) Register(g Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[g.ID]; !ok {
		r.order = append(r.order, g.ID)
	}
	r.games[g.ID] = g
}

// Has reports whether a game is in the catalog.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.games[id]
	return ok
}

// Get returns a catalog entry by ID.
func (r *Registry) Get(id string) (Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	return g, ok
}

// List returns all games in registration order.
func (r *Registry) List() []Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Game, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.games[id])
	}
	return out
}
