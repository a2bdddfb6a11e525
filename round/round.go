// Package round defines the pieces shared by every game's round lifecycle:
// bet validation errors, settlement outcomes, and the recent-results history.
package round

import (
	"errors"
	"time"
)

var (
	// ErrInvalidBet is returned for non-positive or malformed bet amounts.
	ErrInvalidBet = errors.New("invalid bet")
	// ErrInvalidState is returned when an action is attempted in the wrong
	// round phase (e.g. dealing while a hand is in play).
	ErrInvalidState = errors.New("invalid round state")
)

// Outcome classifies a settled round.
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeLose      Outcome = "lose"
	OutcomePush      Outcome = "push"
	OutcomeBusted    Outcome = "busted"
	OutcomeCashedOut Outcome = "cashed_out"
)

// Settlement records one settled round. Delta is the net balance change
// across the whole round (credit minus the original debit).
type Settlement struct {
	RoundID   string    `json:"roundId"`
	Game      string    `json:"game"`
	Outcome   Outcome   `json:"outcome"`
	Bet       int64     `json:"bet"`
	Payout    int64     `json:"payout"`
	Delta     int64     `json:"delta"`
	SettledAt time.Time `json:"settledAt"`
}

// History keeps the most recent settlements across all games, newest first.
// Capped; nothing survives a restart.
type History struct {
	entries []Settlement
	max     int
}

// NewHistory returns a history keeping at most max settlements.
func NewHistory(max int) *History {
	if max <= 0 {
		max = 100
	}
	return &History{max: max}
}

// Append records a settlement, evicting the oldest entry when full.
func (h *History) Append(s Settlement) {
	h.entries = append([]Settlement{s}, h.entries...)
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
}

// Recent returns up to n settlements, newest first.
func (h *History) Recent(n int) []Settlement {
	if n <= 0 || n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]Settlement, n)
	copy(out, h.entries[:n])
	return out
}
