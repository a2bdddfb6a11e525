// Package coinflip implements the coin flip game: a single debit, a uniform
// heads/tails sample, and a 2x credit on a matching call.
package coinflip

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pixelarcade/casino-rgs/paytable"
	"github.com/pixelarcade/casino-rgs/rng"
	"github.com/pixelarcade/casino-rgs/round"
	"github.com/pixelarcade/casino-rgs/wallet"
)

// Side is a face of the coin.
type Side string

const (
	Heads Side = "heads"
	Tails Side = "tails"
)

// ErrInvalidSide is returned when the call is neither heads nor tails.
var ErrInvalidSide = errors.New("choice must be heads or tails")

// Result is the settled outcome of one flip.
type Result struct {
	RoundID string `json:"roundId"`
	Choice  Side   `json:"choice"`
	Outcome Side   `json:"outcome"`
	Win     bool   `json:"win"`
	Bet     int64  `json:"bet"`
	Payout  int64  `json:"payout"`
	Balance int64  `json:"balance"`
}

// Engine settles flips against the shared wallet. Stateless between calls.
type Engine struct {
	wallet  *wallet.Wallet
	src     rng.Source
	history *round.History
}

// New returns a coin flip engine sharing the given wallet.
func New(w *wallet.Wallet, src rng.Source, history *round.History) *Engine {
	return &Engine{wallet: w, src: src, history: history}
}

// Flip debits the bet, samples the coin and settles in one call. The outcome
// is fixed here; any flipping animation is presentation only.
func (e *Engine) Flip(bet int64, choice Side) (Result, error) {
	if choice != Heads && choice != Tails {
		return Result{}, ErrInvalidSide
	}
	if bet <= 0 {
		return Result{}, round.ErrInvalidBet
	}
	if err := e.wallet.Debit(bet); err != nil {
		return Result{}, err
	}

	outcome := Tails
	if e.src.Intn(2) == 0 {
		outcome = Heads
	}

	res := Result{
		RoundID: uuid.New().String(),
		Choice:  choice,
		Outcome: outcome,
		Bet:     bet,
	}
	settled := round.OutcomeLose
	if outcome == choice {
		res.Win = true
		res.Payout = bet * paytable.WinMultiplier
		_ = e.wallet.Credit(res.Payout)
		settled = round.OutcomeWin
	}
	res.Balance = e.wallet.Balance()
	if e.history != nil {
		e.history.Append(round.Settlement{
			RoundID:   res.RoundID,
			Game:      "coinflip",
			Outcome:   settled,
			Bet:       bet,
			Payout:    res.Payout,
			Delta:     res.Payout - bet,
			SettledAt: time.Now(),
		})
	}
	return res, nil
}
