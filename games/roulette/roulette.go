// Package roulette implements the red/black roulette game. The wheel is a
// deliberate simplification: two colors, no green pockets.
package roulette

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pixelarcade/casino-rgs/paytable"
	"github.com/pixelarcade/casino-rgs/rng"
	"github.com/pixelarcade/casino-rgs/round"
	"github.com/pixelarcade/casino-rgs/wallet"
)

// Color is a roulette bet color.
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

// ErrNoSelection is returned when no valid color was chosen.
var ErrNoSelection = errors.New("no color selected")

// Result is the settled outcome of one spin.
type Result struct {
	RoundID string `json:"roundId"`
	Choice  Color  `json:"choice"`
	Result  Color  `json:"result"`
	Win     bool   `json:"win"`
	Bet     int64  `json:"bet"`
	Payout  int64  `json:"payout"`
	Balance int64  `json:"balance"`
}

// Engine settles spins against the shared wallet. Stateless between calls.
type Engine struct {
	wallet  *wallet.Wallet
	src     rng.Source
	history *round.History
}

// New returns a roulette engine sharing the given wallet.
func New(w *wallet.Wallet, src rng.Source, history *round.History) *Engine {
	return &Engine{wallet: w, src: src, history: history}
}

// Spin debits the bet, samples red or black uniformly and pays 2x the bet on
// a match. A missing or unknown color fails before any wallet mutation.
func (e *Engine) Spin(bet int64, choice Color) (Result, error) {
	if choice != Red && choice != Black {
		return Result{}, ErrNoSelection
	}
	if bet <= 0 {
		return Result{}, round.ErrInvalidBet
	}
	if err := e.wallet.Debit(bet); err != nil {
		return Result{}, err
	}

	result := Black
	if e.src.Intn(2) == 0 {
		result = Red
	}

	res := Result{
		RoundID: uuid.New().String(),
		Choice:  choice,
		Result:  result,
		Bet:     bet,
	}
	settled := round.OutcomeLose
	if result == choice {
		res.Win = true
		res.Payout = bet * paytable.WinMultiplier
		_ = e.wallet.Credit(res.Payout)
		settled = round.OutcomeWin
	}
	res.Balance = e.wallet.Balance()
	if e.history != nil {
		e.history.Append(round.Settlement{
			RoundID:   res.RoundID,
			Game:      "roulette",
			Outcome:   settled,
			Bet:       bet,
			Payout:    res.Payout,
			Delta:     res.Payout - bet,
			SettledAt: time.Now(),
		})
	}
	return res, nil
}
