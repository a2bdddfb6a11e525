// Package mines implements the mine-field wager game: reveal safe cells on a
// 5x5 board and cash out before hitting a mine.
package mines

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pixelarcade/casino-rgs/paytable"
	"github.com/pixelarcade/casino-rgs/rng"
	"github.com/pixelarcade/casino-rgs/round"
	"github.com/pixelarcade/casino-rgs/wallet"
)

// BoardSize is the number of cells on the board.
const BoardSize = 25

var (
	// ErrInvalidCell is returned for a cell index outside the board.
	ErrInvalidCell = errors.New("invalid cell index")
	// ErrInvalidMineCount is returned when the mine count is not on the menu.
	ErrInvalidMineCount = errors.New("invalid mine count")
)

// Phase is the mines round phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseSettled:
		return "settled"
	}
	return "unknown"
}

// Engine holds at most one in-flight mines round.
type Engine struct {
	wallet  *wallet.Wallet
	src     rng.Source
	table   paytable.MinesTable
	history *round.History

	phase         Phase
	roundID       string
	bet           int64
	mineCount     int
	mines         [BoardSize]bool
	revealed      [BoardSize]bool
	revealedCount int
	outcome       round.Outcome
	payout        int64
}

// New returns an idle engine sharing the given wallet and tier table.
func New(w *wallet.Wallet, src rng.Source, table paytable.MinesTable, history *round.History) *Engine {
	return &Engine{wallet: w, src: src, table: table, history: history}
}

// StartGame debits the bet, places mineCount mines at distinct random cells
// and activates the board. The mine count must come from the tier table's
// fixed menu and cannot change while the round is active.
func (e *Engine) StartGame(bet int64, mineCount int) (View, error) {
	if e.phase == PhaseActive {
		return e.View(), round.ErrInvalidState
	}
	if !e.table.Supports(mineCount) {
		return e.View(), ErrInvalidMineCount
	}
	if bet <= 0 {
		return e.View(), round.ErrInvalidBet
	}
	if err := e.wallet.Debit(bet); err != nil {
		return e.View(), err
	}

	e.roundID = uuid.New().String()
	e.bet = bet
	e.mineCount = mineCount
	e.mines = [BoardSize]bool{}
	e.revealed = [BoardSize]bool{}
	e.revealedCount = 0
	e.outcome = ""
	e.payout = 0
	for _, pos := range rng.SampleUnique(e.src, BoardSize, mineCount) {
		e.mines[pos] = true
	}
	e.phase = PhaseActive
	return e.View(), nil
}

// Reveal opens a cell. A mine busts the round and forfeits the bet; a safe
// cell raises the potential cash-out by one tier unit. Revealing a cell that
// is already open returns the current state unchanged.
func (e *Engine) Reveal(cell int) (View, error) {
	if e.phase != PhaseActive {
		return e.View(), round.ErrInvalidState
	}
	if cell < 0 || cell >= BoardSize {
		return e.View(), ErrInvalidCell
	}
	if e.revealed[cell] {
		return e.View(), nil
	}
	e.revealed[cell] = true
	if e.mines[cell] {
		e.revealAllMines()
		e.settle(round.OutcomeBusted, 0)
		return e.View(), nil
	}
	e.revealedCount++
	return e.View(), nil
}

// CashOut settles the round, crediting tier x revealed cells. With nothing
// revealed the round still ends, paying zero.
func (e *Engine) CashOut() (View, error) {
	if e.phase != PhaseActive {
		return e.View(), round.ErrInvalidState
	}
	winnings := e.PotentialCashout()
	e.revealAllMines()
	e.settle(round.OutcomeCashedOut, winnings)
	return e.View(), nil
}

// Forfeit abandons an active round as a loss. The original debit stands.
func (e *Engine) Forfeit() (View, error) {
	if e.phase != PhaseActive {
		return e.View(), round.ErrInvalidState
	}
	e.revealAllMines()
	e.settle(round.OutcomeBusted, 0)
	return e.View(), nil
}

// PotentialCashout returns the amount a cash-out would pay right now.
func (e *Engine) PotentialCashout() int64 {
	if e.phase != PhaseActive || e.revealedCount == 0 {
		return 0
	}
	tier, ok := e.table.Tier(e.mineCount, e.bet)
	if !ok {
		return 0
	}
	return tier * int64(e.revealedCount)
}

func (e *Engine) revealAllMines() {
	for i := range e.mines {
		if e.mines[i] {
			e.revealed[i] = true
		}
	}
}

func (e *Engine) settle(outcome round.Outcome, payout int64) {
	if payout > 0 {
		_ = e.wallet.Credit(payout)
	}
	e.outcome = outcome
	e.payout = payout
	e.phase = PhaseSettled
	if e.history != nil {
		e.history.Append(round.Settlement{
			RoundID:   e.roundID,
			Game:      "mines",
			Outcome:   outcome,
			Bet:       e.bet,
			Payout:    payout,
			Delta:     payout - e.bet,
			SettledAt: time.Now(),
		})
	}
}
