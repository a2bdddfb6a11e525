// Package blackjack implements the blackjack round engine: one in-flight
// hand against a dealer that stands on any 17.
package blackjack

import (
	"time"

	"github.com/google/uuid"

	"github.com/pixelarcade/casino-rgs/deck"
	"github.com/pixelarcade/casino-rgs/paytable"
	"github.com/pixelarcade/casino-rgs/rng"
	"github.com/pixelarcade/casino-rgs/round"
	"github.com/pixelarcade/casino-rgs/wallet"
)

// dealerStand is the total at which the dealer stops drawing, soft or hard.
const dealerStand = 17

// Phase is the blackjack round phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseSettled:
		return "settled"
	}
	return "unknown"
}

// Engine holds at most one in-flight blackjack round.
type Engine struct {
	wallet  *wallet.Wallet
	src     rng.Source
	history *round.History

	phase   Phase
	roundID string
	bet     int64
	deck    *deck.Deck
	player  []deck.Card
	dealer  []deck.Card
	outcome round.Outcome
	payout  int64
}

// New returns an idle engine sharing the given wallet.
func New(w *wallet.Wallet, src rng.Source, history *round.History) *Engine {
	return &Engine{wallet: w, src: src, history: history}
}

// StartRound debits the bet, deals a fresh shuffled deck (two cards to the
// player, then two to the dealer) and enters the player's turn. The dealer's
// second card stays hidden in the view until the dealer plays.
func (e *Engine) StartRound(bet int64) (View, error) {
	if e.phase == PhasePlayerTurn || e.phase == PhaseDealerTurn {
		return e.View(), round.ErrInvalidState
	}
	if bet <= 0 {
		return e.View(), round.ErrInvalidBet
	}
	if err := e.wallet.Debit(bet); err != nil {
		return e.View(), err
	}

	e.roundID = uuid.New().String()
	e.bet = bet
	e.deck = deck.New(e.src)
	e.player = e.player[:0]
	e.dealer = e.dealer[:0]
	e.outcome = ""
	e.payout = 0

	for i := 0; i < 2; i++ {
		e.player = append(e.player, e.draw())
	}
	for i := 0; i < 2; i++ {
		e.dealer = append(e.dealer, e.draw())
	}
	e.phase = PhasePlayerTurn
	return e.View(), nil
}

// Hit draws one card into the player's hand. A total over 21 busts the hand
// and settles the round as a loss.
func (e *Engine) Hit() (View, error) {
	if e.phase != PhasePlayerTurn {
		return e.View(), round.ErrInvalidState
	}
	e.player = append(e.player, e.draw())
	if deck.HandTotal(e.player) > 21 {
		e.settle(round.OutcomeLose, 0)
	}
	return e.View(), nil
}

// Stand ends the player's turn. The dealer draws while below 17, then totals
// are compared: dealer bust or lower total pays 2x the bet, a tie returns
// the stake, otherwise the bet is forfeit.
func (e *Engine) Stand() (View, error) {
	if e.phase != PhasePlayerTurn {
		return e.View(), round.ErrInvalidState
	}
	e.phase = PhaseDealerTurn
	for deck.HandTotal(e.dealer) < dealerStand {
		e.dealer = append(e.dealer, e.draw())
	}

	playerTotal := deck.HandTotal(e.player)
	dealerTotal := deck.HandTotal(e.dealer)
	switch {
	case dealerTotal > 21 || playerTotal > dealerTotal:
		e.settle(round.OutcomeWin, e.bet*paytable.WinMultiplier)
	case playerTotal == dealerTotal:
		e.settle(round.OutcomePush, e.bet*paytable.PushMultiplier)
	default:
		e.settle(round.OutcomeLose, 0)
	}
	return e.View(), nil
}

// Forfeit abandons an in-flight round, settling it as a loss. The original
// debit stands.
func (e *Engine) Forfeit() (View, error) {
	if e.phase != PhasePlayerTurn && e.phase != PhaseDealerTurn {
		return e.View(), round.ErrInvalidState
	}
	e.settle(round.OutcomeLose, 0)
	return e.View(), nil
}

func (e *Engine) draw() deck.Card {
	c, ok := e.deck.Draw()
	if !ok {
		// 52 cards cover any legal hand; a fresh deck per round makes
		// exhaustion unreachable, but never deal a zero card.
		e.deck = deck.New(e.src)
		c, _ = e.deck.Draw()
	}
	return c
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
			Game:      "blackjack",
			Outcome:   outcome,
			Bet:       e.bet,
			Payout:    payout,
			Delta:     payout - e.bet,
			SettledAt: time.Now(),
		})
	}
}
