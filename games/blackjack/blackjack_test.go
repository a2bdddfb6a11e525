package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelarcade/casino-rgs/deck"
	"github.com/pixelarcade/casino-rgs/round"
	"github.com/pixelarcade/casino-rgs/wallet"
)

// identitySource keeps the deck in creation order, so draws come off the
// clubs run: A♣, K♣, Q♣, J♣, 10♣, 9♣, ...
type identitySource struct{}

func (identitySource) Intn(n int) int { return n - 1 }

func card(rank, suit string) deck.Card { return deck.Card{Suit: suit, Rank: rank} }

func newTestEngine(t *testing.T, balance int64) (*Engine, *wallet.Wallet, *round.History) {
	t.Helper()
	w := wallet.New(balance)
	h := round.NewHistory(10)
	return New(w, identitySource{}, h), w, h
}

// riggedRound puts the engine mid-round with chosen hands and a fresh
// identity-ordered deck, with the bet already debited.
func riggedRound(t *testing.T, e *Engine, w *wallet.Wallet, bet int64, player, dealer []deck.Card) {
	t.Helper()
	require.NoError(t, w.Debit(bet))
	e.phase = PhasePlayerTurn
	e.roundID = "rigged"
	e.bet = bet
	e.deck = deck.New(identitySource{})
	e.player = player
	e.dealer = dealer
}

func TestStartRoundDealsAndDebits(t *testing.T) {
	e, w, _ := newTestEngine(t, 40000)
	view, err := e.StartRound(1000)
	require.NoError(t, err)

	assert.Equal(t, int64(39000), w.Balance())
	assert.Equal(t, "player_turn", view.Phase)
	assert.Equal(t, []deck.Card{card("A", "♣"), card("K", "♣")}, view.Player)
	assert.Equal(t, 21, view.PlayerTotal)
	// Only the up-card is visible while the player acts.
	assert.True(t, view.DealerHoleDown)
	require.Len(t, view.Dealer, 1)
	assert.Equal(t, card("Q", "♣"), view.Dealer[0])
	assert.Equal(t, 10, view.DealerTotal)
	assert.NotEmpty(t, view.RoundID)
}

func TestStartRoundInvalidBet(t *testing.T) {
	e, w, _ := newTestEngine(t, 40000)
	_, err := e.StartRound(0)
	require.ErrorIs(t, err, round.ErrInvalidBet)
	_, err = e.StartRound(-100)
	require.ErrorIs(t, err, round.ErrInvalidBet)
	assert.Equal(t, int64(40000), w.Balance())
}

func TestStartRoundInsufficientFunds(t *testing.T) {
	e, w, _ := newTestEngine(t, 500)
	_, err := e.StartRound(501)
	require.ErrorIs(t, err, wallet.ErrInsufficientFunds)
	assert.Equal(t, int64(500), w.Balance())
}

func TestStartRoundMidRound(t *testing.T) {
	e, w, _ := newTestEngine(t, 40000)
	_, err := e.StartRound(1000)
	require.NoError(t, err)
	_, err = e.StartRound(1000)
	require.ErrorIs(t, err, round.ErrInvalidState)
	assert.Equal(t, int64(39000), w.Balance())
}

func TestStandPlayerWins(t *testing.T) {
	e, w, h := newTestEngine(t, 40000)
	_, err := e.StartRound(1000)
	require.NoError(t, err)

	// Player 21 vs dealer 20; dealer stands on 20.
	view, err := e.Stand()
	require.NoError(t, err)
	assert.Equal(t, "settled", view.Phase)
	assert.Equal(t, string(round.OutcomeWin), view.Outcome)
	assert.Equal(t, int64(2000), view.Payout)
	assert.False(t, view.DealerHoleDown)
	assert.Len(t, view.Dealer, 2)
	assert.Equal(t, int64(41000), w.Balance())

	recent := h.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, round.OutcomeWin, recent[0].Outcome)
	assert.Equal(t, int64(1000), recent[0].Delta)
}

func TestStandDealerHigherLoses(t *testing.T) {
	e, w, _ := newTestEngine(t, 40000)
	riggedRound(t, e, w, 1000, []deck.Card{card("10", "♦"), card("7", "♦")}, []deck.Card{card("10", "♥"), card("9", "♥")})

	view, err := e.Stand()
	require.NoError(t, err)
	// Dealer holds 19 and never draws; 19 beats 17.
	assert.Len(t, view.Dealer, 2)
	assert.Equal(t, string(round.OutcomeLose), view.Outcome)
	assert.Equal(t, int64(0), view.Payout)
	assert.Equal(t, int64(39000), w.Balance())
}

func TestStandPushReturnsStake(t *testing.T) {
	e, w, _ := newTestEngine(t, 40000)
	riggedRound(t, e, w, 1000, []deck.Card{card("10", "♦"), card("7", "♦")}, []deck.Card{card("10", "♥"), card("7", "♥")})

	view, err := e.Stand()
	require.NoError(t, err)
	assert.Equal(t, string(round.OutcomePush), view.Outcome)
	assert.Equal(t, int64(1000), view.Payout)
	assert.Equal(t, int64(40000), w.Balance())
}

func TestStandDealerDrawsToSeventeen(t *testing.T) {
	e, w, _ := newTestEngine(t, 40000)
	// Dealer starts at 11 and must draw. Identity deck feeds A♣ (12 after
	// demotion) then K♣ (22): dealer busts, player wins on 17.
	riggedRound(t, e, w, 1000, []deck.Card{card("10", "♦"), card("7", "♦")}, []deck.Card{card("6", "♥"), card("5", "♥")})

	view, err := e.Stand()
	require.NoError(t, err)
	assert.Len(t, view.Dealer, 4)
	assert.Greater(t, view.DealerTotal, 21)
	assert.Equal(t, string(round.OutcomeWin), view.Outcome)
	assert.Equal(t, int64(41000), w.Balance())
}

func TestHitBust(t *testing.T) {
	e, w, _ := newTestEngine(t, 40000)
	riggedRound(t, e, w, 1000, []deck.Card{card("10", "♦"), card("7", "♦")}, []deck.Card{card("10", "♥"), card("9", "♥")})

	// Identity deck deals A♣: 17 + 1 = 18, still in play.
	view, err := e.Hit()
	require.NoError(t, err)
	assert.Equal(t, "player_turn", view.Phase)
	assert.Equal(t, 18, view.PlayerTotal)

	// K♣ takes the hand to 28: bust, bet forfeited.
	view, err = e.Hit()
	require.NoError(t, err)
	assert.Equal(t, "settled", view.Phase)
	assert.Equal(t, string(round.OutcomeLose), view.Outcome)
	assert.Equal(t, int64(39000), w.Balance())
}

func TestActionsInWrongPhase(t *testing.T) {
	e, _, _ := newTestEngine(t, 40000)
	_, err := e.Hit()
	require.ErrorIs(t, err, round.ErrInvalidState)
	_, err = e.Stand()
	require.ErrorIs(t, err, round.ErrInvalidState)
	_, err = e.Forfeit()
	require.ErrorIs(t, err, round.ErrInvalidState)
}

func TestForfeitSettlesAsLoss(t *testing.T) {
	e, w, _ := newTestEngine(t, 40000)
	_, err := e.StartRound(1000)
	require.NoError(t, err)

	view, err := e.Forfeit()
	require.NoError(t, err)
	assert.Equal(t, "settled", view.Phase)
	assert.Equal(t, string(round.OutcomeLose), view.Outcome)
	assert.Equal(t, int64(39000), w.Balance())

	// A new round may start after settlement.
	_, err = e.StartRound(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(38000), w.Balance())
}

func TestViewIdle(t *testing.T) {
	e, _, _ := newTestEngine(t, 40000)
	view := e.View()
	assert.Equal(t, "idle", view.Phase)
	assert.Empty(t, view.Player)
	assert.Equal(t, int64(40000), view.Balance)
}
