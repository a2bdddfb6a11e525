package blackjack

import (
	"github.com/pixelarcade/casino-rgs/deck"
)

// View is the consumer-facing snapshot of the round. While the player acts,
// the dealer's hole card is withheld: Dealer carries only the up-card and
// DealerTotal is the up-card value.
type View struct {
	RoundID        string      `json:"roundId,omitempty"`
	Phase          string      `json:"phase"`
	Bet            int64       `json:"bet,omitempty"`
	Player         []deck.Card `json:"player,omitempty"`
	PlayerTotal    int         `json:"playerTotal,omitempty"`
	Dealer         []deck.Card `json:"dealer,omitempty"`
	DealerTotal    int         `json:"dealerTotal,omitempty"`
	DealerHoleDown bool        `json:"dealerHoleDown"`
	Outcome        string      `json:"outcome,omitempty"`
	Payout         int64       `json:"payout,omitempty"`
	Balance        int64       `json:"balance"`
}

// View returns the current round snapshot.
func (e *Engine) View() View {
	v := View{
		RoundID: e.roundID,
		Phase:   e.phase.String(),
		Bet:     e.bet,
		Balance: e.wallet.Balance(),
	}
	if e.phase == PhaseIdle {
		return v
	}

	v.Player = append([]deck.Card(nil), e.player...)
	v.PlayerTotal = deck.HandTotal(e.player)

	if e.phase == PhasePlayerTurn {
		v.DealerHoleDown = true
		v.Dealer = []deck.Card{e.dealer[0]}
		v.DealerTotal = deck.Value(e.dealer[0])
	} else {
		v.Dealer = append([]deck.Card(nil), e.dealer...)
		v.DealerTotal = deck.HandTotal(e.dealer)
	}
	if e.phase == PhaseSettled {
		v.Outcome = string(e.outcome)
		v.Payout = e.payout
	}
	return v
}
