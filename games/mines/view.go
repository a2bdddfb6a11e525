package mines

// Cell display states. Unrevealed cells always read "hidden" while the round
// is active so the view never leaks mine positions.
const (
	CellHidden = "hidden"
	CellSafe   = "safe"
	CellMine   = "mine"
)

// View is the consumer-facing snapshot of the round.
type View struct {
	RoundID          string   `json:"roundId,omitempty"`
	Phase            string   `json:"phase"`
	Bet              int64    `json:"bet,omitempty"`
	MineCount        int      `json:"mineCount,omitempty"`
	Cells            []string `json:"cells,omitempty"`
	RevealedCount    int      `json:"revealedCount"`
	PotentialCashout int64    `json:"potentialCashout"`
	Outcome          string   `json:"outcome,omitempty"`
	Payout           int64    `json:"payout,omitempty"`
	Balance          int64    `json:"balance"`
}

// View returns the current round snapshot.
func (e *Engine) View() View {
	v := View{
		RoundID:          e.roundID,
		Phase:            e.phase.String(),
		Bet:              e.bet,
		MineCount:        e.mineCount,
		RevealedCount:    e.revealedCount,
		PotentialCashout: e.PotentialCashout(),
		Balance:          e.wallet.Balance(),
	}
	if e.phase == PhaseIdle {
		return v
	}

	v.Cells = make([]string, BoardSize)
	for i := range v.Cells {
		switch {
		case !e.revealed[i]:
			v.Cells[i] = CellHidden
		case e.mines[i]:
			v.Cells[i] = CellMine
		default:
			v.Cells[i] = CellSafe
		}
	}
	if e.phase == PhaseSettled {
		v.Outcome = string(e.outcome)
		v.Payout = e.payout
	}
	return v
}
