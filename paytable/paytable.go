// Package paytable holds the static payout rules: the mines tier table and
// the fixed multipliers used by the other games.
package paytable

// Fixed multipliers applied to the bet on settlement.
const (
	// WinMultiplier pays 2x the stake on a win (blackjack, coin flip, roulette).
	WinMultiplier = 2
	// PushMultiplier returns the stake on a blackjack push.
	PushMultiplier = 1
)

// Bet brackets for the mines tier table. A bet falls into the first bracket
// whose bound it does not exceed; anything above the last bound is the top
// bracket.
var bracketBounds = [3]int64{10000, 25000, 50000}

// MinesTable maps mine count to the per-revealed-cell payout for each of the
// four bet brackets, low to high.
type MinesTable map[int][4]int64

// Default returns the built-in mines tier table.
func Default() MinesTable {
	return MinesTable{
		3:  {500, 1000, 2000, 4000},
		5:  {900, 1750, 3500, 7000},
		8:  {1200, 2400, 4800, 9600},
		12: {7000, 14000, 28000, 56000},
	}
}

// MineCounts returns the mine counts the table supports, ascending.
func (t MinesTable) MineCounts() []int {
	counts := make([]int, 0, len(t))
	for _, c := range []int{3, 5, 8, 12} {
		if _, ok := t[c]; ok {
			counts = append(counts, c)
		}
	}
	return counts
}

// Supports reports whether mineCount is a valid menu choice.
func (t MinesTable) Supports(mineCount int) bool {
	_, ok := t[mineCount]
	return ok
}

// Tier returns the per-revealed-cell payout for the given mine count and bet.
// ok is false when the mine count is not in the table.
func (t MinesTable) Tier(mineCount int, bet int64) (int64, bool) {
	rates, ok := t[mineCount]
	if !ok {
		return 0, false
	}
	for i, bound := range bracketBounds {
		if bet <= bound {
			return rates[i], true
		}
	}
	return rates[3], true
}
