// Package deck implements the 52-card deck and hand arithmetic for blackjack.
package deck

import (
	"github.com/pixelarcade/casino-rgs/rng"
)

// Card is a playing card. Immutable once created.
type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

// String returns a compact representation like "A♠" or "10♥".
func (c Card) String() string {
	return c.Rank + c.Suit
}

// Suits and Ranks define the deck composition and creation order.
var (
	Suits = []string{"♠", "♥", "♦", "♣"}
	Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

// Deck is an ordered pile of cards consumed from the end.
type Deck struct {
	cards []Card
	src   rng.Source
}

// New builds a full 52-card deck and shuffles it with src.
func New(src rng.Source) *Deck {
	d := &Deck{
		cards: make([]Card, 0, len(Suits)*len(Ranks)),
		src:   src,
	}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{Suit: suit, Rank: rank})
		}
	}
	d.Shuffle()
	return d
}

// Shuffle permutes the deck in place using Fisher-Yates.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.src.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card (end of the pile).
// ok is false when the deck is exhausted.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

// Remaining returns the number of undrawn cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Value returns the blackjack value of a card: face cards count 10,
// aces count 11 (soft), numeric ranks their own value.
func Value(c Card) int {
	switch c.Rank {
	case "J", "Q", "K":
		return 10
	case "A":
		return 11
	case "10":
		return 10
	case "2", "3", "4", "5", "6", "7", "8", "9":
		return int(c.Rank[0] - '0')
	}
	return 0
}

// HandTotal computes the best blackjack total for a hand. Aces start at 11
// and are demoted to 1 one at a time while the total busts, so the result is
// the maximum total <= 21 when achievable, else the minimum possible total.
func HandTotal(hand []Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		total += Value(c)
		if c.Rank == "A" {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
