// Package cards models playing cards and blackjack hand evaluation.
package cards

// Rank is a card rank. Aces count 11 or 1, resolved per hand.
type Rank int

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Suit is decorative only; it never affects a payout.
type Suit string

const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists all four suits for shoe draws.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is a single playing card.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

var rankNames = map[Rank]string{
	Ace: "A", Two: "2", Three: "3", Four: "4", Five: "5", Six: "6",
	Seven: "7", Eight: "8", Nine: "9", Ten: "10", Jack: "J", Queen: "Q", King: "K",
}

// String returns the short rank name, e.g. "A", "10", "K".
func (c Card) String() string {
	return rankNames[c.Rank]
}

// hardValue is the rank's blackjack value with aces counted high (11).
func (c Card) hardValue() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Jack:
		return 10
	default:
		return int(c.Rank)
	}
}
