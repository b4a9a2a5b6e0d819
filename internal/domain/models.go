// Package domain contains the core models shared by the casino tables:
// bet descriptors, drawn outcomes, and round settlements.
package domain

import (
	"fmt"
	"time"
)

// Pocket is a European roulette pocket, 0-36.
type Pocket int

// redPockets is the standard European wheel red set.
var redPockets = map[Pocket]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// IsRed reports whether the pocket is red. Zero is green.
func (p Pocket) IsRed() bool {
	return redPockets[p]
}

// IsBlack reports whether the pocket is black. Zero is green.
func (p Pocket) IsBlack() bool {
	return p >= 1 && p <= 36 && !redPockets[p]
}

// Dozen returns 1, 2, or 3 for pockets 1-12, 13-24, 25-36, and 0 for the
// zero pocket.
func (p Pocket) Dozen() int {
	if p < 1 || p > 36 {
		return 0
	}
	return (int(p)-1)/12 + 1
}

// Describe returns a human-readable pocket description for round summaries.
func (p Pocket) Describe() string {
	switch {
	case p == 0:
		return "0 (green)"
	case p.IsRed():
		return fmt.Sprintf("%d (red)", int(p))
	default:
		return fmt.Sprintf("%d (black)", int(p))
	}
}

// RouletteBetType enumerates the closed set of supported roulette wagers.
type RouletteBetType string

const (
	BetRed    RouletteBetType = "red"
	BetBlack  RouletteBetType = "black"
	BetOdd    RouletteBetType = "odd"
	BetEven   RouletteBetType = "even"
	BetLow    RouletteBetType = "low"  // 1-18
	BetHigh   RouletteBetType = "high" // 19-36
	BetDozen  RouletteBetType = "dozen"
	BetSingle RouletteBetType = "single"
)

// RouletteBet is a tagged bet descriptor. Number carries the pocket for
// single-number bets and the dozen index (1-3) for dozen bets; it is zero
// otherwise. The struct is comparable so it can key a bet registry.
type RouletteBet struct {
	Type   RouletteBetType `json:"type"`
	Number int             `json:"number,omitempty"`
}

// Valid reports whether the descriptor is well-formed.
func (b RouletteBet) Valid() bool {
	switch b.Type {
	case BetRed, BetBlack, BetOdd, BetEven, BetLow, BetHigh:
		return b.Number == 0
	case BetDozen:
		return b.Number >= 1 && b.Number <= 3
	case BetSingle:
		return b.Number >= 0 && b.Number <= 36
	default:
		return false
	}
}

// Label returns a stable display key, e.g. "red", "dozen-2", "single-17".
func (b RouletteBet) Label() string {
	switch b.Type {
	case BetDozen:
		return fmt.Sprintf("dozen-%d", b.Number)
	case BetSingle:
		return fmt.Sprintf("single-%d", b.Number)
	default:
		return string(b.Type)
	}
}

// Symbol is a slot machine reel symbol.
type Symbol string

const (
	SymbolBar    Symbol = "Bar"
	SymbolSeven  Symbol = "Seven"
	SymbolBell   Symbol = "Bell"
	SymbolCherry Symbol = "Cherry"
)

// ReelSymbols is the reel vocabulary, in display order.
var ReelSymbols = []Symbol{SymbolBar, SymbolSeven, SymbolBell, SymbolCherry}

// SlotReels is a single spin outcome across the three reels.
type SlotReels [3]Symbol

// Describe returns the reels as "Bar-Seven-Cherry".
func (r SlotReels) Describe() string {
	return string(r[0]) + "-" + string(r[1]) + "-" + string(r[2])
}

// DiceRoll is a two-die craps roll.
type DiceRoll struct {
	Die1 int `json:"die1"`
	Die2 int `json:"die2"`
}

// Total returns the combined roll value.
func (d DiceRoll) Total() int {
	return d.Die1 + d.Die2
}

// Describe returns the roll as "7 (3 + 4)".
func (d DiceRoll) Describe() string {
	return fmt.Sprintf("%d (%d + %d)", d.Total(), d.Die1, d.Die2)
}

// RoundResult is the settlement produced once per resolved round. It is
// handed to the caller for display and for the commentary sink; the engine
// retains no round history.
type RoundResult struct {
	RoundID     string           `json:"round_id"`
	Game        string           `json:"game"`
	Outcome     string           `json:"outcome"`
	PerBet      map[string]int64 `json:"per_bet"` // bet label -> amount won (0 if lost)
	TotalStaked int64            `json:"total_staked"`
	TotalWon    int64            `json:"total_won"`
	NewBalance  int64            `json:"new_balance"`
	SettledAt   time.Time        `json:"settled_at"`
}

// Summary builds the human-readable line fed to the dealer commentary sink.
func (r *RoundResult) Summary() string {
	if r.TotalWon > 0 {
		return fmt.Sprintf("%s round settled: outcome %s, staked %d, won %d, balance now %d",
			r.Game, r.Outcome, r.TotalStaked, r.TotalWon, r.NewBalance)
	}
	return fmt.Sprintf("%s round settled: outcome %s, staked %d and lost, balance now %d",
		r.Game, r.Outcome, r.TotalStaked, r.NewBalance)
}
