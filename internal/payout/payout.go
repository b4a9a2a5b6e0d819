// Package payout encodes the fixed-odds tables for every game. All
// functions are pure: they map a bet descriptor and a drawn outcome to the
// amount returned to the player, stake included. A losing bet returns 0.
package payout

import "errors"

// ErrUnknownBetKind marks a malformed or unrecognized bet descriptor.
// Callers treat it as an automatic loss and log it; it is never fatal.
var ErrUnknownBetKind = errors.New("unknown bet kind")

// Fixed roulette odds, expressed as total-return multiples of the stake
// (winnings plus the returned stake).
const (
	rouletteSingleReturn = 36 // pays 35:1
	rouletteEvenReturn   = 2  // pays 1:1
	rouletteDozenReturn  = 3  // pays 2:1
)

// Blackjack settlement outcomes.
type BlackjackOutcome string

const (
	BlackjackNatural BlackjackOutcome = "natural" // two-card 21 on the deal
	BlackjackWin     BlackjackOutcome = "win"
	BlackjackPush    BlackjackOutcome = "push"
	BlackjackLoss    BlackjackOutcome = "loss"
)
