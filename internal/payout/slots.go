package payout

import "casino-sim/internal/domain"

// tripleMultipliers maps a matched triple to its return multiple. Symbols
// outside the table fall back to the cherry tier; the multiplier set must
// be extended explicitly when the reel vocabulary grows.
var tripleMultipliers = map[domain.Symbol]int64{
	domain.SymbolSeven:  15,
	domain.SymbolBar:    10,
	domain.SymbolBell:   8,
	domain.SymbolCherry: 5,
}

const (
	tripleDefaultMultiplier = 5 // cherry tier for unlisted symbols
	pairMultiplier          = 2
)

// Slots returns the amount a spin wins for the drawn reels, stake included.
// Three matching symbols pay the symbol's multiplier, any two matching pay
// 2x, and a spin with no matching pair pays nothing.
func Slots(reels domain.SlotReels, stake int64) int64 {
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		mult, ok := tripleMultipliers[reels[0]]
		if !ok {
			mult = tripleDefaultMultiplier
		}
		return stake * mult
	case reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2]:
		return stake * pairMultiplier
	default:
		return 0
	}
}
