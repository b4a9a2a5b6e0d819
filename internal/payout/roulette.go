package payout

import "casino-sim/internal/domain"

// Roulette returns the amount a bet wins for the drawn pocket, stake
// included. Pocket 0 is neither red nor black, neither odd nor even, and
// belongs to no dozen or half, so every outside bet loses on it.
func Roulette(bet domain.RouletteBet, pocket domain.Pocket, stake int64) (int64, error) {
	if !bet.Valid() {
		return 0, ErrUnknownBetKind
	}

	switch bet.Type {
	case domain.BetRed:
		if pocket.IsRed() {
			return stake * rouletteEvenReturn, nil
		}
	case domain.BetBlack:
		if pocket.IsBlack() {
			return stake * rouletteEvenReturn, nil
		}
	case domain.BetOdd:
		if pocket != 0 && pocket%2 != 0 {
			return stake * rouletteEvenReturn, nil
		}
	case domain.BetEven:
		if pocket != 0 && pocket%2 == 0 {
			return stake * rouletteEvenReturn, nil
		}
	case domain.BetLow:
		if pocket >= 1 && pocket <= 18 {
			return stake * rouletteEvenReturn, nil
		}
	case domain.BetHigh:
		if pocket >= 19 && pocket <= 36 {
			return stake * rouletteEvenReturn, nil
		}
	case domain.BetDozen:
		if pocket.Dozen() == bet.Number {
			return stake * rouletteDozenReturn, nil
		}
	case domain.BetSingle:
		if int(pocket) == bet.Number {
			return stake * rouletteSingleReturn, nil
		}
	}

	return 0, nil
}
