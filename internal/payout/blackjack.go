package payout

// BlackjackReturn maps a settled hand outcome to the amount returned to the
// player, stake included: a natural pays 3:2, a standard win 1:1, a push
// returns the stake, and a loss returns nothing. Odd natural stakes round
// the half-chip down.
func BlackjackReturn(outcome BlackjackOutcome, stake int64) (int64, error) {
	switch outcome {
	case BlackjackNatural:
		return stake * 5 / 2, nil
	case BlackjackWin:
		return stake * 2, nil
	case BlackjackPush:
		return stake, nil
	case BlackjackLoss:
		return 0, nil
	default:
		return 0, ErrUnknownBetKind
	}
}
