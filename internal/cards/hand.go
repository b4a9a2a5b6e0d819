package cards

// Hand is an ordered sequence of cards. It is not retained beyond a round.
type Hand []Card

// Value computes the best blackjack value under ace-flex rules: every ace
// is first counted as 11, then aces are demoted to 1 one at a time while
// the total exceeds 21. Each demotion subtracts exactly 10, so the greedy
// reduction always lands on the best achievable total.
func (h Hand) Value() int {
	value := 0
	highAces := 0

	for _, c := range h {
		v := c.hardValue()
		if c.Rank == Ace {
			highAces++
		}
		value += v
	}

	for value > 21 && highAces > 0 {
		value -= 10
		highAces--
	}

	return value
}

// IsBust reports whether the hand value exceeds 21.
func (h Hand) IsBust() bool {
	return h.Value() > 21
}

// IsBlackjack reports a natural: a two-card 21 on the initial deal.
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Value() == 21
}

// String renders the hand as "A, K" for display and round summaries.
func (h Hand) String() string {
	if len(h) == 0 {
		return "(empty)"
	}
	s := h[0].String()
	for _, c := range h[1:] {
		s += ", " + c.String()
	}
	return s
}
