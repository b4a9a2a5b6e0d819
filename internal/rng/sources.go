package rng

import (
	"casino-sim/internal/cards"
	"casino-sim/internal/domain"
)

// Wheel draws European roulette pockets.
type Wheel struct {
	svc *Service
}

// NewWheel creates a pocket source backed by the RNG service.
func NewWheel(svc *Service) *Wheel {
	return &Wheel{svc: svc}
}

// Spin returns a uniformly drawn pocket in 0-36.
func (w *Wheel) Spin() (domain.Pocket, error) {
	n, err := w.svc.Int(37)
	if err != nil {
		return 0, err
	}
	return domain.Pocket(n), nil
}

// Reels draws three-reel slot outcomes, one uniform symbol per reel.
type Reels struct {
	svc *Service
}

// NewReels creates a reel source backed by the RNG service.
func NewReels(svc *Service) *Reels {
	return &Reels{svc: svc}
}

// Spin returns one symbol per reel.
func (r *Reels) Spin() (domain.SlotReels, error) {
	var reels domain.SlotReels
	for i := range reels {
		n, err := r.svc.Int(int64(len(domain.ReelSymbols)))
		if err != nil {
			return domain.SlotReels{}, err
		}
		reels[i] = domain.ReelSymbols[n]
	}
	return reels, nil
}

// Shoe deals cards from an effectively infinite shoe: every draw is a
// uniform rank and suit, independent of earlier draws.
type Shoe struct {
	svc *Service
}

// NewShoe creates a card source backed by the RNG service.
func NewShoe(svc *Service) *Shoe {
	return &Shoe{svc: svc}
}

// Draw returns one uniformly drawn card.
func (s *Shoe) Draw() (cards.Card, error) {
	rank, err := s.svc.IntRange(int64(cards.Ace), int64(cards.King))
	if err != nil {
		return cards.Card{}, err
	}
	suit, err := s.svc.Int(int64(len(cards.Suits)))
	if err != nil {
		return cards.Card{}, err
	}
	return cards.Card{Rank: cards.Rank(rank), Suit: cards.Suits[suit]}, nil
}

// Dice rolls two six-sided dice.
type Dice struct {
	svc *Service
}

// NewDice creates a dice source backed by the RNG service.
func NewDice(svc *Service) *Dice {
	return &Dice{svc: svc}
}

// Roll returns one two-die roll.
func (d *Dice) Roll() (domain.DiceRoll, error) {
	d1, err := d.svc.IntRange(1, 6)
	if err != nil {
		return domain.DiceRoll{}, err
	}
	d2, err := d.svc.IntRange(1, 6)
	if err != nil {
		return domain.DiceRoll{}, err
	}
	return domain.DiceRoll{Die1: int(d1), Die2: int(d2)}, nil
}
