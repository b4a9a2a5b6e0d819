package table

import (
	"casino-sim/internal/bets"
	"casino-sim/internal/domain"
	"casino-sim/internal/ledger"
	"casino-sim/internal/payout"
)

// Reels draws one three-symbol spin per round.
type Reels interface {
	Spin() (domain.SlotReels, error)
}

// stakeKey is the single bet kind for one-wager games.
const stakeKey = "stake"

// SlotMachine runs a three-reel slot machine with a configurable stake
// range, matching the cabinet's one-to-ten chip bet band.
type SlotMachine struct {
	ledger *ledger.Ledger
	reels  Reels
	reg    *bets.Registry[string]
	state  State

	MinBet int64
	MaxBet int64
}

// NewSlotMachine creates an open slot machine.
func NewSlotMachine(led *ledger.Ledger, reels Reels) *SlotMachine {
	return &SlotMachine{
		ledger: led,
		reels:  reels,
		reg:    bets.NewRegistry[string](),
		state:  StateOpen,
		MinBet: 1,
		MaxBet: 10,
	}
}

// State returns the current round phase.
func (t *SlotMachine) State() State {
	return t.state
}

// Stake returns the amount committed to the pending spin.
func (t *SlotMachine) Stake() int64 {
	return t.reg.Amount(stakeKey)
}

// PlaceBet commits the spin stake. The total committed stake must stay
// within the machine's bet band. Returns false with a nil error when the
// balance cannot cover it.
func (t *SlotMachine) PlaceBet(amount int64) (bool, error) {
	if t.state != StateOpen {
		return false, ErrInvalidState
	}
	if amount < 1 || t.Stake()+amount < t.MinBet || t.Stake()+amount > t.MaxBet {
		return false, ErrInvalidBet
	}
	if !t.ledger.TrySpend(amount) {
		return false, nil
	}
	t.reg.Place(stakeKey, amount)
	return true, nil
}

// Close stops stake changes for the spin.
func (t *SlotMachine) Close() error {
	if t.state != StateOpen {
		return ErrInvalidState
	}
	t.state = StateClosed
	return nil
}

// Resolve spins the reels and settles the stake against the paytable.
func (t *SlotMachine) Resolve() (*domain.RoundResult, error) {
	if t.state != StateClosed || t.reg.IsEmpty() {
		return nil, ErrInvalidState
	}
	t.state = StateResolving

	reels, err := t.reels.Spin()
	if err != nil {
		t.state = StateClosed
		return nil, err
	}

	stake := t.reg.Total()
	won := payout.Slots(reels, stake)

	t.ledger.AddMoney(won)
	t.reg.Clear()
	t.state = StateSettled

	perBet := map[string]int64{stakeKey: won}
	return newResult("slots", reels.Describe(), perBet, stake, won, t.ledger.Balance()), nil
}

// ClearBets refunds the pending stake and keeps the machine open.
func (t *SlotMachine) ClearBets() (int64, error) {
	if t.state != StateOpen && t.state != StateClosed {
		return 0, ErrInvalidState
	}
	refund := t.reg.Clear()
	t.ledger.AddMoney(refund)
	return refund, nil
}

// Reset reopens the machine after a settled spin; a second reset is a no-op.
func (t *SlotMachine) Reset() error {
	if t.state == StateOpen {
		return nil
	}
	if t.state != StateSettled {
		if t.reg.IsEmpty() {
			t.state = StateOpen
			return nil
		}
		return ErrInvalidState
	}
	t.reg.Clear()
	t.state = StateOpen
	return nil
}
