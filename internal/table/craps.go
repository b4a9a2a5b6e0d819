package table

import (
	"fmt"

	"casino-sim/internal/bets"
	"casino-sim/internal/domain"
	"casino-sim/internal/ledger"
)

// Dice rolls two six-sided dice for craps.
type Dice interface {
	Roll() (domain.DiceRoll, error)
}

// Craps runs a pass-line craps table. The come-out roll wins even money on
// 7 or 11 and loses on 2, 3, or 12; any other total sets the point. With a
// point established the stake stays committed: rolling the point wins even
// money, rolling 7 loses, and every other total keeps the round going.
type Craps struct {
	ledger *ledger.Ledger
	dice   Dice
	reg    *bets.Registry[string]
	state  State
	point  int
}

// NewCraps creates an open craps table.
func NewCraps(led *ledger.Ledger, dice Dice) *Craps {
	return &Craps{
		ledger: led,
		dice:   dice,
		reg:    bets.NewRegistry[string](),
		state:  StateOpen,
	}
}

// State returns the current round phase.
func (t *Craps) State() State {
	return t.state
}

// Point returns the established point, 0 when none is set.
func (t *Craps) Point() int {
	return t.point
}

// Stake returns the pass-line stake riding on the round.
func (t *Craps) Stake() int64 {
	return t.reg.Amount(stakeKey)
}

// PlaceBet commits a pass-line stake before the come-out roll. Returns
// false with a nil error when the balance cannot cover it.
func (t *Craps) PlaceBet(amount int64) (bool, error) {
	if t.state != StateOpen {
		return false, ErrInvalidState
	}
	if amount <= 0 {
		return false, ErrInvalidBet
	}
	if !t.ledger.TrySpend(amount) {
		return false, nil
	}
	t.reg.Place(stakeKey, amount)
	return true, nil
}

// Roll throws the dice once. A nil result with a nil error means the round
// continues (the point was just set, or a point roll decided nothing).
func (t *Craps) Roll() (*domain.RoundResult, error) {
	if t.state == StateOpen && t.reg.IsEmpty() {
		return nil, ErrInvalidState
	}
	if t.state != StateOpen && t.state != StatePoint {
		return nil, ErrInvalidState
	}

	roll, err := t.dice.Roll()
	if err != nil {
		return nil, err
	}

	if t.state == StateOpen {
		switch roll.Total() {
		case 7, 11:
			return t.settle(roll, true), nil
		case 2, 3, 12:
			return t.settle(roll, false), nil
		default:
			t.point = roll.Total()
			t.state = StatePoint
			return nil, nil
		}
	}

	// Point phase.
	switch roll.Total() {
	case t.point:
		return t.settle(roll, true), nil
	case 7:
		return t.settle(roll, false), nil
	default:
		return nil, nil
	}
}

// ClearBets refunds the stake before the come-out roll. Once the point is
// set the pass-line stake cannot be taken down.
func (t *Craps) ClearBets() (int64, error) {
	if t.state != StateOpen {
		return 0, ErrInvalidState
	}
	refund := t.reg.Clear()
	t.ledger.AddMoney(refund)
	return refund, nil
}

// Reset reopens the table after a settled round; a second reset is a no-op.
func (t *Craps) Reset() error {
	if t.state == StateOpen {
		return nil
	}
	if t.state != StateSettled {
		return ErrInvalidState
	}
	t.point = 0
	t.reg.Clear()
	t.state = StateOpen
	return nil
}

func (t *Craps) settle(roll domain.DiceRoll, win bool) *domain.RoundResult {
	t.state = StateResolving

	stake := t.reg.Total()
	var won int64
	if win {
		won = stake * 2 // pass line pays 1:1
	}

	t.ledger.AddMoney(won)
	t.reg.Clear()

	desc := roll.Describe()
	if t.point != 0 {
		desc = fmt.Sprintf("%s on point %d", desc, t.point)
	}
	t.point = 0
	t.state = StateSettled

	perBet := map[string]int64{stakeKey: won}
	return newResult("craps", desc, perBet, stake, won, t.ledger.Balance())
}
