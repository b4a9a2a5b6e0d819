package table

import (
	"errors"

	"go.uber.org/zap"

	"casino-sim/internal/bets"
	"casino-sim/internal/domain"
	"casino-sim/internal/ledger"
	"casino-sim/internal/payout"
)

// Wheel draws one roulette pocket per round.
type Wheel interface {
	Spin() (domain.Pocket, error)
}

// Roulette runs a European roulette table against a single ledger.
type Roulette struct {
	ledger *ledger.Ledger
	wheel  Wheel
	reg    *bets.Registry[domain.RouletteBet]
	state  State
	log    *zap.Logger
}

// NewRoulette creates an open roulette table.
func NewRoulette(led *ledger.Ledger, wheel Wheel, log *zap.Logger) *Roulette {
	if log == nil {
		log = zap.NewNop()
	}
	return &Roulette{
		ledger: led,
		wheel:  wheel,
		reg:    bets.NewRegistry[domain.RouletteBet](),
		state:  StateOpen,
		log:    log,
	}
}

// State returns the current round phase.
func (t *Roulette) State() State {
	return t.state
}

// PlaceBet stakes amount on bet. The stake is debited before the bet is
// registered, so no bet ever exists without committed funds. It returns
// false with a nil error when the balance cannot cover the stake; that is
// an expected condition, not a failure.
func (t *Roulette) PlaceBet(bet domain.RouletteBet, amount int64) (bool, error) {
	if t.state != StateOpen {
		return false, ErrInvalidState
	}
	if !bet.Valid() || amount <= 0 {
		return false, ErrInvalidBet
	}
	if !t.ledger.TrySpend(amount) {
		return false, nil
	}
	t.reg.Place(bet, amount)
	return true, nil
}

// Close stops bet acceptance for the round.
func (t *Roulette) Close() error {
	if t.state != StateOpen {
		return ErrInvalidState
	}
	t.state = StateClosed
	return nil
}

// Resolve draws one pocket, evaluates every open bet, credits the ledger
// once with the total winnings, and settles the round.
func (t *Roulette) Resolve() (*domain.RoundResult, error) {
	if t.state != StateClosed || t.reg.IsEmpty() {
		return nil, ErrInvalidState
	}
	t.state = StateResolving

	pocket, err := t.wheel.Spin()
	if err != nil {
		// The draw failed before any settlement; reopen so the stakes
		// can be resolved or refunded by the caller.
		t.state = StateClosed
		return nil, err
	}

	staked := t.reg.Total()
	perBet := make(map[string]int64)
	var totalWon int64

	t.reg.Each(func(bet domain.RouletteBet, amount int64) {
		won, evalErr := payout.Roulette(bet, pocket, amount)
		if evalErr != nil {
			if errors.Is(evalErr, payout.ErrUnknownBetKind) {
				t.log.Warn("unknown roulette bet treated as loss",
					zap.String("bet", bet.Label()),
					zap.Int64("stake", amount))
			}
			won = 0
		}
		perBet[bet.Label()] = won
		totalWon += won
	})

	t.ledger.AddMoney(totalWon)
	t.reg.Clear()
	t.state = StateSettled

	return newResult("roulette", pocket.Describe(), perBet, staked, totalWon, t.ledger.Balance()), nil
}

// ClearBets abandons the open round, refunding every stake to the ledger.
// It returns the refunded total; clearing an empty table returns 0.
func (t *Roulette) ClearBets() (int64, error) {
	if t.state != StateOpen && t.state != StateClosed {
		return 0, ErrInvalidState
	}
	refund := t.reg.Clear()
	t.ledger.AddMoney(refund)
	return refund, nil
}

// Reset reopens the table after a settled round. Resetting an already open
// table is a no-op; a reset with unsettled stakes still registered is
// rejected so stakes are never silently forfeited.
func (t *Roulette) Reset() error {
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
