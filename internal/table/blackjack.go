package table

import (
	"fmt"

	"go.uber.org/zap"

	"casino-sim/internal/bets"
	"casino-sim/internal/cards"
	"casino-sim/internal/domain"
	"casino-sim/internal/ledger"
	"casino-sim/internal/payout"
)

// Shoe deals cards for blackjack hands.
type Shoe interface {
	Draw() (cards.Card, error)
}

// Blackjack runs a single-seat blackjack table. A hand moves through
// Open (stake) -> deal -> PlayerTurn -> DealerTurn -> Settled, except that
// a natural on the initial deal settles immediately at 3:2, bypassing hit
// and stand entirely. The dealer draws to 17 and stands on all 17s.
type Blackjack struct {
	ledger *ledger.Ledger
	shoe   Shoe
	reg    *bets.Registry[string]
	state  State
	log    *zap.Logger

	player cards.Hand
	dealer cards.Hand
}

// NewBlackjack creates an open blackjack table.
func NewBlackjack(led *ledger.Ledger, shoe Shoe, log *zap.Logger) *Blackjack {
	if log == nil {
		log = zap.NewNop()
	}
	return &Blackjack{
		ledger: led,
		shoe:   shoe,
		reg:    bets.NewRegistry[string](),
		state:  StateOpen,
		log:    log,
	}
}

// State returns the current hand phase.
func (t *Blackjack) State() State {
	return t.state
}

// Stake returns the amount riding on the current hand.
func (t *Blackjack) Stake() int64 {
	return t.reg.Amount(stakeKey)
}

// PlayerHand returns a copy of the player's cards.
func (t *Blackjack) PlayerHand() cards.Hand {
	return append(cards.Hand(nil), t.player...)
}

// DealerHand returns a copy of the dealer's cards.
func (t *Blackjack) DealerHand() cards.Hand {
	return append(cards.Hand(nil), t.dealer...)
}

// PlaceBet commits the hand stake before the deal. Returns false with a
// nil error when the balance cannot cover it.
func (t *Blackjack) PlaceBet(amount int64) (bool, error) {
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

// Deal starts the hand: two cards each for player and dealer. A natural
// two-card 21 settles the round immediately at 3:2 and the returned result
// is non-nil; otherwise the result is nil and the player is to act.
func (t *Blackjack) Deal() (*domain.RoundResult, error) {
	if t.state != StateOpen || t.reg.IsEmpty() {
		return nil, ErrInvalidState
	}

	t.player = nil
	t.dealer = nil
	for i := 0; i < 2; i++ {
		if err := t.deal(&t.player); err != nil {
			return nil, err
		}
		if err := t.deal(&t.dealer); err != nil {
			return nil, err
		}
	}

	if t.player.IsBlackjack() {
		return t.settle(payout.BlackjackNatural), nil
	}

	t.state = StatePlayerTurn
	return nil, nil
}

// Hit draws one card for the player. Going over 21 settles the hand as a
// loss and returns the result; otherwise the result is nil and the player
// may act again.
func (t *Blackjack) Hit() (*domain.RoundResult, error) {
	if t.state != StatePlayerTurn {
		return nil, ErrInvalidState
	}
	if err := t.deal(&t.player); err != nil {
		return nil, err
	}
	if t.player.IsBust() {
		return t.settle(payout.BlackjackLoss), nil
	}
	return nil, nil
}

// Stand ends the player's turn. The dealer draws while under 17, then the
// hands are compared and the round settles.
func (t *Blackjack) Stand() (*domain.RoundResult, error) {
	if t.state != StatePlayerTurn {
		return nil, ErrInvalidState
	}
	t.state = StateDealerTurn

	for t.dealer.Value() < 17 {
		if err := t.deal(&t.dealer); err != nil {
			// The settlement has not happened; control goes back to the
			// player so the stand can be retried.
			t.state = StatePlayerTurn
			return nil, err
		}
	}

	playerValue := t.player.Value()
	dealerValue := t.dealer.Value()

	switch {
	case dealerValue > 21 || playerValue > dealerValue:
		return t.settle(payout.BlackjackWin), nil
	case playerValue == dealerValue:
		return t.settle(payout.BlackjackPush), nil
	default:
		return t.settle(payout.BlackjackLoss), nil
	}
}

// ClearBets refunds the stake before the deal. Once cards are out the
// stake is committed and the hand must run to settlement.
func (t *Blackjack) ClearBets() (int64, error) {
	if t.state != StateOpen {
		return 0, ErrInvalidState
	}
	refund := t.reg.Clear()
	t.ledger.AddMoney(refund)
	return refund, nil
}

// Reset clears the hands and reopens the table; a second reset is a no-op.
func (t *Blackjack) Reset() error {
	if t.state == StateOpen {
		return nil
	}
	if t.state != StateSettled {
		return ErrInvalidState
	}
	t.player = nil
	t.dealer = nil
	t.reg.Clear()
	t.state = StateOpen
	return nil
}

func (t *Blackjack) deal(hand *cards.Hand) error {
	c, err := t.shoe.Draw()
	if err != nil {
		return fmt.Errorf("failed to draw card: %w", err)
	}
	*hand = append(*hand, c)
	return nil
}

func (t *Blackjack) settle(outcome payout.BlackjackOutcome) *domain.RoundResult {
	t.state = StateResolving

	stake := t.reg.Total()
	won, err := payout.BlackjackReturn(outcome, stake)
	if err != nil {
		t.log.Warn("unknown blackjack outcome treated as loss",
			zap.String("outcome", string(outcome)),
			zap.Int64("stake", stake))
		won = 0
	}

	t.ledger.AddMoney(won)
	t.reg.Clear()
	t.state = StateSettled

	desc := fmt.Sprintf("%s: player %s (%d) vs dealer %s (%d)",
		outcome, t.player, t.player.Value(), t.dealer, t.dealer.Value())
	perBet := map[string]int64{stakeKey: won}
	return newResult("blackjack", desc, perBet, stake, won, t.ledger.Balance())
}
