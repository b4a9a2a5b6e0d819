// Package table implements the round lifecycle for each casino game: bets
// are accepted while a round is open, a close stops betting, a resolve
// draws one outcome and settles every bet against the payout tables, and a
// reset reopens the table. Tables receive their ledger, outcome source,
// and logger at construction; there are no process-wide singletons.
//
// The lifecycle is synchronous and single-threaded: a resolve computes the
// final settlement immediately and the caller may animate toward the
// already-known result. The ledger is credited exactly once per round, so
// the balance mutation is atomic relative to the round.
package table

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"casino-sim/internal/domain"
)

// State is the phase of a table's current round.
type State string

const (
	StateOpen       State = "open"
	StateClosed     State = "closed"
	StateResolving  State = "resolving"
	StatePlayerTurn State = "player_turn" // blackjack only
	StateDealerTurn State = "dealer_turn" // blackjack only, transient
	StatePoint      State = "point"       // craps only, point established
	StateSettled    State = "settled"
)

var (
	// ErrInvalidState rejects an operation attempted in the wrong round
	// phase. It is always returned before any mutation.
	ErrInvalidState = errors.New("operation not valid in current round state")

	// ErrInvalidBet rejects a malformed bet descriptor or an out-of-range
	// stake at placement time.
	ErrInvalidBet = errors.New("invalid bet")
)

// newResult assembles the settlement handed back to the caller.
func newResult(game, outcome string, perBet map[string]int64, staked, won, balance int64) *domain.RoundResult {
	return &domain.RoundResult{
		RoundID:     uuid.New().String(),
		Game:        game,
		Outcome:     outcome,
		PerBet:      perBet,
		TotalStaked: staked,
		TotalWon:    won,
		NewBalance:  balance,
		SettledAt:   time.Now().UTC(),
	}
}
