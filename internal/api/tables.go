// Package api - table endpoints for the four games
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"casino-sim/internal/domain"
	"casino-sim/internal/metrics"
	"casino-sim/internal/table"
)

// respondTableError maps table lifecycle errors onto API errors.
func respondTableError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, table.ErrInvalidState):
		respondError(w, http.StatusConflict, "INVALID_STATE", "Operation not valid in current round state")
	case errors.Is(err, table.ErrInvalidBet):
		respondError(w, http.StatusBadRequest, "INVALID_BET", "Invalid bet")
	default:
		respondError(w, http.StatusInternalServerError, "TABLE_ERROR", err.Error())
	}
}

// placeOutcome writes the shared bet-placement response. An accepted bet
// reports the remaining balance; a rejected one distinguishes bad bets
// from an uncovered stake.
func (h *Handler) placeOutcome(w http.ResponseWriter, game string, ok bool, err error, balance int64) {
	if err != nil {
		metrics.RecordBetRejected(game, "invalid")
		respondTableError(w, err)
		return
	}
	if !ok {
		metrics.RecordBetRejected(game, "insufficient_funds")
		respondError(w, http.StatusBadRequest, "INSUFFICIENT_FUNDS", "Balance cannot cover the stake")
		return
	}
	metrics.RecordBet(game)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"balance": balance,
	})
}

// === Roulette ===

// RoulettePlaceBet handles POST /api/v1/tables/roulette/bets
func (h *Handler) RoulettePlaceBet(w http.ResponseWriter, r *http.Request) {
	ps, err := h.session(playerFrom(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	var req struct {
		Type   domain.RouletteBetType `json:"type"`
		Number int                    `json:"number"`
		Amount int64                  `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ps.mu.Lock()
	ok, err := ps.roulette.PlaceBet(domain.RouletteBet{Type: req.Type, Number: req.Number}, req.Amount)
	balance := ps.ledger.Balance()
	ps.mu.Unlock()

	h.placeOutcome(w, "roulette", ok, err, balance)
}

// RouletteSpin handles POST /api/v1/tables/roulette/spin. The round closes,
// resolves, and the table reopens for the next round.
func (h *Handler) RouletteSpin(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r)
	ps, err := h.session(player)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	ps.mu.Lock()
	// A retried spin after a failed draw finds the round already closed
	// with the stakes intact; resolve picks it up as is.
	if ps.roulette.State() == table.StateOpen {
		if err := ps.roulette.Close(); err != nil {
			ps.mu.Unlock()
			respondTableError(w, err)
			return
		}
	}
	result, err := ps.roulette.Resolve()
	// Reset reopens the table after a settlement, or after a failed resolve
	// of an empty round. A failed draw keeps the round closed with its
	// stakes, so the spin can be retried or the bets cleared.
	resetErr := ps.roulette.Reset()
	ps.mu.Unlock()

	if err != nil {
		respondTableError(w, err)
		return
	}
	if resetErr != nil {
		respondTableError(w, resetErr)
		return
	}

	h.settled(r.Context(), player, ps, result)
	respondJSON(w, http.StatusOK, result)
}

// RouletteClearBets handles DELETE /api/v1/tables/roulette/bets
func (h *Handler) RouletteClearBets(w http.ResponseWriter, r *http.Request) {
	ps, err := h.session(playerFrom(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	ps.mu.Lock()
	refund, err := ps.roulette.ClearBets()
	if err == nil {
		// An abandoned round reopens immediately; with the registry empty
		// a closed round cannot stay closed.
		err = ps.roulette.Reset()
	}
	balance := ps.ledger.Balance()
	ps.mu.Unlock()

	if err != nil {
		respondTableError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"refunded": refund,
		"balance":  balance,
	})
}

// === Slots ===

// SlotsSpin handles POST /api/v1/tables/slots/spin. A spin is one round:
// stake, pull, settle, reopen.
func (h *Handler) SlotsSpin(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r)
	ps, err := h.session(player)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ps.mu.Lock()
	ok, err := ps.slots.PlaceBet(req.Amount)
	if err != nil || !ok {
		balance := ps.ledger.Balance()
		ps.mu.Unlock()
		h.placeOutcome(w, "slots", ok, err, balance)
		return
	}
	metrics.RecordBet("slots")

	if err := ps.slots.Close(); err != nil {
		ps.mu.Unlock()
		respondTableError(w, err)
		return
	}
	result, err := ps.slots.Resolve()
	if err != nil {
		// A spin is one atomic call, so a failed reel draw abandons it:
		// the stake comes back and the machine reopens.
		ps.slots.ClearBets()
		ps.slots.Reset()
		ps.mu.Unlock()
		respondTableError(w, err)
		return
	}
	err = ps.slots.Reset()
	ps.mu.Unlock()

	if err != nil {
		respondTableError(w, err)
		return
	}

	h.settled(r.Context(), player, ps, result)
	respondJSON(w, http.StatusOK, result)
}

// === Blackjack ===

// BlackjackDeal handles POST /api/v1/tables/blackjack/deal. The stake is
// placed and the cards come out in one call; a natural settles immediately.
func (h *Handler) BlackjackDeal(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r)
	ps, err := h.session(player)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ps.mu.Lock()
	ok, err := ps.blackjack.PlaceBet(req.Amount)
	if err != nil || !ok {
		balance := ps.ledger.Balance()
		ps.mu.Unlock()
		h.placeOutcome(w, "blackjack", ok, err, balance)
		return
	}
	metrics.RecordBet("blackjack")

	result, err := ps.blackjack.Deal()
	hand := h.blackjackView(ps, result)
	if result != nil {
		ps.blackjack.Reset()
	}
	ps.mu.Unlock()

	if err != nil {
		respondTableError(w, err)
		return
	}
	if result != nil {
		h.settled(r.Context(), player, ps, result)
	}
	respondJSON(w, http.StatusOK, hand)
}

// BlackjackHit handles POST /api/v1/tables/blackjack/hit
func (h *Handler) BlackjackHit(w http.ResponseWriter, r *http.Request) {
	h.blackjackAction(w, r, func(t *table.Blackjack) (*domain.RoundResult, error) {
		return t.Hit()
	})
}

// BlackjackStand handles POST /api/v1/tables/blackjack/stand
func (h *Handler) BlackjackStand(w http.ResponseWriter, r *http.Request) {
	h.blackjackAction(w, r, func(t *table.Blackjack) (*domain.RoundResult, error) {
		return t.Stand()
	})
}

func (h *Handler) blackjackAction(w http.ResponseWriter, r *http.Request, act func(*table.Blackjack) (*domain.RoundResult, error)) {
	player := playerFrom(r)
	ps, err := h.session(player)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	ps.mu.Lock()
	result, err := act(ps.blackjack)
	hand := h.blackjackView(ps, result)
	if result != nil {
		ps.blackjack.Reset()
	}
	ps.mu.Unlock()

	if err != nil {
		respondTableError(w, err)
		return
	}
	if result != nil {
		h.settled(r.Context(), player, ps, result)
	}
	respondJSON(w, http.StatusOK, hand)
}

// blackjackView renders the hand state for the caller. Caller holds ps.mu.
func (h *Handler) blackjackView(ps *playerSession, result *domain.RoundResult) map[string]interface{} {
	view := map[string]interface{}{
		"state":       string(ps.blackjack.State()),
		"player_hand": ps.blackjack.PlayerHand().String(),
		"dealer_hand": ps.blackjack.DealerHand().String(),
	}
	if result != nil {
		view["result"] = result
	}
	return view
}

// === Craps ===

// CrapsPlaceBet handles POST /api/v1/tables/craps/bet
func (h *Handler) CrapsPlaceBet(w http.ResponseWriter, r *http.Request) {
	ps, err := h.session(playerFrom(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	var req struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ps.mu.Lock()
	ok, err := ps.craps.PlaceBet(req.Amount)
	balance := ps.ledger.Balance()
	ps.mu.Unlock()

	h.placeOutcome(w, "craps", ok, err, balance)
}

// CrapsRoll handles POST /api/v1/tables/craps/roll. A nil result means
// the round continues: the point was just set or the roll decided nothing.
func (h *Handler) CrapsRoll(w http.ResponseWriter, r *http.Request) {
	player := playerFrom(r)
	ps, err := h.session(player)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", err.Error())
		return
	}

	ps.mu.Lock()
	result, err := ps.craps.Roll()
	if result != nil {
		ps.craps.Reset()
	}
	state := string(ps.craps.State())
	point := ps.craps.Point()
	ps.mu.Unlock()

	if err != nil {
		respondTableError(w, err)
		return
	}

	if result != nil {
		h.settled(r.Context(), player, ps, result)
		respondJSON(w, http.StatusOK, result)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"state": state,
		"point": point,
	})
}
