// Package bets accumulates the wagers of one open betting round. The
// registry never touches the ledger: callers debit first, register second,
// so no bet is ever recorded without its stake committed. Refunding a
// cleared round is likewise a caller decision, because some games refund
// abandoned bets and a mid-hand blackjack stake is forfeit.
package bets

import "sort"

// Registry maps bet descriptors to staked amounts for the round currently
// open. Later stakes on the same kind accumulate. The key type is the
// per-game bet descriptor; single-stake games use a one-value key.
type Registry[K comparable] struct {
	stakes map[K]int64
	order  []K
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable]() *Registry[K] {
	return &Registry[K]{stakes: make(map[K]int64)}
}

// Place records a stake on kind. Non-positive amounts are rejected. The
// stake must already be debited from the ledger by the caller.
func (r *Registry[K]) Place(kind K, amount int64) bool {
	if amount <= 0 {
		return false
	}
	if _, ok := r.stakes[kind]; !ok {
		r.order = append(r.order, kind)
	}
	r.stakes[kind] += amount
	return true
}

// Amount returns the stake accumulated on kind, 0 if none.
func (r *Registry[K]) Amount(kind K) int64 {
	return r.stakes[kind]
}

// Clear empties the registry and returns the total staked so the caller can
// refund it where the game rules allow. Clearing an empty registry returns 0.
func (r *Registry[K]) Clear() int64 {
	total := r.Total()
	r.stakes = make(map[K]int64)
	r.order = nil
	return total
}

// IsEmpty reports whether no bets are registered.
func (r *Registry[K]) IsEmpty() bool {
	return len(r.stakes) == 0
}

// Total returns the sum of all registered stakes.
func (r *Registry[K]) Total() int64 {
	var total int64
	for _, amount := range r.stakes {
		total += amount
	}
	return total
}

// Each visits every registered bet in placement order.
func (r *Registry[K]) Each(fn func(kind K, amount int64)) {
	for _, kind := range r.order {
		fn(kind, r.stakes[kind])
	}
}

// Kinds returns the registered bet kinds in placement order. The slice is a
// copy; mutating it does not affect the registry.
func (r *Registry[K]) Kinds() []K {
	kinds := make([]K, len(r.order))
	copy(kinds, r.order)
	return kinds
}

// SortKinds orders the returned kinds with the provided less function,
// for callers that need a deterministic settlement report independent of
// placement order.
func (r *Registry[K]) SortKinds(less func(a, b K) bool) []K {
	kinds := r.Kinds()
	sort.Slice(kinds, func(i, j int) bool { return less(kinds[i], kinds[j]) })
	return kinds
}
