// Package ledger holds a single non-negative chip balance and guards every
// mutation. Debits that would overdraw are rejected before any change is
// applied, so the balance can never go negative.
package ledger

// Ledger owns one integer chip balance. The round lifecycle is
// single-threaded per table, so the ledger does no locking; callers running
// multiple tables against one ledger must serialize access themselves.
type Ledger struct {
	balance int64
}

// New creates a ledger with an opening balance. Negative openings are
// clamped to zero.
func New(opening int64) *Ledger {
	if opening < 0 {
		opening = 0
	}
	return &Ledger{balance: opening}
}

// Balance returns the current chip balance.
func (l *Ledger) Balance() int64 {
	return l.balance
}

// TrySpend debits amount if it is positive and covered by the balance.
// It returns false, leaving the balance untouched, otherwise. Insufficient
// funds is an expected condition, not an error.
func (l *Ledger) TrySpend(amount int64) bool {
	if amount <= 0 || amount > l.balance {
		return false
	}
	l.balance -= amount
	return true
}

// AddMoney credits amount. Non-positive amounts are ignored.
func (l *Ledger) AddMoney(amount int64) {
	if amount <= 0 {
		return
	}
	l.balance += amount
}

// Restore overwrites the balance from a snapshot. Negative snapshots are
// clamped to zero.
func (l *Ledger) Restore(balance int64) {
	if balance < 0 {
		balance = 0
	}
	l.balance = balance
}
