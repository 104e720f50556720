package domain

import "time"

// Entry is a single signed posting against an account.
// Immutable once created; owned by the account it is appended to.
// Modeled after Fowler's accounting entry pattern.
type Entry struct {
	Amount   Money
	PostedAt time.Time
}

// NewEntry creates an entry. Amount and timestamp are required.
func NewEntry(amount Money, postedAt time.Time) (Entry, error) {
	if !amount.IsValid() {
		return Entry{}, ErrMissingAmount
	}

	if postedAt.IsZero() {
		return Entry{}, ErrMissingTimestamp
	}

	return Entry{Amount: amount, PostedAt: postedAt}, nil
}
