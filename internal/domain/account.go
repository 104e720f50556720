package domain

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// EntryStatus is the outcome of validating one candidate entry against an
// account.
type EntryStatus string

const (
	EntryStatusGood              EntryStatus = "GOOD"
	EntryStatusBad               EntryStatus = "BAD"
	EntryStatusInsufficientSum   EntryStatus = "INSUFFICIENT_SUM"
	EntryStatusIncorrectCurrency EntryStatus = "INCORRECT_CURRENCY"
	EntryStatusNotDefined        EntryStatus = "NOT_DEFINED"
)

// Account is a currency-scoped store of entries with a derived balance.
// Its lock is the only mutation gate: every balance read and every
// append/remove holds it. Two accounts never share a lock, so unrelated
// transfers run in parallel. The same id from different instances means
// the same account.
type Account struct {
	id             string
	currency       string
	initialBalance Money
	mu             *timedMutex
	entries        []Entry
}

// NewAccount creates an account. A nil initial balance defaults to zero of
// the account currency. The initial balance and every seed entry must be in
// the account currency.
func NewAccount(id, currency string, initialBalance *Money, entries []Entry) (*Account, error) {
	if id == "" {
		return nil, ErrMissingAccountID
	}

	if currency == "" {
		return nil, ErrMissingCurrency
	}

	balance := Zero(currency)
	if initialBalance != nil {
		if initialBalance.Currency != currency {
			return nil, fmt.Errorf("%w: account %s is %s, initial balance is %s",
				ErrCurrencyMismatch, id, currency, initialBalance.Currency)
		}

		balance = *initialBalance
	}

	a := &Account{
		id:             id,
		currency:       currency,
		initialBalance: balance,
		mu:             newTimedMutex(),
	}

	for _, e := range entries {
		if e.Amount.Currency != currency {
			return nil, fmt.Errorf("%w: account %s is %s, entry is %s",
				ErrCurrencyMismatch, id, currency, e.Amount.Currency)
		}

		a.entries = append(a.entries, e)
	}

	log.Debug().
		Str("account_id", a.id).
		Stringer("balance", a.Balance()).
		Msg("account initialized")

	return a, nil
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// Currency returns the account currency code.
func (a *Account) Currency() string { return a.currency }

// InitialBalance returns the balance the account was opened with. Old
// entries may later be folded into it as an optimization; callers must not
// assume it stays fixed forever.
func (a *Account) InitialBalance() Money { return a.initialBalance }

// Equal reports whether both values denote the same account.
func (a *Account) Equal(other *Account) bool {
	return other != nil && a.id == other.id
}

// Balance folds the initial balance with all entries under the account
// lock. The lock is held only for the fold, so callers can treat this as
// effectively non-blocking.
func (a *Account) Balance() Money {
	a.mu.lock()
	defer a.mu.unlock()

	return a.balanceLocked()
}

// Entries returns a copy of the entry list; account state cannot be
// mutated through it.
func (a *Account) Entries() []Entry {
	a.mu.lock()
	defer a.mu.unlock()

	out := make([]Entry, len(a.entries))
	copy(out, a.entries)

	return out
}

// CheckEntry validates a candidate entry and returns the single-use Fixer
// that can commit or cancel it. The caller must already hold the account
// lock; this never blocks.
func (a *Account) CheckEntry(e Entry) *Fixer {
	if !e.Amount.IsValid() || e.PostedAt.IsZero() {
		return &Fixer{account: a, entry: e, status: EntryStatusBad}
	}

	if e.Amount.Currency != a.currency {
		return &Fixer{account: a, entry: e, status: EntryStatusIncorrectCurrency}
	}

	if a.balanceLocked().Amount.Add(e.Amount.Amount).IsNegative() {
		return &Fixer{account: a, entry: e, status: EntryStatusInsufficientSum}
	}

	return &Fixer{account: a, entry: e, status: EntryStatusGood}
}

// balanceLocked folds without taking the lock. Entries all share the
// account currency, so the fold works on raw decimals.
func (a *Account) balanceLocked() Money {
	total := a.initialBalance.Amount
	for _, e := range a.entries {
		total = total.Add(e.Amount.Amount)
	}

	return Money{Amount: total, Currency: a.currency}
}

// appendLocked commits an entry. It re-verifies the currency and
// non-negativity invariants immediately before the append and fails closed
// on a violation. The caller must hold the account lock.
func (a *Account) appendLocked(e Entry) bool {
	if e.Amount.Currency != a.currency {
		return false
	}

	if a.balanceLocked().Amount.Add(e.Amount.Amount).IsNegative() {
		return false
	}

	a.entries = append(a.entries, e)

	log.Debug().
		Str("account_id", a.id).
		Stringer("amount", e.Amount).
		Msg("entry appended")

	return true
}

// removeLocked removes the most recent entry equal to e. A no-op when the
// entry was never appended. The caller must hold the account lock.
func (a *Account) removeLocked(e Entry) bool {
	for i := len(a.entries) - 1; i >= 0; i-- {
		if a.entries[i].Amount.Equal(e.Amount) && a.entries[i].PostedAt.Equal(e.PostedAt) {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)

			log.Debug().
				Str("account_id", a.id).
				Stringer("amount", e.Amount).
				Msg("entry removed")

			return true
		}
	}

	return false
}

// lockFor acquires the account lock with a bounded wait.
func (a *Account) lockFor(d time.Duration) bool { return a.mu.lockFor(d) }

// unlock releases the account lock.
func (a *Account) unlock() { a.mu.unlock() }

// Fixer is a short-lived, single-use capability produced by CheckEntry,
// holding one candidate entry and its validation status. It exists so a
// transfer can validate both legs before committing either. It is only
// meaningful while its creator holds the account lock.
type Fixer struct {
	account *Account
	entry   Entry
	status  EntryStatus
}

// Status returns the current validation status.
func (f *Fixer) Status() EntryStatus { return f.status }

// Push commits the candidate entry. Only effective while the status is
// GOOD; a failed commit downgrades the status to BAD and returns false.
func (f *Fixer) Push() bool {
	if f.status != EntryStatusGood {
		log.Warn().
			Str("account_id", f.account.id).
			Str("status", string(f.status)).
			Msg("push on a fixer that did not validate")

		return false
	}

	if !f.account.appendLocked(f.entry) {
		f.status = EntryStatusBad

		log.Warn().
			Str("account_id", f.account.id).
			Msg("could not commit entry")

		return false
	}

	return true
}

// Cancel removes the candidate entry if it was committed. Idempotent;
// compensates a partially-applied transfer.
func (f *Fixer) Cancel() {
	f.account.removeLocked(f.entry)
}
