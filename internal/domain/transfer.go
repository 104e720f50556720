package domain

import (
	"fmt"
	"sync"
	"time"
)

// TransferStatus is the overall outcome of a transfer attempt.
type TransferStatus string

const (
	TransferStatusNotRun    TransferStatus = "NOT_RUN"
	TransferStatusOK        TransferStatus = "OK"
	TransferStatusBad       TransferStatus = "BAD"
	TransferStatusPayerBusy TransferStatus = "PAYER_BUSY"
	TransferStatusPayeeBusy TransferStatus = "PAYEE_BUSY"
)

// Busy reports whether the status is a transient lock-contention outcome
// that the caller may retry.
func (s TransferStatus) Busy() bool {
	return s == TransferStatusPayerBusy || s == TransferStatusPayeeBusy
}

// Outcome captures one transfer attempt. Balances are recorded only once
// both account locks were held; on a busy outcome they stay zero-valued.
// An Outcome is assembled in full before it is returned and never mutated
// afterwards.
type Outcome struct {
	Status              TransferStatus
	PayerStatus         EntryStatus
	PayeeStatus         EntryStatus
	InitialPayerBalance Money
	InitialPayeeBalance Money
	PayerBalance        Money
	PayeeBalance        Money
	TransferSum         Money
}

// Transfer moves one amount from a payer account to a payee account as a
// pair of entries: a negated debit and a matching credit, stamped with one
// timestamp. Preconditions are checked at construction; a Transfer that
// exists is runnable.
type Transfer struct {
	mu      sync.Mutex
	payer   *Account
	payee   *Account
	debit   Entry
	credit  Entry
	at      time.Time
	outcome Outcome
}

// NewTransfer validates the payer->payee movement and builds both entries.
// All arguments are required; the amount currency must match both accounts
// and the accounts must be distinct.
func NewTransfer(amount Money, payer, payee *Account, at time.Time) (*Transfer, error) {
	if !amount.IsValid() {
		return nil, ErrMissingAmount
	}

	if payer == nil {
		return nil, ErrMissingPayer
	}

	if payee == nil {
		return nil, ErrMissingPayee
	}

	if at.IsZero() {
		return nil, ErrMissingTimestamp
	}

	if payer.Currency() != amount.Currency {
		return nil, fmt.Errorf("%w: payer is %s, amount is %s",
			ErrCurrencyMismatch, payer.Currency(), amount.Currency)
	}

	if payee.Currency() != amount.Currency {
		return nil, fmt.Errorf("%w: payee is %s, amount is %s",
			ErrCurrencyMismatch, payee.Currency(), amount.Currency)
	}

	if payer.Equal(payee) {
		return nil, ErrSamePayerAndPayee
	}

	debit, err := NewEntry(amount.Neg(), at)
	if err != nil {
		return nil, err
	}

	credit, err := NewEntry(amount, at)
	if err != nil {
		return nil, err
	}

	return &Transfer{
		payer:  payer,
		payee:  payee,
		debit:  debit,
		credit: credit,
		at:     at,
		outcome: Outcome{
			Status:      TransferStatusNotRun,
			PayerStatus: EntryStatusNotDefined,
			PayeeStatus: EntryStatusNotDefined,
		},
	}, nil
}

// Payer returns the paying account.
func (t *Transfer) Payer() *Account { return t.payer }

// Payee returns the receiving account.
func (t *Transfer) Payee() *Account { return t.payee }

// Timestamp returns the movement timestamp stamped on both entries.
func (t *Transfer) Timestamp() time.Time { return t.at }

// Perform executes the movement and returns its outcome. Once a transfer
// has reached OK, further calls return the cached outcome without
// re-executing; after a busy or bad outcome a call runs the attempt again,
// which is what makes retrying contention on the same Transfer safe.
func (t *Transfer) Perform() Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.outcome.Status != TransferStatusOK {
		t.outcome = t.run()
	}

	return t.outcome
}

// run is one attempt: lock payer, lock payee, check both legs, commit both
// or neither. Locks are always acquired payer-then-payee; two transfers in
// opposite directions between the same pair can therefore contend, and the
// bounded wait surfaces that as a busy status instead of deadlocking.
func (t *Transfer) run() Outcome {
	out := Outcome{
		PayerStatus: EntryStatusNotDefined,
		PayeeStatus: EntryStatusNotDefined,
	}

	if !t.payer.lockFor(LockWait) {
		out.Status = TransferStatusPayerBusy
		return out
	}
	defer t.payer.unlock()

	if !t.payee.lockFor(LockWait) {
		out.Status = TransferStatusPayeeBusy
		return out
	}
	defer t.payee.unlock()

	out.InitialPayerBalance = t.payer.balanceLocked()
	out.InitialPayeeBalance = t.payee.balanceLocked()
	out.TransferSum = t.credit.Amount

	payerFixer := t.payer.CheckEntry(t.debit)
	payeeFixer := t.payee.CheckEntry(t.credit)

	if payerFixer.Status() == EntryStatusGood && payeeFixer.Status() == EntryStatusGood {
		payerPushed := payerFixer.Push()
		payeePushed := payeeFixer.Push()

		if payerPushed && payeePushed {
			out.PayerStatus = payerFixer.Status()
			out.PayeeStatus = payeeFixer.Status()
			out.PayerBalance = t.payer.balanceLocked()
			out.PayeeBalance = t.payee.balanceLocked()
			out.Status = TransferStatusOK

			return out
		}

		// Compensate whichever leg landed; neither entry stays.
		payerFixer.Cancel()
		payeeFixer.Cancel()
	}

	out.PayerStatus = payerFixer.Status()
	out.PayeeStatus = payeeFixer.Status()
	out.PayerBalance = t.payer.balanceLocked()
	out.PayeeBalance = t.payee.balanceLocked()
	out.Status = TransferStatusBad

	return out
}
