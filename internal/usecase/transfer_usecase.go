package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dkotenko/gotransfer/internal/domain"
	"github.com/dkotenko/gotransfer/internal/infrastructure/metrics"
)

// errStillBusy drives the retry loop; it never crosses the use case boundary.
var errStillBusy = errors.New("account lock contention")

// RetryPolicy controls how busy transfer outcomes are retried before the
// last busy outcome is handed back to the caller.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
}

// DefaultRetryPolicy retries contention a few times with a short backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 20 * time.Millisecond,
	}
}

// TransferUseCase performs transfers between directory accounts and answers
// ledger-wide balance queries.
type TransferUseCase struct {
	holders HolderRepository
	idGen   IDGenerator
	logger  zerolog.Logger
	retry   RetryPolicy
	now     func() time.Time
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(holders HolderRepository, idGen IDGenerator, logger zerolog.Logger, retry RetryPolicy) *TransferUseCase {
	return &TransferUseCase{
		holders: holders,
		idGen:   idGen,
		logger:  logger,
		retry:   retry,
		now:     time.Now,
	}
}

// PerformTransferInput represents one requested payer->payee movement.
// Currency is optional and defaults to the payer account's currency.
type PerformTransferInput struct {
	Amount         decimal.Decimal
	Currency       string
	PayerAccountID string
	PayeeAccountID string
}

// TransferResult pairs the outcome snapshot with the id assigned to the
// attempt for logs and client correlation.
type TransferResult struct {
	TransferID string
	Outcome    domain.Outcome
}

// Perform resolves both accounts, constructs the transfer and executes it.
// Construction failures (unknown account, currency mismatch, same account,
// missing fields) are returned as errors; a transfer that ran to any
// outcome, busy and bad included, is a non-error result carrying the
// outcome. Busy outcomes are retried per the configured policy before
// being handed back.
func (uc *TransferUseCase) Perform(ctx context.Context, input PerformTransferInput) (*TransferResult, error) {
	payer, err := uc.holders.GetAccount(ctx, input.PayerAccountID)
	if err != nil {
		return nil, err
	}

	payee, err := uc.holders.GetAccount(ctx, input.PayeeAccountID)
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = payer.Currency()
	}

	amount, err := domain.NewMoney(input.Amount, currency)
	if err != nil {
		return nil, err
	}

	tx, err := domain.NewTransfer(amount, payer, payee, uc.now())
	if err != nil {
		return nil, err
	}

	id := uc.idGen.Generate()
	start := time.Now()

	var outcome domain.Outcome
	attempt := func() error {
		outcome = tx.Perform()
		if outcome.Status.Busy() {
			metrics.BusyRetries.Inc()
			return errStillBusy
		}

		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = uc.retry.InitialInterval

	// Retries exhausted means the result is the last busy outcome; that is
	// a legitimate business result, not an error.
	_ = backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, uc.retry.MaxRetries), ctx))

	metrics.TransfersPerformed.WithLabelValues(string(outcome.Status)).Inc()
	metrics.TransferDuration.Observe(time.Since(start).Seconds())

	uc.logger.Info().
		Str("transfer_id", id).
		Str("payer_id", payer.ID()).
		Str("payee_id", payee.ID()).
		Stringer("amount", amount).
		Str("status", string(outcome.Status)).
		Msg("transfer performed")

	return &TransferResult{TransferID: id, Outcome: outcome}, nil
}

// TotalBalance sums the balances of every directory account in the given
// currency. Each balance read takes only that account's lock momentarily,
// so the result is a weakly consistent snapshot: a transfer committing
// concurrently may be counted on one leg and not yet the other. Only
// per-transfer atomicity is guaranteed, not a global snapshot.
func (uc *TransferUseCase) TotalBalance(ctx context.Context, currency string) (domain.Money, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if err := domain.ValidateCurrency(currency); err != nil {
		return domain.Money{}, err
	}

	start := time.Now()
	defer func() {
		metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	}()

	holders, err := uc.holders.ListHolders(ctx)
	if err != nil {
		return domain.Money{}, err
	}

	total := domain.Zero(currency)
	for _, h := range holders {
		for _, a := range h.Accounts() {
			if a.Currency() != currency {
				continue
			}

			total, err = total.Add(a.Balance())
			if err != nil {
				return domain.Money{}, err
			}
		}
	}

	return total, nil
}
