// Package seed builds the startup directory of holders and accounts.
// The ledger keeps no durable state, so every process starts from a
// generated population.
package seed

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkotenko/gotransfer/internal/domain"
)

// IDGenerator generates unique IDs for seeded holders and accounts.
type IDGenerator interface {
	Generate() string
}

// Config sizes the generated directory.
type Config struct {
	Holders           int
	AccountsPerHolder int
	EntriesPerAccount int
	EntryAmount       int64
}

// DefaultConfig mirrors the demo population: three random USD holders plus
// one fixed GBP holder.
func DefaultConfig() Config {
	return Config{
		Holders:           3,
		AccountsPerHolder: 2,
		EntriesPerAccount: 5,
		EntryAmount:       100,
	}
}

// Holders generates cfg.Holders random USD holders and one fixed GBP
// holder ("Bruce Willis") so cross-currency rejections are reachable out
// of the box.
func Holders(cfg Config, idGen IDGenerator) ([]*domain.Holder, error) {
	holders := make([]*domain.Holder, 0, cfg.Holders+1)

	for range cfg.Holders {
		h, err := randomHolder(cfg, idGen)
		if err != nil {
			return nil, err
		}

		holders = append(holders, h)
	}

	gbpAccount, err := account(cfg, idGen, "GBP")
	if err != nil {
		return nil, err
	}

	fixed, err := domain.NewHolder(idGen.Generate(), "Bruce Willis",
		map[string]*domain.Account{gbpAccount.ID(): gbpAccount})
	if err != nil {
		return nil, err
	}

	return append(holders, fixed), nil
}

func randomHolder(cfg Config, idGen IDGenerator) (*domain.Holder, error) {
	accounts := make(map[string]*domain.Account, cfg.AccountsPerHolder)
	for range cfg.AccountsPerHolder {
		a, err := account(cfg, idGen, "USD")
		if err != nil {
			return nil, err
		}

		accounts[a.ID()] = a
	}

	return domain.NewHolder(idGen.Generate(), randomWord(10), accounts)
}

func account(cfg Config, idGen IDGenerator, currency string) (*domain.Account, error) {
	amount, err := domain.NewMoney(decimal.NewFromInt(cfg.EntryAmount), currency)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.Entry, 0, cfg.EntriesPerAccount)
	for range cfg.EntriesPerAccount {
		e, err := domain.NewEntry(amount, time.Now())
		if err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	return domain.NewAccount(idGen.Generate(), currency, nil, entries)
}

func randomWord(length int) string {
	word := make([]byte, length)
	for i := range word {
		word[i] = byte('a' + rand.IntN(26))
	}

	return string(word)
}
