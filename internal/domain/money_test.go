package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func usd(t *testing.T, amount int64) Money {
	t.Helper()

	m, err := NewMoney(decimal.NewFromInt(amount), "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("requires currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(10), "")
		if !errors.Is(err, ErrMissingCurrency) {
			t.Errorf("expected ErrMissingCurrency, got %v", err)
		}
	})

	t.Run("zero value is not valid", func(t *testing.T) {
		var m Money
		if m.IsValid() {
			t.Error("zero Money should not be valid")
		}
	})
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds same currency", func(t *testing.T) {
		sum, err := usd(t, 100).Add(usd(t, 250))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sum.Equal(usd(t, 350)) {
			t.Errorf("expected 350 USD, got %s", sum)
		}
	})

	t.Run("rejects mixed currencies", func(t *testing.T) {
		gbp, _ := NewMoney(decimal.NewFromInt(100), "GBP")

		_, err := usd(t, 100).Add(gbp)
		if !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("expected ErrCurrencyMismatch, got %v", err)
		}
	})
}

func TestMoneyNeg(t *testing.T) {
	neg := usd(t, 100).Neg()

	if !neg.IsNegative() {
		t.Error("expected negated amount to be negative")
	}

	if neg.Currency != "USD" {
		t.Errorf("negation must keep the currency, got %s", neg.Currency)
	}

	sum, err := neg.Add(usd(t, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sum.IsZero() {
		t.Errorf("x + (-x) should be zero, got %s", sum)
	}
}

func TestValidateCurrency(t *testing.T) {
	if err := ValidateCurrency("USD"); err != nil {
		t.Errorf("USD should be valid: %v", err)
	}

	if err := ValidateCurrency("usd"); err != nil {
		t.Errorf("currency codes are case-insensitive: %v", err)
	}

	if err := ValidateCurrency("WAT"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("expected ErrUnknownCurrency, got %v", err)
	}
}
