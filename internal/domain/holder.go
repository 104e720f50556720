package domain

import "strings"

// Holder is a single client of the ledger: a name plus one or more
// accounts. Immutable after construction; the same id from different
// instances means the same holder.
type Holder struct {
	id       string
	fullName string
	accounts map[string]*Account
}

// NewHolder creates a holder. Id, a non-blank full name and at least one
// account are required.
func NewHolder(id, fullName string, accounts map[string]*Account) (*Holder, error) {
	if id == "" {
		return nil, ErrMissingHolderID
	}

	if strings.TrimSpace(fullName) == "" {
		return nil, ErrMissingHolderName
	}

	if len(accounts) == 0 {
		return nil, ErrHolderNoAccounts
	}

	owned := make(map[string]*Account, len(accounts))
	for id, a := range accounts {
		owned[id] = a
	}

	return &Holder{id: id, fullName: fullName, accounts: owned}, nil
}

// ID returns the holder identifier.
func (h *Holder) ID() string { return h.id }

// FullName returns the holder's full name.
func (h *Holder) FullName() string { return h.fullName }

// Account returns the holder's account with the given id, or nil.
func (h *Holder) Account(id string) *Account {
	return h.accounts[id]
}

// Accounts returns a copy of the holder's accounts keyed by account id.
func (h *Holder) Accounts() map[string]*Account {
	out := make(map[string]*Account, len(h.accounts))
	for id, a := range h.accounts {
		out[id] = a
	}

	return out
}
