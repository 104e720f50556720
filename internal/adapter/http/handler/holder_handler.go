package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkotenko/gotransfer/internal/adapter/http/dto"
	"github.com/dkotenko/gotransfer/internal/domain"
)

// HolderService defines the behavior needed by HolderHandler.
type HolderService interface {
	ListHolders(ctx context.Context) ([]*domain.Holder, error)
	GetHolder(ctx context.Context, id string) (*domain.Holder, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
}

// HolderHandler handles directory HTTP requests.
type HolderHandler struct {
	holderUC HolderService
}

// NewHolderHandler creates a new HolderHandler.
func NewHolderHandler(holderUC HolderService) *HolderHandler {
	return &HolderHandler{holderUC: holderUC}
}

// List lists all holders with their accounts.
func (h *HolderHandler) List(w http.ResponseWriter, r *http.Request) {
	holders, err := h.holderUC.ListHolders(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list holders", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HoldersFromDomain(holders))
}

// Get retrieves a holder by id.
func (h *HolderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing holder ID", "")
		return
	}

	holder, err := h.holderUC.GetHolder(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get holder", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.HolderFromDomain(holder))
}

// GetAccount retrieves an account by id.
func (h *HolderHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.holderUC.GetAccount(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// ListEntries lists an account's postings.
func (h *HolderHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.holderUC.GetAccount(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(account.Entries()))
}
