package usecase

import (
	"context"
	"errors"
	"fmt"

	"gl-reconciliation/internal/domain"
)

// ErrImportNotConfigured is returned by ImportEntries when no EntryStore was given.
var ErrImportNotConfigured = errors.New("entry import is not configured")

// ImportRequest describes entries to persist for later runs. A nil slice means "load it from
// the configured repository"; a non-nil slice, even an empty one, is used as given.
type ImportRequest struct {
	AccountCode     string
	LedgerEntries   []domain.LedgerEntry
	ExternalEntries []domain.ExternalEntry
}

// ImportResult counts what ImportEntries wrote.
type ImportResult struct {
	AccountCode      string `json:"accountCode"`
	LedgerImported   int    `json:"ledgerImported"`
	ExternalImported int    `json:"externalImported"`
}

// ImportEntries upserts ledger and statement entries into the entry store. Ledger entries
// without an account code are filed under the request's account.
func (uc *ReconciliationUseCase) ImportEntries(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	if uc.entries == nil {
		return nil, ErrImportNotConfigured
	}

	ledger, err := uc.importLedger(ctx, req)
	if err != nil {
		return nil, err
	}
	external, err := uc.importExternal(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(ledger) > 0 {
		if err := uc.entries.SaveLedgerEntries(ctx, ledger); err != nil {
			return nil, fmt.Errorf("could not save ledger entries: %w", err)
		}
	}
	if len(external) > 0 {
		if err := uc.entries.SaveExternalEntries(ctx, req.AccountCode, external); err != nil {
			return nil, fmt.Errorf("could not save external entries: %w", err)
		}
	}

	result := &ImportResult{
		AccountCode:      req.AccountCode,
		LedgerImported:   len(ledger),
		ExternalImported: len(external),
	}
	uc.log.Info().
		Str("account_code", result.AccountCode).
		Int("ledger_entries", result.LedgerImported).
		Int("external_entries", result.ExternalImported).
		Msg("entries imported")
	return result, nil
}

func (uc *ReconciliationUseCase) importLedger(ctx context.Context, req ImportRequest) ([]domain.LedgerEntry, error) {
	source := req.LedgerEntries
	if source == nil {
		if uc.ledger == nil {
			return nil, domain.NewInvalidInputError("ledgerEntries", "required when no ledger repository is configured")
		}
		loaded, err := uc.ledger.GetLedgerEntries(ctx, req.AccountCode)
		if err != nil {
			return nil, fmt.Errorf("could not get ledger entries: %w", err)
		}
		source = loaded
	}

	entries := make([]domain.LedgerEntry, 0, len(source))
	for i, e := range source {
		if e.ID == "" {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("ledgerEntries[%d].id", i), "required for import")
		}
		if e.AccountCode == "" {
			e.AccountCode = req.AccountCode
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (uc *ReconciliationUseCase) importExternal(ctx context.Context, req ImportRequest) ([]domain.ExternalEntry, error) {
	entries := req.ExternalEntries
	if entries == nil {
		if uc.statements == nil {
			return nil, domain.NewInvalidInputError("externalEntries", "required when no statement source is configured")
		}
		loaded, err := uc.statements.GetExternalEntries(ctx, req.AccountCode)
		if err != nil {
			return nil, fmt.Errorf("could not get external entries: %w", err)
		}
		entries = loaded
	}

	for i, e := range entries {
		if e.TransactionID == "" {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("externalEntries[%d].transactionId", i), "required for import")
		}
	}
	return entries, nil
}
