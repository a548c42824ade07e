package usecase

import (
	"context"

	"gl-reconciliation/internal/domain"
)

// LedgerRepository fetches posted ledger entries for an account.
// The usecase depends on these interfaces, not on concrete implementations.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mock_usecase -source=interface.go
type LedgerRepository interface {
	GetLedgerEntries(ctx context.Context, accountCode string) ([]domain.LedgerEntry, error)
}

// StatementSource fetches external (bank-side) entries for an account.
type StatementSource interface {
	GetExternalEntries(ctx context.Context, accountCode string) ([]domain.ExternalEntry, error)
}

// RunRepository persists reconciliation runs.
type RunRepository interface {
	SaveRun(ctx context.Context, run *domain.ReconciliationRun) error
	GetRun(ctx context.Context, id string) (*domain.ReconciliationRun, error)
	ListRuns(ctx context.Context, accountCode string, limit int) ([]domain.ReconciliationRun, error)
}

// EntryStore persists imported ledger and statement entries so later runs can load them.
type EntryStore interface {
	SaveLedgerEntries(ctx context.Context, entries []domain.LedgerEntry) error
	SaveExternalEntries(ctx context.Context, accountCode string, entries []domain.ExternalEntry) error
}

// ExternalSimulator synthesizes external entries when no real statement is available.
type ExternalSimulator interface {
	ExternalFromLedger(ledger []domain.LedgerEntry) []domain.ExternalEntry
}
