package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"gl-reconciliation/internal/domain"
	"gl-reconciliation/internal/matcher"
)

// ReconcileRequest describes one reconciliation. A nil entry slice means "load it"; a
// non-nil slice, even an empty one, is used as given.
type ReconcileRequest struct {
	AccountCode          string
	PeriodStart          time.Time // zero means unbounded
	PeriodEnd            time.Time // zero means unbounded
	CurrentLedgerBalance *float64  // nil means the sum of the ledger amounts
	LedgerEntries        []domain.LedgerEntry
	ExternalEntries      []domain.ExternalEntry
	SimulateExternal     bool
	Options              matcher.Options
	ReportMode           domain.ReportMode
}

// ReconciliationUseCase orchestrates the reconciliation process.
type ReconciliationUseCase struct {
	ledger     LedgerRepository
	statements StatementSource
	runs       RunRepository
	entries    EntryStore
	simulator  ExternalSimulator
	defaults   matcher.Options
	reportMode domain.ReportMode
	log        zerolog.Logger
	now        func() time.Time
}

// Option customizes a ReconciliationUseCase.
type Option func(*ReconciliationUseCase)

// WithSimulator enables SimulateExternal requests.
func WithSimulator(sim ExternalSimulator) Option {
	return func(uc *ReconciliationUseCase) { uc.simulator = sim }
}

// WithEntryStore enables ImportEntries.
func WithEntryStore(store EntryStore) Option {
	return func(uc *ReconciliationUseCase) { uc.entries = store }
}

// WithDefaultOptions sets the matcher options used for fields a request leaves empty.
func WithDefaultOptions(opts matcher.Options) Option {
	return func(uc *ReconciliationUseCase) { uc.defaults = opts }
}

// WithReportMode sets the report mode used when a request leaves it empty.
func WithReportMode(mode domain.ReportMode) Option {
	return func(uc *ReconciliationUseCase) { uc.reportMode = mode }
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(uc *ReconciliationUseCase) { uc.log = log }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(uc *ReconciliationUseCase) { uc.now = now }
}

// NewReconciliationUseCase creates a new instance of the usecase. Any repository may be nil;
// requests that need a missing one are rejected and runs are not persisted without runs.
func NewReconciliationUseCase(ledger LedgerRepository, statements StatementSource, runs RunRepository, opts ...Option) *ReconciliationUseCase {
	uc := &ReconciliationUseCase{
		ledger:     ledger,
		statements: statements,
		runs:       runs,
		defaults:   matcher.DefaultOptions(),
		reportMode: domain.ReportModeDetailed,
		log:        zerolog.Nop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Reconcile performs the main reconciliation logic.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, req ReconcileRequest) (*domain.ReconciliationReport, error) {
	mode, err := uc.resolveReportMode(req.ReportMode)
	if err != nil {
		return nil, err
	}
	if !req.PeriodStart.IsZero() && !req.PeriodEnd.IsZero() && req.PeriodEnd.Before(req.PeriodStart) {
		return nil, domain.NewInvalidInputError("periodEnd", "must not be before periodStart")
	}

	m, err := matcher.New(uc.mergeOptions(req.Options))
	if err != nil {
		return nil, err
	}

	// Step 1: Data Ingestion
	ledger, err := uc.loadLedger(ctx, req)
	if err != nil {
		return nil, err
	}
	external, err := uc.loadExternal(ctx, req, ledger)
	if err != nil {
		return nil, err
	}

	balance := ledgerTotal(ledger)
	if req.CurrentLedgerBalance != nil {
		balance = *req.CurrentLedgerBalance
	}

	// Step 2: Matching
	result, err := m.Reconcile(ledger, external, balance)
	if err != nil {
		return nil, err
	}

	run := &domain.ReconciliationRun{
		ID:                   uuid.NewString(),
		AccountCode:          req.AccountCode,
		PeriodStart:          req.PeriodStart,
		PeriodEnd:            req.PeriodEnd,
		MatchingMode:         string(m.Options().MatchingMode),
		Strategy:             string(m.Options().Strategy),
		CurrentLedgerBalance: balance,
		CreatedAt:            uc.now().UTC(),
		Result:               *result,
	}

	// Step 3: Persistence
	if uc.runs != nil {
		if err := uc.runs.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("could not save reconciliation run: %w", err)
		}
	}

	uc.log.Info().
		Str("run_id", run.ID).
		Str("account_code", run.AccountCode).
		Str("matching_mode", run.MatchingMode).
		Int("ledger_entries", result.Summary.TotalLedgerEntries).
		Int("external_entries", result.Summary.TotalExternalEntries).
		Int("matched", result.Summary.MatchedCount).
		Int("discrepancies", len(result.Discrepancies)).
		Msg("reconciliation completed")

	return buildReport(run, mode), nil
}

// GetRun returns a stored run as a report.
func (uc *ReconciliationUseCase) GetRun(ctx context.Context, id string, reportMode domain.ReportMode) (*domain.ReconciliationReport, error) {
	mode, err := uc.resolveReportMode(reportMode)
	if err != nil {
		return nil, err
	}
	if uc.runs == nil {
		return nil, domain.ErrRunNotFound
	}

	run, err := uc.runs.GetRun(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get reconciliation run %s: %w", id, err)
	}
	return buildReport(run, mode), nil
}

// ListRuns returns summary reports of the most recent runs, newest first.
func (uc *ReconciliationUseCase) ListRuns(ctx context.Context, accountCode string, limit int) ([]domain.ReconciliationReport, error) {
	reports := make([]domain.ReconciliationReport, 0)
	if uc.runs == nil {
		return reports, nil
	}

	runs, err := uc.runs.ListRuns(ctx, accountCode, limit)
	if err != nil {
		return nil, fmt.Errorf("could not list reconciliation runs: %w", err)
	}
	for i := range runs {
		reports = append(reports, *buildReport(&runs[i], domain.ReportModeSummary))
	}
	return reports, nil
}

func (uc *ReconciliationUseCase) resolveReportMode(mode domain.ReportMode) (domain.ReportMode, error) {
	if mode == "" {
		mode = uc.reportMode
	}
	switch mode {
	case domain.ReportModeSummary, domain.ReportModeDetailed:
		return mode, nil
	}
	return "", domain.NewInvalidInputError("reportMode", "unknown report mode %q", mode)
}

func (uc *ReconciliationUseCase) mergeOptions(opts matcher.Options) matcher.Options {
	if opts.MatchingMode == "" {
		opts.MatchingMode = uc.defaults.MatchingMode
	}
	if opts.DateToleranceDays == nil {
		opts.DateToleranceDays = uc.defaults.DateToleranceDays
	}
	if opts.MinCandidateScore == nil {
		opts.MinCandidateScore = uc.defaults.MinCandidateScore
	}
	if opts.Strategy == "" {
		opts.Strategy = uc.defaults.Strategy
	}
	return opts
}

func (uc *ReconciliationUseCase) loadLedger(ctx context.Context, req ReconcileRequest) ([]domain.LedgerEntry, error) {
	if req.LedgerEntries != nil {
		return req.LedgerEntries, nil
	}
	if uc.ledger == nil {
		return nil, domain.NewInvalidInputError("ledgerEntries", "required when no ledger repository is configured")
	}

	entries, err := uc.ledger.GetLedgerEntries(ctx, req.AccountCode)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger entries: %w", err)
	}
	return filterLedgerByPeriod(entries, req.PeriodStart, req.PeriodEnd), nil
}

func (uc *ReconciliationUseCase) loadExternal(ctx context.Context, req ReconcileRequest, ledger []domain.LedgerEntry) ([]domain.ExternalEntry, error) {
	if req.ExternalEntries != nil {
		return req.ExternalEntries, nil
	}
	if req.SimulateExternal {
		if uc.simulator == nil {
			return nil, domain.NewInvalidInputError("simulateExternal", "no simulator is configured")
		}
		return uc.simulator.ExternalFromLedger(ledger), nil
	}
	if uc.statements == nil {
		return nil, domain.NewInvalidInputError("externalEntries", "required when no statement source is configured")
	}

	entries, err := uc.statements.GetExternalEntries(ctx, req.AccountCode)
	if err != nil {
		return nil, fmt.Errorf("could not get external entries: %w", err)
	}
	return filterExternalByPeriod(entries, req.PeriodStart, req.PeriodEnd), nil
}

func buildReport(run *domain.ReconciliationRun, mode domain.ReportMode) *domain.ReconciliationReport {
	report := &domain.ReconciliationReport{
		RunID:           run.ID,
		AccountCode:     run.AccountCode,
		MatchingMode:    run.MatchingMode,
		ReportMode:      mode,
		CreatedAt:       run.CreatedAt,
		Summary:         run.Result.Summary,
		Recommendations: run.Result.Recommendations,
	}
	if !run.PeriodStart.IsZero() {
		report.PeriodStart = run.PeriodStart.Format(time.DateOnly)
	}
	if !run.PeriodEnd.IsZero() {
		report.PeriodEnd = run.PeriodEnd.Format(time.DateOnly)
	}
	if mode == domain.ReportModeDetailed {
		result := run.Result
		report.Result = &result
	}
	return report
}

// ledgerTotal sums the valid ledger amounts.
func ledgerTotal(ledger []domain.LedgerEntry) float64 {
	total := decimal.Zero
	for _, e := range ledger {
		if e.Amount.Valid {
			total = total.Add(e.Amount.Decimal)
		}
	}
	return total.InexactFloat64()
}

// inPeriod reports whether t falls on a day within [start, end]. Entries without a date are
// kept so they surface as discrepancies instead of vanishing.
func inPeriod(t, start, end time.Time) bool {
	if t.IsZero() {
		return true
	}
	day := domain.DateOf(t)
	if !start.IsZero() && day.Before(domain.DateOf(start)) {
		return false
	}
	if !end.IsZero() && day.After(domain.DateOf(end)) {
		return false
	}
	return true
}

func filterLedgerByPeriod(entries []domain.LedgerEntry, start, end time.Time) []domain.LedgerEntry {
	filtered := make([]domain.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if inPeriod(e.Date, start, end) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func filterExternalByPeriod(entries []domain.ExternalEntry, start, end time.Time) []domain.ExternalEntry {
	filtered := make([]domain.ExternalEntry, 0, len(entries))
	for _, e := range entries {
		if inPeriod(e.Date, start, end) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
