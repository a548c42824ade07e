package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"gl-reconciliation/internal/domain"
)

// DefaultRunLimit caps ListRuns when the caller passes a non-positive limit.
const DefaultRunLimit = 20

// SQLiteStore keeps ledger entries, imported statement lines and reconciliation runs.
// It implements usecase.LedgerRepository, usecase.StatementSource and usecase.RunRepository.
type SQLiteStore struct {
	db  *sql.DB
	log zerolog.Logger
}

type migration struct {
	version int
	name    string
	stmt    string
}

var migrations = []migration{
	{
		version: 1,
		name:    "create_ledger_entries",
		stmt: `
		CREATE TABLE ledger_entries (
			id           TEXT PRIMARY KEY,
			account_code TEXT NOT NULL DEFAULT '',
			entry_date   TEXT,
			amount       TEXT,
			description  TEXT NOT NULL DEFAULT '',
			reference    TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX idx_ledger_entries_account ON ledger_entries(account_code, entry_date);`,
	},
	{
		version: 2,
		name:    "create_external_entries",
		stmt: `
		CREATE TABLE external_entries (
			transaction_id TEXT NOT NULL,
			source         TEXT NOT NULL DEFAULT '',
			account_code   TEXT NOT NULL DEFAULT '',
			entry_date     TEXT,
			amount         TEXT,
			description    TEXT NOT NULL DEFAULT '',
			reference      TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (source, transaction_id)
		);
		CREATE INDEX idx_external_entries_account ON external_entries(account_code, entry_date);`,
	},
	{
		version: 3,
		name:    "create_reconciliation_runs",
		stmt: `
		CREATE TABLE reconciliation_runs (
			id                     TEXT PRIMARY KEY,
			account_code           TEXT NOT NULL DEFAULT '',
			period_start           TEXT,
			period_end             TEXT,
			matching_mode          TEXT NOT NULL,
			strategy               TEXT NOT NULL,
			current_ledger_balance REAL NOT NULL,
			matched_count          INTEGER NOT NULL,
			created_at             TEXT NOT NULL,
			result_json            TEXT NOT NULL
		);
		CREATE INDEX idx_reconciliation_runs_created ON reconciliation_runs(created_at DESC);`,
	},
}

// NewSQLiteStore opens (or creates) the database at dbPath and applies pending migrations.
func NewSQLiteStore(dbPath string, log zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, log: log}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := s.db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			_ = rows.Close()
			return err
		}
		applied[v] = true
	}
	_ = rows.Close()

	for _, m := range migrations {
		if applied[m.version] {
			continue
		}
		s.log.Debug().Int("version", m.version).Str("name", m.name).Msg("running migration")

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", m.version, err)
		}
		if _, err := tx.ExecContext(ctx, m.stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`,
			m.version, m.name, time.Now().UTC().Format(time.RFC3339)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
	}
	return nil
}

// SaveLedgerEntries upserts entries by ID.
func (s *SQLiteStore) SaveLedgerEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT OR REPLACE INTO ledger_entries
			(id, account_code, entry_date, amount, description, reference)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx, e.ID, e.AccountCode, dateValue(e.Date), amountValue(e.Amount), e.Description, e.Reference); err != nil {
				return fmt.Errorf("failed to save ledger entry %s: %w", e.ID, err)
			}
		}
		return nil
	})
}

// SaveExternalEntries upserts statement lines for an account, keyed by source and transaction ID.
func (s *SQLiteStore) SaveExternalEntries(ctx context.Context, accountCode string, entries []domain.ExternalEntry) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT OR REPLACE INTO external_entries
			(transaction_id, source, account_code, entry_date, amount, description, reference)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx, e.TransactionID, e.Source, accountCode, dateValue(e.Date), amountValue(e.Amount), e.Description, e.Reference); err != nil {
				return fmt.Errorf("failed to save external entry %s: %w", e.TransactionID, err)
			}
		}
		return nil
	})
}

// GetLedgerEntries returns the account's entries ordered by date, undated entries last.
// An empty accountCode returns every entry.
func (s *SQLiteStore) GetLedgerEntries(ctx context.Context, accountCode string) ([]domain.LedgerEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_code, entry_date, amount, description, reference
		FROM ledger_entries
		WHERE ? = '' OR account_code = ?
		ORDER BY entry_date IS NULL, entry_date, id`, accountCode, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]domain.LedgerEntry, 0)
	for rows.Next() {
		var (
			e            domain.LedgerEntry
			date, amount sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.AccountCode, &date, &amount, &e.Description, &e.Reference); err != nil {
			return nil, err
		}
		e.Date = s.scanDate(date, e.ID)
		e.Amount = s.scanAmount(amount, e.ID)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetExternalEntries returns stored statement lines for the account.
func (s *SQLiteStore) GetExternalEntries(ctx context.Context, accountCode string) ([]domain.ExternalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT transaction_id, source, entry_date, amount, description, reference
		FROM external_entries
		WHERE ? = '' OR account_code = ?
		ORDER BY entry_date IS NULL, entry_date, source, transaction_id`, accountCode, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query external entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]domain.ExternalEntry, 0)
	for rows.Next() {
		var (
			e            domain.ExternalEntry
			date, amount sql.NullString
		)
		if err := rows.Scan(&e.TransactionID, &e.Source, &date, &amount, &e.Description, &e.Reference); err != nil {
			return nil, err
		}
		e.Date = s.scanDate(date, e.TransactionID)
		e.Amount = s.scanAmount(amount, e.TransactionID)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveRun stores a run with its full result as JSON.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *domain.ReconciliationRun) error {
	resultJSON, err := json.Marshal(run.Result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reconciliation_runs
		(id, account_code, period_start, period_end, matching_mode, strategy,
		 current_ledger_balance, matched_count, created_at, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.AccountCode,
		dateValue(run.PeriodStart),
		dateValue(run.PeriodEnd),
		run.MatchingMode,
		run.Strategy,
		run.CurrentLedgerBalance,
		run.Result.Summary.MatchedCount,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}
	return nil
}

const runColumns = `id, account_code, period_start, period_end, matching_mode, strategy,
	current_ledger_balance, created_at, result_json`

// GetRun returns domain.ErrRunNotFound when no run has the given ID.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*domain.ReconciliationRun, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM reconciliation_runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns the newest runs first. An empty accountCode lists every account.
func (s *SQLiteStore) ListRuns(ctx context.Context, accountCode string, limit int) ([]domain.ReconciliationRun, error) {
	if limit <= 0 {
		limit = DefaultRunLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM reconciliation_runs
		WHERE ? = '' OR account_code = ?
		ORDER BY created_at DESC, id
		LIMIT ?`, accountCode, accountCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	runs := make([]domain.ReconciliationRun, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.ReconciliationRun, error) {
	var (
		run                    domain.ReconciliationRun
		periodStart, periodEnd sql.NullString
		createdAt, resultJSON  string
	)
	if err := row.Scan(
		&run.ID,
		&run.AccountCode,
		&periodStart,
		&periodEnd,
		&run.MatchingMode,
		&run.Strategy,
		&run.CurrentLedgerBalance,
		&createdAt,
		&resultJSON,
	); err != nil {
		return nil, err
	}

	run.PeriodStart, _ = domain.ParseDate(periodStart.String)
	run.PeriodEnd, _ = domain.ParseDate(periodEnd.String)
	run.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if err := json.Unmarshal([]byte(resultJSON), &run.Result); err != nil {
		return nil, fmt.Errorf("failed to decode result of run %s: %w", run.ID, err)
	}
	return &run, nil
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) scanDate(v sql.NullString, id string) time.Time {
	if !v.Valid {
		return time.Time{}
	}
	t, ok := domain.ParseDate(v.String)
	if !ok {
		s.log.Warn().Str("id", id).Str("value", v.String).Msg("stored date is not parseable, treating it as missing")
	}
	return t
}

func (s *SQLiteStore) scanAmount(v sql.NullString, id string) decimal.NullDecimal {
	if !v.Valid {
		return domain.InvalidAmount()
	}
	amount, ok := domain.ParseAmount(v.String)
	if !ok {
		s.log.Warn().Str("id", id).Str("value", v.String).Msg("stored amount is not parseable, treating it as missing")
	}
	return amount
}

// dateValue stores a zero time as NULL.
func dateValue(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// amountValue stores amounts as exact decimal text, and invalid amounts as NULL.
func amountValue(a decimal.NullDecimal) any {
	if !a.Valid {
		return nil
	}
	return a.Decimal.String()
}
