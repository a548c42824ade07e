package gateway

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"gl-reconciliation/internal/domain"
)

// CSVRepository reads a ledger export and any number of bank statement exports.
// It implements usecase.LedgerRepository and usecase.StatementSource.
type CSVRepository struct {
	ledgerPath     string
	statementPaths []string
	log            zerolog.Logger
}

// NewCSVRepository creates a new repository instance. Either side may be left empty.
func NewCSVRepository(ledgerPath string, statementPaths []string, log zerolog.Logger) *CSVRepository {
	return &CSVRepository{
		ledgerPath:     ledgerPath,
		statementPaths: statementPaths,
		log:            log,
	}
}

// GetLedgerEntries reads the ledger CSV. Rows for other accounts are skipped unless
// accountCode is empty; rows without an account code are always kept.
func (r *CSVRepository) GetLedgerEntries(ctx context.Context, accountCode string) ([]domain.LedgerEntry, error) {
	if r.ledgerPath == "" {
		return nil, errors.New("no ledger file configured")
	}

	entries := make([]domain.LedgerEntry, 0)
	err := readCSV(ctx, r.ledgerPath, func(row csvRow) {
		entry := domain.LedgerEntry{
			ID:          row.get("id"),
			AccountCode: row.get("account_code"),
			Description: row.get("description"),
			Reference:   row.get("reference"),
		}
		if accountCode != "" && entry.AccountCode != "" && entry.AccountCode != accountCode {
			return
		}
		entry.Date = r.parseDate(row, entry.ID)
		entry.Amount = r.parseAmount(row, entry.ID)
		entries = append(entries, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger file %s: %w", r.ledgerPath, err)
	}
	return entries, nil
}

// GetExternalEntries reads every statement CSV in order. Statements carry no account
// column, so accountCode is ignored. Source is set to the file's base name.
func (r *CSVRepository) GetExternalEntries(ctx context.Context, _ string) ([]domain.ExternalEntry, error) {
	if len(r.statementPaths) == 0 {
		return nil, errors.New("no statement files configured")
	}

	entries := make([]domain.ExternalEntry, 0)
	for _, path := range r.statementPaths {
		source := filepath.Base(path)
		err := readCSV(ctx, path, func(row csvRow) {
			entry := domain.ExternalEntry{
				TransactionID: row.get("transaction_id"),
				Description:   row.get("description"),
				Reference:     row.get("reference"),
				Source:        source,
			}
			entry.Date = r.parseDate(row, entry.TransactionID)
			entry.Amount = r.parseAmount(row, entry.TransactionID)
			entries = append(entries, entry)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read statement file %s: %w", path, err)
		}
	}
	return entries, nil
}

func (r *CSVRepository) parseDate(row csvRow, id string) time.Time {
	raw := row.get("date")
	t, ok := domain.ParseDate(raw)
	if !ok {
		r.log.Warn().Str("file", row.file).Int("line", row.line).Str("id", id).Str("value", raw).
			Msg("could not parse date, treating it as missing")
	}
	return t
}

func (r *CSVRepository) parseAmount(row csvRow, id string) decimal.NullDecimal {
	raw := row.get("amount")
	amount, ok := domain.ParseAmount(raw)
	if !ok {
		r.log.Warn().Str("file", row.file).Int("line", row.line).Str("id", id).Str("value", raw).
			Msg("could not parse amount, treating it as missing")
	}
	return amount
}

// csvRow is one data record addressed by lower-cased header name.
type csvRow struct {
	file    string
	line    int
	columns map[string]int
	record  []string
}

func (r csvRow) get(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

// readCSV calls fn for every record after the header row. Short rows are allowed; their
// missing columns read as empty.
func readCSV(ctx context.Context, path string, fn func(csvRow)) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		columns[name] = i
	}

	base := filepath.Base(path)
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading record: %w", err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		fn(csvRow{file: base, line: line, columns: columns, record: record})
	}
}
