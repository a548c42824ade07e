package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"gl-reconciliation/internal/domain"
	"gl-reconciliation/internal/matcher"
	"gl-reconciliation/internal/usecase"
)

// AutoReconcileRequest is the body of POST /api/v1/reconciliation/auto-reconcile.
// Entry lists stay raw so that their shape can be checked before decoding.
type AutoReconcileRequest struct {
	AccountCode          string          `json:"accountCode"`
	PeriodStart          string          `json:"periodStart"`
	PeriodEnd            string          `json:"periodEnd"`
	CurrentLedgerBalance *float64        `json:"currentLedgerBalance"`
	LedgerEntries        json.RawMessage `json:"ledgerEntries"`
	ExternalEntries      json.RawMessage `json:"externalEntries"`
	Options              matcher.Options `json:"options"`
	ReportMode           string          `json:"reportMode"`
	SimulateExternal     bool            `json:"simulateExternal"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// rawEntry is one entry object with every field left undecoded.
type rawEntry map[string]json.RawMessage

// toReconcileRequest validates the request shape and converts it. Malformed fields inside
// entries degrade to missing values and are logged, they never fail the request.
func (req AutoReconcileRequest) toReconcileRequest(log zerolog.Logger) (usecase.ReconcileRequest, error) {
	out := usecase.ReconcileRequest{
		AccountCode:          req.AccountCode,
		CurrentLedgerBalance: req.CurrentLedgerBalance,
		SimulateExternal:     req.SimulateExternal,
		Options:              req.Options,
		ReportMode:           domain.ReportMode(req.ReportMode),
	}

	var err error
	if out.PeriodStart, err = parsePeriod("periodStart", req.PeriodStart); err != nil {
		return out, err
	}
	if out.PeriodEnd, err = parsePeriod("periodEnd", req.PeriodEnd); err != nil {
		return out, err
	}

	if out.LedgerEntries, err = toLedgerEntries(log, req.LedgerEntries); err != nil {
		return out, err
	}
	if out.ExternalEntries, err = toExternalEntries(log, req.ExternalEntries); err != nil {
		return out, err
	}
	return out, nil
}

// ImportEntriesRequest is the body of POST /api/v1/reconciliation/entries.
type ImportEntriesRequest struct {
	AccountCode     string          `json:"accountCode"`
	LedgerEntries   json.RawMessage `json:"ledgerEntries"`
	ExternalEntries json.RawMessage `json:"externalEntries"`
}

// toImportRequest converts the body. An absent list imports nothing.
func (req ImportEntriesRequest) toImportRequest(log zerolog.Logger) (usecase.ImportRequest, error) {
	out := usecase.ImportRequest{AccountCode: req.AccountCode}

	var err error
	if out.LedgerEntries, err = toLedgerEntries(log, req.LedgerEntries); err != nil {
		return out, err
	}
	if out.ExternalEntries, err = toExternalEntries(log, req.ExternalEntries); err != nil {
		return out, err
	}
	if out.LedgerEntries == nil {
		out.LedgerEntries = []domain.LedgerEntry{}
	}
	if out.ExternalEntries == nil {
		out.ExternalEntries = []domain.ExternalEntry{}
	}
	return out, nil
}

func toLedgerEntries(log zerolog.Logger, raw json.RawMessage) ([]domain.LedgerEntry, error) {
	items, err := decodeEntries("ledgerEntries", raw)
	if err != nil || items == nil {
		return nil, err
	}
	entries := make([]domain.LedgerEntry, 0, len(items))
	for i, item := range items {
		entries = append(entries, domain.LedgerEntry{
			ID:          item.str("id"),
			AccountCode: item.str("accountCode"),
			Date:        item.date(log, "ledgerEntries", i),
			Amount:      item.amount(log, "ledgerEntries", i),
			Description: item.str("description"),
			Reference:   item.str("reference"),
		})
	}
	return entries, nil
}

func toExternalEntries(log zerolog.Logger, raw json.RawMessage) ([]domain.ExternalEntry, error) {
	items, err := decodeEntries("externalEntries", raw)
	if err != nil || items == nil {
		return nil, err
	}
	entries := make([]domain.ExternalEntry, 0, len(items))
	for i, item := range items {
		entries = append(entries, domain.ExternalEntry{
			TransactionID: item.str("transactionId"),
			Date:          item.date(log, "externalEntries", i),
			Amount:        item.amount(log, "externalEntries", i),
			Description:   item.str("description"),
			Reference:     item.str("reference"),
			Source:        item.str("source"),
		})
	}
	return entries, nil
}

func parsePeriod(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, ok := domain.ParseDate(value)
	if !ok {
		return time.Time{}, domain.NewInvalidInputError(field, "cannot parse date %q", value)
	}
	return t, nil
}

// decodeEntries returns nil when the list is absent or null. Any JSON value other than an
// array of objects is rejected.
func decodeEntries(field string, raw json.RawMessage) ([]rawEntry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] != '[' {
		return nil, domain.NewInvalidInputError(field, "must be an array")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domain.NewInvalidInputError(field, "must be an array")
	}

	entries := make([]rawEntry, 0, len(items))
	for i, item := range items {
		var entry rawEntry
		if err := json.Unmarshal(item, &entry); err != nil || entry == nil {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("%s[%d]", field, i), "must be an object")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// str reads a field as text. Non-string scalars keep their JSON text; objects and arrays
// read as empty.
func (e rawEntry) str(key string) string {
	raw, ok := e[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '{' || raw[0] == '[' || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	return string(raw)
}

func (e rawEntry) date(log zerolog.Logger, field string, index int) time.Time {
	raw, ok := e["date"]
	if !ok {
		return time.Time{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if t, ok := domain.ParseDate(s); ok {
			return t
		}
	}
	log.Warn().Str("field", fmt.Sprintf("%s[%d].date", field, index)).RawJSON("value", raw).
		Msg("could not parse date, treating it as missing")
	return time.Time{}
}

// amount accepts a JSON number or a numeric string.
func (e rawEntry) amount(log zerolog.Logger, field string, index int) decimal.NullDecimal {
	raw, ok := e["amount"]
	if !ok {
		return domain.InvalidAmount()
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if amount, ok := domain.ParseAmount(n.String()); ok {
			return amount
		}
	}
	log.Warn().Str("field", fmt.Sprintf("%s[%d].amount", field, index)).RawJSON("value", raw).
		Msg("could not parse amount, treating it as missing")
	return domain.InvalidAmount()
}
