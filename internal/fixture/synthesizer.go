// Package fixture generates plausible external (bank-side) entries from ledger entries for
// demos and tests. Nothing in the matching path depends on it.
package fixture

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"

	"gl-reconciliation/internal/domain"
)

// Config controls how far synthesized lines drift from their ledger source.
type Config struct {
	Seed              uint64  `yaml:"seed"`
	AmountVariance    float64 `yaml:"amount_variance"`     // max relative jitter, 0.02 = ±2%
	MaxDateShiftDays  int     `yaml:"max_date_shift_days"` // shift drawn from [0, MaxDateShiftDays]
	DropRate          float64 `yaml:"drop_rate"`           // chance a ledger line has no bank line
	ReferenceDropRate float64 `yaml:"reference_drop_rate"` // chance the bank line loses its reference
}

// DefaultConfig returns a mild variance suited to demos.
func DefaultConfig() Config {
	return Config{
		Seed:              1,
		AmountVariance:    0.02,
		MaxDateShiftDays:  2,
		DropRate:          0.1,
		ReferenceDropRate: 0.3,
	}
}

// Synthesizer produces external entries. It is safe for concurrent use.
type Synthesizer struct {
	cfg Config
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthesizer seeds a synthesizer; equal seeds yield equal sequences.
func NewSynthesizer(cfg Config) *Synthesizer {
	return &Synthesizer{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

// ExternalFromLedger copies each ledger entry into a bank-style line with small random
// amount and date variance. Entries with a missing amount or date are copied unchanged in
// those fields.
func (s *Synthesizer) ExternalFromLedger(ledger []domain.LedgerEntry) []domain.ExternalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	external := make([]domain.ExternalEntry, 0, len(ledger))
	for i, l := range ledger {
		if s.rng.Float64() < s.cfg.DropRate {
			continue
		}

		e := domain.ExternalEntry{
			TransactionID: fmt.Sprintf("SIM-%04d", i+1),
			Date:          l.Date,
			Amount:        l.Amount,
			Description:   l.Description,
			Reference:     l.Reference,
			Source:        "simulated",
		}

		if l.Amount.Valid && s.cfg.AmountVariance > 0 {
			jitter := (s.rng.Float64()*2 - 1) * s.cfg.AmountVariance
			factor := decimal.NewFromFloat(1 + jitter)
			e.Amount = decimal.NewNullDecimal(l.Amount.Decimal.Mul(factor).Round(2))
		}
		if !l.Date.IsZero() && s.cfg.MaxDateShiftDays > 0 {
			e.Date = l.Date.AddDate(0, 0, s.rng.IntN(s.cfg.MaxDateShiftDays+1))
		}
		if s.rng.Float64() < s.cfg.ReferenceDropRate {
			e.Reference = ""
		}

		external = append(external, e)
	}

	return external
}
