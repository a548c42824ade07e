package matcher

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gl-reconciliation/internal/domain"
)

func ledgerEntry(id string, amount float64, daysOffset int, description, reference string) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:          id,
		AccountCode: "1010",
		Date:        day0.AddDate(0, 0, daysOffset),
		Amount:      domain.NewAmount(amount),
		Description: description,
		Reference:   reference,
	}
}

func externalEntry(id string, amount float64, daysOffset int, description, reference string) domain.ExternalEntry {
	return domain.ExternalEntry{
		TransactionID: id,
		Date:          day0.AddDate(0, 0, daysOffset),
		Amount:        domain.NewAmount(amount),
		Description:   description,
		Reference:     reference,
	}
}

func mirror(ledger []domain.LedgerEntry) []domain.ExternalEntry {
	external := make([]domain.ExternalEntry, len(ledger))
	for i, l := range ledger {
		external[i] = domain.ExternalEntry{
			TransactionID: "BK-" + l.ID,
			Date:          l.Date,
			Amount:        l.Amount,
			Description:   l.Description,
			Reference:     l.Reference,
		}
	}
	return external
}

func TestReconcile_ExactScenario(t *testing.T) {
	ledger := []domain.LedgerEntry{ledgerEntry("GL-1", 100.00, 0, "Office Supplies", "INV-001")}
	external := []domain.ExternalEntry{externalEntry("BK-1", 100.00, 0, "Office Supplies", "INV-001")}

	result, err := Reconcile(ledger, external, 100, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	match := result.Matches[0]
	assert.Equal(t, 1.0, match.Confidence)
	assert.Equal(t, domain.MatchTypeExact, match.MatchType)
	assert.NotEmpty(t, match.MatchID)
	assert.Equal(t, "GL-1", match.LedgerEntry.ID)
	assert.Equal(t, "BK-1", match.ExternalEntry.TransactionID)
	assert.Empty(t, result.Discrepancies)
	assert.True(t, result.Summary.IsBalanced)
	assert.Equal(t, []string{"All entries reconciled; no action required"}, result.Recommendations)
}

func TestReconcile_IdenticalListsMatchThemselves(t *testing.T) {
	ledger := []domain.LedgerEntry{
		ledgerEntry("GL-1", 100, 0, "Office Supplies", "INV-001"),
		ledgerEntry("GL-2", 2500, 1, "Monthly Rent", "RENT-01"),
		ledgerEntry("GL-3", -42.10, 2, "Bank Fee", "FEE-9"),
		ledgerEntry("GL-4", 980, 3, "Payroll", "PR-2024-01"),
	}

	result, err := Reconcile(ledger, mirror(ledger), 0, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Matches, len(ledger))
	for i, match := range result.Matches {
		assert.Equal(t, ledger[i].ID, match.LedgerEntry.ID)
		assert.Equal(t, "BK-"+ledger[i].ID, match.ExternalEntry.TransactionID)
		assert.Equal(t, 1.0, match.Confidence)
		assert.Equal(t, domain.MatchTypeExact, match.MatchType)
	}
	assert.Equal(t, len(ledger), result.Summary.ExactMatches)
	assert.Equal(t, 1.0, result.Summary.MatchRate)
}

func TestReconcile_NearMissScenarios(t *testing.T) {
	t.Run("four percent and one day lands in partial", func(t *testing.T) {
		ledger := []domain.LedgerEntry{ledgerEntry("GL-1", 100, 0, "Office Supplies", "")}
		external := []domain.ExternalEntry{externalEntry("BK-1", 104, 1, "Office Supplies", "")}

		result, err := Reconcile(ledger, external, 100, DefaultOptions())
		require.NoError(t, err)

		require.Len(t, result.Matches, 1)
		assert.InDelta(t, 0.81, result.Matches[0].Confidence, 1e-9)
		assert.Equal(t, domain.MatchTypePartial, result.Matches[0].MatchType)
	})

	t.Run("five percent drops to the 0.5 band and misses the floor", func(t *testing.T) {
		ledger := []domain.LedgerEntry{ledgerEntry("GL-1", 100, 0, "Office Supplies", "")}
		external := []domain.ExternalEntry{externalEntry("BK-1", 105, 1, "Office Supplies", "")}

		assert.InDelta(t, 0.69, CompositeScore(ledger[0], external[0]), 1e-9)

		result, err := Reconcile(ledger, external, 100, Options{MatchingMode: ModeAggressive})
		require.NoError(t, err)
		assert.Empty(t, result.Matches)
		assert.Len(t, result.Discrepancies, 2)
	})
}

func TestReconcile_EmptyLedger(t *testing.T) {
	external := []domain.ExternalEntry{
		externalEntry("BK-1", 50, 0, "Coffee", ""),
		externalEntry("BK-2", 75, 1, "Lunch", ""),
	}

	result, err := Reconcile(nil, external, 0, DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, result.Matches)
	assert.Equal(t, 0, result.Summary.MatchedCount)
	assert.Equal(t, 2, result.Summary.UnmatchedExternalCount)
	require.Len(t, result.Discrepancies, 2)
	for _, d := range result.Discrepancies {
		assert.Equal(t, domain.DiscrepancyUnmatchedBank, d.Type)
		assert.NotNil(t, d.ExternalEntry)
		assert.Nil(t, d.LedgerEntry)
		assert.NotEmpty(t, d.SuggestedActions)
	}
	assert.True(t, decimal.NewFromInt(125).Equal(result.Summary.ExternalBalance))
	assert.True(t, decimal.NewFromInt(125).Equal(result.Summary.Difference))
}

func TestReconcile_EmptyInputs(t *testing.T) {
	result, err := Reconcile(nil, nil, 0, Options{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotNil(t, result.Matches)
	assert.Empty(t, result.Matches)
	assert.Empty(t, result.Discrepancies)
	assert.Equal(t, 0, result.Summary.MatchedCount)
	assert.Equal(t, 0, result.Summary.UnmatchedLedgerCount)
	assert.Equal(t, 0, result.Summary.UnmatchedExternalCount)
	assert.True(t, result.Summary.ExternalBalance.IsZero())
	assert.True(t, result.Summary.Difference.IsZero())
	assert.True(t, result.Summary.IsBalanced)
	assert.Equal(t, 0, result.Summary.TotalLedgerEntries)
	assert.Equal(t, 0, result.Summary.TotalExternalEntries)
	assert.Equal(t, 0.0, result.Summary.MatchRate)
}

func TestReconcile_DiscrepancySeverity(t *testing.T) {
	external := []domain.ExternalEntry{
		externalEntry("BK-BIG", 2000, 0, "Wire transfer", ""),
		externalEntry("BK-NEG", -1500, 0, "Chargeback", ""),
		externalEntry("BK-EDGE", 1000, 0, "Exactly a thousand", ""),
		{TransactionID: "BK-BAD", Date: day0, Amount: domain.InvalidAmount(), Description: "Garbled"},
	}

	result, err := Reconcile(nil, external, 0, DefaultOptions())
	require.NoError(t, err)

	severity := make(map[string]domain.Severity)
	for _, d := range result.Discrepancies {
		severity[d.ExternalEntry.TransactionID] = d.Severity
	}
	assert.Equal(t, domain.SeverityHigh, severity["BK-BIG"])
	assert.Equal(t, domain.SeverityHigh, severity["BK-NEG"])
	assert.Equal(t, domain.SeverityMedium, severity["BK-EDGE"])
	assert.Equal(t, domain.SeverityMedium, severity["BK-BAD"])
}

func TestReconcile_UnmatchedLedgerBecomesGLDiscrepancy(t *testing.T) {
	ledger := []domain.LedgerEntry{ledgerEntry("GL-1", 300, 0, "Deposit", "")}

	result, err := Reconcile(ledger, nil, 300, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Discrepancies, 1)
	d := result.Discrepancies[0]
	assert.Equal(t, domain.DiscrepancyUnmatchedGL, d.Type)
	assert.Equal(t, domain.SeverityMedium, d.Severity)
	require.NotNil(t, d.LedgerEntry)
	assert.Equal(t, "GL-1", d.LedgerEntry.ID)
	assert.True(t, decimal.NewFromInt(300).Equal(d.Amount))
	assert.True(t, decimal.NewFromInt(-300).Equal(result.Summary.Difference))
	assert.False(t, result.Summary.IsBalanced)
}

func TestReconcile_TieGoesToFirstScanned(t *testing.T) {
	ledger := []domain.LedgerEntry{ledgerEntry("GL-1", 100, 0, "Office Supplies", "INV-001")}
	external := []domain.ExternalEntry{
		externalEntry("BK-FIRST", 100, 0, "Office Supplies", "INV-001"),
		externalEntry("BK-SECOND", 100, 0, "Office Supplies", "INV-001"),
	}

	for i := 0; i < 10; i++ {
		result, err := Reconcile(ledger, external, 0, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, result.Matches, 1)
		assert.Equal(t, "BK-FIRST", result.Matches[0].ExternalEntry.TransactionID)
		require.Len(t, result.UnmatchedExternal, 1)
		assert.Equal(t, "BK-SECOND", result.UnmatchedExternal[0].TransactionID)
	}
}

func TestReconcile_HighestScoreWinsOverInputOrder(t *testing.T) {
	ledger := []domain.LedgerEntry{ledgerEntry("GL-1", 100, 0, "Office Supplies", "INV-001")}
	external := []domain.ExternalEntry{
		externalEntry("BK-CLOSE", 100, 1, "Office Supplies", "INV-001"),
		externalEntry("BK-EXACT", 100, 0, "Office Supplies", "INV-001"),
	}

	result, err := Reconcile(ledger, external, 0, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "BK-EXACT", result.Matches[0].ExternalEntry.TransactionID)
}

func TestReconcile_HardFloorIsExclusive(t *testing.T) {
	// Missing date on the bank side leaves exactly 0.7, which does not exceed the floor.
	ledger := []domain.LedgerEntry{ledgerEntry("GL-1", 100, 0, "Office Supplies", "INV-001")}
	external := []domain.ExternalEntry{{TransactionID: "BK-1", Amount: domain.NewAmount(100), Description: "Office Supplies", Reference: "INV-001"}}

	for _, strategy := range []Strategy{StrategyGreedy, StrategyOptimal} {
		t.Run(string(strategy), func(t *testing.T) {
			result, err := Reconcile(ledger, external, 0, Options{MatchingMode: ModeAggressive, Strategy: strategy})
			require.NoError(t, err)
			assert.Empty(t, result.Matches)
			assert.Len(t, result.UnmatchedLedger, 1)
			assert.Len(t, result.UnmatchedExternal, 1)
		})
	}
}

func TestReconcile_ExplicitZeroOptions(t *testing.T) {
	// Bank side has no amount, so the pair scores 0.6.
	ledger := []domain.LedgerEntry{ledgerEntry("GL-1", 100, 0, "Office Supplies", "INV-001")}
	external := []domain.ExternalEntry{{TransactionID: "BK-1", Date: ledger[0].Date, Amount: domain.InvalidAmount(), Description: "Office Supplies", Reference: "INV-001"}}

	t.Run("unset floor uses the default", func(t *testing.T) {
		result, err := Reconcile(ledger, external, 0, Options{MatchingMode: ModeAggressive})
		require.NoError(t, err)
		assert.Empty(t, result.Matches)
	})

	t.Run("zero floor admits the pair", func(t *testing.T) {
		result, err := Reconcile(ledger, external, 0, Options{MatchingMode: ModeAggressive, MinCandidateScore: Score(0)})
		require.NoError(t, err)
		require.Len(t, result.Matches, 1)
		assert.Equal(t, 0.6, result.Matches[0].Confidence)
	})

	t.Run("zero tolerance is kept", func(t *testing.T) {
		m, err := New(Options{DateToleranceDays: Days(0), MinCandidateScore: Score(0)})
		require.NoError(t, err)
		assert.Equal(t, 0, m.Options().DateTolerance())
		assert.Equal(t, 0.0, m.Options().CandidateFloor())

		result, err := m.Reconcile(ledger, []domain.ExternalEntry{}, 0)
		require.NoError(t, err)
		assert.Contains(t, result.Recommendations, "Check postings within 0 days of the period boundary for timing differences")
	})
}

// pairScenario has one close pair (0.74) and one exact pair (1.0).
func pairScenario() ([]domain.LedgerEntry, []domain.ExternalEntry) {
	ledger := []domain.LedgerEntry{
		ledgerEntry("GL-EXACT", 100, 0, "Office Supplies", "INV-001"),
		ledgerEntry("GL-LATE", 250, 0, "Team Lunch", ""),
	}
	external := []domain.ExternalEntry{
		externalEntry("BK-EXACT", 100, 0, "Office Supplies", "INV-001"),
		externalEntry("BK-LATE", 250, 5, "Team Lunch", ""),
	}
	return ledger, external
}

func TestReconcile_ModeThresholdDemotesMatches(t *testing.T) {
	ledger, external := pairScenario()

	aggressive, err := Reconcile(ledger, external, 0, Options{MatchingMode: ModeAggressive})
	require.NoError(t, err)
	require.Len(t, aggressive.Matches, 2)
	assert.InDelta(t, 0.74, aggressive.Matches[1].Confidence, 1e-9)
	assert.Equal(t, domain.MatchTypePartial, aggressive.Matches[1].MatchType)

	strict, err := Reconcile(ledger, external, 0, Options{MatchingMode: ModeStrict})
	require.NoError(t, err)
	require.Len(t, strict.Matches, 1)
	assert.Equal(t, "GL-EXACT", strict.Matches[0].LedgerEntry.ID)

	// The demoted pair returns to both pools and is reported on both sides.
	require.Len(t, strict.UnmatchedLedger, 1)
	assert.Equal(t, "GL-LATE", strict.UnmatchedLedger[0].ID)
	require.Len(t, strict.UnmatchedExternal, 1)
	assert.Equal(t, "BK-LATE", strict.UnmatchedExternal[0].TransactionID)
	assert.Len(t, strict.Discrepancies, 2)
}

func TestReconcile_StricterModeNeverAddsMatches(t *testing.T) {
	modes := []MatchingMode{ModeAggressive, ModeFuzzy, ModeStandard, ModeStrict}
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 25; round++ {
		ledger, external := randomBatch(rng, 12, 10)
		prev := math.MaxInt
		for _, mode := range modes {
			result, err := Reconcile(ledger, external, 0, Options{MatchingMode: mode})
			require.NoError(t, err)
			assert.LessOrEqual(t, len(result.Matches), prev, "round %d mode %s", round, mode)
			prev = len(result.Matches)
		}
	}
}

func TestReconcile_CountsAndScoreBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 40; round++ {
		ledger, external := randomBatch(rng, rng.Intn(15), rng.Intn(15))
		for _, strategy := range []Strategy{StrategyGreedy, StrategyOptimal} {
			result, err := Reconcile(ledger, external, 0, Options{MatchingMode: ModeAggressive, Strategy: strategy})
			require.NoError(t, err)

			s := result.Summary
			assert.Equal(t, len(ledger), s.MatchedCount+s.UnmatchedLedgerCount)
			assert.Equal(t, len(external), s.MatchedCount+s.UnmatchedExternalCount)
			assert.Equal(t, s.UnmatchedLedgerCount+s.UnmatchedExternalCount, len(result.Discrepancies))

			for _, m := range result.Matches {
				assert.GreaterOrEqual(t, m.Confidence, 0.0)
				assert.LessOrEqual(t, m.Confidence, 1.0)
				assert.Greater(t, m.Confidence, DefaultMinCandidateScore)
			}
		}
	}
}

func TestReconcile_OptimalStrategyBeatsGreedy(t *testing.T) {
	// Greedy gives GL-1 its best partner BK-1 and leaves GL-2 with nothing above the floor;
	// optimal pairs GL-1/BK-2 (0.74) and GL-2/BK-1 (0.75).
	ledger := []domain.LedgerEntry{
		ledgerEntry("GL-1", 100, 0, "Office Supplies", ""),
		ledgerEntry("GL-2", 106, 0, "Office Supplies", ""),
	}
	external := []domain.ExternalEntry{
		externalEntry("BK-1", 100, 0, "Office Supplies", ""),
		externalEntry("BK-2", 100, 5, "Office Supplies", ""),
	}

	greedy, err := Reconcile(ledger, external, 0, Options{Strategy: StrategyGreedy})
	require.NoError(t, err)
	require.Len(t, greedy.Matches, 1)
	assert.Equal(t, "BK-1", greedy.Matches[0].ExternalEntry.TransactionID)

	optimal, err := Reconcile(ledger, external, 0, Options{Strategy: StrategyOptimal})
	require.NoError(t, err)
	require.Len(t, optimal.Matches, 2)
	assert.Equal(t, "GL-1", optimal.Matches[0].LedgerEntry.ID)
	assert.Equal(t, "BK-2", optimal.Matches[0].ExternalEntry.TransactionID)
	assert.Equal(t, "GL-2", optimal.Matches[1].LedgerEntry.ID)
	assert.Equal(t, "BK-1", optimal.Matches[1].ExternalEntry.TransactionID)
}

func TestReconcile_MalformedFieldsDegrade(t *testing.T) {
	ledger := []domain.LedgerEntry{
		{ID: "GL-NOAMT", Date: day0, Amount: domain.InvalidAmount(), Description: "Office Supplies", Reference: "INV-001"},
		ledgerEntry("GL-OK", 40, 0, "Parking", "P-1"),
	}
	external := []domain.ExternalEntry{
		externalEntry("BK-1", 100, 0, "Office Supplies", "INV-001"),
		externalEntry("BK-2", 40, 0, "Parking", "P-1"),
	}

	result, err := Reconcile(ledger, external, 0, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "GL-OK", result.Matches[0].LedgerEntry.ID)
	require.Len(t, result.UnmatchedLedger, 1)
	assert.Equal(t, "GL-NOAMT", result.UnmatchedLedger[0].ID)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	ledger, external := pairScenario()
	ledgerCopy := append([]domain.LedgerEntry(nil), ledger...)
	externalCopy := append([]domain.ExternalEntry(nil), external...)

	_, err := Reconcile(ledger, external, 0, Options{MatchingMode: ModeStrict})
	require.NoError(t, err)

	assert.Equal(t, ledgerCopy, ledger)
	assert.Equal(t, externalCopy, external)
}

func TestReconcile_Summary(t *testing.T) {
	ledger, external := pairScenario()
	external = append(external, externalEntry("BK-EXTRA", 1200, 2, "Wire in", ""))

	result, err := Reconcile(ledger, external, 350, Options{MatchingMode: ModeAggressive})
	require.NoError(t, err)

	s := result.Summary
	assert.Equal(t, 2, s.TotalLedgerEntries)
	assert.Equal(t, 3, s.TotalExternalEntries)
	assert.Equal(t, 2, s.MatchedCount)
	assert.Equal(t, 1, s.ExactMatches)
	assert.Equal(t, 1, s.PartialMatches)
	assert.InDelta(t, 2.0/3.0, s.MatchRate, 1e-9)
	assert.InDelta(t, (1.0+0.74)/2, s.AverageConfidence, 1e-9)
	assert.True(t, decimal.NewFromInt(1550).Equal(s.ExternalBalance), s.ExternalBalance.String())
	assert.True(t, decimal.NewFromInt(350).Equal(s.LedgerBalance))
	assert.True(t, decimal.NewFromInt(1200).Equal(s.Difference))
	assert.True(t, decimal.NewFromInt(1200).Equal(s.UnmatchedExternalAmount))
	assert.True(t, s.UnmatchedLedgerAmount.IsZero())
	assert.False(t, s.IsBalanced)

	assert.Contains(t, result.Recommendations, "Review 1 unmatched external entries for missing ledger postings")
	assert.Contains(t, result.Recommendations, "Check postings within 3 days of the period boundary for timing differences")
	assert.Contains(t, result.Recommendations, "Manually confirm 1 partial matches with confidence at or below 0.85")
	assert.Contains(t, result.Recommendations, "Investigate balance difference of 1200.00 between external records and the ledger")
}

func TestReconcile_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		balance float64
		field   string
	}{
		{name: "unknown mode", opts: Options{MatchingMode: "reckless"}, field: "matchingMode"},
		{name: "unknown strategy", opts: Options{Strategy: "random"}, field: "strategy"},
		{name: "negative tolerance", opts: Options{DateToleranceDays: Days(-1)}, field: "dateToleranceDays"},
		{name: "floor above one", opts: Options{MinCandidateScore: Score(1.5)}, field: "minCandidateScore"},
		{name: "NaN balance", balance: math.NaN(), field: "currentLedgerBalance"},
		{name: "infinite balance", balance: math.Inf(1), field: "currentLedgerBalance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Reconcile(nil, nil, tt.balance, tt.opts)
			require.Error(t, err)
			assert.Nil(t, result)

			var invalid *domain.InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestNew_AppliesDefaults(t *testing.T) {
	m, err := New(Options{MatchingMode: ModeStrict})
	require.NoError(t, err)

	opts := m.Options()
	assert.Equal(t, ModeStrict, opts.MatchingMode)
	assert.Equal(t, DefaultDateToleranceDays, opts.DateTolerance())
	assert.Equal(t, DefaultMinCandidateScore, opts.CandidateFloor())
	require.NotNil(t, opts.DateToleranceDays)
	require.NotNil(t, opts.MinCandidateScore)
	assert.Equal(t, StrategyGreedy, opts.Strategy)
}

func TestReconcile_MatchIDsAreUnique(t *testing.T) {
	ledger := make([]domain.LedgerEntry, 20)
	for i := range ledger {
		ledger[i] = ledgerEntry(fmt.Sprintf("GL-%d", i), float64(10+i), 0, fmt.Sprintf("Item %d", i), "")
	}

	result, err := Reconcile(ledger, mirror(ledger), 0, DefaultOptions())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, m := range result.Matches {
		assert.False(t, seen[m.MatchID], "duplicate match id %s", m.MatchID)
		seen[m.MatchID] = true
	}
}

var descriptions = []string{"Office Supplies", "Monthly Rent", "Payroll", "Bank Fee", "Coffee", "", "Wire Transfer"}

func randomBatch(rng *rand.Rand, nLedger, nExternal int) ([]domain.LedgerEntry, []domain.ExternalEntry) {
	ledger := make([]domain.LedgerEntry, nLedger)
	for i := range ledger {
		ledger[i] = ledgerEntry(
			fmt.Sprintf("GL-%d", i),
			float64(rng.Intn(5000)-1000)/10,
			rng.Intn(10),
			descriptions[rng.Intn(len(descriptions))],
			[]string{"", "INV-1", "INV-2"}[rng.Intn(3)],
		)
		if rng.Intn(10) == 0 {
			ledger[i].Amount = domain.InvalidAmount()
		}
	}

	external := make([]domain.ExternalEntry, nExternal)
	for i := range external {
		if i < nLedger && rng.Intn(2) == 0 {
			l := ledger[i]
			external[i] = domain.ExternalEntry{TransactionID: fmt.Sprintf("BK-%d", i), Date: l.Date.AddDate(0, 0, rng.Intn(3)), Amount: l.Amount, Description: l.Description, Reference: l.Reference}
			continue
		}
		external[i] = externalEntry(
			fmt.Sprintf("BK-%d", i),
			float64(rng.Intn(5000)-1000)/10,
			rng.Intn(10),
			descriptions[rng.Intn(len(descriptions))],
			"",
		)
		if rng.Intn(10) == 0 {
			external[i].Date = time.Time{}
		}
	}

	return ledger, external
}
