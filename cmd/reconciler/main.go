package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"gl-reconciliation/internal/config"
	"gl-reconciliation/internal/domain"
	"gl-reconciliation/internal/fixture"
	"gl-reconciliation/internal/gateway"
	"gl-reconciliation/internal/logger"
	"gl-reconciliation/internal/matcher"
	"gl-reconciliation/internal/usecase"
)

func main() {
	// Define command-line flags
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file; environment variables are used if it is missing")
	ledgerFile := flag.String("ledger", "", "Path to the ledger CSV file (required)")
	bankFilesStr := flag.String("bank", "", "Comma-separated list of paths to bank statement CSV files")
	simulate := flag.Bool("simulate", false, "Synthesize bank lines from the ledger instead of reading -bank")
	accountCode := flag.String("account", "", "Account code to reconcile; empty reconciles every ledger row")
	startDateStr := flag.String("start", "", "Start date for reconciliation (YYYY-MM-DD)")
	endDateStr := flag.String("end", "", "End date for reconciliation (YYYY-MM-DD)")
	balanceStr := flag.String("balance", "", "Current ledger balance; defaults to the sum of the ledger amounts")
	mode := flag.String("mode", "", "Matching mode: strict, standard, fuzzy or aggressive")
	strategy := flag.String("strategy", "", "Assignment strategy: greedy or optimal")
	tolerance := flag.Int("tolerance", 0, "Date tolerance in days used in recommendations; defaults to the configured value")
	reportMode := flag.String("report", "", "Report mode: summary or detailed")
	save := flag.Bool("save", false, "Import the CSV rows and record the run in the configured SQLite database")
	flag.Parse()

	// Validate required flags
	if *ledgerFile == "" || (*bankFilesStr == "" && !*simulate) {
		fmt.Fprintln(os.Stderr, "Error: -ledger and one of -bank or -simulate are required.")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadOrEnvWithPath(*configPath)
	log := logger.NewWithWriter(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(logger.ParseLevel(cfg.Logging.Level))

	req := usecase.ReconcileRequest{
		AccountCode:      *accountCode,
		SimulateExternal: *simulate,
		Options: matcher.Options{
			MatchingMode: matcher.MatchingMode(*mode),
			Strategy:     matcher.Strategy(*strategy),
		},
		ReportMode: domain.ReportMode(*reportMode),
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "tolerance" {
			req.Options.DateToleranceDays = matcher.Days(*tolerance)
		}
	})

	// Parse dates
	var ok bool
	if *startDateStr != "" {
		if req.PeriodStart, ok = domain.ParseDate(*startDateStr); !ok {
			log.Fatal().Str("value", *startDateStr).Msg("could not parse start date")
		}
	}
	if *endDateStr != "" {
		if req.PeriodEnd, ok = domain.ParseDate(*endDateStr); !ok {
			log.Fatal().Str("value", *endDateStr).Msg("could not parse end date")
		}
	}
	if *balanceStr != "" {
		balance, err := strconv.ParseFloat(*balanceStr, 64)
		if err != nil {
			log.Fatal().Err(err).Msg("could not parse balance")
		}
		req.CurrentLedgerBalance = &balance
	}

	// Split bank files string into a slice
	var bankFiles []string
	if *bankFilesStr != "" {
		bankFiles = strings.Split(*bankFilesStr, ",")
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the repositories (the outermost layer)
	csvRepo := gateway.NewCSVRepository(*ledgerFile, bankFiles, log)

	opts := []usecase.Option{
		usecase.WithSimulator(fixture.NewSynthesizer(cfg.Fixture)),
		usecase.WithDefaultOptions(cfg.Reconciliation.MatcherOptions()),
		usecase.WithReportMode(domain.ReportMode(cfg.Reconciliation.ReportMode)),
		usecase.WithLogger(log),
	}

	var runs usecase.RunRepository
	if *save {
		store, err := gateway.NewSQLiteStore(cfg.Storage.DatabasePath, log)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.DatabasePath).Msg("failed to open database")
		}
		defer store.Close()
		runs = store
		opts = append(opts, usecase.WithEntryStore(store))
	}

	// 2. Create the usecase and inject the repositories (the core logic layer)
	reconciliationUseCase := usecase.NewReconciliationUseCase(csvRepo, csvRepo, runs, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Import the CSV rows so the API can reconcile them later ---
	if *save {
		importReq := usecase.ImportRequest{AccountCode: *accountCode}
		if *simulate {
			importReq.ExternalEntries = []domain.ExternalEntry{}
		}
		if _, err := reconciliationUseCase.ImportEntries(ctx, importReq); err != nil {
			log.Error().Err(err).Msg("import failed")
			os.Exit(1)
		}
	}

	// --- Execute the Usecase ---
	report, err := reconciliationUseCase.Reconcile(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("reconciliation failed")
		os.Exit(1)
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("failed to generate JSON report")
		os.Exit(1)
	}

	fmt.Println(string(output))
}
