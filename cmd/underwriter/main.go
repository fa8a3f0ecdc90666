package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"underwriting-risk/internal/alerts"
	"underwriting-risk/internal/config"
	"underwriting-risk/internal/gateway"
	"underwriting-risk/internal/logger"
	"underwriting-risk/internal/metrics"
	"underwriting-risk/internal/risk"
	"underwriting-risk/internal/usecase"
)

func main() {
	// Define command-line flags
	applicationFile := flag.String("application", "", "Path to the application JSON file (required)")
	sosFile := flag.String("sos", "", "Path to the Secretary of State verification JSON file")
	statementFilesStr := flag.String("statements", "", "Comma-separated list of paths to bank statement CSV files (required)")
	openingStr := flag.String("opening", "", "Comma-separated opening balances, one per statement (default 0)")
	configFile := flag.String("config", "", "Path to a YAML config file")
	metricsOut := flag.String("metrics-out", "", "Write Prometheus metrics to this textfile")
	sortBySeverity := flag.Bool("sort-by-severity", false, "Order alerts from most to least severe")
	flag.Parse()

	// Validate required flags
	if *applicationFile == "" || *statementFilesStr == "" {
		fmt.Fprintln(os.Stderr, "Error: flags -application and -statements are required.")
		flag.Usage()
		os.Exit(1)
	}

	statementFiles := strings.Split(*statementFilesStr, ",")
	openings, err := parseOpeningBalances(*openingStr, len(statementFiles))
	if err != nil {
		log.Fatalf("Error parsing opening balances: %v", err)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// --- Dependency Injection (Wiring the application) ---
	repo := gateway.NewFileRepository(zlog.Named("gateway"))
	analyzer := risk.NewAnalyzer(cfg.Risk, risk.NewMonthlyDepositStability(), zlog.Named("risk"))
	engine := alerts.NewEngine(cfg.Alerts, zlog.Named("alerts"))
	collector := metrics.NewCollector()
	underwriting := usecase.NewUnderwritingUseCase(repo, analyzer, engine, collector, zlog.Named("usecase"))

	sources := make([]usecase.StatementSource, len(statementFiles))
	for i, path := range statementFiles {
		sources[i] = usecase.StatementSource{Path: strings.TrimSpace(path), OpeningBalance: openings[i]}
	}

	// --- Execute the Usecase ---
	ctx := logger.WithContext(context.Background(), zlog)
	report, err := underwriting.Evaluate(ctx, usecase.EvaluationRequest{
		ApplicationPath: *applicationFile,
		SOSPath:         *sosFile,
		Statements:      sources,
		SortBySeverity:  *sortBySeverity,
	})
	if err != nil {
		zlog.Fatal("underwriting failed", zap.Error(err))
	}

	if *metricsOut != "" {
		if err := collector.WriteTextfile(*metricsOut); err != nil {
			zlog.Error("failed to write metrics", zap.String("path", *metricsOut), zap.Error(err))
		}
	}

	// --- Present the Output ---
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		zlog.Fatal("failed to generate JSON report", zap.Error(err))
	}

	fmt.Println(string(output))
}

func parseOpeningBalances(raw string, count int) ([]float64, error) {
	balances := make([]float64, count)
	if strings.TrimSpace(raw) == "" {
		return balances, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != count {
		return nil, fmt.Errorf("got %d opening balances for %d statements", len(parts), count)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("opening balance %q: %w", p, err)
		}
		balances[i] = v
	}
	return balances, nil
}
