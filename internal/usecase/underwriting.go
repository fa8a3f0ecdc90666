package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"underwriting-risk/internal/alerts"
	"underwriting-risk/internal/domain"
	"underwriting-risk/internal/logger"
	"underwriting-risk/internal/risk"
)

// StatementSource locates one bank account's statement.
type StatementSource struct {
	Path string
	// AccountID defaults to the statement's file name.
	AccountID      string
	OpeningBalance float64
}

// EvaluationRequest describes one underwriting run.
type EvaluationRequest struct {
	ApplicationPath string
	// SOSPath is optional; registry checks are skipped without it.
	SOSPath        string
	Statements     []StatementSource
	SortBySeverity bool
}

// UnderwritingUseCase orchestrates the underwriting process.
type UnderwritingUseCase struct {
	repo     ApplicationRepository
	analyzer *risk.Analyzer
	engine   *alerts.Engine
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// NewUnderwritingUseCase creates a new instance of the usecase. recorder and
// logger may be nil.
func NewUnderwritingUseCase(repo ApplicationRepository, analyzer *risk.Analyzer, engine *alerts.Engine, recorder Recorder, logger *zap.Logger) *UnderwritingUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UnderwritingUseCase{
		repo:     repo,
		analyzer: analyzer,
		engine:   engine,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Evaluate scores every statement of an application and cross-checks the
// result against what the applicant declared.
func (uc *UnderwritingUseCase) Evaluate(ctx context.Context, req EvaluationRequest) (*domain.UnderwritingReport, error) {
	runID := uuid.New()
	log := logger.FromContext(ctx, uc.logger).With(zap.String("run_id", runID.String()))

	// Step 1: Data Ingestion
	app, err := uc.repo.GetApplication(ctx, req.ApplicationPath)
	if err != nil {
		return nil, fmt.Errorf("could not load application: %w", err)
	}

	sos, err := uc.repo.GetSOSVerification(ctx, req.SOSPath)
	if err != nil {
		return nil, fmt.Errorf("could not load registry verification: %w", err)
	}

	// Step 2: Per-account scoring
	accounts := make([]domain.AccountAnalysis, 0, len(req.Statements))
	reports := make([]domain.FinsightReport, 0, len(req.Statements))
	for i, src := range req.Statements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		accountID := src.AccountID
		if accountID == "" {
			accountID = strings.TrimSuffix(filepath.Base(src.Path), filepath.Ext(src.Path))
		}

		analysis, err := uc.scoreAccount(ctx, i, accountID, src)
		if err != nil {
			return nil, err
		}

		log.Info("account scored",
			zap.String("account_id", accountID),
			zap.Int("risk_score", analysis.RiskProfile.RiskScore),
			zap.String("risk_level", string(analysis.RiskProfile.RiskLevel)),
			zap.Int("veritas_score", analysis.Veritas.Score))

		uc.recorder.RecordAccount(analysis)
		accounts = append(accounts, analysis)
		reports = append(reports, domain.NewFinsightReport(accountID, analysis.RiskProfile))
	}

	// Step 3: Cross-validation
	found := uc.engine.GenerateAlerts(app, reports, sos)
	if req.SortBySeverity {
		found = domain.SortBySeverity(found)
	}
	uc.recorder.RecordAlerts(found)

	report := &domain.UnderwritingReport{
		RunID:           runID,
		GeneratedAt:     uc.now().UTC(),
		BusinessName:    app.BusinessName,
		Accounts:        accounts,
		Alerts:          found,
		HighestSeverity: domain.HighestSeverity(found),
	}

	log.Info("underwriting run complete",
		zap.Int("accounts", len(accounts)),
		zap.Int("alerts", len(found)),
		zap.String("highest_severity", string(report.HighestSeverity)))

	return report, nil
}

func (uc *UnderwritingUseCase) scoreAccount(ctx context.Context, index int, accountID string, src StatementSource) (domain.AccountAnalysis, error) {
	transactions, err := uc.repo.GetStatement(ctx, src.Path)
	if err != nil {
		return domain.AccountAnalysis{}, fmt.Errorf("could not load statement for account %s: %w", accountID, err)
	}

	profile, err := uc.analyzer.ScoreRisk(transactions, src.OpeningBalance)
	if err != nil {
		return domain.AccountAnalysis{}, fmt.Errorf("could not score account %s: %w", accountID, err)
	}

	veritas, err := uc.analyzer.CalculateVeritasScore(risk.VeritasInputs{
		NSFCount:       profile.NSFCount,
		AverageBalance: profile.AverageDailyBalance,
	}, transactions)
	if err != nil {
		return domain.AccountAnalysis{}, fmt.Errorf("could not compute veritas score for account %s: %w", accountID, err)
	}

	return domain.AccountAnalysis{
		AccountIndex: index,
		AccountID:    accountID,
		Transactions: len(transactions),
		RiskProfile:  profile,
		Veritas:      veritas,
	}, nil
}

type nopRecorder struct{}

func (nopRecorder) RecordAccount(domain.AccountAnalysis) {}
func (nopRecorder) RecordAlerts([]domain.Alert)          {}
