package risk_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"underwriting-risk/internal/domain"
	"underwriting-risk/internal/risk"
)

func TestAnalyzer_ScoreRisk(t *testing.T) {
	tests := []struct {
		name           string
		transactions   []domain.Transaction
		openingBalance float64
		wantScore      int
		wantLevel      domain.RiskLevel
		wantSignals    []string
		wantRatio      float64
	}{
		{
			name: "healthy account",
			transactions: []domain.Transaction{
				tx("2024-01-01", 3000, "Customer payment"),
				tx("2024-01-02", -1000, "Payroll"),
			},
			openingBalance: 5000,
			wantScore:      0,
			wantLevel:      domain.RiskLevelVeryLow,
			wantSignals:    []string{},
			wantRatio:      1000.0 / 3000.0,
		},
		{
			name: "low balance only",
			transactions: []domain.Transaction{
				tx("2024-01-01", 500, "Deposit"),
				tx("2024-01-02", -100, "Supplies"),
			},
			openingBalance: 100,
			wantScore:      20,
			wantLevel:      domain.RiskLevelLow,
			wantSignals:    []string{risk.SignalLowAverageBalance},
			wantRatio:      0.2,
		},
		{
			name: "one nsf and low balance",
			transactions: []domain.Transaction{
				tx("2024-01-01", 500, "Deposit"),
				tx("2024-01-02", -30, "Returned Item Fee"),
			},
			openingBalance: 100,
			wantScore:      50,
			wantLevel:      domain.RiskLevelMedium,
			wantSignals:    []string{risk.SignalNSFIncidents, risk.SignalLowAverageBalance},
			wantRatio:      0.06,
		},
		{
			name: "five nsf and negative balance clamps at 100",
			transactions: []domain.Transaction{
				tx("2024-01-01", -35, "NSF Fee"),
				tx("2024-01-02", -35, "NSF Fee"),
				tx("2024-01-03", -35, "NSF Fee"),
				tx("2024-01-04", -35, "NSF Fee"),
				tx("2024-01-05", -35, "NSF Fee"),
			},
			openingBalance: -500,
			wantScore:      100,
			wantLevel:      domain.RiskLevelHigh,
			wantSignals: []string{
				risk.SignalNSFIncidents,
				risk.SignalLowAverageBalance,
				risk.SignalHighWithdrawalRatio,
				risk.SignalNegativeAverageBalance,
			},
			wantRatio: 1,
		},
	}

	analyzer := risk.NewAnalyzer(risk.DefaultConfig(), nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := analyzer.ScoreRisk(tt.transactions, tt.openingBalance)
			require.NoError(t, err)

			assert.Equal(t, tt.wantScore, got.RiskScore)
			assert.Equal(t, tt.wantLevel, got.RiskLevel)
			assert.Equal(t, tt.wantSignals, got.Signals)
			assert.InDelta(t, tt.wantRatio, got.WithdrawalRatio, 1e-9)
			assert.LessOrEqual(t, got.RiskScore, 100)
		})
	}
}

func TestAnalyzer_ScoreRisk_Profile(t *testing.T) {
	analyzer := risk.NewAnalyzer(risk.DefaultConfig(), nil, nil)

	got, err := analyzer.ScoreRisk([]domain.Transaction{
		tx("2024-01-01", 500, "Deposit"),
		tx("2024-01-02", -200, "Overdraft charge"),
	}, 1000)
	require.NoError(t, err)

	assert.Equal(t, 1, got.NSFCount)
	assert.Equal(t, 500.0, got.TotalDeposits)
	assert.Equal(t, 200.0, got.TotalWithdrawals)
	assert.Equal(t, 1400.0, got.AverageDailyBalance)
	assert.Equal(t, 2, got.PeriodDays)
	assert.Equal(t, 0.4, got.WithdrawalRatio)
	assert.Equal(t, 30, got.RiskScore)
	assert.Equal(t, domain.RiskLevelLow, got.RiskLevel)
}

func TestAnalyzer_ScoreRisk_Deterministic(t *testing.T) {
	analyzer := risk.NewAnalyzer(risk.DefaultConfig(), nil, nil)
	txs := []domain.Transaction{
		tx("2024-02-10", -120.45, "Bounce fee"),
		tx("2024-02-01", 2200, "Deposit"),
		tx("2024-02-15", -1800, "Rent"),
		tx("2024-02-15", math.NaN(), "Unreadable"),
	}

	first, err := analyzer.ScoreRisk(txs, 300)
	require.NoError(t, err)
	second, err := analyzer.ScoreRisk(txs, 300)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzer_ScoreRisk_InvalidOpeningBalance(t *testing.T) {
	analyzer := risk.NewAnalyzer(risk.DefaultConfig(), nil, nil)

	_, err := analyzer.ScoreRisk(nil, math.NaN())
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAnalyzer_ScoreRisk_NoDepositsMeansFullBurn(t *testing.T) {
	analyzer := risk.NewAnalyzer(risk.DefaultConfig(), nil, nil)

	got, err := analyzer.ScoreRisk(nil, 5000)
	require.NoError(t, err)

	assert.Equal(t, 1.0, got.WithdrawalRatio)
	assert.Equal(t, 25, got.RiskScore)
	assert.Equal(t, []string{risk.SignalHighWithdrawalRatio}, got.Signals)
}

func TestAnalyzer_CompositeScore_MonotonicInNSF(t *testing.T) {
	analyzer := risk.NewAnalyzer(risk.DefaultConfig(), nil, nil)

	for _, fixture := range []struct {
		balance float64
		ratio   float64
	}{
		{balance: 5000, ratio: 0.3},
		{balance: 500, ratio: 0.9},
		{balance: -100, ratio: 1},
	} {
		previous := -1
		for nsf := 0; nsf <= 10; nsf++ {
			score, _ := analyzer.CompositeScore(nsf, fixture.balance, fixture.ratio)
			assert.GreaterOrEqual(t, score, previous, "nsf=%d balance=%v", nsf, fixture.balance)
			assert.LessOrEqual(t, score, 100)
			previous = score
		}
	}
}

func TestAnalyzer_CompositeScore_Thresholds(t *testing.T) {
	analyzer := risk.NewAnalyzer(risk.DefaultConfig(), nil, nil)

	score, _ := analyzer.CompositeScore(0, 1000, 0.8)
	assert.Equal(t, 0, score, "thresholds are strict")

	score, _ = analyzer.CompositeScore(0, 999.99, 0.81)
	assert.Equal(t, 45, score)
}

func TestRiskBands_Level(t *testing.T) {
	bands := risk.DefaultConfig().Bands
	tests := []struct {
		score int
		want  domain.RiskLevel
	}{
		{0, domain.RiskLevelVeryLow},
		{19, domain.RiskLevelVeryLow},
		{20, domain.RiskLevelLow},
		{39, domain.RiskLevelLow},
		{40, domain.RiskLevelMedium},
		{79, domain.RiskLevelMedium},
		{80, domain.RiskLevelHigh},
		{100, domain.RiskLevelHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bands.Level(tt.score), "score %d", tt.score)
	}
}
