package risk_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"underwriting-risk/internal/domain"
	"underwriting-risk/internal/risk"
)

func TestMonthlyDepositStability_EstimateStability(t *testing.T) {
	tests := []struct {
		name    string
		txs     []domain.Transaction
		want    float64
		wantErr error
	}{
		{
			name: "even monthly deposits",
			txs: []domain.Transaction{
				tx("2024-01-03", 2000, "Deposit"),
				tx("2024-01-20", -500, "Rent"),
				tx("2024-02-03", 2000, "Deposit"),
				tx("2024-03-03", 1200, "Deposit"),
				tx("2024-03-17", 800, "Deposit"),
			},
			want: 1,
		},
		{
			name: "empty month in the middle counts as zero",
			txs: []domain.Transaction{
				tx("2024-01-10", 1000, "Deposit"),
				tx("2024-02-10", -200, "Fee"),
				tx("2024-03-10", 1000, "Deposit"),
			},
			want: 1 - math.Sqrt2/2,
		},
		{
			name: "withdrawals only",
			txs: []domain.Transaction{
				tx("2024-01-10", -100, "Fee"),
				tx("2024-02-10", -100, "Fee"),
			},
			want: 0,
		},
		{
			name: "single month of history",
			txs: []domain.Transaction{
				tx("2024-01-02", 500, "Deposit"),
				tx("2024-01-28", 500, "Deposit"),
			},
			wantErr: risk.ErrInsufficientHistory,
		},
		{
			name:    "no usable rows",
			txs:     []domain.Transaction{{Description: "undated", Amount: 10}},
			wantErr: risk.ErrInsufficientHistory,
		},
	}

	estimator := risk.NewMonthlyDepositStability()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := estimator.EstimateStability(tt.txs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-4)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestMonthlyDepositStability_ErraticIncomeClampsToZero(t *testing.T) {
	estimator := &risk.MonthlyDepositStability{MinMonths: 2}

	got, err := estimator.EstimateStability([]domain.Transaction{
		tx("2024-01-15", 10, "Deposit"),
		tx("2024-02-15", 10, "Deposit"),
		tx("2024-03-15", 10, "Deposit"),
		tx("2024-04-15", 50000, "Deposit"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}
