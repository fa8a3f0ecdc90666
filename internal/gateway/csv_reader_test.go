package gateway

import (
	"context"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"underwriting-risk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestFileRepository_GetStatement(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.Transaction
		wantErr  bool
	}{
		{
			name: "valid statement",
			csvData: [][]string{
				{"date", "description", "amount"},
				{"2024-01-01", "Customer Deposit", "500.00"},
				{"2024-01-02", "NSF Fee", "-35.00"},
				{"01/03/2024", "Card Purchase", "-1,200.50"},
			},
			expected: []domain.Transaction{
				{Date: mustParseDate("2024-01-01"), Description: "Customer Deposit", Amount: 500, Type: domain.TransactionTypeCredit},
				{Date: mustParseDate("2024-01-02"), Description: "NSF Fee", Amount: -35, Type: domain.TransactionTypeDebit},
				{Date: mustParseDate("2024-01-03"), Description: "Card Purchase", Amount: -1200.50, Type: domain.TransactionTypeDebit},
			},
			wantErr: false,
		},
		{
			name: "columns in any order with running balance",
			csvData: [][]string{
				{"Amount", "Balance", "Description", "Date"},
				{"(40.00)", "$960.00", "Overdraft Charge", "2024-02-01"},
			},
			expected: []domain.Transaction{
				{Date: mustParseDate("2024-02-01"), Description: "Overdraft Charge", Amount: -40, Type: domain.TransactionTypeDebit, Balance: floatPtr(960)},
			},
			wantErr: false,
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"date", "description", "amount"},
			},
			expected: []domain.Transaction{},
			wantErr:  false,
		},
		{
			name: "invalid amount format",
			csvData: [][]string{
				{"date", "description", "amount"},
				{"2024-01-01", "Deposit", "invalid_amount"},
			},
			expected: nil,
			wantErr:  true,
		},
		{
			name: "invalid date format",
			csvData: [][]string{
				{"date", "description", "amount"},
				{"January first", "Deposit", "10"},
			},
			expected: nil,
			wantErr:  true,
		},
		{
			name: "missing amount column",
			csvData: [][]string{
				{"date", "description"},
				{"2024-01-01", "Deposit"},
			},
			expected: nil,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary CSV file
			tmpFile := createTempCSV(t, tt.csvData)

			repo := NewFileRepository(zaptest.NewLogger(t))
			got, err := repo.GetStatement(context.Background(), tmpFile)
			if tt.wantErr {
				assert.Error(t, err, "Expected error but got nil")
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestFileRepository_GetStatement_MalformedRowsAreKept(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := NewFileRepository(zap.New(core))

	tmpFile := createTempCSV(t, [][]string{
		{"date", "description", "amount"},
		{"2024-01-01", "Deposit", ""},
		{"", "Undated fee", "-5"},
	})

	got, err := repo.GetStatement(context.Background(), tmpFile)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, math.IsNaN(got[0].Amount))
	assert.False(t, got[0].HasValidAmount())
	assert.True(t, got[1].Date.IsZero())
	assert.Equal(t, -5.0, got[1].Amount)
	assert.Equal(t, 1, logs.FilterMessage("statement row has no amount").Len())
}

func TestFileRepository_GetStatement_FileErrors(t *testing.T) {
	repo := NewFileRepository(nil)
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.GetStatement(ctx, "nonexistent_file.csv")
		assert.Error(t, err)
	})

	t.Run("file with no header", func(t *testing.T) {
		// Create empty file
		tmpFile, err := os.CreateTemp(t.TempDir(), "empty_*.csv")
		require.NoError(t, err)
		tmpFile.Close()

		_, err = repo.GetStatement(ctx, tmpFile.Name())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.GetStatement(cancelled, createTempCSV(t, [][]string{{"date", "description", "amount"}}))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "12.50", want: 12.5},
		{raw: "-12.50", want: -12.5},
		{raw: "$1,234.56", want: 1234.56},
		{raw: "(99.99)", want: -99.99},
		{raw: "NaN", wantErr: true},
		{raw: "Inf", wantErr: true},
		{raw: "12,5O", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseAmount(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		assert.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

// Helper functions

func createTempCSV(t *testing.T, data [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "statement.csv")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	writer := csv.NewWriter(file)
	require.NoError(t, writer.WriteAll(data))

	return path
}

func mustParseDate(dateStr string) time.Time {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

func floatPtr(v float64) *float64 { return &v }
