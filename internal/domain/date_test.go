package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"underwriting-risk/internal/domain"
)

func TestCalendarDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.CalendarDate
		wantErr bool
	}{
		{name: "iso date", input: `"2021-03-15"`, want: domain.NewCalendarDate(2021, time.March, 15)},
		{name: "us date", input: `"03/15/2021"`, want: domain.NewCalendarDate(2021, time.March, 15)},
		{name: "rfc3339 truncated to day", input: `"2021-03-15T18:45:00Z"`, want: domain.NewCalendarDate(2021, time.March, 15)},
		{name: "null", input: `null`, want: domain.CalendarDate{}},
		{name: "empty string", input: `""`, want: domain.CalendarDate{}},
		{name: "garbage", input: `"not-a-date"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.CalendarDate
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %v want %v", got, tt.want)
		})
	}
}

func TestApplicationData_DecodesNestedSummaries(t *testing.T) {
	payload := `{
		"businessName": "Acme Plumbing LLC",
		"statedAnnualRevenue": 120000,
		"statedTimeInBusinessMonths": 36,
		"businessStartDate": "2021-01-01",
		"requestedAmount": 50000,
		"nsfAnalysis": {"nsfCount": 2},
		"balanceAnalysis": {"averageBalance": 4200.5, "negativeDayCount": 3}
	}`

	var app domain.ApplicationData
	require.NoError(t, json.Unmarshal([]byte(payload), &app))

	assert.Equal(t, "Acme Plumbing LLC", app.BusinessName)
	assert.Equal(t, 120000.0, app.StatedAnnualRevenue)
	require.NotNil(t, app.NSFAnalysis.NSFCount)
	assert.Equal(t, 2, *app.NSFAnalysis.NSFCount)
	require.NotNil(t, app.BalanceAnalysis.NegativeDayCount)
	assert.Equal(t, 3, *app.BalanceAnalysis.NegativeDayCount)
	assert.Equal(t, 2021, app.BusinessStartDate.Year())
}

func TestSOSVerificationResult_Known(t *testing.T) {
	var missing *domain.SOSVerificationResult
	assert.False(t, missing.Known())
	assert.False(t, (&domain.SOSVerificationResult{}).Known())
	assert.True(t, (&domain.SOSVerificationResult{Status: "Active"}).Known())
}
