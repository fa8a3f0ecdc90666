package alerts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"underwriting-risk/internal/alerts"
)

func TestNormalizeBusinessName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Acme Widgets, LLC", want: "acme widgets"},
		{in: "  ACME   Widgets Inc. ", want: "acme widgets"},
		{in: "O'Brien & Sons Co.", want: "obrien sons"},
		{in: "Müller Bäckerei, LLC", want: "müller bäckerei"},
		{in: "株式会社トヨタ", want: "株式会社トヨタ"},
		{in: "LLC", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, alerts.NormalizeBusinessName(tt.in), tt.in)
	}
}

func TestNameSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, alerts.NameSimilarity("Acme Widgets LLC", "ACME WIDGETS, INC."))
	assert.Equal(t, 1.0, alerts.NameSimilarity("", ""))
	assert.Equal(t, 1.0, alerts.NameSimilarity("LLC", "llc"))
	assert.Equal(t, 0.0, alerts.NameSimilarity("", "Inc."))
	assert.Equal(t, 0.0, alerts.NameSimilarity("abc", ""))
	assert.Equal(t, 0.0, alerts.NameSimilarity("!!!", "???"))
	assert.InDelta(t, 1-5.0/17.0, alerts.NameSimilarity("Acme Widgets", "Acme Widget Works"), 1e-9)
	assert.Less(t, alerts.NameSimilarity("Blue Harbor Bakery", "Zenith Logistics Corp"), alerts.DefaultNameSimilarityHigh)
}

func TestNameSimilarity_NonLatinScripts(t *testing.T) {
	assert.Equal(t, 1.0, alerts.NameSimilarity("Müller Bäckerei", "MÜLLER BÄCKEREI LLC"))
	assert.InDelta(t, 1-2.0/15.0, alerts.NameSimilarity("Müller Bäckerei", "Mller Bckerei"), 1e-9)
	assert.InDelta(t, 1.0/7.0, alerts.NameSimilarity("株式会社トヨタ", "ソニー株式会社"), 1e-9)
	assert.Less(t, alerts.NameSimilarity("株式会社トヨタ", "ソニー株式会社"), alerts.DefaultNameSimilarityHigh)
}
