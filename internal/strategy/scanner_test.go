package strategy

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VolatilityHunter/internal/marketdata"
	"VolatilityHunter/internal/model"
)

func TestScan_Buckets(t *testing.T) {
	scanner := NewScanner(newTestClassifier(), zerolog.Nop())

	invalid := model.PriceSeries{
		Ticker: "BAD",
		Bars:   []model.PriceBar{{Date: time.Now(), Open: -1, High: 1, Low: -2, Close: 0.5, Volume: 100}},
	}
	data := map[string]model.PriceSeries{
		"UP":    marketdata.TrendingSeries("UP", 252, 100, 150, 3, 1_000_000),
		"FLAT":  marketdata.FlatSeries("FLAT", 252, 100, 2, 1000),
		"SHORT": marketdata.FlatSeries("SHORT", 50, 100, 2, 1000),
		"BAD":   invalid,
	}

	results := scanner.Scan(data)

	require.Len(t, results.Buy, 1)
	assert.Equal(t, "UP", results.Buy[0].Ticker)
	require.Len(t, results.Hold, 1)
	assert.Equal(t, "FLAT", results.Hold[0].Ticker)
	assert.Empty(t, results.Sell)
	assert.Len(t, results.Errors, 2, "too-short and invalid series both land in errors")
}

func TestScan_FillsMissingTicker(t *testing.T) {
	scanner := NewScanner(newTestClassifier(), zerolog.Nop())

	series := marketdata.FlatSeries("", 252, 100, 2, 1000)
	results := scanner.Scan(map[string]model.PriceSeries{"KO": series})

	require.Len(t, results.Hold, 1)
	assert.Equal(t, "KO", results.Hold[0].Ticker)
}

func TestScanSummary(t *testing.T) {
	results := ScanResults{
		Buy:    []model.SignalResult{{Ticker: "A"}, {Ticker: "B"}},
		Sell:   []model.SignalResult{{Ticker: "C"}},
		Hold:   []model.SignalResult{{Ticker: "D"}},
		Errors: []model.SignalResult{{Ticker: "E"}},
	}

	s := results.Summary()
	assert.Equal(t, 5, s.TotalScanned)
	assert.Equal(t, 2, s.BuySignals)
	assert.Equal(t, 1, s.SellSignals)
	assert.Equal(t, 1, s.HoldSignals)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, []string{"A", "B"}, s.BuyList)
	assert.Equal(t, []string{"C"}, s.SellList)
}

func TestRankedBuys(t *testing.T) {
	results := ScanResults{
		Buy: []model.SignalResult{
			{Ticker: "LOW", QualityScore: 5},
			{Ticker: "TOP", QualityScore: 12},
			{Ticker: "MID", QualityScore: 8},
		},
	}

	ranked := results.RankedBuys()
	require.Len(t, ranked, 3)
	assert.Equal(t, "TOP", ranked[0].Ticker)
	assert.Equal(t, "MID", ranked[1].Ticker)
	assert.Equal(t, "LOW", ranked[2].Ticker)

	// The scan buckets keep their original order.
	assert.Equal(t, "LOW", results.Buy[0].Ticker)
}
