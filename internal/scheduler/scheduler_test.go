package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VolatilityHunter/internal/marketdata"
	"VolatilityHunter/internal/model"
	"VolatilityHunter/internal/portfolio"
	"VolatilityHunter/internal/recorder"
	"VolatilityHunter/internal/sector"
	"VolatilityHunter/internal/strategy"
)

// flakyProvider fails configured tickers and delegates the rest.
type flakyProvider struct {
	inner   marketdata.Provider
	failing map[string]bool
}

func (p *flakyProvider) Name() string { return "flaky" }

func (p *flakyProvider) Load(ticker string) (model.PriceSeries, error) {
	if p.failing[ticker] {
		return model.PriceSeries{}, fmt.Errorf("no data for %s", ticker)
	}
	return p.inner.Load(ticker)
}

// captureNotifier records the last report instead of delivering it.
type captureNotifier struct {
	subject string
	body    string
	sent    int
}

func (c *captureNotifier) Send(_ context.Context, subject, body string) error {
	c.subject = subject
	c.body = body
	c.sent++
	return nil
}

// memoryRecorder counts recorded events.
type memoryRecorder struct {
	scans, signals, trades, snapshots int
}

func (m *memoryRecorder) RecordScan(*recorder.ScanEvent) error         { m.scans++; return nil }
func (m *memoryRecorder) RecordSignal(*recorder.SignalEvent) error     { m.signals++; return nil }
func (m *memoryRecorder) RecordTrade(*recorder.TradeEvent) error       { m.trades++; return nil }
func (m *memoryRecorder) RecordSnapshot(*recorder.SnapshotEvent) error { m.snapshots++; return nil }
func (m *memoryRecorder) Close() error                                 { return nil }

func TestRunCycle(t *testing.T) {
	mock := marketdata.NewMockProvider()
	mock.Series["FLAT"] = marketdata.FlatSeries("FLAT", 252, 100, 2, 1000)
	provider := &flakyProvider{inner: mock, failing: map[string]bool{"BAD": true}}

	classifier := strategy.NewClassifier(strategy.DefaultParams(), nil, zerolog.Nop())
	scanner := strategy.NewScanner(classifier, zerolog.Nop())

	store := portfolio.NewStore(filepath.Join(t.TempDir(), "portfolio.json"), zerolog.Nop())
	engine := portfolio.NewEngine(portfolio.DefaultConfig(), store, sector.DefaultCatalog(), zerolog.Nop())

	rec := &memoryRecorder{}
	capture := &captureNotifier{}

	s := New(context.Background(), provider, []string{"UP", "FLAT", "BAD"}, scanner, engine, rec, capture, zerolog.Nop())
	s.RunCycle()

	// UP gets the default synthetic uptrend and is bought; BAD is skipped.
	summary := engine.Summary(nil)
	assert.Equal(t, 1, summary.NumPositions)
	assert.Contains(t, engine.HeldTickers(), "UP")
	assert.InDelta(t, 95000.0, summary.Cash, 1e-9)

	assert.Equal(t, 1, rec.scans)
	assert.Equal(t, 1, rec.signals, "one BUY, no SELLs")
	assert.Equal(t, 1, rec.trades)
	assert.Equal(t, 1, rec.snapshots)

	require.Equal(t, 1, capture.sent)
	assert.Contains(t, capture.subject, "1 BUY")
	assert.Contains(t, capture.body, "BOUGHT UP")
}

func TestRegister_BadCronExpression(t *testing.T) {
	s := New(context.Background(), marketdata.NewMockProvider(), nil, nil, nil, recorder.NewNoopRecorder(), &captureNotifier{}, zerolog.Nop())
	assert.Error(t, s.Register("not a cron spec"))
	assert.NoError(t, s.Register("0 0 22 * * 1-5"))

	// Registered but never started, so nothing fires.
	s.Stop()
}
