package marketdata

import (
	"math"
	"time"

	"VolatilityHunter/internal/model"
)

// MockProvider serves fixed series for development and tests. Tickers
// without an explicit series get a deterministic synthetic uptrend.
type MockProvider struct {
	Series map[string]model.PriceSeries
}

func NewMockProvider() *MockProvider {
	return &MockProvider{Series: make(map[string]model.PriceSeries)}
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Load(ticker string) (model.PriceSeries, error) {
	if s, ok := m.Series[ticker]; ok {
		return s, nil
	}
	return TrendingSeries(ticker, 252, 100, 150, 3, 1_000_000), nil
}

// TrendingSeries builds a deterministic rising series: a steady climb from
// start toward end with accelerating gains over the final dozen bars, fixed
// wick width, and gently growing volume. Dates end yesterday, one calendar
// day apart.
func TrendingSeries(ticker string, n int, start, end, wick, baseVolume float64) model.PriceSeries {
	if n < 2 {
		return model.PriceSeries{Ticker: ticker}
	}
	tail := 12
	if tail > n/2 {
		tail = n / 2
	}
	steady := n - tail

	// Accelerating increments over the tail keep the oscillator rising.
	tailTotal := 0.0
	for j := 1; j <= tail; j++ {
		tailTotal += float64(j)
	}
	span := end - start
	tailSpan := span * 0.2
	steadySpan := span - tailSpan

	first := time.Now().AddDate(0, 0, -n)
	bars := make([]model.PriceBar, n)
	price := start
	for i := 0; i < n; i++ {
		if i > 0 {
			if i < steady {
				price += steadySpan / float64(steady-1)
			} else {
				j := float64(i - steady + 1)
				price += tailSpan * j / tailTotal
			}
		}
		c := roundCent(price)
		bars[i] = model.PriceBar{
			Date:   first.AddDate(0, 0, i),
			Open:   roundCent(c - wick/2),
			High:   roundCent(c + wick),
			Low:    roundCent(c - wick),
			Close:  c,
			Volume: baseVolume + 1000*float64(i),
		}
	}
	return model.PriceSeries{Ticker: ticker, Bars: bars}
}

// FlatSeries builds a series whose close never moves, useful for exercising
// the growth pre-filter.
func FlatSeries(ticker string, n int, price, wick, volume float64) model.PriceSeries {
	first := time.Now().AddDate(0, 0, -n)
	bars := make([]model.PriceBar, n)
	for i := 0; i < n; i++ {
		bars[i] = model.PriceBar{
			Date:   first.AddDate(0, 0, i),
			Open:   price,
			High:   price + wick,
			Low:    price - wick,
			Close:  price,
			Volume: volume,
		}
	}
	return model.PriceSeries{Ticker: ticker, Bars: bars}
}

func roundCent(v float64) float64 {
	return math.Round(v*100) / 100
}
