package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"VolatilityHunter/internal/model"
)

func barAt(date time.Time, close float64) model.PriceBar {
	return model.PriceBar{Date: date, Open: close, High: close + 1, Low: close - 1, Close: close, Volume: 1000}
}

func TestCAGR_DoublingInOneYear(t *testing.T) {
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	bars := []model.PriceBar{
		barAt(end.AddDate(0, 0, -365), 100),
		barAt(end, 200),
	}
	// 365 elapsed days annualised over 365.25 gives slightly over 100%.
	assert.InDelta(t, 100.09, CAGR(bars, 2), 0.1)
}

func TestCAGR_TrailingWindowOnly(t *testing.T) {
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	bars := []model.PriceBar{
		barAt(end.AddDate(0, 0, -1000), 50), // outside the two-year window
		barAt(end.AddDate(0, 0, -600), 100),
		barAt(end, 200),
	}
	// Growth measured from the 600-day-old bar, not the 1000-day-old one.
	assert.InDelta(t, 52.49, CAGR(bars, 2), 0.2)
}

func TestCAGR_Degenerate(t *testing.T) {
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, CAGR(nil, 2))
	assert.Equal(t, 0.0, CAGR([]model.PriceBar{barAt(end, 100)}, 2))

	sameDay := []model.PriceBar{barAt(end, 100), barAt(end, 110)}
	assert.Equal(t, 0.0, CAGR(sameDay, 2))
}

func TestCAGR_FlatSeriesIsZero(t *testing.T) {
	end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	bars := []model.PriceBar{
		barAt(end.AddDate(0, 0, -365), 100),
		barAt(end, 100),
	}
	assert.InDelta(t, 0.0, CAGR(bars, 2), 1e-9)
}
