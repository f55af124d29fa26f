package indicator

import (
	"math"
	"time"

	"VolatilityHunter/internal/model"
)

// CAGR computes the trailing compound annual growth rate as a percentage over
// roughly the last years*365.25 days, falling back to the whole series when
// that window holds fewer than two bars. Degenerate inputs (too few bars,
// non-positive prices, zero elapsed time) return 0.0 rather than an error.
func CAGR(bars []model.PriceBar, years float64) float64 {
	if len(bars) < 2 {
		return 0.0
	}
	end := bars[len(bars)-1]
	cutoff := end.Date.Add(-time.Duration(years * 365.25 * 24 * float64(time.Hour)))

	window := bars
	for i, b := range bars {
		if !b.Date.Before(cutoff) {
			window = bars[i:]
			break
		}
	}
	if len(window) < 2 {
		window = bars
	}

	start := window[0]
	actualDays := window[len(window)-1].Date.Sub(start.Date).Hours() / 24
	if actualDays <= 0 || start.Close <= 0 || end.Close <= 0 {
		return 0.0
	}
	return (math.Pow(end.Close/start.Close, 365.25/actualDays) - 1) * 100
}
