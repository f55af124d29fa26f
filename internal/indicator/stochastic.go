package indicator

import (
	"fmt"
	"math"

	"VolatilityHunter/internal/model"
)

// Stochastic computes the smoothed stochastic oscillator. Raw %K compares the
// close to its trailing kPeriod high/low range; the returned %K is an SMA of
// raw %K over smooth bars and %D is an SMA of %K over dPeriod bars. A bar
// whose range is flat yields NaN for that bar rather than an error.
func Stochastic(bars []model.PriceBar, kPeriod, dPeriod, smooth int) (k, d []float64) {
	raw := make([]float64, len(bars))
	for i := range raw {
		raw[i] = math.NaN()
	}
	for i := kPeriod - 1; i < len(bars); i++ {
		lo := math.Inf(1)
		hi := math.Inf(-1)
		for j := i - kPeriod + 1; j <= i; j++ {
			if bars[j].Low < lo {
				lo = bars[j].Low
			}
			if bars[j].High > hi {
				hi = bars[j].High
			}
		}
		if hi == lo {
			continue // flat range, leave NaN
		}
		raw[i] = 100 * (bars[i].Close - lo) / (hi - lo)
	}
	k = SMA(raw, smooth)
	d = SMA(k, dPeriod)
	return k, d
}

// StochasticCross inspects the position and short-term direction of the
// oscillator: whether %K sits above %D at the latest bar, and whether both
// lines are higher than they were days bars ago.
func StochasticCross(k, d []float64, days int) (kAboveD, trendUp bool, detail string) {
	currK, okK := Last(k)
	currD, okD := Last(d)
	if !okK || !okD {
		return false, false, "stochastic not yet available"
	}
	pastK, okPK := At(k, days)
	pastD, okPD := At(d, days)
	if okPK && okPD {
		trendUp = currK > pastK && currD > pastD
	}
	kAboveD = currK > currD
	detail = fmt.Sprintf("K=%.2f, D=%.2f, K>D=%t, trend_up=%t", currK, currD, kAboveD, trendUp)
	return kAboveD, trendUp, detail
}
