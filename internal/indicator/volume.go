package indicator

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"VolatilityHunter/internal/model"
)

// VolumeQuality checks whether the latest volume is at or above its trailing
// period-day average.
func VolumeQuality(bars []model.PriceBar, period int) (bool, string) {
	if len(bars) < period {
		return false, "insufficient volume history"
	}
	series := model.PriceSeries{Bars: bars}
	avg, ok := Last(SMA(series.Volumes(), period))
	if !ok || avg == 0 {
		return false, "invalid volume data"
	}
	ratio := bars[len(bars)-1].Volume / avg
	return ratio >= 1.0, fmt.Sprintf("volume ratio %.2f", ratio)
}

// VolumeConsistency examines the trailing days of volume. The volume is
// consistent when every day sits within two standard deviations of the window
// mean; aboveMean reports whether the latest day exceeds that mean, and
// increasing whether the window is strictly rising.
func VolumeConsistency(bars []model.PriceBar, days int) (consistent, aboveMean, increasing bool, detail string) {
	if len(bars) < days {
		return false, false, false, "insufficient volume history"
	}
	recent := make([]float64, days)
	for i := 0; i < days; i++ {
		recent[i] = bars[len(bars)-days+i].Volume
	}

	mean := stat.Mean(recent, nil)
	sd := stat.StdDev(recent, nil)

	consistent = true
	for _, v := range recent {
		if diff := v - mean; diff > 2*sd || diff < -2*sd {
			consistent = false
			break
		}
	}

	increasing = true
	for i := 1; i < days; i++ {
		if recent[i] <= recent[i-1] {
			increasing = false
			break
		}
	}

	aboveMean = recent[days-1] > mean
	detail = fmt.Sprintf("consistent=%t, increasing=%t, above_mean=%t", consistent, increasing, aboveMean)
	return consistent, aboveMean, increasing, detail
}
