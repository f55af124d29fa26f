package indicator

import (
	"fmt"

	"VolatilityHunter/internal/model"
)

// WFormation detects a basic W bottom over the trailing lookback bars: the
// two most recent local lows with the right one higher than the left.
func WFormation(bars []model.PriceBar, lookback int) (bool, string) {
	if len(bars) < lookback {
		return false, "insufficient data for W detection"
	}
	recent := bars[len(bars)-lookback:]

	var lows []float64
	for i := 1; i < len(recent)-1; i++ {
		if recent[i].Low < recent[i-1].Low && recent[i].Low < recent[i+1].Low {
			lows = append(lows, recent[i].Low)
		}
	}
	if len(lows) < 2 {
		return false, "no W pattern detected"
	}
	left, right := lows[len(lows)-2], lows[len(lows)-1]
	return right > left, fmt.Sprintf("W pattern: left=%.2f, right=%.2f", left, right)
}

// EngulfingCandle detects an engulfing bar: the latest candle covers the
// previous candle's full range with a larger body and minimal wicks (body at
// least 70 percent of the range).
func EngulfingCandle(bars []model.PriceBar) (bool, string) {
	if len(bars) < 2 {
		return false, "insufficient data for candlestick analysis"
	}
	prev, curr := bars[len(bars)-2], bars[len(bars)-1]

	prevBody := abs(prev.Close - prev.Open)
	currBody := abs(curr.Close - curr.Open)
	currRange := curr.High - curr.Low

	rangeEngulfed := curr.High >= prev.High && curr.Low <= prev.Low
	bodyEngulfed := currBody > prevBody

	bodyRatio := 0.0
	if currRange > 0 {
		bodyRatio = currBody / currRange
	}
	minimalWicks := bodyRatio >= 0.7

	ok := rangeEngulfed && bodyEngulfed && minimalWicks
	detail := fmt.Sprintf("range_engulfed=%t, body_engulfed=%t, body_ratio=%.2f", rangeEngulfed, bodyEngulfed, bodyRatio)
	return ok, detail
}

// HeadAndShoulders detects the bearish reversal shape over the trailing
// lookback bars: three recent peaks where the middle one is highest, the
// shoulders are within 20 percent of each other, and the right shoulder is lower
// than the left.
func HeadAndShoulders(bars []model.PriceBar, lookback int) (bool, string) {
	if len(bars) < lookback {
		return false, "insufficient data for head-and-shoulders analysis"
	}
	recent := bars[len(bars)-lookback:]

	var peaks []float64
	for i := 1; i < len(recent)-1; i++ {
		if recent[i].High > recent[i-1].High && recent[i].High > recent[i+1].High {
			peaks = append(peaks, recent[i].High)
		}
	}
	if len(peaks) < 3 {
		return false, "insufficient peaks for head-and-shoulders"
	}

	left := peaks[len(peaks)-3]
	head := peaks[len(peaks)-2]
	right := peaks[len(peaks)-1]

	headHighest := head > left && head > right
	shoulderGap := abs(left-right) / max(left, right)
	similarShoulders := shoulderGap < 0.2
	necklineDeclining := right < left

	ok := headHighest && similarShoulders && necklineDeclining
	detail := fmt.Sprintf("head=%.2f, left=%.2f, right=%.2f, head_highest=%t, neckline_declining=%t",
		head, left, right, headHighest, necklineDeclining)
	return ok, detail
}

// PowerStock reports whether an overbought name still deserves holding: %K
// above 80, price above the 25/50/100/200-day averages, and volume more than
// 1.5x its 30-day average.
func PowerStock(price, volume, stochK float64, smas []*float64, volumeSMA30 *float64) (bool, string) {
	overbought := stochK > 80
	if !overbought {
		return false, fmt.Sprintf("not overbought (stochastic K %.2f)", stochK)
	}

	aboveAll := true
	for _, sma := range smas {
		if sma == nil || price <= *sma {
			aboveAll = false
			break
		}
	}

	highVolume := volumeSMA30 != nil && volume > *volumeSMA30*1.5

	ok := aboveAll && highVolume
	detail := fmt.Sprintf("overbought=%t, above_all_mas=%t, high_volume=%t, K=%.2f", overbought, aboveAll, highVolume, stochK)
	return ok, detail
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
