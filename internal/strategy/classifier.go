package strategy

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"VolatilityHunter/internal/indicator"
	"VolatilityHunter/internal/model"
)

// Classifier turns a price series into a BUY/SELL/HOLD decision by running
// the indicator pipeline and a conjunction of checklist gates.
type Classifier struct {
	params   Params
	earnings EarningsRiskChecker
	now      func() time.Time
	log      zerolog.Logger
}

// NewClassifier creates a classifier. A nil earnings checker falls back to
// the always-safe stub.
func NewClassifier(params Params, earnings EarningsRiskChecker, log zerolog.Logger) *Classifier {
	if earnings == nil {
		earnings = AlwaysSafeEarnings{}
	}
	return &Classifier{
		params:   params,
		earnings: earnings,
		now:      time.Now,
		log:      log.With().Str("component", "classifier").Logger(),
	}
}

// Classify evaluates one ticker's series and returns the signal with its
// justification, indicator snapshot, and ranking score.
func (c *Classifier) Classify(series model.PriceSeries) model.SignalResult {
	res := model.SignalResult{
		Ticker: series.Ticker,
		Signal: model.SignalInsufficientData,
	}
	if series.Len() < c.params.SMAPeriod {
		res.Reason = "not enough history for analysis"
		return res
	}

	bars := series.Bars
	latest := bars[len(bars)-1]
	closes := series.Closes()

	sma25 := indicator.SMA(closes, 25)
	sma50 := indicator.SMA(closes, 50)
	sma100 := indicator.SMA(closes, 100)
	sma200 := indicator.SMA(closes, c.params.SMAPeriod)
	volSMA30 := indicator.SMA(series.Volumes(), 30)
	k, d := indicator.Stochastic(bars, c.params.StochasticKPeriod, c.params.StochasticDPeriod, c.params.StochasticSmooth)
	cagr := indicator.CAGR(bars, c.params.CAGRYears)

	snap := model.IndicatorSnapshot{
		Date:        latest.Date,
		Price:       latest.Close,
		SMA25:       optional(sma25),
		SMA50:       optional(sma50),
		SMA100:      optional(sma100),
		SMA200:      optional(sma200),
		StochasticK: optional(k),
		StochasticD: optional(d),
		VolumeSMA30: optional(volSMA30),
		CAGR:        cagr,
		IsFriday:    c.now().Weekday() == time.Friday,
	}
	if snap.VolumeSMA30 != nil && *snap.VolumeSMA30 > 0 {
		ratio := latest.Volume / *snap.VolumeSMA30
		snap.VolumeRatio = &ratio
	}
	res.Indicators = snap

	// Ranking score: growth scaled by where the oscillator sits. Falls back
	// to raw CAGR when the oscillator is not yet available.
	res.QualityScore = cagr
	if snap.StochasticK != nil {
		res.QualityScore = cagr * (*snap.StochasticK / 100.0)
	}

	if snap.SMA200 == nil || snap.StochasticK == nil {
		res.Reason = "indicators not yet computable"
		return res
	}

	if cagr < c.params.MinCAGR {
		res.Signal = model.SignalHold
		res.Reason = fmt.Sprintf("CAGR (%.2f%%) below minimum (%.1f%%)", cagr, c.params.MinCAGR)
		return res
	}

	volumeOK, volumeDetail := indicator.VolumeQuality(bars, 30)
	consistent, aboveMean, increasing, consistencyDetail := indicator.VolumeConsistency(bars, 5)
	wPattern, wDetail := indicator.WFormation(bars, 20)
	engulfing, engulfingDetail := indicator.EngulfingCandle(bars)
	kAboveD, trendUp, stochDetail := indicator.StochasticCross(k, d, c.params.TrendDays)
	headAndShoulders, hnsDetail := indicator.HeadAndShoulders(bars, 60)
	earningsSafe, earningsDetail := c.earnings.Check(series.Ticker)
	powerStock, powerDetail := indicator.PowerStock(
		latest.Close, latest.Volume, *snap.StochasticK,
		[]*float64{snap.SMA25, snap.SMA50, snap.SMA100, snap.SMA200},
		snap.VolumeSMA30,
	)

	snap.WPattern = wPattern
	snap.EngulfingCandle = engulfing
	snap.HeadAndShoulders = headAndShoulders
	snap.KAboveD = kAboveD
	snap.StochasticTrendUp = trendUp
	snap.VolumeOK = volumeOK
	snap.VolumeConsistent = consistent
	snap.VolumeIncreasing = increasing
	snap.IsPowerStock = powerStock
	res.Indicators = snap

	price := latest.Close
	stochK := *snap.StochasticK
	priceAboveTrend := price > *snap.SMA200
	inSweetSpot := stochK >= c.params.SweetSpotLower && stochK <= c.params.SweetSpotUpper

	var failures []string
	if !priceAboveTrend {
		failures = append(failures, "price below SMA 200")
	}
	if !inSweetSpot {
		failures = append(failures, fmt.Sprintf("stochastic K (%.2f) outside sweet spot", stochK))
	}
	if !kAboveD {
		failures = append(failures, fmt.Sprintf("stochastic K not above D (%s)", stochDetail))
	}
	if !trendUp {
		failures = append(failures, fmt.Sprintf("stochastics not trending up (%s)", stochDetail))
	}
	if !volumeOK {
		failures = append(failures, fmt.Sprintf("volume insufficient (%s)", volumeDetail))
	}
	if !consistent || !aboveMean {
		failures = append(failures, fmt.Sprintf("volume inconsistent (%s)", consistencyDetail))
	}
	if !earningsSafe {
		failures = append(failures, fmt.Sprintf("earnings risk (%s)", earningsDetail))
	}

	if len(failures) == 0 {
		parts := []string{
			"CHECKLIST PASS",
			fmt.Sprintf("price above SMA 200 (%.2f)", *snap.SMA200),
			fmt.Sprintf("stochastic K (%.2f) in sweet spot with K>D and uptrend", stochK),
			fmt.Sprintf("volume confirmed (%s) and consistent (%s)", volumeDetail, consistencyDetail),
			fmt.Sprintf("earnings safe (%s)", earningsDetail),
		}
		if engulfing {
			parts = append(parts, fmt.Sprintf("BONUS: engulfing candle (%s)", engulfingDetail))
		}
		if wPattern {
			parts = append(parts, fmt.Sprintf("BONUS: W pattern (%s)", wDetail))
		}
		if increasing {
			parts = append(parts, "BONUS: volume increasing")
		}
		res.Signal = model.SignalBuy
		res.Reason = strings.Join(parts, " | ")
		res.QualityScore *= 1.5
		return res
	}

	var sellReasons []string
	if !priceAboveTrend {
		sellReasons = append(sellReasons, "price below SMA 200 (trend break)")
	}
	if headAndShoulders {
		sellReasons = append(sellReasons, fmt.Sprintf("head-and-shoulders pattern detected (%s)", hnsDetail))
	}
	if stochK < c.params.SweetSpotLower {
		sellReasons = append(sellReasons, fmt.Sprintf("stochastic breakdown (K %.2f below %.0f)", stochK, c.params.SweetSpotLower))
	}
	if len(sellReasons) > 0 {
		res.Signal = model.SignalSell
		res.Reason = strings.Join(sellReasons, " | ")
		return res
	}

	if powerStock {
		res.Signal = model.SignalHold
		res.Reason = fmt.Sprintf("POWER STOCK - holding overbought strong stock (%s)", powerDetail)
		res.QualityScore *= 1.2
		return res
	}

	if snap.IsFriday {
		res.Signal = model.SignalHold
		res.Reason = fmt.Sprintf("FRIDAY - profit taking day | checklist fail: %s", strings.Join(failures, " | "))
		return res
	}

	res.Signal = model.SignalHold
	res.Reason = fmt.Sprintf("checklist fail: %s", strings.Join(failures, " | "))
	return res
}

func optional(values []float64) *float64 {
	if v, ok := indicator.Last(values); ok {
		return &v
	}
	return nil
}
