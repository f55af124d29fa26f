package model

import "time"

// Signal is the classification outcome for one ticker.
type Signal string

const (
	SignalBuy              Signal = "BUY"
	SignalSell             Signal = "SELL"
	SignalHold             Signal = "HOLD"
	SignalInsufficientData Signal = "INSUFFICIENT_DATA"
)

// IndicatorSnapshot holds the indicator values computed at the most recent
// bar of a series. Numeric pointer fields are nil while their window is not
// yet filled. Snapshots are recomputed on every evaluation, never persisted.
type IndicatorSnapshot struct {
	Date  time.Time
	Price float64

	SMA25  *float64
	SMA50  *float64
	SMA100 *float64
	SMA200 *float64

	StochasticK *float64
	StochasticD *float64

	VolumeSMA30 *float64
	VolumeRatio *float64

	CAGR float64

	WPattern          bool
	EngulfingCandle   bool
	HeadAndShoulders  bool
	KAboveD           bool
	StochasticTrendUp bool
	VolumeOK          bool
	VolumeConsistent  bool
	VolumeIncreasing  bool
	IsPowerStock      bool
	IsFriday          bool
}

// SignalResult is the full output of classifying one ticker.
type SignalResult struct {
	Ticker       string
	Signal       Signal
	Reason       string
	Indicators   IndicatorSnapshot
	QualityScore float64
}
