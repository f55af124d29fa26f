package strategy

// Params holds the tunable knobs of the trading checklist.
type Params struct {
	SMAPeriod         int     // minimum history and trend filter window
	StochasticKPeriod int
	StochasticDPeriod int
	StochasticSmooth  int
	SweetSpotLower    float64 // stochastic %K lower bound for a BUY
	SweetSpotUpper    float64 // stochastic %K upper bound for a BUY
	MinCAGR           float64 // growth pre-filter, percent
	TrendDays         int     // lookback for the stochastic direction check
	CAGRYears         float64 // trailing window for growth measurement
}

// DefaultParams returns the production checklist parameters.
func DefaultParams() Params {
	return Params{
		SMAPeriod:         200,
		StochasticKPeriod: 10,
		StochasticDPeriod: 3,
		StochasticSmooth:  3,
		SweetSpotLower:    32,
		SweetSpotUpper:    80,
		MinCAGR:           15.0,
		TrendDays:         3,
		CAGRYears:         2,
	}
}

// EarningsRiskChecker flags tickers with imminent earnings events. The
// default implementation treats everything as safe until a calendar source
// is wired in.
type EarningsRiskChecker interface {
	Check(ticker string) (safe bool, detail string)
}

// AlwaysSafeEarnings is the stand-in earnings checker.
type AlwaysSafeEarnings struct{}

func (AlwaysSafeEarnings) Check(string) (bool, string) {
	return true, "no earnings data available, assuming safe"
}
