package marketdata

import "VolatilityHunter/internal/model"

// Provider supplies daily price history for a ticker. This is the engine's
// only inbound data contract; where the bars come from (vendor API, cache,
// files) is the provider's business.
type Provider interface {
	Load(ticker string) (model.PriceSeries, error)
	Name() string
}
