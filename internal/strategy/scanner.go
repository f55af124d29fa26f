package strategy

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"VolatilityHunter/internal/model"
)

// ScanResults buckets classification outcomes for one scan pass. Entries
// keep the iteration order in which their tickers were scanned; ranking by
// quality happens downstream.
type ScanResults struct {
	Buy    []model.SignalResult
	Sell   []model.SignalResult
	Hold   []model.SignalResult
	Errors []model.SignalResult
}

// ScanSummary condenses a scan into counts and the actionable ticker lists.
type ScanSummary struct {
	TotalScanned int
	BuySignals   int
	SellSignals  int
	HoldSignals  int
	Errors       int
	BuyList      []string
	SellList     []string
}

// Summary derives the counts from the buckets.
func (r ScanResults) Summary() ScanSummary {
	s := ScanSummary{
		TotalScanned: len(r.Buy) + len(r.Sell) + len(r.Hold) + len(r.Errors),
		BuySignals:   len(r.Buy),
		SellSignals:  len(r.Sell),
		HoldSignals:  len(r.Hold),
		Errors:       len(r.Errors),
	}
	for _, sig := range r.Buy {
		s.BuyList = append(s.BuyList, sig.Ticker)
	}
	for _, sig := range r.Sell {
		s.SellList = append(s.SellList, sig.Ticker)
	}
	return s
}

// RankedBuys returns the BUY bucket sorted by descending quality score,
// ready to feed the portfolio engine.
func (r ScanResults) RankedBuys() []model.SignalResult {
	buys := make([]model.SignalResult, len(r.Buy))
	copy(buys, r.Buy)
	sort.SliceStable(buys, func(i, j int) bool {
		return buys[i].QualityScore > buys[j].QualityScore
	})
	return buys
}

// Scanner applies the classifier across a ticker universe.
type Scanner struct {
	classifier *Classifier
	log        zerolog.Logger
}

// NewScanner creates a scanner around a classifier.
func NewScanner(classifier *Classifier, log zerolog.Logger) *Scanner {
	return &Scanner{
		classifier: classifier,
		log:        log.With().Str("component", "scanner").Logger(),
	}
}

// Scan classifies every ticker in the input. A ticker whose series is
// invalid or too short lands in the Errors bucket; the batch always
// completes for the remaining tickers.
func (s *Scanner) Scan(data map[string]model.PriceSeries) ScanResults {
	var results ScanResults

	tickers := make([]string, 0, len(data))
	for ticker := range data {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)

	for _, ticker := range tickers {
		series := data[ticker]
		if series.Ticker == "" {
			series.Ticker = ticker
		}
		if err := series.Validate(); err != nil {
			s.log.Warn().Str("ticker", ticker).Err(err).Msg("invalid price series")
			results.Errors = append(results.Errors, model.SignalResult{
				Ticker: ticker,
				Signal: model.SignalInsufficientData,
				Reason: fmt.Sprintf("invalid price series: %v", err),
			})
			continue
		}

		res := s.classifier.Classify(series)

		switch res.Signal {
		case model.SignalBuy:
			results.Buy = append(results.Buy, res)
			s.auditLog(res)
		case model.SignalSell:
			results.Sell = append(results.Sell, res)
			s.auditLog(res)
		case model.SignalHold:
			results.Hold = append(results.Hold, res)
		default:
			results.Errors = append(results.Errors, res)
		}
	}
	return results
}

func (s *Scanner) auditLog(res model.SignalResult) {
	evt := s.log.Info().
		Str("ticker", res.Ticker).
		Str("signal", string(res.Signal)).
		Float64("price", res.Indicators.Price).
		Float64("cagr", res.Indicators.CAGR).
		Float64("quality_score", res.QualityScore)
	if res.Indicators.StochasticK != nil {
		evt = evt.Float64("stochastic_k", *res.Indicators.StochasticK)
	}
	evt.Msg("signal")
}
