package portfolio

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"VolatilityHunter/internal/model"
	"VolatilityHunter/internal/sector"
)

// Config holds the position sizing and risk limits of the paper portfolio.
type Config struct {
	InitialCapital float64
	PositionSize   float64 // dollars committed per new position
	MaxPositions   int
	MaxPerSector   int     // positions sharing a known sector
	StopLossPct    float64 // force-liquidate at or below, e.g. -10
	TakeProfitPct  float64 // force-liquidate at or above, e.g. +25
}

// DefaultConfig returns the production portfolio limits.
func DefaultConfig() Config {
	return Config{
		InitialCapital: 100000.0,
		PositionSize:   5000.0,
		MaxPositions:   10,
		MaxPerSector:   3,
		StopLossPct:    -10.0,
		TakeProfitPct:  25.0,
	}
}

// Liquidation reasons recorded on forced sells.
const (
	ReasonStopLoss   = "STOP-LOSS"
	ReasonTakeProfit = "TAKE-PROFIT"
	ReasonSellSignal = "SELL SIGNAL"
)

// ExecutedTrades is the outcome of one signal-processing pass.
type ExecutedTrades struct {
	Buys  []model.TradeRecord
	Sells []model.TradeRecord
}

// Engine is the paper-trading state machine. It is safe for a single logical
// writer; the mutex serialises mutating calls because the state is persisted
// after every executed trade.
type Engine struct {
	mu      sync.Mutex
	cfg     Config
	state   *model.PortfolioState
	store   *Store
	sectors *sector.Catalog
	log     zerolog.Logger
	now     func() time.Time
}

// NewEngine loads (or initialises) the persisted state and returns the
// engine around it.
func NewEngine(cfg Config, store *Store, sectors *sector.Catalog, log zerolog.Logger) *Engine {
	return &Engine{
		cfg:     cfg,
		state:   store.Load(cfg.InitialCapital),
		store:   store,
		sectors: sectors,
		log:     log.With().Str("component", "portfolio").Logger(),
		now:     time.Now,
	}
}

// ProcessSignals runs one trading cycle: the risk-management pass over held
// positions, then strategy sells, then buys up to the slot, cash, and sector
// limits. Buy signals must arrive sorted by descending quality score; the
// engine trusts that ordering. currentPrices may be nil, in which case risk
// triggers cannot fire this cycle.
func (e *Engine) ProcessSignals(buySignals, sellSignals []model.SignalResult, currentPrices map[string]float64) ExecutedTrades {
	e.mu.Lock()
	defer e.mu.Unlock()

	var executed ExecutedTrades

	// Risk management first: stop-loss and take-profit can close positions
	// the strategy itself never flagged.
	for _, ticker := range e.heldTickers() {
		pos := e.state.Positions[ticker]
		price, ok := currentPrices[ticker]
		if !ok || price <= 0 {
			continue // no live price, trigger cannot fire this cycle
		}
		plPct := (price - pos.EntryPrice) / pos.EntryPrice * 100
		var reason string
		switch {
		case plPct <= e.cfg.StopLossPct:
			reason = ReasonStopLoss
		case plPct >= e.cfg.TakeProfitPct:
			reason = ReasonTakeProfit
		default:
			continue
		}
		executed.Sells = append(executed.Sells, e.liquidate(ticker, pos, price, reason))
	}

	// Strategy sells. Signals for tickers not held are ignored; the strategy
	// may flag anything in the universe.
	for _, sig := range sellSignals {
		pos, held := e.state.Positions[sig.Ticker]
		if !held {
			continue
		}
		executed.Sells = append(executed.Sells, e.liquidate(sig.Ticker, pos, sig.Indicators.Price, ReasonSellSignal))
	}

	// Buys, best candidates first.
	slots := e.cfg.MaxPositions - len(e.state.Positions)
	if slots > 0 && e.state.Cash >= e.cfg.PositionSize {
		if slots > len(buySignals) {
			slots = len(buySignals)
		}
		for _, sig := range buySignals[:slots] {
			if _, held := e.state.Positions[sig.Ticker]; held {
				continue
			}
			if !e.sectorAllows(sig.Ticker) {
				e.log.Info().Str("ticker", sig.Ticker).Str("sector", e.sectors.Lookup(sig.Ticker)).
					Msg("buy skipped, sector cap reached")
				continue
			}
			if e.state.Cash < e.cfg.PositionSize {
				break
			}
			price := sig.Indicators.Price
			if price <= 0 {
				continue
			}
			executed.Buys = append(executed.Buys, e.open(sig, price))
		}
	}

	return executed
}

// Summary values the portfolio. Positions without a supplied current price
// are valued at entry, so unrealized P/L for them reads zero. Pure read.
func (e *Engine) Summary(currentPrices map[string]float64) model.PortfolioSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	summary := model.PortfolioSummary{
		Cash:         e.state.Cash,
		NumPositions: len(e.state.Positions),
		TotalTrades:  len(e.state.TradeHistory),
	}

	for _, ticker := range e.heldTickers() {
		pos := e.state.Positions[ticker]
		price := pos.EntryPrice
		if p, ok := currentPrices[ticker]; ok && p > 0 {
			price = p
		}
		value := pos.Shares * price
		summary.PositionsValue += value
		summary.Positions = append(summary.Positions, model.PositionDetail{
			Ticker:          ticker,
			Shares:          pos.Shares,
			EntryPrice:      pos.EntryPrice,
			CurrentPrice:    price,
			Value:           value,
			UnrealizedPL:    (price - pos.EntryPrice) * pos.Shares,
			UnrealizedPLPct: (price - pos.EntryPrice) / pos.EntryPrice * 100,
			EntryDate:       pos.EntryDate,
		})
	}

	summary.TotalValue = summary.Cash + summary.PositionsValue
	summary.TotalReturnDollars = summary.TotalValue - e.state.InitialCapital
	if e.state.InitialCapital > 0 {
		summary.TotalReturnPct = summary.TotalReturnDollars / e.state.InitialCapital * 100
	}

	for _, trade := range e.state.TradeHistory {
		if trade.Type == model.TradeSell {
			summary.RealizedPL += trade.ProfitLoss
		}
	}
	return summary
}

// HeldTickers returns the currently held tickers, sorted.
func (e *Engine) HeldTickers() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.heldTickers()
}

func (e *Engine) heldTickers() []string {
	tickers := make([]string, 0, len(e.state.Positions))
	for t := range e.state.Positions {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

func (e *Engine) liquidate(ticker string, pos model.Position, exitPrice float64, reason string) model.TradeRecord {
	entryValue := pos.Shares * pos.EntryPrice
	exitValue := pos.Shares * exitPrice
	profitLoss := exitValue - entryValue

	trade := model.TradeRecord{
		Type:       model.TradeSell,
		Ticker:     ticker,
		Shares:     pos.Shares,
		EntryPrice: pos.EntryPrice,
		EntryDate:  pos.EntryDate,
		ExitPrice:  exitPrice,
		ExitDate:   e.now(),
		ProfitLoss: profitLoss,
		Reason:     reason,
	}
	if entryValue > 0 {
		trade.ProfitLossPct = profitLoss / entryValue * 100
	}

	e.state.Cash += exitValue
	delete(e.state.Positions, ticker)
	e.state.TradeHistory = append(e.state.TradeHistory, trade)
	e.persist()

	e.log.Info().Str("ticker", ticker).Str("reason", reason).
		Float64("shares", pos.Shares).Float64("exit_price", exitPrice).
		Float64("profit_loss", profitLoss).Msg("position sold")
	return trade
}

func (e *Engine) open(sig model.SignalResult, price float64) model.TradeRecord {
	shares := e.cfg.PositionSize / price
	cost := shares * price
	entryDate := e.now()

	e.state.Cash -= cost
	e.state.Positions[sig.Ticker] = model.Position{
		Ticker:       sig.Ticker,
		Shares:       shares,
		EntryPrice:   price,
		EntryDate:    entryDate,
		QualityScore: sig.QualityScore,
	}
	trade := model.TradeRecord{
		Type:         model.TradeBuy,
		Ticker:       sig.Ticker,
		Shares:       shares,
		EntryPrice:   price,
		EntryDate:    entryDate,
		Cost:         cost,
		QualityScore: sig.QualityScore,
	}
	e.state.TradeHistory = append(e.state.TradeHistory, trade)
	e.persist()

	e.log.Info().Str("ticker", sig.Ticker).Float64("shares", shares).
		Float64("price", price).Float64("cost", cost).Msg("position opened")
	return trade
}

func (e *Engine) sectorAllows(ticker string) bool {
	if !e.sectors.Known(ticker) {
		return true
	}
	target := e.sectors.Lookup(ticker)
	count := 0
	for held := range e.state.Positions {
		if e.sectors.Known(held) && e.sectors.Lookup(held) == target {
			count++
		}
	}
	return count < e.cfg.MaxPerSector
}

// persist saves after each executed trade; on failure the in-memory state is
// kept so the next successful save still carries every change.
func (e *Engine) persist() {
	if err := e.store.Save(e.state); err != nil {
		e.log.Error().Err(err).Msg("failed to save portfolio state")
	}
}
