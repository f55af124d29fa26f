package model

import "time"

// TradeType distinguishes the two kinds of trade records.
type TradeType string

const (
	TradeBuy  TradeType = "BUY"
	TradeSell TradeType = "SELL"
)

// Position is an open holding. Full liquidation only; no partial sells.
type Position struct {
	Ticker       string    `json:"ticker"`
	Shares       float64   `json:"shares"`
	EntryPrice   float64   `json:"entry_price"`
	EntryDate    time.Time `json:"entry_date"`
	QualityScore float64   `json:"quality_score"`
}

// TradeRecord is an immutable entry in the trade history. SELL records carry
// the exit fields and profit/loss; BUY records carry the cost.
type TradeRecord struct {
	Type          TradeType `json:"type"`
	Ticker        string    `json:"ticker"`
	Shares        float64   `json:"shares"`
	EntryPrice    float64   `json:"entry_price"`
	EntryDate     time.Time `json:"entry_date"`
	Cost          float64   `json:"cost,omitempty"`
	QualityScore  float64   `json:"quality_score,omitempty"`
	ExitPrice     float64   `json:"exit_price,omitempty"`
	ExitDate      time.Time `json:"exit_date,omitzero"`
	ProfitLoss    float64   `json:"profit_loss,omitempty"`
	ProfitLossPct float64   `json:"profit_loss_pct,omitempty"`
	Reason        string    `json:"reason,omitempty"`
}

// PortfolioState is the persisted paper-trading state.
type PortfolioState struct {
	InitialCapital float64             `json:"initial_capital"`
	Cash           float64             `json:"cash"`
	Positions      map[string]Position `json:"positions"`
	TradeHistory   []TradeRecord       `json:"trade_history"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// NewPortfolioState returns a fresh state funded with the given capital.
func NewPortfolioState(initialCapital float64) *PortfolioState {
	return &PortfolioState{
		InitialCapital: initialCapital,
		Cash:           initialCapital,
		Positions:      make(map[string]Position),
	}
}

// PositionDetail is the per-position slice of a portfolio summary.
type PositionDetail struct {
	Ticker          string    `json:"ticker"`
	Shares          float64   `json:"shares"`
	EntryPrice      float64   `json:"entry_price"`
	CurrentPrice    float64   `json:"current_price"`
	Value           float64   `json:"value"`
	UnrealizedPL    float64   `json:"unrealized_pl"`
	UnrealizedPLPct float64   `json:"unrealized_pl_pct"`
	EntryDate       time.Time `json:"entry_date"`
}

// PortfolioSummary is a read-only valuation of the portfolio. When no current
// price is known for a position its entry price is used, so an unrefreshed
// summary reports zero unrealized P/L.
type PortfolioSummary struct {
	Cash               float64          `json:"cash"`
	PositionsValue     float64          `json:"positions_value"`
	TotalValue         float64          `json:"total_value"`
	TotalReturnPct     float64          `json:"total_return_pct"`
	TotalReturnDollars float64          `json:"total_return_dollars"`
	NumPositions       int              `json:"num_positions"`
	Positions          []PositionDetail `json:"positions_detail"`
	RealizedPL         float64          `json:"realized_pl"`
	TotalTrades        int              `json:"total_trades"`
}
