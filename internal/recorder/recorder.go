package recorder

// ScanEvent summarises one universe scan.
type ScanEvent struct {
	TotalScanned int
	BuySignals   int
	SellSignals  int
	HoldSignals  int
	Errors       int
}

// SignalEvent is one actionable (BUY/SELL) classification.
type SignalEvent struct {
	Ticker       string
	Signal       string
	Price        float64
	CAGR         float64
	StochasticK  float64
	QualityScore float64
	Reason       string
}

// TradeEvent is one executed paper trade.
type TradeEvent struct {
	Type       string
	Ticker     string
	Shares     float64
	Price      float64
	ProfitLoss float64
	Reason     string
}

// SnapshotEvent is the portfolio valuation after a cycle.
type SnapshotEvent struct {
	Cash           float64
	PositionsValue float64
	TotalValue     float64
	TotalReturnPct float64
	RealizedPL     float64
	NumPositions   int
}

// Recorder persists cycle history for later analysis.
type Recorder interface {
	RecordScan(evt *ScanEvent) error
	RecordSignal(evt *SignalEvent) error
	RecordTrade(evt *TradeEvent) error
	RecordSnapshot(evt *SnapshotEvent) error
	Close() error
}
