package notifier

import (
	"fmt"
	"strings"
	"time"

	"VolatilityHunter/internal/model"
	"VolatilityHunter/internal/portfolio"
	"VolatilityHunter/internal/strategy"
)

// FormatScanReport renders one scan-and-trade cycle as a plain-text report.
func FormatScanReport(results strategy.ScanResults, trades portfolio.ExecutedTrades, summary model.PortfolioSummary) string {
	var b strings.Builder
	scan := results.Summary()

	b.WriteString(fmt.Sprintf("VolatilityHunter scan | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Scanned: %d | BUY: %d | SELL: %d | HOLD: %d | errors: %d\n\n",
		scan.TotalScanned, scan.BuySignals, scan.SellSignals, scan.HoldSignals, scan.Errors))

	if len(results.Buy) > 0 {
		b.WriteString("Top BUY signals:\n")
		for i, sig := range results.RankedBuys() {
			if i == 5 {
				break
			}
			b.WriteString(fmt.Sprintf("  %d. %s @ $%.2f | quality %.2f\n", i+1, sig.Ticker, sig.Indicators.Price, sig.QualityScore))
			b.WriteString(fmt.Sprintf("     %s\n", sig.Reason))
		}
		b.WriteString("\n")
	}
	if len(results.Sell) > 0 {
		b.WriteString("SELL signals:\n")
		for i, sig := range results.Sell {
			if i == 5 {
				break
			}
			b.WriteString(fmt.Sprintf("  %d. %s @ $%.2f\n", i+1, sig.Ticker, sig.Indicators.Price))
			b.WriteString(fmt.Sprintf("     %s\n", sig.Reason))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Trades executed: %d buys, %d sells\n", len(trades.Buys), len(trades.Sells)))
	for _, t := range trades.Sells {
		b.WriteString(fmt.Sprintf("  SOLD %s: %.2f shares @ $%.2f | P/L $%.2f (%+.2f%%) [%s]\n",
			t.Ticker, t.Shares, t.ExitPrice, t.ProfitLoss, t.ProfitLossPct, t.Reason))
	}
	for _, t := range trades.Buys {
		b.WriteString(fmt.Sprintf("  BOUGHT %s: %.2f shares @ $%.2f | cost $%.2f\n",
			t.Ticker, t.Shares, t.EntryPrice, t.Cost))
	}
	b.WriteString("\n")

	b.WriteString(FormatPortfolioSummary(summary))
	return b.String()
}

// FormatPortfolioSummary renders the portfolio valuation.
func FormatPortfolioSummary(s model.PortfolioSummary) string {
	var b strings.Builder
	b.WriteString("Portfolio\n")
	b.WriteString(fmt.Sprintf("  Total value:  $%.2f (%+.2f%%, $%+.2f)\n", s.TotalValue, s.TotalReturnPct, s.TotalReturnDollars))
	b.WriteString(fmt.Sprintf("  Cash:         $%.2f\n", s.Cash))
	b.WriteString(fmt.Sprintf("  Positions:    %d ($%.2f)\n", s.NumPositions, s.PositionsValue))
	b.WriteString(fmt.Sprintf("  Realized P/L: $%.2f over %d trades\n", s.RealizedPL, s.TotalTrades))
	for _, p := range s.Positions {
		b.WriteString(fmt.Sprintf("    %s: %.2f shares @ $%.2f -> $%.2f | P/L $%+.2f (%+.2f%%)\n",
			p.Ticker, p.Shares, p.EntryPrice, p.CurrentPrice, p.UnrealizedPL, p.UnrealizedPLPct))
	}
	return b.String()
}
