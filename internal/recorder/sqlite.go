package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists cycle history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the bot's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			total_scanned INTEGER,
			buy_signals   INTEGER,
			sell_signals  INTEGER,
			hold_signals  INTEGER,
			errors        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_ts ON scans(timestamp)`,

		`CREATE TABLE IF NOT EXISTS signals (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			ticker        TEXT,
			signal        TEXT,
			price         REAL,
			cagr          REAL,
			stochastic_k  REAL,
			quality_score REAL,
			reason        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_ts ON signals(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trades (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			type        TEXT,
			ticker      TEXT,
			shares      REAL,
			price       REAL,
			profit_loss REAL,
			reason      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_ts ON trades(timestamp)`,

		`CREATE TABLE IF NOT EXISTS snapshots (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			cash             REAL,
			positions_value  REAL,
			total_value      REAL,
			total_return_pct REAL,
			realized_pl      REAL,
			num_positions    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordScan(evt *ScanEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO scans
		(timestamp, total_scanned, buy_signals, sell_signals, hold_signals, errors)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.TotalScanned, evt.BuySignals, evt.SellSignals, evt.HoldSignals, evt.Errors,
	)
	return err
}

func (r *SQLiteRecorder) RecordSignal(evt *SignalEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO signals
		(timestamp, ticker, signal, price, cagr, stochastic_k, quality_score, reason)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Ticker, evt.Signal, evt.Price, evt.CAGR, evt.StochasticK, evt.QualityScore, evt.Reason,
	)
	return err
}

func (r *SQLiteRecorder) RecordTrade(evt *TradeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO trades
		(timestamp, type, ticker, shares, price, profit_loss, reason)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Type, evt.Ticker, evt.Shares, evt.Price, evt.ProfitLoss, evt.Reason,
	)
	return err
}

func (r *SQLiteRecorder) RecordSnapshot(evt *SnapshotEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO snapshots
		(timestamp, cash, positions_value, total_value, total_return_pct, realized_pl, num_positions)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Cash, evt.PositionsValue, evt.TotalValue, evt.TotalReturnPct, evt.RealizedPL, evt.NumPositions,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
