package portfolio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"VolatilityHunter/internal/model"
)

// Store persists the portfolio state as a JSON document. Before every
// overwrite the previous file is copied to a sibling backup so a crash
// mid-write never destroys the last good state.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore creates a store writing to path.
func NewStore(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log.With().Str("component", "portfolio_store").Logger()}
}

// BackupPath returns the sibling path the previous state is copied to.
func (s *Store) BackupPath() string { return s.path + ".bak" }

// Load reads the persisted state. A missing file yields a fresh state funded
// with initialCapital; an unreadable file falls back to the backup, and if
// that fails too a fresh state is returned rather than aborting the run.
func (s *Store) Load(initialCapital float64) *model.PortfolioState {
	if state, err := readState(s.path); err == nil {
		s.log.Info().Float64("cash", state.Cash).Int("positions", len(state.Positions)).Msg("portfolio state loaded")
		return normalize(state, initialCapital)
	} else if !os.IsNotExist(err) {
		s.log.Warn().Err(err).Msg("portfolio state unreadable, trying backup")
		if state, berr := readState(s.BackupPath()); berr == nil {
			s.log.Info().Msg("recovered portfolio state from backup")
			return normalize(state, initialCapital)
		}
		s.log.Warn().Msg("backup unreadable, starting fresh portfolio")
	}
	return model.NewPortfolioState(initialCapital)
}

// Save writes the state, backing up the previous file first.
func (s *Store) Save(state *model.PortfolioState) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	if prev, err := os.ReadFile(s.path); err == nil {
		if err := os.WriteFile(s.BackupPath(), prev, 0644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
	}

	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func readState(path string) (*model.PortfolioState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var state model.PortfolioState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}
	return &state, nil
}

func normalize(state *model.PortfolioState, initialCapital float64) *model.PortfolioState {
	if state.Positions == nil {
		state.Positions = make(map[string]model.Position)
	}
	// States written before initial capital was recorded get the configured
	// value so return percentages stay meaningful.
	if state.InitialCapital == 0 {
		state.InitialCapital = initialCapital
	}
	return state
}
