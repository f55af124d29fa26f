package portfolio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VolatilityHunter/internal/model"
)

func TestStore_MissingFileStartsFresh(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "portfolio.json"), zerolog.Nop())

	state := store.Load(100000)
	assert.InDelta(t, 100000.0, state.Cash, 1e-9)
	assert.InDelta(t, 100000.0, state.InitialCapital, 1e-9)
	assert.Empty(t, state.Positions)
	assert.Empty(t, state.TradeHistory)
}

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "portfolio.json"), zerolog.Nop())

	state := model.NewPortfolioState(100000)
	state.Cash = 95000
	state.Positions["NVDA"] = model.Position{
		Ticker:     "NVDA",
		Shares:     50,
		EntryPrice: 100,
		EntryDate:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Save(state))

	loaded := store.Load(100000)
	assert.InDelta(t, 95000.0, loaded.Cash, 1e-9)
	require.Contains(t, loaded.Positions, "NVDA")
	assert.InDelta(t, 50.0, loaded.Positions["NVDA"].Shares, 1e-9)
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestStore_BackupRecoversCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	store := NewStore(path, zerolog.Nop())

	state := model.NewPortfolioState(100000)
	state.Cash = 90000
	require.NoError(t, store.Save(state))

	// A second save moves the good copy to the backup.
	state.Cash = 85000
	require.NoError(t, store.Save(state))
	require.NoError(t, os.WriteFile(path, []byte("{truncated"), 0644))

	loaded := store.Load(100000)
	assert.InDelta(t, 90000.0, loaded.Cash, 1e-9, "previous state recovered from backup")
}

func TestStore_CorruptStateAndBackupStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	store := NewStore(path, zerolog.Nop())

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	require.NoError(t, os.WriteFile(store.BackupPath(), []byte("also not json"), 0644))

	loaded := store.Load(100000)
	assert.InDelta(t, 100000.0, loaded.Cash, 1e-9)
	assert.Empty(t, loaded.Positions)
}

func TestStore_LegacyStateGetsInitialCapital(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	store := NewStore(path, zerolog.Nop())

	require.NoError(t, os.WriteFile(path, []byte(`{"cash": 42000}`), 0644))

	loaded := store.Load(100000)
	assert.InDelta(t, 42000.0, loaded.Cash, 1e-9)
	assert.InDelta(t, 100000.0, loaded.InitialCapital, 1e-9)
	assert.NotNil(t, loaded.Positions)
}
