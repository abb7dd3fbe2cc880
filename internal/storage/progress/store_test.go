package progress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zappabad/tickrush/internal/economy"
)

func TestLoadEmptyStore(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	st, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, st, "fresh store has no snapshot")
}

func TestSaveLoadLatest(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(economy.State{Balance: "10"}))
	require.NoError(t, store.Save(economy.State{
		Balance:     "25",
		Unlocked:    []string{economy.ThemeNeon},
		ActiveTheme: economy.ThemeNeon,
	}))

	st, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, st)
	require.Equal(t, "25", st.Balance, "load returns the most recent snapshot")
	require.Equal(t, []string{economy.ThemeNeon}, st.Unlocked)
}

func TestSnapshotSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(economy.State{Balance: "42", ActiveChart: economy.ChartDense}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	st, err := reopened.Load()
	require.NoError(t, err)
	require.NotNil(t, st)
	require.Equal(t, "42", st.Balance)
	require.Equal(t, economy.ChartDense, st.ActiveChart)
}

func TestNewStoreRequiresDir(t *testing.T) {
	_, err := NewStore("")
	require.Error(t, err)
}
