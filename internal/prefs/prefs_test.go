package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/dotide/internal/activity"
	"github.com/zhubert/dotide/internal/errors"
)

// backends returns a fresh instance of every Store implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := OpenSQLiteStore(filepath.Join(dir, "prefs.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"json":   NewFileStore(filepath.Join(dir, "prefs.json")),
		"sqlite": sqlite,
	}
}

func TestStore_SaveLoadDelete(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.Load("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Save("font_size", []byte("18")))
			v, ok, err := store.Load("font_size")
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, "18", string(v))

			require.NoError(t, store.Save("font_size", []byte("12")))
			v, _, _ = store.Load("font_size")
			assert.JSONEq(t, "12", string(v))

			require.NoError(t, store.Delete("font_size"))
			_, ok, err = store.Load("font_size")
			require.NoError(t, err)
			assert.False(t, ok)

			assert.NoError(t, store.Delete("never-set"))
		})
	}
}

func TestFontSize_DefaultAndRoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			p := New(store)
			assert.Equal(t, 14, p.FontSize(), "absent key defaults to 14")

			for _, size := range FontSizes {
				require.NoError(t, p.SetFontSize(size))
				assert.Equal(t, size, p.FontSize())
			}
		})
	}
}

func TestFontSize_StoresAnyInteger(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			p := New(store)
			for _, size := range []int{13, 99, 0} {
				require.NoError(t, p.SetFontSize(size))
				assert.Equal(t, size, p.FontSize())
			}
		})
	}
}

func TestFontSize_CorruptValueFallsBack(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(KeyFontSize, []byte(`"huge"`)))
	assert.Equal(t, 14, New(store).FontSize())

	require.NoError(t, store.Save(KeyFontSize, []byte(`99`)))
	assert.Equal(t, 99, New(store).FontSize(), "any stored integer loads as is")
}

func TestFileStore_CorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	p := New(NewFileStore(path))
	assert.Equal(t, 14, p.FontSize())
	assert.Empty(t, p.ActivityLogs())

	// A save recovers the file.
	require.NoError(t, p.SetFontSize(18))
	assert.Equal(t, 18, p.FontSize())
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	require.NoError(t, New(NewFileStore(path)).SetFontSize(12))

	assert.Equal(t, 12, New(NewFileStore(path)).FontSize())
}

func TestSQLiteStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.sqlite")

	first, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, New(first).SetTheme("dracula"))
	require.NoError(t, first.Close())

	second, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()
	assert.Equal(t, "dracula", New(second).Theme())
}

func TestActivityLogs_RoundTrip(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	logs := []activity.Entry{
		{Timestamp: ts, Kind: activity.KindEditing, DurationSeconds: 5, ProjectName: "MyConsoleApp"},
		{Timestamp: ts.Add(time.Minute), Kind: activity.KindBuilding, DurationSeconds: 2, ProjectName: "MyConsoleApp"},
	}

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			p := New(store)
			assert.Empty(t, p.ActivityLogs())

			require.NoError(t, p.SaveActivityLogs(logs))
			got := p.ActivityLogs()
			require.Len(t, got, 2)
			assert.True(t, got[0].Timestamp.Equal(ts))
			assert.Equal(t, activity.KindBuilding, got[1].Kind)

			require.NoError(t, p.ClearActivityLogs())
			assert.Empty(t, p.ActivityLogs())
		})
	}
}

func TestPreferences_BacksRecorder(t *testing.T) {
	p := New(NewMemoryStore())
	r := activity.NewRecorder(activity.DefaultPolicy(), p)
	r.RecordBuildStarted("MyWebApi")

	reloaded := activity.NewRecorder(activity.DefaultPolicy(), p)
	assert.Len(t, reloaded.Entries(), 1)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("json", dir)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = Open("sqlite", dir)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open("redis", dir)
	assert.True(t, errors.Is(err, errors.KindConfig))
}

func TestFontLabel(t *testing.T) {
	assert.Equal(t, "Small", FontLabel(12))
	assert.Equal(t, "Medium", FontLabel(14))
	assert.Equal(t, "Large", FontLabel(18))
	assert.Equal(t, "16pt", FontLabel(16))
}
