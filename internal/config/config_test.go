package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdeck/internal/domain"
	"eventdeck/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, DefaultDateFormat, cfg.UISettings.DateFormat)
	assert.True(t, cfg.UISettings.RememberFilter)
	assert.True(t, cfg.Filter.IsZero())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.DatabasePath = "/tmp/events.db"
	cfg.Filter = domain.FilterState{Query: "music", Sort: domain.SortByStartTime}
	require.NoError(t, svc.Save(cfg), "save should create the directory")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRejectsUnknownSortKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "version = 1\n\n[filter]\nquery = \"x\"\nsort = \"end_time\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := NewConfigServiceAt(path).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownSortKey))
}

func TestLoadFillsMissingDateFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "version = 1\ndatabase_path = \"a.db\"\n\n[ui]\nremember_filter = false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "a.db", cfg.DatabasePath)
	assert.False(t, cfg.UISettings.RememberFilter)
	assert.Equal(t, DefaultDateFormat, cfg.UISettings.DateFormat)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadPublishesConfigLoaded(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.ConfigLoadedEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.ConfigLoadedEvent)
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigServiceWithBus(path, bus).Load()
	require.NoError(t, err)

	select {
	case ev := <-got:
		assert.Equal(t, path, ev.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("ConfigLoadedEvent not published")
	}
}

func TestLoadNormalizesStoredQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "version = 1\n\n[filter]\nquery = \"a\\tb\\nc\"\nsort = \"title\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "a b c", cfg.Filter.Query)
	assert.Equal(t, domain.SortByTitle, cfg.Filter.Sort)
}
