package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestMigrationsVersioningAndTables(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "mig.db"))
	if err != nil {
		t.Skip("sqlite open:", err)
	}
	defer db.Close()

	ctx := context.Background()
	m := Manager{}
	require.NoError(t, m.UpToLatest(ctx, db))

	v, err := m.Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, latestVersion, v)

	for _, name := range []string{"events", "participants"} {
		var cnt int
		err := db.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&cnt)
		require.NoError(t, err)
		assert.Equal(t, 1, cnt, "expected table %s to exist", name)
	}

	// running again is a no-op
	require.NoError(t, m.UpToLatest(ctx, db))
	v, err = m.Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, latestVersion, v)
}
