package db

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSetGetRemove(t *testing.T) {
	db := openTestDB(t)

	_, ok, err := db.GetItem("study-auth")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.SetItem("study-auth", "authenticated"))
	v, ok, err := db.GetItem("study-auth")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "authenticated", v)

	require.NoError(t, db.SetItem("study-auth", "other"))
	v, _, err = db.GetItem("study-auth")
	require.NoError(t, err)
	assert.Equal(t, "other", v)

	require.NoError(t, db.RemoveItem("study-auth"))
	require.NoError(t, db.RemoveItem("never-set"))
	_, ok, err = db.GetItem("study-auth")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.SetItem("b", "2"))
	require.NoError(t, db.SetItem("a", "1"))

	keys, err := db.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, db.Clear())
	keys, err = db.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.SetItem("study-auth", "authenticated"))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	v, ok, err := db.GetItem("study-auth")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "authenticated", v)
}

// TestReadsAfterKeyScanNoDeadlock guards the single-connection pool: Keys
// must release its rows before callers issue follow-up reads.
func TestReadsAfterKeyScanNoDeadlock(t *testing.T) {
	db := openTestDB(t)
	for _, k := range []string{"study-auth", "study-pin", "study-settings"} {
		require.NoError(t, db.SetItem(k, "x"))
	}

	done := make(chan error, 1)
	go func() {
		keys, err := db.Keys()
		if err != nil {
			done <- err
			return
		}
		for _, k := range keys {
			if _, _, err := db.GetItem(k); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Test timed out - possible deadlock detected")
	}
}

func TestMigrationOutputGoesToLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	db, err := Open(Path(t.TempDir()), WithLogger(log))
	require.NoError(t, err)
	defer db.Close()

	assert.Contains(t, buf.String(), `"component":"migrate"`)
	assert.Contains(t, buf.String(), "00001_local_storage.sql")
}
