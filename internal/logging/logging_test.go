package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledLoggerWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	l, err := New(path, false)
	require.NoError(t, err)
	l.Logger.Info().Msg("hidden")
	require.NoError(t, l.Close())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	l, err := New(path, true)
	require.NoError(t, err)
	l.Logger.Debug().Str("view", "focus").Msg("switched")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"switched"`)
	assert.Contains(t, string(data), `"view":"focus"`)
	assert.Contains(t, string(data), `"app":"studydeck"`)
}

func TestFromWriter(t *testing.T) {
	var buf bytes.Buffer
	l := FromWriter(&buf)
	require.Equal(t, 0, buf.Len())
	l.Logger.Info().Msg("Test")
	assert.NotZero(t, buf.Len())
	assert.NoError(t, l.Close())
}
