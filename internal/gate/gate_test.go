package gate

import (
	"path/filepath"
	"testing"

	"github.com/dori/studydeck/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memStorage map[string]string

func (m memStorage) GetItem(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memStorage) SetItem(key, value string) error {
	m[key] = value
	return nil
}

func (m memStorage) RemoveItem(key string) error {
	delete(m, key)
	return nil
}

func newGate(t *testing.T, s Storage) *Gate {
	t.Helper()
	g, err := New(s, "", WithCost(bcrypt.MinCost))
	require.NoError(t, err)
	return g
}

func TestCorrectPINUnlocksAndPersists(t *testing.T) {
	s := memStorage{}
	g := newGate(t, s)
	require.False(t, g.Unlocked())

	require.NoError(t, g.Attempt("2024"))
	assert.True(t, g.Unlocked())
	assert.Equal(t, AuthenticatedValue, s[AuthKey])
}

func TestWrongPINStaysLocked(t *testing.T) {
	s := memStorage{}
	g := newGate(t, s)

	for _, input := range []string{"", "1234", "202", "20245", "2025"} {
		assert.ErrorIs(t, g.Attempt(input), ErrInvalidPIN, input)
		assert.False(t, g.Unlocked())
	}
	_, ok := s[AuthKey]
	assert.False(t, ok)
}

func TestPersistedFlagSkipsGate(t *testing.T) {
	s := memStorage{AuthKey: AuthenticatedValue}
	assert.True(t, newGate(t, s).Unlocked())

	s[AuthKey] = "something-else"
	assert.False(t, newGate(t, s).Unlocked())
}

func TestLock(t *testing.T) {
	s := memStorage{}
	g := newGate(t, s)
	require.NoError(t, g.Attempt("2024"))
	require.NoError(t, g.Lock())
	assert.False(t, g.Unlocked())
	assert.False(t, newGate(t, s).Unlocked())
}

func TestConfiguredPIN(t *testing.T) {
	g, err := New(memStorage{}, "7788", WithCost(bcrypt.MinCost))
	require.NoError(t, err)
	assert.ErrorIs(t, g.Attempt("2024"), ErrInvalidPIN)
	assert.NoError(t, g.Attempt("7788"))
}

func TestChangePIN(t *testing.T) {
	s := memStorage{}
	g := newGate(t, s)

	assert.ErrorIs(t, g.ChangePIN("0000", "1111", "1111"), ErrInvalidPIN)
	assert.ErrorIs(t, g.ChangePIN("2024", "1111", "2222"), ErrPINMismatch)
	assert.ErrorIs(t, g.ChangePIN("2024", "111", "111"), ErrPINLength)

	require.NoError(t, g.ChangePIN("2024", "1111", "1111"))
	assert.ErrorIs(t, g.Attempt("2024"), ErrInvalidPIN)
	assert.NoError(t, g.Attempt("1111"))

	// The changed PIN outlives the configured default
	reopened := newGate(t, s)
	require.NoError(t, reopened.Lock())
	assert.NoError(t, reopened.Attempt("1111"))
}

func TestGateOverSQLite(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "gate.db"))
	require.NoError(t, err)
	defer database.Close()

	g := newGate(t, database)
	require.NoError(t, g.Attempt("2024"))

	v, ok, err := database.GetItem(AuthKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, AuthenticatedValue, v)
	assert.True(t, newGate(t, database).Unlocked())
}
