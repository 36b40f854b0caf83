package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreLIFO(t *testing.T) {
	s := newTestSQLiteStore(t)

	require.NoError(t, s.Push([]byte("first")))
	require.NoError(t, s.Push([]byte("second")))
	require.NoError(t, s.Push([]byte("third")))

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, want := range []string{"third", "second", "first"} {
		data, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}

	n, err = s.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSQLiteStorePopEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)

	data, err := s.Pop()
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Push([]byte("persisted")))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	data, err := reopened.Pop()
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(data))
}

func TestSQLiteStoreClosed(t *testing.T) {
	s := newTestSQLiteStore(t)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Push([]byte("x")), ErrStoreClosed)

	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrStoreClosed)

	// Close is idempotent.
	assert.NoError(t, s.Close())
}
