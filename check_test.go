package assoc

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/assoc/internal/rbtree"
)

func TestCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		for _, c := range []interface{ Check() error }{
			NewTreeSet[int](),
			NewTreeMultiMap[int, int](),
			NewHashSet[int](),
			NewHashMultiMap[int, int](),
		} {
			require.NoError(t, c.Check())
		}
	})

	t.Run("UnindexedRecord", func(t *testing.T) {
		s := NewTreeSet[int]()
		s.Insert(1)
		s.store.PushBack(2, struct{}{})

		err := s.Check()
		require.ErrorIs(t, err, ErrCorrupted)

		var ce *CorruptionError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "size", ce.Component)
	})

	t.Run("OrderMismatch", func(t *testing.T) {
		s := NewTreeSet[int]()
		s.Insert(1)
		s.Insert(2)
		s.store.Splice(s.store.Begin(), s.store.Prev(s.store.End()), s.store.End())

		err := s.Check()
		var ce *CorruptionError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "order", ce.Component)
	})

	t.Run("IndexHoldsForeignHandle", func(t *testing.T) {
		s := NewHashSet[int]()
		s.Insert(1)
		h := s.store.PushBack(2, struct{}{})
		s.index.Insert(h)
		s.store.Erase(h)
		s.store.PushBack(3, struct{}{})

		err := s.Check()
		require.ErrorIs(t, err, ErrCorrupted)
		var ce *CorruptionError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "index", ce.Component)
	})

	t.Run("WrapsIndexError", func(t *testing.T) {
		s := NewTreeMultiSet[int]()
		s.Insert(1)
		s.Insert(1)
		// Equal keys whose tie-break ids no longer follow tree order.
		s.store.SetUID(s.store.Begin(), 5)
		s.store.SetUID(s.store.Next(s.store.Begin()), 1)

		err := s.Check()
		require.ErrorIs(t, err, ErrCorrupted)
		assert.NotErrorIs(t, err, ErrOutOfRange)
		assert.ErrorIs(t, err, rbtree.ErrInvalid)
	})

	t.Run("LogsFailure", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(slog.NewJSONHandler(&buf, nil))

		s := NewTreeSet[int](WithLogger(logger))
		s.store.PushBack(1, struct{}{})

		require.Error(t, s.Check())
		assert.Contains(t, buf.String(), "consistency check failed")
	})
}
