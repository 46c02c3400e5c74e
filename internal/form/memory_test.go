package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	require.NoError(t, s.Create(ctx, New("one")))

	t.Run("get returns a copy", func(t *testing.T) {
		f, err := s.Get(ctx, "one")
		require.NoError(t, err)
		f.Values.Name = "changed"

		again, err := s.Get(ctx, "one")
		require.NoError(t, err)
		assert.Empty(t, again.Values.Name)
	})

	t.Run("update persists", func(t *testing.T) {
		f, err := s.Update(ctx, "one", func(f *Form) error { return f.Set("name", "Jane") })
		require.NoError(t, err)
		assert.Equal(t, "Jane", f.Values.Name)

		got, err := s.Get(ctx, "one")
		require.NoError(t, err)
		assert.Equal(t, "Jane", got.Values.Name)
	})

	t.Run("failed update writes nothing", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := s.Update(ctx, "one", func(f *Form) error {
			f.Values.Name = "half-done"
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, _ := s.Get(ctx, "one")
		assert.Equal(t, "Jane", got.Values.Name)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := s.Get(ctx, "nope")
		assert.ErrorIs(t, err, ErrSessionNotFound)
		_, err = s.Update(ctx, "nope", func(*Form) error { return nil })
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "one"))
		require.NoError(t, s.Delete(ctx, "one"))
		_, err := s.Get(ctx, "one")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Create(ctx, New("a")))

	now = now.Add(59 * time.Second)
	_, err := s.Update(ctx, "a", func(f *Form) error { return nil })
	require.NoError(t, err, "touching refreshes the ttl")

	now = now.Add(59 * time.Second)
	_, err = s.Get(ctx, "a")
	require.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	f := New("c")
	f.Values.Skills = nil
	require.NoError(t, s.Create(ctx, f))

	const n = 50
	done := make(chan struct{})
	for i := 0; i < n; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, err := s.Update(ctx, "c", func(f *Form) error { return f.Add(SectionSkills, nil) })
			assert.NoError(t, err)
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}

	got, err := s.Get(ctx, "c")
	require.NoError(t, err)
	assert.Len(t, got.Values.Skills, n)
}
