package form

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, 10*time.Minute), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	require.NoError(t, s.Create(ctx, New("r1")))
	assert.True(t, mr.Exists("form:r1"))
	assert.Equal(t, 10*time.Minute, mr.TTL("form:r1"))

	assert.Error(t, s.Create(ctx, New("r1")), "ids are unique")

	f, err := s.Update(ctx, "r1", func(f *Form) error { return f.Set("email", "a@b.c") })
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", f.Values.Email)

	got, err := s.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got.Values.Email)
	assert.Len(t, got.Values.Experience, 1)

	_, err = s.Update(ctx, "r1", func(f *Form) error { return f.Remove(SectionSkills, 9) })
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	require.NoError(t, s.Delete(ctx, "r1"))
	_, err = s.Get(ctx, "r1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	require.NoError(t, s.Create(ctx, New("r2")))
	mr.FastForward(11 * time.Minute)

	_, err := s.Get(ctx, "r2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Update(ctx, "r2", func(*Form) error { return nil })
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStore_Unavailable(t *testing.T) {
	s, mr := newRedisStore(t)
	mr.Close()

	_, err := s.Get(context.Background(), "x")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}
