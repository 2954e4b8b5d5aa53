package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)

	_, ok := s.Get(ctx, "ukkm_session:a")
	assert.False(t, ok)

	data := []byte(`{"email":"a@moh.gov.my"}`)
	require.NoError(t, s.Set(ctx, "ukkm_session:a", data, 0))
	data[0] = 'X'

	got, ok := s.Get(ctx, "ukkm_session:a")
	require.True(t, ok)
	assert.Equal(t, `{"email":"a@moh.gov.my"}`, string(got))
	assert.Equal(t, 1, s.Len())

	s.Delete(ctx, "ukkm_session:a")
	_, ok = s.Get(ctx, "ukkm_session:a")
	assert.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Minute)
	require.NoError(t, s.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)
	_, ok := s.Get(ctx, "k")
	assert.False(t, ok)
}

func TestNilRedisStoreDegrades(t *testing.T) {
	ctx := context.Background()
	s := NewRedisStore(nil)

	_, ok := s.Get(ctx, "k")
	assert.False(t, ok)
	assert.ErrorIs(t, s.Set(ctx, "k", []byte("v"), time.Minute), ErrUnavailable)
	assert.False(t, s.Healthy(ctx))
	s.Delete(ctx, "k")
	assert.NoError(t, s.Close())
}

func TestOpenFallsBackToMemory(t *testing.T) {
	s := Open(context.Background(), "", "", 0, zap.NewNop())
	assert.Equal(t, "memory", s.Backend())
	assert.True(t, s.Healthy(context.Background()))
}
