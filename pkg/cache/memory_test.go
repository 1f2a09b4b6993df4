package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetNXAndGet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("food-delivery")

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	stored, err := m.SetNX(ctx, "k", "abcd1234", time.Hour)
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = m.SetNX(ctx, "k", "other", time.Hour)
	require.NoError(t, err)
	assert.False(t, stored)

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", v)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("food-delivery")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	_, err := m.SetNX(ctx, "k", "v1", time.Minute)
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	stored, err := m.SetNX(ctx, "k", "v2", time.Minute)
	require.NoError(t, err)
	assert.True(t, stored)
}

func TestMemory_SetNXDropsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	m := NewMemory("food-delivery")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	for _, k := range []string{"a", "b", "c"} {
		_, err := m.SetNX(ctx, k, "v", time.Minute)
		require.NoError(t, err)
	}
	require.Len(t, m.entries, 3)

	now = now.Add(2 * time.Minute)
	_, err := m.SetNX(ctx, "d", "v", time.Hour)
	require.NoError(t, err)

	assert.Len(t, m.entries, 1)
	v, err := m.Get(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "food-delivery:create-order:abc", NewMemory("food-delivery").Key("create-order", "abc"))
	assert.Equal(t, "food-delivery:create-order:abc", NewRedis("localhost:6379", "food-delivery").Key("create-order", "abc"))
}
