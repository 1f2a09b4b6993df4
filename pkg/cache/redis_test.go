package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	r := NewRedis(addr, "food-delivery-test")
	defer r.Close()
	require.NoError(t, r.Ping(ctx))

	key := r.Key("create-order", uuid.NewString())

	_, err := r.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)

	stored, err := r.SetNX(ctx, key, "abcd1234", time.Minute)
	require.NoError(t, err)
	assert.True(t, stored)

	stored, err = r.SetNX(ctx, key, "other", time.Minute)
	require.NoError(t, err)
	assert.False(t, stored)

	v, err := r.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", v)
}
