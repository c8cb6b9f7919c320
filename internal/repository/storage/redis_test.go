package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		// Given: a running Redis server
		mini := miniredis.RunT(t)

		// When: connecting to it
		client, err := New(context.Background(), Options{Addr: mini.Addr()})

		// Then: the client is usable
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })
		assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
		assert.Equal(t, "v", mustGet(t, mini, "k"))
	})

	t.Run("Fails when the server is gone", func(t *testing.T) {
		// Given: an address nobody listens on
		mini := miniredis.RunT(t)
		addr := mini.Addr()
		mini.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		// When: connecting to it
		client, err := New(ctx, Options{Addr: addr})

		// Then: an error is returned
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to Redis")
	})

	t.Run("Fails on wrong password", func(t *testing.T) {
		mini := miniredis.RunT(t)
		mini.RequireAuth("secret")

		_, err := New(context.Background(), Options{Addr: mini.Addr(), Password: "wrong"})

		require.Error(t, err)
	})
}

func mustGet(t *testing.T, mini *miniredis.Miniredis, key string) string {
	t.Helper()

	value, err := mini.Get(key)
	require.NoError(t, err)

	return value
}
