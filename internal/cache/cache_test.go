package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemory(8)
	require.NoError(t, err)

	_, ok, err := c.Get(ctx, "all-orders")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "all-orders", `[]`))
	require.NoError(t, c.Set(ctx, "categories", `["a"]`))

	v, ok, err := c.Get(ctx, "all-orders")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, v)

	require.NoError(t, c.Set(ctx, "all-orders", `[1]`))
	v, _, _ = c.Get(ctx, "all-orders")
	require.Equal(t, `[1]`, v)

	require.NoError(t, c.Delete(ctx, "all-orders", "missing"))
	has, err := c.Has(ctx, "all-orders")
	require.NoError(t, err)
	require.False(t, has)

	has, _ = c.Has(ctx, "categories")
	require.True(t, has)
	require.Equal(t, 1, c.Len())
}

func TestNewMemoryRejectsZeroSize(t *testing.T) {
	_, err := NewMemory(0)
	require.Error(t, err)
}

func TestFamily(t *testing.T) {
	tests := map[string]string{
		"admin-stats":     "admin-stats",
		"all-orders":      "all-orders",
		"my-orders-u1":    "my-orders",
		"order-42":        "order",
		"product-p-1":     "product",
		"latest-products": "latest-products",
	}
	for key, want := range tests {
		t.Run(key, func(t *testing.T) {
			require.Equal(t, want, Family(key))
		})
	}
}
