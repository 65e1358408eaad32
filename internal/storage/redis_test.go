package storage

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client)
}

func TestRedisStore_SeedIsIdempotent(t *testing.T) {
	store := newTestRedisStore(t)

	require.NoError(t, store.Seed(DefaultMenu()))
	require.NoError(t, store.Seed([]domain.MenuItem{{ID: "x", Name: "Other"}}))

	items, err := store.ListMenuItems()
	assert.NoError(t, err)
	assert.Len(t, items, len(DefaultMenu()))
}

func TestRedisStore_MenuItems(t *testing.T) {
	store := newTestRedisStore(t)
	require.NoError(t, store.Seed(DefaultMenu()))

	t.Run("list is ordered by category", func(t *testing.T) {
		items, err := store.ListMenuItems()
		assert.NoError(t, err)
		require.NotEmpty(t, items)
		for i := 1; i < len(items); i++ {
			assert.LessOrEqual(t, items[i-1].Category, items[i].Category)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		item, err := store.GetMenuItem("1")
		assert.NoError(t, err)
		assert.Equal(t, "Classic Burger", item.Name)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := store.GetMenuItem("missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("set availability persists", func(t *testing.T) {
		affected, err := store.SetAvailability("1", false)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		item, err := store.GetMenuItem("1")
		assert.NoError(t, err)
		assert.False(t, item.Available)
	})

	t.Run("set availability on unknown id affects nothing", func(t *testing.T) {
		affected, err := store.SetAvailability("missing", true)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	t.Run("set estimated time persists", func(t *testing.T) {
		affected, err := store.SetEstimatedTime("2", 30)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		item, err := store.GetMenuItem("2")
		assert.NoError(t, err)
		assert.Equal(t, 30, item.EstimatedTime)
	})
}

func TestRedisStore_Orders(t *testing.T) {
	store := newTestRedisStore(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	first := &domain.Order{
		ID: "o1", CustomerName: "Alice", Status: domain.StatusConfirmed,
		OrderTime: now.Add(-time.Hour), EstimatedReadyTime: now.Add(-40 * time.Minute),
		Items: []domain.OrderItem{{MenuItemID: "1", Name: "Classic Burger", Quantity: 1, Price: 12.99}},
	}
	second := &domain.Order{
		ID: "o2", CustomerName: "Bob", Status: domain.StatusConfirmed,
		OrderTime: now, EstimatedReadyTime: now.Add(20 * time.Minute),
	}

	require.NoError(t, store.CreateOrder(first))
	require.NoError(t, store.CreateOrder(second))

	t.Run("list is newest first", func(t *testing.T) {
		orders, err := store.ListOrders()
		assert.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "o2", orders[0].ID)
		assert.Equal(t, "o1", orders[1].ID)
	})

	t.Run("get preserves order lines", func(t *testing.T) {
		order, err := store.GetOrder("o1")
		assert.NoError(t, err)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "Classic Burger", order.Items[0].Name)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := store.GetOrder("missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update status and estimate", func(t *testing.T) {
		readyAt := now.Add(15 * time.Minute)
		affected, err := store.UpdateOrderStatus("o1", domain.StatusPreparing, &readyAt)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		order, err := store.GetOrder("o1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPreparing, order.Status)
		assert.True(t, order.EstimatedReadyTime.Equal(readyAt))
	})

	t.Run("update unknown order affects nothing", func(t *testing.T) {
		affected, err := store.UpdateOrderStatus("missing", domain.StatusPreparing, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestRedisStore_EmptyStateReadsCleanly(t *testing.T) {
	store := newTestRedisStore(t)

	items, err := store.ListMenuItems()
	assert.NoError(t, err)
	assert.Empty(t, items)

	orders, err := store.ListOrders()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}
