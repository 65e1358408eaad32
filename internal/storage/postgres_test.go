package storage

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

var menuColumns = []string{
	"id", "name", "description", "price", "category", "image",
	"available", "estimated_time", "allergens",
	"calories", "protein", "carbs", "fat", "created_at",
}

var orderColumns = []string{
	"id", "customer_name", "table_number", "status", "order_time",
	"estimated_ready_time", "total_amount", "payment_status", "special_instructions",
}

func newTestStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func TestPostgresStore_ListMenuItems(t *testing.T) {
	store, mock := newTestStore(t)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM menu_items").
		WillReturnRows(sqlmock.NewRows(menuColumns).
			AddRow("1", "Classic Burger", "Juicy beef patty", 12.99, "Burgers", "",
				true, 15, "{gluten,dairy}", 650, 35, 45, 32, created).
			AddRow("2", "Caesar Salad", "Crisp romaine", 9.99, "Salads", "",
				false, 8, "{dairy,gluten}", 320, 12, 15, 24, created))

	items, err := store.ListMenuItems()
	assert.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Classic Burger", items[0].Name)
	assert.Equal(t, []string{"gluten", "dairy"}, items[0].Allergens)
	assert.Equal(t, 650, items[0].Nutrition.Calories)
	assert.False(t, items[1].Available)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetMenuItem(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		store, mock := newTestStore(t)
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery("FROM menu_items").
			WithArgs("1").
			WillReturnRows(sqlmock.NewRows(menuColumns).
				AddRow("1", "Classic Burger", "", 12.99, "Burgers", "", true, 15, "{gluten}", 650, 35, 45, 32, created))

		item, err := store.GetMenuItem("1")
		assert.NoError(t, err)
		assert.Equal(t, "Classic Burger", item.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to NotFound", func(t *testing.T) {
		store, mock := newTestStore(t)

		mock.ExpectQuery("FROM menu_items").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(menuColumns))

		_, err := store.GetMenuItem("missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_SetAvailability(t *testing.T) {
	t.Run("reports affected rows", func(t *testing.T) {
		store, mock := newTestStore(t)

		mock.ExpectExec("UPDATE menu_items SET available").
			WithArgs(false, "1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := store.SetAvailability("1", false)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("unknown id affects nothing", func(t *testing.T) {
		store, mock := newTestStore(t)

		mock.ExpectExec("UPDATE menu_items SET available").
			WithArgs(true, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := store.SetAvailability("missing", true)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestPostgresStore_SetEstimatedTime(t *testing.T) {
	store, mock := newTestStore(t)

	mock.ExpectExec("UPDATE menu_items SET estimated_time").
		WithArgs(25, "2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := store.SetEstimatedTime("2", 25)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestPostgresStore_CreateOrder(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	order := &domain.Order{
		ID:                 "o1",
		CustomerName:       "Alice",
		TableNumber:        "7",
		Status:             domain.StatusConfirmed,
		OrderTime:          now,
		EstimatedReadyTime: now.Add(20 * time.Minute),
		TotalAmount:        27.98,
		PaymentStatus:      domain.PaymentPending,
		Items: []domain.OrderItem{
			{MenuItemID: "1", Name: "Classic Burger", Quantity: 2, Price: 12.99},
			{MenuItemID: "6", Name: "Chocolate Brownie", Quantity: 1, Price: 7.99},
		},
	}

	t.Run("header and lines commit together", func(t *testing.T) {
		store, mock := newTestStore(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, store.CreateOrder(order))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("line failure rolls the order back", func(t *testing.T) {
		store, mock := newTestStore(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO orders").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		assert.Error(t, store.CreateOrder(order))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_GetOrder(t *testing.T) {
	t.Run("found with items", func(t *testing.T) {
		store, mock := newTestStore(t)
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery("FROM orders").
			WithArgs("o1").
			WillReturnRows(sqlmock.NewRows(orderColumns).
				AddRow("o1", "Alice", "7", "confirmed", now, now.Add(20*time.Minute), 27.98, "pending", ""))
		mock.ExpectQuery("FROM order_items").
			WithArgs("o1").
			WillReturnRows(sqlmock.NewRows([]string{"menu_item_id", "name", "quantity", "price", "special_instructions"}).
				AddRow("1", "Classic Burger", 2, 12.99, ""))

		order, err := store.GetOrder("o1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, order.Status)
		require.Len(t, order.Items, 1)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row maps to NotFound", func(t *testing.T) {
		store, mock := newTestStore(t)

		mock.ExpectQuery("FROM orders").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(orderColumns))

		_, err := store.GetOrder("missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPostgresStore_UpdateOrderStatus(t *testing.T) {
	t.Run("status only", func(t *testing.T) {
		store, mock := newTestStore(t)

		mock.ExpectExec("UPDATE orders SET status").
			WithArgs("preparing", "o1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := store.UpdateOrderStatus("o1", domain.StatusPreparing, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("status with a new estimate", func(t *testing.T) {
		store, mock := newTestStore(t)
		readyAt := time.Date(2024, 5, 1, 12, 15, 0, 0, time.UTC)

		mock.ExpectExec("UPDATE orders SET status").
			WithArgs("preparing", readyAt, "o1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := store.UpdateOrderStatus("o1", domain.StatusPreparing, &readyAt)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})
}

func TestPostgresStore_SeedMenu(t *testing.T) {
	store, mock := newTestStore(t)

	items := DefaultMenu()
	for range items {
		mock.ExpectExec("INSERT INTO menu_items").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	assert.NoError(t, store.SeedMenu(items))
	assert.NoError(t, mock.ExpectationsWereMet())
}
