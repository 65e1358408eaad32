package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL,
			category TEXT NOT NULL,
			image TEXT,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			estimated_time INTEGER NOT NULL,
			allergens TEXT[],
			calories INTEGER,
			protein INTEGER,
			carbs INTEGER,
			fat INTEGER,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			customer_name TEXT NOT NULL,
			table_number TEXT,
			status TEXT NOT NULL,
			order_time TIMESTAMPTZ NOT NULL,
			estimated_ready_time TIMESTAMPTZ NOT NULL,
			total_amount NUMERIC(10,2) NOT NULL,
			payment_status TEXT NOT NULL,
			special_instructions TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL REFERENCES orders(id),
			menu_item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			special_instructions TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) ListMenuItems() ([]domain.MenuItem, error) {
	rows, err := s.DB.Query(`
		SELECT id, name, COALESCE(description, ''), price, category, COALESCE(image, ''),
		       available, estimated_time, allergens,
		       COALESCE(calories, 0), COALESCE(protein, 0), COALESCE(carbs, 0), COALESCE(fat, 0),
		       created_at
		FROM menu_items
		ORDER BY category, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *PostgresStore) GetMenuItem(id string) (*domain.MenuItem, error) {
	row := s.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), price, category, COALESCE(image, ''),
		       available, estimated_time, allergens,
		       COALESCE(calories, 0), COALESCE(protein, 0), COALESCE(carbs, 0), COALESCE(fat, 0),
		       created_at
		FROM menu_items
		WHERE id = $1`, id)

	item, err := scanMenuItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PostgresStore) SetAvailability(id string, available bool) (int64, error) {
	result, err := s.DB.Exec("UPDATE menu_items SET available = $1 WHERE id = $2", available, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *PostgresStore) SetEstimatedTime(id string, minutes int) (int64, error) {
	result, err := s.DB.Exec("UPDATE menu_items SET estimated_time = $1 WHERE id = $2", minutes, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *PostgresStore) SeedMenu(items []domain.MenuItem) error {
	for _, item := range items {
		_, err := s.DB.Exec(`
			INSERT INTO menu_items (id, name, description, price, category, image, available, estimated_time,
			                        allergens, calories, protein, carbs, fat)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (id) DO NOTHING`,
			item.ID, item.Name, item.Description, item.Price, item.Category, item.Image,
			item.Available, item.EstimatedTime, pq.Array(item.Allergens),
			item.Nutrition.Calories, item.Nutrition.Protein, item.Nutrition.Carbs, item.Nutrition.Fat)
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateOrder persists the order header and its lines in one
// transaction so a partial order never becomes visible.
func (s *PostgresStore) CreateOrder(order *domain.Order) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO orders (id, customer_name, table_number, status, order_time,
		                    estimated_ready_time, total_amount, payment_status, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		order.ID, order.CustomerName, order.TableNumber, order.Status, order.OrderTime,
		order.EstimatedReadyTime, order.TotalAmount, order.PaymentStatus, order.SpecialInstructions)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		_, err = tx.Exec(`
			INSERT INTO order_items (order_id, menu_item_id, name, quantity, price, special_instructions)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, item.MenuItemID, item.Name, item.Quantity, item.Price, item.SpecialInstructions)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) GetOrder(id string) (*domain.Order, error) {
	var order domain.Order
	err := s.DB.QueryRow(`
		SELECT id, customer_name, COALESCE(table_number, ''), status, order_time,
		       estimated_ready_time, total_amount, payment_status, COALESCE(special_instructions, '')
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.CustomerName, &order.TableNumber, &order.Status, &order.OrderTime,
			&order.EstimatedReadyTime, &order.TotalAmount, &order.PaymentStatus, &order.SpecialInstructions)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	items, err := s.listOrderItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (s *PostgresStore) ListOrders() ([]domain.Order, error) {
	rows, err := s.DB.Query(`
		SELECT id, customer_name, COALESCE(table_number, ''), status, order_time,
		       estimated_ready_time, total_amount, payment_status, COALESCE(special_instructions, '')
		FROM orders
		ORDER BY order_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.CustomerName, &order.TableNumber, &order.Status, &order.OrderTime,
			&order.EstimatedReadyTime, &order.TotalAmount, &order.PaymentStatus, &order.SpecialInstructions)
		if err != nil {
			continue
		}

		items, err := s.listOrderItems(order.ID)
		if err != nil {
			continue
		}
		order.Items = items
		orders = append(orders, order)
	}
	return orders, nil
}

func (s *PostgresStore) UpdateOrderStatus(id string, status domain.OrderStatus, readyAt *time.Time) (int64, error) {
	var result sql.Result
	var err error
	if readyAt != nil {
		result, err = s.DB.Exec(
			"UPDATE orders SET status = $1, estimated_ready_time = $2 WHERE id = $3",
			status, *readyAt, id)
	} else {
		result, err = s.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, id)
	}
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *PostgresStore) listOrderItems(orderID string) ([]domain.OrderItem, error) {
	rows, err := s.DB.Query(`
		SELECT menu_item_id, name, quantity, price, COALESCE(special_instructions, '')
		FROM order_items
		WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Quantity, &item.Price, &item.SpecialInstructions); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var allergens pq.StringArray
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.Image,
		&item.Available, &item.EstimatedTime, &allergens,
		&item.Nutrition.Calories, &item.Nutrition.Protein, &item.Nutrition.Carbs, &item.Nutrition.Fat,
		&item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.Allergens = []string(allergens)
	return &item, nil
}
