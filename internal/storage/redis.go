package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

const (
	menuKey   = "menu-magic:menu"
	ordersKey = "menu-magic:orders"
)

// RedisStore is the fallback store used when no database is
// configured. Aggregates are held as JSON blobs under fixed keys, one
// writer at a time.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		ctx:    context.Background(),
	}
}

// Seed installs the sample menu once; an existing menu is left alone.
func (s *RedisStore) Seed(items []domain.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.SetNX(s.ctx, menuKey, data, 0).Err()
}

func (s *RedisStore) ListMenuItems() ([]domain.MenuItem, error) {
	items, err := s.loadMenu()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Category < items[j].Category
	})
	return items, nil
}

func (s *RedisStore) GetMenuItem(id string) (*domain.MenuItem, error) {
	items, err := s.loadMenu()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
}

func (s *RedisStore) SetAvailability(id string, available bool) (int64, error) {
	return s.updateMenuItem(id, func(item *domain.MenuItem) {
		item.Available = available
	})
}

func (s *RedisStore) SetEstimatedTime(id string, minutes int) (int64, error) {
	return s.updateMenuItem(id, func(item *domain.MenuItem) {
		item.EstimatedTime = minutes
	})
}

func (s *RedisStore) CreateOrder(order *domain.Order) error {
	orders, err := s.loadOrders()
	if err != nil {
		return err
	}
	orders = append(orders, *order)
	return s.saveOrders(orders)
}

func (s *RedisStore) GetOrder(id string) (*domain.Order, error) {
	orders, err := s.loadOrders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
}

func (s *RedisStore) ListOrders() ([]domain.Order, error) {
	orders, err := s.loadOrders()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderTime.After(orders[j].OrderTime)
	})
	return orders, nil
}

func (s *RedisStore) UpdateOrderStatus(id string, status domain.OrderStatus, readyAt *time.Time) (int64, error) {
	orders, err := s.loadOrders()
	if err != nil {
		return 0, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		if readyAt != nil {
			orders[i].EstimatedReadyTime = *readyAt
		}
		if err := s.saveOrders(orders); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return 0, nil
}

func (s *RedisStore) updateMenuItem(id string, apply func(*domain.MenuItem)) (int64, error) {
	items, err := s.loadMenu()
	if err != nil {
		return 0, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		apply(&items[i])
		if err := s.saveMenu(items); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return 0, nil
}

func (s *RedisStore) loadMenu() ([]domain.MenuItem, error) {
	raw, err := s.client.Get(s.ctx, menuKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	var items []domain.MenuItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *RedisStore) saveMenu(items []domain.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.client.Set(s.ctx, menuKey, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}

func (s *RedisStore) loadOrders() ([]domain.Order, error) {
	raw, err := s.client.Get(s.ctx, ordersKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	var orders []domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *RedisStore) saveOrders(orders []domain.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	if err := s.client.Set(s.ctx, ordersKey, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	return nil
}
