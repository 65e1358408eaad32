package service

import (
	"context"
	"time"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

type MenuRepository interface {
	ListMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id string) (*domain.MenuItem, error)
	SetAvailability(id string, available bool) (int64, error)
	SetEstimatedTime(id string, minutes int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(id string) (*domain.Order, error)
	ListOrders() ([]domain.Order, error)
	UpdateOrderStatus(id string, status domain.OrderStatus, readyAt *time.Time) (int64, error)
}

type ChangePublisher interface {
	PublishChange(ctx context.Context, event domain.ChangeEvent) error
}

type ChangeConsumer interface {
	ReadChange(ctx context.Context) (*domain.ChangeEvent, error)
}

type Broadcaster interface {
	Broadcast(topic string, message []byte)
}

type CatalogServiceInterface interface {
	ListItems() ([]domain.MenuItem, error)
	GetItem(id string) (*domain.MenuItem, error)
	Filter(query, category string) ([]domain.MenuItem, error)
	Categories() ([]string, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	SetEstimatedTime(ctx context.Context, id string, minutes int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)
	Get(id string) (*domain.Order, error)
	List(status, query string) ([]domain.Order, error)
	Advance(ctx context.Context, id string, target domain.OrderStatus, etaMinutes int) (*domain.Order, error)
	ActiveOrders() ([]domain.Order, error)
	KitchenStats() (*KitchenStats, error)
}
