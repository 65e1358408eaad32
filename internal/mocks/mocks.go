package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
	"github.com/DtronicE/menu-magic-offline/internal/service"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) ListMenuItems() ([]domain.MenuItem, error) {
	args := m.Called()
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *MenuRepository) GetMenuItem(id string) (*domain.MenuItem, error) {
	args := m.Called(id)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *MenuRepository) SetAvailability(id string, available bool) (int64, error) {
	args := m.Called(id, available)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuRepository) SetEstimatedTime(id string, minutes int) (int64, error) {
	args := m.Called(id, minutes)
	return args.Get(0).(int64), args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderRepository) GetOrder(id string) (*domain.Order, error) {
	args := m.Called(id)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) ListOrders() ([]domain.Order, error) {
	args := m.Called()
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(id string, status domain.OrderStatus, readyAt *time.Time) (int64, error) {
	args := m.Called(id, status, readyAt)
	return args.Get(0).(int64), args.Error(1)
}

type ChangePublisher struct {
	mock.Mock
}

func NewChangePublisher(t testingT) *ChangePublisher {
	m := &ChangePublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ChangePublisher) PublishChange(ctx context.Context, event domain.ChangeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type ChangeConsumer struct {
	mock.Mock
}

func NewChangeConsumer(t testingT) *ChangeConsumer {
	m := &ChangeConsumer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ChangeConsumer) ReadChange(ctx context.Context) (*domain.ChangeEvent, error) {
	args := m.Called(ctx)
	var event *domain.ChangeEvent
	if args.Get(0) != nil {
		event = args.Get(0).(*domain.ChangeEvent)
	}
	return event, args.Error(1)
}

type Broadcaster struct {
	mock.Mock
}

func NewBroadcaster(t testingT) *Broadcaster {
	m := &Broadcaster{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Broadcaster) Broadcast(topic string, message []byte) {
	m.Called(topic, message)
}

type CatalogService struct {
	mock.Mock
}

func NewCatalogService(t testingT) *CatalogService {
	m := &CatalogService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogService) ListItems() ([]domain.MenuItem, error) {
	args := m.Called()
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *CatalogService) GetItem(id string) (*domain.MenuItem, error) {
	args := m.Called(id)
	var item *domain.MenuItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.MenuItem)
	}
	return item, args.Error(1)
}

func (m *CatalogService) Filter(query, category string) ([]domain.MenuItem, error) {
	args := m.Called(query, category)
	var items []domain.MenuItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.MenuItem)
	}
	return items, args.Error(1)
}

func (m *CatalogService) Categories() ([]string, error) {
	args := m.Called()
	var categories []string
	if args.Get(0) != nil {
		categories = args.Get(0).([]string)
	}
	return categories, args.Error(1)
}

func (m *CatalogService) SetAvailability(ctx context.Context, id string, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *CatalogService) SetEstimatedTime(ctx context.Context, id string, minutes int) error {
	args := m.Called(ctx, id, minutes)
	return args.Error(0)
}

type OrderService struct {
	mock.Mock
}

func NewOrderService(t testingT) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderService) Create(ctx context.Context, req service.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderService) Get(id string) (*domain.Order, error) {
	args := m.Called(id)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderService) List(status, query string) ([]domain.Order, error) {
	args := m.Called(status, query)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderService) Advance(ctx context.Context, id string, target domain.OrderStatus, etaMinutes int) (*domain.Order, error) {
	args := m.Called(ctx, id, target, etaMinutes)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderService) ActiveOrders() ([]domain.Order, error) {
	args := m.Called()
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderService) KitchenStats() (*service.KitchenStats, error) {
	args := m.Called()
	var stats *service.KitchenStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*service.KitchenStats)
	}
	return stats, args.Error(1)
}

var (
	_ service.MenuRepository          = (*MenuRepository)(nil)
	_ service.OrderRepository         = (*OrderRepository)(nil)
	_ service.ChangePublisher         = (*ChangePublisher)(nil)
	_ service.ChangeConsumer          = (*ChangeConsumer)(nil)
	_ service.Broadcaster             = (*Broadcaster)(nil)
	_ service.CatalogServiceInterface = (*CatalogService)(nil)
	_ service.OrderServiceInterface   = (*OrderService)(nil)
)
