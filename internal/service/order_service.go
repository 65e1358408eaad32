package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

type OrderItemRequest struct {
	MenuItemID          string `json:"menu_item_id"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

type CreateOrderRequest struct {
	CustomerName        string             `json:"customer_name"`
	TableNumber         string             `json:"table_number,omitempty"`
	Items               []OrderItemRequest `json:"items"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
}

type KitchenStats struct {
	ActiveOrders       int `json:"active_orders"`
	Confirmed          int `json:"confirmed"`
	Preparing          int `json:"preparing"`
	AverageWaitMinutes int `json:"average_wait_minutes"`
}

type OrderService struct {
	orders    OrderRepository
	menu      MenuRepository
	publisher ChangePublisher

	// Now is swappable so tests can pin the clock.
	Now func() time.Time
}

func NewOrderService(orders OrderRepository, menu MenuRepository, publisher ChangePublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		menu:      menu,
		publisher: publisher,
		Now:       time.Now,
	}
}

func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", domain.ErrInvalidArgument)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domain.ErrInvalidArgument)
	}

	now := s.Now()
	items := make([]domain.OrderItem, 0, len(req.Items))
	total := 0.0
	maxPrep := 0
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for item %s", domain.ErrInvalidArgument, line.MenuItemID)
		}
		menuItem, err := s.menu.GetMenuItem(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{
			MenuItemID:          menuItem.ID,
			Name:                menuItem.Name,
			Quantity:            line.Quantity,
			Price:               menuItem.Price,
			SpecialInstructions: line.SpecialInstructions,
		})
		total += menuItem.Price * float64(line.Quantity)
		if menuItem.EstimatedTime > maxPrep {
			maxPrep = menuItem.EstimatedTime
		}
	}

	// Kitchen lines are prepared in parallel, so the estimate follows
	// the slowest item rather than the sum.
	order := &domain.Order{
		ID:                  uuid.NewString(),
		Items:               items,
		Status:              domain.StatusConfirmed,
		CustomerName:        req.CustomerName,
		TableNumber:         req.TableNumber,
		OrderTime:           now,
		EstimatedReadyTime:  now.Add(time.Duration(maxPrep) * time.Minute),
		TotalAmount:         total,
		PaymentStatus:       domain.PaymentPending,
		SpecialInstructions: req.SpecialInstructions,
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, err
	}
	s.publishChange(ctx, order.ID)
	return order, nil
}

func (s *OrderService) Get(id string) (*domain.Order, error) {
	return s.orders.GetOrder(id)
}

// List returns orders newest first, optionally narrowed by status and
// by a substring match on id, customer name or table number.
func (s *OrderService) List(status, query string) ([]domain.Order, error) {
	orders, err := s.orders.ListOrders()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if status != "" && status != "all" && order.Status != domain.OrderStatus(status) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(order.ID), q) &&
			!strings.Contains(strings.ToLower(order.CustomerName), q) &&
			!strings.Contains(strings.ToLower(order.TableNumber), q) {
			continue
		}
		filtered = append(filtered, order)
	}
	return filtered, nil
}

// Advance moves an order through the lifecycle. A positive etaMinutes
// recomputes the ready estimate from the current clock; zero or absent
// leaves the estimate untouched.
func (s *OrderService) Advance(ctx context.Context, id string, target domain.OrderStatus, etaMinutes int) (*domain.Order, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(order.Status, target); err != nil {
		return nil, err
	}

	var readyAt *time.Time
	if etaMinutes > 0 {
		t := s.Now().Add(time.Duration(etaMinutes) * time.Minute)
		readyAt = &t
	}

	affected, err := s.orders.UpdateOrderStatus(id, target, readyAt)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, id)
	}

	order.Status = target
	if readyAt != nil {
		order.EstimatedReadyTime = *readyAt
	}
	s.publishChange(ctx, id)
	return order, nil
}

// ActiveOrders is the kitchen queue: confirmed and preparing orders,
// oldest first.
func (s *OrderService) ActiveOrders() ([]domain.Order, error) {
	orders, err := s.orders.ListOrders()
	if err != nil {
		return nil, err
	}
	active := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == domain.StatusConfirmed || order.Status == domain.StatusPreparing {
			active = append(active, order)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].OrderTime.Before(active[j].OrderTime)
	})
	return active, nil
}

func (s *OrderService) KitchenStats() (*KitchenStats, error) {
	active, err := s.ActiveOrders()
	if err != nil {
		return nil, err
	}
	stats := &KitchenStats{
		ActiveOrders:       len(active),
		AverageWaitMinutes: AverageWaitMinutes(active, s.Now()),
	}
	for _, order := range active {
		switch order.Status {
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusPreparing:
			stats.Preparing++
		}
	}
	return stats, nil
}

func (s *OrderService) publishChange(ctx context.Context, id string) {
	if s.publisher != nil {
		_ = s.publisher.PublishChange(ctx, domain.ChangeEvent{
			Type:      "order_updated",
			Table:     domain.TableOrders,
			ID:        id,
			Timestamp: time.Now(),
		})
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
