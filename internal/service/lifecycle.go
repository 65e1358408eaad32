package service

import (
	"fmt"
	"math"
	"time"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

// transitions is the single authoritative map of legal status moves.
// preparing -> preparing is a re-estimation, not a real transition.
var transitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.StatusPending:   {domain.StatusConfirmed, domain.StatusCancelled},
	domain.StatusConfirmed: {domain.StatusPreparing, domain.StatusCancelled},
	domain.StatusPreparing: {domain.StatusPreparing, domain.StatusReady, domain.StatusCancelled},
	domain.StatusReady:     {domain.StatusCompleted, domain.StatusCancelled},
	domain.StatusCompleted: nil,
	domain.StatusCancelled: nil,
}

func ValidateTransition(from, to domain.OrderStatus) error {
	allowed, ok := transitions[from]
	if !ok {
		return fmt.Errorf("%w: unknown order status %q", domain.ErrInvalidArgument, from)
	}
	if _, ok := transitions[to]; !ok {
		return fmt.Errorf("%w: unknown order status %q", domain.ErrInvalidArgument, to)
	}
	for _, next := range allowed {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot move order from %s to %s", domain.ErrIllegalTransition, from, to)
}

func IsTerminal(status domain.OrderStatus) bool {
	return status == domain.StatusCompleted || status == domain.StatusCancelled
}

// IsUrgent reports whether a preparing order has blown past its
// estimate. Derived on every read, never persisted.
func IsUrgent(order domain.Order, now time.Time) bool {
	return order.Status == domain.StatusPreparing && order.EstimatedReadyTime.Before(now)
}

func TimeUntilReady(readyAt, now time.Time) string {
	mins := int(math.Ceil(readyAt.Sub(now).Minutes()))
	if mins <= 0 {
		return "Ready now!"
	}
	if mins == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", mins)
}

func WaitMinutes(readyAt, now time.Time) int {
	mins := int(math.Ceil(readyAt.Sub(now).Minutes()))
	if mins < 0 {
		return 0
	}
	return mins
}

func AverageWaitMinutes(orders []domain.Order, now time.Time) int {
	if len(orders) == 0 {
		return 0
	}
	sum := 0
	for _, order := range orders {
		sum += WaitMinutes(order.EstimatedReadyTime, now)
	}
	return int(math.Round(float64(sum) / float64(len(orders))))
}

// GroupByStatus partitions orders into the six declared buckets.
// Every bucket is present even when empty.
func GroupByStatus(orders []domain.Order) map[domain.OrderStatus][]domain.Order {
	grouped := map[domain.OrderStatus][]domain.Order{
		domain.StatusPending:   {},
		domain.StatusConfirmed: {},
		domain.StatusPreparing: {},
		domain.StatusReady:     {},
		domain.StatusCompleted: {},
		domain.StatusCancelled: {},
	}
	for _, order := range orders {
		grouped[order.Status] = append(grouped[order.Status], order)
	}
	return grouped
}

// OrderView decorates an order with the read-time derivations the
// kitchen and tracking views render.
type OrderView struct {
	domain.Order
	Urgent         bool   `json:"urgent"`
	TimeUntilReady string `json:"time_until_ready"`
}

func NewOrderView(order domain.Order, now time.Time) OrderView {
	return OrderView{
		Order:          order,
		Urgent:         IsUrgent(order, now),
		TimeUntilReady: TimeUntilReady(order.EstimatedReadyTime, now),
	}
}
