package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

// refreshInterval matches the tracking view's periodic reload.
const refreshInterval = 30 * time.Second

// Dispatcher is the single consumer of change events. It re-fetches
// the affected aggregate set and pushes fresh snapshots to subscribed
// clients, so no mutation ever happens inside a notification callback.
type Dispatcher struct {
	consumer ChangeConsumer
	catalog  CatalogServiceInterface
	orders   OrderServiceInterface
	hub      Broadcaster
}

func NewDispatcher(consumer ChangeConsumer, catalog CatalogServiceInterface, orders OrderServiceInterface, hub Broadcaster) *Dispatcher {
	return &Dispatcher{
		consumer: consumer,
		catalog:  catalog,
		orders:   orders,
		hub:      hub,
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	log.Println("[dispatcher] starting change-event loop")

	events := make(chan domain.ChangeEvent)
	go d.readLoop(ctx, events)

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[dispatcher] stopping")
			return
		case event := <-events:
			d.HandleChange(event)
		case <-ticker.C:
			d.BroadcastOrders()
		}
	}
}

func (d *Dispatcher) readLoop(ctx context.Context, events chan<- domain.ChangeEvent) {
	if d.consumer == nil {
		return
	}
	for {
		event, err := d.consumer.ReadChange(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[dispatcher] error reading change event: %v", err)
			continue
		}
		select {
		case events <- *event:
		case <-ctx.Done():
			return
		}
	}
}

func (d *Dispatcher) HandleChange(event domain.ChangeEvent) {
	switch event.Table {
	case domain.TableMenuItems:
		d.BroadcastMenu()
	case domain.TableOrders:
		d.BroadcastOrders()
	default:
		log.Printf("[dispatcher] ignoring change event for unknown table %q", event.Table)
	}
}

func (d *Dispatcher) BroadcastMenu() {
	items, err := d.catalog.ListItems()
	if err != nil {
		log.Printf("[dispatcher] error fetching menu snapshot: %v", err)
		return
	}
	d.push("menu", items)
}

func (d *Dispatcher) BroadcastOrders() {
	orders, err := d.orders.List("", "")
	if err != nil {
		log.Printf("[dispatcher] error fetching orders snapshot: %v", err)
		return
	}
	d.push("orders", orders)
}

func (d *Dispatcher) push(topic string, payload interface{}) {
	message, err := json.Marshal(map[string]interface{}{
		"type":    topic,
		"payload": payload,
	})
	if err != nil {
		log.Printf("[dispatcher] error marshaling %s snapshot: %v", topic, err)
		return
	}
	d.hub.Broadcast(topic, message)
}
