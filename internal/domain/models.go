package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

type NutritionalInfo struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type MenuItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         float64         `json:"price"`
	Category      string          `json:"category"`
	Image         string          `json:"image,omitempty"`
	Available     bool            `json:"available"`
	EstimatedTime int             `json:"estimated_time"`
	Allergens     []string        `json:"allergens,omitempty"`
	Nutrition     NutritionalInfo `json:"nutritional_info"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderItem carries a snapshot of the menu item's name and price taken
// at order time, so later catalog edits never change a placed order.
type OrderItem struct {
	MenuItemID          string  `json:"menu_item_id"`
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

type Order struct {
	ID                  string      `json:"id"`
	Items               []OrderItem `json:"items"`
	Status              OrderStatus `json:"status"`
	CustomerName        string      `json:"customer_name"`
	TableNumber         string      `json:"table_number,omitempty"`
	OrderTime           time.Time   `json:"order_time"`
	EstimatedReadyTime  time.Time   `json:"estimated_ready_time"`
	TotalAmount         float64     `json:"total_amount"`
	PaymentStatus       string      `json:"payment_status"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
}

const (
	TableMenuItems = "menu_items"
	TableOrders    = "orders"
)

// ChangeEvent is emitted after every successful mutation so connected
// views can re-fetch the affected table.
type ChangeEvent struct {
	Type      string    `json:"type"`
	Table     string    `json:"table"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	QRTypeMenuItem = "menu-item"
	QRTypeOrder    = "order"
	QRTypeTable    = "table"
)

// QRPayload is the JSON document embedded in every generated QR code.
type QRPayload struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
