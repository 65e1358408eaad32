package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
	"github.com/DtronicE/menu-magic-offline/internal/service"
	"github.com/DtronicE/menu-magic-offline/internal/ws"
)

type Handler struct {
	Catalog service.CatalogServiceInterface
	Orders  service.OrderServiceInterface
	QR      service.QRGenerator
	Hub     *ws.Hub
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface, qr service.QRGenerator, hub *ws.Hub) *Handler {
	return &Handler{
		Catalog: catalog,
		Orders:  orders,
		QR:      qr,
		Hub:     hub,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/menu/{id}/availability", h.setAvailability).Methods("PUT")
	r.HandleFunc("/api/menu/{id}/time", h.setEstimatedTime).Methods("PUT")
	r.HandleFunc("/api/menu/{id}/qrcode", h.getMenuItemQRCode).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("POST")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/scan", h.resolveScan).Methods("POST")

	r.HandleFunc("/api/kitchen/orders", h.getKitchenOrders).Methods("GET")
	r.HandleFunc("/api/kitchen/stats", h.getKitchenStats).Methods("GET")

	r.HandleFunc("/ws/{topic}", h.serveWS).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-magic",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	items, err := h.Catalog.Filter(query, category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.Categories()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) setAvailability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Available *bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Available == nil {
		http.Error(w, "request body must include an available flag", http.StatusBadRequest)
		return
	}

	if err := h.Catalog.SetAvailability(r.Context(), id, *body.Available); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "available": *body.Available})
}

func (h *Handler) setEstimatedTime(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		EstimatedTime int `json:"estimated_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Catalog.SetEstimatedTime(r.Context(), id, body.EstimatedTime); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "estimated_time": body.EstimatedTime})
}

func (h *Handler) getMenuItemQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	item, err := h.Catalog.GetItem(id)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeQRCode(w, domain.QRPayload{Type: domain.QRTypeMenuItem, ID: item.ID})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req service.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	query := r.URL.Query().Get("q")

	orders, err := h.Orders.List(status, query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Status        domain.OrderStatus `json:"status"`
		EstimatedTime int                `json:"estimated_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Advance(r.Context(), id, body.Status, body.EstimatedTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.Orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeQRCode(w, domain.QRPayload{Type: domain.QRTypeOrder, ID: order.ID})
}

func (h *Handler) resolveScan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Data string `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, err := service.ParseScan(body.Data)
	if err != nil {
		writeError(w, err)
		return
	}

	switch payload.Type {
	case domain.QRTypeMenuItem:
		item, err := h.Catalog.GetItem(payload.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"type": payload.Type, "menu_item": item})
	case domain.QRTypeOrder:
		order, err := h.Orders.Get(payload.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"type": payload.Type, "order": order})
	default:
		writeJSON(w, http.StatusOK, map[string]interface{}{"type": payload.Type, "table_number": payload.ID})
	}
}

func (h *Handler) getKitchenOrders(w http.ResponseWriter, r *http.Request) {
	active, err := h.Orders.ActiveOrders()
	if err != nil {
		writeError(w, err)
		return
	}

	now := time.Now()
	views := make([]service.OrderView, 0, len(active))
	for _, order := range active {
		views = append(views, service.NewOrderView(order, now))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) getKitchenStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Orders.KitchenStats()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]
	if topic != "menu" && topic != "orders" {
		http.Error(w, "unknown topic", http.StatusNotFound)
		return
	}
	if h.Hub == nil {
		http.Error(w, "realtime updates unavailable", http.StatusServiceUnavailable)
		return
	}
	ws.ServeWS(h.Hub, topic, w, r)
}

func (h *Handler) writeQRCode(w http.ResponseWriter, payload domain.QRPayload) {
	png, err := h.QR.Generate(payload)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrIllegalTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrBackendUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
