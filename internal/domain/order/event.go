package order

import "time"

const (
	EventCreated       = "order.created"
	EventStatusChanged = "order.status_changed"
)

// Event được publish ra message bus mỗi khi order thay đổi.
type Event struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}
