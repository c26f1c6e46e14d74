package order

import (
	"fmt"
	"time"

	"github.com/chokun100/coffeeshop/internal/service/models/orderitem"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
	"github.com/chokun100/coffeeshop/internal/service/models/ordertype"
)

// QueueNumberPrefix starts every queue token shown to customers.
const QueueNumberPrefix = "M"

// Order represents a customer order in the system.
type Order struct {
	ID           int64                 `json:"id"`
	CustomerName string                `json:"customerName"`
	OrderType    ordertype.OrderType   `json:"orderType"`
	Status       orderstatus.Status    `json:"status"`
	TotalCents   int64                 `json:"totalCents"`
	QueueNumber  string                `json:"queueNumber,omitempty"`
	UserID       string                `json:"userId,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	Items        []orderitem.OrderItem `json:"items"`
	ItemCount    int                   `json:"itemCount,omitempty"`
}

// FormatQueueNumber derives the display token from the order id: the prefix
// letter plus the id zero-padded to at least two digits, never truncated.
func FormatQueueNumber(id int64) string {
	return fmt.Sprintf("%s%02d", QueueNumberPrefix, id)
}

// TotalFromItems sums quantity times unit-price snapshot across all items.
func TotalFromItems(items []orderitem.OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += int64(item.Quantity) * item.UnitPriceCents
	}

	return total
}
