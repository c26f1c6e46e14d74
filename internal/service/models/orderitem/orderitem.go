package orderitem

import (
	"time"

	"github.com/chokun100/coffeeshop/internal/service/models/variant"
)

// OrderItem represents one configured product entry within an order. The
// item name and unit price are snapshots captured at order time and stay
// fixed regardless of later menu changes.
type OrderItem struct {
	ID             int64              `json:"id"`
	OrderID        int64              `json:"orderId"`
	MenuItemID     int64              `json:"menuItemId"`
	ItemName       string             `json:"itemName"`
	Quantity       int                `json:"quantity"`
	UnitPriceCents int64              `json:"unitPriceCents"`
	Size           variant.Size       `json:"size"`
	MilkType       variant.MilkType   `json:"milkType"`
	SugarLevel     variant.SugarLevel `json:"sugarLevel"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// TotalCents is the line total for the item.
func (i OrderItem) TotalCents() int64 {
	return int64(i.Quantity) * i.UnitPriceCents
}
