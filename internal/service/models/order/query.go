package order

import "github.com/chokun100/coffeeshop/internal/service/models/orderstatus"

// QueryOrdersModel represents filter parameters for querying orders.
type QueryOrdersModel struct {
	Ids    []int64            `json:"ids,omitempty"`
	Status orderstatus.Status `json:"status,omitempty"`
	Limit  int                `json:"limit,omitempty"`
	Offset int                `json:"offset,omitempty"`
}
