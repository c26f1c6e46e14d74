package iorderrepo

import (
	"context"
	"time"

	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
)

// IOrderRepository is an interface for order postgres repository.
type IOrderRepository interface {
	Insert(ctx context.Context, o order.Order) (order.Order, error)
	SetQueueNumber(ctx context.Context, id int64, queueNumber string) error
	GetByID(ctx context.Context, id int64) (*order.Order, error)
	UpdateStatus(ctx context.Context, id int64, status orderstatus.Status, updatedAt time.Time) (*order.Order, error)
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
}
