package ordersvc

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/chokun100/coffeeshop/internal/dal/interfaces/iorderitemrepo"
	"github.com/chokun100/coffeeshop/internal/dal/interfaces/iorderrepo"
	"github.com/chokun100/coffeeshop/internal/dal/postgres"
	"github.com/chokun100/coffeeshop/internal/dal/uow"
	"github.com/chokun100/coffeeshop/internal/service/models/apperrors"
	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/orderitem"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
	"github.com/chokun100/coffeeshop/internal/service/models/ordertype"
	"github.com/chokun100/coffeeshop/internal/service/models/variant"
)

// OrderService is a service for managing the order lifecycle.
type OrderService struct {
	pgClient         *postgres.Client
	newUOW           func() unitOfWork
	strictStatusFlow bool
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorderrepo.IOrderRepository
	OrderItemRepository() iorderitemrepo.IOrderItemRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.newUOW == nil {
		s.newUOW = func() unitOfWork {
			return uow.NewUnitOfWork(s.pgClient)
		}
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithUnitOfWorkFactory overrides how units of work are created.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.newUOW = factory
	}
}

// WithStrictStatusFlow enables the monotonic status graph. The default is
// the permissive behavior: any valid status value may be set at any time.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithStrictStatusFlow(strict bool) option {
	return func(s *OrderService) {
		s.strictStatusFlow = strict
	}
}

// validateNewOrder checks the order before any write happens.
func validateNewOrder(o order.Order) error {
	if strings.TrimSpace(o.CustomerName) == "" {
		return apperrors.ErrEmptyCustomerName
	}
	if _, err := ordertype.ParseOrderType(o.OrderType.String()); err != nil {
		return err
	}
	if len(o.Items) == 0 {
		return apperrors.ErrEmptyOrder
	}

	for _, item := range o.Items {
		if item.MenuItemID <= 0 {
			return apperrors.ErrInvalidMenuItemID
		}
		if strings.TrimSpace(item.ItemName) == "" {
			return apperrors.ErrEmptyItemName
		}
		if item.Quantity < 1 {
			return apperrors.ErrInvalidQuantity
		}
		if item.UnitPriceCents < 0 {
			return apperrors.ErrInvalidUnitPrice
		}
	}

	return nil
}

// CreateOrder validates and persists a complete order atomically: header,
// items and queue number all become visible in one commit or not at all.
// The total is computed server-side from the submitted price snapshots.
func (s *OrderService) CreateOrder(ctx context.Context, o order.Order) (order.Order, error) {
	if err := validateNewOrder(o); err != nil {
		return order.Order{}, err
	}

	now := time.Now()
	o.Status = orderstatus.StatusPending
	o.CreatedAt = now
	o.UpdatedAt = now
	o.TotalCents = order.TotalFromItems(o.Items)

	for i := range o.Items {
		if o.Items[i].Size == "" {
			o.Items[i].Size = variant.SizeM
		}
		if o.Items[i].MilkType == "" {
			o.Items[i].MilkType = variant.MilkNone
		}
		if o.Items[i].SugarLevel == "" {
			o.Items[i].SugarLevel = variant.SugarNormal
		}
		o.Items[i].CreatedAt = now
	}

	work := s.newUOW()
	if err := work.Begin(ctx); err != nil {
		return order.Order{}, err
	}
	defer func() {
		if err := work.Rollback(ctx); err != nil {
			slog.Error("Error rolling back order creation", "error", err)
		}
	}()

	inserted, err := work.OrderRepository().Insert(ctx, o)
	if err != nil {
		return order.Order{}, err
	}

	for i := range inserted.Items {
		inserted.Items[i].OrderID = inserted.ID
	}
	items, err := work.OrderItemRepository().BulkInsert(ctx, inserted.Items)
	if err != nil {
		return order.Order{}, err
	}
	inserted.Items = items

	inserted.QueueNumber = order.FormatQueueNumber(inserted.ID)
	if err := work.OrderRepository().SetQueueNumber(ctx, inserted.ID, inserted.QueueNumber); err != nil {
		return order.Order{}, err
	}

	if err := work.Commit(ctx); err != nil {
		return order.Order{}, err
	}

	return inserted, nil
}

// GetOrderByID retrieves an order with its items.
func (s *OrderService) GetOrderByID(ctx context.Context, id int64) (order.Order, error) {
	if id <= 0 {
		return order.Order{}, apperrors.ErrInvalidOrderID
	}

	work := s.newUOW()

	found, err := work.OrderRepository().GetByID(ctx, id)
	if err != nil {
		return order.Order{}, err
	}

	items, err := work.OrderItemRepository().Query(ctx, &orderitem.QueryOrderItemsModel{
		OrderIds: []int64{id},
	})
	if err != nil {
		return order.Order{}, err
	}
	found.Items = items
	found.ItemCount = len(items)

	return *found, nil
}

// ListOrders retrieves recent order headers with item counts.
func (s *OrderService) ListOrders(ctx context.Context, query order.QueryOrdersModel) ([]order.Order, error) {
	if query.Limit < 0 {
		return nil, apperrors.ErrInvalidLimit
	}
	if query.Limit == 0 {
		query.Limit = 50
	}

	work := s.newUOW()

	orders, err := work.OrderRepository().Query(ctx, &query)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []order.Order{}
	}

	return orders, nil
}

// UpdateStatus transitions an order to the given status and stamps
// updated-at. In strict mode the monotonic status graph is enforced;
// otherwise any valid status value is accepted, matching the historical
// behavior of the shop.
func (s *OrderService) UpdateStatus(
	ctx context.Context,
	id int64,
	status orderstatus.Status,
) (order.Order, error) {
	if id <= 0 {
		return order.Order{}, apperrors.ErrInvalidOrderID
	}
	if _, err := orderstatus.ParseStatus(status.String()); err != nil {
		return order.Order{}, err
	}

	work := s.newUOW()

	if s.strictStatusFlow {
		current, err := work.OrderRepository().GetByID(ctx, id)
		if err != nil {
			return order.Order{}, err
		}
		if !current.Status.CanTransition(status) {
			return order.Order{}, apperrors.ErrInvalidTransition
		}
	}

	updated, err := work.OrderRepository().UpdateStatus(ctx, id, status, time.Now())
	if err != nil {
		return order.Order{}, err
	}

	return *updated, nil
}
