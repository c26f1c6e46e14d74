package postgresrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/chokun100/coffeeshop/internal/dal/postgres"
	"github.com/chokun100/coffeeshop/internal/service/models/apperrors"
	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/orderitem"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
	"github.com/chokun100/coffeeshop/internal/service/models/ordertype"
)

// OrderDal represents order data access layer model.
type OrderDal struct {
	Id           int64     `db:"id"`
	CustomerName string    `db:"customer_name"`
	OrderType    string    `db:"order_type"`
	Status       string    `db:"status"`
	TotalCents   int64     `db:"total_cents"`
	QueueNumber  *string   `db:"queue_number"`
	UserId       *string   `db:"user_id"`
	Notes        *string   `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ToModel converts OrderDal to service layer Order model.
func (o *OrderDal) ToModel() (*order.Order, error) {
	typ, err := ordertype.ParseOrderType(o.OrderType)
	if err != nil {
		return nil, err
	}
	status, err := orderstatus.ParseStatus(o.Status)
	if err != nil {
		return nil, err
	}

	model := &order.Order{
		ID:           o.Id,
		CustomerName: o.CustomerName,
		OrderType:    typ,
		Status:       status,
		TotalCents:   o.TotalCents,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		Items:        []orderitem.OrderItem{}, // Will be populated separately
	}
	if o.QueueNumber != nil {
		model.QueueNumber = *o.QueueNumber
	}
	if o.UserId != nil {
		model.UserID = *o.UserId
	}
	if o.Notes != nil {
		model.Notes = *o.Notes
	}

	return model, nil
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn postgres.Conn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// Insert persists the order header and returns it with the generated id.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	sql, args, err := r.sb.
		Insert("orders").
		Columns("customer_name", "order_type", "status", "total_cents", "user_id", "notes", "created_at", "updated_at").
		Values(o.CustomerName, o.OrderType.String(), o.Status.String(), o.TotalCents, nullable(o.UserID), nullable(o.Notes), o.CreatedAt, o.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to build insert query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&o.ID); err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	return o, nil
}

// SetQueueNumber patches the queue token in after the id is known.
func (r *PostgresOrderRepository) SetQueueNumber(ctx context.Context, id int64, queueNumber string) error {
	sql, args, err := r.sb.
		Update("orders").
		Set("queue_number", queueNumber).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	tag, err := r.conn.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to set queue number: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOrderNotFound
	}

	return nil
}

// GetByID retrieves a single order header.
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	sql, args, err := r.sb.
		Select("id", "customer_name", "order_type", "status", "total_cents", "queue_number", "user_id", "notes", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var dal OrderDal
	err = r.conn.QueryRow(ctx, sql, args...).Scan(
		&dal.Id,
		&dal.CustomerName,
		&dal.OrderType,
		&dal.Status,
		&dal.TotalCents,
		&dal.QueueNumber,
		&dal.UserId,
		&dal.Notes,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	model, err := dal.ToModel()
	if err != nil {
		return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
	}

	return model, nil
}

// UpdateStatus sets the order status and updated-at timestamp and returns
// the updated header.
func (r *PostgresOrderRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status orderstatus.Status,
	updatedAt time.Time,
) (*order.Order, error) {
	sql, args, err := r.sb.
		Update("orders").
		Set("status", status.String()).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, customer_name, order_type, status, total_cents, queue_number, user_id, notes, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	var dal OrderDal
	err = r.conn.QueryRow(ctx, sql, args...).Scan(
		&dal.Id,
		&dal.CustomerName,
		&dal.OrderType,
		&dal.Status,
		&dal.TotalCents,
		&dal.QueueNumber,
		&dal.UserId,
		&dal.Notes,
		&dal.CreatedAt,
		&dal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	model, err := dal.ToModel()
	if err != nil {
		return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
	}

	return model, nil
}

// Query retrieves order headers with per-order item counts, newest first.
func (r *PostgresOrderRepository) Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	query := r.sb.
		Select(
			"o.id",
			"o.customer_name",
			"o.order_type",
			"o.status",
			"o.total_cents",
			"o.queue_number",
			"o.user_id",
			"o.notes",
			"o.created_at",
			"o.updated_at",
			"count(i.id) AS item_count",
		).
		From("orders o").
		LeftJoin("order_items i ON i.order_id = o.id").
		GroupBy("o.id").
		OrderBy("o.created_at DESC")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"o.id": filter.Ids})
	}

	if filter.Status != "" {
		query = query.Where(sq.Eq{"o.status": filter.Status.String()})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var result []order.Order
	for rows.Next() {
		var dal OrderDal
		var itemCount int

		err := rows.Scan(
			&dal.Id,
			&dal.CustomerName,
			&dal.OrderType,
			&dal.Status,
			&dal.TotalCents,
			&dal.QueueNumber,
			&dal.UserId,
			&dal.Notes,
			&dal.CreatedAt,
			&dal.UpdatedAt,
			&itemCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order dal to model: %w", err)
		}
		model.ItemCount = itemCount

		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
