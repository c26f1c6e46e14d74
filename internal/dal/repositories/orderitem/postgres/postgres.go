package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/chokun100/coffeeshop/internal/dal/postgres"
	"github.com/chokun100/coffeeshop/internal/service/models/orderitem"
	"github.com/chokun100/coffeeshop/internal/service/models/variant"
)

// OrderItemDal represents order item data access layer model.
type OrderItemDal struct {
	Id             int64     `db:"id"`
	OrderId        int64     `db:"order_id"`
	MenuItemId     int64     `db:"menu_item_id"`
	ItemName       string    `db:"item_name"`
	Quantity       int       `db:"quantity"`
	UnitPriceCents int64     `db:"unit_price_cents"`
	Size           string    `db:"size"`
	MilkType       string    `db:"milk_type"`
	SugarLevel     string    `db:"sugar_level"`
	Notes          *string   `db:"notes"`
	CreatedAt      time.Time `db:"created_at"`
}

// ToModel converts OrderItemDal to service layer OrderItem model.
func (oi *OrderItemDal) ToModel() (*orderitem.OrderItem, error) {
	size, err := variant.ParseSize(oi.Size)
	if err != nil {
		return nil, err
	}
	milk, err := variant.ParseMilkType(oi.MilkType)
	if err != nil {
		return nil, err
	}
	sugar, err := variant.ParseSugarLevel(oi.SugarLevel)
	if err != nil {
		return nil, err
	}

	model := &orderitem.OrderItem{
		ID:             oi.Id,
		OrderID:        oi.OrderId,
		MenuItemID:     oi.MenuItemId,
		ItemName:       oi.ItemName,
		Quantity:       oi.Quantity,
		UnitPriceCents: oi.UnitPriceCents,
		Size:           size,
		MilkType:       milk,
		SugarLevel:     sugar,
		CreatedAt:      oi.CreatedAt,
	}
	if oi.Notes != nil {
		model.Notes = *oi.Notes
	}

	return model, nil
}

// PostgresOrderItemRepository represents a Postgres order item repository.
type PostgresOrderItemRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresOrderItemRepository creates a new Postgres order item repository.
func NewPostgresOrderItemRepository(conn postgres.Conn) *PostgresOrderItemRepository {
	return &PostgresOrderItemRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// BulkInsert inserts all order items and returns them with generated ids.
// Uses unnest over parallel arrays so the whole batch is one statement.
func (r *PostgresOrderItemRepository) BulkInsert(
	ctx context.Context,
	orderItems []orderitem.OrderItem,
) ([]orderitem.OrderItem, error) {
	if len(orderItems) == 0 {
		return []orderitem.OrderItem{}, nil
	}

	sql := `
		INSERT INTO order_items (
			order_id,
			menu_item_id,
			item_name,
			quantity,
			unit_price_cents,
			size,
			milk_type,
			sugar_level,
			notes,
			created_at
		)
		SELECT
			order_id,
			menu_item_id,
			item_name,
			quantity,
			unit_price_cents,
			size::size,
			milk_type::milk_type,
			sugar_level::sugar_level,
			notes,
			created_at
		FROM unnest(
			$1::bigint[], $2::bigint[], $3::text[], $4::int[], $5::bigint[],
			$6::text[], $7::text[], $8::text[], $9::text[], $10::timestamptz[]
		) AS t(order_id, menu_item_id, item_name, quantity, unit_price_cents, size, milk_type, sugar_level, notes, created_at)
		RETURNING id, order_id, menu_item_id, item_name, quantity, unit_price_cents, size, milk_type, sugar_level, notes, created_at
	`

	orderIds := make([]int64, len(orderItems))
	menuItemIds := make([]int64, len(orderItems))
	itemNames := make([]string, len(orderItems))
	quantities := make([]int32, len(orderItems))
	unitPrices := make([]int64, len(orderItems))
	sizes := make([]string, len(orderItems))
	milkTypes := make([]string, len(orderItems))
	sugarLevels := make([]string, len(orderItems))
	notes := make([]*string, len(orderItems))
	createdAts := make([]time.Time, len(orderItems))

	for i, oi := range orderItems {
		orderIds[i] = oi.OrderID
		menuItemIds[i] = oi.MenuItemID
		itemNames[i] = oi.ItemName
		quantities[i] = int32(oi.Quantity)
		unitPrices[i] = oi.UnitPriceCents
		sizes[i] = oi.Size.String()
		milkTypes[i] = oi.MilkType.String()
		sugarLevels[i] = oi.SugarLevel.String()
		if oi.Notes != "" {
			n := oi.Notes
			notes[i] = &n
		}
		createdAts[i] = oi.CreatedAt
	}

	rows, err := r.conn.Query(ctx, sql,
		orderIds, menuItemIds, itemNames, quantities, unitPrices,
		sizes, milkTypes, sugarLevels, notes, createdAts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk insert order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal
		err := rows.Scan(
			&dal.Id,
			&dal.OrderId,
			&dal.MenuItemId,
			&dal.ItemName,
			&dal.Quantity,
			&dal.UnitPriceCents,
			&dal.Size,
			&dal.MilkType,
			&dal.SugarLevel,
			&dal.Notes,
			&dal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order item dal to model: %w", err)
		}

		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Query retrieves order items based on filter criteria.
func (r *PostgresOrderItemRepository) Query(
	ctx context.Context,
	filter *orderitem.QueryOrderItemsModel,
) ([]orderitem.OrderItem, error) {
	query := r.sb.
		Select(
			"id",
			"order_id",
			"menu_item_id",
			"item_name",
			"quantity",
			"unit_price_cents",
			"size",
			"milk_type",
			"sugar_level",
			"notes",
			"created_at",
		).
		From("order_items").
		OrderBy("id")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"id": filter.Ids})
	}

	if len(filter.OrderIds) > 0 {
		query = query.Where(sq.Eq{"order_id": filter.OrderIds})
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
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal
		err := rows.Scan(
			&dal.Id,
			&dal.OrderId,
			&dal.MenuItemId,
			&dal.ItemName,
			&dal.Quantity,
			&dal.UnitPriceCents,
			&dal.Size,
			&dal.MilkType,
			&dal.SugarLevel,
			&dal.Notes,
			&dal.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		model, err := dal.ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to convert order item dal to model: %w", err)
		}

		result = append(result, *model)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
