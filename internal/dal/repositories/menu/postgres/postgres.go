package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/chokun100/coffeeshop/internal/dal/postgres"
	"github.com/chokun100/coffeeshop/internal/service/models/menu"
)

// PostgresMenuRepository represents a Postgres menu repository.
type PostgresMenuRepository struct {
	conn postgres.Conn
	sb   sq.StatementBuilderType
}

// NewPostgresMenuRepository creates a new Postgres menu repository.
func NewPostgresMenuRepository(conn postgres.Conn) *PostgresMenuRepository {
	return &PostgresMenuRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// QueryCategories retrieves all categories ordered by position then id.
func (r *PostgresMenuRepository) QueryCategories(ctx context.Context) ([]menu.Category, error) {
	sql, args, err := r.sb.
		Select("id", "name", "description", "image_url", "position", "is_active", "created_at", "updated_at").
		From("categories").
		OrderBy("position", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var result []menu.Category
	for rows.Next() {
		var c menu.Category
		var description, imageURL *string

		err := rows.Scan(&c.ID, &c.Name, &description, &imageURL, &c.Position, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if description != nil {
			c.Description = *description
		}
		if imageURL != nil {
			c.ImageURL = *imageURL
		}
		c.Items = []menu.Item{}

		result = append(result, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// QueryActiveItems retrieves active menu items ordered by position then id.
func (r *PostgresMenuRepository) QueryActiveItems(ctx context.Context) ([]menu.Item, error) {
	sql, args, err := r.sb.
		Select("id", "name", "description", "price_cents", "image_url", "category_id", "is_active", "position", "created_at", "updated_at").
		From("menu_items").
		Where(sq.Eq{"is_active": true}).
		OrderBy("position", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var result []menu.Item
	for rows.Next() {
		var item menu.Item
		var description, imageURL *string

		err := rows.Scan(
			&item.ID,
			&item.Name,
			&description,
			&item.PriceCents,
			&imageURL,
			&item.CategoryID,
			&item.IsActive,
			&item.Position,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		if description != nil {
			item.Description = *description
		}
		if imageURL != nil {
			item.ImageURL = *imageURL
		}

		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// CountCategories reports how many categories exist; zero means the catalog
// still needs seeding.
func (r *PostgresMenuRepository) CountCategories(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("count(*)").From("categories").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}

	return count, nil
}

// InsertCategories inserts the given categories and returns generated ids in
// insertion order.
func (r *PostgresMenuRepository) InsertCategories(ctx context.Context, categories []menu.Category) ([]int64, error) {
	if len(categories) == 0 {
		return nil, nil
	}

	now := time.Now()
	query := r.sb.
		Insert("categories").
		Columns("name", "description", "position", "is_active", "created_at", "updated_at").
		Suffix("RETURNING id")
	for _, c := range categories {
		query = query.Values(c.Name, c.Description, c.Position, true, now, now)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert categories: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan category id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

// InsertItems inserts the given menu items.
func (r *PostgresMenuRepository) InsertItems(ctx context.Context, items []menu.Item) error {
	if len(items) == 0 {
		return nil
	}

	now := time.Now()
	query := r.sb.
		Insert("menu_items").
		Columns("name", "description", "price_cents", "category_id", "is_active", "position", "created_at", "updated_at")
	for _, item := range items {
		query = query.Values(item.Name, item.Description, item.PriceCents, item.CategoryID, true, item.Position, now, now)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert menu items: %w", err)
	}

	return nil
}
