package imenurepo

import (
	"context"

	"github.com/chokun100/coffeeshop/internal/service/models/menu"
)

// IMenuRepository is an interface for menu postgres repository.
type IMenuRepository interface {
	QueryCategories(ctx context.Context) ([]menu.Category, error)
	QueryActiveItems(ctx context.Context) ([]menu.Item, error)
	CountCategories(ctx context.Context) (int, error)
	InsertCategories(ctx context.Context, categories []menu.Category) ([]int64, error)
	InsertItems(ctx context.Context, items []menu.Item) error
}
