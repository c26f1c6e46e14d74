package menusvc

import (
	"context"
	"log/slog"

	"github.com/chokun100/coffeeshop/internal/dal/interfaces/imenurepo"
	"github.com/chokun100/coffeeshop/internal/dal/postgres"
	menurepo "github.com/chokun100/coffeeshop/internal/dal/repositories/menu/postgres"
	"github.com/chokun100/coffeeshop/internal/service/models/menu"
)

// MenuService serves the menu projection and seeds the starter catalog.
type MenuService struct {
	menuRepo imenurepo.IMenuRepository
}

// option is a function that configures the MenuService.
type option func(*MenuService)

// MustNewMenuService creates a new MenuService.
func MustNewMenuService(opts ...option) *MenuService {
	s := &MenuService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the MenuService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *MenuService) {
		s.menuRepo = menurepo.NewPostgresMenuRepository(pgClient.Pool())
	}
}

// WithMenuRepository sets the menu repository for the MenuService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithMenuRepository(repo imenurepo.IMenuRepository) option {
	return func(s *MenuService) {
		s.menuRepo = repo
	}
}

// GetMenu returns all categories with their active items grouped in display
// order.
func (s *MenuService) GetMenu(ctx context.Context) ([]menu.Category, error) {
	categories, err := s.menuRepo.QueryCategories(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.menuRepo.QueryActiveItems(ctx)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		for _, item := range items {
			if item.CategoryID == categories[i].ID {
				categories[i].Items = append(categories[i].Items, item)
			}
		}
	}

	return categories, nil
}

// NeedsSeeding reports whether the catalog is empty.
func (s *MenuService) NeedsSeeding(ctx context.Context) (bool, error) {
	count, err := s.menuRepo.CountCategories(ctx)
	if err != nil {
		return false, err
	}

	return count == 0, nil
}

// Seed inserts the default catalog when the database is empty. Seed item
// category ids are positions into the default category list and are remapped
// to the generated ids.
func (s *MenuService) Seed(ctx context.Context) error {
	ids, err := s.menuRepo.InsertCategories(ctx, menu.DefaultCategories)
	if err != nil {
		return err
	}

	items := make([]menu.Item, len(menu.DefaultItems))
	copy(items, menu.DefaultItems)
	for i := range items {
		items[i].CategoryID = ids[items[i].CategoryID-1]
	}

	if err := s.menuRepo.InsertItems(ctx, items); err != nil {
		return err
	}

	slog.Info("Seeded default catalog", "categories", len(ids), "items", len(items))

	return nil
}
