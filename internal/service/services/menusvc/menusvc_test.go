package menusvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chokun100/coffeeshop/internal/service/models/menu"
)

type memMenuRepo struct {
	categories []menu.Category
	items      []menu.Item
	nextID     int64
}

func (r *memMenuRepo) QueryCategories(_ context.Context) ([]menu.Category, error) {
	return append([]menu.Category(nil), r.categories...), nil
}

func (r *memMenuRepo) QueryActiveItems(_ context.Context) ([]menu.Item, error) {
	var out []menu.Item
	for _, item := range r.items {
		if item.IsActive {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *memMenuRepo) CountCategories(_ context.Context) (int, error) {
	return len(r.categories), nil
}

func (r *memMenuRepo) InsertCategories(_ context.Context, categories []menu.Category) ([]int64, error) {
	ids := make([]int64, 0, len(categories))
	for _, c := range categories {
		r.nextID++
		c.ID = r.nextID
		r.categories = append(r.categories, c)
		ids = append(ids, c.ID)
	}

	return ids, nil
}

func (r *memMenuRepo) InsertItems(_ context.Context, items []menu.Item) error {
	for _, item := range items {
		r.nextID++
		item.ID = r.nextID
		r.items = append(r.items, item)
	}

	return nil
}

func TestGetMenuGroupsItems(t *testing.T) {
	repo := &memMenuRepo{
		categories: []menu.Category{
			{ID: 1, Name: "Coffee", Position: 1},
			{ID: 2, Name: "Tea", Position: 2},
		},
		items: []menu.Item{
			{ID: 10, Name: "Latte", CategoryID: 1, IsActive: true},
			{ID: 11, Name: "Americano", CategoryID: 1, IsActive: true},
			{ID: 12, Name: "Matcha", CategoryID: 2, IsActive: true},
			{ID: 13, Name: "Retired Blend", CategoryID: 1, IsActive: false},
		},
	}
	svc := MustNewMenuService(WithMenuRepository(repo))

	categories, err := svc.GetMenu(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Len(t, categories[0].Items, 2)
	assert.Len(t, categories[1].Items, 1)
	for _, c := range categories {
		for _, item := range c.Items {
			assert.Equal(t, c.ID, item.CategoryID)
			assert.True(t, item.IsActive)
		}
	}
}

func TestNeedsSeeding(t *testing.T) {
	repo := &memMenuRepo{}
	svc := MustNewMenuService(WithMenuRepository(repo))

	needs, err := svc.NeedsSeeding(context.Background())
	require.NoError(t, err)
	assert.True(t, needs)

	require.NoError(t, svc.Seed(context.Background()))

	needs, err = svc.NeedsSeeding(context.Background())
	require.NoError(t, err)
	assert.False(t, needs)
}

func TestSeedRemapsCategoryIDs(t *testing.T) {
	// Pre-existing rows shift the generated ids away from seed positions.
	repo := &memMenuRepo{nextID: 100}
	svc := MustNewMenuService(WithMenuRepository(repo))

	require.NoError(t, svc.Seed(context.Background()))

	assert.Len(t, repo.categories, len(menu.DefaultCategories))
	assert.Len(t, repo.items, len(menu.DefaultItems))

	byID := make(map[int64]bool, len(repo.categories))
	for _, c := range repo.categories {
		byID[c.ID] = true
	}
	for _, item := range repo.items {
		assert.True(t, byID[item.CategoryID], "item %q points at generated category id", item.Name)
	}
}
