package settingssvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chokun100/coffeeshop/internal/service/models/shopsettings"
)

type memSettingsRepo struct {
	stored *shopsettings.Settings
}

func (r *memSettingsRepo) Get(_ context.Context) (shopsettings.Settings, error) {
	if r.stored == nil {
		return shopsettings.Default(), nil
	}

	return *r.stored, nil
}

func (r *memSettingsRepo) Upsert(_ context.Context, s shopsettings.Settings) (shopsettings.Settings, error) {
	s.ID = 1
	r.stored = &s

	return s, nil
}

func TestGetFallsBackToDefaults(t *testing.T) {
	svc := MustNewSettingsService(WithSettingsRepository(&memSettingsRepo{}))

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Cafe Station", got.StoreName)
	assert.Equal(t, "THB", got.Currency)
	assert.Equal(t, shopsettings.PrintFormat80mm, got.PrintFormat)
}

func TestUpdateNormalizes(t *testing.T) {
	repo := &memSettingsRepo{}
	svc := MustNewSettingsService(WithSettingsRepository(repo))

	saved, err := svc.Update(context.Background(), shopsettings.Settings{
		StoreName:   "  ",
		Currency:    "",
		PrintFormat: "110mm",
	})
	require.NoError(t, err)

	assert.Equal(t, "Cafe Station", saved.StoreName)
	assert.Equal(t, "THB", saved.Currency)
	assert.Equal(t, shopsettings.PrintFormat80mm, saved.PrintFormat)
	assert.Equal(t, int64(1), saved.ID)
}

func TestUpdateKeepsExplicitValues(t *testing.T) {
	repo := &memSettingsRepo{}
	svc := MustNewSettingsService(WithSettingsRepository(repo))

	saved, err := svc.Update(context.Background(), shopsettings.Settings{
		StoreName:   "Beanside",
		Currency:    "USD",
		PrintFormat: shopsettings.PrintFormat58mm,
		PrintFooter: "See you tomorrow",
	})
	require.NoError(t, err)

	assert.Equal(t, "Beanside", saved.StoreName)
	assert.Equal(t, "USD", saved.Currency)
	assert.Equal(t, shopsettings.PrintFormat58mm, saved.PrintFormat)
	assert.Equal(t, "See you tomorrow", saved.PrintFooter)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}
