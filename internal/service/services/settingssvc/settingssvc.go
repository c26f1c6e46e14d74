package settingssvc

import (
	"context"
	"strings"

	"github.com/chokun100/coffeeshop/internal/dal/interfaces/isettingsrepo"
	"github.com/chokun100/coffeeshop/internal/dal/postgres"
	settingsrepo "github.com/chokun100/coffeeshop/internal/dal/repositories/shopsettings/postgres"
	"github.com/chokun100/coffeeshop/internal/service/models/shopsettings"
)

// SettingsService manages the single shop settings row.
type SettingsService struct {
	settingsRepo isettingsrepo.ISettingsRepository
}

// option is a function that configures the SettingsService.
type option func(*SettingsService)

// MustNewSettingsService creates a new SettingsService.
func MustNewSettingsService(opts ...option) *SettingsService {
	s := &SettingsService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the SettingsService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *SettingsService) {
		s.settingsRepo = settingsrepo.NewPostgresSettingsRepository(pgClient.Pool())
	}
}

// WithSettingsRepository sets the settings repository for the SettingsService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithSettingsRepository(repo isettingsrepo.ISettingsRepository) option {
	return func(s *SettingsService) {
		s.settingsRepo = repo
	}
}

// Get returns the shop settings, falling back to defaults for fields the
// shop has never saved.
func (s *SettingsService) Get(ctx context.Context) (shopsettings.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// Update upserts the settings row. Blank store name and currency fall back
// to their defaults, and unknown print formats are coerced to 80mm.
func (s *SettingsService) Update(ctx context.Context, settings shopsettings.Settings) (shopsettings.Settings, error) {
	defaults := shopsettings.Default()

	if strings.TrimSpace(settings.StoreName) == "" {
		settings.StoreName = defaults.StoreName
	}
	if strings.TrimSpace(settings.Currency) == "" {
		settings.Currency = defaults.Currency
	}
	if settings.PrintFormat != shopsettings.PrintFormat58mm {
		settings.PrintFormat = shopsettings.PrintFormat80mm
	}

	return s.settingsRepo.Upsert(ctx, settings)
}
