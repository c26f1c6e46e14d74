package isettingsrepo

import (
	"context"

	"github.com/chokun100/coffeeshop/internal/service/models/shopsettings"
)

// ISettingsRepository is an interface for shop settings postgres repository.
type ISettingsRepository interface {
	Get(ctx context.Context) (shopsettings.Settings, error)
	Upsert(ctx context.Context, s shopsettings.Settings) (shopsettings.Settings, error)
}
