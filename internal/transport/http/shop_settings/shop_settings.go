package shopsettingshandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chokun100/coffeeshop/internal/service/models/shopsettings"
	"github.com/chokun100/coffeeshop/internal/transport/http/respond"
)

type service interface {
	Get(ctx context.Context) (shopsettings.Settings, error)
	Update(ctx context.Context, settings shopsettings.Settings) (shopsettings.Settings, error)
}

// GetSettings handles the get shop settings request.
func GetSettings(w http.ResponseWriter, r *http.Request, service service) {
	settings, err := service.Get(r.Context())
	if err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error getting shop settings", "error", err)

		return
	}

	respond.Data(w, http.StatusOK, map[string]any{"settings": settings})
}

// UpdateSettings handles the update shop settings request.
func UpdateSettings(w http.ResponseWriter, r *http.Request, service service) {
	var settings shopsettings.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding shop settings request", "error", err)

		return
	}

	updated, err := service.Update(r.Context(), settings)
	if err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error updating shop settings", "error", err)

		return
	}

	respond.Data(w, http.StatusOK, map[string]any{"settings": updated})
}
