package seed

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/spf13/viper"

	"github.com/chokun100/coffeeshop/internal/transport/http/respond"
)

type service interface {
	NeedsSeeding(ctx context.Context) (bool, error)
	Seed(ctx context.Context) error
}

// Seed fills an empty database with the starter catalog. Only available in
// the development environment.
func Seed(w http.ResponseWriter, r *http.Request, service service) {
	if viper.GetString("app.env") != "development" {
		respond.Error(w, http.StatusNotFound, "not found")

		return
	}

	needed, err := service.NeedsSeeding(r.Context())
	if err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error checking seed state", "error", err)

		return
	}

	if !needed {
		respond.Data(w, http.StatusOK, map[string]any{"message": "Database already seeded"})

		return
	}

	if err := service.Seed(r.Context()); err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error seeding database", "error", err)

		return
	}

	respond.Data(w, http.StatusOK, map[string]any{"message": "Database seeded successfully"})
}
