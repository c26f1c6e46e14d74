package getmenu

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/chokun100/coffeeshop/internal/service/models/menu"
	"github.com/chokun100/coffeeshop/internal/transport/http/respond"
)

type service interface {
	GetMenu(ctx context.Context) ([]menu.Category, error)
}

// GetMenu handles the get menu request.
func GetMenu(w http.ResponseWriter, r *http.Request, service service) {
	categories, err := service.GetMenu(r.Context())
	if err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error getting menu", "error", err)

		return
	}

	respond.Data(w, http.StatusOK, map[string]any{"categories": categories})
}
