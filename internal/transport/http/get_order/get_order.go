package getorder

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	GetOrderByID(ctx context.Context, id int64) (order.Order, error)
}

// GetOrder handles the get order by id request.
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid order id")

		return
	}

	found, err := service.GetOrderByID(r.Context(), id)
	if err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error getting order", "order_id", id, "error", err)

		return
	}

	respond.Data(w, http.StatusOK, map[string]any{"order": found})
}
