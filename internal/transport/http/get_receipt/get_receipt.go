package getreceipt

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chokun100/coffeeshop/internal/receipt"
	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/shopsettings"
	"github.com/chokun100/coffeeshop/internal/transport/http/respond"
)

type orderService interface {
	GetOrderByID(ctx context.Context, id int64) (order.Order, error)
}

type settingsService interface {
	Get(ctx context.Context) (shopsettings.Settings, error)
}

// GetReceipt renders the plain-text receipt for an order.
func GetReceipt(w http.ResponseWriter, r *http.Request, orders orderService, settings settingsService) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid order id")

		return
	}

	found, err := orders.GetOrderByID(r.Context(), id)
	if err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error getting order for receipt", "order_id", id, "error", err)

		return
	}

	shop, err := settings.Get(r.Context())
	if err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error getting settings for receipt", "error", err)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(receipt.Render(found, shop))); err != nil {
		slog.Error("Error writing receipt response", "error", err)
	}
}
