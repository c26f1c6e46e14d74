package updatestatus

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
	"github.com/chokun100/coffeeshop/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	UpdateStatus(ctx context.Context, id int64, status orderstatus.Status) (order.Order, error)
}

// updateStatusRequest represents an update order status request.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Validate validates the update status request.
func (r *updateStatusRequest) Validate() error {
	return validator.New().Struct(r)
}

// UpdateStatus handles the update order status request.
func UpdateStatus(w http.ResponseWriter, r *http.Request, service service) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid order id")

		return
	}

	req := updateStatusRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding request body for update status", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())

		return
	}

	status, err := orderstatus.ParseStatus(req.Status)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())

		return
	}

	updated, err := service.UpdateStatus(r.Context(), id, status)
	if err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error updating order status", "order_id", id, "error", err)

		return
	}

	respond.Data(w, http.StatusOK, map[string]any{"order": updated})
}
