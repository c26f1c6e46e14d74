package listorders

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"

	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
	"github.com/chokun100/coffeeshop/internal/transport/http/respond"
)

type service interface {
	ListOrders(ctx context.Context, query order.QueryOrdersModel) ([]order.Order, error)
}

type queryOrdersRequest struct {
	Status string `schema:"status,omitempty"`
	Limit  int    `schema:"limit,omitempty"`
}

func (q *queryOrdersRequest) toModel() (*order.QueryOrdersModel, error) {
	model := &order.QueryOrdersModel{Limit: q.Limit}
	if q.Status != "" {
		status, err := orderstatus.ParseStatus(q.Status)
		if err != nil {
			return nil, err
		}
		model.Status = status
	}

	return model, nil
}

// ListOrders handles the list orders request.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	query := &queryOrdersRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding list orders request", "error", err)

		return
	}

	model, err := query.toModel()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())

		return
	}

	orders, err := service.ListOrders(r.Context(), *model)
	if err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error listing orders", "error", err)

		return
	}

	respond.Data(w, http.StatusOK, map[string]any{"orders": orders})
}
