package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/orderitem"
	"github.com/chokun100/coffeeshop/internal/service/models/ordertype"
	"github.com/chokun100/coffeeshop/internal/service/models/variant"
	"github.com/chokun100/coffeeshop/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, o order.Order) (order.Order, error)
}

// itemInCreateOrderRequest represents an item in a create order request.
type itemInCreateOrderRequest struct {
	MenuItemID     int64  `json:"menuItemId"     validate:"gt=0"`
	ItemName       string `json:"itemName"       validate:"required"`
	Quantity       int    `json:"quantity"       validate:"gt=0"`
	UnitPriceCents int64  `json:"unitPriceCents" validate:"gte=0"`
	Size           string `json:"size"`
	MilkType       string `json:"milkType"`
	SugarLevel     string `json:"sugarLevel"`
	Notes          string `json:"notes"`
}

// toModel converts itemInCreateOrderRequest to orderitem.OrderItem. Absent
// variant fields take their defaults (M / none / normal).
func (r *itemInCreateOrderRequest) toModel() (*orderitem.OrderItem, error) {
	size, err := variant.ParseSize(r.Size)
	if err != nil {
		return nil, err
	}
	milk, err := variant.ParseMilkType(r.MilkType)
	if err != nil {
		return nil, err
	}
	sugar, err := variant.ParseSugarLevel(r.SugarLevel)
	if err != nil {
		return nil, err
	}

	return &orderitem.OrderItem{
		MenuItemID:     r.MenuItemID,
		ItemName:       r.ItemName,
		Quantity:       r.Quantity,
		UnitPriceCents: r.UnitPriceCents,
		Size:           size,
		MilkType:       milk,
		SugarLevel:     sugar,
		Notes:          r.Notes,
	}, nil
}

// createOrderRequest represents a create order request.
type createOrderRequest struct {
	CustomerName string                     `json:"customerName" validate:"required"`
	OrderType    string                     `json:"orderType"    validate:"required"`
	Items        []itemInCreateOrderRequest `json:"items"        validate:"required,min=1,dive"`
	Notes        string                     `json:"notes"`
	UserID       string                     `json:"userId"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts createOrderRequest to order.Order.
func (r *createOrderRequest) toModel() (*order.Order, error) {
	typ, err := ordertype.ParseOrderType(r.OrderType)
	if err != nil {
		return nil, err
	}

	items := make([]orderitem.OrderItem, len(r.Items))
	for i := range r.Items {
		item, err := r.Items[i].toModel()
		if err != nil {
			return nil, err
		}
		items[i] = *item
	}

	return &order.Order{
		CustomerName: r.CustomerName,
		OrderType:    typ,
		Notes:        r.Notes,
		UserID:       r.UserID,
		Items:        items,
	}, nil
}

// CreateOrder handles the create order request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	model, err := req.toModel()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		slog.Error("Error converting create order request to model", "error", err)

		return
	}

	created, err := service.CreateOrder(r.Context(), *model)
	if err != nil {
		respond.ServiceError(w, err)
		slog.Error("Error creating order", "error", err)

		return
	}

	respond.Data(w, http.StatusCreated, map[string]any{"order": created})
}
