package createorder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
	"github.com/chokun100/coffeeshop/internal/service/models/variant"
)

type fakeService struct {
	got    *order.Order
	result order.Order
	err    error
}

func (s *fakeService) CreateOrder(_ context.Context, o order.Order) (order.Order, error) {
	s.got = &o
	if s.err != nil {
		return order.Order{}, s.err
	}

	return s.result, nil
}

func do(t *testing.T, svc *fakeService, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/shop/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateOrder(rec, req, svc)

	return rec
}

func TestCreateOrderHandler(t *testing.T) {
	svc := &fakeService{result: order.Order{
		ID:          5,
		Status:      orderstatus.StatusPending,
		QueueNumber: "M05",
		TotalCents:  13000,
	}}

	rec := do(t, svc, `{
		"customerName": "Mika",
		"orderType": "takeaway",
		"items": [
			{"menuItemId": 7, "itemName": "Latte", "quantity": 2, "unitPriceCents": 6500, "size": "L", "milkType": "oat"}
		]
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"queueNumber":"M05"`)

	require.NotNil(t, svc.got)
	require.Len(t, svc.got.Items, 1)
	assert.Equal(t, variant.SizeL, svc.got.Items[0].Size)
	assert.Equal(t, variant.MilkOat, svc.got.Items[0].MilkType)
	assert.Equal(t, variant.SugarNormal, svc.got.Items[0].SugarLevel, "absent sugar level defaults to normal")
}

func TestCreateOrderHandlerRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"customerName":`},
		{"missing customer name", `{"orderType": "dine_in", "items": [{"menuItemId": 1, "itemName": "Latte", "quantity": 1, "unitPriceCents": 100}]}`},
		{"no items", `{"customerName": "Mika", "orderType": "dine_in", "items": []}`},
		{"zero quantity", `{"customerName": "Mika", "orderType": "dine_in", "items": [{"menuItemId": 1, "itemName": "Latte", "quantity": 0, "unitPriceCents": 100}]}`},
		{"unknown order type", `{"customerName": "Mika", "orderType": "delivery", "items": [{"menuItemId": 1, "itemName": "Latte", "quantity": 1, "unitPriceCents": 100}]}`},
		{"unknown milk", `{"customerName": "Mika", "orderType": "dine_in", "items": [{"menuItemId": 1, "itemName": "Latte", "quantity": 1, "unitPriceCents": 100, "milkType": "coconut"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rec := do(t, svc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.got, "service must not be called on a rejected request")
		})
	}
}
