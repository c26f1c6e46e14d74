package listorders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
)

type fakeService struct {
	got    *order.QueryOrdersModel
	result []order.Order
	err    error
}

func (s *fakeService) ListOrders(_ context.Context, query order.QueryOrdersModel) ([]order.Order, error) {
	s.got = &query
	if s.err != nil {
		return nil, s.err
	}

	return s.result, nil
}

func do(svc *fakeService, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/shop/orders?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	ListOrders(rec, req, svc)

	return rec
}

func TestListOrdersHandler(t *testing.T) {
	svc := &fakeService{result: []order.Order{{ID: 1, Status: orderstatus.StatusPending}}}

	rec := do(svc, "status=pending&limit=20")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, orderstatus.StatusPending, svc.got.Status)
	assert.Equal(t, 20, svc.got.Limit)
}

func TestListOrdersHandlerEmptyResultStaysArray(t *testing.T) {
	svc := &fakeService{result: []order.Order{}}

	rec := do(svc, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orders":[]`)
}

func TestListOrdersHandlerUnknownStatus(t *testing.T) {
	svc := &fakeService{}

	rec := do(svc, "status=shipped")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}

func TestListOrdersHandlerIgnoresUnknownKeys(t *testing.T) {
	svc := &fakeService{result: []order.Order{}}

	rec := do(svc, "status=ready&utm_source=kiosk")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, orderstatus.StatusReady, svc.got.Status)
}
