package updatestatus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/chokun100/coffeeshop/internal/service/models/apperrors"
	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
)

type fakeService struct {
	gotID     int64
	gotStatus orderstatus.Status
	result    order.Order
	err       error
}

func (s *fakeService) UpdateStatus(
	_ context.Context,
	id int64,
	status orderstatus.Status,
) (order.Order, error) {
	s.gotID = id
	s.gotStatus = status
	if s.err != nil {
		return order.Order{}, s.err
	}

	return s.result, nil
}

func do(t *testing.T, svc *fakeService, id, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := chi.NewRouter()
	router.Patch("/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		UpdateStatus(w, r, svc)
	})

	req := httptest.NewRequest(http.MethodPatch, "/orders/"+id+"/status", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestUpdateStatusHandler(t *testing.T) {
	svc := &fakeService{result: order.Order{ID: 9, Status: orderstatus.StatusReady}}

	rec := do(t, svc, "9", `{"status": "ready"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), svc.gotID)
	assert.Equal(t, orderstatus.StatusReady, svc.gotStatus)
	assert.Contains(t, rec.Body.String(), `"status":"ready"`)
}

func TestUpdateStatusHandlerBadRequests(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, do(t, &fakeService{}, "abc", `{"status": "ready"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, &fakeService{}, "9", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, &fakeService{}, "9", `{"status": "shipped"}`).Code)
}

func TestUpdateStatusHandlerNotFound(t *testing.T) {
	svc := &fakeService{err: apperrors.ErrOrderNotFound}

	rec := do(t, svc, "404", `{"status": "ready"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateStatusHandlerInvalidTransition(t *testing.T) {
	svc := &fakeService{err: apperrors.ErrInvalidTransition}

	rec := do(t, svc, "9", `{"status": "pending"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
