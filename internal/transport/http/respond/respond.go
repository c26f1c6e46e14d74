package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chokun100/coffeeshop/internal/service/models/apperrors"
	"github.com/chokun100/coffeeshop/internal/service/models/orderstatus"
	"github.com/chokun100/coffeeshop/internal/service/models/ordertype"
	"github.com/chokun100/coffeeshop/internal/service/models/variant"
)

// Data writes a JSON success envelope.
func Data(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]any{"data": payload}); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// Error writes a JSON error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]any{"error": message}); err != nil {
		slog.Error("Error encoding error response", "error", err)
	}
}

var validationErrors = []error{
	apperrors.ErrEmptyCustomerName,
	apperrors.ErrEmptyOrder,
	apperrors.ErrInvalidQuantity,
	apperrors.ErrInvalidUnitPrice,
	apperrors.ErrEmptyItemName,
	apperrors.ErrInvalidMenuItemID,
	apperrors.ErrInvalidOrderID,
	apperrors.ErrInvalidLimit,
	apperrors.ErrInvalidTransition,
	ordertype.ErrInvalidOrderType,
	orderstatus.ErrInvalidStatus,
	variant.ErrInvalidSize,
	variant.ErrInvalidMilkType,
	variant.ErrInvalidSugarLevel,
}

// ServiceError classifies a service failure into the three caller-visible
// kinds: validation (400), not-found (404) and storage/internal (500).
func ServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperrors.ErrOrderNotFound) {
		Error(w, http.StatusNotFound, err.Error())

		return
	}

	for _, verr := range validationErrors {
		if errors.Is(err, verr) {
			Error(w, http.StatusBadRequest, err.Error())

			return
		}
	}

	Error(w, http.StatusInternalServerError, "internal error")
}
