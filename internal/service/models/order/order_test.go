package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chokun100/coffeeshop/internal/service/models/orderitem"
)

func TestFormatQueueNumber(t *testing.T) {
	tests := []struct {
		id   int64
		want string
	}{
		{1, "M01"},
		{7, "M07"},
		{10, "M10"},
		{99, "M99"},
		{100, "M100"},
		{123, "M123"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatQueueNumber(tt.id))
	}
}

func TestTotalFromItems(t *testing.T) {
	items := []orderitem.OrderItem{
		{Quantity: 3, UnitPriceCents: 105},
		{Quantity: 1, UnitPriceCents: 8500},
	}

	assert.Equal(t, int64(315+8500), TotalFromItems(items))
	assert.Equal(t, int64(0), TotalFromItems(nil))
}
