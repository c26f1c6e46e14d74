package ordertype

import (
	"database/sql/driver"
	"errors"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeaway OrderType = "takeaway"
)

var ErrInvalidOrderType = errors.New("invalid order type")

func (t OrderType) String() string {
	return string(t)
}

func (t OrderType) Value() (driver.Value, error) {
	return t.String(), nil
}

func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case OrderTypeDineIn.String():
		return OrderTypeDineIn, nil
	case OrderTypeTakeaway.String():
		return OrderTypeTakeaway, nil
	default:
		return "", ErrInvalidOrderType
	}
}
