package orderstatus

import (
	"database/sql/driver"
	"errors"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var ErrInvalidStatus = errors.New("invalid order status")

func (s Status) String() string {
	return string(s)
}

func (s Status) Value() (driver.Value, error) {
	return s.String(), nil
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// next holds the strict forward-progress graph. Cancellation is reachable
// from every non-terminal state; a state may always be re-set to itself.
var next = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusReady, StatusCompleted, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCompleted, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether the strict status graph allows moving from s
// to target. Setting the same status again is treated as a no-op and allowed.
func (s Status) CanTransition(target Status) bool {
	if s == target {
		return !s.IsTerminal()
	}
	for _, allowed := range next[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case StatusPending.String():
		return StatusPending, nil
	case StatusPreparing.String():
		return StatusPreparing, nil
	case StatusReady.String():
		return StatusReady, nil
	case StatusCompleted.String():
		return StatusCompleted, nil
	case StatusCancelled.String():
		return StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}
