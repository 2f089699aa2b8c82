package models

import (
	"errors"
	"fmt"
)

// OrderStatus is the canonical backend status code stored with an order.
// The display labels shown in the console are a separate vocabulary; the
// translation between the two lives here and nowhere else.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusAssign     OrderStatus = "assign"
	StatusScheduled  OrderStatus = "scheduled"
	StatusReady      OrderStatus = "ready"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var ErrUnknownStatus = errors.New("unknown order status")

// CancelledStep marks a cancelled order, which has no position in the
// six-step progress sequence.
const CancelledStep = -1

// StepperLabels is the fixed display sequence used by the progress stepper.
var StepperLabels = []string{
	"Ordered",
	"Assigned",
	"Picked Up",
	"In Progress",
	"Ready for Delivery",
	"Delivered",
}

var statusSteps = map[OrderStatus]int{
	StatusProcessing: 0,
	StatusAssign:     1,
	StatusScheduled:  2,
	StatusReady:      3,
	StatusDelivered:  5,
	StatusCancelled:  CancelledStep,
}

var statusLabels = map[OrderStatus]string{
	StatusProcessing: "Ordered",
	StatusAssign:     "Assigned",
	StatusScheduled:  "Picked Up",
	StatusReady:      "Ready for Delivery",
	StatusDelivered:  "Delivered",
	StatusCancelled:  "Cancelled",
}

// ParseStatus validates a raw status code against the closed vocabulary.
// Unrecognized codes are an error, never a silent default.
func ParseStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(raw)
	if _, ok := statusSteps[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return status, nil
}

// StepIndex returns the ordinal position of a status within the stepper
// sequence. Cancelled maps to CancelledStep; codes outside the vocabulary
// count as not yet reached.
func StepIndex(status OrderStatus) int {
	step, ok := statusSteps[status]
	if !ok {
		return 0
	}
	return step
}

// DisplayLabel returns the console label for a status code.
func DisplayLabel(status OrderStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status OrderStatus) bool {
	return status == StatusDelivered || status == StatusCancelled
}

// ValidNextStatuses is the single authority on permitted status changes:
// any status other than the current one may be chosen, except that the
// terminal states accept none. Forward-only ordering is deliberately not
// enforced; operators correct mis-recorded steps by moving backwards.
func ValidNextStatuses(current OrderStatus) []OrderStatus {
	if IsTerminal(current) {
		return nil
	}

	targets := make([]OrderStatus, 0, len(statusSteps)-1)
	for _, status := range []OrderStatus{
		StatusProcessing,
		StatusAssign,
		StatusScheduled,
		StatusReady,
		StatusDelivered,
		StatusCancelled,
	} {
		if status != current {
			targets = append(targets, status)
		}
	}
	return targets
}

// CanTransitionTo checks a single target against ValidNextStatuses.
func CanTransitionTo(current, next OrderStatus) bool {
	for _, status := range ValidNextStatuses(current) {
		if status == next {
			return true
		}
	}
	return false
}
