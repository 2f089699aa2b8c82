package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/freshbox-tech/Freshbox-admin/internal/utils"
)

// Price is a lenient money amount. Backend records occasionally carry
// totals as quoted strings or garbage; anything that does not parse as a
// number decodes to zero so derived computations degrade instead of
// failing.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	raw = strings.Trim(raw, `"`)
	if raw == "" || raw == "null" {
		*p = 0
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*p = 0
		return nil
	}

	*p = Price(value)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// Address is the delivery destination of an order. Postcode drives rider
// eligibility.
type Address struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city,omitempty"`
	Postcode     string `json:"postcode"`
}

// OrderItem is one line item with its free-text specification tags.
type OrderItem struct {
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	Price          Price    `json:"price"`
	Specifications []string `json:"specifications"`
}

// Step is one lifecycle event in an order's history. Steps are append-only
// and immutable once created.
type Step struct {
	Status    OrderStatus       `json:"status"`
	Note      string            `json:"note"`
	CreatedAt utils.RFC3339Date `json:"createdAt"`
}

// CustomerSummary is the customer reference embedded in an order.
type CustomerSummary struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// RiderSummary is the assigned-rider reference resolved into an order.
type RiderSummary struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	VehicleType string `json:"vehicleType"`
}

// Order is one customer laundry request. The current status always equals
// the status of the most recently appended step.
type Order struct {
	ID              string             `json:"_id"`
	User            CustomerSummary    `json:"user"`
	Rider           *RiderSummary      `json:"rider,omitempty"`
	DeliveryAddress Address            `json:"deliveryAddress"`
	Items           []OrderItem        `json:"items"`
	TotalPrice      Price              `json:"totalPrice"`
	PaymentType     string             `json:"paymentType"`
	Priority        string             `json:"priority"`
	Status          OrderStatus        `json:"status"`
	Steps           []Step             `json:"steps"`
	PickupTime      *utils.RFC3339Date `json:"pickupTime,omitempty"`
	DeliveryTime    *utils.RFC3339Date `json:"deliveryTime,omitempty"`
	CreatedAt       utils.RFC3339Date  `json:"createdAt"`
}

// CurrentStep returns the stepper ordinal for the order's status.
func (o *Order) CurrentStep() int {
	return StepIndex(o.Status)
}

// StatusUpdate is the body of an update-step request.
type StatusUpdate struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}
