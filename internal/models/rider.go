package models

// RiderStatus is the rider availability vocabulary. It is distinct from the
// online flag, which riders toggle themselves from the mobile app.
type RiderStatus string

const (
	RiderAvailable RiderStatus = "Available"
	RiderBusy      RiderStatus = "Busy"
	RiderOnBreak   RiderStatus = "On Break"
	RiderOnLeave   RiderStatus = "On Leave"
	RiderInactive  RiderStatus = "Inactive"
)

// Rider is a delivery agent eligible for order assignment.
type Rider struct {
	ID           string      `json:"_id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PhoneNumber  string      `json:"phoneNumber"`
	VehicleType  string      `json:"vehicleType"`
	MaxCapacity  int         `json:"maxCapacity"`
	CurrentLoad  int         `json:"currentLoad"`
	ActiveOrders int         `json:"activeOrders"`
	Rating       float64     `json:"rating"`
	Status       RiderStatus `json:"status"`
	Online       bool        `json:"online"`
	ServiceAreas []string    `json:"servicesAreas"`
}

// CoversPostcode reports whether the rider serves the given postcode.
func (r *Rider) CoversPostcode(postcode string) bool {
	for _, area := range r.ServiceAreas {
		if area == postcode {
			return true
		}
	}
	return false
}

// EligibleFor reports whether the rider may take the order: the rider must
// be Available and the order's delivery postcode must be in the rider's
// service-area set. Both conditions, nothing else.
func (r *Rider) EligibleFor(order *Order) bool {
	return r.Status == RiderAvailable && r.CoversPostcode(order.DeliveryAddress.Postcode)
}

// RiderUpdate carries the editable rider profile fields.
type RiderUpdate struct {
	Name         *string      `json:"name,omitempty"`
	Email        *string      `json:"email,omitempty"`
	PhoneNumber  *string      `json:"phoneNumber,omitempty"`
	VehicleType  *string      `json:"vehicleType,omitempty"`
	MaxCapacity  *int         `json:"maxCapacity,omitempty"`
	Status       *RiderStatus `json:"status,omitempty"`
	ServiceAreas []string     `json:"servicesAreas,omitempty"`
}
