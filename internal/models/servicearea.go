package models

// Coverage tiers for a service area.
const (
	CoverageFull    = "Full"
	CoveragePartial = "Partial"
	CoverageLimited = "Limited"
)

// ServiceArea is a geographic coverage unit keyed by postcode.
type ServiceArea struct {
	ID            string   `json:"_id"`
	Postcode      string   `json:"postcode"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Active        bool     `json:"active"`
	ServiceDays   []string `json:"serviceDays"`
	DeliveryFee   float64  `json:"deliveryFee"`
	MinimumOrder  float64  `json:"minimumOrder"`
	Coverage      string   `json:"coverage"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	RiderCount    int      `json:"riderCount"`
	ServiceCount  int      `json:"serviceCount"`
}

// Referenced reports whether any rider or service still points at the
// area. Deletion is refused while this holds.
func (a *ServiceArea) Referenced() bool {
	return a.RiderCount > 0 || a.ServiceCount > 0
}
