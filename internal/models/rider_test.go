package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiderEligibleFor(t *testing.T) {
	order := &Order{DeliveryAddress: Address{Postcode: "75001"}}

	testCases := []struct {
		testName string
		rider    Rider
		expected bool
	}{
		{
			testName: "available and covering postcode",
			rider:    Rider{Status: RiderAvailable, ServiceAreas: []string{"75001", "75002"}},
			expected: true,
		},
		{
			testName: "available but not covering postcode",
			rider:    Rider{Status: RiderAvailable, ServiceAreas: []string{"75003"}},
			expected: false,
		},
		{
			testName: "covering postcode but busy",
			rider:    Rider{Status: RiderBusy, ServiceAreas: []string{"75001"}},
			expected: false,
		},
		{
			testName: "covering postcode but on leave",
			rider:    Rider{Status: RiderOnLeave, ServiceAreas: []string{"75001"}},
			expected: false,
		},
		{
			testName: "no service areas",
			rider:    Rider{Status: RiderAvailable},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.rider.EligibleFor(order))

			// Eligibility is exactly the conjunction of the two
			// conditions, nothing else contributes.
			expected := tc.rider.Status == RiderAvailable && tc.rider.CoversPostcode("75001")
			assert.Equal(t, expected, tc.rider.EligibleFor(order))
		})
	}
}
