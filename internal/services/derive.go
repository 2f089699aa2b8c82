package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

// Date bucket names accepted by the order filter.
const (
	BucketAll       = "all"
	BucketToday     = "today"
	BucketYesterday = "yesterday"
	BucketThisWeek  = "thisWeek"
	BucketThisMonth = "thisMonth"
)

// OrderFilter selects a subset of an order collection. The zero value
// (empty search, "all" semantics for the rest) matches everything.
type OrderFilter struct {
	Search     string
	Status     string
	DateBucket string
}

// Everything in this file is pure and synchronous: same inputs, same
// outputs, no I/O. The dashboard and tracking views are derived views over
// the one authoritative order collection.

func matchesSearch(order *models.Order, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	return strings.Contains(strings.ToLower(order.ID), term) ||
		strings.Contains(strings.ToLower(order.User.Name), term) ||
		strings.Contains(order.User.PhoneNumber, term) ||
		strings.Contains(strings.ToLower(order.User.Email), term)
}

func matchesDateBucket(orderDate time.Time, bucket string, now time.Time) bool {
	if bucket == "" || bucket == BucketAll {
		return true
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch bucket {
	case BucketToday:
		return !orderDate.Before(today) && orderDate.Before(today.AddDate(0, 0, 1))
	case BucketYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return !orderDate.Before(yesterday) && orderDate.Before(today)
	case BucketThisWeek:
		// Weeks start on Sunday.
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		return !orderDate.Before(weekStart)
	case BucketThisMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return !orderDate.Before(monthStart)
	default:
		return true
	}
}

// FilterOrders returns the orders matching every supplied criterion. The
// input slice is never mutated.
func FilterOrders(orders []models.Order, filter OrderFilter, now time.Time) []models.Order {
	result := make([]models.Order, 0)

	for _, order := range orders {
		if !matchesSearch(&order, filter.Search) {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && string(order.Status) != filter.Status {
			continue
		}
		if !matchesDateBucket(order.CreatedAt.Time, filter.DateBucket, now) {
			continue
		}
		result = append(result, order)
	}

	return result
}

// DeliveredRevenue sums the total price of delivered orders. Prices decode
// leniently, so malformed totals contribute zero; an empty collection or
// one with no delivered orders yields exactly zero.
func DeliveredRevenue(orders []models.Order) float64 {
	var revenue float64
	for _, order := range orders {
		if order.Status == models.StatusDelivered {
			revenue += float64(order.TotalPrice)
		}
	}
	return revenue
}

// MonthlySeries buckets orders and revenue into the trailing seven
// calendar months ending with the current one.
func MonthlySeries(orders []models.Order, now time.Time) []models.MonthlyPoint {
	months := make([]models.MonthlyPoint, 7)
	for i := range months {
		date := now.AddDate(0, i-6, 0)
		months[i] = models.MonthlyPoint{
			Name:  date.Format("Jan"),
			Month: int(date.Month()),
			Year:  date.Year(),
		}
	}

	for _, order := range orders {
		orderDate := order.CreatedAt.Time
		for i := range months {
			if months[i].Month == int(orderDate.Month()) && months[i].Year == orderDate.Year() {
				months[i].Orders++
				months[i].Amount += float64(order.TotalPrice)
				break
			}
		}
	}

	return months
}

// Dashboard pie chart buckets. processing counts as Pending (awaiting
// assignment); everything in flight counts as Processing.
var distributionBuckets = map[models.OrderStatus]string{
	models.StatusProcessing: "Pending",
	models.StatusAssign:     "Processing",
	models.StatusScheduled:  "Processing",
	models.StatusReady:      "Processing",
	models.StatusDelivered:  "Delivered",
	models.StatusCancelled:  "Cancelled",
}

// StatusDistribution counts orders into the four dashboard buckets. A
// status outside the vocabulary is an error rather than a silent Pending.
func StatusDistribution(orders []models.Order) ([]models.StatusCount, error) {
	counts := map[string]int{}
	for _, order := range orders {
		bucket, ok := distributionBuckets[order.Status]
		if !ok {
			return nil, fmt.Errorf("%w: %q", models.ErrUnknownStatus, order.Status)
		}
		counts[bucket]++
	}

	return []models.StatusCount{
		{Name: "Pending", Value: counts["Pending"]},
		{Name: "Processing", Value: counts["Processing"]},
		{Name: "Delivered", Value: counts["Delivered"]},
		{Name: "Cancelled", Value: counts["Cancelled"]},
	}, nil
}

// RecentOrders returns dashboard rows for the latest n orders.
func RecentOrders(orders []models.Order, n int) []models.RecentOrder {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Time.After(sorted[j].CreatedAt.Time)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	result := make([]models.RecentOrder, len(sorted))
	for i, order := range sorted {
		result[i] = models.RecentOrder{
			ID:       order.ID,
			Customer: order.User.Name,
			Status:   models.DisplayLabel(order.Status),
			Amount:   fmt.Sprintf("$%.2f", float64(order.TotalPrice)),
			Date:     order.CreatedAt.Time.Format("1/2/2006"),
		}
	}

	return result
}
