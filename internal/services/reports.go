package services

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

const summaryCacheKey = "dashboard-summary"

type reportStorage interface {
	FindAllOrders(ctx context.Context) (*[]models.Order, error)
	FindAllCustomers(ctx context.Context) (*[]models.Customer, error)
	FindAllRiders(ctx context.Context) (*[]models.Rider, error)
	FindAllServices(ctx context.Context) (*[]models.Service, error)
}

// ReportService derives the dashboard summary from the live collections.
// Summaries are cached briefly so a dashboard refresh storm does not turn
// into repeated full-table scans.
type ReportService struct {
	storage reportStorage
	cache   *cache.Cache
	now     func() time.Time
}

func NewReportService(storage reportStorage) *ReportService {
	return &ReportService{
		storage: storage,
		cache:   cache.New(30*time.Second, time.Minute),
		now:     time.Now,
	}
}

func (s *ReportService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	if cached, ok := s.cache.Get(summaryCacheKey); ok {
		return cached.(*models.DashboardSummary), nil
	}

	orderList, err := s.storage.FindAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.storage.FindAllCustomers(ctx)
	if err != nil {
		return nil, err
	}
	riders, err := s.storage.FindAllRiders(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := s.storage.FindAllServices(ctx)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if orderList != nil {
		orders = *orderList
	}

	distribution, err := StatusDistribution(orders)
	if err != nil {
		return nil, err
	}

	now := s.now()
	summary := &models.DashboardSummary{
		Orders:       len(orders),
		Revenue:      DeliveredRevenue(orders),
		Monthly:      MonthlySeries(orders, now),
		Distribution: distribution,
		Recent:       RecentOrders(orders, 5),
	}
	if customers != nil {
		summary.Customers = len(*customers)
	}
	if riders != nil {
		summary.Riders = len(*riders)
	}
	if catalog != nil {
		summary.Partners = len(*catalog)
	}

	s.cache.Set(summaryCacheKey, summary, cache.DefaultExpiration)

	return summary, nil
}
