package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

type key int

const (
	AuthServiceKey key = iota
	JwtServiceKey
	OrderServiceKey
	RiderServiceKey
	AreaServiceKey
	CatalogServiceKey
	CustomerServiceKey
	TicketServiceKey
	ChatServiceKey
	ReportServiceKey
)

// Services bundles everything the router needs injected into request
// contexts.
type Services struct {
	Auth     models.AuthService
	JWT      models.JWTService
	Orders   models.OrderService
	Riders   models.RiderService
	Areas    models.AreaService
	Catalog  models.CatalogService
	Customer models.CustomerService
	Tickets  models.TicketService
	Chats    models.ChatService
	Reports  models.ReportService
}

func ServiceInjectorMiddleware(services Services) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), AuthServiceKey, services.Auth)
			ctx = context.WithValue(ctx, JwtServiceKey, services.JWT)
			ctx = context.WithValue(ctx, OrderServiceKey, services.Orders)
			ctx = context.WithValue(ctx, RiderServiceKey, services.Riders)
			ctx = context.WithValue(ctx, AreaServiceKey, services.Areas)
			ctx = context.WithValue(ctx, CatalogServiceKey, services.Catalog)
			ctx = context.WithValue(ctx, CustomerServiceKey, services.Customer)
			ctx = context.WithValue(ctx, TicketServiceKey, services.Tickets)
			ctx = context.WithValue(ctx, ChatServiceKey, services.Chats)
			ctx = context.WithValue(ctx, ReportServiceKey, services.Reports)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		http.Error(w, fmt.Sprintf("Service wasn't found in context by key %v", serviceKey), http.StatusInternalServerError)
		return nil
	}

	return &foundService
}
