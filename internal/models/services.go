package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=mocks/mock_auth.go . AuthService
type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*Admin, error)

	SendResetCode(ctx context.Context, email string) error

	ConfirmResetCode(ctx context.Context, email, code string) error

	ChangePassword(ctx context.Context, email, newPassword string) error

	UpdateProfile(ctx context.Context, update AdminUpdate) (*Admin, error)

	GetAdmin(ctx context.Context, email string) (*Admin, error)
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	GenerateJWT(subject string) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	GetOrders(ctx context.Context) ([]Order, error)

	GetEligibleRiders(ctx context.Context, orderID string) ([]Rider, error)

	AssignOrder(ctx context.Context, riderID, orderID string) error

	UpdateStep(ctx context.Context, orderID string, update StatusUpdate) (*Order, error)
}

//go:generate mockgen -destination=mocks/mock_rider.go . RiderService
type RiderService interface {
	GetRiders(ctx context.Context) ([]Rider, error)

	SetOnline(ctx context.Context, riderID string, online bool) error

	UpdateRider(ctx context.Context, riderID string, update RiderUpdate) (*Rider, error)
}

//go:generate mockgen -destination=mocks/mock_area.go . AreaService
type AreaService interface {
	GetAreas(ctx context.Context) ([]ServiceArea, error)

	CreateArea(ctx context.Context, area ServiceArea) (*ServiceArea, error)

	UpdateArea(ctx context.Context, areaID string, area ServiceArea) (*ServiceArea, error)

	DeleteArea(ctx context.Context, areaID string) error

	ToggleArea(ctx context.Context, areaID string, active bool) error
}

//go:generate mockgen -destination=mocks/mock_catalog.go . CatalogService
type CatalogService interface {
	GetServices(ctx context.Context) ([]Service, error)

	CreateService(ctx context.Context, service Service) (*Service, error)

	UpdateService(ctx context.Context, serviceID string, service Service) (*Service, error)

	DeleteService(ctx context.Context, serviceID string) error

	ToggleService(ctx context.Context, serviceID string, active bool) error
}

//go:generate mockgen -destination=mocks/mock_customer.go . CustomerService
type CustomerService interface {
	GetCustomers(ctx context.Context) ([]Customer, error)

	SetStatus(ctx context.Context, customerID, status string) error
}

//go:generate mockgen -destination=mocks/mock_ticket.go . TicketService
type TicketService interface {
	GetTickets(ctx context.Context) ([]Ticket, error)

	Reply(ctx context.Context, ticketID string, reply TicketReply) (*Ticket, error)

	UpdateTicket(ctx context.Context, ticketID string, update TicketUpdate) (*Ticket, error)
}

//go:generate mockgen -destination=mocks/mock_chat.go . ChatService
type ChatService interface {
	CreateChannel(ctx context.Context, orderID, riderID string) error
}

//go:generate mockgen -destination=mocks/mock_report.go . ReportService
type ReportService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
