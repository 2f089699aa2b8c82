package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/freshbox-tech/Freshbox-admin/internal/logger"
	"github.com/freshbox-tech/Freshbox-admin/internal/middlewares"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

type Config struct {
	Endpoint string
}

// Router wires every console resource under /api. Handlers pull their
// services out of the request context, so tests can swap in mocks through
// the same injector middleware.
type Router struct {
	config   Config
	services middlewares.Services
}

func New(config Config, services middlewares.Services) *Router {
	return &Router{config: config, services: services}
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middlewares.ServiceInjectorMiddleware(router.services),
		logger.RequestLogger,
		middlewares.AuthMiddleware().WithExcludedPaths(
			"/api/admin/login",
			"/api/admin/send-reset-code",
			"/api/admin/confirm-reset-code",
			"/api/admin/change-password",
		).Middleware,
	)

	r.Route("/api", func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			r.With(middlewares.JSONMiddleware[models.Credentials]).Post("/login", Login)
			r.With(middlewares.JSONMiddleware[models.ResetRequest]).Post("/send-reset-code", SendResetCode)
			r.With(middlewares.JSONMiddleware[models.ResetConfirm]).Post("/confirm-reset-code", ConfirmResetCode)
			r.With(middlewares.JSONMiddleware[models.PasswordChange]).Put("/change-password", ChangePassword)
			r.With(middlewares.JSONMiddleware[models.AdminUpdate]).Put("/update", UpdateProfile)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", GetOrders)
			r.Get("/eligible-riders/{orderId}", GetEligibleRiders)
			r.Put("/assign-order/{riderId}/{orderId}", AssignOrder)
			r.With(middlewares.JSONMiddleware[models.StatusUpdate]).Put("/update-step/{orderId}", UpdateStep)
		})

		r.Route("/rider", func(r chi.Router) {
			r.Get("/", GetRiders)
			r.Put("/online/{id}/{online}", SetRiderOnline)
			r.With(middlewares.JSONMiddleware[models.RiderUpdate]).Put("/update/{id}", UpdateRider)
		})

		r.Route("/serviceArea", func(r chi.Router) {
			r.Get("/", GetAreas)
			r.With(middlewares.JSONMiddleware[models.ServiceArea]).Post("/", CreateArea)
			r.With(middlewares.JSONMiddleware[models.ServiceArea]).Put("/{id}", UpdateArea)
			r.Delete("/{id}", DeleteArea)
			r.Put("/{id}/toggle/{active}", ToggleArea)
		})

		r.Route("/service", func(r chi.Router) {
			r.Get("/", GetServices)
			r.With(middlewares.JSONMiddleware[models.Service]).Post("/", CreateService)
			r.With(middlewares.JSONMiddleware[models.Service]).Put("/{id}", UpdateService)
			r.Delete("/{id}", DeleteService)
			r.Put("/{id}/toggle/{active}", ToggleService)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Get("/", GetCustomers)
			r.Put("/status/{id}/{status}", SetCustomerStatus)
		})

		r.Route("/support", func(r chi.Router) {
			r.Get("/", GetTickets)
			r.With(middlewares.JSONMiddleware[models.TicketReply]).Put("/send/{id}", SendSupportReply)
			r.With(middlewares.JSONMiddleware[models.TicketUpdate]).Put("/{id}", UpdateSupportTicket)
		})

		r.With(middlewares.JSONMiddleware[models.ChatRequest]).Post("/chat/create", CreateChat)

		r.Get("/reports/summary", GetSummary)
	})

	return r
}

func (router *Router) Run() error {
	return http.ListenAndServe(router.config.Endpoint, router.get())
}
