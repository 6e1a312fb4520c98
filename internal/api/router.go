package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kmazurov/fuelcard-backend/internal/api/handlers"
	"github.com/kmazurov/fuelcard-backend/internal/auth"
	"github.com/kmazurov/fuelcard-backend/internal/config"
	"github.com/kmazurov/fuelcard-backend/internal/middleware"
	"github.com/kmazurov/fuelcard-backend/internal/services"
)

type RouterDeps struct {
	Cfg          config.Config
	TokenManager *auth.TokenManager

	AuthSvc      *services.AuthService
	BalanceSvc   *services.BalanceService
	RefuelSvc    *services.RefuelService
	ClientSvc    *services.ClientService
	CardSvc      *services.CardService
	StationSvc   *services.StationService
	FuelTypeSvc  *services.FuelTypeService
	OperationSvc *services.OperationService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(middleware.HTTPMetrics)
	// Permissive CORS is part of the integration contract: the admin UI
	// and third-party 1C callers hit these endpoints from anywhere.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         86400,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	authH := handlers.NewAuthHandler(d.AuthSvc)
	integrationH := handlers.NewIntegrationHandler(d.BalanceSvc, d.RefuelSvc)
	clientsH := handlers.NewClientsHandler(d.ClientSvc)
	cardsH := handlers.NewCardsHandler(d.CardSvc)
	stationsH := handlers.NewStationsHandler(d.StationSvc)
	fuelTypesH := handlers.NewFuelTypesHandler(d.FuelTypeSvc)
	operationsH := handlers.NewOperationsHandler(d.OperationSvc)

	am := middleware.NewAuthMiddleware(d.TokenManager)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)

		// 1C integration surface: open, contract-stable.
		r.Get("/card-status", integrationH.CardStatus)
		r.Post("/refuel", integrationH.Refuel)

		// Administrative CRUD requires an admin token.
		r.Group(func(r chi.Router) {
			r.Use(am.Auth, middleware.RequireAdmin)

			r.Get("/clients", clientsH.List)
			r.Post("/clients", clientsH.Create)
			r.Put("/clients", clientsH.Update)
			r.Delete("/clients", clientsH.Delete)

			r.Get("/fuel-cards", cardsH.List)
			r.Post("/fuel-cards", cardsH.Create)
			r.Put("/fuel-cards", cardsH.Update)
			r.Delete("/fuel-cards", cardsH.Delete)

			r.Get("/fuel-types", fuelTypesH.List)
			r.Post("/fuel-types", fuelTypesH.Create)
			r.Put("/fuel-types", fuelTypesH.Update)
			r.Delete("/fuel-types", fuelTypesH.Delete)

			r.Get("/stations", stationsH.List)
			r.Post("/stations", stationsH.Create)
			r.Put("/stations", stationsH.Update)
			r.Delete("/stations", stationsH.Delete)

			r.Get("/card-operations", operationsH.List)
			r.Post("/card-operations", operationsH.Create)
			r.Put("/card-operations", operationsH.Update)
			r.Delete("/card-operations", operationsH.Delete)
		})
	})

	return r
}
