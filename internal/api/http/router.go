package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth      *AuthHandler
	Rentals   *RentalHandler
	Inventory *InventoryHandler
	Customers *CustomerHandler
	Stats     *StatsHandler
	AuthMW    *AuthMiddleware
}

// NewRouter wires the public auth routes and the token-protected API.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	auth := r.PathPrefix("/api/v1/auth").Subrouter()
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", h.Auth.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", h.Auth.ResetPassword).Methods(http.MethodPost)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(h.AuthMW.Handler)

	api.HandleFunc("/rentals", h.Rentals.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals", h.Rentals.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", h.Rentals.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/status", h.Rentals.ChangeStatus).Methods(http.MethodPatch)
	api.HandleFunc("/rentals/{id}/return", h.Rentals.Return).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", h.Rentals.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/items", h.Inventory.Create).Methods(http.MethodPost)
	api.HandleFunc("/items", h.Inventory.List).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}", h.Inventory.Get).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}", h.Inventory.Update).Methods(http.MethodPut)
	api.HandleFunc("/items/{id}", h.Inventory.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/customers", h.Customers.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers", h.Customers.List).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customers.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", h.Customers.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", h.Customers.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/customers/{id}/rentals", h.Rentals.ListByCustomer).Methods(http.MethodGet)

	api.HandleFunc("/stats/dashboard", h.Stats.Dashboard).Methods(http.MethodGet)
	api.HandleFunc("/stats/monthly-revenue", h.Stats.MonthlyRevenue).Methods(http.MethodGet)
	api.HandleFunc("/stats/top-customers", h.Stats.TopCustomers).Methods(http.MethodGet)

	return r
}
