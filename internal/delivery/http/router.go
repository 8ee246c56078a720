package http

import (
	"net/http"

	"bloodlink-api/internal/delivery/http/handler"
	"bloodlink-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	donationHandler  *handler.DonationHandler
	requestHandler   *handler.RequestHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	donationHandler *handler.DonationHandler,
	requestHandler *handler.RequestHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		donationHandler:  donationHandler,
		requestHandler:   requestHandler,
		dashboardHandler: dashboardHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/donor", r.authHandler.RegisterDonor).Methods(http.MethodPost)
	auth.HandleFunc("/register/hospital", r.authHandler.RegisterHospital).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Donation routes (protected; submitting requires the donor role)
	donations := api.PathPrefix("/donations").Subrouter()
	donations.Use(r.authMiddleware.Authenticate)
	donations.HandleFunc("", r.donationHandler.List).Methods(http.MethodGet)
	donations.HandleFunc("/mine", r.donationHandler.ListMine).Methods(http.MethodGet)
	donations.Handle("", middleware.RequireDonor(http.HandlerFunc(r.donationHandler.Submit))).Methods(http.MethodPost)

	// Request routes (protected; submitting requires the hospital role)
	requests := api.PathPrefix("/requests").Subrouter()
	requests.Use(r.authMiddleware.Authenticate)
	requests.HandleFunc("", r.requestHandler.List).Methods(http.MethodGet)
	requests.HandleFunc("/mine", r.requestHandler.ListMine).Methods(http.MethodGet)
	requests.HandleFunc("/urgent", r.requestHandler.Urgent).Methods(http.MethodGet)
	requests.Handle("", middleware.RequireHospital(http.HandlerFunc(r.requestHandler.Submit))).Methods(http.MethodPost)

	// Dashboard (protected)
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.HandleFunc("", r.dashboardHandler.Get).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
