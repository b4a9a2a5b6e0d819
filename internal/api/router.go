// Package api - Router setup
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter creates and configures the HTTP router
func (h *Handler) SetupRouter() *mux.Router {
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(h.RecoveryMiddleware)
	r.Use(CORSMiddleware)
	r.Use(h.LoggingMiddleware)

	// Public routes
	r.HandleFunc("/", h.ServerInfo).Methods("GET")
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API v1 routes
	api := r.PathPrefix("/api/v1").Subrouter()

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", h.Register).Methods("POST")
	auth.HandleFunc("/login", h.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(h.AuthMiddleware)

	// Wallet
	protected.HandleFunc("/wallet/balance", h.GetBalance).Methods("GET")
	protected.HandleFunc("/wallet/buyin", h.BuyIn).Methods("POST")
	protected.HandleFunc("/rounds", h.GetRounds).Methods("GET")

	// Tables
	protected.HandleFunc("/tables/roulette/bets", h.RoulettePlaceBet).Methods("POST")
	protected.HandleFunc("/tables/roulette/bets", h.RouletteClearBets).Methods("DELETE")
	protected.HandleFunc("/tables/roulette/spin", h.RouletteSpin).Methods("POST")
	protected.HandleFunc("/tables/slots/spin", h.SlotsSpin).Methods("POST")
	protected.HandleFunc("/tables/blackjack/deal", h.BlackjackDeal).Methods("POST")
	protected.HandleFunc("/tables/blackjack/hit", h.BlackjackHit).Methods("POST")
	protected.HandleFunc("/tables/blackjack/stand", h.BlackjackStand).Methods("POST")
	protected.HandleFunc("/tables/craps/bet", h.CrapsPlaceBet).Methods("POST")
	protected.HandleFunc("/tables/craps/roll", h.CrapsRoll).Methods("POST")

	// Save system
	protected.HandleFunc("/save", h.GetSave).Methods("GET")
	protected.HandleFunc("/save", h.WriteSave).Methods("POST")
	protected.HandleFunc("/save", h.ResetSave).Methods("DELETE")

	// WebSocket stream of settled rounds
	protected.HandleFunc("/ws/rounds", h.HandleWebSocket).Methods("GET")

	return r
}

// NotFoundHandler handles 404 errors
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
}
