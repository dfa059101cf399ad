package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thermovote/thermovote/internal/adapters/web/middleware"
)

// SetupRoutes wires the API, websocket, metrics and static routes.
func SetupRoutes(s *Server) http.Handler {
	r := mux.NewRouter()

	// Session resolution + presence touch applies to every API request
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Session(s.Presence))

	api.HandleFunc("/zones", s.ZoneHandler.HandleListZones).Methods(http.MethodGet)
	api.HandleFunc("/zones/{id}", s.ZoneHandler.HandleGetZone).Methods(http.MethodGet)
	api.HandleFunc("/zones/{id}/vote-history", s.ZoneHandler.HandleVoteHistory).Methods(http.MethodGet)
	api.HandleFunc("/vote", s.VoteHandler.HandleVote).Methods(http.MethodPost)
	api.HandleFunc("/stats", s.StatsHandler.HandleGetStats).Methods(http.MethodGet)
	api.HandleFunc("/reports/comfort", s.ReportHandler.HandleComfortReport).Methods(http.MethodGet)

	// WebSocket endpoint shares the session middleware so connections are
	// counted as live sessions too.
	r.Handle("/ws", middleware.Session(s.Presence)(http.HandlerFunc(s.WSManager.HandleWebSocket)))

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Static UI
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.StaticDir)))

	return r
}
