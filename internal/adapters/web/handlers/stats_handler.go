package handlers

import (
	"net/http"

	"github.com/thermovote/thermovote/internal/core/ports"
)

// StatsHandler serves floor-wide aggregates.
type StatsHandler struct {
	Service ports.ZoneService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service ports.ZoneService) *StatsHandler {
	return &StatsHandler{
		Service: service,
	}
}

// HandleGetStats returns totals, the rounded average temperature and the
// approximate connected-user count.
func (h *StatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetSystemStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
