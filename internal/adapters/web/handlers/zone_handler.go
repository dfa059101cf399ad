package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
	"github.com/thermovote/thermovote/internal/telemetry"
)

// DefaultHistoryHours is the lookback used when the client omits ?hours.
const DefaultHistoryHours = 6

// ZoneHandler serves zone reads and the vote-history series.
type ZoneHandler struct {
	Service ports.ZoneService
	History ports.HistoryService
}

// NewZoneHandler creates a new ZoneHandler.
func NewZoneHandler(service ports.ZoneService, history ports.HistoryService) *ZoneHandler {
	return &ZoneHandler{
		Service: service,
		History: history,
	}
}

// HandleListZones returns all zones with 10-minute recency counts
// overlaid.
func (h *ZoneHandler) HandleListZones(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.GetZones(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

// HandleGetZone returns the raw stored zone, or 404.
func (h *ZoneHandler) HandleGetZone(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	zone, err := h.Service.GetZone(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, zone)
}

// HandleVoteHistory returns the gap-filled bucket series for charting.
func (h *ZoneHandler) HandleVoteHistory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	hours := DefaultHistoryHours
	if raw := r.URL.Query().Get("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, domain.NewValidationError("hours", "must be an integer"))
			return
		}
		hours = parsed
	}

	// The builder assumes a valid zone; resolve 404 semantics here.
	if _, err := h.Service.GetZone(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	series, err := h.History.BuildSeries(r.Context(), id, hours)
	if err != nil {
		writeError(w, err)
		return
	}

	telemetry.HistoryRequests.WithLabelValues(id).Inc()
	writeJSON(w, http.StatusOK, series)
}
