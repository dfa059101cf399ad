package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/thermovote/thermovote/internal/core/domain"
	"github.com/thermovote/thermovote/internal/core/ports"
)

// VoteHandler handles vote submission.
type VoteHandler struct {
	Service ports.ZoneService
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(service ports.ZoneService) *VoteHandler {
	return &VoteHandler{
		Service: service,
	}
}

type voteRequest struct {
	ZoneID   string `json:"zoneId"`
	VoteType string `json:"voteType"`
}

// HandleVote accepts {zoneId, voteType} and returns the updated zone view
// with freshly recomputed counts. 400 on schema violation, 404 on unknown
// zone.
func (h *VoteHandler) HandleVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "malformed JSON payload"))
		return
	}
	if req.ZoneID == "" {
		writeError(w, domain.NewValidationError("zoneId", "required"))
		return
	}

	view, err := h.Service.SubmitVote(r.Context(), req.ZoneID, domain.VoteType(req.VoteType))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
