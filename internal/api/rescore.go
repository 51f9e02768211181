package api

import (
	"encoding/json"
	"log"
	"net/http"
)

type rescoreRequest struct {
	CompanyID string `json:"company_id"` // optional filter
}

// handleRescore re-runs the scoring engine on every stored document and
// refreshes the stored reports and summary rows.
func (h *Handler) handleRescore(w http.ResponseWriter, r *http.Request) {
	var req rescoreRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	res, err := h.ingestionSvc.Rescore(r.Context(), req.CompanyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "rescore: "+err.Error())
		return
	}
	h.cache.Clear()

	log.Printf("rescore: %d rescored, %d errors", res.Rescored, res.Errors)
	writeJSON(w, http.StatusOK, res)
}
