package api

import (
	"net/http"
	"strconv"

	"github.com/esgbuddy/esgbuddy/pkg/esg"
)

// decodeDocument reads a CompanyData document from the request body.
func decodeDocument(r *http.Request) (*esg.CompanyData, error) {
	body, err := requestBody(r)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return esg.DecodeDocument(body)
}

// handleCompute scores a posted document without storing it.
func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	notes, _ := strconv.ParseBool(r.URL.Query().Get("notes"))
	report, err := h.engine(notes).Compute(doc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}
