package api

import (
	"net/http"

	"github.com/esgbuddy/esgbuddy/pkg/scoring"
	"github.com/esgbuddy/esgbuddy/pkg/surface"
)

func (h *Handler) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ingestionSvc.List(r.Context(), r.URL.Query().Get("company_id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list companies: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cd, err := h.ingestionSvc.Ingest(r.Context(), doc)
	if err != nil {
		writeServiceError(w, err, "company not found", "failed to create company")
		return
	}
	h.cache.Put(cd.ID, cd.Report)

	writeJSON(w, http.StatusCreated, cd)
}

func (h *Handler) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	cd, err := h.ingestionSvc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "company not found", "failed to fetch company")
		return
	}
	writeJSON(w, http.StatusOK, cd)
}

func (h *Handler) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	doc, err := decodeDocument(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cd, err := h.ingestionSvc.Update(r.Context(), id, doc)
	if err != nil {
		writeServiceError(w, err, "company not found", "failed to update company")
		return
	}
	h.cache.Put(id, cd.Report)

	writeJSON(w, http.StatusOK, cd)
}

func (h *Handler) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.ingestionSvc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "company not found", "failed to delete company")
		return
	}
	h.cache.Delete(id)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Company deleted successfully"})
}

// report returns the stored report for a company, from cache when possible.
func (h *Handler) report(r *http.Request, id string) (*scoring.ComputedReport, error) {
	if report := h.cache.Get(id); report != nil {
		return report, nil
	}
	report, err := h.ingestionSvc.Report(r.Context(), id)
	if err != nil {
		return nil, err
	}
	h.cache.Put(id, report)
	return report, nil
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.report(r, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "company not found", "failed to load report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleContentIndex returns the GRI content index of a stored report, as
// JSON rows or, with ?format=markdown, as a Markdown table.
func (h *Handler) handleContentIndex(w http.ResponseWriter, r *http.Request) {
	report, err := h.report(r, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "company not found", "failed to load report")
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, report.ContentIndex)
	case "markdown", "md":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		renderer := &surface.MarkdownRenderer{IndexOnly: true}
		_ = renderer.Render(w, report)
	default:
		writeError(w, http.StatusBadRequest, "format must be json or markdown")
	}
}
