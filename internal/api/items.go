package api

import (
	"encoding/json"
	"net/http"
)

func decodeFields(r *http.Request) (map[string]any, error) {
	body, err := requestBody(r)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var fields map[string]any
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	list, err := h.itemSvc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	it, err := h.itemSvc.Create(r.Context(), fields)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	it, err := h.itemSvc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Item not found", "Failed to fetch item")
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *Handler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if _, err := h.itemSvc.Update(r.Context(), r.PathValue("id"), fields); err != nil {
		writeServiceError(w, err, "Item not found", "Failed to update item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item updated successfully"})
}

func (h *Handler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.itemSvc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err, "Item not found", "Failed to delete item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}
