package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"limpia/internal/entities"
	httperr "limpia/internal/errors"
	"limpia/internal/service"
)

type FinanceHandler struct {
	Service *service.FinanceService
}

func NewFinanceHandler(svc *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{Service: svc}
}

func (h *FinanceHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entities.FinanceEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Create(&req)
	if err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *FinanceHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *FinanceHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req entities.FinanceEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Update(id, &req)
	if err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FinanceHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Service.Delete(id); err != nil {
		http.Error(w, "Could not delete finance entry", http.StatusInternalServerError)
		return
	}
	writeMessage(w, http.StatusOK, "Finance entry deleted")
}

// GetSummary renders all-time and current-month totals, the 12-month series
// and the upcoming payments list.
func (h *FinanceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Summary()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
