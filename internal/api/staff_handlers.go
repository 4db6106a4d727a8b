package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"limpia/internal/entities"
	httperr "limpia/internal/errors"
	"limpia/internal/service"
)

type StaffHandler struct {
	Service *service.StaffService
}

func NewStaffHandler(svc *service.StaffService) *StaffHandler {
	return &StaffHandler{Service: svc}
}

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req entities.StaffRequest
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

func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Get(id)
	if err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusNotFound))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListStaff returns the roster; ?active=true restricts to active staff.
func (h *StaffHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	list, err := h.Service.List(activeOnly)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req entities.StaffRequest
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

// SetAvailability replaces the full weekly schedule of one staff member.
func (h *StaffHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var days []entities.StaffDayRequest
	if err := json.NewDecoder(r.Body).Decode(&days); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.SetAvailability(id, days)
	if err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.Delete(id); err != nil {
		http.Error(w, "Could not delete staff member", http.StatusInternalServerError)
		return
	}
	writeMessage(w, http.StatusOK, "Staff member deleted")
}
