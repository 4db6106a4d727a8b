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

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CheckAvailability returns the bookable hour slots for one day.
// GET /admin/availability?date=YYYY-MM-DD[&exclude_booking=CODE]
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	exclude := r.URL.Query().Get("exclude_booking")

	resp, err := h.Service.AvailableSlots(date, exclude)
	if err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// BlockedDates returns the fully blocked calendar days in a window.
// GET /admin/availability/blocked?from=YYYY-MM-DD&days=N
func (h *BookingHandler) BlockedDates(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	if days == 0 {
		days = 42 // six calendar rows
	}

	resp, err := h.Service.BlockedDates(from, days)
	if err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
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

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	resp, err := h.Service.Get(code)
	if err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusNotFound))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListBookings filters by ?date=&status=&staff_id=.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	status := r.URL.Query().Get("status")
	staffID, _ := strconv.Atoi(r.URL.Query().Get("staff_id"))

	list, err := h.Service.List(date, status, staffID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Reschedule(code, &req)
	if err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if err := h.Service.Cancel(code); err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusInternalServerError))
		return
	}
	writeMessage(w, http.StatusOK, "Booking canceled")
}

// CreateDeposit opens a Stripe Checkout session for the booking deposit.
func (h *BookingHandler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	url, err := h.Service.CreateDepositSession(code)
	if err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"checkout_url": url})
}
