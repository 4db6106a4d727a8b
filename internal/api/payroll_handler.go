package api

import (
	"net/http"

	httperr "limpia/internal/errors"
	"limpia/internal/service"
)

type PayrollHandler struct {
	Service *service.PayrollService
}

func NewPayrollHandler(svc *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{Service: svc}
}

// GetReport computes the payroll report for ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *PayrollHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	resp, err := h.Service.Report(from, to)
	if err != nil {
		http.Error(w, err.Error(), httperr.StatusOf(err, http.StatusInternalServerError))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
