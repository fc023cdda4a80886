package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"personnel-portal/internal/core"
)

// employeeJSON is the wire shape of an employee record.
type employeeJSON struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
	Position    string `json:"position"`
	Salary      string `json:"salary"`
	Active      bool   `json:"active"`
}

// employeeDraftJSON is the request body for create and update.
type employeeDraftJSON struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
	Position    string `json:"position"`
	Salary      string `json:"salary"`
	Active      bool   `json:"active"`
}

func toEmployeeJSON(e core.Employee) employeeJSON {
	return employeeJSON{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		DateOfBirth: e.DateOfBirth.Format(dateLayout),
		Position:    e.Position,
		Salary:      e.Salary.StringFixed(2),
		Active:      e.Active,
	}
}

func toEmployeeJSONList(employees []core.Employee) []employeeJSON {
	out := make([]employeeJSON, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeJSON(e))
	}
	return out
}

// draftFromJSON validates the wire draft. The returned message is empty when
// the draft is well-formed.
func draftFromJSON(body employeeDraftJSON) (core.EmployeeDraft, string) {
	draft := core.EmployeeDraft{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		Position:    body.Position,
		Active:      body.Active,
	}
	if draft.FirstName == "" || draft.LastName == "" || draft.Email == "" {
		return draft, "first_name, last_name and email are required"
	}

	dob, err := time.Parse(dateLayout, body.DateOfBirth)
	if err != nil {
		return draft, "date_of_birth must be YYYY-MM-DD"
	}
	draft.DateOfBirth = dob

	salary, err := decimal.NewFromString(body.Salary)
	if err != nil || salary.IsNegative() {
		return draft, "salary must be a non-negative number"
	}
	draft.Salary = salary

	return draft, ""
}

// writeEmployeeError translates directory failures into JSON responses.
func writeEmployeeError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *core.NotFoundError
	if errors.As(err, &nf) {
		writeError(w, r, nf.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}
	var dup *core.DuplicateEmailError
	if errors.As(err, &dup) {
		writeError(w, r, dup.Error(), "DUPLICATE_EMAIL", http.StatusConflict)
		return
	}
	writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
}

// apiListEmployees handles GET /api/employees. ?active=1 narrows to the
// active view.
func (h *Handler) apiListEmployees(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "1"
	employees, err := h.svc.ListEmployees(r.Context(), activeOnly)
	if err != nil {
		writeEmployeeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeJSONList(employees))
}

// apiSearchEmployees handles GET /api/employees/search?q=term.
func (h *Handler) apiSearchEmployees(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		writeError(w, r, "missing q parameter", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	employees, err := h.svc.SearchEmployees(r.Context(), term)
	if err != nil {
		writeEmployeeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeJSONList(employees))
}

// apiGetEmployee handles GET /api/employees/{id}.
func (h *Handler) apiGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		writeError(w, r, "invalid employee id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	e, err := h.svc.GetEmployee(r.Context(), id)
	if err != nil {
		writeEmployeeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeJSON(*e))
}

// apiCreateEmployee handles POST /api/employees.
func (h *Handler) apiCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var body employeeDraftJSON
	if !decodeJSON(w, r, &body) {
		return
	}
	draft, msg := draftFromJSON(body)
	if msg != "" {
		writeError(w, r, msg, "VALIDATION_ERROR", http.StatusUnprocessableEntity)
		return
	}
	e, err := h.svc.CreateEmployee(r.Context(), draft)
	if err != nil {
		writeEmployeeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeJSON(*e))
}

// apiUpdateEmployee handles PUT /api/employees/{id} — full-field overwrite,
// no patch semantics.
func (h *Handler) apiUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		writeError(w, r, "invalid employee id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	var body employeeDraftJSON
	if !decodeJSON(w, r, &body) {
		return
	}
	draft, msg := draftFromJSON(body)
	if msg != "" {
		writeError(w, r, msg, "VALIDATION_ERROR", http.StatusUnprocessableEntity)
		return
	}
	e, err := h.svc.UpdateEmployee(r.Context(), id, draft)
	if err != nil {
		writeEmployeeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeJSON(*e))
}

// apiDeleteEmployee handles DELETE /api/employees/{id} — soft delete.
func (h *Handler) apiDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		writeError(w, r, "invalid employee id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteEmployee(r.Context(), id); err != nil {
		writeEmployeeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
