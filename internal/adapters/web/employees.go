package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"personnel-portal/internal/core"
	"personnel-portal/web/templates/pages"
)

const dateLayout = "2006-01-02"

// employeeRow converts a core record to the row shape the templates take.
func employeeRow(e core.Employee) pages.EmployeeRow {
	return pages.EmployeeRow{
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

func employeeRows(employees []core.Employee) []pages.EmployeeRow {
	rows := make([]pages.EmployeeRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, employeeRow(e))
	}
	return rows
}

// draftFromForm builds an EmployeeDraft from submitted form values. The
// returned message is empty when the draft is well-formed.
func draftFromForm(r *http.Request) (core.EmployeeDraft, string) {
	draft := core.EmployeeDraft{
		FirstName:   r.FormValue("first_name"),
		LastName:    r.FormValue("last_name"),
		Email:       r.FormValue("email"),
		PhoneNumber: r.FormValue("phone_number"),
		Position:    r.FormValue("position"),
		Active:      r.FormValue("active") != "",
	}
	if draft.FirstName == "" || draft.LastName == "" || draft.Email == "" {
		return draft, "First name, last name and email are required."
	}

	dob, err := time.Parse(dateLayout, r.FormValue("date_of_birth"))
	if err != nil {
		return draft, "Date of birth must be in YYYY-MM-DD format."
	}
	draft.DateOfBirth = dob

	salary, err := decimal.NewFromString(r.FormValue("salary"))
	if err != nil || salary.IsNegative() {
		return draft, "Salary must be a non-negative number."
	}
	draft.Salary = salary

	return draft, ""
}

// formData echoes a rejected draft back into the form.
func formData(draft core.EmployeeDraft, r *http.Request) pages.EmployeeFormData {
	return pages.EmployeeFormData{
		FirstName:   draft.FirstName,
		LastName:    draft.LastName,
		Email:       draft.Email,
		PhoneNumber: draft.PhoneNumber,
		DateOfBirth: r.FormValue("date_of_birth"),
		Position:    draft.Position,
		Salary:      r.FormValue("salary"),
		Active:      draft.Active,
	}
}

// employeesListPage handles GET /employees. Defaults to the active view;
// ?all=1 includes soft-deleted records, ?q= switches to name search.
func (h *Handler) employeesListPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	showAll := r.URL.Query().Get("all") == "1"

	var (
		employees []core.Employee
		err       error
	)
	if query != "" {
		employees, err = h.svc.SearchEmployees(r.Context(), query)
	} else {
		employees, err = h.svc.ListEmployees(r.Context(), !showAll)
	}
	if err != nil {
		renderHTML(w, http.StatusInternalServerError, pages.Error("Something went wrong", "Could not load employees."))
		return
	}

	renderHTML(w, http.StatusOK, pages.EmployeeList(layoutData(r, "Employees", "employees"), pages.EmployeeListData{
		Rows:    employeeRows(employees),
		Query:   query,
		ShowAll: showAll,
	}))
}

// employeeNewPage handles GET /employees/new.
func (h *Handler) employeeNewPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, pages.EmployeeForm(layoutData(r, "New employee", "employees"),
		"/employees/new", pages.EmployeeFormData{Active: true}, ""))
}

// employeeCreateAction handles POST /employees/new.
func (h *Handler) employeeCreateAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, pages.EmployeeForm(layoutData(r, "New employee", "employees"),
			"/employees/new", pages.EmployeeFormData{Active: true}, "Invalid form submission."))
		return
	}

	draft, msg := draftFromForm(r)
	if msg != "" {
		renderHTML(w, http.StatusUnprocessableEntity, pages.EmployeeForm(layoutData(r, "New employee", "employees"),
			"/employees/new", formData(draft, r), msg))
		return
	}

	if _, err := h.svc.CreateEmployee(r.Context(), draft); err != nil {
		msg := "Could not create the employee."
		status := http.StatusInternalServerError
		var dup *core.DuplicateEmailError
		if errors.As(err, &dup) {
			msg = "Email already exists: " + dup.Email
			status = http.StatusConflict
		}
		renderHTML(w, status, pages.EmployeeForm(layoutData(r, "New employee", "employees"),
			"/employees/new", formData(draft, r), msg))
		return
	}

	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// employeeEditPage handles GET /employees/{id}.
func (h *Handler) employeeEditPage(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		renderHTML(w, http.StatusNotFound, pages.Error("Not found", "No such employee."))
		return
	}

	e, err := h.svc.GetEmployee(r.Context(), id)
	if err != nil {
		if core.IsNotFound(err) {
			renderHTML(w, http.StatusNotFound, pages.Error("Not found", "No such employee."))
			return
		}
		renderHTML(w, http.StatusInternalServerError, pages.Error("Something went wrong", "Could not load the employee."))
		return
	}

	row := employeeRow(*e)
	renderHTML(w, http.StatusOK, pages.EmployeeForm(layoutData(r, "Edit employee", "employees"),
		row.EditURL(), pages.EmployeeFormData{
			FirstName:   e.FirstName,
			LastName:    e.LastName,
			Email:       e.Email,
			PhoneNumber: e.PhoneNumber,
			DateOfBirth: row.DateOfBirth,
			Position:    e.Position,
			Salary:      e.Salary.StringFixed(2),
			Active:      e.Active,
		}, ""))
}

// employeeUpdateAction handles POST /employees/{id} — full-field overwrite.
func (h *Handler) employeeUpdateAction(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		renderHTML(w, http.StatusNotFound, pages.Error("Not found", "No such employee."))
		return
	}

	action := pages.EmployeeRow{ID: id}.EditURL()
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, pages.EmployeeForm(layoutData(r, "Edit employee", "employees"),
			action, pages.EmployeeFormData{}, "Invalid form submission."))
		return
	}

	draft, msg := draftFromForm(r)
	if msg != "" {
		renderHTML(w, http.StatusUnprocessableEntity, pages.EmployeeForm(layoutData(r, "Edit employee", "employees"),
			action, formData(draft, r), msg))
		return
	}

	if _, err := h.svc.UpdateEmployee(r.Context(), id, draft); err != nil {
		if core.IsNotFound(err) {
			renderHTML(w, http.StatusNotFound, pages.Error("Not found", "No such employee."))
			return
		}
		renderHTML(w, http.StatusInternalServerError, pages.EmployeeForm(layoutData(r, "Edit employee", "employees"),
			action, formData(draft, r), "Could not save the employee."))
		return
	}

	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}

// employeeDeleteAction handles POST /employees/{id}/delete — soft delete.
func (h *Handler) employeeDeleteAction(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		renderHTML(w, http.StatusNotFound, pages.Error("Not found", "No such employee."))
		return
	}

	if err := h.svc.DeleteEmployee(r.Context(), id); err != nil {
		if core.IsNotFound(err) {
			renderHTML(w, http.StatusNotFound, pages.Error("Not found", "No such employee."))
			return
		}
		renderHTML(w, http.StatusInternalServerError, pages.Error("Something went wrong", "Could not deactivate the employee."))
		return
	}

	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}
