package pages

import (
	"fmt"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"personnel-portal/web/templates/layouts"
)

// EmployeeRow is one rendered table row. Salary and DateOfBirth arrive
// pre-formatted so the templates stay display-only.
type EmployeeRow struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	DateOfBirth string
	Position    string
	Salary      string
	Active      bool
}

// EditURL is the edit form route for this row.
func (r EmployeeRow) EditURL() string {
	return fmt.Sprintf("/employees/%d", r.ID)
}

// DeleteURL is the soft-delete action route for this row.
func (r EmployeeRow) DeleteURL() string {
	return fmt.Sprintf("/employees/%d/delete", r.ID)
}

// EmployeeListData configures the employee table page.
type EmployeeListData struct {
	Rows    []EmployeeRow
	Query   string
	ShowAll bool
}

// EmployeeFormData echoes field values into the create/edit form.
type EmployeeFormData struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	DateOfBirth string
	Position    string
	Salary      string
	Active      bool
}

// EmployeeList renders the employee table with search and view toggles.
func EmployeeList(d layouts.AppData, data EmployeeListData) Node {
	rows := make([]Node, 0, len(data.Rows))
	for _, row := range data.Rows {
		status := "Active"
		statusClass := "status-active"
		if !row.Active {
			status = "Inactive"
			statusClass = "status-inactive"
		}
		rows = append(rows, Tr(
			Td(A(Href(row.EditURL()), Text(row.FirstName+" "+row.LastName))),
			Td(Text(row.Email)),
			Td(Text(row.PhoneNumber)),
			Td(Text(row.Position)),
			Td(Text(row.Salary)),
			Td(Span(Class(statusClass), Text(status))),
			Td(
				Form(
					Method("post"),
					Action(row.DeleteURL()),
					Button(Type("submit"), Class("secondary"), Text("Deactivate")),
				),
			),
		))
	}

	tableNode := Node(P(Class("muted"), Text("No employees found.")))
	if len(rows) > 0 {
		tableNode = Div(
			Class("card table-wrap"),
			Table(
				Class("data-table"),
				THead(Tr(
					Th(Text("Name")), Th(Text("Email")), Th(Text("Phone")),
					Th(Text("Position")), Th(Text("Salary")), Th(Text("Status")), Th(Text("")),
				)),
				TBody(Group(rows)),
			),
		)
	}

	viewToggle := A(Href("/employees?all=1"), Text("Include inactive"))
	if data.ShowAll {
		viewToggle = A(Href("/employees"), Text("Active only"))
	}

	return layouts.App(d,
		Div(
			Class("toolbar"),
			Form(
				Method("get"),
				Action("/employees"),
				Class("search-form"),
				Input(Type("text"), Name("q"), Value(data.Query), Placeholder("Search by first or last name")),
				Button(Type("submit"), Class("secondary"), Text("Search")),
			),
			viewToggle,
			A(Href("/employees/new"), Class("btn btn-primary"), Text("New employee")),
		),
		tableNode,
	)
}

// EmployeeForm renders the create/edit form posting to action.
func EmployeeForm(d layouts.AppData, action string, f EmployeeFormData, errMsg string) Node {
	content := []Node{
		Form(
			Method("post"),
			Action(action),
			Class("employee-form"),
			Label(For("first_name"), Text("First name")),
			Input(Type("text"), ID("first_name"), Name("first_name"), Value(f.FirstName), Required()),
			Label(For("last_name"), Text("Last name")),
			Input(Type("text"), ID("last_name"), Name("last_name"), Value(f.LastName), Required()),
			Label(For("email"), Text("Email")),
			Input(Type("email"), ID("email"), Name("email"), Value(f.Email), Required()),
			Label(For("phone_number"), Text("Phone number")),
			Input(Type("tel"), ID("phone_number"), Name("phone_number"), Value(f.PhoneNumber)),
			Label(For("date_of_birth"), Text("Date of birth")),
			Input(Type("date"), ID("date_of_birth"), Name("date_of_birth"), Value(f.DateOfBirth), Required()),
			Label(For("position"), Text("Position")),
			Input(Type("text"), ID("position"), Name("position"), Value(f.Position)),
			Label(For("salary"), Text("Salary")),
			Input(Type("number"), ID("salary"), Name("salary"), Value(f.Salary), Step("0.01"), Min("0"), Required()),
			Label(
				Class("checkbox"),
				Input(Type("checkbox"), Name("active"), If(f.Active, Checked())),
				Text(" Active"),
			),
			Div(
				Class("form-actions"),
				Button(Type("submit"), Class("btn btn-primary"), Text("Save")),
				A(Href("/employees"), Class("secondary"), Text("Cancel")),
			),
		),
	}
	if errMsg != "" {
		content = append([]Node{P(Class("error"), Text(errMsg))}, content...)
	}

	return layouts.App(d, Div(Class("card"), Group(content)))
}
