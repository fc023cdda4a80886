package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a personnel record. Inactive records are soft-deleted: they
// drop out of the active listing but remain retrievable by id.
type Employee struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	DateOfBirth time.Time
	Position    string
	Salary      decimal.Decimal
	Active      bool
}

// EmployeeDraft holds the caller-supplied fields for creating or updating an
// employee, prior to id assignment.
type EmployeeDraft struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	DateOfBirth time.Time
	Position    string
	Salary      decimal.Decimal
	Active      bool
}

// EmployeeService provides CRUD and search over the employee collection.
type EmployeeService interface {
	// ListAll returns every record regardless of the active flag, in id order.
	ListAll(ctx context.Context) ([]Employee, error)

	// ListActive returns only records with active = true.
	ListActive(ctx context.Context) ([]Employee, error)

	// GetByID returns a single employee, or *NotFoundError.
	GetByID(ctx context.Context, id int64) (*Employee, error)

	// Create inserts a new employee with a store-assigned id. Returns
	// *DuplicateEmailError when the email is already taken by any record,
	// active or not.
	Create(ctx context.Context, draft EmployeeDraft) (*Employee, error)

	// Update overwrites every mutable field of an existing employee with the
	// draft's values. Returns *NotFoundError when the id is absent. Email
	// uniqueness is not re-checked here; the database constraint is the
	// final arbiter.
	Update(ctx context.Context, id int64, draft EmployeeDraft) (*Employee, error)

	// Delete soft-deletes: sets active = false and keeps the record.
	// Returns *NotFoundError when the id is absent.
	Delete(ctx context.Context, id int64) error

	// Search matches term case-insensitively as a substring of first OR last
	// name. An empty result is a nil slice, not an error.
	Search(ctx context.Context, term string) ([]Employee, error)
}
