package app

import (
	"context"

	"personnel-portal/internal/core"
)

// PortalService is the single interface the web adapter calls. It decouples
// presentation from the credential store and the employee directory;
// implementations contain no HTTP or display logic of any kind.
type PortalService interface {
	// Authenticate verifies credentials against the seeded identity set.
	// Returns core.ErrUnknownUser or core.ErrBadPassword; the adapter must
	// present both identically.
	Authenticate(ctx context.Context, username, password string) (*core.Identity, error)

	// ListEmployees returns all records, or only active ones.
	ListEmployees(ctx context.Context, activeOnly bool) ([]core.Employee, error)

	// GetEmployee returns one employee by id (*core.NotFoundError if absent).
	GetEmployee(ctx context.Context, id int64) (*core.Employee, error)

	// CreateEmployee adds a new employee (*core.DuplicateEmailError on a
	// taken email).
	CreateEmployee(ctx context.Context, draft core.EmployeeDraft) (*core.Employee, error)

	// UpdateEmployee overwrites every mutable field of an existing employee.
	UpdateEmployee(ctx context.Context, id int64, draft core.EmployeeDraft) (*core.Employee, error)

	// DeleteEmployee soft-deletes: the record stays, active flips to false.
	DeleteEmployee(ctx context.Context, id int64) error

	// SearchEmployees matches term against first or last name,
	// case-insensitively.
	SearchEmployees(ctx context.Context, term string) ([]core.Employee, error)
}

type portalService struct {
	credentials *core.CredentialStore
	employees   core.EmployeeService
}

// NewPortalService wires the core services behind the PortalService facade.
func NewPortalService(credentials *core.CredentialStore, employees core.EmployeeService) PortalService {
	return &portalService{credentials: credentials, employees: employees}
}

func (s *portalService) Authenticate(ctx context.Context, username, password string) (*core.Identity, error) {
	return s.credentials.Authenticate(username, password)
}

func (s *portalService) ListEmployees(ctx context.Context, activeOnly bool) ([]core.Employee, error) {
	if activeOnly {
		return s.employees.ListActive(ctx)
	}
	return s.employees.ListAll(ctx)
}

func (s *portalService) GetEmployee(ctx context.Context, id int64) (*core.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *portalService) CreateEmployee(ctx context.Context, draft core.EmployeeDraft) (*core.Employee, error) {
	return s.employees.Create(ctx, draft)
}

func (s *portalService) UpdateEmployee(ctx context.Context, id int64, draft core.EmployeeDraft) (*core.Employee, error) {
	return s.employees.Update(ctx, id, draft)
}

func (s *portalService) DeleteEmployee(ctx context.Context, id int64) error {
	return s.employees.Delete(ctx, id)
}

func (s *portalService) SearchEmployees(ctx context.Context, term string) ([]core.Employee, error) {
	return s.employees.Search(ctx, term)
}
