package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code raised when the employees
// email constraint rejects an insert.
const uniqueViolation = "23505"

const employeeColumns = `id, first_name, last_name, email, phone_number, date_of_birth, position, salary, active`

type employeeService struct {
	db Queryer
}

// NewEmployeeService constructs an EmployeeService backed by PostgreSQL.
func NewEmployeeService(db Queryer) EmployeeService {
	return &employeeService{db: db}
}

func (s *employeeService) ListAll(ctx context.Context) ([]Employee, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return collectEmployees(rows)
}

func (s *employeeService) ListActive(ctx context.Context) ([]Employee, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE active = true
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list active employees: %w", err)
	}
	return collectEmployees(rows)
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*Employee, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE id = $1`,
		id)
	e, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get employee id=%d: %w", id, err)
	}
	return e, nil
}

func (s *employeeService) Create(ctx context.Context, draft EmployeeDraft) (*Employee, error) {
	// Friendly pre-check for the common path. The unique constraint on
	// employees.email is what actually closes the race between two
	// concurrent creates; a 23505 below gets the same typed error.
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)`, draft.Email).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check email %q: %w", draft.Email, err)
	}
	if exists {
		return nil, &DuplicateEmailError{Email: draft.Email}
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO employees (first_name, last_name, email, phone_number, date_of_birth, position, salary, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true)
		RETURNING `+employeeColumns,
		draft.FirstName, draft.LastName, draft.Email, draft.PhoneNumber,
		draft.DateOfBirth, draft.Position, draft.Salary)
	e, err := scanEmployee(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, &DuplicateEmailError{Email: draft.Email}
		}
		return nil, fmt.Errorf("create employee %q: %w", draft.Email, err)
	}
	return e, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, draft EmployeeDraft) (*Employee, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4,
		    date_of_birth = $5, position = $6, salary = $7, active = $8
		WHERE id = $9
		RETURNING `+employeeColumns,
		draft.FirstName, draft.LastName, draft.Email, draft.PhoneNumber,
		draft.DateOfBirth, draft.Position, draft.Salary, draft.Active, id)
	e, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("update employee id=%d: %w", id, err)
	}
	return e, nil
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `UPDATE employees SET active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee id=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

func (s *employeeService) Search(ctx context.Context, term string) ([]Employee, error) {
	pattern := "%" + term + "%"
	rows, err := s.db.Query(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE first_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY id`,
		pattern)
	if err != nil {
		return nil, fmt.Errorf("search employees %q: %w", term, err)
	}
	return collectEmployees(rows)
}

func scanEmployee(row pgx.Row) (*Employee, error) {
	e := &Employee{}
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
		&e.DateOfBirth, &e.Position, &e.Salary, &e.Active)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func collectEmployees(rows pgx.Rows) ([]Employee, error) {
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber,
			&e.DateOfBirth, &e.Position, &e.Salary, &e.Active); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}
