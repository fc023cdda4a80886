package core_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"personnel-portal/internal/core"
)

var employeeCols = []string{
	"id", "first_name", "last_name", "email", "phone_number",
	"date_of_birth", "position", "salary", "active",
}

func testDraft() core.EmployeeDraft {
	return core.EmployeeDraft{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@co.com",
		PhoneNumber: "+1-555-0100",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Position:    "Engineer",
		Salary:      decimal.NewFromInt(72000),
		Active:      true,
	}
}

func addDraftRow(rows *pgxmock.Rows, id int64, d core.EmployeeDraft) *pgxmock.Rows {
	return rows.AddRow(id, d.FirstName, d.LastName, d.Email, d.PhoneNumber,
		d.DateOfBirth, d.Position, d.Salary, d.Active)
}

func TestEmployeeService_Create(t *testing.T) {
	t.Parallel()

	t.Run("assigns id and defaults active", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		draft := testDraft()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
			WithArgs(draft.Email).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO employees`)).
			WithArgs(draft.FirstName, draft.LastName, draft.Email, draft.PhoneNumber,
				draft.DateOfBirth, draft.Position, draft.Salary).
			WillReturnRows(addDraftRow(pgxmock.NewRows(employeeCols), 1, draft))

		svc := core.NewEmployeeService(mock)
		e, err := svc.Create(context.Background(), draft)
		require.NoError(t, err)
		require.Equal(t, int64(1), e.ID)
		require.True(t, e.Active)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("taken email is a typed duplicate failure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		draft := testDraft()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
			WithArgs(draft.Email).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		svc := core.NewEmployeeService(mock)
		_, err = svc.Create(context.Background(), draft)

		require.True(t, core.IsDuplicateEmail(err))
		require.Contains(t, err.Error(), draft.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation from a concurrent create gets the same typed failure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		draft := testDraft()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
			WithArgs(draft.Email).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO employees`)).
			WithArgs(draft.FirstName, draft.LastName, draft.Email, draft.PhoneNumber,
				draft.DateOfBirth, draft.Position, draft.Salary).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})

		svc := core.NewEmployeeService(mock)
		_, err = svc.Create(context.Background(), draft)

		require.True(t, core.IsDuplicateEmail(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM employees`)).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	svc := core.NewEmployeeService(mock)
	_, err = svc.GetByID(context.Background(), 42)

	require.True(t, core.IsNotFound(err))
	require.Contains(t, err.Error(), "42")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	draft := testDraft()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE employees`)).
		WithArgs(draft.FirstName, draft.LastName, draft.Email, draft.PhoneNumber,
			draft.DateOfBirth, draft.Position, draft.Salary, draft.Active, int64(99)).
		WillReturnError(pgx.ErrNoRows)

	svc := core.NewEmployeeService(mock)
	_, err = svc.Update(context.Background(), 99, draft)

	require.True(t, core.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("soft-deletes an existing record", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE employees SET active = false`)).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		svc := core.NewEmployeeService(mock)
		require.NoError(t, svc.Delete(context.Background(), 7))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id is a typed not-found failure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE employees SET active = false`)).
			WithArgs(int64(404)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		svc := core.NewEmployeeService(mock)
		err = svc.Delete(context.Background(), 404)
		require.True(t, core.IsNotFound(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Search(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	john := testDraft()
	johnson := testDraft()
	johnson.FirstName = "Amy"
	johnson.LastName = "Johnson"
	johnson.Email = "amy.johnson@co.com"

	rows := pgxmock.NewRows(employeeCols)
	rows = addDraftRow(rows, 1, john)
	rows = addDraftRow(rows, 2, johnson)

	mock.ExpectQuery(regexp.QuoteMeta(`first_name ILIKE $1 OR last_name ILIKE $1`)).
		WithArgs("%jo%").
		WillReturnRows(rows)

	svc := core.NewEmployeeService(mock)
	found, err := svc.Search(context.Background(), "jo")
	require.NoError(t, err)
	require.Len(t, found, 2)
	require.Equal(t, "Johnson", found[1].LastName)
	require.NoError(t, mock.ExpectationsWereMet())
}
