package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"hrms-backend/internal/models"
)

var (
	// ErrNotFound means no record matched the lookup or condition.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique column (email, company email, code) collided.
	ErrDuplicate = errors.New("duplicate record")
	// ErrStale means a conditional update matched the id but not the expected
	// state, i.e. another request transitioned the record first.
	ErrStale = errors.New("stale record state")
)

// EmployeeStore is the persistence boundary for employee records and the
// bookkeeping rows around them (department counters, reset-token ledger).
type EmployeeStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)
	FindByCompanyEmail(ctx context.Context, email string) (*models.Employee, error)
	Insert(ctx context.Context, employee *models.Employee) error
	// UpdatePasswordState replaces the password hash and clears the temporary
	// flag in a single statement. With onlyIfTemp the update applies only
	// while temp_password is still set; losing that race returns ErrStale.
	UpdatePasswordState(ctx context.Context, id uuid.UUID, hash string, onlyIfTemp bool) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
	UpdateDepartment(ctx context.Context, id uuid.UUID, department string) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]models.Employee, error)
	ListByRole(ctx context.Context, role string) ([]models.Employee, error)
	// NextDepartmentCode atomically reserves the next sequence number for a
	// department. Numbers start at 1 and are never handed out twice.
	NextDepartmentCode(ctx context.Context, department string) (int, error)
	CreatePasswordReset(ctx context.Context, reset *models.PasswordReset) error
	// RedeemPasswordReset marks the token id used and replaces the
	// employee's password hash in one transaction, so a failed update never
	// burns the single-use token. Returns ErrNotFound for unknown token or
	// employee ids and ErrStale when the token was already consumed.
	RedeemPasswordReset(ctx context.Context, tokenID string, employeeID uuid.UUID, hash string) error
}

type TaskStore interface {
	CreateTask(ctx context.Context, task *models.Task) error
	ListTasksForEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Task, error)
}
