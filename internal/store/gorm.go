package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms-backend/internal/models"
)

// GormStore implements EmployeeStore and TaskStore on top of gorm.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &employee, nil
}

func (s *GormStore) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&employee).Error; err != nil {
		return nil, translate(err)
	}
	return &employee, nil
}

func (s *GormStore) FindByCompanyEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.WithContext(ctx).Where("company_email = ?", email).First(&employee).Error; err != nil {
		return nil, translate(err)
	}
	return &employee, nil
}

func (s *GormStore) Insert(ctx context.Context, employee *models.Employee) error {
	return translate(s.DB.WithContext(ctx).Create(employee).Error)
}

func (s *GormStore) UpdatePasswordState(ctx context.Context, id uuid.UUID, hash string, onlyIfTemp bool) error {
	query := s.DB.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", id)
	if onlyIfTemp {
		query = query.Where("temp_password = ?", true)
	}
	result := query.Updates(map[string]interface{}{
		"password_hash": hash,
		"temp_password": false,
	})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		if onlyIfTemp {
			return ErrStale
		}
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	return s.updateColumn(ctx, id, "role", role)
}

func (s *GormStore) UpdateDepartment(ctx context.Context, id uuid.UUID, department string) error {
	return s.updateColumn(ctx, id, "department", department)
}

func (s *GormStore) updateColumn(ctx context.Context, id uuid.UUID, column string, value string) error {
	result := s.DB.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.DB.WithContext(ctx).Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListAll(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.WithContext(ctx).Order("created_at desc").Find(&employees).Error; err != nil {
		return nil, translate(err)
	}
	return employees, nil
}

func (s *GormStore) ListByRole(ctx context.Context, role string) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.WithContext(ctx).Where("role = ?", role).Order("created_at desc").Find(&employees).Error; err != nil {
		return nil, translate(err)
	}
	return employees, nil
}

// NextDepartmentCode reserves a sequence number with an optimistic
// compare-and-swap: the increment only lands when nobody else bumped the
// counter in between, otherwise it retries. Works the same on mysql and the
// sqlite test database.
func (s *GormStore) NextDepartmentCode(ctx context.Context, department string) (int, error) {
	for {
		var counter models.DepartmentSequence
		err := s.DB.WithContext(ctx).Where("department = ?", department).First(&counter).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created := models.DepartmentSequence{Department: department, NextSeq: 2}
			err := s.DB.WithContext(ctx).Create(&created).Error
			if err == nil {
				return 1, nil
			}
			if errors.Is(translate(err), ErrDuplicate) {
				continue
			}
			return 0, translate(err)
		}
		if err != nil {
			return 0, translate(err)
		}

		result := s.DB.WithContext(ctx).Model(&models.DepartmentSequence{}).
			Where("department = ? AND next_seq = ?", department, counter.NextSeq).
			Update("next_seq", counter.NextSeq+1)
		if result.Error != nil {
			return 0, translate(result.Error)
		}
		if result.RowsAffected > 0 {
			return counter.NextSeq, nil
		}
	}
}

func (s *GormStore) CreatePasswordReset(ctx context.Context, reset *models.PasswordReset) error {
	return translate(s.DB.WithContext(ctx).Create(reset).Error)
}

// RedeemPasswordReset consumes the token and rewrites the password hash in a
// single transaction. If either half fails the whole thing rolls back, so the
// token stays redeemable for a retry.
func (s *GormStore) RedeemPasswordReset(ctx context.Context, tokenID string, employeeID uuid.UUID, hash string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&models.PasswordReset{}).
			Where("token_id = ? AND used_at IS NULL", tokenID).
			Update("used_at", now)
		if result.Error != nil {
			return translate(result.Error)
		}
		if result.RowsAffected == 0 {
			var reset models.PasswordReset
			if err := tx.Where("token_id = ?", tokenID).First(&reset).Error; err != nil {
				return translate(err)
			}
			return ErrStale
		}

		update := tx.Model(&models.Employee{}).Where("id = ?", employeeID).
			Updates(map[string]interface{}{
				"password_hash": hash,
				"temp_password": false,
			})
		if update.Error != nil {
			return translate(update.Error)
		}
		if update.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *GormStore) CreateTask(ctx context.Context, task *models.Task) error {
	return translate(s.DB.WithContext(ctx).Create(task).Error)
}

func (s *GormStore) ListTasksForEmployee(ctx context.Context, employeeID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.DB.WithContext(ctx).Where("assignee_id = ?", employeeID).Order("created_at desc").Find(&tasks).Error; err != nil {
		return nil, translate(err)
	}
	return tasks, nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateError(err) {
		return ErrDuplicate
	}
	return err
}

// isDuplicateError matches the driver-level unique violations gorm does not
// always wrap (mysql 1062, sqlite UNIQUE constraint).
func isDuplicateError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
