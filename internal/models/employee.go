package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmploymentPermanent   = "Permanent"
	EmploymentContractual = "Contractual"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	FirstName      string    `gorm:"size:120;not null" json:"firstName"`
	LastName       string    `gorm:"size:120;not null" json:"lastName"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	CompanyEmail   string    `gorm:"uniqueIndex;size:255;not null" json:"companyEmail"`
	ManagerName    string    `gorm:"size:255" json:"managerName"`
	Department     string    `gorm:"size:120;not null" json:"department"`
	JoiningDate    time.Time `json:"joiningDate"`
	EmploymentType string    `gorm:"size:50;not null" json:"employmentType"`
	VendorName     string    `gorm:"size:255" json:"vendorName,omitempty"`
	EmployeeCode   string    `gorm:"uniqueIndex;size:50;not null" json:"employeeCode"`
	PasswordHash   string    `gorm:"size:255;not null" json:"-"`
	TempPassword   bool      `gorm:"not null;default:true" json:"-"`
	Role           string    `gorm:"size:50;not null;default:employee" json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
