package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"size:2048" json:"description"`
	AssigneeID  uuid.UUID  `gorm:"type:char(36);index;not null" json:"assigneeId"`
	AssignedBy  uuid.UUID  `gorm:"type:char(36);not null" json:"assignedBy"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      string     `gorm:"size:50;not null;default:open" json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = "open"
	}
	return nil
}
