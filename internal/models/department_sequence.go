package models

// DepartmentSequence backs employee code generation: one counter row per
// department, bumped under a row lock so concurrent registrations never
// hand out the same code.
type DepartmentSequence struct {
	Department string `gorm:"size:120;primaryKey"`
	NextSeq    int    `gorm:"not null;default:1"`
}
