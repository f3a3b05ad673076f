package models

import "time"

// Assignment is a task belonging to exactly one course.
type Assignment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CourseID    uint      `gorm:"index;not null" json:"course_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
