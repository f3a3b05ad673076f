package models

import "time"

// Course is a unit of study with an estimated time commitment.
type Course struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255" json:"name"`
	CourseLink string    `gorm:"size:512" json:"course_link"`
	StudyHours int64     `gorm:"not null;default:0" json:"study_hours"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Assignments []Assignment `gorm:"foreignKey:CourseID" json:"assignments"`
}
