package repository

import (
	"time"

	"coursetrack/models"

	"gorm.io/gorm"
)

// Coordinator sequences the multi-step writes that must keep the
// course/assignment relationship consistent. Each sequence runs inside a
// single transaction so no partial state can be committed.
type Coordinator struct {
	db *gorm.DB
}

func NewCoordinator(db *gorm.DB) *Coordinator {
	return &Coordinator{db: db}
}

// DeleteCourse removes a course and all of its assignments. The assignments
// go first; if that step fails the course deletion never runs and the whole
// transaction is rolled back.
func (co *Coordinator) DeleteCourse(id uint) error {
	tx := co.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("course_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	result := tx.Where("id = ?", id).Delete(&models.Course{})
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrCourseNotFound
	}

	return tx.Commit().Error
}

// CreateAssignment verifies the parent course exists, then inserts the
// assignment. Check and insert share one transaction, so the course cannot
// vanish between the two steps.
func (co *Coordinator) CreateAssignment(courseID uint, name string, dueDate time.Time, isCompleted bool) (*models.Assignment, error) {
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}
	if dueDate.IsZero() {
		return nil, &ValidationError{Field: "due_date", Reason: "is required"}
	}
	if courseID == 0 {
		return nil, &ValidationError{Field: "course_id", Reason: "is required"}
	}

	tx := co.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var count int64
	if err := tx.Model(&models.Course{}).Where("id = ?", courseID).Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if count == 0 {
		tx.Rollback()
		return nil, ErrCourseNotFound
	}

	assignment := models.Assignment{
		CourseID:    courseID,
		Name:        name,
		DueDate:     dueDate,
		IsCompleted: isCompleted,
	}

	if err := tx.Create(&assignment).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &assignment, nil
}
