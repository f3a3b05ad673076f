package repository

import (
	"errors"

	"coursetrack/models"

	"gorm.io/gorm"
)

// AssignmentRepo handles reads and writes on the assignments table.
// Creation goes through the Coordinator, which verifies the parent course.
type AssignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

func (r *AssignmentRepo) ListAll() ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByCourse returns a course's assignments ordered ascending by due date.
// It does not verify that the course itself exists.
func (r *AssignmentRepo) ListByCourse(courseID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.Where("course_id = ?", courseID).Order("due_date asc").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *AssignmentRepo) GetByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// UpdateCompletion sets the completion flag. Either value may be set from
// either value; repeating a set is a no-op, not an error.
func (r *AssignmentRepo) UpdateCompletion(id uint, isCompleted bool) (*models.Assignment, error) {
	result := r.db.Model(&models.Assignment{}).Where("id = ?", id).Update("is_completed", isCompleted)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAssignmentNotFound
	}

	var assignment models.Assignment
	if err := r.db.First(&assignment, id).Error; err != nil {
		return nil, err
	}

	return &assignment, nil
}

func (r *AssignmentRepo) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.Assignment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}
