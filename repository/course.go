package repository

import (
	"coursetrack/models"

	"gorm.io/gorm"
)

// CourseRepo handles reads and writes on the courses table.
type CourseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

// ListWithAssignments returns every course with its assignments nested.
// Courses without assignments carry an empty list, not null.
func (r *CourseRepo) ListWithAssignments() ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.Preload("Assignments").Find(&courses).Error; err != nil {
		return nil, err
	}

	for i := range courses {
		if courses[i].Assignments == nil {
			courses[i].Assignments = []models.Assignment{}
		}
	}

	return courses, nil
}

func (r *CourseRepo) Create(name, courseLink string, studyHours int64) (*models.Course, error) {
	if studyHours < 0 {
		return nil, &ValidationError{Field: "study_hours", Reason: "cannot be negative"}
	}

	course := models.Course{
		Name:       name,
		CourseLink: courseLink,
		StudyHours: studyHours,
	}

	if err := r.db.Create(&course).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

// Update replaces all mutable course fields in one statement.
func (r *CourseRepo) Update(id uint, name, courseLink string, studyHours int64) (*models.Course, error) {
	if studyHours < 0 {
		return nil, &ValidationError{Field: "study_hours", Reason: "cannot be negative"}
	}

	result := r.db.Model(&models.Course{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        name,
		"course_link": courseLink,
		"study_hours": studyHours,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCourseNotFound
	}

	var course models.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

// Exists reports whether a course row with the given id is present.
func (r *CourseRepo) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Course{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
