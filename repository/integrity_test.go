package repository

import (
	"testing"

	"coursetrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCourseCascades(t *testing.T) {
	db := newTestDB(t)
	coordinator := NewCoordinator(db)

	algebra := seedCourse(t, db, "Algebra", 10)
	history := seedCourse(t, db, "History", 4)
	seedAssignment(t, db, algebra.ID, "A1", "2024-01-01")
	seedAssignment(t, db, algebra.ID, "A2", "2024-02-01")
	untouched := seedAssignment(t, db, history.ID, "Essay", "2024-03-01")

	require.NoError(t, coordinator.DeleteCourse(algebra.ID))

	var courseCount int64
	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", algebra.ID).Count(&courseCount).Error)
	assert.Zero(t, courseCount)

	var orphanCount int64
	require.NoError(t, db.Model(&models.Assignment{}).Where("course_id = ?", algebra.ID).Count(&orphanCount).Error)
	assert.Zero(t, orphanCount)

	// Assignments of other courses are untouched.
	var remaining models.Assignment
	require.NoError(t, db.First(&remaining, untouched.ID).Error)
	assert.Equal(t, history.ID, remaining.CourseID)
}

func TestDeleteCourseNotFound(t *testing.T) {
	db := newTestDB(t)
	coordinator := NewCoordinator(db)

	assert.ErrorIs(t, coordinator.DeleteCourse(999), ErrCourseNotFound)
}

func TestDeleteCourseKeepsParentWhenChildDeleteFails(t *testing.T) {
	db := newTestDB(t)
	coordinator := NewCoordinator(db)

	course := seedCourse(t, db, "Algebra", 10)
	seedAssignment(t, db, course.ID, "A1", "2024-01-01")

	// Force the child-deletion step to fail.
	require.NoError(t, db.Migrator().DropTable(&models.Assignment{}))

	err := coordinator.DeleteCourse(course.ID)
	require.Error(t, err)

	var stored models.Course
	require.NoError(t, db.First(&stored, course.ID).Error)
	assert.Equal(t, "Algebra", stored.Name)
}

func TestCreateAssignmentRequiresExistingCourse(t *testing.T) {
	db := newTestDB(t)
	coordinator := NewCoordinator(db)

	_, err := coordinator.CreateAssignment(999, "HW1", mustDate(t, "2024-05-01"), false)
	require.ErrorIs(t, err, ErrCourseNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Assignment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateAssignment(t *testing.T) {
	db := newTestDB(t)
	coordinator := NewCoordinator(db)

	course := seedCourse(t, db, "Algebra", 10)

	assignment, err := coordinator.CreateAssignment(course.ID, "HW1", mustDate(t, "2024-05-01"), false)
	require.NoError(t, err)

	assert.NotZero(t, assignment.ID)
	assert.Equal(t, course.ID, assignment.CourseID)
	assert.False(t, assignment.IsCompleted)
}

func TestCreateAssignmentValidation(t *testing.T) {
	db := newTestDB(t)
	coordinator := NewCoordinator(db)

	course := seedCourse(t, db, "Algebra", 10)
	dueDate := mustDate(t, "2024-05-01")

	cases := []struct {
		name     string
		courseID uint
		title    string
		field    string
	}{
		{"missing name", course.ID, "", "name"},
		{"missing course", 0, "HW1", "course_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coordinator.CreateAssignment(tc.courseID, tc.title, dueDate, false)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}

	var vErr *ValidationError
	_, err := coordinator.CreateAssignment(course.ID, "HW1", mustDate(t, "0001-01-01"), false)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "due_date", vErr.Field)
}
