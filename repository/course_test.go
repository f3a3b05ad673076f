package repository

import (
	"testing"

	"coursetrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWithAssignmentsNestsChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepo(db)

	algebra := seedCourse(t, db, "Algebra", 10)
	history := seedCourse(t, db, "History", 4)
	seedAssignment(t, db, algebra.ID, "HW1", "2024-01-10")
	seedAssignment(t, db, algebra.ID, "HW2", "2024-02-10")

	courses, err := repo.ListWithAssignments()
	require.NoError(t, err)
	require.Len(t, courses, 2)

	byID := make(map[uint]models.Course, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}

	assert.Len(t, byID[algebra.ID].Assignments, 2)

	// A course without assignments carries an empty list, not null.
	require.NotNil(t, byID[history.ID].Assignments)
	assert.Empty(t, byID[history.ID].Assignments)
}

func TestCreateCourse(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepo(db)

	course, err := repo.Create("Algo 101", "http://x", 5)
	require.NoError(t, err)

	assert.NotZero(t, course.ID)
	assert.Equal(t, "Algo 101", course.Name)
	assert.Equal(t, "http://x", course.CourseLink)
	assert.Equal(t, int64(5), course.StudyHours)
}

func TestCreateCourseNegativeStudyHours(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepo(db)

	_, err := repo.Create("Bad", "", -1)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "study_hours", vErr.Field)

	var count int64
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateCourseReplacesAllFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepo(db)

	course := seedCourse(t, db, "Old", 2)

	updated, err := repo.Update(course.ID, "New", "http://new", 8)
	require.NoError(t, err)

	assert.Equal(t, course.ID, updated.ID)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "http://new", updated.CourseLink)
	assert.Equal(t, int64(8), updated.StudyHours)
}

func TestUpdateCourseNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepo(db)

	_, err := repo.Update(999, "New", "", 1)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestUpdateCourseNegativeStudyHours(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepo(db)

	course := seedCourse(t, db, "Keep", 5)

	_, err := repo.Update(course.ID, "Changed", "", -3)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// Nothing was written.
	var stored models.Course
	require.NoError(t, db.First(&stored, course.ID).Error)
	assert.Equal(t, "Keep", stored.Name)
	assert.Equal(t, int64(5), stored.StudyHours)
}

func TestCourseExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepo(db)

	course := seedCourse(t, db, "Here", 1)

	exists, err := repo.Exists(course.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(999)
	require.NoError(t, err)
	assert.False(t, exists)
}
