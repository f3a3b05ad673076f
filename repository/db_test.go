package repository

import (
	"fmt"
	"testing"
	"time"

	"coursetrack/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database scoped to one test. The
// shared cache keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.Assignment{}))

	return db
}

func seedCourse(t *testing.T, db *gorm.DB, name string, studyHours int64) models.Course {
	t.Helper()

	course := models.Course{Name: name, StudyHours: studyHours}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func seedAssignment(t *testing.T, db *gorm.DB, courseID uint, name, dueDate string) models.Assignment {
	t.Helper()

	assignment := models.Assignment{CourseID: courseID, Name: name, DueDate: mustDate(t, dueDate)}
	require.NoError(t, db.Create(&assignment).Error)
	return assignment
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}
