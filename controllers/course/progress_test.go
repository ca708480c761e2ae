package controllers

import (
	"testing"

	courseModels "techstep/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedEnrollment(t *testing.T, db *gorm.DB) courseModels.Enrollment {
	t.Helper()

	course := seedCourse(t, db, "go-basics", courseModels.LevelBeginner, courseModels.StatusPublished)
	enrollment, err := EnrollUser(db, 7, course.ID)
	require.NoError(t, err)
	return *enrollment
}

func TestRecordProgressPartial(t *testing.T) {
	db := setupTestDB(t)
	enrollment := seedEnrollment(t, db)

	// The denominator is the lessons visited so far
	_, updated, err := RecordProgress(db, enrollment.ID, ProgressUpdate{LessonID: "lesson-1", Completed: false})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.ProgressPercentage)

	_, updated, err = RecordProgress(db, enrollment.ID, ProgressUpdate{LessonID: "lesson-2", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.ProgressPercentage)
	assert.Equal(t, courseModels.EnrollmentStatusActive, updated.Status)
	assert.Nil(t, updated.CompletionDate)
}

func TestRecordProgressIdempotent(t *testing.T) {
	db := setupTestDB(t)
	enrollment := seedEnrollment(t, db)

	_, _, err := RecordProgress(db, enrollment.ID, ProgressUpdate{LessonID: "lesson-1", Completed: false})
	require.NoError(t, err)
	_, _, err = RecordProgress(db, enrollment.ID, ProgressUpdate{LessonID: "lesson-2", Completed: true})
	require.NoError(t, err)

	// Re-sending the same lesson changes nothing
	_, updated, err := RecordProgress(db, enrollment.ID, ProgressUpdate{LessonID: "lesson-2", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.ProgressPercentage)

	var rows int64
	db.Model(&courseModels.Progress{}).Where("enrollment_id = ?", enrollment.ID).Count(&rows)
	assert.EqualValues(t, 2, rows)
}

func TestRecordProgressCompletesEnrollment(t *testing.T) {
	db := setupTestDB(t)
	enrollment := seedEnrollment(t, db)

	_, _, err := RecordProgress(db, enrollment.ID, ProgressUpdate{LessonID: "lesson-1", Completed: false})
	require.NoError(t, err)
	_, updated, err := RecordProgress(db, enrollment.ID, ProgressUpdate{LessonID: "lesson-2", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentStatusActive, updated.Status)

	_, updated, err = RecordProgress(db, enrollment.ID, ProgressUpdate{LessonID: "lesson-1", Completed: true})
	require.NoError(t, err)

	assert.Equal(t, 100.0, updated.ProgressPercentage)
	assert.Equal(t, courseModels.EnrollmentStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletionDate)

	// The transition sticks even if a lesson is later marked incomplete
	_, updated, err = RecordProgress(db, enrollment.ID, ProgressUpdate{LessonID: "lesson-2", Completed: false})
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentStatusCompleted, updated.Status)
}

func TestRecordProgressMissingEnrollment(t *testing.T) {
	db := setupTestDB(t)

	_, _, err := RecordProgress(db, 42, ProgressUpdate{LessonID: "lesson-1"})
	require.ErrorIs(t, err, ErrEnrollmentMissing)
}

func TestRecordProgressStoresLessonDetails(t *testing.T) {
	db := setupTestDB(t)
	enrollment := seedEnrollment(t, db)

	score := 87.5
	progress, _, err := RecordProgress(db, enrollment.ID, ProgressUpdate{
		LessonID:         "lesson-1",
		LessonTitle:      "Introduction",
		Completed:        true,
		TimeSpentMinutes: 25,
		QuizScore:        &score,
		Notes:            "rewatch the last section",
	})
	require.NoError(t, err)
	assert.Equal(t, "Introduction", progress.LessonTitle)
	assert.Equal(t, 25, progress.TimeSpentMinutes)
	require.NotNil(t, progress.QuizScore)
	assert.Equal(t, 87.5, *progress.QuizScore)
	assert.NotNil(t, progress.CompletionDate)
}
