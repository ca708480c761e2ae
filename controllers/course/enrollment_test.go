package controllers

import (
	"testing"

	courseModels "techstep/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollUser(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "go-basics", courseModels.LevelBeginner, courseModels.StatusPublished)

	enrollment, err := EnrollUser(db, 7, course.ID)
	require.NoError(t, err)
	assert.Equal(t, courseModels.EnrollmentStatusActive, enrollment.Status)

	var refreshed courseModels.Course
	require.NoError(t, db.Where("id = ?", course.ID).First(&refreshed).Error)
	assert.Equal(t, 1, refreshed.EnrollmentCount)
}

func TestEnrollUserDuplicate(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "go-basics", courseModels.LevelBeginner, courseModels.StatusPublished)

	_, err := EnrollUser(db, 7, course.ID)
	require.NoError(t, err)

	_, err = EnrollUser(db, 7, course.ID)
	require.ErrorIs(t, err, ErrAlreadyEnrolled)

	// Counter did not double-bump
	var refreshed courseModels.Course
	require.NoError(t, db.Where("id = ?", course.ID).First(&refreshed).Error)
	assert.Equal(t, 1, refreshed.EnrollmentCount)
}

func TestEnrollUserUnpublishedCourse(t *testing.T) {
	db := setupTestDB(t)
	course := seedCourse(t, db, "go-draft", courseModels.LevelBeginner, courseModels.StatusDraft)

	_, err := EnrollUser(db, 7, course.ID)
	require.ErrorIs(t, err, ErrCourseUnavailable)
}

func TestEnrollUserMissingCourse(t *testing.T) {
	db := setupTestDB(t)

	_, err := EnrollUser(db, 7, 42)
	require.ErrorIs(t, err, ErrCourseMissing)
}
