package repository

import (
	"eduflow/database"
	"eduflow/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentProgressScenario(t *testing.T) {
	setupTestDB(t)

	// c1 has 3 lessons
	enrollment, err := CreateEnrollment("u2", "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, enrollment.Percentage)
	assert.Empty(t, enrollment.Progress)
	assert.False(t, enrollment.EnrolledAt.IsZero())

	enrollment, err = UpdateLessonProgress(enrollment.ID, "l1", true)
	require.NoError(t, err)
	assert.Equal(t, 33, enrollment.Percentage)

	enrollment, err = UpdateLessonProgress(enrollment.ID, "l2", true)
	require.NoError(t, err)
	assert.Equal(t, 67, enrollment.Percentage)

	enrollment, err = UpdateLessonProgress(enrollment.ID, "l1", false)
	require.NoError(t, err)
	assert.Equal(t, 33, enrollment.Percentage)

	// The mutation is persisted, not just returned
	stored, err := FindEnrollmentByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, stored.Percentage)
	assert.False(t, stored.Progress["l1"])
	assert.True(t, stored.Progress["l2"])
}

func TestDuplicateEnrollmentConflicts(t *testing.T) {
	setupTestDB(t)

	_, err := CreateEnrollment("u2", "c1")
	require.NoError(t, err)

	_, err = CreateEnrollment("u2", "c1")
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// Exactly one record exists afterward
	enrollments, err := ListEnrollmentsForUser("u2")
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestUpdateProgressUnknownEnrollment(t *testing.T) {
	setupTestDB(t)

	_, err := UpdateLessonProgress("no-such-enrollment", "l1", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEnrollmentsForUser(t *testing.T) {
	setupTestDB(t)

	_, err := CreateEnrollment("u2", "c1")
	require.NoError(t, err)
	_, err = CreateEnrollment("u2", "c2")
	require.NoError(t, err)
	_, err = CreateEnrollment("u1", "c1")
	require.NoError(t, err)

	mine, err := ListEnrollmentsForUser("u2")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := ListEnrollmentsForUser("u1")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)

	nobody, err := ListEnrollmentsForUser("u999")
	require.NoError(t, err)
	assert.Empty(t, nobody)
}

func TestPercentage(t *testing.T) {
	course := models.Course{Lessons: []models.Lesson{
		{ID: "a", Order: 1}, {ID: "b", Order: 2}, {ID: "c", Order: 3},
	}}

	assert.Equal(t, 0, Percentage(models.Enrollment{}, course))
	assert.Equal(t, 33, Percentage(models.Enrollment{Progress: map[string]bool{"a": true}}, course))
	assert.Equal(t, 67, Percentage(models.Enrollment{Progress: map[string]bool{"a": true, "b": true}}, course))
	assert.Equal(t, 100, Percentage(models.Enrollment{Progress: map[string]bool{"a": true, "b": true, "c": true}}, course))

	// A course with no lessons is 0 percent, never a division fault
	assert.Equal(t, 0, Percentage(models.Enrollment{Progress: map[string]bool{"a": true}}, models.Course{}))

	// Progress entries for lessons no longer in the course do not count
	stale := models.Enrollment{Progress: map[string]bool{"a": true, "gone": true}}
	assert.Equal(t, 33, Percentage(stale, course))
}

func TestUpdateCourseRecomputesEnrollments(t *testing.T) {
	setupTestDB(t)

	// c2 has 2 lessons: l4, l5
	enrollment, err := CreateEnrollment("u2", "c2")
	require.NoError(t, err)

	enrollment, err = UpdateLessonProgress(enrollment.ID, "l4", true)
	require.NoError(t, err)
	assert.Equal(t, 50, enrollment.Percentage)

	// Shrinking the lesson list to just l4 makes the enrollment complete
	lessons := []models.Lesson{{ID: "l4", Title: "Design Thinking Process", Order: 1}}
	_, err = UpdateCourse("c2", CourseUpdate{Lessons: &lessons})
	require.NoError(t, err)

	stored, err := FindEnrollmentByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Percentage)
}

func TestRecomputeAllProgress(t *testing.T) {
	setupTestDB(t)

	enrollment, err := CreateEnrollment("u2", "c1")
	require.NoError(t, err)
	_, err = UpdateLessonProgress(enrollment.ID, "l1", true)
	require.NoError(t, err)

	// Nothing stale yet
	updated, err := RecomputeAllProgress()
	require.NoError(t, err)
	assert.Equal(t, 0, updated)

	// Desynchronize the cached value behind the engine's back
	enrollments, err := ListEnrollmentsForUser("u2")
	require.NoError(t, err)
	enrollments[0].Percentage = 99
	require.NoError(t, database.Set(database.KeyEnrollments, enrollments))

	updated, err = RecomputeAllProgress()
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	stored, err := FindEnrollmentByID(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, stored.Percentage)
}
