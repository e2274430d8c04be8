package repository

import (
	"eduflow/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCoursesFilters(t *testing.T) {
	setupTestDB(t)

	all, err := ListCourses(CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 8)

	medical, err := ListCourses(CourseFilter{Category: "Medical"})
	require.NoError(t, err)
	assert.Len(t, medical, 3)
	for _, course := range medical {
		assert.Equal(t, "Medical", course.Category)
	}

	// Search matches title or description, case-insensitively
	react, err := ListCourses(CourseFilter{Search: "REACT"})
	require.NoError(t, err)
	require.Len(t, react, 1)
	assert.Equal(t, "c1", react[0].ID)

	none, err := ListCourses(CourseFilter{Category: "Design", Search: "react"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFindCourse(t *testing.T) {
	setupTestDB(t)

	bySlug, err := FindCourseBySlug("ui-ux-design-essentials")
	require.NoError(t, err)
	assert.Equal(t, "c2", bySlug.ID)

	byID, err := FindCourseByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Modern Web Development with React", byID.Title)
	assert.Len(t, byID.Lessons, 3)

	_, err = FindCourseBySlug("no-such-course")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = FindCourseByID("c999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCoursePrepends(t *testing.T) {
	setupTestDB(t)

	created, err := CreateCourse(CourseInput{
		Title:       "Go In Action",
		Description: "Idiomatic Go from first principles.",
		Category:    "Development",
		Difficulty:  models.DifficultyIntermediate,
		Price:       89.99,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "go-in-action", created.Slug)
	assert.NotNil(t, created.Lessons)
	assert.False(t, created.CreatedAt.IsZero())

	all, err := ListCourses(CourseFilter{})
	require.NoError(t, err)
	require.Len(t, all, 9)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestUpdateCourseRoundTrip(t *testing.T) {
	setupTestDB(t)

	before, err := FindCourseByID("c1")
	require.NoError(t, err)

	title := "X"
	updated, err := UpdateCourse("c1", CourseUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "X", updated.Title)

	after, err := FindCourseByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "X", after.Title)

	// Everything else is untouched
	assert.Equal(t, before.Slug, after.Slug)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.Category, after.Category)
	assert.Equal(t, before.Difficulty, after.Difficulty)
	assert.Equal(t, before.Price, after.Price)
	assert.Equal(t, before.Lessons, after.Lessons)
}

func TestUpdateCourseNotFound(t *testing.T) {
	setupTestDB(t)

	title := "X"
	_, err := UpdateCourse("c999", CourseUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCourseIdempotent(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, DeleteCourse("c2"))

	_, err := FindCourseByID("c2")
	assert.ErrorIs(t, err, ErrNotFound)

	// Second delete is a no-op, not an error
	require.NoError(t, DeleteCourse("c2"))

	all, err := ListCourses(CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "go-in-action", Slugify("Go In Action"))
	assert.Equal(t, "ui-ux-design-essentials", Slugify("UI/UX Design  Essentials!"))
	assert.Equal(t, "bioethics-professionalism", Slugify("Bioethics & Professionalism"))
}
