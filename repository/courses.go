package repository

import (
	"eduflow/database"
	"eduflow/models"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CourseFilter narrows ListCourses. Category is an exact match; Search is
// a case-insensitive substring match on title or description.
type CourseFilter struct {
	Category string
	Search   string
}

// CourseInput carries the fields an admin supplies when creating a course.
type CourseInput struct {
	Title        string
	Slug         string
	Description  string
	Category     string
	Difficulty   string
	Price        float64
	ThumbnailURL string
	Lessons      []models.Lesson
}

// CourseUpdate carries a partial update; nil fields are left unchanged.
type CourseUpdate struct {
	Title        *string
	Slug         *string
	Description  *string
	Category     *string
	Difficulty   *string
	Price        *float64
	ThumbnailURL *string
	Lessons      *[]models.Lesson
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-safe slug.
func Slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func loadCourses() ([]models.Course, error) {
	var courses []models.Course
	if _, err := database.Get(database.KeyCourses, &courses); err != nil {
		return nil, fmt.Errorf("loading courses: %w", err)
	}
	return courses, nil
}

// ListCourses returns the catalog in storage order, optionally filtered.
func ListCourses(filter CourseFilter) ([]models.Course, error) {
	courses, err := loadCourses()
	if err != nil {
		return nil, err
	}

	result := make([]models.Course, 0, len(courses))
	search := strings.ToLower(filter.Search)
	for _, course := range courses {
		if filter.Category != "" && course.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(course.Title), search) &&
			!strings.Contains(strings.ToLower(course.Description), search) {
			continue
		}
		result = append(result, course)
	}
	return result, nil
}

// FindCourseBySlug returns the course with the given slug.
func FindCourseBySlug(slug string) (models.Course, error) {
	courses, err := loadCourses()
	if err != nil {
		return models.Course{}, err
	}
	for _, course := range courses {
		if course.Slug == slug {
			return course, nil
		}
	}
	return models.Course{}, fmt.Errorf("course %q: %w", slug, ErrNotFound)
}

// FindCourseByID returns the course with the given id.
func FindCourseByID(id string) (models.Course, error) {
	courses, err := loadCourses()
	if err != nil {
		return models.Course{}, err
	}
	for _, course := range courses {
		if course.ID == id {
			return course, nil
		}
	}
	return models.Course{}, fmt.Errorf("course %q: %w", id, ErrNotFound)
}

// CreateCourse assigns a fresh id and creation timestamp and prepends the
// new course to the catalog.
func CreateCourse(input CourseInput) (models.Course, error) {
	courses, err := loadCourses()
	if err != nil {
		return models.Course{}, err
	}

	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}

	course := models.Course{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Slug:         slug,
		Description:  input.Description,
		Category:     input.Category,
		Difficulty:   input.Difficulty,
		Price:        input.Price,
		ThumbnailURL: input.ThumbnailURL,
		Lessons:      input.Lessons,
		CreatedAt:    time.Now(),
	}
	if course.Lessons == nil {
		course.Lessons = []models.Lesson{}
	}

	courses = append([]models.Course{course}, courses...)
	if err := database.Set(database.KeyCourses, courses); err != nil {
		return models.Course{}, fmt.Errorf("saving courses: %w", err)
	}
	return course, nil
}

// UpdateCourse merges the non-nil fields of upd into the stored course.
// When the lesson list changes, cached enrollment percentages for the
// course are recomputed eagerly.
func UpdateCourse(id string, upd CourseUpdate) (models.Course, error) {
	courses, err := loadCourses()
	if err != nil {
		return models.Course{}, err
	}

	index := -1
	for i, course := range courses {
		if course.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Course{}, fmt.Errorf("course %q: %w", id, ErrNotFound)
	}

	course := courses[index]
	lessonsChanged := false
	if upd.Title != nil {
		course.Title = *upd.Title
	}
	if upd.Slug != nil {
		course.Slug = *upd.Slug
	}
	if upd.Description != nil {
		course.Description = *upd.Description
	}
	if upd.Category != nil {
		course.Category = *upd.Category
	}
	if upd.Difficulty != nil {
		course.Difficulty = *upd.Difficulty
	}
	if upd.Price != nil {
		course.Price = *upd.Price
	}
	if upd.ThumbnailURL != nil {
		course.ThumbnailURL = *upd.ThumbnailURL
	}
	if upd.Lessons != nil {
		course.Lessons = *upd.Lessons
		lessonsChanged = true
	}

	courses[index] = course
	if err := database.Set(database.KeyCourses, courses); err != nil {
		return models.Course{}, fmt.Errorf("saving courses: %w", err)
	}

	if lessonsChanged {
		if err := RecomputeCourseProgress(course); err != nil {
			return models.Course{}, err
		}
	}
	return course, nil
}

// DeleteCourse removes a course by id. Deleting an absent id is a no-op.
func DeleteCourse(id string) error {
	courses, err := loadCourses()
	if err != nil {
		return err
	}

	remaining := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if course.ID != id {
			remaining = append(remaining, course)
		}
	}
	if len(remaining) == len(courses) {
		return nil
	}
	if err := database.Set(database.KeyCourses, remaining); err != nil {
		return fmt.Errorf("saving courses: %w", err)
	}
	return nil
}
