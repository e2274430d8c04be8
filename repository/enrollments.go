package repository

import (
	"eduflow/database"
	"eduflow/models"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

func loadEnrollments() ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if _, err := database.Get(database.KeyEnrollments, &enrollments); err != nil {
		return nil, fmt.Errorf("loading enrollments: %w", err)
	}
	return enrollments, nil
}

// Percentage computes the completion percentage of an enrollment against
// its course. Only lessons that still belong to the course count, so
// progress entries for removed lessons are ignored. A course with no
// lessons is 0 percent complete.
func Percentage(enrollment models.Enrollment, course models.Course) int {
	if len(course.Lessons) == 0 {
		return 0
	}
	completed := 0
	for _, lesson := range course.Lessons {
		if enrollment.Progress[lesson.ID] {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(course.Lessons))))
}

// ListEnrollmentsForUser returns every enrollment belonging to a user.
func ListEnrollmentsForUser(userID string) ([]models.Enrollment, error) {
	enrollments, err := loadEnrollments()
	if err != nil {
		return nil, err
	}
	result := make([]models.Enrollment, 0)
	for _, enrollment := range enrollments {
		if enrollment.UserID == userID {
			result = append(result, enrollment)
		}
	}
	return result, nil
}

// FindEnrollmentByID returns a single enrollment record.
func FindEnrollmentByID(id string) (models.Enrollment, error) {
	enrollments, err := loadEnrollments()
	if err != nil {
		return models.Enrollment{}, err
	}
	for _, enrollment := range enrollments {
		if enrollment.ID == id {
			return enrollment, nil
		}
	}
	return models.Enrollment{}, fmt.Errorf("enrollment %q: %w", id, ErrNotFound)
}

// FindEnrollment returns the enrollment for a (user, course) pair.
func FindEnrollment(userID, courseID string) (models.Enrollment, error) {
	enrollments, err := loadEnrollments()
	if err != nil {
		return models.Enrollment{}, err
	}
	for _, enrollment := range enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			return enrollment, nil
		}
	}
	return models.Enrollment{}, fmt.Errorf("enrollment for user %q in course %q: %w", userID, courseID, ErrNotFound)
}

// CreateEnrollment enrolls a user in a course. At most one enrollment may
// exist per (user, course) pair.
func CreateEnrollment(userID, courseID string) (models.Enrollment, error) {
	enrollments, err := loadEnrollments()
	if err != nil {
		return models.Enrollment{}, err
	}
	for _, enrollment := range enrollments {
		if enrollment.UserID == userID && enrollment.CourseID == courseID {
			return models.Enrollment{}, fmt.Errorf("user %q in course %q: %w", userID, courseID, ErrAlreadyEnrolled)
		}
	}

	enrollment := models.Enrollment{
		ID:         uuid.NewString(),
		UserID:     userID,
		CourseID:   courseID,
		Progress:   map[string]bool{},
		Percentage: 0,
		EnrolledAt: time.Now(),
	}
	enrollments = append(enrollments, enrollment)
	if err := database.Set(database.KeyEnrollments, enrollments); err != nil {
		return models.Enrollment{}, fmt.Errorf("saving enrollments: %w", err)
	}
	return enrollment, nil
}

// UpdateLessonProgress marks one lesson of an enrollment completed or not
// and recomputes the cached percentage against a fresh course lookup.
// When the course no longer exists the last known percentage is kept.
func UpdateLessonProgress(enrollmentID, lessonID string, completed bool) (models.Enrollment, error) {
	enrollments, err := loadEnrollments()
	if err != nil {
		return models.Enrollment{}, err
	}

	index := -1
	for i, enrollment := range enrollments {
		if enrollment.ID == enrollmentID {
			index = i
			break
		}
	}
	if index == -1 {
		return models.Enrollment{}, fmt.Errorf("enrollment %q: %w", enrollmentID, ErrNotFound)
	}

	enrollment := enrollments[index]
	if enrollment.Progress == nil {
		enrollment.Progress = map[string]bool{}
	}
	enrollment.Progress[lessonID] = completed

	course, err := FindCourseByID(enrollment.CourseID)
	if err == nil {
		enrollment.Percentage = Percentage(enrollment, course)
	} else if !errors.Is(err, ErrNotFound) {
		return models.Enrollment{}, err
	}

	enrollments[index] = enrollment
	if err := database.Set(database.KeyEnrollments, enrollments); err != nil {
		return models.Enrollment{}, fmt.Errorf("saving enrollments: %w", err)
	}
	return enrollment, nil
}

// RecomputeCourseProgress refreshes the cached percentage of every
// enrollment in the given course. Called after a course's lesson list
// changes.
func RecomputeCourseProgress(course models.Course) error {
	enrollments, err := loadEnrollments()
	if err != nil {
		return err
	}

	changed := false
	for i, enrollment := range enrollments {
		if enrollment.CourseID != course.ID {
			continue
		}
		if pct := Percentage(enrollment, course); pct != enrollment.Percentage {
			enrollments[i].Percentage = pct
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := database.Set(database.KeyEnrollments, enrollments); err != nil {
		return fmt.Errorf("saving enrollments: %w", err)
	}
	return nil
}

// RecomputeAllProgress reconciles cached percentages across the whole
// store. Used by the progress scheduler.
func RecomputeAllProgress() (int, error) {
	courses, err := loadCourses()
	if err != nil {
		return 0, err
	}
	byID := make(map[string]models.Course, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}

	enrollments, err := loadEnrollments()
	if err != nil {
		return 0, err
	}

	updated := 0
	for i, enrollment := range enrollments {
		course, ok := byID[enrollment.CourseID]
		if !ok {
			continue
		}
		if pct := Percentage(enrollment, course); pct != enrollment.Percentage {
			enrollments[i].Percentage = pct
			updated++
		}
	}
	if updated == 0 {
		return 0, nil
	}
	if err := database.Set(database.KeyEnrollments, enrollments); err != nil {
		return 0, fmt.Errorf("saving enrollments: %w", err)
	}
	return updated, nil
}
