package controllers

import (
	"eduflow/middleware"
	"eduflow/repository"
	"eduflow/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the authenticated user in a course.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if _, err := repository.FindUserByID(userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(string)

	// Check if course exists
	if _, err := repository.FindCourseByID(courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	enrollment, err := repository.CreateEnrollment(userID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the authenticated user's enrollments.
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if _, err := repository.FindUserByID(userID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	enrollments, err := repository.ListEnrollmentsForUser(userID)
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
		"total":       len(enrollments),
	})
}

// UpdateLessonProgress marks one lesson complete or incomplete on the
// authenticated user's enrollment and returns the record with its
// recomputed percentage.
func UpdateLessonProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(string)
	lessonID := c.Locals("lessonID").(string)
	reqData, ok := c.Locals("validatedProgress").(*struct {
		Completed *bool `json:"completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Only the owner may mutate an enrollment.
	enrollment, err := repository.FindEnrollmentByID(enrollmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		log.Printf("Error fetching enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}
	if enrollment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Enrollment belongs to another user!", nil)
	}

	updated, err := repository.UpdateLessonProgress(enrollmentID, lessonID, *reqData.Completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		}
		log.Printf("Error updating progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", updated)
}

// GenerateLessonQuiz produces an AI quiz for a lesson of a course the
// authenticated user is enrolled in. A nil quiz means generation is
// unavailable; the endpoint reports that rather than failing.
func GenerateLessonQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	slug := c.Locals("courseSlug").(string)
	lessonID := c.Locals("lessonID").(string)

	course, err := repository.FindCourseBySlug(slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate quiz!", nil)
	}

	// Quizzes are for enrolled students only.
	if _, err := repository.FindEnrollment(userID, course.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
		}
		log.Printf("Error fetching enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate quiz!", nil)
	}

	var lessonTitle, lessonContent string
	found := false
	for _, lesson := range course.Lessons {
		if lesson.ID == lessonID {
			lessonTitle = lesson.Title
			lessonContent = lesson.Content
			found = true
			break
		}
	}
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	quiz := utils.GenerateLessonQuiz(lessonTitle, lessonContent)
	if quiz == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz generation unavailable.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz generated successfully!", quiz)
}
