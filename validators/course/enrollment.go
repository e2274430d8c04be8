package courseValidator

import (
	"eduflow/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates the :id path parameter of an enroll request.
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// UpdateProgress validates a lesson progress mutation: enrollment and
// lesson ids from the path, and a required "completed" boolean body field.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID := strings.TrimSpace(c.Params("id"))
		if enrollmentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Enrollment ID is required!", nil)
		}

		lessonID := strings.TrimSpace(c.Params("lesson_id"))
		if lessonID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}

		reqData := new(struct {
			Completed *bool `json:"completed"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Completed == nil {
			errors["completed"] = "Completed flag is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("lessonID", lessonID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// LessonQuiz validates the :slug and :lesson_id parameters of a quiz
// generation request.
func LessonQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
		}

		lessonID := strings.TrimSpace(c.Params("lesson_id"))
		if lessonID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}

		c.Locals("courseSlug", slug)
		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}
