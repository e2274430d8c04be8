package controllers

import (
	"eduflow/middleware"
	"eduflow/models"
	"eduflow/repository"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// requireAdmin resolves the authenticated user and checks the admin role.
func requireAdmin(c *fiber.Ctx) (models.User, bool) {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return models.User{}, false
	}

	user, err := repository.FindUserByID(userID)
	if err != nil {
		return models.User{}, false
	}
	if user.Role != models.RoleAdmin {
		return models.User{}, false
	}
	return user, true
}

// AdminListCourses returns the full catalog for the admin console.
func AdminListCourses(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courses, err := repository.ListCourses(repository.CourseFilter{})
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// AdminCreateCourse creates a new course
func AdminCreateCourse(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	// Get validated request data
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title        string          `json:"title"`
		Slug         string          `json:"slug"`
		Description  string          `json:"description"`
		Category     string          `json:"category"`
		Difficulty   string          `json:"difficulty"`
		Price        float64         `json:"price"`
		ThumbnailURL string          `json:"thumbnailUrl"`
		Lessons      []models.Lesson `json:"lessons"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := repository.CreateCourse(repository.CourseInput{
		Title:        reqData.Title,
		Slug:         reqData.Slug,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Difficulty:   reqData.Difficulty,
		Price:        reqData.Price,
		ThumbnailURL: reqData.ThumbnailURL,
		Lessons:      reqData.Lessons,
	})
	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse merges the provided fields into an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(string)

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title        *string          `json:"title"`
		Slug         *string          `json:"slug"`
		Description  *string          `json:"description"`
		Category     *string          `json:"category"`
		Difficulty   *string          `json:"difficulty"`
		Price        *float64         `json:"price"`
		ThumbnailURL *string          `json:"thumbnailUrl"`
		Lessons      *[]models.Lesson `json:"lessons"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := repository.UpdateCourse(courseID, repository.CourseUpdate{
		Title:        reqData.Title,
		Slug:         reqData.Slug,
		Description:  reqData.Description,
		Category:     reqData.Category,
		Difficulty:   reqData.Difficulty,
		Price:        reqData.Price,
		ThumbnailURL: reqData.ThumbnailURL,
		Lessons:      reqData.Lessons,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course. Deleting an absent id succeeds.
func AdminDeleteCourse(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	courseID := c.Locals("courseID").(string)

	if err := repository.DeleteCourse(courseID); err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
