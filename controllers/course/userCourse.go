package controllers

import (
	"eduflow/middleware"
	"eduflow/repository"
	"eduflow/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the catalog, optionally filtered by exact category
// and a case-insensitive search over title and description.
func GetAllCourses(c *fiber.Ctx) error {
	filter := repository.CourseFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	courses, err := repository.ListCourses(filter)
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   len(courses),
	})
}

// GetCourseDetails fetches a single course by slug.
func GetCourseDetails(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	course, err := repository.FindCourseBySlug(slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", course)
}

// GetCourseSummary returns an AI-generated summary for a course. The AI
// call degrades to a fixed fallback string, so this never fails once the
// course resolves.
func GetCourseSummary(c *fiber.Ctx) error {
	slug := c.Locals("courseSlug").(string)

	course, err := repository.FindCourseBySlug(slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	summary := utils.GetCourseSummary(course.Title, course.Description)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary generated successfully!", fiber.Map{
		"summary": summary,
	})
}
