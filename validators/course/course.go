package courseValidator

import (
	"eduflow/middleware"
	"eduflow/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func isValidDifficulty(difficulty string) bool {
	switch difficulty {
	case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
		return true
	}
	return false
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string          `json:"title"`
			Slug         string          `json:"slug"`
			Description  string          `json:"description"`
			Category     string          `json:"category"`
			Difficulty   string          `json:"difficulty"`
			Price        float64         `json:"price"`
			ThumbnailURL string          `json:"thumbnailUrl"`
			Lessons      []models.Lesson `json:"lessons"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		} else if len(strings.TrimSpace(reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		// Validate Category
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		// Validate Difficulty
		if !isValidDifficulty(reqData.Difficulty) {
			errors["difficulty"] = "Difficulty must be Beginner, Intermediate or Advanced!"
		}

		// Validate Price
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware. All fields are optional; absent
// fields leave the stored value unchanged.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        *string          `json:"title"`
			Slug         *string          `json:"slug"`
			Description  *string          `json:"description"`
			Category     *string          `json:"category"`
			Difficulty   *string          `json:"difficulty"`
			Price        *float64         `json:"price"`
			ThumbnailURL *string          `json:"thumbnailUrl"`
			Lessons      *[]models.Lesson `json:"lessons"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && len(strings.TrimSpace(*reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Difficulty != nil && !isValidDifficulty(*reqData.Difficulty) {
			errors["difficulty"] = "Difficulty must be Beginner, Intermediate or Advanced!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CourseSlug validates the :slug path parameter.
func CourseSlug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
		}

		c.Locals("courseSlug", slug)
		return c.Next()
	}
}
