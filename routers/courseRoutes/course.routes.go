package courseRoutes

import (
	controllers "eduflow/controllers/course"
	"eduflow/middleware"
	validators "eduflow/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Catalog browsing and AI summaries are public
	userGroup.Get("/list", controllers.GetAllCourses)
	userGroup.Get("/:slug", validators.CourseSlug(), controllers.GetCourseDetails)
	userGroup.Get("/:slug/summary", validators.CourseSlug(), controllers.GetCourseSummary)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	// AI quiz for enrolled users
	userGroup.Get("/:slug/lesson/:lesson_id/quiz", middleware.JWTMiddleware, validators.LessonQuiz(), controllers.GenerateLessonQuiz)

	// User enrollments and progress
	enrollGroup := app.Group("/user")
	enrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)

	progressGroup := app.Group("/enrollment")
	progressGroup.Patch("/:id/lesson/:lesson_id", middleware.JWTMiddleware, validators.UpdateProgress(), controllers.UpdateLessonProgress)
}
