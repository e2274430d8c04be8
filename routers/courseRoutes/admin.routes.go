package courseRoutes

import (
	controllers "eduflow/controllers/course"
	"eduflow/middleware"
	validators "eduflow/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin console's catalog CRUD routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/courses", middleware.JWTMiddleware, controllers.AdminListCourses)
	adminGroup.Post("/course", middleware.JWTMiddleware, validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/course/:id", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/course/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.AdminDeleteCourse)
}
