package authRoutes

import (
	authControllers "eduflow/controllers/auth"
	authValidators "eduflow/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", authControllers.Logout)
	authGroup.Get("/me", authControllers.Me)
}
