package authController

import (
	"eduflow/config"
	"eduflow/middleware"
	"eduflow/models"
	"eduflow/repository"
	"eduflow/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Signup registers a new account, points the session at it, and returns
// the user with a fresh JWT.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Hash the password if one was supplied. Login never verifies it,
	// but the hash is kept so nothing plaintext ever hits the store.
	passwordHash := ""
	if reqData.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
		passwordHash = string(hashed)
	}

	newUser, err := repository.CreateUser(reqData.Name, reqData.Email, passwordHash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		log.Printf("Error saving user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	if err := repository.SetSession(newUser); err != nil {
		log.Printf("Error saving session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Name, newUser.Role, newUser.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to Signup user!", nil)
	}

	// Best-effort welcome email
	go func(user models.User) {
		if err := utils.SendWelcomeEmail(user.Name, user.Email); err != nil {
			log.Printf("Welcome email not sent to %s: %v", user.Email, err)
		}
	}(newUser)

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user":  newUser,
		"token": token,
	})
}

// Login looks the account up by email and makes it the active session.
// Credentials beyond the email are accepted but not verified.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := repository.FindUserByEmail(reqData.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("Error looking up user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	if err := repository.SetSession(user); err != nil {
		log.Printf("Error saving session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to login!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Logout clears the active session.
func Logout(c *fiber.Ctx) error {
	if err := repository.ClearSession(); err != nil {
		log.Printf("Error clearing session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to logout!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

// Me returns the currently logged-in user, if any.
func Me(c *fiber.Ctx) error {
	user, found, err := repository.CurrentUser()
	if err != nil {
		log.Printf("Error loading session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load session!", nil)
	}
	if !found {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Not logged in!", nil)
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session fetched successfully!", user)
}
