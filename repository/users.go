package repository

import (
	"eduflow/database"
	"eduflow/models"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func loadUsers() ([]models.User, error) {
	var users []models.User
	if _, err := database.Get(database.KeyUsers, &users); err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	return users, nil
}

// FindUserByEmail returns the user with an exact email match.
func FindUserByEmail(email string) (models.User, error) {
	users, err := loadUsers()
	if err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, fmt.Errorf("user %q: %w", email, ErrNotFound)
}

// FindUserByID returns the user with the given id.
func FindUserByID(id string) (models.User, error) {
	users, err := loadUsers()
	if err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, fmt.Errorf("user %q: %w", id, ErrNotFound)
}

// CreateUser registers a new account with role "user". The email must not
// be registered already; passwordHash may be empty.
func CreateUser(name, email, passwordHash string) (models.User, error) {
	users, err := loadUsers()
	if err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.Email == email {
			return models.User{}, fmt.Errorf("user %q: %w", email, ErrEmailTaken)
		}
	}

	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      models.RoleUser,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	users = append(users, user)
	if err := database.Set(database.KeyUsers, users); err != nil {
		return models.User{}, fmt.Errorf("saving users: %w", err)
	}
	return user, nil
}
