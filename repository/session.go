package repository

import (
	"eduflow/database"
	"eduflow/models"
	"fmt"
)

// SetSession points the store's session key at the given user, marking
// them as the currently logged-in account for this client.
func SetSession(user models.User) error {
	if err := database.Set(database.KeySession, user); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// ClearSession removes the session pointer, returning to anonymous.
func ClearSession() error {
	if err := database.Delete(database.KeySession); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// CurrentUser returns the session pointer's referent. The boolean is
// false when no user is logged in.
func CurrentUser() (models.User, bool, error) {
	var user models.User
	found, err := database.Get(database.KeySession, &user)
	if err != nil {
		return models.User{}, false, fmt.Errorf("loading session: %w", err)
	}
	return user, found, nil
}
