package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUserByEmail(t *testing.T) {
	setupTestDB(t)

	user, err := FindUserByEmail("john@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
	assert.Equal(t, "user", user.Role)

	admin, err := FindUserByEmail("admin@eduflow.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)

	_, err = FindUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUser(t *testing.T) {
	setupTestDB(t)

	user, err := CreateUser("Jane Roe", "jane@example.com", "hash")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "user", user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := FindUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", found.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	users, err := loadUsers()
	require.NoError(t, err)
	before := len(users)

	_, err = CreateUser("Imposter", "john@example.com", "")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// No duplicate record was written
	users, err = loadUsers()
	require.NoError(t, err)
	assert.Len(t, users, before)
}

func TestSessionLifecycle(t *testing.T) {
	setupTestDB(t)

	_, found, err := CurrentUser()
	require.NoError(t, err)
	assert.False(t, found)

	user, err := FindUserByEmail("john@example.com")
	require.NoError(t, err)
	require.NoError(t, SetSession(user))

	current, found, err := CurrentUser()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "u2", current.ID)

	require.NoError(t, ClearSession())
	_, found, err = CurrentUser()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFailedLoginLeavesSessionUnchanged(t *testing.T) {
	setupTestDB(t)

	user, err := FindUserByEmail("john@example.com")
	require.NoError(t, err)
	require.NoError(t, SetSession(user))

	// The lookup a login would perform fails; the session is untouched
	_, err = FindUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	current, found, err := CurrentUser()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "u2", current.ID)
}
