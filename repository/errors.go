package repository

import "errors"

// Error taxonomy of the data access layer. Controllers map these to HTTP
// status codes; callers distinguish them with errors.Is.
var (
	// ErrNotFound signals a lookup miss by id, slug, or email.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken signals a signup with an already registered email.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrAlreadyEnrolled signals a duplicate (user, course) enrollment.
	ErrAlreadyEnrolled = errors.New("already enrolled")
)
