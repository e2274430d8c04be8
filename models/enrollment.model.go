package models

import "time"

// Enrollment links one user to one course with per-lesson progress.
// At most one record exists per (UserID, CourseID) pair.
// Percentage is a cached value; it is recomputed on every progress
// mutation and reconciled by the progress scheduler.
type Enrollment struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	CourseID   string          `json:"courseId"`
	Progress   map[string]bool `json:"progress"` // lessonId -> completed
	Percentage int             `json:"percentage"`
	EnrolledAt time.Time       `json:"enrolledAt"`
}
