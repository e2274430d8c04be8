package models

import "time"

// Course difficulty levels
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Lesson is embedded in its course; Order defines the display sequence.
type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	VideoURL string `json:"videoUrl,omitempty"`
	Order    int    `json:"order"`
}

// Course is a catalog record stored in the "courses" collection
type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Difficulty   string    `json:"difficulty"` // Beginner, Intermediate, Advanced
	Price        float64   `json:"price"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Lessons      []Lesson  `json:"lessons"`
	CreatedAt    time.Time `json:"createdAt"`
}
