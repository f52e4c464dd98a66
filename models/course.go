package models

import "time"

// Difficulty levels accepted for a course.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Course struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	ImageURL         string    `json:"imageUrl"`
	Category         string    `json:"category"`
	Tags             []string  `gorm:"serializer:json" json:"tags"`
	Difficulty       string    `json:"difficulty"` // beginner, intermediate, advanced
	EstimatedTime    string    `json:"estimatedTime"`
	PassingThreshold int       `json:"passingThreshold"`
	Rating           *float64  `json:"rating,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateCourseInput is the subset of Course a client may supply at creation
// time. Timestamps and rating are assigned server-side.
type CreateCourseInput struct {
	ID               string   `json:"id"`
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	ImageURL         string   `json:"imageUrl"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	Difficulty       string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	EstimatedTime    string   `json:"estimatedTime"`
	PassingThreshold int      `json:"passingThreshold" validate:"min=0,max=100"`
}

// UpdateCourseInput carries partial course updates; nil fields are left
// untouched.
type UpdateCourseInput struct {
	Title            *string   `json:"title,omitempty"`
	Description      *string   `json:"description,omitempty"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	ImageURL         *string   `json:"imageUrl,omitempty"`
	Category         *string   `json:"category,omitempty"`
	Tags             *[]string `json:"tags,omitempty"`
	Difficulty       *string   `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	EstimatedTime    *string   `json:"estimatedTime,omitempty"`
	PassingThreshold *int      `json:"passingThreshold,omitempty" validate:"omitempty,min=0,max=100"`
}
