package models

import "time"

type Section struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	CourseID     string     `gorm:"index" json:"courseId"`
	Title        string     `json:"title"`
	VideoURL     string     `json:"videoUrl,omitempty"`
	ThumbnailURL string     `json:"thumbnailUrl,omitempty"`
	Duration     string     `json:"duration,omitempty"`
	Order        int        `gorm:"column:order_index" json:"order"` // display sort only, gaps allowed
	Activities   []Activity `gorm:"foreignKey:SectionID" json:"activities,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// CreateSectionInput is the payload for creating or replacing a section.
// Section updates are a full replace, not a patch.
type CreateSectionInput struct {
	ID           string `json:"id"`
	CourseID     string `json:"courseId" validate:"required"`
	Title        string `json:"title" validate:"required"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Duration     string `json:"duration"`
	Order        int    `json:"order" validate:"min=0"`
}
