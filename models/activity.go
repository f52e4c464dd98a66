package models

import "time"

// Activity types. The payload fields that matter depend on the type:
// video_pause uses PauseTimestamp, true_false uses Question plus a boolean
// CorrectAnswer, multiple_choice uses Question, Options and an integer index
// CorrectAnswer, text_reading uses TextPages.
const (
	ActivityVideoPause     = "video_pause"
	ActivityTrueFalse      = "true_false"
	ActivityTextReading    = "text_reading"
	ActivityMultipleChoice = "multiple_choice"
)

type Activity struct {
	ID             string      `gorm:"primaryKey" json:"id"`
	SectionID      string      `gorm:"index" json:"sectionId"`
	Type           string      `json:"type"`
	Order          int         `gorm:"column:order_index" json:"order"`
	PauseTimestamp *float64    `json:"pauseTimestamp,omitempty"`
	Question       string      `json:"question,omitempty"`
	Options        []string    `gorm:"serializer:json" json:"options,omitempty"`
	CorrectAnswer  interface{} `gorm:"serializer:json" json:"correctAnswer,omitempty"`
	TextPages      []string    `gorm:"serializer:json" json:"textPages,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// CreateActivityInput is the payload for creating an activity. There is no
// update path: activities are created and deleted only.
type CreateActivityInput struct {
	ID             string      `json:"id"`
	SectionID      string      `json:"sectionId" validate:"required"`
	Type           string      `json:"type" validate:"required,oneof=video_pause true_false text_reading multiple_choice"`
	Order          int         `json:"order" validate:"min=0"`
	PauseTimestamp *float64    `json:"pauseTimestamp,omitempty"`
	Question       string      `json:"question,omitempty"`
	Options        []string    `json:"options,omitempty"`
	CorrectAnswer  interface{} `json:"correctAnswer,omitempty"`
	TextPages      []string    `json:"textPages,omitempty"`
}

// CorrectIndex returns the correct option index for a multiple_choice
// activity and whether it addresses a real option. JSON decoding hands
// numbers back as float64, so both int and float64 are accepted.
func (a *Activity) CorrectIndex() (int, bool) {
	var idx int
	switch v := a.CorrectAnswer.(type) {
	case int:
		idx = v
	case float64:
		idx = int(v)
	default:
		return 0, false
	}
	if idx < 0 || idx >= len(a.Options) {
		return 0, false
	}
	return idx, true
}

// CorrectBool returns the expected answer for a true_false activity.
func (a *Activity) CorrectBool() (bool, bool) {
	v, ok := a.CorrectAnswer.(bool)
	return v, ok
}
