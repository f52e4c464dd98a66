package console

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"courseadmin/client"
	"courseadmin/models"
)

// SectionEditor holds the editing snapshot for one course: the course id and
// the sections fetched for it. The snapshot is never mutated in place; every
// change goes through the API and the snapshot is refetched.
type SectionEditor struct {
	CourseID string
	Sections []models.Section
}

func NewSectionEditor(courseID string) *SectionEditor {
	return &SectionEditor{CourseID: courseID}
}

// Load refetches the full section list for the course and sorts it for
// display. A failed load is reported to the caller; the console shows it.
func (e *SectionEditor) Load(api *client.Client) error {
	sections, err := api.ListSections(e.CourseID)
	if err != nil {
		return err
	}
	SortSectionsByOrder(sections)
	e.Sections = sections
	return nil
}

// SectionByID finds a section in the current snapshot.
func (e *SectionEditor) SectionByID(id string) (*models.Section, bool) {
	for i := range e.Sections {
		if e.Sections[i].ID == id {
			return &e.Sections[i], true
		}
	}
	return nil, false
}

// NextOrder is the default order for a new section. Orders are a sparse
// rank, so the default is max(existing)+1 rather than count+1; gaps left by
// deletions never cause collisions.
func (e *SectionEditor) NextOrder() int {
	maxOrder := 0
	for _, s := range e.Sections {
		if s.Order > maxOrder {
			maxOrder = s.Order
		}
	}
	return maxOrder + 1
}

// SortSectionsByOrder sorts sections ascending by display order. Ties keep
// no particular relative order.
func SortSectionsByOrder(sections []models.Section) {
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
}

// ActivityForm is the raw form input for the activity editor. Which fields
// matter depends on Type, per the fixed field table below.
type ActivityForm struct {
	Type           string
	PauseTimestamp string
	Question       string
	CorrectBool    string // "true" / "false"
	Options        string // newline-delimited
	CorrectIndex   string // zero-based index into Options
	Pages          string // newline-delimited
}

// BuildActivityInput turns the form into a creation payload for the API,
// keyed by the selected type:
//
//	video_pause     -> pauseTimestamp
//	true_false      -> question + boolean correctAnswer
//	multiple_choice -> question + options + integer correctAnswer
//	text_reading    -> textPages
func BuildActivityInput(sectionID string, form ActivityForm) (models.CreateActivityInput, error) {
	input := models.CreateActivityInput{
		SectionID: sectionID,
		Type:      form.Type,
	}

	switch form.Type {
	case models.ActivityVideoPause:
		ts, err := strconv.ParseFloat(strings.TrimSpace(form.PauseTimestamp), 64)
		if err != nil {
			return input, fmt.Errorf("invalid pause timestamp %q", form.PauseTimestamp)
		}
		input.PauseTimestamp = &ts

	case models.ActivityTrueFalse:
		if strings.TrimSpace(form.Question) == "" {
			return input, fmt.Errorf("question is required")
		}
		input.Question = form.Question
		input.CorrectAnswer = form.CorrectBool == "true"

	case models.ActivityMultipleChoice:
		if strings.TrimSpace(form.Question) == "" {
			return input, fmt.Errorf("question is required")
		}
		options := SplitLines(form.Options)
		if len(options) == 0 {
			return input, fmt.Errorf("at least one option is required")
		}
		idx, err := strconv.Atoi(strings.TrimSpace(form.CorrectIndex))
		if err != nil || idx < 0 || idx >= len(options) {
			return input, fmt.Errorf("correct answer index %q is out of range", form.CorrectIndex)
		}
		input.Question = form.Question
		input.Options = options
		input.CorrectAnswer = idx

	case models.ActivityTextReading:
		pages := SplitLines(form.Pages)
		if len(pages) == 0 {
			return input, fmt.Errorf("at least one page is required")
		}
		input.TextPages = pages

	default:
		return input, fmt.Errorf("unknown activity type %q", form.Type)
	}

	return input, nil
}

// SplitLines splits newline-delimited form input, trimming entries and
// discarding blank lines.
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
