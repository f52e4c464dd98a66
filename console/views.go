package console

import "courseadmin/models"

// OptionView is one multiple-choice option with its checkmark flag.
type OptionView struct {
	Text    string
	Correct bool
}

// ActivityView is the render model for one activity row on a section card.
type ActivityView struct {
	ID             string
	Type           string
	Order          int
	Question       string
	Options        []OptionView
	Pages          []string
	PauseTimestamp *float64
	CorrectBool    *bool
}

// SectionCard is the render model for one section card in the editor.
type SectionCard struct {
	Section    models.Section
	Activities []ActivityView
}

// BuildSectionCards maps sections to their render models. Sections are
// expected to be display-sorted already. For multiple choice, exactly the
// option addressed by a valid correctAnswer index is marked; an absent or
// out-of-range index marks none.
func BuildSectionCards(sections []models.Section) []SectionCard {
	cards := make([]SectionCard, 0, len(sections))
	for _, section := range sections {
		card := SectionCard{Section: section}
		for _, activity := range section.Activities {
			card.Activities = append(card.Activities, buildActivityView(activity))
		}
		cards = append(cards, card)
	}
	return cards
}

func buildActivityView(activity models.Activity) ActivityView {
	view := ActivityView{
		ID:             activity.ID,
		Type:           activity.Type,
		Order:          activity.Order,
		Question:       activity.Question,
		Pages:          activity.TextPages,
		PauseTimestamp: activity.PauseTimestamp,
	}

	switch activity.Type {
	case models.ActivityMultipleChoice:
		correct, ok := activity.CorrectIndex()
		for i, option := range activity.Options {
			view.Options = append(view.Options, OptionView{
				Text:    option,
				Correct: ok && i == correct,
			})
		}
	case models.ActivityTrueFalse:
		if v, ok := activity.CorrectBool(); ok {
			view.CorrectBool = &v
		}
	}

	return view
}
