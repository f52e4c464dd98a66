package console

import (
	"sort"
	"strings"

	"courseadmin/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys for the course listing.
const (
	SortRecent   = "recent"
	SortOldest   = "oldest"
	SortName     = "name"
	SortCategory = "category"
)

var collator = collate.New(language.Und)

// FilterCourses keeps courses whose title, category or short description
// contains the query, case-insensitively. An empty query keeps everything.
func FilterCourses(courses []models.Course, query string) []models.Course {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return courses
	}

	var out []models.Course
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course.Title), query) ||
			strings.Contains(strings.ToLower(course.Category), query) ||
			strings.Contains(strings.ToLower(course.ShortDescription), query) {
			out = append(out, course)
		}
	}
	return out
}

// SortCourses orders the listing in place. recent/oldest compare creation
// timestamps, with missing timestamps counting as epoch 0; name/category use
// locale-aware string comparison. Unknown keys fall back to recent.
func SortCourses(courses []models.Course, key string) {
	switch key {
	case SortOldest:
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].CreatedAt.Unix() < courses[j].CreatedAt.Unix()
		})
	case SortName:
		sort.SliceStable(courses, func(i, j int) bool {
			return collator.CompareString(courses[i].Title, courses[j].Title) < 0
		})
	case SortCategory:
		sort.SliceStable(courses, func(i, j int) bool {
			return collator.CompareString(courses[i].Category, courses[j].Category) < 0
		})
	default: // SortRecent
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].CreatedAt.Unix() > courses[j].CreatedAt.Unix()
		})
	}
}
