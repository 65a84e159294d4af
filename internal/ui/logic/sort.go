package logic

import (
	"sort"
	"strings"

	"eventdeck/internal/domain"
)

// SortEvents returns a sorted copy of events. SortNone keeps storage order.
func SortEvents(events []domain.Event, key domain.SortKey) []domain.Event {
	sorted := make([]domain.Event, len(events))
	copy(sorted, events)

	switch key {
	case domain.SortByTitle:
		sortByTitle(sorted)
	case domain.SortByStartTime:
		sortByStartTime(sorted)
	}
	return sorted
}

// sortByTitle sorts events alphabetically by title, earliest first on ties
func sortByTitle(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		titleI := strings.ToLower(events[i].Title)
		titleJ := strings.ToLower(events[j].Title)
		if titleI != titleJ {
			return titleI < titleJ
		}
		return events[i].StartTime.Before(events[j].StartTime)
	})
}

// sortByStartTime sorts events chronologically, by title on ties
func sortByStartTime(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].StartTime.Equal(events[j].StartTime) {
			return events[i].StartTime.Before(events[j].StartTime)
		}
		return strings.ToLower(events[i].Title) < strings.ToLower(events[j].Title)
	})
}
