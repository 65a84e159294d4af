package logic

import (
	"strings"

	"eventdeck/internal/domain"
)

// MatchesQuery reports whether an event's title contains the query, ignoring case.
// An empty query matches every event.
func MatchesQuery(event domain.Event, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(event.Title), strings.ToLower(query))
}

// FilterEvents returns the events that match the query, keeping their order.
// The input slice is not modified.
func FilterEvents(events []domain.Event, query string) []domain.Event {
	result := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if MatchesQuery(ev, query) {
			result = append(result, ev)
		}
	}
	return result
}

// Visible applies a filter state to the event list: sort first, then search
func Visible(events []domain.Event, filter domain.FilterState) []domain.Event {
	return FilterEvents(SortEvents(events, filter.Sort), filter.Query)
}
