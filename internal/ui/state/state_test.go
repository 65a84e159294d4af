package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdeck/internal/domain"
)

func events() []domain.Event {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []domain.Event{
		{ID: "1", Title: "Music theory", StartTime: base.Add(2 * time.Hour)},
		{ID: "2", Title: "Standup", StartTime: base},
		{ID: "3", Title: "Music jam", StartTime: base.Add(time.Hour)},
	}
}

func TestSetFilterRecomputesVisible(t *testing.T) {
	s := NewAppState()
	s.SetEvents(events())
	assert.Len(t, s.Visible, 3)

	s.SetFilter(domain.FilterState{Query: "music", Sort: domain.SortByStartTime})
	require.Len(t, s.Visible, 2)
	assert.Equal(t, "3", s.Visible[0].ID)
	assert.Equal(t, "1", s.Visible[1].ID)
}

func TestRefreshClampsSelection(t *testing.T) {
	s := NewAppState()
	s.SetEvents(events())
	s.SelectedIndex = 2

	s.SetFilter(domain.FilterState{Query: "standup"})
	assert.Equal(t, 0, s.SelectedIndex)

	s.SetFilter(domain.FilterState{Query: "nothing matches"})
	assert.Equal(t, 0, s.SelectedIndex)
	_, ok := s.CurrentEvent()
	assert.False(t, ok)
}

func TestStatus(t *testing.T) {
	s := NewAppState()
	s.SetStatus("boom", true)
	assert.Equal(t, "boom", s.StatusMessage)
	assert.True(t, s.StatusIsError)

	s.ClearStatus()
	assert.Empty(t, s.StatusMessage)
	assert.False(t, s.StatusIsError)
}
