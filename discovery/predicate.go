package discovery

import (
	"strings"
	"time"

	"vh-server/models"
	"vh-server/models/event"
)

// IsVisible decides whether a single event survives the applied filter set at
// the given evaluation time. Each rule short-circuits; an event is excluded as
// soon as any rule fails.
func IsVisible(e *event.Event, filters models.FilterSet, now time.Time) bool {
	// Events with missing or unparsable timestamps are never visible.
	if !e.HasValidTimes() {
		return false
	}

	// Past events are always excluded, regardless of other filters.
	if !e.StartDateTime.After(now) {
		return false
	}

	if len(filters.Cities) > 0 && !filters.HasCity(e.City) {
		return false
	}

	// An unknown creator rating never excludes the event.
	if filters.RatingMin != nil && e.Creator.PointsAsCreator != nil {
		if *e.Creator.PointsAsCreator < *filters.RatingMin {
			return false
		}
	}

	return matchesDuration(e, filters.Duration)
}

func matchesDuration(e *event.Event, d *models.DurationFilter) bool {
	if d == nil {
		return true
	}

	minutes := e.DurationMinutes()
	if minutes < 0 {
		// A negative duration fails every active duration mode.
		return false
	}

	if d.Custom != nil {
		return minutes >= float64(d.Custom.MinMinutes) && minutes <= float64(d.Custom.MaxMinutes)
	}

	switch d.Preset {
	case models.DurationLess2h:
		return minutes < 120
	case models.DurationMore3h:
		return minutes > 180
	case models.DurationMore30min:
		return minutes > 30
	}

	// Unknown preset degrades to "no restriction".
	return true
}

// MatchesSearch reports whether the event matches a free-text query. Matching
// is a case-insensitive substring check over name, city and address. A blank
// query matches everything.
func MatchesSearch(e *event.Event, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(e.EventName), q) ||
		strings.Contains(strings.ToLower(e.City), q) ||
		strings.Contains(strings.ToLower(e.Address), q)
}

// FilterEvents applies IsVisible and MatchesSearch over a snapshot, returning
// the surviving subset in input order. The input slice is never mutated.
func FilterEvents(events []event.Event, filters models.FilterSet, query string, now time.Time) []event.Event {
	visible := make([]event.Event, 0, len(events))
	for i := range events {
		e := &events[i]
		if IsVisible(e, filters, now) && MatchesSearch(e, query) {
			visible = append(visible, *e)
		}
	}
	return visible
}
