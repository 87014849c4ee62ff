package discovery

import (
	"sort"

	"vh-server/models"
	"vh-server/models/event"
)

// SortEvents returns a new slice ordered by the given key. The sort is stable,
// so events with equal keys keep their input order. An unknown key returns the
// input order unchanged.
func SortEvents(events []event.Event, key models.SortKey) []event.Event {
	out := make([]event.Event, len(events))
	copy(out, events)

	switch key {
	case models.SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatorRating() > out[j].CreatorRating()
		})
	case models.SortByDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].StartDateTime.Before(out[j].StartDateTime)
		})
	case models.SortByPoints:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	}

	return out
}
