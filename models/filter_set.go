package models

// SortKey selects the ordering of a filtered event list. Exactly one is
// active at a time.
type SortKey string

const (
	SortByRating SortKey = "rating"
	SortByDate   SortKey = "date"
	SortByPoints SortKey = "points"
)

// DefaultSortKey is the ordering used before the viewer picks anything.
const DefaultSortKey = SortByDate

// DurationPreset is one of the named duration ranges. Presets are mutually
// exclusive with each other and with a custom range.
type DurationPreset string

const (
	DurationLess2h    DurationPreset = "less2h"
	DurationMore3h    DurationPreset = "more3h"
	DurationMore30min DurationPreset = "more30min"
)

// KnownDurationPreset reports whether p names a supported preset.
func KnownDurationPreset(p DurationPreset) bool {
	switch p {
	case DurationLess2h, DurationMore3h, DurationMore30min:
		return true
	}
	return false
}

// DurationRange is an inclusive custom duration window in minutes.
type DurationRange struct {
	MinMinutes int `json:"min_minutes"`
	MaxMinutes int `json:"max_minutes"`
}

// DurationFilter holds the single active duration mode: either Preset or
// Custom is set, never both.
type DurationFilter struct {
	Preset DurationPreset `json:"preset,omitempty"`
	Custom *DurationRange `json:"custom,omitempty"`
}

// FilterSet is an applied, immutable filter selection. The zero value means
// "no restriction".
type FilterSet struct {
	// Cities is a multi-select set of city names; empty means unrestricted.
	Cities []string `json:"cities,omitempty"`

	// RatingMin is an inclusive creator-rating floor. nil means unset.
	RatingMin *float64 `json:"rating_min,omitempty"`

	Duration *DurationFilter `json:"duration,omitempty"`
}

// HasCity reports whether the given city is part of the selection.
func (f *FilterSet) HasCity(city string) bool {
	for _, c := range f.Cities {
		if c == city {
			return true
		}
	}
	return false
}
