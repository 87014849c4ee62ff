package discovery

import (
	"sync"

	"vh-server/models"
)

// FilterSession holds one viewer's in-progress filter draft next to the
// applied selection currently governing their event list. The draft only
// becomes visible to the pipeline through Accept.
type FilterSession struct {
	mu sync.RWMutex

	draftCities    []string
	draftRatingMin *float64
	draftPreset    models.DurationPreset
	draftCustom    *models.DurationRange
	draftSort      models.SortKey

	applied     models.FilterSet
	appliedSort models.SortKey
}

// NewFilterSession starts with everything unset and the default sort.
func NewFilterSession() *FilterSession {
	return &FilterSession{
		draftSort:   models.DefaultSortKey,
		appliedSort: models.DefaultSortKey,
	}
}

// ToggleCity adds the city to the draft selection, or removes it if already
// selected. Other facets are untouched.
func (s *FilterSession) ToggleCity(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.draftCities {
		if c == city {
			s.draftCities = append(s.draftCities[:i], s.draftCities[i+1:]...)
			return
		}
	}
	s.draftCities = append(s.draftCities, city)
}

// ToggleRating selects the rating floor, replacing any other value.
// Re-selecting the active value clears the facet.
func (s *FilterSession) ToggleRating(value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draftRatingMin != nil && *s.draftRatingMin == value {
		s.draftRatingMin = nil
		return
	}
	s.draftRatingMin = &value
}

// ToggleDurationPreset selects a named duration preset. Selecting any preset
// discards an in-progress custom range; re-selecting the active preset clears
// the facet. Unknown presets are ignored.
func (s *FilterSession) ToggleDurationPreset(p models.DurationPreset) {
	if !models.KnownDurationPreset(p) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.draftCustom = nil
	if s.draftPreset == p {
		s.draftPreset = ""
		return
	}
	s.draftPreset = p
}

// ToggleCustomDuration selects a custom minute range, clearing any preset.
// Re-submitting the identical range deselects custom mode; a different range
// replaces it.
func (s *FilterSession) ToggleCustomDuration(minMinutes, maxMinutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draftPreset = ""
	if s.draftCustom != nil &&
		s.draftCustom.MinMinutes == minMinutes && s.draftCustom.MaxMinutes == maxMinutes {
		s.draftCustom = nil
		return
	}
	s.draftCustom = &models.DurationRange{MinMinutes: minMinutes, MaxMinutes: maxMinutes}
}

// SetSort picks the draft sort key (radio semantics). Unknown keys are
// ignored.
func (s *FilterSession) SetSort(key models.SortKey) {
	switch key {
	case models.SortByRating, models.SortByDate, models.SortByPoints:
	default:
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftSort = key
}

// Accept materializes the draft into the applied, immutable selection and
// returns it.
func (s *FilterSession) Accept() (models.FilterSet, models.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := models.FilterSet{
		RatingMin: copyFloat(s.draftRatingMin),
	}
	if len(s.draftCities) > 0 {
		applied.Cities = append([]string(nil), s.draftCities...)
	}
	if s.draftCustom != nil {
		// Custom only materializes when it is the active mode at accept time.
		custom := *s.draftCustom
		applied.Duration = &models.DurationFilter{Custom: &custom}
	} else if s.draftPreset != "" {
		applied.Duration = &models.DurationFilter{Preset: s.draftPreset}
	}

	s.applied = applied
	s.appliedSort = s.draftSort
	return applied, s.appliedSort
}

// Clear resets draft and applied state together back to the empty default.
func (s *FilterSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draftCities = nil
	s.draftRatingMin = nil
	s.draftPreset = ""
	s.draftCustom = nil
	s.draftSort = models.DefaultSortKey
	s.applied = models.FilterSet{}
	s.appliedSort = models.DefaultSortKey
}

// Applied returns the selection currently governing the viewer's list.
func (s *FilterSession) Applied() (models.FilterSet, models.SortKey) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applied, s.appliedSort
}

// DraftState is a read-only snapshot of the draft, for display.
type DraftState struct {
	Cities         []string              `json:"cities,omitempty"`
	RatingMin      *float64              `json:"rating_min,omitempty"`
	DurationPreset models.DurationPreset `json:"duration_preset,omitempty"`
	DurationCustom *models.DurationRange `json:"duration_custom,omitempty"`
	Sort           models.SortKey        `json:"sort"`
}

// Draft snapshots the in-progress selection.
func (s *FilterSession) Draft() DraftState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := DraftState{
		RatingMin:      copyFloat(s.draftRatingMin),
		DurationPreset: s.draftPreset,
		Sort:           s.draftSort,
	}
	if len(s.draftCities) > 0 {
		d.Cities = append([]string(nil), s.draftCities...)
	}
	if s.draftCustom != nil {
		custom := *s.draftCustom
		d.DurationCustom = &custom
	}
	return d
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
