package discovery

import (
	"testing"
	"time"

	"vh-server/models"
	"vh-server/models/event"
	"vh-server/models/user"
)

var testNow = time.Date(2027, 3, 10, 12, 0, 0, 0, time.UTC)

func ratingPtr(v float64) *float64 { return &v }

// makeEvent builds an event starting at now+startOffset with the given
// duration.
func makeEvent(id, name, city string, startOffset, duration time.Duration, rating *float64, price float64) event.Event {
	start := testNow.Add(startOffset)
	return event.Event{
		EventID:       id,
		EventName:     name,
		City:          city,
		Address:       "Main street 1",
		StartDateTime: start,
		EndDateTime:   start.Add(duration),
		Price:         price,
		Creator: user.Summary{
			UserID:          "creator-" + id,
			PointsAsCreator: rating,
		},
	}
}

func TestIsVisible_EmptyFiltersReduceToTemporalGate(t *testing.T) {
	tests := []struct {
		name    string
		event   event.Event
		visible bool
	}{
		{
			name:    "future event is visible",
			event:   makeEvent("e1", "Cleanup", "Brno", 24*time.Hour, 90*time.Minute, ratingPtr(4.5), 60),
			visible: true,
		},
		{
			name:    "past event is excluded",
			event:   makeEvent("e2", "Cleanup", "Brno", -24*time.Hour, 90*time.Minute, ratingPtr(4.5), 60),
			visible: false,
		},
		{
			name:    "event starting exactly now is excluded",
			event:   makeEvent("e3", "Cleanup", "Brno", 0, 90*time.Minute, ratingPtr(4.5), 60),
			visible: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := IsVisible(&test.event, models.FilterSet{}, testNow)
			if got != test.visible {
				t.Errorf("IsVisible = %v, want %v", got, test.visible)
			}
		})
	}
}

func TestIsVisible_MalformedTimestamps(t *testing.T) {
	missingStart := makeEvent("e1", "Cleanup", "Brno", 24*time.Hour, time.Hour, nil, 60)
	missingStart.StartDateTime = time.Time{}

	missingEnd := makeEvent("e2", "Cleanup", "Brno", 24*time.Hour, time.Hour, nil, 60)
	missingEnd.EndDateTime = time.Time{}

	for _, e := range []event.Event{missingStart, missingEnd} {
		if IsVisible(&e, models.FilterSet{}, testNow) {
			t.Errorf("Event %s with malformed timestamps must not be visible", e.EventID)
		}
	}
}

func TestIsVisible_CityFilter(t *testing.T) {
	e := makeEvent("e1", "Cleanup", "Brno", 24*time.Hour, time.Hour, nil, 60)

	if !IsVisible(&e, models.FilterSet{Cities: []string{"Brno", "Praha"}}, testNow) {
		t.Errorf("Event in a selected city must be visible")
	}
	if IsVisible(&e, models.FilterSet{Cities: []string{"Praha"}}, testNow) {
		t.Errorf("Event outside the selected cities must be excluded")
	}
	if !IsVisible(&e, models.FilterSet{}, testNow) {
		t.Errorf("Empty city selection must not restrict")
	}
}

func TestIsVisible_RatingFloor(t *testing.T) {
	tests := []struct {
		name    string
		rating  *float64
		floor   float64
		visible bool
	}{
		{"rating above floor passes", ratingPtr(4.5), 4, true},
		{"rating exactly at floor passes (inclusive)", ratingPtr(4.0), 4, true},
		{"rating below floor is excluded", ratingPtr(3.0), 4, false},
		{"unknown rating never excludes", nil, 4, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := makeEvent("e1", "Cleanup", "Brno", 24*time.Hour, time.Hour, test.rating, 60)
			got := IsVisible(&e, models.FilterSet{RatingMin: &test.floor}, testNow)
			if got != test.visible {
				t.Errorf("IsVisible = %v, want %v", got, test.visible)
			}
		})
	}
}

func TestIsVisible_DurationPresets(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		preset   models.DurationPreset
		visible  bool
	}{
		{"90m passes less2h", 90 * time.Minute, models.DurationLess2h, true},
		{"120m fails less2h (strict)", 120 * time.Minute, models.DurationLess2h, false},
		{"200m passes more3h", 200 * time.Minute, models.DurationMore3h, true},
		{"180m fails more3h (strict)", 180 * time.Minute, models.DurationMore3h, false},
		{"45m passes more30min", 45 * time.Minute, models.DurationMore30min, true},
		{"30m fails more30min (strict)", 30 * time.Minute, models.DurationMore30min, false},
		{"negative duration fails every preset", -time.Hour, models.DurationLess2h, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := makeEvent("e1", "Cleanup", "Brno", 24*time.Hour, test.duration, nil, 60)
			filters := models.FilterSet{Duration: &models.DurationFilter{Preset: test.preset}}
			got := IsVisible(&e, filters, testNow)
			if got != test.visible {
				t.Errorf("IsVisible = %v, want %v", got, test.visible)
			}
		})
	}
}

func TestIsVisible_CustomDurationRange(t *testing.T) {
	custom := &models.DurationFilter{Custom: &models.DurationRange{MinMinutes: 60, MaxMinutes: 120}}
	filters := models.FilterSet{Duration: custom}

	tests := []struct {
		name     string
		duration time.Duration
		visible  bool
	}{
		{"below range", 45 * time.Minute, false},
		{"at lower bound (inclusive)", 60 * time.Minute, true},
		{"inside range", 90 * time.Minute, true},
		{"at upper bound (inclusive)", 120 * time.Minute, true},
		{"above range", 150 * time.Minute, false},
		{"negative duration", -time.Hour, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := makeEvent("e1", "Cleanup", "Brno", 24*time.Hour, test.duration, nil, 60)
			got := IsVisible(&e, filters, testNow)
			if got != test.visible {
				t.Errorf("IsVisible = %v, want %v", got, test.visible)
			}
		})
	}
}

func TestIsVisible_UnknownPresetDegradesToNoRestriction(t *testing.T) {
	e := makeEvent("e1", "Cleanup", "Brno", 24*time.Hour, time.Hour, nil, 60)
	filters := models.FilterSet{Duration: &models.DurationFilter{Preset: "fortnight"}}

	if !IsVisible(&e, filters, testNow) {
		t.Errorf("An unknown preset must not exclude events")
	}
}

func TestMatchesSearch(t *testing.T) {
	e := makeEvent("e1", "Riverbank Cleanup", "Brno", 24*time.Hour, time.Hour, nil, 60)

	tests := []struct {
		name    string
		query   string
		matches bool
	}{
		{"empty query matches", "", true},
		{"whitespace query matches", "   ", true},
		{"case-insensitive name substring", "riverBANK", true},
		{"city substring", "brno", true},
		{"address substring", "main street", true},
		{"no match", "concert", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := MatchesSearch(&e, test.query)
			if got != test.matches {
				t.Errorf("MatchesSearch(%q) = %v, want %v", test.query, got, test.matches)
			}
		})
	}
}

// Scenario from the discovery flow: A future short Brno event, a past event
// and a future long Praha event with a weaker creator rating.
func TestFilterEvents_Scenario(t *testing.T) {
	a := makeEvent("A", "Event A", "Brno", 24*time.Hour, 90*time.Minute, ratingPtr(4.5), 60)
	b := makeEvent("B", "Event B", "Brno", -24*time.Hour, 90*time.Minute, ratingPtr(4.5), 60)
	c := makeEvent("C", "Event C", "Praha", 48*time.Hour, 200*time.Minute, ratingPtr(3.0), 60)
	snapshot := []event.Event{a, b, c}

	// No filters: only the past event drops out.
	got := SortEvents(FilterEvents(snapshot, models.FilterSet{}, "", testNow), models.SortByDate)
	assertIDs(t, got, []string{"A", "C"})

	// less2h keeps only A.
	less2h := models.FilterSet{Duration: &models.DurationFilter{Preset: models.DurationLess2h}}
	assertIDs(t, FilterEvents(snapshot, less2h, "", testNow), []string{"A"})

	// rating 4 excludes C.
	four := 4.0
	assertIDs(t, FilterEvents(snapshot, models.FilterSet{RatingMin: &four}, "", testNow), []string{"A"})
}

func TestFilterEvents_EmptyInput(t *testing.T) {
	got := FilterEvents(nil, models.FilterSet{}, "", testNow)
	if len(got) != 0 {
		t.Errorf("Expected empty output for empty input, got %d events", len(got))
	}
}

func assertIDs(t *testing.T, events []event.Event, want []string) {
	t.Helper()
	if len(events) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(events))
	}
	for i, e := range events {
		if e.EventID != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], e.EventID)
		}
	}
}
