package models

import "net/url"
import "strconv"
import "strings"

// EventFilterParams mirrors the discovery query args. Use zero-values to omit.
type EventFilterParams struct {
	Cities         []string // e.g. []{"Brno","Praha"}
	RatingMin      *float64 // inclusive floor, one of the fixed thresholds
	DurationPreset string   // "less2h" | "more3h" | "more30min"
	DurationMin    *int     // custom range (minutes); must be paired with DurationMax
	DurationMax    *int
	Sort           string   // "rating" | "date" | "points"
	Query          string   // free-text search
	Lat            *float64 // viewer position; must be paired with Lon
	Lon            *float64
	Session        string // filter session id, optional
}

// ToValues renders the params as URL query args.
func (p EventFilterParams) ToValues() url.Values {
	q := url.Values{}

	if len(p.Cities) > 0 {
		// comma-separated list
		q.Set("cities", join(p.Cities, ","))
	}
	if p.RatingMin != nil {
		q.Set("rating_min", ftoa(*p.RatingMin))
	}
	if p.DurationPreset != "" {
		q.Set("duration", p.DurationPreset)
	}
	if p.DurationMin != nil {
		q.Set("duration_min", itoa(*p.DurationMin))
	}
	if p.DurationMax != nil {
		q.Set("duration_max", itoa(*p.DurationMax))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.Lat != nil {
		q.Set("lat", ftoa(*p.Lat))
	}
	if p.Lon != nil {
		q.Set("lon", ftoa(*p.Lon))
	}
	if p.Session != "" {
		q.Set("session", p.Session)
	}

	return q
}

// ParseEventFilterParams reads params back from URL query args. Unknown or
// unparsable args are ignored rather than rejected.
func ParseEventFilterParams(vals url.Values) EventFilterParams {
	p := EventFilterParams{
		DurationPreset: vals.Get("duration"),
		Sort:           vals.Get("sort"),
		Query:          vals.Get("q"),
		Session:        vals.Get("session"),
	}

	if cs := vals.Get("cities"); cs != "" {
		for _, c := range strings.Split(cs, ",") {
			if c = strings.TrimSpace(c); c != "" {
				p.Cities = append(p.Cities, c)
			}
		}
	}
	if v, err := strconv.ParseFloat(vals.Get("rating_min"), 64); err == nil {
		p.RatingMin = &v
	}
	if v, err := strconv.Atoi(vals.Get("duration_min")); err == nil {
		p.DurationMin = &v
	}
	if v, err := strconv.Atoi(vals.Get("duration_max")); err == nil {
		p.DurationMax = &v
	}
	if v, err := strconv.ParseFloat(vals.Get("lat"), 64); err == nil {
		p.Lat = &v
	}
	if v, err := strconv.ParseFloat(vals.Get("lon"), 64); err == nil {
		p.Lon = &v
	}

	return p
}

// ToFilterSet materializes the params into an applied FilterSet and SortKey.
// A custom range wins over a preset only when both bounds are present.
func (p EventFilterParams) ToFilterSet() (FilterSet, SortKey) {
	f := FilterSet{
		Cities:    p.Cities,
		RatingMin: p.RatingMin,
	}

	if p.DurationMin != nil && p.DurationMax != nil {
		f.Duration = &DurationFilter{
			Custom: &DurationRange{MinMinutes: *p.DurationMin, MaxMinutes: *p.DurationMax},
		}
	} else if KnownDurationPreset(DurationPreset(p.DurationPreset)) {
		f.Duration = &DurationFilter{Preset: DurationPreset(p.DurationPreset)}
	}

	sortKey := DefaultSortKey
	switch SortKey(p.Sort) {
	case SortByRating, SortByDate, SortByPoints:
		sortKey = SortKey(p.Sort)
	}

	return f, sortKey
}

// lightweight helpers (no fmt.Sprintf allocations for ints)
func itoa(i int) string     { return strconv.Itoa(i) }
func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
func join(ss []string, sep string) string {
	if len(ss) == 0 {
		return ""
	}
	out := ss[0]
	for i := 1; i < len(ss); i++ {
		out += sep + ss[i]
	}
	return out
}
