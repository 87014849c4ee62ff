package discovery

import (
	"sort"

	"vh-server/models"
	"vh-server/models/event"
)

// Feed thresholds. MIN_BUCKET_POPULATION is a hard display rule: a named
// bucket with fewer qualifying events is suppressed entirely.
const MIN_BUCKET_POPULATION = 5
const BUCKET_DISPLAY_CAP = 5
const NEARBY_MAX_DISTANCE_KM = 10.0
const MANY_POINTS_MIN_PRICE = 50.0

// Bucket ids, in feed display order.
const (
	BUCKET_GOOD_REVIEWS = "good_reviews"
	BUCKET_NEARBY       = "nearby"
	BUCKET_MANY_POINTS  = "many_points"
	BUCKET_ALL          = "all"
)

var bucketLabels = map[string]string{
	BUCKET_GOOD_REVIEWS: "With good reviews",
	BUCKET_NEARBY:       "Closest to you",
	BUCKET_MANY_POINTS:  "Many points",
	BUCKET_ALL:          "All events",
}

var feedBucketOrder = []string{BUCKET_GOOD_REVIEWS, BUCKET_NEARBY, BUCKET_MANY_POINTS, BUCKET_ALL}

// Bucket is one feed row: a capped slice of events plus the true member count
// backing the "see all" expansion.
type Bucket struct {
	ID     string        `json:"id"`
	Label  string        `json:"label"`
	Total  int           `json:"total"`
	Events []event.Event `json:"events"`
}

// BuildBuckets groups an already-visible event set into the feed rows. Each
// bucket is derived independently from the full set. Named buckets below the
// population gate are dropped; "All events" is always present, even empty.
func BuildBuckets(visible []event.Event) []Bucket {
	buckets := make([]Bucket, 0, len(feedBucketOrder))

	for _, id := range feedBucketOrder {
		members := bucketMembers(id, visible)
		if id != BUCKET_ALL && len(members) < MIN_BUCKET_POPULATION {
			continue
		}

		display := members
		if len(display) > BUCKET_DISPLAY_CAP {
			display = display[:BUCKET_DISPLAY_CAP]
		}

		buckets = append(buckets, Bucket{
			ID:     id,
			Label:  bucketLabels[id],
			Total:  len(members),
			Events: display,
		})
	}

	return buckets
}

// ExpandBucket returns the full, uncapped member set of one bucket, re-sorted
// when the viewer picked a sort key. An unknown bucket id yields nil.
func ExpandBucket(id string, visible []event.Event, key models.SortKey) []event.Event {
	if _, ok := bucketLabels[id]; !ok {
		return nil
	}
	members := bucketMembers(id, visible)
	if key != "" {
		return SortEvents(members, key)
	}
	return members
}

// bucketMembers selects and default-orders the qualifying events for one
// bucket id.
func bucketMembers(id string, visible []event.Event) []event.Event {
	switch id {
	case BUCKET_GOOD_REVIEWS:
		// The full visible set ordered by rating; only the population gate
		// restricts this row.
		return SortEvents(visible, models.SortByRating)

	case BUCKET_NEARBY:
		members := make([]event.Event, 0, len(visible))
		for _, e := range visible {
			// Events without a distance are excluded from this bucket only.
			if e.DistanceKm != nil && *e.DistanceKm < NEARBY_MAX_DISTANCE_KM {
				members = append(members, e)
			}
		}
		sort.SliceStable(members, func(i, j int) bool {
			return *members[i].DistanceKm < *members[j].DistanceKm
		})
		return members

	case BUCKET_MANY_POINTS:
		members := make([]event.Event, 0, len(visible))
		for _, e := range visible {
			if e.Price >= MANY_POINTS_MIN_PRICE {
				members = append(members, e)
			}
		}
		return SortEvents(members, models.SortByPoints)

	case BUCKET_ALL:
		return SortEvents(visible, models.SortByDate)
	}

	return nil
}
