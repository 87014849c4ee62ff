package event

import (
	"fmt"
	"time"

	"vh-server/models/user"
)

// Event represents a single volunteering event as served by the event service.
type Event struct {
	EventID   string `json:"event_id"`
	EventName string `json:"event_name"`

	City     string  `json:"city"`
	Address  string  `json:"address"`
	EventLat float64 `json:"event_lat"`
	EventLon float64 `json:"event_lng"`

	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`

	// Price is the points value awarded for attendance.
	Price float64 `json:"price"`

	Creator user.Summary `json:"creator"`

	// DistanceKm is only set when a viewer position was available for the request.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// DurationMinutes returns the event length in minutes. Malformed timestamps
// yield a negative or zero result and are handled by the caller.
func (e *Event) DurationMinutes() float64 {
	return e.EndDateTime.Sub(e.StartDateTime).Minutes()
}

// HasValidTimes reports whether both timestamps were actually provided.
func (e *Event) HasValidTimes() bool {
	return !e.StartDateTime.IsZero() && !e.EndDateTime.IsZero()
}

// CreatorRating returns the creator's rating, with unknown ratings read as 0.
func (e *Event) CreatorRating() float64 {
	if e.Creator.PointsAsCreator == nil {
		return 0
	}
	return *e.Creator.PointsAsCreator
}

func (e *Event) ToString() string {
	return fmt.Sprintf("Event(id=%s, name=%s, city=%s, start=%s)",
		e.EventID, e.EventName, e.City, e.StartDateTime.Format(time.RFC3339))
}
