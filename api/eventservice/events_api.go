package eventservice

import (
	"vh-server/models"
	"vh-server/models/event"
)

// EventsAPI defines the interface for interacting with the remote event
// service. Every list call returns a full replacement snapshot, never a delta.
type EventsAPI interface {
	ListEvents(params models.EventFilterParams) ([]event.Event, error)
	GetEvent(eventID string) (*event.Event, error)
}
