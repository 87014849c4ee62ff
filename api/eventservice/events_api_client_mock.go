package eventservice

import (
	"fmt"

	"vh-server/models"
	"vh-server/models/event"
	"vh-server/util"
)

// EventsApiClientMock embeds mocked logic for the events api client
type EventsApiClientMock struct {
	eventsPath string
}

// NewEventsApiClientMock creates a new instance of EventsApiClientMock
func NewEventsApiClientMock(eventsPath string) *EventsApiClientMock {
	return &EventsApiClientMock{eventsPath: eventsPath}
}

// ListEvents reads the event snapshot from the JSON fixture on disk.
func (c *EventsApiClientMock) ListEvents(params models.EventFilterParams) ([]event.Event, error) {
	response, err := util.ReadEventListResponseFromJSON(c.eventsPath)
	if err != nil {
		fmt.Println("Could not read event list response from json")
		return nil, err
	}
	return response.Events, nil
}

// GetEvent looks the event up inside the same fixture snapshot.
func (c *EventsApiClientMock) GetEvent(eventID string) (*event.Event, error) {
	events, err := c.ListEvents(models.EventFilterParams{})
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].EventID == eventID {
			return &events[i], nil
		}
	}
	return nil, fmt.Errorf("event not found: %s", eventID)
}
