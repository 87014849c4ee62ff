package eventservice

import (
	"vh-server/api"
	"vh-server/models"
	"vh-server/models/event"
)

// EventsApiClient embeds the common HTTPClient
type EventsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewEventsApiClient creates a new instance of EventsApiClient
func NewEventsApiClient(httpClient *api.HTTPClient) *EventsApiClient {
	return &EventsApiClient{
		HTTPClient: httpClient,
	}
}

// ListEvents retrieves the current event snapshot. Server-side params are
// pass-through; the discovery engine does its own filtering on top.
func (c *EventsApiClient) ListEvents(params models.EventFilterParams) ([]event.Event, error) {
	var response models.EventListResponse
	err := c.RequestWithQuery("GET", "/events", params.ToValues(), nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response.Events, nil
}

// GetEvent retrieves a single event by id.
func (c *EventsApiClient) GetEvent(eventID string) (*event.Event, error) {
	var response event.Event
	err := c.Request("GET", "/events/"+eventID, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
