package models

import "vh-server/models/event"

// EventListResponse matches the event service's list endpoint envelope.
type EventListResponse struct {
	Status     string        `json:"status"`
	CountTotal int           `json:"count_total"`
	Events     []event.Event `json:"events"`
}
