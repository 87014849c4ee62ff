package util

import (
	"encoding/json"
	"fmt"
	"os"

	"vh-server/models"
	"vh-server/models/event"
)

// ReadEventListResponseFromJSON loads an EventListResponse from JSON on disk.
func ReadEventListResponseFromJSON(filePath string) (*models.EventListResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.EventListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal EventListResponse: %w", err)
	}
	return &resp, nil
}

// ReadEventFromJSON loads a single Event from JSON on disk.
func ReadEventFromJSON(filePath string) (*event.Event, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var e event.Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Event: %w", err)
	}
	return &e, nil
}

// PrintEventListResponsePartially prints key fields of EventListResponse.
func PrintEventListResponsePartially(resp *models.EventListResponse) {
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Total events: %d\n", resp.CountTotal)
	if len(resp.Events) > 0 {
		e := resp.Events[0]
		fmt.Printf("First event: %s at %s, %s (starts %s)\n",
			e.EventName, e.Address, e.City, e.StartDateTime)
	}
}
