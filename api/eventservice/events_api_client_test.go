package eventservice

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vh-server/api"
	"vh-server/models"
	"vh-server/models/event"
)

func TestListEvents(t *testing.T) {
	wantResp := models.EventListResponse{
		Status:     "OK",
		CountTotal: 2,
		Events: []event.Event{
			{EventID: "evt-1", EventName: "Park cleanup", City: "Brno",
				StartDateTime: time.Date(2099, 5, 1, 9, 0, 0, 0, time.UTC),
				EndDateTime:   time.Date(2099, 5, 1, 11, 0, 0, 0, time.UTC)},
			{EventID: "evt-2", EventName: "Food drive", City: "Praha",
				StartDateTime: time.Date(2099, 5, 2, 9, 0, 0, 0, time.UTC),
				EndDateTime:   time.Date(2099, 5, 2, 11, 0, 0, 0, time.UTC)},
		},
	}

	// Handler to verify request and return stubbed JSON
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// method + path
		if r.Method != "GET" {
			t.Errorf("expected GET; got %s", r.Method)
		}
		if r.URL.Path != "/events" {
			t.Errorf("expected path /events; got %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("cities"); got != "Brno" {
			t.Errorf("cities = %q; want Brno", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(wantResp)
	}))
	defer srv.Close()

	client := NewEventsApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.ListEvents(models.EventFilterParams{Cities: []string{"Brno"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].EventID != "evt-1" {
		t.Errorf("EventID = %q; want evt-1", got[0].EventID)
	}
}

func TestGetEvent(t *testing.T) {
	want := event.Event{EventID: "evt-7", EventName: "Shelter dinner", City: "Brno"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/evt-7" {
			t.Errorf("expected path /events/evt-7; got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	client := NewEventsApiClient(api.NewHTTPClient(srv.URL))

	got, err := client.GetEvent("evt-7")
	if err != nil {
		t.Fatal(err)
	}
	if got.EventName != want.EventName {
		t.Errorf("EventName = %q; want %q", got.EventName, want.EventName)
	}
}
