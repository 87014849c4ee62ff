package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"vh-server/dao/redis"
	"vh-server/db"
	"vh-server/discovery"
	"vh-server/history"
	"vh-server/models"
	"vh-server/models/event"
	"vh-server/models/user"
	"vh-server/server"
	services "vh-server/service"
)

// stubEventsAPI returns a fixed snapshot.
type stubEventsAPI struct {
	events []event.Event
	err    error
}

func (s *stubEventsAPI) ListEvents(params models.EventFilterParams) ([]event.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]event.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *stubEventsAPI) GetEvent(eventID string) (*event.Event, error) {
	for i := range s.events {
		if s.events[i].EventID == eventID {
			return &s.events[i], nil
		}
	}
	return nil, errors.New("event not found")
}

func futureEvent(id, city string, daysAhead int, duration time.Duration, rating *float64, price float64) event.Event {
	start := time.Now().Add(time.Duration(daysAhead) * 24 * time.Hour)
	return event.Event{
		EventID:       id,
		EventName:     "Event " + id,
		City:          city,
		StartDateTime: start,
		EndDateTime:   start.Add(duration),
		Price:         price,
		Creator:       user.Summary{UserID: "creator-" + id, PointsAsCreator: rating},
	}
}

// newTestRouter wires the real handler stack over a stub event service and a
// mock Redis.
func newTestRouter(api *stubEventsAPI) (*mux.Router, *history.Store, *services.FilterSessionService) {
	mockClient := db.NewMockRedisClient(context.Background())
	eventDao := redis.NewRedisEventDAO(mockClient)
	historyStore := history.NewStore(redis.NewRedisSearchHistoryDAO(mockClient))

	discoveryService := services.NewDiscoveryService(api, eventDao, historyStore)
	sessionService := services.NewFilterSessionService()

	muxRouter := mux.NewRouter()
	appRouter := server.NewRouter(
		NewEventHandler(discoveryService, sessionService),
		NewSearchHandler(discoveryService),
		NewFilterHandler(sessionService),
		muxRouter)
	appRouter.RegisterRoutes()

	return muxRouter, historyStore, sessionService
}

func doRequest(router *mux.Router, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeEvents(t *testing.T, rr *httptest.ResponseRecorder) []event.Event {
	t.Helper()
	var events []event.Event
	if err := json.Unmarshal(rr.Body.Bytes(), &events); err != nil {
		t.Fatalf("Failed to decode events: %v", err)
	}
	return events
}

func TestGetEvents_FlatList(t *testing.T) {
	rating := 4.5
	api := &stubEventsAPI{events: []event.Event{
		futureEvent("e1", "Brno", 2, 90*time.Minute, &rating, 60),
		futureEvent("e2", "Praha", 1, 90*time.Minute, &rating, 40),
	}}
	router, _, _ := newTestRouter(api)

	rr := doRequest(router, "GET", "/v1/events?sort=date")
	assert.Equal(t, http.StatusOK, rr.Code)

	events := decodeEvents(t, rr)
	assert.Len(t, events, 2)
	assert.Equal(t, "e2", events[0].EventID, "date sort puts the sooner event first")
}

func TestGetEvents_CityFilterQueryArg(t *testing.T) {
	api := &stubEventsAPI{events: []event.Event{
		futureEvent("e1", "Brno", 2, time.Hour, nil, 60),
		futureEvent("e2", "Praha", 1, time.Hour, nil, 60),
	}}
	router, _, _ := newTestRouter(api)

	rr := doRequest(router, "GET", "/v1/events?cities=Brno")
	events := decodeEvents(t, rr)
	assert.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].EventID)
}

func TestSearchEvents_RecordsHistory(t *testing.T) {
	api := &stubEventsAPI{events: []event.Event{
		futureEvent("e1", "Brno", 2, time.Hour, nil, 60),
	}}
	router, historyStore, _ := newTestRouter(api)

	rr := doRequest(router, "GET", "/v1/events/search?q=Event")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeEvents(t, rr), 1)
	assert.Equal(t, []string{"Event"}, historyStore.Entries())

	// Plain listing leaves history alone.
	_ = doRequest(router, "GET", "/v1/events")
	assert.Equal(t, []string{"Event"}, historyStore.Entries())
}

func TestGetHistory_OnlyWhileQueryBlank(t *testing.T) {
	api := &stubEventsAPI{events: []event.Event{
		futureEvent("e1", "Brno", 2, time.Hour, nil, 60),
	}}
	router, _, _ := newTestRouter(api)

	_ = doRequest(router, "GET", "/v1/events/search?q=park")

	rr := doRequest(router, "GET", "/v1/search/history")
	assert.JSONEq(t, `{"history":["park"]}`, rr.Body.String())

	rr = doRequest(router, "GET", "/v1/search/history?q=pa")
	assert.JSONEq(t, `{"history":[]}`, rr.Body.String())
}

func TestGetFeed_ReturnsBuckets(t *testing.T) {
	var snapshot []event.Event
	for i := 0; i < 6; i++ {
		snapshot = append(snapshot, futureEvent(string(rune('a'+i)), "Brno", i+1, time.Hour, nil, 80))
	}
	router, _, _ := newTestRouter(&stubEventsAPI{events: snapshot})

	rr := doRequest(router, "GET", "/v1/events/feed")
	assert.Equal(t, http.StatusOK, rr.Code)

	var buckets []discovery.Bucket
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &buckets))

	ids := make([]string, len(buckets))
	for i, b := range buckets {
		ids[i] = b.ID
	}
	assert.Contains(t, ids, discovery.BUCKET_MANY_POINTS)
	assert.Contains(t, ids, discovery.BUCKET_ALL)
}

func TestExpandBucket_UnknownBucket(t *testing.T) {
	router, _, _ := newTestRouter(&stubEventsAPI{})

	rr := doRequest(router, "GET", "/v1/events/feed/trending")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetEvent_Selection(t *testing.T) {
	api := &stubEventsAPI{events: []event.Event{
		futureEvent("e1", "Brno", 2, time.Hour, nil, 60),
	}}
	router, _, _ := newTestRouter(api)

	rr := doRequest(router, "GET", "/v1/events/e1")
	assert.Equal(t, http.StatusOK, rr.Code)

	var e event.Event
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	assert.Equal(t, "Event e1", e.EventName)

	rr = doRequest(router, "GET", "/v1/events/missing")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetEvents_EventServiceDown(t *testing.T) {
	router, _, _ := newTestRouter(&stubEventsAPI{err: errors.New("down")})

	rr := doRequest(router, "GET", "/v1/events")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestFilterSessionFlow_AcceptGovernsListing(t *testing.T) {
	api := &stubEventsAPI{events: []event.Event{
		futureEvent("e1", "Brno", 2, time.Hour, nil, 60),
		futureEvent("e2", "Praha", 1, time.Hour, nil, 60),
	}}
	router, _, _ := newTestRouter(api)

	// Build and accept a draft selecting Brno.
	rr := doRequest(router, "POST", "/v1/filters/sess-1/cities/Brno")
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = doRequest(router, "POST", "/v1/filters/sess-1/accept")
	assert.Equal(t, http.StatusOK, rr.Code)

	events := decodeEvents(t, doRequest(router, "GET", "/v1/events?session=sess-1"))
	assert.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].EventID)

	// Clear resets the applied selection.
	_ = doRequest(router, "POST", "/v1/filters/sess-1/clear")
	events = decodeEvents(t, doRequest(router, "GET", "/v1/events?session=sess-1"))
	assert.Len(t, events, 2)
}

func TestFilterHandler_Validation(t *testing.T) {
	router, _, _ := newTestRouter(&stubEventsAPI{})

	rr := doRequest(router, "POST", "/v1/filters/sess-1/rating/high")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(router, "POST", "/v1/filters/sess-1/duration/fortnight")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doRequest(router, "POST", "/v1/filters/sess-1/duration/custom?min=90&max=30")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFilterHandler_GetState(t *testing.T) {
	router, _, sessionService := newTestRouter(&stubEventsAPI{})

	_ = doRequest(router, "POST", "/v1/filters/sess-1/rating/4.2")
	rr := doRequest(router, "GET", "/v1/filters/sess-1")
	assert.Equal(t, http.StatusOK, rr.Code)

	var state struct {
		Draft discovery.DraftState `json:"draft"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &state))
	assert.Equal(t, 4.2, *state.Draft.RatingMin)

	// Applied stays empty until accept.
	applied, _ := sessionService.Applied("sess-1")
	assert.Equal(t, models.FilterSet{}, applied)
}
