package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"vh-server/models"
	services "vh-server/service"
)

// EventHandler serves the discovery endpoints: flat list, search, feed,
// bucket expansion and single-event selection.
type EventHandler struct {
	discoveryService *services.DiscoveryService
	sessionService   *services.FilterSessionService
}

func NewEventHandler(
	discoveryService *services.DiscoveryService,
	sessionService *services.FilterSessionService) *EventHandler {
	return &EventHandler{
		discoveryService: discoveryService,
		sessionService:   sessionService,
	}
}

// GetEvents handles GET /v1/events
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	params := models.ParseEventFilterParams(r.URL.Query())
	filters, sortKey := h.resolveSelection(params)

	events, err := h.discoveryService.ListEvents(filters, sortKey, viewerLocation(params))
	if err != nil {
		log.Println("Error listing events:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, events)
}

// SearchEvents handles GET /v1/events/search. Unlike GetEvents this records
// the query into the search history.
func (h *EventHandler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	params := models.ParseEventFilterParams(r.URL.Query())
	filters, sortKey := h.resolveSelection(params)

	events, err := h.discoveryService.Search(filters, sortKey, params.Query, viewerLocation(params))
	if err != nil {
		log.Println("Error searching events:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, events)
}

// GetFeed handles GET /v1/events/feed
func (h *EventHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	params := models.ParseEventFilterParams(r.URL.Query())
	filters, _ := h.resolveSelection(params)

	buckets, err := h.discoveryService.Feed(filters, viewerLocation(params))
	if err != nil {
		log.Println("Error building feed:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, buckets)
}

// ExpandBucket handles GET /v1/events/feed/{bucket}
func (h *EventHandler) ExpandBucket(w http.ResponseWriter, r *http.Request) {
	bucketID := mux.Vars(r)["bucket"]
	params := models.ParseEventFilterParams(r.URL.Query())
	filters, _ := h.resolveSelection(params)

	// Only an explicit sort arg re-orders the expansion; otherwise the
	// bucket's default order stands.
	sortKey := models.SortKey(params.Sort)

	events, err := h.discoveryService.ExpandBucket(bucketID, filters, sortKey, viewerLocation(params))
	if err != nil {
		log.Println("Error expanding bucket:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if events == nil {
		http.Error(w, "Unknown bucket "+bucketID, http.StatusNotFound)
		return
	}

	writeJSON(w, events)
}

// GetEvent handles GET /v1/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	e, err := h.discoveryService.GetEvent(eventID)
	if err != nil {
		log.Printf("Event %s not found: %v", eventID, err)
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	writeJSON(w, e)
}

// Ping handles GET /ping
func (h *EventHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

// resolveSelection picks the governing filter set: a known session's applied
// selection when a session id is sent, otherwise the explicit query args. An
// explicit sort arg always wins.
func (h *EventHandler) resolveSelection(params models.EventFilterParams) (models.FilterSet, models.SortKey) {
	filters, sortKey := params.ToFilterSet()
	if params.Session != "" {
		filters, sortKey = h.sessionService.Applied(params.Session)
		if params.Sort != "" {
			_, explicit := params.ToFilterSet()
			sortKey = explicit
		}
	}
	return filters, sortKey
}

func viewerLocation(params models.EventFilterParams) *services.Location {
	if params.Lat == nil || params.Lon == nil {
		return nil
	}
	return &services.Location{Lat: *params.Lat, Lon: *params.Lon}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
