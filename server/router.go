package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// EventRoutes is the surface the router needs from the event handler.
type EventRoutes interface {
	GetEvents(w http.ResponseWriter, r *http.Request)
	SearchEvents(w http.ResponseWriter, r *http.Request)
	GetFeed(w http.ResponseWriter, r *http.Request)
	ExpandBucket(w http.ResponseWriter, r *http.Request)
	GetEvent(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

// SearchRoutes is the surface the router needs from the search handler.
type SearchRoutes interface {
	GetHistory(w http.ResponseWriter, r *http.Request)
}

// FilterRoutes is the surface the router needs from the filter handler.
type FilterRoutes interface {
	ToggleCity(w http.ResponseWriter, r *http.Request)
	ToggleRating(w http.ResponseWriter, r *http.Request)
	ToggleDurationPreset(w http.ResponseWriter, r *http.Request)
	ToggleCustomDuration(w http.ResponseWriter, r *http.Request)
	SetSort(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
	GetState(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	eventHandler  EventRoutes
	searchHandler SearchRoutes
	filterHandler FilterRoutes
	router        *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	eventHandler EventRoutes,
	searchHandler SearchRoutes,
	filterHandler FilterRoutes,
	router *mux.Router) *Router {
	return &Router{
		eventHandler:  eventHandler,
		searchHandler: searchHandler,
		filterHandler: filterHandler,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.eventHandler.Ping).Methods("GET")

	// expects filter/sort/search query args, see models.EventFilterParams
	r.router.HandleFunc("/v1/events/search", r.eventHandler.SearchEvents).Methods("GET")
	r.router.HandleFunc("/v1/events/feed", r.eventHandler.GetFeed).Methods("GET")
	r.router.HandleFunc("/v1/events/feed/{bucket}", r.eventHandler.ExpandBucket).Methods("GET")
	r.router.HandleFunc("/v1/events/{id}", r.eventHandler.GetEvent).Methods("GET")
	r.router.HandleFunc("/v1/events", r.eventHandler.GetEvents).Methods("GET")

	r.router.HandleFunc("/v1/search/history", r.searchHandler.GetHistory).Methods("GET")

	r.router.HandleFunc("/v1/filters/{session}/cities/{city}", r.filterHandler.ToggleCity).Methods("POST")
	r.router.HandleFunc("/v1/filters/{session}/rating/{value}", r.filterHandler.ToggleRating).Methods("POST")
	r.router.HandleFunc("/v1/filters/{session}/duration/custom", r.filterHandler.ToggleCustomDuration).Methods("POST")
	r.router.HandleFunc("/v1/filters/{session}/duration/{preset}", r.filterHandler.ToggleDurationPreset).Methods("POST")
	r.router.HandleFunc("/v1/filters/{session}/sort/{key}", r.filterHandler.SetSort).Methods("POST")
	r.router.HandleFunc("/v1/filters/{session}/accept", r.filterHandler.Accept).Methods("POST")
	r.router.HandleFunc("/v1/filters/{session}/clear", r.filterHandler.Clear).Methods("POST")
	r.router.HandleFunc("/v1/filters/{session}", r.filterHandler.GetState).Methods("GET")
}
