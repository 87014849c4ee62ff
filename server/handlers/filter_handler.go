package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vh-server/discovery"
	"vh-server/models"
	services "vh-server/service"
)

// FilterHandler mutates a viewer's filter draft and reconciles it into the
// applied selection. Every route carries the session id.
type FilterHandler struct {
	sessionService *services.FilterSessionService
}

func NewFilterHandler(sessionService *services.FilterSessionService) *FilterHandler {
	return &FilterHandler{sessionService: sessionService}
}

func (h *FilterHandler) session(r *http.Request) *discovery.FilterSession {
	return h.sessionService.GetOrCreate(mux.Vars(r)["session"])
}

// ToggleCity handles POST /v1/filters/{session}/cities/{city}
func (h *FilterHandler) ToggleCity(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	session.ToggleCity(mux.Vars(r)["city"])
	writeJSON(w, session.Draft())
}

// ToggleRating handles POST /v1/filters/{session}/rating/{value}
func (h *FilterHandler) ToggleRating(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.ParseFloat(mux.Vars(r)["value"], 64)
	if err != nil {
		http.Error(w, "Invalid rating value", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	session.ToggleRating(value)
	writeJSON(w, session.Draft())
}

// ToggleDurationPreset handles POST /v1/filters/{session}/duration/{preset}
func (h *FilterHandler) ToggleDurationPreset(w http.ResponseWriter, r *http.Request) {
	preset := models.DurationPreset(mux.Vars(r)["preset"])
	if !models.KnownDurationPreset(preset) {
		http.Error(w, "Unknown duration preset", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	session.ToggleDurationPreset(preset)
	writeJSON(w, session.Draft())
}

// ToggleCustomDuration handles POST /v1/filters/{session}/duration/custom
// expecting ?min={minutes}&max={minutes}
func (h *FilterHandler) ToggleCustomDuration(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	min, errMin := strconv.Atoi(vals.Get("min"))
	max, errMax := strconv.Atoi(vals.Get("max"))
	if errMin != nil || errMax != nil || min < 0 || max < min {
		http.Error(w, "Invalid custom duration range", http.StatusBadRequest)
		return
	}

	session := h.session(r)
	session.ToggleCustomDuration(min, max)
	writeJSON(w, session.Draft())
}

// SetSort handles POST /v1/filters/{session}/sort/{key}
func (h *FilterHandler) SetSort(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	session.SetSort(models.SortKey(mux.Vars(r)["key"]))
	writeJSON(w, session.Draft())
}

// Accept handles POST /v1/filters/{session}/accept
func (h *FilterHandler) Accept(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	applied, sortKey := session.Accept()
	writeJSON(w, map[string]interface{}{
		"applied": applied,
		"sort":    sortKey,
	})
}

// Clear handles POST /v1/filters/{session}/clear
func (h *FilterHandler) Clear(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	session.Clear()
	writeJSON(w, session.Draft())
}

// GetState handles GET /v1/filters/{session}
func (h *FilterHandler) GetState(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	applied, sortKey := session.Applied()
	writeJSON(w, map[string]interface{}{
		"draft":   session.Draft(),
		"applied": applied,
		"sort":    sortKey,
	})
}
