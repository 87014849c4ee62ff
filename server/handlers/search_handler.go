package handlers

import (
	"net/http"

	services "vh-server/service"
)

// SearchHandler serves the recent-searches affordance.
type SearchHandler struct {
	discoveryService *services.DiscoveryService
}

func NewSearchHandler(discoveryService *services.DiscoveryService) *SearchHandler {
	return &SearchHandler{discoveryService: discoveryService}
}

// GetHistory handles GET /v1/search/history. Suggestions are only returned
// while the viewer's current query (q) is still blank.
func (h *SearchHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	current := r.URL.Query().Get("q")

	suggestions := h.discoveryService.Suggestions(current)
	if suggestions == nil {
		suggestions = []string{}
	}

	writeJSON(w, map[string][]string{"history": suggestions})
}
