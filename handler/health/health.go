package health

import (
	"encoding/json"
	"net/http"

	"github.com/ansh7432/MoodScope-Backend/database"
	"github.com/ansh7432/MoodScope-Backend/spotify"
	"go.uber.org/zap"
)

// HealthHandler is an http.Handler reporting which collaborators are
// configured.
type HealthHandler struct {
	log           *zap.SugaredLogger
	spotifyClient *spotify.SpotifyClient
	store         *database.AnalysisStore
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, spotifyClient *spotify.SpotifyClient, store *database.AnalysisStore) *HealthHandler {
	return &HealthHandler{
		log:           log,
		spotifyClient: spotifyClient,
		store:         store,
	}
}

type Response struct {
	Server   bool `json:"server"`
	Spotify  bool `json:"spotify"`
	Database bool `json:"database"`
}

// Health check
// @Summary Health check
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var resp Response

	h.log.Info("health check")

	resp.Server = true

	// Make sure Spotify client is set up properly
	if h.spotifyClient.ID != "" && h.spotifyClient.Secret != "" {
		resp.Spotify = true
	}

	resp.Database = h.store != nil

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
