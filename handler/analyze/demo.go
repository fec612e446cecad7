package analyze

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ansh7432/MoodScope-Backend/moodscope"
)

// DemoHandler serves a canned playlist through the real analysis
// pipeline, so the frontend can be exercised without Spotify
// credentials.
type DemoHandler struct {
	log *zap.SugaredLogger
}

func (*DemoHandler) Pattern() string {
	return "/analyze/demo"
}

// NewDemoHandler builds a new DemoHandler.
func NewDemoHandler(log *zap.SugaredLogger) *DemoHandler {
	return &DemoHandler{log: log}
}

// Demo analysis
// @Summary Analyze the built-in demo playlist
// @Description Run the mood analysis pipeline over fixture tracks
// @Produce json
// @Success 200 {object} AnalyzeResponse
// @Router /analyze/demo [get]
func (h *DemoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := buildAnalysis("MoodScope Demo Mix", DemoTracks())
	if err != nil {
		h.log.Errorw("Demo analysis failed", "error", err)
		http.Error(w, `{"error":"analysis failed"}`, http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(resp)
}

// DemoTracks returns the fixture playlist. The vectors span the mood
// categories so the demo response shows a realistic distribution.
func DemoTracks() []moodscope.RawTrack {
	return []moodscope.RawTrack{
		demoTrack("Blinding Lights", "The Weeknd", 0.85, 0.9, 0.75, 0.05, 0.06, 0.0, 92),
		demoTrack("Levitating", "Dua Lipa", 0.82, 0.84, 0.88, 0.03, 0.07, 0.0, 88),
		demoTrack("Good as Hell", "Lizzo", 0.78, 0.81, 0.71, 0.12, 0.11, 0.0, 80),
		demoTrack("Weightless", "Marconi Union", 0.2, 0.1, 0.25, 0.92, 0.03, 0.95, 55),
		demoTrack("Holocene", "Bon Iver", 0.25, 0.3, 0.35, 0.78, 0.04, 0.12, 70),
		demoTrack("Someone Like You", "Adele", 0.28, 0.34, 0.5, 0.89, 0.03, 0.0, 85),
		demoTrack("Breathe Me", "Sia", 0.18, 0.25, 0.42, 0.7, 0.04, 0.01, 68),
		demoTrack("Here Comes the Sun", "The Beatles", 0.72, 0.54, 0.56, 0.34, 0.04, 0.0, 83),
	}
}

func demoTrack(name, artist string, valence, energy, dance, acoustic, speech, instrumental float64, popularity int) moodscope.RawTrack {
	return moodscope.RawTrack{
		Name:             name,
		Artist:           artist,
		Valence:          &valence,
		Energy:           &energy,
		Danceability:     &dance,
		Acousticness:     &acoustic,
		Speechiness:      &speech,
		Instrumentalness: &instrumental,
		Popularity:       &popularity,
	}
}
