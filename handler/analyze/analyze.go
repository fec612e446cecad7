package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ansh7432/MoodScope-Backend/cluster"
	"github.com/ansh7432/MoodScope-Backend/database"
	"github.com/ansh7432/MoodScope-Backend/mood"
	"github.com/ansh7432/MoodScope-Backend/moodscope"
	"github.com/ansh7432/MoodScope-Backend/spotify"
)

// AnalyzeHandler is an http.Handler that runs the full playlist mood
// analysis pipeline.
type AnalyzeHandler struct {
	log     *zap.SugaredLogger
	fetcher spotify.PlaylistFetcher
	store   *database.AnalysisStore
}

func (*AnalyzeHandler) Pattern() string {
	return "/analyze"
}

// NewAnalyzeHandler builds a new AnalyzeHandler. store may be nil, in
// which case analyses are not persisted.
func NewAnalyzeHandler(log *zap.SugaredLogger, fetcher spotify.PlaylistFetcher, store *database.AnalysisStore) *AnalyzeHandler {
	return &AnalyzeHandler{
		log:     log,
		fetcher: fetcher,
		store:   store,
	}
}

type AnalyzeRequest struct {
	PlaylistURL string `json:"playlist_url"`
}

type AnalyzeResponse struct {
	PlaylistName string                  `json:"playlist_name"`
	Tracks       []moodscope.Track       `json:"tracks"`
	MoodSummary  moodscope.MoodSummary   `json:"mood_summary"`
	AIInsights   moodscope.Insights      `json:"ai_insights"`
	MoodClusters []moodscope.MoodCluster `json:"mood_clusters,omitempty"`
}

// Analyze a playlist
// @Summary Analyze a playlist's mood
// @Description Fetch a public Spotify playlist, score each track's mood, and return summary statistics and insights
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Playlist URL"
// @Success 200 {object} AnalyzeResponse
// @Router /analyze [post]
func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	playlistID, err := spotify.ExtractPlaylistID(req.PlaylistURL)
	if err != nil {
		http.Error(w, `{"error":"invalid or missing playlist URL"}`, http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	name, raw, err := h.fetcher.PlaylistTracks(ctx, playlistID)
	if err != nil {
		h.log.Errorw("Failed to fetch playlist", "playlist_id", playlistID, "error", err)
		http.Error(w, `{"error":"could not fetch playlist from Spotify; make sure it is public"}`, http.StatusBadGateway)
		return
	}

	resp, err := buildAnalysis(name, raw)
	if err != nil {
		if errors.Is(err, mood.ErrNoTracks) {
			http.Error(w, `{"error":"playlist has no tracks to analyze"}`, http.StatusUnprocessableEntity)
			return
		}
		h.log.Errorw("Analysis failed", "playlist_id", playlistID, "error", err)
		http.Error(w, `{"error":"analysis failed"}`, http.StatusInternalServerError)
		return
	}

	h.log.Infow("Analyzed playlist",
		"playlist_id", playlistID,
		"tracks", resp.MoodSummary.TotalTracks,
		"dominant_mood", resp.MoodSummary.DominantMood,
	)

	h.saveAnalysis(ctx, req.PlaylistURL, resp)

	json.NewEncoder(w).Encode(resp)
}

// buildAnalysis runs the pure pipeline: validate and score each track,
// aggregate, select insights, detect clusters.
func buildAnalysis(playlistName string, raw []moodscope.RawTrack) (*AnalyzeResponse, error) {
	tracks := make([]moodscope.Track, 0, len(raw))
	for _, rt := range raw {
		tracks = append(tracks, mood.ScoreTrack(rt))
	}

	summary, err := mood.Summarize(tracks)
	if err != nil {
		return nil, err
	}

	return &AnalyzeResponse{
		PlaylistName: playlistName,
		Tracks:       tracks,
		MoodSummary:  summary,
		AIInsights:   mood.SelectInsights(summary),
		MoodClusters: cluster.Detect(tracks, cluster.DefaultConfig()),
	}, nil
}

// saveAnalysis persists the result when history is enabled. A storage
// failure is logged but never fails the request.
func (h *AnalyzeHandler) saveAnalysis(ctx context.Context, playlistURL string, resp *AnalyzeResponse) {
	if h.store == nil {
		return
	}

	err := h.store.Save(ctx, moodscope.Analysis{
		PlaylistURL:  playlistURL,
		PlaylistName: resp.PlaylistName,
		MoodScore:    resp.MoodSummary.MoodScore,
		DominantMood: resp.MoodSummary.DominantMood,
		TotalTracks:  resp.MoodSummary.TotalTracks,
	}, resp)
	if err != nil {
		h.log.Errorw("Failed to save analysis", "error", err)
	}
}
