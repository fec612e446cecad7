package history

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ansh7432/MoodScope-Backend/database"
	"github.com/ansh7432/MoodScope-Backend/moodscope"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// HistoryHandler is an http.Handler that lists recent saved analyses.
type HistoryHandler struct {
	log   *zap.SugaredLogger
	store *database.AnalysisStore
}

func (*HistoryHandler) Pattern() string {
	return "/history"
}

// NewHistoryHandler builds a new HistoryHandler.
func NewHistoryHandler(log *zap.SugaredLogger, store *database.AnalysisStore) *HistoryHandler {
	return &HistoryHandler{
		log:   log,
		store: store,
	}
}

type HistoryResponse struct {
	Analyses []moodscope.Analysis `json:"analyses"`
}

// Get analysis history
// @Summary List recent playlist analyses
// @Description Most recent first; limit capped at 50
// @Produce json
// @Param limit query int false "Max analyses to return"
// @Success 200 {object} HistoryResponse
// @Router /history [get]
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.store == nil {
		http.Error(w, `{"error":"analysis history is not enabled"}`, http.StatusServiceUnavailable)
		return
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, `{"error":"invalid limit"}`, http.StatusBadRequest)
			return
		}
		limit = n
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	analyses, err := h.store.Recent(r.Context(), limit)
	if err != nil {
		h.log.Errorw("Failed to list analyses", "error", err)
		http.Error(w, `{"error":"failed to load history"}`, http.StatusInternalServerError)
		return
	}

	resp := HistoryResponse{Analyses: analyses}
	if resp.Analyses == nil {
		resp.Analyses = []moodscope.Analysis{}
	}
	json.NewEncoder(w).Encode(resp)
}
