package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/ansh7432/MoodScope-Backend/moodscope"
	"go.uber.org/zap"
)

const analysesSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id            BIGSERIAL PRIMARY KEY,
	playlist_url  TEXT NOT NULL,
	playlist_name TEXT NOT NULL,
	analyzed_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	mood_score    DOUBLE PRECISION NOT NULL,
	dominant_mood TEXT NOT NULL,
	total_tracks  INTEGER NOT NULL,
	analysis_data JSONB NOT NULL
)`

// AnalysisStore persists one row per completed playlist analysis.
type AnalysisStore struct {
	db *sql.DB
}

// NewAnalysisStore builds an AnalysisStore on an open database handle.
func NewAnalysisStore(db *sql.DB) *AnalysisStore {
	return &AnalysisStore{db: db}
}

// EnsureSchema creates the analyses table if it does not exist.
func (s *AnalysisStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, analysesSchema)
	return err
}

// Save records a completed analysis. result is the full response object,
// stored as JSON alongside the summary columns.
func (s *AnalysisStore) Save(ctx context.Context, a moodscope.Analysis, result any) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (playlist_url, playlist_name, analyzed_at, mood_score, dominant_mood, total_tracks, analysis_data)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.PlaylistURL, a.PlaylistName, time.Now().UTC(), a.MoodScore, a.DominantMood, a.TotalTracks, data)
	return err
}

// Recent returns the newest analyses, most recent first.
func (s *AnalysisStore) Recent(ctx context.Context, limit int) ([]moodscope.Analysis, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, playlist_url, playlist_name, analyzed_at, mood_score, dominant_mood, total_tracks
		 FROM analyses ORDER BY analyzed_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []moodscope.Analysis
	for rows.Next() {
		var a moodscope.Analysis
		if err := rows.Scan(&a.ID, &a.PlaylistURL, &a.PlaylistName, &a.AnalyzedAt, &a.MoodScore, &a.DominantMood, &a.TotalTracks); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ProvideAnalysisStore provides the analysis history store. Returns nil
// when the database is not configured; callers treat a nil store as
// history-disabled.
func ProvideAnalysisStore(logger *zap.SugaredLogger, db *sql.DB) (*AnalysisStore, error) {
	if db == nil {
		return nil, nil
	}

	store := NewAnalysisStore(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		logger.Error("Failed to ensure analyses schema", zap.Error(err))
		return nil, err
	}
	return store, nil
}

var StoreOptions = ProvideAnalysisStore
