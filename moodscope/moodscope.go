// Package moodscope holds the shared types exchanged between the
// playlist-fetching layer, the mood-analysis core, and the HTTP handlers.
package moodscope

import "time"

// RawTrack is a track as delivered by the catalog layer, before
// validation. Audio features are pointers because Spotify may not have
// features for every track; nil fields are defaulted by the validator.
type RawTrack struct {
	Name   string
	Artist string
	// Valence is a measure from 0.0 to 1.0 describing the musical positiveness
	// conveyed by a track. Tracks with high valence sound more positive
	// (e.g. happy, cheerful, euphoric), while tracks with low valence sound
	// more negative (e.g. sad, depressed, angry).
	Valence *float64
	// Energy is a measure from 0.0 to 1.0 representing a perceptual measure of
	// intensity and activity. Energetic tracks feel fast, loud, and noisy.
	Energy *float64
	// Danceability describes how suitable a track is for dancing, from 0.0
	// (least danceable) to 1.0 (most danceable).
	Danceability *float64
	// Acousticness is a confidence measure from 0.0 to 1.0 of whether the
	// track is acoustic.
	Acousticness *float64
	// Speechiness detects the presence of spoken words in a track, from 0.0
	// to 1.0.
	Speechiness *float64
	// Instrumentalness predicts whether a track contains no vocals, from 0.0
	// to 1.0.
	Instrumentalness *float64
	// Popularity is Spotify's 0-100 popularity index for the track.
	Popularity *int
}

// Track is one analyzed track: its identifying metadata, the validated
// audio features that went into scoring, and the derived mood fields.
// Immutable once built.
type Track struct {
	Name             string  `json:"name"`
	Artist           string  `json:"artist"`
	Valence          float64 `json:"valence"`
	Energy           float64 `json:"energy"`
	Danceability     float64 `json:"danceability"`
	Acousticness     float64 `json:"acousticness"`
	Speechiness      float64 `json:"speechiness"`
	Instrumentalness float64 `json:"instrumentalness"`
	Popularity       int     `json:"popularity"`

	// MoodScore is a scalar in [0,1] summarizing the perceived emotional
	// positivity and intensity of the track.
	MoodScore float64 `json:"mood_score"`
	// MoodCategory is the discrete mood label for the track.
	MoodCategory string `json:"mood_category"`
}

// MoodSummary aggregates the per-track results of one playlist.
type MoodSummary struct {
	TotalTracks int     `json:"total_tracks"`
	MoodScore   float64 `json:"mood_score"`
	AvgEnergy   float64 `json:"avg_energy"`
	AvgValence  float64 `json:"avg_valence"`
	// EmotionalRange is the population standard deviation of the track mood
	// scores. Low values mean a uniform playlist, high values a varied one.
	EmotionalRange float64 `json:"emotional_range"`
	DominantMood   string  `json:"dominant_mood"`
	// MoodDistribution counts tracks per mood category. Only categories with
	// at least one track appear; the counts sum to TotalTracks.
	MoodDistribution map[string]int `json:"mood_distribution"`
}

// Insights is the rule-selected narrative bundle derived from a
// MoodSummary. Recomputed per request, never persisted.
type Insights struct {
	EmotionalAnalysis string   `json:"emotional_analysis"`
	PersonalityTraits []string `json:"personality_traits"`
	Recommendations   []string `json:"recommendations"`
	MentalHealthTips  []string `json:"mental_health_tips"`
	MoodCoaching      string   `json:"mood_coaching"`
}

// MoodCluster is a group of tracks with similar audio features, labelled
// by the mood of its centroid.
type MoodCluster struct {
	Name     string             `json:"name"`
	Size     int                `json:"size"`
	Tracks   []string           `json:"tracks"`
	Centroid map[string]float64 `json:"centroid"`
}

// Analysis is one saved playlist analysis, as listed by the history
// endpoint.
type Analysis struct {
	ID           int64     `json:"id"`
	PlaylistURL  string    `json:"playlist_url"`
	PlaylistName string    `json:"playlist_name"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
	MoodScore    float64   `json:"mood_score"`
	DominantMood string    `json:"dominant_mood"`
	TotalTracks  int       `json:"total_tracks"`
}
