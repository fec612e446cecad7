package mood

import "github.com/ansh7432/MoodScope-Backend/moodscope"

// Neutral defaults for missing feature fields. A missing fractional
// feature says nothing either way, so it sits at the midpoint; a missing
// popularity means Spotify has no signal for the track.
const (
	defaultFeature    = 0.5
	defaultPopularity = 0
)

// Features is a validated audio-feature vector: every fractional field
// clamped into [0,1], popularity into [0,100].
type Features struct {
	Valence          float64
	Energy           float64
	Danceability     float64
	Acousticness     float64
	Speechiness      float64
	Instrumentalness float64
	Popularity       int
}

// Validate clamps and defaults a raw track's features. Out-of-range and
// missing values are a data-quality condition, not an error: upstream
// feature data is not guaranteed clean, and dropping a track here would
// corrupt the total_tracks invariant downstream.
func Validate(raw moodscope.RawTrack) Features {
	return Features{
		Valence:          clampFeature(raw.Valence),
		Energy:           clampFeature(raw.Energy),
		Danceability:     clampFeature(raw.Danceability),
		Acousticness:     clampFeature(raw.Acousticness),
		Speechiness:      clampFeature(raw.Speechiness),
		Instrumentalness: clampFeature(raw.Instrumentalness),
		Popularity:       clampPopularity(raw.Popularity),
	}
}

func clampFeature(v *float64) float64 {
	if v == nil {
		return defaultFeature
	}
	return clamp(*v, 0, 1)
}

func clampPopularity(v *int) int {
	if v == nil {
		return defaultPopularity
	}
	if *v < 0 {
		return 0
	}
	if *v > 100 {
		return 100
	}
	return *v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
