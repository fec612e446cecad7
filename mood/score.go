// Package mood implements the playlist mood-analysis core: feature
// validation, per-track scoring, playlist aggregation, and insight
// selection. Everything here is a pure function over in-memory values;
// the package does no I/O and holds no state between calls.
package mood

import "github.com/ansh7432/MoodScope-Backend/moodscope"

// Category is a discrete mood label for a track or playlist.
type Category string

const (
	EnergeticHappy           Category = "Energetic & Happy"
	UpbeatPositive           Category = "Upbeat & Positive"
	CalmContent              Category = "Calm & Content"
	BalancedSteady           Category = "Balanced & Steady"
	MelancholicIntrospective Category = "Melancholic & Introspective"
	SadHeavy                 Category = "Sad & Heavy"
)

// Categories lists every mood category in priority order. Categorize
// evaluates its bands in this order, and Summarize breaks dominant-mood
// ties with it. Never depend on map iteration order for either.
var Categories = []Category{
	EnergeticHappy,
	UpbeatPositive,
	CalmContent,
	BalancedSteady,
	MelancholicIntrospective,
	SadHeavy,
}

// Scoring weights. The mood score is a weighted sum of valence and
// energy; the weights sum to 1.0 so clamped inputs always yield a score
// in [0,1]. These constants are a versioned contract: changing them
// changes every stored score.
const (
	WeightValence = 0.6
	WeightEnergy  = 0.4
)

// Score computes the mood score for a validated feature vector.
func Score(f Features) float64 {
	return WeightValence*f.Valence + WeightEnergy*f.Energy
}

// Categorize maps a mood score and energy level to a mood category.
// The bands are evaluated first-match-wins, so every (score, energy)
// pair maps to exactly one category.
func Categorize(score, energy float64) Category {
	switch {
	case score >= 0.7 && energy >= 0.7:
		return EnergeticHappy
	case score >= 0.6:
		return UpbeatPositive
	case score >= 0.4 && energy < 0.5:
		return CalmContent
	case score >= 0.4:
		return BalancedSteady
	case score >= 0.2:
		return MelancholicIntrospective
	default:
		return SadHeavy
	}
}

// ScoreTrack validates a raw track and returns its analyzed result.
// A track with no features at all still scores: every field defaults to
// its neutral value, which lands on the Balanced & Steady category.
func ScoreTrack(raw moodscope.RawTrack) moodscope.Track {
	f := Validate(raw)
	score := Score(f)

	return moodscope.Track{
		Name:             raw.Name,
		Artist:           raw.Artist,
		Valence:          f.Valence,
		Energy:           f.Energy,
		Danceability:     f.Danceability,
		Acousticness:     f.Acousticness,
		Speechiness:      f.Speechiness,
		Instrumentalness: f.Instrumentalness,
		Popularity:       f.Popularity,
		MoodScore:        score,
		MoodCategory:     string(Categorize(score, f.Energy)),
	}
}
