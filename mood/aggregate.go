package mood

import (
	"errors"
	"math"

	"github.com/ansh7432/MoodScope-Backend/moodscope"
)

// ErrNoTracks is returned by Summarize when the track list is empty.
// An empty playlist is a structural failure for the caller to surface,
// never a zeroed or NaN summary.
var ErrNoTracks = errors.New("mood: no tracks to summarize")

// Summarize reduces a non-empty sequence of analyzed tracks to one
// playlist-level summary.
func Summarize(tracks []moodscope.Track) (moodscope.MoodSummary, error) {
	if len(tracks) == 0 {
		return moodscope.MoodSummary{}, ErrNoTracks
	}

	var scoreSum, energySum, valenceSum float64
	dist := make(map[string]int, len(Categories))
	for _, t := range tracks {
		scoreSum += t.MoodScore
		energySum += t.Energy
		valenceSum += t.Valence
		dist[t.MoodCategory]++
	}

	n := float64(len(tracks))
	meanScore := scoreSum / n

	var sqSum float64
	for _, t := range tracks {
		d := t.MoodScore - meanScore
		sqSum += d * d
	}

	return moodscope.MoodSummary{
		TotalTracks:      len(tracks),
		MoodScore:        meanScore,
		AvgEnergy:        energySum / n,
		AvgValence:       valenceSum / n,
		EmotionalRange:   math.Sqrt(sqSum / n),
		DominantMood:     string(dominant(dist)),
		MoodDistribution: dist,
	}, nil
}

// dominant returns the category with the highest count. Ties go to the
// category that appears earliest in Categories; scanning that slice
// instead of the map keeps the result independent of map order.
func dominant(dist map[string]int) Category {
	best := Categories[0]
	bestCount := 0
	for _, c := range Categories {
		if count := dist[string(c)]; count > bestCount {
			best = c
			bestCount = count
		}
	}
	return best
}
