package mood

import (
	"errors"
	"math"
	"testing"

	"github.com/ansh7432/MoodScope-Backend/moodscope"
)

func testTrack(score, energy, valence float64, category Category) moodscope.Track {
	return moodscope.Track{
		Name:         "t",
		Artist:       "a",
		MoodScore:    score,
		Energy:       energy,
		Valence:      valence,
		MoodCategory: string(category),
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, ErrNoTracks) {
		t.Fatalf("Summarize(nil) error = %v, want ErrNoTracks", err)
	}

	_, err = Summarize([]moodscope.Track{})
	if !errors.Is(err, ErrNoTracks) {
		t.Fatalf("Summarize(empty) error = %v, want ErrNoTracks", err)
	}
}

func TestSummarizeMeans(t *testing.T) {
	tracks := []moodscope.Track{
		testTrack(0.8, 0.9, 0.7, EnergeticHappy),
		testTrack(0.4, 0.3, 0.5, CalmContent),
	}

	got, err := Summarize(tracks)
	if err != nil {
		t.Fatal(err)
	}

	if got.TotalTracks != 2 {
		t.Errorf("TotalTracks = %d, want 2", got.TotalTracks)
	}
	if math.Abs(got.MoodScore-0.6) > 1e-9 {
		t.Errorf("MoodScore = %v, want 0.6", got.MoodScore)
	}
	if math.Abs(got.AvgEnergy-0.6) > 1e-9 {
		t.Errorf("AvgEnergy = %v, want 0.6", got.AvgEnergy)
	}
	if math.Abs(got.AvgValence-0.6) > 1e-9 {
		t.Errorf("AvgValence = %v, want 0.6", got.AvgValence)
	}
}

func TestSummarizeDistribution(t *testing.T) {
	tracks := []moodscope.Track{
		testTrack(0.8, 0.9, 0.7, EnergeticHappy),
		testTrack(0.75, 0.8, 0.7, EnergeticHappy),
		testTrack(0.45, 0.3, 0.5, CalmContent),
	}

	got, err := Summarize(tracks)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]int{
		string(EnergeticHappy): 2,
		string(CalmContent):    1,
	}
	if len(got.MoodDistribution) != len(want) {
		t.Fatalf("MoodDistribution = %v, want %v", got.MoodDistribution, want)
	}
	sum := 0
	for cat, count := range want {
		if got.MoodDistribution[cat] != count {
			t.Errorf("MoodDistribution[%q] = %d, want %d", cat, got.MoodDistribution[cat], count)
		}
	}
	for _, count := range got.MoodDistribution {
		sum += count
	}
	if sum != got.TotalTracks {
		t.Errorf("distribution counts sum to %d, want total_tracks %d", sum, got.TotalTracks)
	}

	if got.DominantMood != string(EnergeticHappy) {
		t.Errorf("DominantMood = %q, want %q", got.DominantMood, EnergeticHappy)
	}
}

// On a count tie the dominant mood must be the category that appears
// earliest in the fixed enumeration, regardless of track order.
func TestSummarizeDominantMoodTieBreak(t *testing.T) {
	tracks := []moodscope.Track{
		testTrack(0.45, 0.3, 0.5, CalmContent),
		testTrack(0.65, 0.4, 0.7, UpbeatPositive),
		testTrack(0.45, 0.3, 0.5, CalmContent),
		testTrack(0.65, 0.4, 0.7, UpbeatPositive),
	}

	// Run repeatedly: a map-iteration-order bug would flake here.
	for i := 0; i < 50; i++ {
		got, err := Summarize(tracks)
		if err != nil {
			t.Fatal(err)
		}
		if got.DominantMood != string(UpbeatPositive) {
			t.Fatalf("DominantMood = %q, want %q (earliest category wins ties)", got.DominantMood, UpbeatPositive)
		}
	}
}

func TestSummarizeEmotionalRange(t *testing.T) {
	single, err := Summarize([]moodscope.Track{testTrack(0.7, 0.7, 0.7, UpbeatPositive)})
	if err != nil {
		t.Fatal(err)
	}
	if single.EmotionalRange != 0 {
		t.Errorf("EmotionalRange for one track = %v, want 0", single.EmotionalRange)
	}

	spread, err := Summarize([]moodscope.Track{
		testTrack(0.2, 0.2, 0.2, SadHeavy),
		testTrack(0.8, 0.8, 0.8, EnergeticHappy),
	})
	if err != nil {
		t.Fatal(err)
	}
	// Population std-dev of {0.2, 0.8} is 0.3.
	if math.Abs(spread.EmotionalRange-0.3) > 1e-9 {
		t.Errorf("EmotionalRange = %v, want 0.3", spread.EmotionalRange)
	}
}

func TestSummarizeNoNaN(t *testing.T) {
	got, err := Summarize([]moodscope.Track{testTrack(0.5, 0.5, 0.5, BalancedSteady)})
	if err != nil {
		t.Fatal(err)
	}
	for name, v := range map[string]float64{
		"mood_score":      got.MoodScore,
		"avg_energy":      got.AvgEnergy,
		"avg_valence":     got.AvgValence,
		"emotional_range": got.EmotionalRange,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v, want finite", name, v)
		}
	}
}
