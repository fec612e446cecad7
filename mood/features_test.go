package mood

import (
	"testing"

	"github.com/ansh7432/MoodScope-Backend/moodscope"
)

func TestValidateClampsOutOfRange(t *testing.T) {
	raw := moodscope.RawTrack{
		Valence:    floatPtr(1.7),
		Energy:     floatPtr(-0.3),
		Popularity: intPtr(140),
	}

	got := Validate(raw)

	if got.Valence != 1.0 {
		t.Errorf("Valence = %v, want clamped 1.0", got.Valence)
	}
	if got.Energy != 0.0 {
		t.Errorf("Energy = %v, want clamped 0.0", got.Energy)
	}
	if got.Popularity != 100 {
		t.Errorf("Popularity = %d, want clamped 100", got.Popularity)
	}
}

func TestValidateDefaultsMissing(t *testing.T) {
	got := Validate(moodscope.RawTrack{})

	for name, v := range map[string]float64{
		"valence":          got.Valence,
		"energy":           got.Energy,
		"danceability":     got.Danceability,
		"acousticness":     got.Acousticness,
		"speechiness":      got.Speechiness,
		"instrumentalness": got.Instrumentalness,
	} {
		if v != defaultFeature {
			t.Errorf("%s = %v, want neutral default %v", name, v, defaultFeature)
		}
	}
	if got.Popularity != defaultPopularity {
		t.Errorf("popularity = %d, want %d", got.Popularity, defaultPopularity)
	}
}

func TestValidateNegativePopularity(t *testing.T) {
	got := Validate(moodscope.RawTrack{Popularity: intPtr(-5)})
	if got.Popularity != 0 {
		t.Errorf("Popularity = %d, want 0", got.Popularity)
	}
}

func TestValidateKeepsInRangeValues(t *testing.T) {
	raw := moodscope.RawTrack{
		Valence:    floatPtr(0.42),
		Energy:     floatPtr(0.0),
		Popularity: intPtr(100),
	}

	got := Validate(raw)

	if got.Valence != 0.42 || got.Energy != 0.0 || got.Popularity != 100 {
		t.Errorf("in-range values altered: %+v", got)
	}
}
