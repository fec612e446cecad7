package mood

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ansh7432/MoodScope-Backend/moodscope"
)

func summaryWith(score, energy, valence, emotionalRange float64, dominant Category) moodscope.MoodSummary {
	return moodscope.MoodSummary{
		TotalTracks:    20,
		MoodScore:      score,
		AvgEnergy:      energy,
		AvgValence:     valence,
		EmotionalRange: emotionalRange,
		DominantMood:   string(dominant),
		MoodDistribution: map[string]int{
			string(dominant): 20,
		},
	}
}

func TestSelectInsightsIsPure(t *testing.T) {
	s := summaryWith(0.65, 0.7, 0.6, 0.25, UpbeatPositive)

	first := SelectInsights(s)
	for i := 0; i < 5; i++ {
		if got := SelectInsights(s); !reflect.DeepEqual(got, first) {
			t.Fatalf("SelectInsights not deterministic: %+v then %+v", first, got)
		}
	}
}

func TestSelectInsightsPoolSizes(t *testing.T) {
	tests := []struct {
		name string
		s    moodscope.MoodSummary
	}{
		{"high mood", summaryWith(0.85, 0.9, 0.85, 0.1, EnergeticHappy)},
		{"mid mood", summaryWith(0.5, 0.45, 0.5, 0.25, BalancedSteady)},
		{"low mood", summaryWith(0.15, 0.2, 0.15, 0.4, SadHeavy)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectInsights(tt.s)

			if got.EmotionalAnalysis == "" {
				t.Error("EmotionalAnalysis is empty")
			}
			if got.MoodCoaching == "" {
				t.Error("MoodCoaching is empty")
			}
			if n := len(got.PersonalityTraits); n < 3 || n > 5 {
				t.Errorf("len(PersonalityTraits) = %d, want 3..5", n)
			}
			if n := len(got.Recommendations); n < 3 || n > 6 {
				t.Errorf("len(Recommendations) = %d, want 3..6", n)
			}
			if n := len(got.MentalHealthTips); n < 2 || n > 4 {
				t.Errorf("len(MentalHealthTips) = %d, want 2..4", n)
			}
		})
	}
}

func TestEmotionalAnalysisBands(t *testing.T) {
	high := SelectInsights(summaryWith(0.8, 0.8, 0.8, 0.2, EnergeticHappy))
	mid := SelectInsights(summaryWith(0.5, 0.5, 0.5, 0.2, BalancedSteady))
	low := SelectInsights(summaryWith(0.05, 0.1, 0.05, 0.2, SadHeavy))

	if high.EmotionalAnalysis == mid.EmotionalAnalysis ||
		mid.EmotionalAnalysis == low.EmotionalAnalysis ||
		high.EmotionalAnalysis == low.EmotionalAnalysis {
		t.Error("distinct mood-score bands should select distinct emotional-analysis templates")
	}

	if !strings.Contains(high.EmotionalAnalysis, string(EnergeticHappy)) {
		t.Errorf("analysis should mention the dominant mood, got %q", high.EmotionalAnalysis)
	}
}

func TestRecommendationsFollowDominantMood(t *testing.T) {
	calm := SelectInsights(summaryWith(0.45, 0.3, 0.5, 0.2, CalmContent))
	joined := strings.Join(calm.Recommendations, " ")
	if !strings.Contains(joined, "calm") {
		t.Errorf("calm playlist recommendations = %v, want calm-themed pool", calm.Recommendations)
	}

	upbeat := SelectInsights(summaryWith(0.8, 0.85, 0.8, 0.2, EnergeticHappy))
	joined = strings.Join(upbeat.Recommendations, " ")
	if !strings.Contains(joined, "high-energy") {
		t.Errorf("energetic playlist recommendations = %v, want upbeat pool", upbeat.Recommendations)
	}
}

func TestMoodCoachingMentionsTrackCount(t *testing.T) {
	got := SelectInsights(summaryWith(0.7, 0.7, 0.7, 0.2, EnergeticHappy))
	if !strings.Contains(got.MoodCoaching, "20 tracks") {
		t.Errorf("MoodCoaching = %q, want track count mentioned", got.MoodCoaching)
	}
}
