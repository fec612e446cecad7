package mood

import (
	"fmt"
	"strings"

	"github.com/ansh7432/MoodScope-Backend/moodscope"
)

// SelectInsights derives the narrative insight bundle from a playlist
// summary. This is threshold-to-template lookup, not generation: every
// band below is total and non-overlapping, so the output is a pure
// function of the summary.
func SelectInsights(s moodscope.MoodSummary) moodscope.Insights {
	return moodscope.Insights{
		EmotionalAnalysis: emotionalAnalysis(s),
		PersonalityTraits: personalityTraits(s),
		Recommendations:   recommendations(s),
		MentalHealthTips:  mentalHealthTips(s),
		MoodCoaching:      moodCoaching(s),
	}
}

func energyDesc(energy float64) string {
	switch {
	case energy > 0.6:
		return "high-energy"
	case energy > 0.3:
		return "moderate-energy"
	default:
		return "low-energy"
	}
}

func valenceDesc(valence float64) string {
	switch {
	case valence > 0.6:
		return "uplifting"
	case valence > 0.3:
		return "neutral"
	default:
		return "melancholic"
	}
}

func emotionalAnalysis(s moodscope.MoodSummary) string {
	ed := energyDesc(s.AvgEnergy)
	vd := valenceDesc(s.AvgValence)

	switch {
	case s.MoodScore > 0.7:
		return fmt.Sprintf("Your music reveals a vibrant emotional landscape! With a mood score of %.2f, you're gravitating toward %s, %s tracks. The dominance of '%s' music suggests you're in an emotionally expansive phase, using music to amplify and celebrate your inner vitality.", s.MoodScore, ed, vd, s.DominantMood)
	case s.MoodScore > 0.4:
		return fmt.Sprintf("Your playlist shows emotional sophistication with a mood score of %.2f. The blend of %s and %s elements, centered around '%s' music, reveals someone who appreciates nuanced emotional experiences and uses music to maintain balance rather than dramatically shift mood.", s.MoodScore, ed, vd, s.DominantMood)
	case s.MoodScore > 0.1:
		return fmt.Sprintf("Your music choices reflect deep emotional intelligence, with a mood score of %.2f. The prevalence of %s, %s tracks in the '%s' category suggests you're engaged in meaningful emotional processing, using music as a companion for introspection.", s.MoodScore, ed, vd, s.DominantMood)
	default:
		return fmt.Sprintf("Your playlist indicates profound emotional depth with a mood score of %.2f. The %s, %s nature of your '%s' selections shows someone who isn't afraid to sit with complex emotions.", s.MoodScore, ed, vd, s.DominantMood)
	}
}

func personalityTraits(s moodscope.MoodSummary) []string {
	traits := make([]string, 0, 7)

	switch {
	case s.AvgEnergy > 0.75:
		traits = append(traits,
			"High energy and motivation-driven personality",
			"Thrives in dynamic and stimulating environments",
			"Natural leader who energizes others")
	case s.AvgEnergy > 0.5:
		traits = append(traits,
			"Well-balanced between active and contemplative states",
			"Adaptable to various social and work environments",
			"Demonstrates emotional flexibility")
	default:
		traits = append(traits,
			"Prefers calm and peaceful environments",
			"Values depth and meaningful conversations",
			"Strong capacity for concentration and reflection")
	}

	switch {
	case s.AvgValence > 0.7:
		traits = append(traits,
			"Naturally optimistic with a positive outlook",
			"Resilient in face of challenges")
	case s.AvgValence > 0.4:
		traits = append(traits,
			"Emotionally balanced and stable",
			"Realistic yet hopeful perspective on life")
	default:
		traits = append(traits,
			"Deeply empathetic and emotionally aware",
			"Values authenticity over superficial positivity")
	}

	if s.EmotionalRange > 0.3 {
		traits = append(traits, "Embraces emotional diversity and complexity")
	} else {
		traits = append(traits, "Consistent emotional preferences and stability")
	}

	if len(traits) > 5 {
		traits = traits[:5]
	}
	return traits
}

func recommendations(s moodscope.MoodSummary) []string {
	recs := make([]string, 0, 5)
	dominant := s.DominantMood

	switch {
	case strings.Contains(dominant, "Energetic") || strings.Contains(dominant, "Upbeat"):
		recs = append(recs,
			fmt.Sprintf("Your high-energy, positive music taste (score: %.2f) suggests you'd enjoy dance, pop, and upbeat indie tracks", s.MoodScore),
			"Try creating workout playlists with similar high-energy tracks to maintain motivation",
			"Explore festival playlists and live concert recordings for that energetic crowd feeling",
			"Consider sharing your upbeat playlists with friends who need mood boosts")
	case strings.Contains(dominant, "Calm"):
		recs = append(recs,
			fmt.Sprintf("Your preference for calm music (score: %.2f) indicates you'd appreciate ambient, acoustic, and chill-hop genres", s.MoodScore),
			"Create focus playlists with similar calm tracks for studying or working",
			"Explore nature soundscapes and instrumental music for meditation",
			"Try building bedtime playlists with gentle, soothing tracks")
	case strings.Contains(dominant, "Melancholic") || strings.Contains(dominant, "Sad"):
		recs = append(recs,
			fmt.Sprintf("Your reflective music choices (score: %.2f) align with indie folk, alternative rock, and contemplative jazz", s.MoodScore),
			"Explore singer-songwriter albums with deep lyrical content",
			"Try rainy day playlists with similar introspective tracks",
			"Use this music during journaling or personal reflection time")
	default:
		recs = append(recs,
			fmt.Sprintf("Your balanced music taste (score: %.2f) suggests exploring multiple genres to match different moods", s.MoodScore),
			"Create situation-specific playlists: morning energy, work focus, evening wind-down",
			"Experiment with different cultural music styles for variety")
	}

	if s.AvgEnergy > 0.7 {
		recs = append(recs, "Your high-energy preference suggests you'd love gym playlists and motivational tracks")
	} else if s.AvgEnergy < 0.3 {
		recs = append(recs, "Your low-energy preference aligns with spa music, lo-fi beats, and ambient soundscapes")
	}

	if len(recs) > 6 {
		recs = recs[:6]
	}
	return recs
}

func mentalHealthTips(s moodscope.MoodSummary) []string {
	tips := make([]string, 0, 6)

	if s.AvgEnergy < 0.3 {
		tips = append(tips,
			"Use upbeat music strategically to naturally boost energy levels",
			"Create a 'morning motivation' playlist for starting your day positively")
	}
	if s.EmotionalRange < 0.2 {
		tips = append(tips, "Explore different musical moods to expand emotional flexibility")
	}

	tips = append(tips,
		"Practice mindful listening - focus entirely on music for 10 minutes daily",
		"Use music as a healthy coping mechanism for stress management",
		"Regular music listening can improve mood and reduce anxiety")

	if len(tips) > 4 {
		tips = tips[:4]
	}
	return tips
}

func moodCoaching(s moodscope.MoodSummary) string {
	dominant := strings.ToLower(s.DominantMood)

	switch {
	case s.MoodScore > 0.6:
		return fmt.Sprintf("Your %s music taste demonstrates excellent emotional self-care! With %d tracks analyzed, it's clear you're intentionally choosing music that supports your positive mindset. Keep using music as a tool for maintaining your emotional wellness.", dominant, s.TotalTracks)
	case s.MoodScore > 0.3:
		return fmt.Sprintf("Your diverse taste in %s music shows emotional balance and maturity. Analyzing %d tracks reveals you're thoughtfully curating your musical environment. Consider experimenting with slightly more energizing tracks to enhance your already stable emotional foundation.", dominant, s.TotalTracks)
	default:
		return fmt.Sprintf("Your preference for %s music shows deep emotional awareness and sensitivity. Your %d track selection reveals someone who uses music for authentic emotional processing. Consider gradually incorporating some uplifting tracks to support emotional resilience.", dominant, s.TotalTracks)
	}
}
