// Package cluster groups a playlist's tracks into mood clusters using
// k-means over their audio features. Clusters are a best-effort extra on
// top of the mood summary: any failure yields no clusters, never an
// error for the caller.
package cluster

import (
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/ansh7432/MoodScope-Backend/mood"
	"github.com/ansh7432/MoodScope-Backend/moodscope"
)

// Config holds clustering parameters.
type Config struct {
	NumClusters    int // number of clusters to partition into
	MinClusterSize int // clusters smaller than this are discarded
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		NumClusters:    3,
		MinClusterSize: 2,
	}
}

// featureNames defines the audio features used for clustering, in
// coordinate order.
var featureNames = []string{"energy", "valence", "danceability", "acousticness"}

type trackObservation struct {
	track  *moodscope.Track
	coords clusters.Coordinates
}

func (o trackObservation) Coordinates() clusters.Coordinates {
	return o.coords
}

func (o trackObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// Detect partitions analyzed tracks into mood clusters. Returns nil when
// there are fewer tracks than clusters or when clustering fails.
func Detect(tracks []moodscope.Track, cfg Config) []moodscope.MoodCluster {
	if cfg.NumClusters <= 0 {
		cfg.NumClusters = DefaultConfig().NumClusters
	}
	if len(tracks) < cfg.NumClusters {
		return nil
	}

	obs := make(clusters.Observations, 0, len(tracks))
	for i := range tracks {
		t := &tracks[i]
		obs = append(obs, trackObservation{
			track: t,
			coords: clusters.Coordinates{
				t.Energy,
				t.Valence,
				t.Danceability,
				t.Acousticness,
			},
		})
	}

	km := kmeans.New()
	result, err := km.Partition(obs, cfg.NumClusters)
	if err != nil {
		return nil
	}

	out := make([]moodscope.MoodCluster, 0, len(result))
	for _, c := range result {
		names := make([]string, 0, len(c.Observations))
		for _, o := range c.Observations {
			if to, ok := o.(trackObservation); ok {
				names = append(names, to.track.Name)
			}
		}
		if len(names) < cfg.MinClusterSize {
			continue
		}

		centroid := make(map[string]float64, len(featureNames))
		for i, name := range featureNames {
			centroid[name] = c.Center[i]
		}

		out = append(out, moodscope.MoodCluster{
			Name:     labelCentroid(centroid),
			Size:     len(names),
			Tracks:   names,
			Centroid: centroid,
		})
	}

	return out
}

// labelCentroid names a cluster by scoring its centroid the same way a
// single track is scored.
func labelCentroid(centroid map[string]float64) string {
	score := mood.WeightValence*centroid["valence"] + mood.WeightEnergy*centroid["energy"]
	return string(mood.Categorize(score, centroid["energy"]))
}
