package spotify

import (
	"context"
	"errors"
	"fmt"

	spot "github.com/zmb3/spotify/v2"

	"github.com/ansh7432/MoodScope-Backend/moodscope"
)

// ErrNotConfigured is returned when the analyze endpoint is hit without
// Spotify credentials.
var ErrNotConfigured = errors.New("spotify: client not configured")

// audioFeatureBatchSize is Spotify's per-request limit for the audio
// features endpoint.
const audioFeatureBatchSize = 100

// PlaylistFetcher delivers a playlist's name and its tracks with audio
// features. The concrete implementation talks to the Spotify Web API;
// handlers depend on this interface so they can be tested with fixtures.
type PlaylistFetcher interface {
	PlaylistTracks(ctx context.Context, playlistID string) (string, []moodscope.RawTrack, error)
}

// PlaylistTracks fetches every track in the playlist along with its
// audio features. Tracks Spotify has no features for come back with nil
// feature fields; the mood core defaults them rather than dropping the
// track.
func (c *SpotifyClient) PlaylistTracks(ctx context.Context, playlistID string) (string, []moodscope.RawTrack, error) {
	if c.Client == nil {
		return "", nil, ErrNotConfigured
	}

	id := spot.ID(playlistID)
	pl, err := c.Client.GetPlaylist(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("spotify: fetching playlist: %w", err)
	}

	var (
		ids    []spot.ID
		tracks []moodscope.RawTrack
	)

	page, err := c.Client.GetPlaylistItems(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("spotify: fetching playlist items: %w", err)
	}
	for {
		for _, item := range page.Items {
			// Episodes and local files carry no audio features.
			if item.Track.Track == nil {
				continue
			}
			t := item.Track.Track
			pop := int(t.Popularity)
			tracks = append(tracks, moodscope.RawTrack{
				Name:       t.Name,
				Artist:     ConcatArtists(t.Artists),
				Popularity: &pop,
			})
			ids = append(ids, t.ID)
		}

		err = c.Client.NextPage(ctx, page)
		if err == spot.ErrNoMorePages {
			break
		}
		if err != nil {
			return "", nil, fmt.Errorf("spotify: paging playlist items: %w", err)
		}
	}

	if err := c.attachAudioFeatures(ctx, ids, tracks); err != nil {
		return "", nil, err
	}

	return pl.Name, tracks, nil
}

func (c *SpotifyClient) attachAudioFeatures(ctx context.Context, ids []spot.ID, tracks []moodscope.RawTrack) error {
	for start := 0; start < len(ids); start += audioFeatureBatchSize {
		end := start + audioFeatureBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		features, err := c.Client.GetAudioFeatures(ctx, ids[start:end]...)
		if err != nil {
			return fmt.Errorf("spotify: fetching audio features: %w", err)
		}

		for i, f := range features {
			if f == nil {
				continue
			}
			t := &tracks[start+i]
			t.Valence = float64Ptr(f.Valence)
			t.Energy = float64Ptr(f.Energy)
			t.Danceability = float64Ptr(f.Danceability)
			t.Acousticness = float64Ptr(f.Acousticness)
			t.Speechiness = float64Ptr(f.Speechiness)
			t.Instrumentalness = float64Ptr(f.Instrumentalness)
		}
	}
	return nil
}

func float64Ptr(v float32) *float64 {
	f := float64(v)
	return &f
}
