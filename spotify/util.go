package spotify

import (
	"errors"
	"net/url"
	"strings"

	spot "github.com/zmb3/spotify/v2"
)

// ErrInvalidPlaylistURL is returned when a playlist reference cannot be
// parsed into a playlist ID.
var ErrInvalidPlaylistURL = errors.New("spotify: invalid playlist URL")

// ConcatArtists returns a comma-separated list of artist names
func ConcatArtists(artists []spot.SimpleArtist) string {
	if len(artists) == 0 {
		return "Various Artists"
	}

	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}

// ExtractID pulls the resource ID out of a spotify: URI.
func ExtractID(uri spot.URI) spot.ID {
	parts := strings.Split(string(uri), ":")
	return spot.ID(parts[len(parts)-1])
}

// ExtractPlaylistID accepts the playlist references users paste in:
// open.spotify.com URLs (with or without ?si= noise), spotify:playlist:
// URIs, and bare playlist IDs.
func ExtractPlaylistID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPlaylistURL
	}

	if strings.HasPrefix(raw, "spotify:playlist:") {
		id := string(ExtractID(spot.URI(raw)))
		if !isPlaylistID(id) {
			return "", ErrInvalidPlaylistURL
		}
		return id, nil
	}

	if strings.Contains(raw, "open.spotify.com") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", ErrInvalidPlaylistURL
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		for i, p := range parts {
			if p == "playlist" && i+1 < len(parts) && isPlaylistID(parts[i+1]) {
				return parts[i+1], nil
			}
		}
		return "", ErrInvalidPlaylistURL
	}

	if isPlaylistID(raw) {
		return raw, nil
	}
	return "", ErrInvalidPlaylistURL
}

// isPlaylistID reports whether s looks like a base62 Spotify ID.
func isPlaylistID(s string) bool {
	if len(s) < 10 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
