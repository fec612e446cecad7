package spotify

import (
	"context"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ansh7432/MoodScope-Backend/config"
)

// SpotifyClient wraps an app-authorized Spotify API client. The client
// uses the client-credentials flow: public playlists only, no per-user
// tokens.
type SpotifyClient struct {
	Client *spotify.Client
	ID     string
	Secret string
}

func ProvideSpotify(cfg config.Config, log *zap.SugaredLogger) *SpotifyClient {
	c := SpotifyClient{
		ID:     cfg.SpotifyID,
		Secret: cfg.SpotifySecret,
	}

	if cfg.SpotifyID == "" || cfg.SpotifySecret == "" {
		log.Warn("spotify credentials not configured, playlist analysis disabled")
		return &c
	}

	log.Info("setting up spotify client")

	creds := &clientcredentials.Config{
		ClientID:     cfg.SpotifyID,
		ClientSecret: cfg.SpotifySecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	// The oauth2 transport refreshes the app token as needed.
	httpClient := creds.Client(context.Background())
	c.Client = spotify.New(httpClient)

	return &c
}

var Options = ProvideSpotify

// ProvideFetcher exposes the client as a PlaylistFetcher for handlers.
func ProvideFetcher(c *SpotifyClient) PlaylistFetcher {
	return c
}

var FetcherOptions = ProvideFetcher
