package spotify

import (
	"context"

	spot "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"

	"github.com/mager/libex/config"
)

var userScopes = []string{
	spotifyauth.ScopeUserFollowRead,
}

// NewAuthenticator builds the OAuth authenticator used by both the login
// flow and the fetch client.
func NewAuthenticator(cfg config.Config) *spotifyauth.Authenticator {
	return spotifyauth.New(
		spotifyauth.WithClientID(cfg.SpotifyID),
		spotifyauth.WithClientSecret(cfg.SpotifySecret),
		spotifyauth.WithRedirectURL(cfg.SpotifyRedirectURL),
		spotifyauth.WithScopes(userScopes...),
	)
}

type SpotifyClient struct {
	Client *spot.Client
	ID     string
	Secret string
}

// ProvideSpotify provides a Spotify client authenticated with the token
// saved by the login command. The underlying oauth2 transport refreshes the
// token automatically.
func ProvideSpotify(cfg config.Config, log *zap.SugaredLogger) (*SpotifyClient, error) {
	ctx := context.Background()

	token, err := LoadToken(cfg.DataDir)
	if err != nil {
		log.Errorw("No saved Spotify token; run the login command first", "error", err)
		return nil, err
	}

	httpClient := NewAuthenticator(cfg).Client(ctx, token)

	return &SpotifyClient{
		Client: spot.New(httpClient),
		ID:     cfg.SpotifyID,
		Secret: cfg.SpotifySecret,
	}, nil
}
