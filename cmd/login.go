package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/mager/libex/spotify"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize access to your Spotify library",
	Long: `Runs the Spotify OAuth flow once: starts a local callback server on the
configured redirect URL, prints the consent URL to open in a browser, and
saves the resulting token in the data directory for the fetch command.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if cfg.SpotifyID == "" || cfg.SpotifySecret == "" {
		return fmt.Errorf("LIBEX_SPOTIFYID and LIBEX_SPOTIFYSECRET must be set")
	}

	redirect, err := url.Parse(cfg.SpotifyRedirectURL)
	if err != nil {
		return fmt.Errorf("invalid redirect URL '%s': %w", cfg.SpotifyRedirectURL, err)
	}

	auth := spotify.NewAuthenticator(cfg)
	state := randomState()

	tokens := make(chan *oauth2.Token, 1)
	errs := make(chan error, 1)

	http.HandleFunc(redirect.Path, func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.Token(r.Context(), state, r)
		if err != nil {
			http.Error(w, "token exchange failed", http.StatusForbidden)
			errs <- fmt.Errorf("error exchanging token: %w", err)
			return
		}
		fmt.Fprintln(w, "Connected. You can close this tab.")
		tokens <- token
	})

	go func() {
		if err := http.ListenAndServe(redirect.Host, nil); err != nil {
			errs <- err
		}
	}()

	fmt.Println("Log in to Spotify by visiting this URL in your browser:")
	fmt.Println(auth.AuthURL(state))

	select {
	case token := <-tokens:
		if err := spotify.SaveToken(cfg.DataDir, token); err != nil {
			return err
		}
		fmt.Println("Token saved.")
		return nil
	case err := <-errs:
		return err
	}
}

func randomState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
