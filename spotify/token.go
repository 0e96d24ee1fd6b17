package spotify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
)

const tokenFile = "token.json"

// savedToken is the on-disk form of the OAuth token.
type savedToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	Expiry       int64  `json:"expiry"`
}

// SaveToken writes the OAuth token to the data dir.
func SaveToken(dir string, token *oauth2.Token) error {
	st := savedToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry.Unix(),
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating data dir '%s': %w", dir, err)
	}

	b, err := json.Marshal(st)
	if err != nil {
		return err
	}

	// 0600: the refresh token grants library access.
	return os.WriteFile(filepath.Join(dir, tokenFile), b, 0o600)
}

// LoadToken reads the OAuth token saved by the login command.
func LoadToken(dir string) (*oauth2.Token, error) {
	b, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err != nil {
		return nil, fmt.Errorf("error reading token file: %w", err)
	}

	var st savedToken
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("error parsing token file: %w", err)
	}

	return &oauth2.Token{
		AccessToken:  st.AccessToken,
		RefreshToken: st.RefreshToken,
		TokenType:    st.TokenType,
		Expiry:       time.Unix(st.Expiry, 0),
	}, nil
}
