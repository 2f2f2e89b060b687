package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

const (
	// TokenFile is the default name of the stored API token, relative to the
	// XDG config directory.
	TokenFile = "token.json"

	xdgAppName = "hustlexp"
)

// HTTPClient returns a client that sends the bearer token stored at
// tokenFile. When the file does not exist it returns http.DefaultClient and
// the API is called unauthenticated.
func HTTPClient(ctx context.Context, tokenFile string) (*http.Client, error) {
	if tokenFile == "" {
		xdgConfigBase, err := GetXdgHome()
		if err != nil {
			return nil, err
		}
		tokenFile = filepath.Join(xdgConfigBase, TokenFile)
	}

	tok, err := LoadToken(tokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return http.DefaultClient, nil
		}
		return nil, err
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(tok)), nil
}

// LoadToken reads an oauth2.Token from a JSON file.
func LoadToken(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("failed to decode token from file %s: %w", file, err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("token file %s has no access_token", file)
	}
	return tok, nil
}

// SaveToken writes tok to path, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("could not create token directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache token to %s: %w", path, err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}

func GetXdgHome() (string, error) {
	xdgHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgHome, ".config", xdgAppName), nil
}
