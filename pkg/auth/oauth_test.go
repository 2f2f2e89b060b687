package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"
)

func TestSaveAndLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hustlexp", TokenFile)
	if err := SaveToken(path, &oauth2.Token{AccessToken: "abc", TokenType: "Bearer"}); err != nil {
		t.Fatalf("SaveToken failed: %v", err)
	}

	tok, err := LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken failed: %v", err)
	}
	if tok.AccessToken != "abc" {
		t.Errorf("Expected access token 'abc', got '%s'", tok.AccessToken)
	}
}

func TestLoadTokenRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), TokenFile)
	if err := os.WriteFile(path, []byte(`{"token_type":"Bearer"}`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadToken(path); err == nil {
		t.Errorf("Expected error for token without access_token")
	}
}

func TestHTTPClientSendsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), TokenFile)
	if err := SaveToken(path, &oauth2.Token{AccessToken: "abc"}); err != nil {
		t.Fatalf("SaveToken failed: %v", err)
	}

	client, err := HTTPClient(context.Background(), path)
	if err != nil {
		t.Fatalf("HTTPClient failed: %v", err)
	}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "Bearer abc" {
		t.Errorf("Expected 'Bearer abc', got '%s'", gotAuth)
	}
}

func TestHTTPClientWithoutTokenFile(t *testing.T) {
	client, err := HTTPClient(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("HTTPClient failed: %v", err)
	}
	if client != http.DefaultClient {
		t.Errorf("Expected http.DefaultClient when no token is stored")
	}
}
