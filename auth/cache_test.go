package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokencache.json")
	tok := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
	}

	if err := saveToken(path, tok); err != nil {
		t.Fatalf("saveToken() failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat cache: %v", err)
	}
	if got := info.Mode().Perm(); got != 0600 {
		t.Errorf("cache mode = %o, want 0600", got)
	}

	loaded, err := loadToken(path)
	if err != nil {
		t.Fatalf("loadToken() failed: %v", err)
	}
	if loaded.AccessToken != tok.AccessToken || loaded.RefreshToken != tok.RefreshToken {
		t.Errorf("loaded token = %+v, want %+v", loaded, tok)
	}
}

func TestSaveTokenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tokencache.json")

	err := saveToken(path, &oauth2.Token{AccessToken: "access"})
	if err != nil {
		t.Fatalf("saveToken() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("cache missing after save: %v", err)
	}
}

func TestLoadTokenMissingFile(t *testing.T) {
	_, err := loadToken(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("loadToken() succeeded on a missing file")
	}
}

func TestLoadTokenBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokencache.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadToken(path); err == nil {
		t.Fatal("loadToken() accepted an unparseable cache")
	}
}

func TestLoadTokenExpired(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokencache.json")

	expired := &oauth2.Token{
		AccessToken: "stale",
		Expiry:      time.Now().Add(-time.Hour),
	}
	if err := saveToken(path, expired); err != nil {
		t.Fatal(err)
	}
	if _, err := loadToken(path); err == nil {
		t.Fatal("loadToken() accepted an expired token with no refresh token")
	}

	refreshable := &oauth2.Token{
		AccessToken:  "stale",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(-time.Hour),
	}
	if err := saveToken(path, refreshable); err != nil {
		t.Fatal(err)
	}
	if _, err := loadToken(path); err != nil {
		t.Fatalf("loadToken() rejected a refreshable token: %v", err)
	}
}
