// Package keyvault manages the password-gated signing key on disk and
// derives the public identity used throughout the app.
package keyvault

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
)

// Sentinel errors. Both are fatal at startup; the session is never
// re-derived once the TUI loop is running.
var (
	ErrWrongPassword = errors.New("password is incorrect")
	ErrNoKeys        = errors.New("no key material found; run generate-keys first")
)

// Session holds the signing key material for the lifetime of the process.
// Created once after password verification; immutable thereafter.
type Session struct {
	SecretKey string // hex
	PublicKey string // hex
	Npub      string // bech32 public identity
}

// keyFile is the on-disk format, kept compatible with earlier releases.
type keyFile struct {
	SecretKey string `json:"secret_key"`
	Password  string `json:"password"`
}

// Dir returns the directory holding key material and relay config.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory not found: %w", err)
	}
	return filepath.Join(home, ".nostr-cli-app"), nil
}

func keysPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "keys.json"), nil
}

// Generate creates a new keypair, stores it gated by password, and
// returns the resulting session.
func Generate(password string) (*Session, error) {
	sk := nostr.GeneratePrivateKey()

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}

	data, err := json.Marshal(keyFile{SecretKey: sk, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode key file: %w", err)
	}
	path := filepath.Join(dir, "keys.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write key file: %w", err)
	}

	return newSession(sk)
}

// Decrypt loads the stored key, verifies the password, and returns the
// session. A wrong password yields ErrWrongPassword; a missing key file
// yields ErrNoKeys; anything else means the stored material is malformed.
func Decrypt(password string) (*Session, error) {
	path, err := keysPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoKeys
		}
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	var kf keyFile
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("malformed key file: %w", err)
	}
	if kf.Password != password {
		return nil, ErrWrongPassword
	}
	if _, err := hex.DecodeString(kf.SecretKey); err != nil || len(kf.SecretKey) != 64 {
		return nil, fmt.Errorf("malformed secret key in key file")
	}

	return newSession(kf.SecretKey)
}

// newSession derives the public identity from a hex secret key.
func newSession(sk string) (*Session, error) {
	pk, err := nostr.GetPublicKey(sk)
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key: %w", err)
	}
	npub, err := nip19.EncodePublicKey(pk)
	if err != nil {
		return nil, fmt.Errorf("failed to encode public identity: %w", err)
	}
	return &Session{SecretKey: sk, PublicKey: pk, Npub: npub}, nil
}

// Nsec returns the bech32 form of the secret key, for show-keys.
func (s *Session) Nsec() (string, error) {
	return nip19.EncodePrivateKey(s.SecretKey)
}
