package seedkeyring

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/zalando/go-keyring"
)

const (
	DefaultService = "SpiralCodeFillerSeed"
	DefaultUser    = "user"
	// Matches the ChaCha8 seed size.
	seedSize = 32
)

// Store keeps one filler seed in the OS keyring under a service/user pair.
type Store struct {
	Service string
	User    string
}

// New returns a Store, falling back to the defaults for empty names.
func New(service, user string) *Store {
	if service == "" {
		service = DefaultService
	}
	if user == "" {
		user = DefaultUser
	}
	return &Store{Service: service, User: user}
}

// LoadOrCreate retrieves the seed from the keyring.
// If the seed does not exist, it generates a new one, stores it, and returns it.
func (s *Store) LoadOrCreate() ([seedSize]byte, error) {
	var seed [seedSize]byte

	seedStr, err := keyring.Get(s.Service, s.User)
	switch {
	case err == nil:
		raw, err := base64.StdEncoding.DecodeString(seedStr)
		if err != nil {
			return seed, fmt.Errorf("failed to decode seed: %w", err)
		}
		if len(raw) != seedSize {
			return seed, fmt.Errorf("stored seed has %d bytes, want %d", len(raw), seedSize)
		}
		copy(seed[:], raw)
		return seed, nil
	case errors.Is(err, keyring.ErrNotFound):
		if _, err := io.ReadFull(rand.Reader, seed[:]); err != nil {
			return seed, fmt.Errorf("failed to generate seed: %w", err)
		}
		seedStr = base64.StdEncoding.EncodeToString(seed[:])
		if err := keyring.Set(s.Service, s.User, seedStr); err != nil {
			return seed, fmt.Errorf("failed to store seed in keyring: %w", err)
		}
		return seed, nil
	default:
		return seed, fmt.Errorf("failed to retrieve seed from keyring: %w", err)
	}
}

// Reset deletes the stored seed. A missing seed is not an error.
func (s *Store) Reset() error {
	if err := keyring.Delete(s.Service, s.User); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete seed from keyring: %w", err)
	}
	return nil
}
