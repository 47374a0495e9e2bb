package seedkeyring

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestNewDefaults(t *testing.T) {
	s := New("", "")
	assert.Equal(t, DefaultService, s.Service)
	assert.Equal(t, DefaultUser, s.User)

	s = New("svc", "alice")
	assert.Equal(t, "svc", s.Service)
	assert.Equal(t, "alice", s.User)
}

func TestLoadOrCreate(t *testing.T) {
	keyring.MockInit()
	s := New("test-service", "test-user")

	first, err := s.LoadOrCreate()
	require.NoError(t, err)
	assert.NotEqual(t, [32]byte{}, first)

	second, err := s.LoadOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first, second, "seed must persist between loads")

	stored, err := keyring.Get("test-service", "test-user")
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(first[:]), stored)
}

func TestReset(t *testing.T) {
	keyring.MockInit()
	s := New("reset-service", "")

	first, err := s.LoadOrCreate()
	require.NoError(t, err)
	require.NoError(t, s.Reset())

	_, err = keyring.Get("reset-service", DefaultUser)
	assert.ErrorIs(t, err, keyring.ErrNotFound)

	second, err := s.LoadOrCreate()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Resetting twice is fine.
	require.NoError(t, s.Reset())
	require.NoError(t, s.Reset())
}

func TestLoadOrCreateRejectsCorruptSeed(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{name: "not base64", stored: "!!! not base64 !!!"},
		{name: "wrong length", stored: base64.StdEncoding.EncodeToString([]byte("short"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyring.MockInit()
			require.NoError(t, keyring.Set("corrupt", DefaultUser, tt.stored))
			_, err := New("corrupt", "").LoadOrCreate()
			assert.Error(t, err)
		})
	}
}

func TestLoadOrCreateKeyringFailure(t *testing.T) {
	keyring.MockInitWithError(assert.AnError)
	_, err := New("", "").LoadOrCreate()
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, New("", "").Reset(), assert.AnError)
}
