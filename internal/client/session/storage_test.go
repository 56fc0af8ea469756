package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "tokens.json")
	s, err := NewFileStorage(path)
	require.NoError(t, err)

	pair := models.TokenPair{Access: "a", Refresh: "r"}
	require.NoError(t, s.Save(pair))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, pair, got)
}

func TestFileStorage_LoadMissingFileYieldsEmptyPair(t *testing.T) {
	s, err := NewFileStorage(filepath.Join(t.TempDir(), "tokens.json"))
	require.NoError(t, err)

	got, err := s.Load()
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestFileStorage_ClearRemovesFileAndIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	s, err := NewFileStorage(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(models.TokenPair{Access: "a", Refresh: "r"}))
	require.NoError(t, s.Clear())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, s.Clear())
}

func TestFileStorage_FileIsOwnerOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	s, err := NewFileStorage(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(models.TokenPair{Access: "a", Refresh: "r"}))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestFileStorage_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewFileStorage(path)
	require.NoError(t, err)

	_, err = s.Load()
	assert.Error(t, err)
}
