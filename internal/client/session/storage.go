package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/models"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/filex"
)

// TokenStorage persists the credential token pair across process restarts.
// It is the only durable client-side state.
type TokenStorage interface {
	Load() (models.TokenPair, error)
	Save(models.TokenPair) error
	Clear() error
}

// FileStorage keeps the token pair as a small JSON file with fixed keys.
type FileStorage struct {
	path string
}

// NewFileStorage builds a FileStorage writing to path, creating the parent
// directory if needed.
func NewFileStorage(path string) (*FileStorage, error) {
	if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return &FileStorage{path: path}, nil
}

// Load reads the stored token pair. A missing file is not an error: it
// yields an empty pair.
func (s *FileStorage) Load() (models.TokenPair, error) {
	var pair models.TokenPair
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return pair, nil
		}
		return pair, fmt.Errorf("read tokens: %w", err)
	}
	if err := json.Unmarshal(data, &pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("decode tokens: %w", err)
	}
	return pair, nil
}

// Save writes the token pair, readable by the owner only.
func (s *FileStorage) Save(pair models.TokenPair) error {
	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

// Clear removes the stored pair. Clearing an already-empty storage is a
// no-op.
func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove tokens: %w", err)
	}
	return nil
}
