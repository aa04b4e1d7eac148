// Package client contains the submission-side helpers used by frontends and
// batch tools that feed the intake API, most importantly the resumable
// chunked submitter.
package client

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CheckpointStore durably remembers, per caller key, the index of the next
// chunk to send. Get returns 0 when no checkpoint exists.
type CheckpointStore interface {
	Get(key string) (int, error)
	Put(key string, nextChunk int) error
	Clear(key string) error
}

type checkpointFile struct {
	NextChunk int `json:"nextChunk"`
}

// FileCheckpointStore keeps one small JSON file per key inside a directory,
// so checkpoints survive process restarts and crashes.
type FileCheckpointStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileCheckpointStore(dir string) (*FileCheckpointStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("checkpoint dir: %w", err)
	}
	return &FileCheckpointStore{dir: dir}, nil
}

func (s *FileCheckpointStore) path(key string) string {
	// Keys are caller-chosen free text; encode so they are safe filenames.
	name := base64.RawURLEncoding.EncodeToString([]byte(key))
	return filepath.Join(s.dir, name+".json")
}

func (s *FileCheckpointStore) Get(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read checkpoint %q: %w", key, err)
	}

	var cp checkpointFile
	if err := json.Unmarshal(data, &cp); err != nil {
		return 0, fmt.Errorf("decode checkpoint %q: %w", key, err)
	}
	return cp.NextChunk, nil
}

func (s *FileCheckpointStore) Put(key string, nextChunk int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(checkpointFile{NextChunk: nextChunk})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("write checkpoint %q: %w", key, err)
	}
	return nil
}

func (s *FileCheckpointStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear checkpoint %q: %w", key, err)
	}
	return nil
}

// Has reports whether a checkpoint currently exists for key.
func (s *FileCheckpointStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := os.Stat(s.path(key))
	return err == nil
}

var _ CheckpointStore = (*FileCheckpointStore)(nil)
