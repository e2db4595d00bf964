package leaderboard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/lixenwraith/keyfall/constants"
)

// Store persists the ranked entry list
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// FileStore keeps the leaderboard as a JSON array on disk
// [{"name":"...","score":0,"date":"..."}]
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore creates a store backed by path
func NewFileStore(path string, logger *log.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored entries
// A missing file is an empty board; malformed content is logged and treated as empty
func (s *FileStore) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	if !gjson.ValidBytes(data) {
		s.logger.Warn("leaderboard file is not valid JSON, starting empty", "path", s.path)
		return nil, nil
	}

	res := gjson.ParseBytes(data)
	if !res.IsArray() {
		s.logger.Warn("leaderboard file is not an array, starting empty", "path", s.path)
		return nil, nil
	}

	entries := make([]Entry, 0, int(res.Get("#").Int()))
	res.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		entries = append(entries, Entry{
			Name:  v.Get("name").String(),
			Score: int(v.Get("score").Int()),
			Date:  v.Get("date").String(),
		})
		return true
	})

	return Normalize(entries, constants.LeaderboardSize), nil
}

// Save writes entries atomically (temp file + rename)
func (s *FileStore) Save(entries []Entry) error {
	data := []byte("[]")
	var err error
	for i, e := range entries {
		prefix := strconv.Itoa(i)
		if data, err = sjson.SetBytes(data, prefix+".name", e.Name); err != nil {
			return fmt.Errorf("failed to encode entry %d: %w", i, err)
		}
		if data, err = sjson.SetBytes(data, prefix+".score", e.Score); err != nil {
			return fmt.Errorf("failed to encode entry %d: %w", i, err)
		}
		if data, err = sjson.SetBytes(data, prefix+".date", e.Date); err != nil {
			return fmt.Errorf("failed to encode entry %d: %w", i, err)
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create leaderboard directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".leaderboard-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close leaderboard: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace leaderboard: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store used by tests and no-save runs
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	saves   int

	// LoadErr and SaveErr, when set, are returned by the matching call
	LoadErr error
	SaveErr error
}

// NewMemoryStore creates a store seeded with entries
func NewMemoryStore(entries ...Entry) *MemoryStore {
	return &MemoryStore{entries: append([]Entry(nil), entries...)}
}

// Load returns the stored entries
func (m *MemoryStore) Load() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]Entry(nil), m.entries...), nil
}

// Save replaces the stored entries
func (m *MemoryStore) Save(entries []Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.entries = append([]Entry(nil), entries...)
	m.saves++
	return nil
}

// Saves returns the number of successful saves
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
