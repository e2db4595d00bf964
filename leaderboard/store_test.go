package leaderboard

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "scores.json"), testLogger())
	entries, err := s.Load()
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty board, got %+v", entries)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	s := NewFileStore(path, testLogger())

	in := []Entry{
		{Name: "ada", Score: 42, Date: "2025-01-01 10:00:00"},
		{Name: "名字 \"quoted\"", Score: 7, Date: "2025-01-02 10:00:00"},
	}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("Expected %d entries, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("Entry %d: expected %+v, got %+v", i, in[i], out[i])
		}
	}
}

func TestFileStoreSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	s := NewFileStore(path, testLogger())
	if err := s.Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[]" {
		t.Errorf("Expected empty array, got %q", data)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"garbage", "not json at all", 0},
		{"object", `{"name":"x","score":1}`, 0},
		{"truncated", `[{"name":"x","score":`, 0},
		{"mixed elements", `[1, "two", {"name":"ok","score":3,"date":"d"}]`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scores.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			entries, err := NewFileStore(path, testLogger()).Load()
			if err != nil {
				t.Fatalf("Malformed data must not error, got %v", err)
			}
			if len(entries) != tt.want {
				t.Errorf("Expected %d entries, got %+v", tt.want, entries)
			}
		})
	}
}

func TestFileStoreLoadSortsAndCaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	content := `[`
	for i := 0; i < 12; i++ {
		if i > 0 {
			content += ","
		}
		content += `{"name":"p","score":` + string(rune('0'+i%10)) + `,"date":""}`
	}
	content += `]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := NewFileStore(path, testLogger()).Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 10 {
		t.Fatalf("Expected cap of 10, got %d", len(entries))
	}
	if entries[0].Score != 9 {
		t.Errorf("Expected top score 9, got %d", entries[0].Score)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemoryStore(Entry{Name: "a", Score: 1})
	got, _ := m.Load()
	if len(got) != 1 {
		t.Fatalf("Expected seeded entry, got %+v", got)
	}
	got[0].Name = "mutated"
	again, _ := m.Load()
	if again[0].Name != "a" {
		t.Error("Load must return a copy")
	}
	if err := m.Save(nil); err != nil {
		t.Fatal(err)
	}
	if m.Saves() != 1 {
		t.Errorf("Expected 1 save, got %d", m.Saves())
	}
}
