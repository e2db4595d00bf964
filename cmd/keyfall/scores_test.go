package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/keyfall/config"
	"github.com/lixenwraith/keyfall/leaderboard"
)

func TestPrintScoresEmpty(t *testing.T) {
	cfg := config.Default()
	cfg.LeaderboardPath = filepath.Join(t.TempDir(), "missing.json")

	var out bytes.Buffer
	if err := printScores(&out, cfg); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "No scores yet" {
		t.Errorf("output = %q, want %q", got, "No scores yet")
	}
}

func TestPrintScoresTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := leaderboard.NewFileStore(path, log.New(&bytes.Buffer{}))
	err := store.Save([]leaderboard.Entry{
		leaderboard.NewEntry("ada", 40, at),
		leaderboard.NewEntry("bob", 90, at),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg := config.Default()
	cfg.LeaderboardPath = path

	var out bytes.Buffer
	if err := printScores(&out, cfg); err != nil {
		t.Fatalf("printScores: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Name", "Score", "ada", "bob", "90", "40"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "bob") > strings.Index(text, "ada") {
		t.Errorf("expected bob (90) ranked above ada (40):\n%s", text)
	}
}

func TestScoresSubcommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-leaderboard", path, "scores"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "No scores yet") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunRejectsBadVolume(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-volume", "3", "-no-save"}, &out)
	if err == nil {
		t.Fatal("expected volume validation error")
	}
	if !strings.Contains(err.Error(), "volume") {
		t.Errorf("error = %v", err)
	}
}
