package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lixenwraith/keyfall/config"
	"github.com/lixenwraith/keyfall/constants"
	"github.com/lixenwraith/keyfall/leaderboard"
)

// printScores writes the stored leaderboard as a table
func printScores(w io.Writer, cfg config.Config) error {
	logger, logFile := setupLogging(cfg.LogDir, cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	entries, err := cfg.Store(logger).Load()
	if err != nil {
		return err
	}
	entries = leaderboard.Normalize(entries, constants.LeaderboardSize)

	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No scores yet")
		return err
	}

	_, err = fmt.Fprintln(w, scoreTable(entries))
	return err
}

func scoreTable(entries []leaderboard.Entry) *table.Table {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{strconv.Itoa(i + 1), e.Name, strconv.Itoa(e.Score), e.Date}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Name", "Score", "Date").
		Rows(rows...)
}
