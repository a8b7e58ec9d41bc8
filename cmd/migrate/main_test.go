package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/meur/blackout/internal/config"
	"github.com/meur/blackout/internal/logger"
	"github.com/meur/blackout/internal/models"
	"github.com/meur/blackout/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	chdir(t, t.TempDir())

	var out bytes.Buffer
	logger.SetOutput(&out)
	t.Cleanup(func() { logger.SetOutput(nil) })

	cmd := newRootCmd(config.New())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRankCmd(t *testing.T) {
	out := run(t, "rank", "150")
	assert.Contains(t, out, "Rank: TAGGER")
	assert.Contains(t, out, "Next: VANDAL in 50 REP (50%)")

	out = run(t, "rank", "1000")
	assert.Contains(t, out, "Top rank reached")
}

func TestCalcCmd(t *testing.T) {
	out := run(t, "calc", "train", "burner", "--moving", "--streak")
	assert.Contains(t, out, "REP: 284")
	assert.Contains(t, out, "Moving target")
	assert.Contains(t, out, "Streak bonus")
}

func TestRunAndStatsCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")
	store, err := storage.New(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.SaveMarkers([]models.Marker{
		{ID: "a", UserID: "writer", Name: "Bridge", Description: "Wildstyle"},
		{ID: "b", UserID: "writer", Name: "Van", Description: "Roller/Extinguisher"},
	}))
	require.NoError(t, store.Close())

	out := run(t, "stats", "--db", dbPath)
	assert.Contains(t, out, "Needs migration:  2")

	out = run(t, "run", "--db", dbPath, "--dry-run")
	assert.Contains(t, out, "Dry run: would migrate 2 marker(s)")

	out = run(t, "run", "--db", dbPath)
	assert.Contains(t, out, "Migrated 2 marker(s)")

	out = run(t, "stats", "--db", dbPath)
	assert.Contains(t, out, "Already migrated: 2 (100%)")
}

func TestRootCmd_ReturnsErrorsWithoutPrinting(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd(config.New())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"rank", "lots"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rep must be an integer")
	assert.NotContains(t, out.String(), "Error:")
	assert.NotContains(t, out.String(), "Usage:")
}
