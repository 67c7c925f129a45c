package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/username/weekcal/internal/config"
)

func writeTestConfig(t *testing.T) (string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	eventsFile := filepath.Join(dir, "private.yaml")
	require.NoError(t, os.WriteFile(eventsFile, []byte(
		"events:\n  - date: 1942-06-18\n    name: Sir Paul McCartney\n"), 0o600))

	cfgFile := filepath.Join(dir, "weekcal.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(
		"calendar:\n  year: 2025\n  paper_size: A4\n"+
			"events:\n  file: "+eventsFile+"\n"+
			"output:\n  dir: "+filepath.Join(dir, "out")+"\n"+
			"log:\n  level: error\n"), 0o600))

	return cfgFile, dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBookletCommand(t *testing.T) {
	cfgFile, _ := writeTestConfig(t)

	out, err := run(t, "booklet", "-c", cfgFile)
	require.NoError(t, err)

	assert.Contains(t, out, "Weekkalender 2025 (A4)")
	assert.Contains(t, out, "weeks: 53  notes: 1  padding: 2  pages: 56")
	assert.Contains(t, out, "sheet  1  front: 56 |  1  back:  2 | 55")
	assert.Contains(t, out, "sheet 14  front: 30 | 27  back: 28 | 29")
}

func TestHolidaysCommand(t *testing.T) {
	cfgFile, _ := writeTestConfig(t)

	out, err := run(t, "holidays", "-c", cfgFile, "--private")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-04-26 * Koningsdag\n")
	assert.Contains(t, out, "2025-02-14   Valentijnsdag\n")
	assert.Contains(t, out, "2025-06-18   Sir Paul McCartney (83)\n")

	out, err = run(t, "holidays", "-c", cfgFile, "--locale", "en", "--year", "2016")
	require.NoError(t, err)
	assert.Contains(t, out, "2016-05-05   Liberation Day\n2016-05-05 * Ascension Day\n")
	assert.NotContains(t, out, "McCartney")
}

func TestWeeksCommand_OutFile(t *testing.T) {
	cfgFile, dir := writeTestConfig(t)
	outFile := filepath.Join(dir, "weeks.json")

	_, err := run(t, "weeks", "-c", cfgFile, "--format", "json", "--out", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Weekkalender 2025 (A4)"`)
	assert.Contains(t, string(data), `"kind": "notes"`)
}

func TestICSCommand_YearRange(t *testing.T) {
	cfgFile, dir := writeTestConfig(t)

	out, err := run(t, "ics", "-c", cfgFile, "--through", "2027")
	require.NoError(t, err)

	for _, year := range []string{"2025", "2026", "2027"} {
		path := filepath.Join(dir, "out", "Weekkalender "+year+" (A4).ics")
		assert.FileExists(t, path)
		assert.Contains(t, out, path)
	}
}

func TestInvalidFlags(t *testing.T) {
	cfgFile, _ := writeTestConfig(t)

	_, err := run(t, "weeks", "-c", cfgFile, "--year", "1581")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar.year")

	_, err = run(t, "weeks", "-c", cfgFile, "--paper", "Letter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar.paper_size")
}

func TestFlagsOverrideInvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WEEKCAL_CALENDAR_YEAR", "1500")

	cfgFile := filepath.Join(t.TempDir(), "weekcal.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(
		"calendar:\n  paper_size: Letter\nlog:\n  level: error\n"), 0o600))

	_, err := run(t, "booklet", "-c", cfgFile)
	require.Error(t, err)

	out, err := run(t, "booklet", "-c", cfgFile, "--year", "2025", "--paper", "A4")
	require.NoError(t, err)
	assert.Contains(t, out, "Weekkalender 2025 (A4)")
}

func TestExecute_ReportsFailure(t *testing.T) {
	cfgFile, _ := writeTestConfig(t)

	core, logs := observer.New(zap.ErrorLevel)
	prev := logger
	logger = zap.New(core)
	t.Cleanup(func() { logger = prev })

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"weeks", "-c", cfgFile, "--year", "1581"})

	var stderr bytes.Buffer
	assert.Equal(t, 1, execute(context.Background(), cmd, &stderr))
	assert.Contains(t, stderr.String(), "Error: invalid options")

	entries := logs.FilterMessage("Command failed").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "calendar.year")

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"booklet", "-c", cfgFile})
	assert.Equal(t, 0, execute(context.Background(), cmd, &stderr))
}

func TestEventSource(t *testing.T) {
	_, dir := writeTestConfig(t)

	src := eventSource(config.EventsConfig{
		File:     filepath.Join(dir, "private.yaml"),
		URL:      "http://127.0.0.1:1/events.txt",
		CacheTTL: "1h",
	}, zap.NewNop())

	got, err := src.Events(context.Background())
	require.NoError(t, err, "unreachable URL falls back to the YAML file")
	require.Len(t, got, 1)
	assert.Equal(t, "Sir Paul McCartney", got[0].Name)
}
