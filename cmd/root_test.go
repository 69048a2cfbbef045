package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/rsviz/core/gantt"
	"github.com/kilianp07/rsviz/pkg/sampledata"
)

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	src, err := sampledata.Write(dir)
	require.NoError(t, err)
	out := filepath.Join(dir, "chart.html")

	rootCmd.SetArgs([]string{src, "-o", out})
	require.NoError(t, rootCmd.Execute())

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderCommandRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"schedule": [`), 0o644))

	rootCmd.SetArgs([]string{src, "-o", filepath.Join(dir, "chart.html")})
	require.Error(t, rootCmd.Execute())
}

func TestSummaryCommand(t *testing.T) {
	src, err := sampledata.Write(t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"summary", src})
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "vehicles: 4")
	assert.Contains(t, out, "trips: 12 (8 service, 4 deadhead)")
	assert.Contains(t, out, "seat distance traveled: 1815600")
}

func TestExportCommandJSON(t *testing.T) {
	src, err := sampledata.Write(t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"export", src, "--format", "json"})
	require.NoError(t, rootCmd.Execute())

	var rows []gantt.Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	assert.Len(t, rows, 12)
}
