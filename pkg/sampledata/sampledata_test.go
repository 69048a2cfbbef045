package sampledata

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledSamplesAreValidJSON(t *testing.T) {
	assert.True(t, json.Valid(Raw()))
	assert.True(t, json.Valid(RawLegacy()))
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Raw(), data)

	legacy, err := WriteLegacy(dir)
	require.NoError(t, err)
	assert.NotEqual(t, path, legacy)
}
