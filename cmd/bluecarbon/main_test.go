package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconsCommandWritesPNGs(t *testing.T) {
	dir := t.TempDir()
	iconsOut, iconsSize = dir, 24
	defer func() { iconsOut, iconsSize = "icons", 48 }()

	var out bytes.Buffer
	iconsCmd.SetOut(&out)
	require.NoError(t, runIcons(iconsCmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 14)

	data, err := os.ReadFile(filepath.Join(dir, "leaf.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestIconsCommandRejectsBadSize(t *testing.T) {
	iconsSize = 0
	defer func() { iconsSize = 48 }()

	assert.ErrorContains(t, runIcons(iconsCmd, nil), "--size")
}
