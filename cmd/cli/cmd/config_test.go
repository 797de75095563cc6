package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VWIP/price-checker/internal/config"
	"github.com/VWIP/price-checker/internal/errors"
)

func TestConfigShowPrintsActiveConfig(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runConfigShow(cmd, nil))

	out := buf.String()
	assert.Contains(t, out, `"default_tax_percent": 2.7`)
	assert.Contains(t, out, `"discount_presets"`)
	assert.Contains(t, out, `"currency": "USD"`)
}

func TestConfigInitWritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	configInitPath = path

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runConfigInit(cmd, nil))
	assert.Contains(t, buf.String(), path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Order.DefaultTaxPercent, loaded.Order.DefaultTaxPercent)
	assert.Equal(t, []float64{10, 15, 20}, loaded.Order.DiscountPresets)
}

func TestConfigInitUnwritablePath(t *testing.T) {
	// A file standing in for the parent directory makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	configInitPath = filepath.Join(blocker, "sub", "config.json")

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	err := runConfigInit(cmd, nil)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}
