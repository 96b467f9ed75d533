package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kdgonz7/vasm/config"
	"github.com/kdgonz7/vasm/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesOptionsDefault(t *testing.T) {
	f := config.Default()
	assert.Equal(t, "a.out", f.Compile.Output)
	assert.True(t, f.Compile.Stylist)
	assert.Equal(t, "little", f.Compile.Endian)
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	f, err := config.LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, "a.out", f.Compile.Output)
}

func TestLoadFromParsesToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vasm.toml")
	contents := "[compile]\nformat = \"nexfuse\"\noutput = \"out.bin\"\nendian = \"big\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	f, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "nexfuse", f.Compile.Format)
	assert.Equal(t, "out.bin", f.Compile.Output)
}

func TestApplyRespectsCLIPrecedence(t *testing.T) {
	f := config.Default()
	f.Compile.Format = "mercury"

	opts := options.Default()
	opts.Format = options.OpenLUD
	opts.FormatSetByCLI = true

	f.Apply(&opts)
	assert.Equal(t, options.OpenLUD, opts.Format, "CLI-set format must not be overridden by config file")
}

func TestApplyFillsUnsetFormat(t *testing.T) {
	f := config.Default()
	f.Compile.Format = "nexfuse"

	opts := options.Default()
	f.Apply(&opts)
	assert.Equal(t, options.NexFUSE, opts.Format)
}
