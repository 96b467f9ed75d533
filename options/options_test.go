package options_test

import (
	"testing"

	"github.com/kdgonz7/vasm/options"
	"github.com/stretchr/testify/assert"
)

func TestParseFormatCaseInsensitive(t *testing.T) {
	cases := []struct {
		name string
		want options.Format
	}{
		{"OpenLUD", options.OpenLUD},
		{"nexfuse", options.NexFUSE},
		{"MERCURY", options.Mercury},
		{"SiAX", options.SiAX},
		{"jade", options.JADE},
		{"SolarisVM", options.SolarisVM},
	}
	for _, c := range cases {
		got, ok := options.ParseFormat(c.name)
		assert.True(t, ok, c.name)
		assert.Equal(t, c.want, got, c.name)
	}
}

func TestParseFormatUnknown(t *testing.T) {
	_, ok := options.ParseFormat("not-a-real-target")
	assert.False(t, ok)
}

func TestDefaultOptions(t *testing.T) {
	opts := options.Default()
	assert.Equal(t, "a.out", opts.Output)
	assert.True(t, opts.StylistEnabled)
	assert.False(t, opts.FormatSetByCLI)
	assert.Equal(t, options.LittleEndian, opts.Endian)
}
