// Package options defines the compile-time configuration shared across
// every pipeline stage: the CompileOptions struct, set by the CLI and
// config file and mutated in place by the preprocessor.
package options

import (
	"fmt"
	"strings"
)

// Format identifies one of the six bytecode targets.
type Format int

const (
	FormatUnset Format = iota
	OpenLUD
	NexFUSE
	Mercury
	SolarisVM
	JADE
	SiAX
)

var formatNames = map[Format]string{
	FormatUnset: "",
	OpenLUD:     "openlud",
	NexFUSE:     "nexfuse",
	Mercury:     "mercury",
	SolarisVM:   "solarisvm",
	JADE:        "jade",
	SiAX:        "siax",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat resolves a format name case-insensitively; an unknown
// name is reported to the caller as a fatal CLI error.
func ParseFormat(name string) (Format, bool) {
	for f, n := range formatNames {
		if f == FormatUnset {
			continue
		}
		if strings.EqualFold(n, name) {
			return f, true
		}
	}
	return FormatUnset, false
}

// Endian selects the byte order used when persisting multi-byte
// target elements.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}

// Options is the CompileOptions record. FormatSetByCLI records whether
// the CLI already pinned Format, so the preprocessor's "compat"
// directive knows whether it's allowed to set it.
type Options struct {
	Files             []string
	Output            string
	Format            Format
	FormatSetByCLI    bool
	StylistEnabled    bool
	StrictStylist     bool
	AllowBigNumbers   bool
	Endian            Endian
	OptimizationLevel uint8
	Verbose           bool
}

// Default returns the CompileOptions defaults before a config file or CLI
// flags are applied.
func Default() Options {
	return Options{
		Output:            "a.out",
		StylistEnabled:    true,
		StrictStylist:     false,
		AllowBigNumbers:   false,
		Endian:            LittleEndian,
		OptimizationLevel: 0,
	}
}
