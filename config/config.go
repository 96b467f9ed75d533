// Package config loads vasm.toml, the compile-option defaults applied
// before CLI flags: a [compat ...] directive or CLI --format both
// supersede it, so this file is the lowest-priority layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/kdgonz7/vasm/options"
)

// File mirrors the on-disk shape of vasm.toml. Unset string fields leave
// the corresponding options.Options field at its built-in default.
type File struct {
	Compile struct {
		Format            string `toml:"format"`
		Output            string `toml:"output"`
		Stylist           bool   `toml:"stylist"`
		StrictStylist     bool   `toml:"strict_stylist"`
		AllowBigNumbers   bool   `toml:"allow_big_numbers"`
		Endian            string `toml:"endian"`
		OptimizationLevel int    `toml:"optimization_level"`
	} `toml:"compile"`
}

// Default returns a File matching options.Default(), so a freshly
// generated vasm.toml documents every knob at its shipped default.
func Default() *File {
	f := &File{}
	f.Compile.Output = "a.out"
	f.Compile.Stylist = true
	f.Compile.StrictStylist = false
	f.Compile.AllowBigNumbers = false
	f.Compile.Endian = "little"
	f.Compile.OptimizationLevel = 0
	return f
}

// Path returns the platform-specific vasm.toml location, following the
// teacher's GetConfigPath OS switch (XDG on Linux/macOS, %APPDATA% on
// Windows) with the arm-emu app name replaced by vasm.
func Path() string {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "vasm")
	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "vasm.toml"
		}
		dir = filepath.Join(home, ".config", "vasm")
	default:
		return "vasm.toml"
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "vasm.toml"
	}
	return filepath.Join(dir, "vasm.toml")
}

// Load reads vasm.toml from its default path. A missing file is not an
// error: it just means every option stays at its built-in default.
func Load() (*File, error) {
	return LoadFrom(Path())
}

// LoadFrom reads vasm.toml from an explicit path.
func LoadFrom(path string) (*File, error) {
	f := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return f, nil
	}
	if _, err := toml.DecodeFile(path, f); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return f, nil
}

// Apply merges the file's settings into opts wherever the CLI has not
// already pinned a value: CLI over config file over built-in default.
func (f *File) Apply(opts *options.Options) {
	if f.Compile.Format != "" && !opts.FormatSetByCLI {
		if format, ok := options.ParseFormat(f.Compile.Format); ok {
			opts.Format = format
		}
	}
	if f.Compile.Output != "" && opts.Output == "a.out" {
		opts.Output = f.Compile.Output
	}
	if f.Compile.Endian == "big" {
		opts.Endian = options.BigEndian
	}
	opts.StylistEnabled = f.Compile.Stylist
	opts.StrictStylist = f.Compile.StrictStylist
	opts.AllowBigNumbers = f.Compile.AllowBigNumbers
	opts.OptimizationLevel = uint8(f.Compile.OptimizationLevel)
}
