// Package config holds the interpreter's on-disk configuration.
package config

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// ConfigurationName is the file read from the configuration directory.
const ConfigurationName = "config.yaml"

// Configuration controls the interactive shell's environment defaults.
type Configuration struct {
	// Prompt is written, flushed, before each read.
	Prompt string `json:"prompt" validate:"required"`

	// HistoryFile is where the line editor persists history. A leading ~ is
	// expanded; empty disables persistence.
	HistoryFile string `json:"history_file"`

	// DefaultPath seeds PATH when the host environment doesn't provide one.
	DefaultPath string `json:"default_path" validate:"required"`

	// LogLevel sets the diagnostic log verbosity.
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Prompt:      "$ ",
		HistoryFile: "",
		DefaultPath: "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin",
		LogLevel:    "warn",
	}
}

// Load reads the configuration at path from fsys, layering it over the
// defaults. A missing file is not an error; a malformed or invalid one is.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	out := Default()

	contents, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return out, nil
	case err != nil:
		return nil, err
	}

	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}
