package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Configuration struct {
	configFs  afero.Fs
	configDir string

	ShellName string `json:"shell_name" validate:"required"`
	Color     string `json:"color" validate:"oneof=auto always never"`

	HistoryFile  string `json:"history_file"`
	HistoryLimit int    `json:"history_limit" validate:"gte=0"`

	// CommandTimeout is a Go duration, 0s disables the limit.
	CommandTimeout string `json:"command_timeout" validate:"duration"`

	EventLog     string `json:"event_log"`
	RecordingDir string `json:"recording_dir"`
	ShowBanner   bool   `json:"show_banner"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})
	if err := validate.RegisterValidation("duration", validateDuration); err != nil {
		return err
	}

	return validate.Struct(c)
}

func validateDuration(fl validator.FieldLevel) bool {
	d, err := time.ParseDuration(fl.Field().String())
	return err == nil && d >= 0
}

// Dir returns the directory the configuration was loaded from.
func (c *Configuration) Dir() string {
	return c.configDir
}

// Timeout returns the limit for external commands, zero means unlimited.
func (c *Configuration) Timeout() time.Duration {
	d, err := time.ParseDuration(c.CommandTimeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// HistoryPath returns the absolute path of the history file or an empty
// string if history is disabled.
func (c *Configuration) HistoryPath() string {
	return c.resolve(c.HistoryFile)
}

// EventLogPath returns the absolute path of the event log or an empty string
// if event logging is disabled.
func (c *Configuration) EventLogPath() string {
	return c.resolve(c.EventLog)
}

// RecordingPath returns the absolute directory for session recordings or an
// empty string if recording is disabled.
func (c *Configuration) RecordingPath() string {
	return c.resolve(c.RecordingDir)
}

// CreateRecording creates a new file called name in the recording directory.
func (c *Configuration) CreateRecording(name string) (afero.File, error) {
	if c.RecordingDir == "" {
		return nil, fmt.Errorf("recording_dir is not configured")
	}

	dir := c.RecordingPath()
	if err := c.fs().MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return c.fs().OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
}

func (c *Configuration) resolve(name string) string {
	switch {
	case name == "":
		return ""
	case filepath.IsAbs(name) || c.configDir == "":
		return name
	default:
		return filepath.Join(c.configDir, name)
	}
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, fmt.Errorf("event_log is not configured")
	}
	return c.fs().OpenFile(c.EventLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, fmt.Errorf("event_log is not configured")
	}
	return c.fs().Open(c.EventLogPath())
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// Default returns the built-in configuration rooted at dir.
func Default(dir string) *Configuration {
	out := defaultConfig()
	out.configDir = dir
	return out
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
