package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory on the host filesystem.
func Load(path string) (*Configuration, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs loads and validates the configuration from the directory.
func LoadFs(fs afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := afero.ReadFile(fs, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	out := defaultConfig()
	if err := yaml.UnmarshalStrict(configContents, out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigurationName, err)
	}
	out.configFs = fs
	out.configDir = path

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return out, nil
}
