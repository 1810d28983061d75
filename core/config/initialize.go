package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir.
func Initialize(dir string, logger *log.Logger) error {
	return InitializeFs(afero.NewOsFs(), dir, logger)
}

// InitializeFs writes the default configuration into dir on fs. An existing
// configuration is never overwritten.
func InitializeFs(fs afero.Fs, dir string, logger *log.Logger) error {
	logger.Printf("Creating configuration directory %q\n", dir)
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	switch exists, err := afero.Exists(fs, configPath); {
	case err != nil:
		return err
	case exists:
		return fmt.Errorf("%s already exists: %w", configPath, os.ErrExist)
	}

	logger.Printf("Writing %q\n", configPath)
	return afero.WriteFile(fs, configPath, defaultConfigData, 0600)
}
