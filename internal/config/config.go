package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/askedit/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyManifest  = "manifest"
	KeyModelsDir = "models_dir"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// DefaultManifest is the manifest file name looked up in the working directory.
const DefaultManifest = "skill.json"

// DefaultModelsDir is the models directory name, relative to the manifest.
const DefaultModelsDir = "models"

// Keys lists every setting understood by the CLI.
var Keys = []string{KeyManifest, KeyModelsDir, KeyLogLevel, KeyLogFormat}

// Dir returns the path to the config directory (~/.askedit/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.askedit/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyManifest, DefaultManifest)
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyLogFormat, "text")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// ManifestPath returns the configured manifest path.
func ManifestPath() string {
	return Get(KeyManifest)
}

// ModelsDir returns the configured models directory. When none is set it is
// the "models" directory next to manifestPath.
func ModelsDir(manifestPath string) string {
	if dir := Get(KeyModelsDir); dir != "" {
		return dir
	}
	return filepath.Join(filepath.Dir(manifestPath), DefaultModelsDir)
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
