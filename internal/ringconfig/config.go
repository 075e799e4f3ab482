// Package ringconfig loads ringctl's on-disk configuration and builds a
// [ring.Ring] from it.
package ringconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds the on-disk configuration for a ring, loaded from a JSONC
// file (comments and trailing commas allowed).
type Config struct {
	Directory string `json:"directory"` //nolint:tagliatelle

	// ChecksumAlgo is "none" (default), "crc32", or "sha256".
	ChecksumAlgo string `json:"checksum_algorithm"` //nolint:tagliatelle

	// DeleteStrategy is "unlink" (default) or "truncate".
	DeleteStrategy string `json:"delete_strategy,omitempty"` //nolint:tagliatelle
}

// ConfigFileName is the default project config file name, looked up in the
// working directory when no --config flag is given.
const ConfigFileName = ".ringctl.json"

var (
	errConfigFileNotFound = errors.New("config file not found")
	errConfigFileRead     = errors.New("could not read config file")
	errConfigInvalid      = errors.New("invalid config file")
)

// DefaultConfig returns the default configuration: the ring directory is the
// working directory, no integrity checking, unlink deletes.
func DefaultConfig() Config {
	return Config{Directory: ".", ChecksumAlgo: "none", DeleteStrategy: "unlink"}
}

// LoadConfigInput bundles the inputs LoadConfig needs to resolve a Config
// from defaults, an optional file, and CLI overrides.
type LoadConfigInput struct {
	WorkDir           string
	ConfigPath        string
	DirectoryOverride string
	HasDirOverride    bool
}

// LoadConfig loads configuration with precedence (highest wins): defaults,
// then the project config file (explicit ConfigPath, or ConfigFileName in
// WorkDir if present), then CLI overrides.
func LoadConfig(in LoadConfigInput) (cfg Config, loadedFrom string, err error) {
	cfg = DefaultConfig()

	cfgFile := in.ConfigPath
	mustExist := cfgFile != ""

	switch {
	case cfgFile == "":
		cfgFile = filepath.Join(in.WorkDir, ConfigFileName)
	case !filepath.IsAbs(cfgFile):
		cfgFile = filepath.Join(in.WorkDir, cfgFile)
	}

	fileCfg, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if loaded {
		loadedFrom = cfgFile
		cfg = mergeConfig(cfg, fileCfg)
	}

	if in.HasDirOverride {
		cfg.Directory = in.DirectoryOverride
	}

	if !filepath.IsAbs(cfg.Directory) {
		cfg.Directory = filepath.Join(in.WorkDir, cfg.Directory)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, "", err
	}

	return cfg, loadedFrom, nil
}

func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if os.IsNotExist(err) {
			if mustExist {
				return Config{}, false, fmt.Errorf("%w: %s", errConfigFileNotFound, path)
			}

			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w: %s", errConfigFileRead, path)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

func mergeConfig(base, override Config) Config {
	if override.Directory != "" {
		base.Directory = override.Directory
	}

	if override.ChecksumAlgo != "" {
		base.ChecksumAlgo = override.ChecksumAlgo
	}

	if override.DeleteStrategy != "" {
		base.DeleteStrategy = override.DeleteStrategy
	}

	return base
}

func validateConfig(cfg Config) error {
	switch cfg.ChecksumAlgo {
	case "", "none", "crc32", "sha256":
	default:
		return fmt.Errorf("%w: unknown checksum_algorithm %q", errConfigInvalid, cfg.ChecksumAlgo)
	}

	switch cfg.DeleteStrategy {
	case "", "unlink", "truncate":
	default:
		return fmt.Errorf("%w: unknown delete_strategy %q", errConfigInvalid, cfg.DeleteStrategy)
	}

	return nil
}
