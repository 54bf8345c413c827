package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "APP_"

	// ConfigDirEnv overrides the directory holding the YAML files when no
	// WithConfigDir option is given.
	ConfigDirEnv = envPrefix + "CONFIG_DIR"

	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads base.yaml and the profile file from dir.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration for profile from four layers, later ones
// winning:
//
//  0. built-in defaults
//  1. {dir}/base.yaml
//  2. {dir}/{profile}.yaml
//  3. APP_* environment variables
//
// dir is WithConfigDir, else $APP_CONFIG_DIR, else ./configs. Environment
// names are matched against the keys the earlier layers defined, so
// underscores inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT          -> server.read_timeout
//	APP_STORAGE_SEED_FILE            -> storage.seed_file
//	APP_STORY_BULK_MAX_ITEMS         -> story.bulk_max_items
//	APP_NOTIFIER_RETRY_MAX_ATTEMPTS  -> notifier.retry.max_attempts
//
// The result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: os.Getenv(ConfigDirEnv)}
	if o.configDir == "" {
		o.configDir = defaultConfigDir
	}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	if err := k.Load(envProvider(k.Keys()), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// envProvider maps APP_* variables onto the known keys. A variable with no
// known key falls back to treating every underscore as nesting.
func envProvider(known []string) *env.Env {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := lookup[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
