package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "ASSETLINT_"

// ConfigFileNames are looked up, in order, in the root directory
var ConfigFileNames = []string{"assetlint.toml", ".assetlint.toml"}

// LoadOptions defines explicit configuration loading inputs
type LoadOptions struct {
	// ConfigFile forces loading from a specific file, which must exist
	ConfigFile string
	// Root overrides the root directory, both for the config file lookup
	// and for resolving categories
	Root string
	// Overrides are applied last, keyed by koanf path (e.g. "concurrency")
	Overrides map[string]interface{}
}

// Default returns the configuration built from the embedded defaults only,
// ignoring config files and the environment
func Default() *Config {
	k := koanf.New(".")
	cfg := &Config{}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err == nil {
		if err := unmarshal(k, cfg); err == nil {
			return cfg
		}
	}
	// Fallback to the fixed rules if the embedded file is unusable
	return &Config{
		Root:       ".",
		Categories: []string{"sounds", "textures"},
		Files:      Files{Meta: "meta.json", Splash: "Splash.png"},
		Meta: Meta{
			Required: []string{"source", "author"},
			URLs:     []string{"source", "twitter", "itch", "donate", "patreon", "twitch"},
		},
	}
}

// Load builds the effective configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	rootDir := opts.Root
	if rootDir == "" {
		rootDir = os.Getenv(EnvPrefix + "ROOT")
	}
	if rootDir == "" {
		rootDir = "."
	}

	// 2. Config file
	configPath, err := resolveConfigFile(opts.ConfigFile, rootDir)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", configPath).
				WithDetail("path", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded config file")
	}

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Explicit overrides
	overrides := make(map[string]interface{}, len(opts.Overrides)+1)
	for key, value := range opts.Overrides {
		overrides[key] = value
	}
	if opts.Root != "" {
		overrides["root"] = opts.Root
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := unmarshal(k, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", cfg.Root).
		Strs("categories", cfg.Categories).
		Int("concurrency", cfg.Concurrency).
		Msg("Configuration loaded")

	return &cfg, nil
}

// resolveConfigFile returns the config file to load, or "" when none applies
func resolveConfigFile(explicit, rootDir string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file not found: %s", explicit).
				WithDetail("path", explicit)
		}
		if info.IsDir() {
			return "", errors.Newf(errors.ErrConfigLoad, "config file is a directory: %s", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	for _, name := range ConfigFileNames {
		path := filepath.Join(rootDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

func unmarshal(k *koanf.Koanf, cfg *Config) error {
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	return k.UnmarshalWithConf("", cfg, unmarshalConf)
}
