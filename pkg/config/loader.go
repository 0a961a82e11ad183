package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/assetpipe/pkg/errors"
	"github.com/arthur-debert/assetpipe/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "ASSETPIPE_"

// FileNames are the config files looked up in the working directory, in
// order; the first one found is used
var FileNames = []string{"assetpipe.toml", ".assetpipe.toml", "assetpipe.yaml", "assetpipe.yml"}

// LoadOptions control where configuration is read from
type LoadOptions struct {
	// Dir is searched for FileNames and .env. Defaults to the working dir.
	Dir string
	// File, when set, is loaded instead of searching Dir. It must exist.
	File string
	// SkipEnv ignores .env and ASSETPIPE_* variables
	SkipEnv bool
}

// Load builds the configuration: embedded defaults, then the config file,
// then environment variables (after loading Dir/.env if present).
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	if opts.Dir == "" {
		opts.Dir = "."
	}

	path, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	if !opts.SkipEnv {
		dotenv := filepath.Join(opts.Dir, ".env")
		if _, err := os.Stat(dotenv); err == nil {
			if err := godotenv.Load(dotenv); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", dotenv)
			}
			logger.Debug().Str("path", dotenv).Msg("Loaded .env")
		}

		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the embedded defaults alone
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(err)
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// envKey maps ASSETPIPE_SERVER__ADDR to server.addr
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func findConfigFile(opts LoadOptions) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.File).
				WithDetail("path", opts.File)
		}
		return opts.File, nil
	}

	for _, name := range FileNames {
		path := filepath.Join(opts.Dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
