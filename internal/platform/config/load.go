package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

var profileName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Option adjusts Load.
type Option func(*loadOptions)

type loadOptions struct {
	dir string
}

// WithConfigDir reads the YAML layers from dir instead of "configs".
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.dir = dir }
}

// Load assembles and validates the configuration for profile. Later layers
// win:
//
//	built-in defaults
//	{dir}/base.yaml
//	{dir}/{profile}.yaml
//	APP_* variables, e.g. APP_SERVER_READ_TIMEOUT for server.read_timeout
//
// A relative store.seed_file, from any layer, is resolved against dir so
// the service finds it whatever the working directory.
func Load(profile string, opts ...Option) (*Config, error) {
	if !profileName.MatchString(profile) {
		return nil, fmt.Errorf("invalid profile %q: want letters, digits, '-' or '_'", profile)
	}
	o := loadOptions{dir: "configs"}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, layer := range []string{"base", profile} {
		path := filepath.Join(o.dir, layer+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeys(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading %s* environment: %w", envPrefix, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Store.SeedFile != "" && !filepath.IsAbs(cfg.Store.SeedFile) {
		cfg.Store.SeedFile = filepath.Join(o.dir, cfg.Store.SeedFile)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

// envKeys maps variable names onto the known dotted keys. Swapping
// underscores for dots alone would split read_timeout in two. Variables
// that name no key, such as APP_PROFILE, are skipped.
func envKeys(known []string) func(name, value string) (string, any) {
	byEnv := make(map[string]string, len(known))
	for _, key := range known {
		byEnv[strings.ReplaceAll(key, ".", "_")] = key
	}
	return func(name, value string) (string, any) {
		key, ok := byEnv[strings.ToLower(strings.TrimPrefix(name, envPrefix))]
		if !ok {
			return "", nil
		}
		return key, value
	}
}
