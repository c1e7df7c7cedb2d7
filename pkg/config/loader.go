package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/requiremedia/pkg/errors"
)

// EnvPrefix is the prefix of environment overrides (REQUIREMEDIA_BASE_URL).
const EnvPrefix = "REQUIREMEDIA"

// Load builds a Config from the defaults, an optional file and the
// environment, in increasing order of precedence. An empty path skips the
// file. The file format follows its extension (toml, yaml, yml, json).
//
// Renderer entries from the file are merged with the default js and css
// renderers; a file entry for "js" replaces the default one field by field.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every leaf of def so that environment overrides
// and partial files resolve against it.
func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("groups", def.Groups)
	for group, r := range def.Renderers {
		prefix := "renderers." + group + "."
		v.SetDefault(prefix+"directory", r.Directory)
		v.SetDefault(prefix+"external_template", r.ExternalTemplate)
		v.SetDefault(prefix+"inline_template", r.InlineTemplate)
	}
}
