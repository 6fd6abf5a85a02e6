/*
 * config.go, part of gonomen.
 *
 * Copyright 2024 The gonomen authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package config loads the settings of gonomen from defaults, an optional
// YAML file, GONOMEN_* environment variables and command line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/chimie3d/gonomen/internal/logging"
	"github.com/chimie3d/gonomen/isomer"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GONOMEN"

// Output formats for single structures.
const (
	FormatXYZ  = "xyz"
	FormatJSON = "json"
)

type Config struct {
	Log     logging.Config `mapstructure:"log"`
	Isomers IsomersConfig  `mapstructure:"isomers"`
	Output  OutputConfig   `mapstructure:"output"`
}

type IsomersConfig struct {
	// MaxIsomers caps the records of an isomer set.
	MaxIsomers int `mapstructure:"max_isomers"`
	// MaxSkeletons caps the raw skeletons generated, before duplicates go.
	MaxSkeletons int `mapstructure:"max_skeletons"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	// Precision is the number of decimals of XYZ coordinates.
	Precision int `mapstructure:"precision"`
}

// Flags binds command line flags to keys. Flags missing from the set are ignored.
var Flags = map[string]string{
	"log.level":             "log-level",
	"log.format":            "log-format",
	"isomers.max_isomers":   "max-isomers",
	"isomers.max_skeletons": "max-skeletons",
	"output.format":         "format",
	"output.precision":      "precision",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("isomers.max_isomers", isomer.DefaultMaxIsomers)
	v.SetDefault("isomers.max_skeletons", isomer.DefaultMaxSkeletons)
	v.SetDefault("output.format", FormatXYZ)
	v.SetDefault("output.precision", 4)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// Load returns the configuration. path is a YAML file, skipped if empty.
// flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: can't read %q: %w", path, err)
		}
	}
	if flags != nil {
		for key, name := range Flags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: can't bind flag %q: %w", name, err)
				}
			}
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: can't decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration with nothing but the defaults.
func Default() *Config {
	cfg := &Config{}
	v := viper.New()
	setDefaults(v)
	_ = v.Unmarshal(cfg)
	return cfg
}

// Validate rejects caps below 1, negative precisions and unknown formats.
func (C *Config) Validate() error {
	if C.Isomers.MaxIsomers < 1 {
		return fmt.Errorf("config: isomers.max_isomers must be positive, is %d", C.Isomers.MaxIsomers)
	}
	if C.Isomers.MaxSkeletons < 1 {
		return fmt.Errorf("config: isomers.max_skeletons must be positive, is %d", C.Isomers.MaxSkeletons)
	}
	if C.Output.Precision < 0 {
		return fmt.Errorf("config: output.precision can't be negative, is %d", C.Output.Precision)
	}
	switch C.Output.Format {
	case FormatXYZ, FormatJSON:
	default:
		return fmt.Errorf("config: unknown output.format %q, use %q or %q", C.Output.Format, FormatXYZ, FormatJSON)
	}
	switch strings.ToLower(C.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown log.format %q", C.Log.Format)
	}
	return nil
}
