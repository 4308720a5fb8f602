// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// config is the teiutil configuration, read from an optional yaml file with
// environment variable overrides.
type config struct {
	// DataDirs are extra directories searched for dictionaries in addition to
	// the standard locations.
	DataDirs []string `yaml:"data_dirs" env:"TEIDICT_DATA_DIR"`

	Log logConfig `yaml:"log"`
}

// logConfig holds logging settings.
type logConfig struct {
	// Level is one of: debug, info, warn, error (case-insensitive).
	Level string `yaml:"level" env:"TEIDICT_LOG_LEVEL" env-default:"info"`

	// Format is either "text" or "json".
	Format string `yaml:"format" env:"TEIDICT_LOG_FORMAT" env-default:"text"`
}

// configPath returns the config file path. The TEIDICT_CONFIG environment
// variable takes precedence over the default location in the user's config
// directory.
func configPath() string {
	if path := os.Getenv("TEIDICT_CONFIG"); path != "" {
		return path
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "teiutil", "config.yaml")
}

// loadConfig reads the configuration. A missing config file is not an error;
// defaults and environment variables apply.
func loadConfig() (*config, error) {
	var cfg config

	path := configPath()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("reading config %q: %w", path, err)
			}
			return &cfg, nil
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return &cfg, nil
}

// dataDirs returns the directories searched for dictionaries: configured
// directories first, then the standard per-OS locations.
func (c *config) dataDirs() []string {
	return append(c.DataDirs, dictLocations()...)
}
