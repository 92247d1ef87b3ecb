// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config manages tbprobe's yaml configuration file.
package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/tbprobe/pkg/common"
)

//go:embed config.yaml
var BaseConfigFile []byte

type Config struct {
	// Directories searched for tablebase files.
	Paths []string `yaml:"paths"`

	// Number of positions probed concurrently.
	Workers int `yaml:"workers"`

	file string
}

// Load reads the configuration file at the given path, creating it with
// the default configuration if it doesn't exist.
func Load(file string) (*Config, error) {
	common.TryMkdir(filepath.Dir(file))
	common.TryCreate(file, BaseConfigFile)

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	config := Config{Workers: 1}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if config.Workers < 1 {
		config.Workers = 1
	}

	config.file = file
	return &config, nil
}

// AddPath adds a tablebase search path. It reports false if the path was
// already present.
func (config *Config) AddPath(path string) bool {
	path = filepath.Clean(path)
	for _, p := range config.Paths {
		if p == path {
			return false
		}
	}

	config.Paths = append(config.Paths, path)
	config.Dump()
	return true
}

// RemovePath removes a tablebase search path. It reports false if the
// path wasn't present.
func (config *Config) RemovePath(path string) bool {
	path = filepath.Clean(path)
	for i, p := range config.Paths {
		if p == path {
			config.Paths = append(config.Paths[:i], config.Paths[i+1:]...)
			config.Dump()
			return true
		}
	}

	return false
}

// Dump writes the configuration back to its file.
func (config *Config) Dump() {
	data, err := yaml.Marshal(config)
	if err != nil {
		logrus.Error(err)
		return
	}

	if err := os.WriteFile(config.file, data, common.FilePermissions); err != nil {
		logrus.Error(err)
	}
}
