// Copyright 2025 go-reduceflicker Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
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

	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-reduceflicker/flicker"
)

// fileConfig is the layout of the --config file.
//
//	strength: 3
//	aggressive: true
//	planes: [1, 0, 0]
//	opt: 3
//	workers: 4
//	jobs: 8
//	snapshot: frame.tiff
//	snapshot_frame: 120
type fileConfig struct {
	flicker.Config `yaml:",inline"`

	// Jobs is the number of frames filtered at once.
	Jobs int `yaml:"jobs"`

	// Snapshot names a TIFF file that receives plane 0 of SnapshotFrame.
	Snapshot      string `yaml:"snapshot"`
	SnapshotFrame int    `yaml:"snapshot_frame"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{Config: flicker.DefaultConfig()}
}

// loadConfig reads a YAML config file. Keys it does not set keep their
// defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
