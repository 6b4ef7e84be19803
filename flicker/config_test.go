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

package flicker

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"strength 1", func(c *Config) { c.Strength = 1 }, true},
		{"strength 3 aggressive", func(c *Config) { c.Strength, c.Aggressive = 3, true }, true},
		{"strength 0", func(c *Config) { c.Strength = 0 }, false},
		{"strength 4", func(c *Config) { c.Strength = 4 }, false},
		{"opt 0", func(c *Config) { c.Opt = 0 }, true},
		{"opt 4", func(c *Config) { c.Opt = 4 }, false},
		{"opt -1", func(c *Config) { c.Opt = -1 }, false},
		{"planes ok", func(c *Config) { c.Planes = []int{1, 0, 1} }, true},
		{"planes short", func(c *Config) { c.Planes = []int{0} }, true},
		{"planes too many", func(c *Config) { c.Planes = []int{1, 1, 1, 1} }, false},
		{"planes value", func(c *Config) { c.Planes = []int{1, 2} }, false},
		{"workers negative", func(c *Config) { c.Workers = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrConfig) {
				t.Errorf("Validate() = %v, want ErrConfig", err)
			}
		})
	}
}

func TestConfigProcessMask(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want [3]bool
	}{
		{"default", DefaultConfig(), [3]bool{true, true, true}},
		{"copy chroma", Config{Strength: 2, Planes: []int{1, 0, 0}}, [3]bool{true, false, false}},
		{"missing entries", Config{Strength: 2, Planes: []int{0}}, [3]bool{false, true, true}},
		{"grayscale", Config{Strength: 2, Grayscale: true}, [3]bool{true, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.process()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("process() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrengthMessage(t *testing.T) {
	err := Config{Strength: 5}.Validate()
	if err == nil || err.Error() != "reduceflicker: invalid configuration: strength must be set to 1, 2 or 3." {
		t.Errorf("Validate() = %v", err)
	}
}
