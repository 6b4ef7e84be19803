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

import "fmt"

// Config holds the user-facing parameters of a Filter. It is copied at
// construction and never changes afterwards.
type Config struct {
	// Strength is the temporal radius: 1, 2 or 3 frames on each side.
	Strength int `yaml:"strength"`

	// Aggressive selects the direction-aware tolerance.
	Aggressive bool `yaml:"aggressive"`

	// Planes holds up to three entries, one per plane: 1 filters the
	// plane, 0 copies it from the source. Missing entries default to 1.
	Planes []int `yaml:"planes"`

	// Opt caps the instruction tier: 0 scalar, 1 SSE2, 2 SSE4.1,
	// 3 AVX2. Lower tiers are used silently when the CPU lacks the
	// requested one.
	Opt int `yaml:"opt"`

	// Grayscale filters plane 0 only and copies the chroma planes.
	Grayscale bool `yaml:"grayscale"`

	// Workers is the number of goroutines rows are split across.
	// 0 or 1 filters on the calling goroutine.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns strength 2, basic variant, every plane filtered,
// highest tier allowed.
func DefaultConfig() Config {
	return Config{Strength: 2, Opt: 3}
}

// process returns the per-plane filter mask.
func (c Config) process() ([3]bool, error) {
	mask := [3]bool{true, true, true}
	if len(c.Planes) > 3 {
		return mask, fmt.Errorf("%w: length of 'planes' must be equal or smaller than 3.", ErrConfig)
	}
	for i, p := range c.Planes {
		if p != 0 && p != 1 {
			return mask, fmt.Errorf("%w: each 'planes' must be set to 0(copy from source) or 1(process).", ErrConfig)
		}
		mask[i] = p == 1
	}
	if c.Grayscale {
		mask[1], mask[2] = false, false
	}
	return mask, nil
}

// Validate checks every field without looking at a clip.
func (c Config) Validate() error {
	if c.Strength < 1 || c.Strength > 3 {
		return fmt.Errorf("%w: strength must be set to 1, 2 or 3.", ErrConfig)
	}
	if c.Opt < 0 || c.Opt > 3 {
		return fmt.Errorf("%w: opt must be between 0 and 3.", ErrConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative.", ErrConfig)
	}
	_, err := c.process()
	return err
}
