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
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-reduceflicker/flicker"
)

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "rdfl",
		Short:         "Temporal flicker reduction for YUV4MPEG2 video",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.AddCommand(newRunCmd(), newStatCmd(), newInfoCmd())
	return root
}

// filterFlags are the flags that map onto flicker.Config.
type filterFlags struct {
	configPath string
	strength   int
	aggressive bool
	planes     string
	opt        int
	grayscale  bool
	workers    int
}

func (f *filterFlags) register(cmd *cobra.Command) {
	def := flicker.DefaultConfig()
	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML file with filter settings")
	fl.IntVar(&f.strength, "strength", def.Strength, "temporal radius: 1, 2 or 3")
	fl.BoolVar(&f.aggressive, "aggressive", def.Aggressive, "use the direction-aware tolerance")
	fl.StringVar(&f.planes, "planes", "1,1,1", "per-plane mode, 1 filters and 0 copies")
	fl.IntVar(&f.opt, "opt", def.Opt, "highest instruction tier: 0 scalar, 1 sse2, 2 sse4.1, 3 avx2")
	fl.BoolVar(&f.grayscale, "grayscale", false, "filter the luma plane only")
	fl.IntVar(&f.workers, "workers", 0, "goroutines per frame for row bands (0 = none)")
}

// config merges the config file, if any, with the flags the user set.
func (f *filterFlags) config(cmd *cobra.Command) (fileConfig, error) {
	return f.configFrom(cmd.Flags().Changed)
}

func (f *filterFlags) configFrom(changed func(name string) bool) (fileConfig, error) {
	cfg := defaultFileConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = loadConfig(f.configPath); err != nil {
			return cfg, err
		}
	}
	if changed("strength") {
		cfg.Strength = f.strength
	}
	if changed("aggressive") {
		cfg.Aggressive = f.aggressive
	}
	if changed("planes") {
		planes, err := parsePlanes(f.planes)
		if err != nil {
			return cfg, err
		}
		cfg.Planes = planes
	}
	if changed("opt") {
		cfg.Opt = f.opt
	}
	if changed("grayscale") {
		cfg.Grayscale = f.grayscale
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	return cfg, cfg.Validate()
}

// parsePlanes parses a comma-separated list such as "1,0,0".
func parsePlanes(s string) ([]int, error) {
	fields := lo.Compact(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))
	planes := make([]int, len(fields))
	for i, p := range fields {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("--planes: %q is not a number", p)
		}
		planes[i] = v
	}
	return planes, nil
}
