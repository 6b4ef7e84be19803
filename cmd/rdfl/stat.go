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
	"io"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-reduceflicker/flicker"
	"github.com/ajroetker/go-reduceflicker/hwy"
	"github.com/ajroetker/go-reduceflicker/source"
	"github.com/ajroetker/go-reduceflicker/stats"
)

func newStatCmd() *cobra.Command {
	var (
		ff      filterFlags
		input   string
		compare bool
	)
	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Measure frame-to-frame brightness flicker",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ff.config(cmd)
			if err != nil {
				return err
			}
			win := flicker.ResolveWindow(0, 0, cfg.Strength)
			window := 1 + win.PrevTaps + win.NextTaps

			src, err := source.OpenY4M(input, window+1)
			if err != nil {
				return err
			}
			defer src.Close()
			before, err := stats.Analyze(cmd.Context(), src)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), "input", before)
			if !compare {
				return nil
			}

			again, err := source.OpenY4M(input, window+1)
			if err != nil {
				return err
			}
			defer again.Close()
			f, err := flicker.New(again, cfg.Config, hwy.DetectCapabilities())
			if err != nil {
				return err
			}
			defer f.Close()
			after, err := stats.Analyze(cmd.Context(), f)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), "filtered ("+f.Describe()+")", after)
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "", "input .y4m file")
	cmd.Flags().BoolVar(&compare, "compare", false, "also measure the filtered clip")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func printReport(w io.Writer, title string, r stats.Report) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintf(w, "  frames:            %d\n", r.Frames)
	fmt.Fprintf(w, "  mean |delta|:      %.6f\n", r.MeanDelta)
	fmt.Fprintf(w, "  std dev of delta:  %.6f\n", r.DeltaStdDev)
	fmt.Fprintf(w, "  largest delta:     %.6f (into frame %d)\n", r.MaxDelta, r.MaxDeltaAt)
}
