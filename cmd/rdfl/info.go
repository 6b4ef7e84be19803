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
	"runtime"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-reduceflicker/flicker"
	"github.com/ajroetker/go-reduceflicker/hwy"
)

func newInfoCmd() *cobra.Command {
	var opt int
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the detected CPU and the kernels that would run",
		RunE: func(cmd *cobra.Command, args []string) error {
			caps := hwy.DetectCapabilities()
			level, err := hwy.ResolveLevel(opt, caps)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "cpu:           %s\n", cpuid.CPU.BrandName)
			fmt.Fprintf(w, "cores:         %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
			fmt.Fprintf(w, "cache line:    %d bytes\n", cpuid.CPU.CacheLine)
			fmt.Fprintf(w, "cpuid flags:   sse2=%v sse4.1=%v avx2=%v\n", cpuid.CPU.SSE2(), cpuid.CPU.SSE4(), cpuid.CPU.AVX2())
			fmt.Fprintf(w, "memory:        %d MiB\n", memory.TotalMemory()/1024/1024)
			fmt.Fprintf(w, "arch:          %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "capabilities:  %s\n", caps)
			if hwy.NoSimdEnv() {
				fmt.Fprintln(w, "               HWY_NO_SIMD is set")
			}
			fmt.Fprintf(w, "tier (opt=%d):  %s, %d-byte blocks\n", opt, level, level.Width())
			for p := flicker.Precision8; p <= flicker.PrecisionFloat; p++ {
				_, backend, err := flicker.Lookup(level, 2, false, p)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "  %-7s -> %s\n", p, backend)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opt, "opt", 3, "highest instruction tier to report")
	return cmd
}
