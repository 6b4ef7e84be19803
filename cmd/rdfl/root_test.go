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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePlanes(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "1,1,1", want: []int{1, 1, 1}},
		{in: "1, 0, 0", want: []int{1, 0, 0}},
		{in: "1,,0", want: []int{1, 0}},
		{in: "", want: []int{}},
		{in: "1,x", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parsePlanes(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parsePlanes(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePlanes(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parsePlanes(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdfl.yaml")
	data := []byte("strength: 3\naggressive: true\nplanes: [1, 0, 0]\njobs: 4\nsnapshot_frame: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	want := defaultFileConfig()
	want.Strength = 3
	want.Aggressive = true
	want.Planes = []int{1, 0, 0}
	want.Jobs = 4
	want.SnapshotFrame = 7
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("loadConfig mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loadConfig of a missing file succeeded")
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdfl.yaml")
	if err := os.WriteFile(path, []byte("strength: 1\nopt: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := newRunCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "--strength", "3"}); err != nil {
		t.Fatal(err)
	}
	var ff filterFlags
	ff.configPath = path
	ff.strength = 3
	cfg, err := ff.configFrom(cmd.Flags().Changed)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Strength != 3 || cfg.Opt != 1 {
		t.Errorf("got strength=%d opt=%d, want 3 and 1", cfg.Strength, cfg.Opt)
	}
}

func TestFlagsRejectBadStrength(t *testing.T) {
	ff := filterFlags{strength: 5}
	changed := func(name string) bool { return name == "strength" }
	if _, err := ff.configFrom(changed); err == nil {
		t.Error("strength 5 accepted")
	}
}
