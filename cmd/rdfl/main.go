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

// Command rdfl reduces temporal flicker in YUV4MPEG2 video.
//
// Usage:
//
//	rdfl run -i in.y4m -o out.y4m --strength 2 --aggressive
//	rdfl run -i in.y4m -o - --config rdfl.yaml | ffmpeg -i - out.mkv
//	rdfl stat -i in.y4m --compare
//	rdfl info
//
// A YAML file passed with --config supplies defaults for every filter
// flag; flags given on the command line override it.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
