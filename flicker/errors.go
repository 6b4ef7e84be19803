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

import "errors"

var (
	// ErrConfig reports an invalid Config.
	ErrConfig = errors.New("reduceflicker: invalid configuration")

	// ErrUnsupportedFormat reports a clip the filter cannot process.
	ErrUnsupportedFormat = errors.New("reduceflicker: unsupported format")

	// ErrFrameRange reports a frame index outside the clip.
	ErrFrameRange = errors.New("reduceflicker: frame index out of range")
)
