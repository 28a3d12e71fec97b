// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gpio

import "time"

// Instruction clock rate assumed for cycle conversions, in MHz.
const clockMHz = 16

// Delay blocks the calling goroutine for at least the duration
// specified. It is the hosted equivalent of the fixed busy-wait
// delay used for visible timing in polling loops.
func Delay(d time.Duration) {
	end := time.Now().Add(d)
	for {
		left := time.Until(end)
		if left <= 0 {
			return
		}
		time.Sleep(left)
	}
}

// DelayMillis blocks for at least the number of milliseconds specified.
func DelayMillis(ms int) {
	Delay(time.Duration(ms) * time.Millisecond)
}

// Ticks returns the number of instruction cycles for the duration specified.
func Ticks(d time.Duration) int {
	return int(d.Nanoseconds() * clockMHz / 1000)
}

// MicroSeconds2Ticks returns the number of instruction cycles for the
// microseconds specified.
func MicroSeconds2Ticks(m int) int {
	return m * clockMHz
}

// Duration converts instruction cycles to time.Duration
func Duration(ticks int) time.Duration {
	return time.Duration(ticks) * 125 * time.Nanosecond / 2
}
