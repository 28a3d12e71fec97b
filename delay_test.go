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

import (
	"testing"
	"time"
)

func TestDelayLowerBound(t *testing.T) {
	const d = 20 * time.Millisecond
	start := time.Now()
	Delay(d)
	if elapsed := time.Since(start); elapsed < d {
		t.Fatalf("Delay(%v) returned after %v", d, elapsed)
	}
}

func TestDelayMillis(t *testing.T) {
	start := time.Now()
	DelayMillis(10)
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("DelayMillis(10) returned after %v", elapsed)
	}
}

func TestTicks(t *testing.T) {
	if got := Ticks(time.Microsecond); got != 16 {
		t.Fatalf("Ticks(1us): got %d, want 16", got)
	}
	if got := MicroSeconds2Ticks(5); got != 80 {
		t.Fatalf("MicroSeconds2Ticks(5): got %d, want 80", got)
	}
	if got := Duration(16); got != time.Microsecond {
		t.Fatalf("Duration(16): got %v, want 1us", got)
	}
	if got := Duration(32); got != 2*time.Microsecond {
		t.Fatalf("Duration(32): got %v, want 2us", got)
	}
}
