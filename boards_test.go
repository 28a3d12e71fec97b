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

import "testing"

func TestChipsTable(t *testing.T) {
	names := Chips()
	if len(names) == 0 {
		t.Fatalf("no built-in chips")
	}
	found := false
	for _, n := range names {
		if n == "atmega328p" {
			found = true
		}
	}
	if !found {
		t.Fatalf("atmega328p missing from %v", names)
	}
}

func TestLookupChip(t *testing.T) {
	ci, err := LookupChip("atmega328p")
	if err != nil {
		t.Fatalf("LookupChip failed: %v", err)
	}
	if ci.Ports["B"] != 0x23 {
		t.Fatalf("atmega328p port B base: got 0x%02x, want 0x23", ci.Ports["B"])
	}
	// Aliases, case-insensitive.
	for _, alias := range []string{"uno", "UNO", " ATmega328 "} {
		a, err := LookupChip(alias)
		if err != nil {
			t.Fatalf("LookupChip(%q) failed: %v", alias, err)
		}
		if a.Name != "atmega328p" {
			t.Fatalf("LookupChip(%q) resolved to %s", alias, a.Name)
		}
	}
	if _, err := LookupChip("z80"); err == nil {
		t.Fatalf("LookupChip(z80) did not fail")
	}
}

func TestChipLayouts(t *testing.T) {
	// Every shipped chip description must be a valid, non-overlapping
	// port layout.
	for _, name := range Chips() {
		c, err := ChipConfig(name)
		if err != nil {
			t.Fatalf("ChipConfig(%s) failed: %v", name, err)
		}
		if err := c.validate(); err != nil {
			t.Fatalf("chip %s has a bad layout: %v", name, err)
		}
	}
}

func TestTiny85(t *testing.T) {
	ci, err := LookupChip("attiny85")
	if err != nil {
		t.Fatalf("LookupChip failed: %v", err)
	}
	if len(ci.Ports) != 1 || ci.Ports["B"] != 0x36 {
		t.Fatalf("attiny85 port map wrong: %v", ci.Ports)
	}
}
