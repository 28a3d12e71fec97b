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
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed boards.yaml
var rawChips []byte

// ChipInfo describes the GPIO port map of one supported chip.
type ChipInfo struct {
	Name    string            `yaml:"name"`
	Aliases []string          `yaml:"aliases"`
	Ports   map[string]uint16 `yaml:"ports"`
}

type chipFile struct {
	Chips []ChipInfo `yaml:"chips"`
}

var chips []ChipInfo

func init() {
	var cf chipFile
	if err := yaml.Unmarshal(rawChips, &cf); err != nil {
		// The chip table is embedded at build time; a parse failure
		// is a defect in the shipped data.
		panic(fmt.Sprintf("boards.yaml: %v", err))
	}
	chips = cf.Chips
}

// Chips returns the names of the built-in chip descriptions.
func Chips() []string {
	names := make([]string, len(chips))
	for i, c := range chips {
		names[i] = c.Name
	}
	return names
}

// LookupChip returns the chip description matching name, either by
// chip name or by one of its aliases. Matching is case-insensitive.
func LookupChip(name string) (*ChipInfo, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := range chips {
		if chips[i].Name == n || slices.Contains(chips[i].Aliases, n) {
			return &chips[i], nil
		}
	}
	return nil, fmt.Errorf("unknown chip %q", name)
}
