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
	"fmt"
	"sort"
)

// Config describes the GPIO port groups to be overlaid on the register
// window. A configuration is initialised through config methods on this
// structure e.g:
//   c := gpio.NewConfig()
//   c.AddPort("B", 0x23).AddPort("D", 0x29)
//   d, err := gpio.Open(c)
type Config struct {
	ports map[string]uintptr
}

// The default config.
// The default configuration is the ATmega328P port map (ports B, C and
// D), the most common chip in the supported set.
//
// Before the device is opened, this may be modified to overwrite the
// default configuration e.g
// DefaultConfig.Clear().AddPort("B", 0x36)
var DefaultConfig *Config

func init() {
	DefaultConfig = NewConfig()
	DefaultConfig.AddPort("B", 0x23).AddPort("C", 0x26).AddPort("D", 0x29)
}

// NewConfig creates an empty Config.
func NewConfig() *Config {
	c := new(Config)
	c.Clear()
	return c
}

// Clear resets the configuration.
func (c *Config) Clear() *Config {
	c.ports = make(map[string]uintptr)
	return c
}

// AddPort adds a GPIO port group named name, with the group's first
// register (the input level register) at offset base within the
// register window. The direction and output registers follow at the
// next two offsets. Adding a port with an existing name replaces it.
func (c *Config) AddPort(name string, base uintptr) *Config {
	c.ports[name] = base
	return c
}

// ChipConfig creates a Config holding the port map of a named chip
// from the built-in chip descriptions.
func ChipConfig(name string) (*Config, error) {
	ci, err := LookupChip(name)
	if err != nil {
		return nil, err
	}
	c := NewConfig()
	for pn, base := range ci.Ports {
		c.AddPort(pn, uintptr(base))
	}
	return c, nil
}

// portNames returns the configured port names in a stable order.
func (c *Config) portNames() []string {
	names := make([]string, 0, len(c.ports))
	for n := range c.ports {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// extent returns the number of register window bytes needed to cover
// every configured port group.
func (c *Config) extent() uintptr {
	var end uintptr
	for _, base := range c.ports {
		if base+portSpan > end {
			end = base + portSpan
		}
	}
	return end
}

// validate checks that the configuration describes a usable layout:
// at least one port, and no two port groups sharing any register byte.
// Overlapping groups would make the byte and bit views of one port
// alias another port's storage.
func (c *Config) validate() error {
	if len(c.ports) == 0 {
		return fmt.Errorf("no ports configured")
	}
	names := c.portNames()
	for i, a := range names {
		for _, b := range names[i+1:] {
			ab, bb := c.ports[a], c.ports[b]
			if ab < bb+portSpan && bb < ab+portSpan {
				return fmt.Errorf("port %s (0x%02x) overlaps port %s (0x%02x)", a, ab, b, bb)
			}
		}
	}
	return nil
}
