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

// gpioctl inspects and drives AVR style GPIO register groups, either
// on a hosted in-memory register file or on a real memory mapped
// register window.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avrio/gpio"
)

var (
	chipName string
	useHw    bool

	rootCmd = &cobra.Command{
		Use:   "gpioctl",
		Short: "Inspect and drive GPIO port registers",
		Long: "gpioctl reads and writes AVR style GPIO registers (PIN/DDR/PORT)\n" +
			"at byte or bit granularity. Without --hw it operates on a hosted\n" +
			"in-memory register file.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&chipName, "chip", "c", "atmega328p", "Chip port map to use")
	rootCmd.PersistentFlags().BoolVar(&useHw, "hw", false, "Use the memory mapped hardware window")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openDevice opens the register window selected by the global flags.
func openDevice() (*gpio.Device, error) {
	pc, err := gpio.ChipConfig(chipName)
	if err != nil {
		return nil, err
	}
	if useHw {
		return gpio.Open(pc)
	}
	return gpio.OpenMem(pc)
}

// parsePin decodes and range checks a pin number argument.
func parsePin(s string) (gpio.Pin, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad pin %q: %v", s, err)
	}
	if n < 0 || n >= gpio.NumPins {
		return 0, fmt.Errorf("pin %d out of range 0..%d", n, gpio.NumPins-1)
	}
	return gpio.Pin(n), nil
}

// parseByte decodes a byte value argument, accepting 0x prefixed hex.
func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("bad byte value %q: %v", s, err)
	}
	return uint8(v), nil
}
