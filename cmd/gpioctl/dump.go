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

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/avrio/gpio"
)

var (
	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Hex dump the register window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDevice()
			if err != nil {
				return err
			}
			defer d.Close()
			fmt.Println(d.Description())
			r := d.Regs.Open()
			b := make([]byte, 16)
			for offs := 0; ; offs += len(b) {
				n, err := r.Read(b)
				if n > 0 {
					fmt.Printf("%04x:", offs)
					for _, c := range b[:n] {
						fmt.Printf(" %02x", c)
					}
					fmt.Println()
				}
				if err == io.EOF || n < len(b) {
					break
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	chipsCmd = &cobra.Command{
		Use:   "chips",
		Short: "List the built-in chip descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range gpio.Chips() {
				ci, err := gpio.LookupChip(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s: ports", ci.Name)
				for _, pn := range portNames(ci) {
					fmt.Printf(" %s=0x%02x", pn, ci.Ports[pn])
				}
				fmt.Println()
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(dumpCmd, chipsCmd)
}

func portNames(ci *gpio.ChipInfo) []string {
	names := make([]string, 0, len(ci.Ports))
	for n := range ci.Ports {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
