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
	"time"

	"github.com/spf13/cobra"

	"github.com/avrio/gpio"
)

var (
	getCmd = &cobra.Command{
		Use:   "get <port> <reg> [pin]",
		Short: "Read a register byte, or one bit of it",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDevice()
			if err != nil {
				return err
			}
			defer d.Close()
			p, err := d.Port(args[0])
			if err != nil {
				return err
			}
			r, err := p.Reg(args[1])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				fmt.Printf("0x%02x\n", r.Byte())
				return nil
			}
			n, err := parsePin(args[2])
			if err != nil {
				return err
			}
			fmt.Printf("%d\n", boolBit(r.Bit(n)))
			return nil
		},
	}

	setCmd = &cobra.Command{
		Use:   "set <port> <reg> <pin> <0|1>",
		Short: "Set or clear one bit of a register",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDevice()
			if err != nil {
				return err
			}
			defer d.Close()
			p, err := d.Port(args[0])
			if err != nil {
				return err
			}
			r, err := p.Reg(args[1])
			if err != nil {
				return err
			}
			n, err := parsePin(args[2])
			if err != nil {
				return err
			}
			switch args[3] {
			case "0":
				r.Clear(n)
			case "1":
				r.Set(n)
			default:
				return fmt.Errorf("bad bit value %q, want 0 or 1", args[3])
			}
			fmt.Printf("0x%02x\n", r.Byte())
			return nil
		},
	}

	putCmd = &cobra.Command{
		Use:   "put <port> <reg> <byte>",
		Short: "Store a whole byte into a register",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDevice()
			if err != nil {
				return err
			}
			defer d.Close()
			p, err := d.Port(args[0])
			if err != nil {
				return err
			}
			r, err := p.Reg(args[1])
			if err != nil {
				return err
			}
			v, err := parseByte(args[2])
			if err != nil {
				return err
			}
			r.SetByte(v)
			fmt.Printf("0x%02x\n", r.Byte())
			return nil
		},
	}

	dirCmd = &cobra.Command{
		Use:   "dir <port> <pin> <in|out|pullup>",
		Short: "Configure a pin's direction",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDevice()
			if err != nil {
				return err
			}
			defer d.Close()
			p, err := d.Port(args[0])
			if err != nil {
				return err
			}
			n, err := parsePin(args[1])
			if err != nil {
				return err
			}
			switch args[2] {
			case "in":
				p.Input(n)
			case "out":
				p.Output(n)
			case "pullup":
				p.InputPullup(n)
			default:
				return fmt.Errorf("bad direction %q, want in, out or pullup", args[2])
			}
			fmt.Printf("DDR%s=0x%02x PORT%s=0x%02x\n", args[0], p.DirByte(), args[0], p.OutByte())
			return nil
		},
	}

	blinkInterval time.Duration
	blinkCount    int

	blinkCmd = &cobra.Command{
		Use:   "blink <port> <pin>",
		Short: "Toggle an output pin in a fixed delay loop",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDevice()
			if err != nil {
				return err
			}
			defer d.Close()
			p, err := d.Port(args[0])
			if err != nil {
				return err
			}
			n, err := parsePin(args[1])
			if err != nil {
				return err
			}
			p.Output(n)
			for i := 0; blinkCount == 0 || i < blinkCount; i++ {
				p.Toggle(n)
				fmt.Printf("PORT%s=0x%02x\n", args[0], p.OutByte())
				gpio.Delay(blinkInterval)
			}
			return nil
		},
	}
)

func init() {
	blinkCmd.Flags().DurationVar(&blinkInterval, "interval", time.Second, "Delay between toggles")
	blinkCmd.Flags().IntVar(&blinkCount, "count", 10, "Number of toggles (0 = run forever)")
	rootCmd.AddCommand(getCmd, setCmd, putCmd, dirCmd, blinkCmd)
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
