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
	"strings"
)

// Register offsets within a port group. Every AVR style GPIO port is
// laid out as three consecutive byte registers, in this address order.
const (
	pinOffset = 0 // PINx, input level
	dirOffset = 1 // DDRx, data direction
	outOffset = 2 // PORTx, output level
	portSpan  = 3
)

// Data direction values for one bit of the Dir register.
// The AVR convention applies: a direction bit of 1 configures the pin
// as an output, 0 as an input. This polarity is a platform constant of
// this package, not something to be inferred per chip.
const (
	DirInput  = 0
	DirOutput = 1
)

// Port represents one GPIO register group: the three consecutive
// hardware registers controlling up to 8 physical pins.
// The registers are exported so that byte or bit granularity access
// can be mixed freely; both granularities observe the same storage.
type Port struct {
	name string
	base uintptr

	Pins *Reg // input level (PINx)
	Dir  *Reg // data direction (DDRx)
	Out  *Reg // output level (PORTx)
}

// newPort initialises the port's register handles at consecutive
// offsets from the base of the group.
func newPort(name string, mem []byte, base uintptr) *Port {
	p := new(Port)
	p.name = name
	p.base = base
	p.Pins = &Reg{mem: mem, offs: base + pinOffset}
	p.Dir = &Reg{mem: mem, offs: base + dirOffset}
	p.Out = &Reg{mem: mem, offs: base + outOffset}
	return p
}

// Name returns the port's configured name e.g "B".
func (p *Port) Name() string {
	return p.name
}

// Base returns the offset of the port group within the register window.
func (p *Port) Base() uintptr {
	return p.base
}

// Reg returns the register of the group selected by name.
// Accepted names are "pin", "ddr"/"dir" and "port"/"out"
// (case-insensitive).
func (p *Port) Reg(name string) (*Reg, error) {
	switch strings.ToLower(name) {
	case "pin":
		return p.Pins, nil
	case "ddr", "dir":
		return p.Dir, nil
	case "port", "out":
		return p.Out, nil
	}
	return nil, fmt.Errorf("unknown register %q", name)
}

// Output configures pin n as an output.
func (p *Port) Output(n Pin) {
	p.Dir.Set(n)
}

// Input configures pin n as an input with the pull-up disabled.
func (p *Port) Input(n Pin) {
	p.Dir.Clear(n)
	p.Out.Clear(n)
}

// InputPullup configures pin n as an input with the internal pull-up
// enabled. On AVR the pull-up of an input pin is controlled through
// the output register bit.
func (p *Port) InputPullup(n Pin) {
	p.Dir.Clear(n)
	p.Out.Set(n)
}

// IsOutput returns whether pin n is configured as an output.
func (p *Port) IsOutput(n Pin) bool {
	return p.Dir.Bit(n)
}

// High drives output pin n high.
func (p *Port) High(n Pin) {
	p.Out.Set(n)
}

// Low drives output pin n low.
func (p *Port) Low(n Pin) {
	p.Out.Clear(n)
}

// Toggle inverts the output level of pin n.
func (p *Port) Toggle(n Pin) {
	p.Out.Toggle(n)
}

// Write drives output pin n to the level v.
func (p *Port) Write(n Pin, v bool) {
	p.Out.SetBit(n, v)
}

// Read returns the current input level of pin n, from the input
// level register.
func (p *Port) Read(n Pin) bool {
	return p.Pins.Bit(n)
}

// SetDir stores v into the direction register, configuring all
// 8 pins in one write.
func (p *Port) SetDir(v uint8) {
	p.Dir.SetByte(v)
}

// DirByte returns the direction register value.
func (p *Port) DirByte() uint8 {
	return p.Dir.Byte()
}

// SetOut stores v into the output register, driving all output
// pins in one write.
func (p *Port) SetOut(v uint8) {
	p.Out.SetByte(v)
}

// OutByte returns the output register value.
func (p *Port) OutByte() uint8 {
	return p.Out.Byte()
}

// PinsByte returns the input level register value.
func (p *Port) PinsByte() uint8 {
	return p.Pins.Byte()
}
