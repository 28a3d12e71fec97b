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

// Pin identifies a single bit within an 8 bit GPIO register.
type Pin uint8

const (
	PIN0 Pin = iota
	PIN1
	PIN2
	PIN3
	PIN4
	PIN5
	PIN6
	PIN7
)

// NumPins is the number of pins carried by one GPIO register.
const NumPins = 8

// Mask returns the register value with only pin p set.
// Bit i of a register always corresponds to the value 1 << i;
// the bit order is part of the API, not a compiler artifact.
func (p Pin) Mask() uint8 {
	if p >= NumPins {
		panic("gpio: pin out of range")
	}
	return 1 << p
}

// Reg is a handle to a single 8 bit memory mapped register.
// The byte view and the bit view access the identical storage,
// so they are always consistent with each other; the register is
// never copied or cached.
type Reg struct {
	mem  []byte
	offs uintptr
}

// Byte returns the current 8 bit value of the register.
func (r *Reg) Byte() uint8 {
	return r.mem[r.offs]
}

// SetByte stores v into the register, replacing all 8 bits with
// a single store.
func (r *Reg) SetByte(v uint8) {
	r.mem[r.offs] = v
}

// Bit returns whether pin p of the register is set.
// Bit(p) is equal to (Byte() >> p) & 1 != 0 for every pin.
func (r *Reg) Bit(p Pin) bool {
	return r.Byte()&p.Mask() != 0
}

// SetBit sets or clears pin p, leaving the other 7 bits untouched.
// The update is a read-modify-write of the register, never a
// whole byte overwrite.
func (r *Reg) SetBit(p Pin, v bool) {
	if v {
		r.Set(p)
	} else {
		r.Clear(p)
	}
}

// Set sets pin p of the register.
func (r *Reg) Set(p Pin) {
	r.mem[r.offs] |= p.Mask()
}

// Clear clears pin p of the register.
func (r *Reg) Clear(p Pin) {
	r.mem[r.offs] &^= p.Mask()
}

// Toggle inverts pin p of the register.
func (r *Reg) Toggle(p Pin) {
	r.mem[r.offs] ^= p.Mask()
}
