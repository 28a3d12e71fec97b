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

// testPort opens a hosted device with a single port group at base.
func testPort(t *testing.T, base uintptr) (*Device, *Port) {
	t.Helper()
	d, err := OpenMem(NewConfig().AddPort("B", base))
	if err != nil {
		t.Fatalf("OpenMem failed: %v", err)
	}
	p, err := d.Port("B")
	if err != nil {
		t.Fatalf("Port failed: %v", err)
	}
	return d, p
}

func TestPortRegisterAdjacency(t *testing.T) {
	const base = 0x23
	d, p := testPort(t, base)
	p.Pins.SetByte(0x11)
	p.Dir.SetByte(0x22)
	p.Out.SetByte(0x33)
	if d.Regs[base] != 0x11 || d.Regs[base+1] != 0x22 || d.Regs[base+2] != 0x33 {
		t.Fatalf("register bytes at base 0x%02x: got % 02x, want 11 22 33", base, []byte(d.Regs[base:base+3]))
	}
	// The other direction: stores into the window are visible
	// through the register handles.
	d.Regs[base] = 0xA5
	if got := p.PinsByte(); got != 0xA5 {
		t.Fatalf("input register read through handle: got 0x%02x, want 0xa5", got)
	}
}

func TestDirectionPolarity(t *testing.T) {
	_, p := testPort(t, 0x23)
	p.Output(PIN2)
	if got := p.DirByte(); got != 1<<2 {
		t.Fatalf("direction byte after Output(PIN2): got 0x%02x, want 0x04", got)
	}
	if !p.IsOutput(PIN2) {
		t.Fatalf("PIN2 not reported as output")
	}
	if DirOutput != 1 || DirInput != 0 {
		t.Fatalf("direction constants changed: in=%d out=%d", DirInput, DirOutput)
	}
	p.Input(PIN2)
	if p.IsOutput(PIN2) {
		t.Fatalf("PIN2 still reported as output after Input")
	}
	if got := p.DirByte(); got != 0 {
		t.Fatalf("direction byte after Input(PIN2): got 0x%02x, want 0x00", got)
	}
}

func TestInputPullup(t *testing.T) {
	_, p := testPort(t, 0x23)
	p.InputPullup(PIN5)
	if p.IsOutput(PIN5) {
		t.Fatalf("pull-up input configured as output")
	}
	if !p.Out.Bit(PIN5) {
		t.Fatalf("pull-up bit not set in output register")
	}
	p.Input(PIN5)
	if p.Out.Bit(PIN5) {
		t.Fatalf("pull-up bit still set after plain Input")
	}
}

func TestOutputLevels(t *testing.T) {
	_, p := testPort(t, 0x23)
	p.Output(PIN1)
	p.High(PIN1)
	if got := p.OutByte(); got != 0x02 {
		t.Fatalf("after High(PIN1): got 0x%02x, want 0x02", got)
	}
	p.Toggle(PIN1)
	if got := p.OutByte(); got != 0x00 {
		t.Fatalf("after Toggle(PIN1): got 0x%02x, want 0x00", got)
	}
	p.Write(PIN1, true)
	p.Write(PIN4, true)
	if got := p.OutByte(); got != 0x12 {
		t.Fatalf("after Write: got 0x%02x, want 0x12", got)
	}
	p.Low(PIN1)
	if got := p.OutByte(); got != 0x10 {
		t.Fatalf("after Low(PIN1): got 0x%02x, want 0x10", got)
	}
}

func TestReadInput(t *testing.T) {
	_, p := testPort(t, 0x23)
	p.InputPullup(PIN3)
	if p.Read(PIN3) {
		t.Fatalf("undriven input pin reads high")
	}
	// Drive the input level register directly, as external hardware
	// would.
	p.Pins.Set(PIN3)
	if !p.Read(PIN3) {
		t.Fatalf("driven input pin reads low")
	}
}

func TestByteGranularity(t *testing.T) {
	_, p := testPort(t, 0x23)
	p.SetDir(0xAA)
	p.SetOut(0x55)
	if p.DirByte() != 0xAA || p.OutByte() != 0x55 {
		t.Fatalf("byte stores: DDR=0x%02x PORT=0x%02x", p.DirByte(), p.OutByte())
	}
	// Bit access composes with the byte stores.
	p.Dir.Set(PIN0)
	if got := p.DirByte(); got != 0xAB {
		t.Fatalf("bit set after byte store: got 0x%02x, want 0xab", got)
	}
}

func TestRegByName(t *testing.T) {
	_, p := testPort(t, 0x23)
	for _, c := range []struct {
		name string
		want *Reg
	}{
		{"pin", p.Pins},
		{"PIN", p.Pins},
		{"ddr", p.Dir},
		{"dir", p.Dir},
		{"port", p.Out},
		{"out", p.Out},
	} {
		r, err := p.Reg(c.name)
		if err != nil {
			t.Fatalf("Reg(%q) failed: %v", c.name, err)
		}
		if r != c.want {
			t.Fatalf("Reg(%q) selected the wrong register", c.name)
		}
	}
	if _, err := p.Reg("bogus"); err == nil {
		t.Fatalf("Reg(bogus) did not fail")
	}
}

func TestPortName(t *testing.T) {
	_, p := testPort(t, 0x30)
	if p.Name() != "B" {
		t.Fatalf("port name: got %q, want B", p.Name())
	}
	if p.Base() != 0x30 {
		t.Fatalf("port base: got 0x%02x, want 0x30", p.Base())
	}
}
