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
	"os"
	"strings"
)

// Device is an open register window with the configured GPIO port
// groups overlaid on it. All register access through a Device is a
// direct, unsynchronized load or store on the underlying memory;
// nothing is cached or buffered.
type Device struct {
	mmapFile *os.File
	memBase  int
	mem      []byte
	ports    map[string]*Port
	names    []string
	hosted   bool

	// Regs exposes the raw register window as a register file.
	// For a hosted device this is the whole in-memory register space.
	Regs RegFile
}

// Single instance of the hardware backed device.
var dev *Device

// Open initialises access to the memory mapped GPIO register window
// using the configuration provided, overlaying the configured port
// groups on it. Only one hardware device may be open at a time.
func Open(pc *Config) (*Device, error) {
	if dev != nil {
		return nil, fmt.Errorf("device already open; must close it first")
	}
	if err := pc.validate(); err != nil {
		return nil, err
	}
	f, mem, base, err := mapWindow()
	if err != nil {
		return nil, err
	}
	if need := pc.extent(); need > uintptr(len(mem)) {
		unmapWindow(f, mem)
		return nil, fmt.Errorf("register window too small: need 0x%x bytes, have 0x%x", need, len(mem))
	}
	d := newDevice(pc, mem)
	d.mmapFile = f
	d.memBase = base
	dev = d
	return d, nil
}

// OpenMem initialises a hosted device using the configuration
// provided, backed by a plain in-memory register file instead of
// hardware. The Device API is identical; the register file holds
// whatever was last stored, with no device behaviour behind it.
func OpenMem(pc *Config) (*Device, error) {
	if err := pc.validate(); err != nil {
		return nil, err
	}
	d := newDevice(pc, make([]byte, pc.extent()))
	d.hosted = true
	return d, nil
}

// newDevice overlays the configured ports on the register window.
func newDevice(pc *Config, mem []byte) *Device {
	d := new(Device)
	d.mem = mem
	d.Regs = RegFile(mem)
	d.names = pc.portNames()
	d.ports = make(map[string]*Port)
	for _, n := range d.names {
		d.ports[n] = newPort(n, mem, pc.ports[n])
	}
	return d
}

// Port returns the named GPIO port group.
func (d *Device) Port(name string) (*Port, error) {
	p, ok := d.ports[name]
	if !ok {
		return nil, fmt.Errorf("port %s not configured", name)
	}
	return p, nil
}

// Ports returns the configured port names in a stable order.
func (d *Device) Ports() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Close releases the resources associated with the device.
// For a hosted device there is nothing to release; the register file
// remains readable.
func (d *Device) Close() {
	if d.hosted {
		return
	}
	unmapWindow(d.mmapFile, d.mem)
	dev = nil
}

// Description returns a human readable string describing the device.
func (d *Device) Description() string {
	var s strings.Builder
	if d.hosted {
		fmt.Fprint(&s, "GPIO (hosted)")
	} else {
		fmt.Fprintf(&s, "GPIO at 0x%08x", d.memBase)
	}
	fmt.Fprintf(&s, " %d byte window, ports", len(d.mem))
	for _, n := range d.names {
		fmt.Fprintf(&s, " %s", n)
	}
	return s.String()
}
