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

	"golang.org/x/sys/unix"
)

// Device paths. The GPIO register block is expected to be exported by
// the kernel UIO driver as the first mapping of the first UIO device.
const (
	drvMemBase = "/sys/class/uio/uio0/maps/map0/addr"
	drvMemSize = "/sys/class/uio/uio0/maps/map0/size"
	drvUIO0    = "/dev/uio0"
)

// mapWindow maps the hardware register window into the process.
// This is the only place the raw device memory is touched; everything
// above it works on the returned byte slice.
func mapWindow() (*os.File, []byte, int, error) {
	base, err := readDriverValue(drvMemBase)
	if err != nil {
		return nil, nil, 0, err
	}
	size, err := readDriverValue(drvMemSize)
	if err != nil {
		return nil, nil, 0, err
	}
	f, err := os.OpenFile(drvUIO0, os.O_RDWR|os.O_SYNC, 0660)
	if err != nil {
		return nil, nil, 0, err
	}
	mem, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, nil, 0, fmt.Errorf("%s: %v", drvUIO0, err)
	}
	return f, mem, base, nil
}

// unmapWindow releases a mapping created by mapWindow.
func unmapWindow(f *os.File, mem []byte) {
	unix.Munmap(mem)
	f.Close()
}

// readDriverValue opens and reads a string from a device file and decodes
// the string as an integer. This is used to retrieve device specific
// parameters from the kernel device driver.
func readDriverValue(s string) (int, error) {
	var val int
	f, err := os.Open(s)
	if err != nil {
		return -1, err
	}
	defer f.Close()
	n, err := fmt.Fscanf(f, "%v", &val)
	if err != nil {
		return -1, fmt.Errorf("%s: %v", s, err)
	}
	if n != 1 {
		return -1, fmt.Errorf("%s: no value found", s)
	}
	return val, nil
}
