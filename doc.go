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

/*

Package gpio provides typed access to AVR style memory mapped GPIO
register groups: per port, three consecutive byte registers holding the
input level (PIN), the data direction (DDR) and the output level (PORT),
one bit per physical pin.

Each register can be read and written at two granularities, as a whole
8 bit value or as single named bits, and both views observe the
identical storage. Single bit writes are read-modify-write, so the
other 7 bits of the register are never disturbed. Bit order is an
explicit contract of the package: bit i always corresponds to the
value 1 << i.

The register space can be backed by real hardware, via a register
window exported by the kernel UIO driver and mapped with Open, or by a
plain in-memory register file created with OpenMem. The hosted backing
carries no device behaviour; it simply holds whatever was last stored,
which makes the byte/bit aliasing contract directly testable off
target. Port maps for a handful of common chips are built in and can
be selected with ChipConfig.

*/
package gpio
