// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package chip

import "math"

const (
	// RegisterCount is the number of general-purpose registers, including
	// the aliased stack pointer (r16) and return address (r17) registers.
	RegisterCount = 18
	// StackPointerIndex is the register index aliased to "sp".
	StackPointerIndex = 16
	// ReturnAddressIndex is the register index aliased to "ra".
	ReturnAddressIndex = 17
	// StackSize is the number of addressable stack cells.
	StackSize = 512
	// DevicePinCount is the default number of device pins on a chip slot.
	DevicePinCount = 6
)

// builtinConstant returns the value of a chip-visible built-in define, and
// whether name names one. These are installed into every chip's defines
// table at creation (spec §6.6).
//
// rad2deg intentionally uses the float32-round-tripped value of 180/π
// (57.295780181884766) rather than the mathematically exact value, to
// preserve bit-compatibility with programs written against the host
// runtime this was distilled from (spec §9, first open question).
func builtinConstant(name string) (float64, bool) {
	switch name {
	case "nan":
		return math.NaN(), true
	case "pinf":
		return math.Inf(1), true
	case "ninf":
		return math.Inf(-1), true
	case "pi":
		return math.Pi, true
	case "tau":
		return 2 * math.Pi, true
	case "deg2rad":
		return math.Pi / 180, true
	case "rad2deg":
		return 57.295780181884766, true
	case "epsilon":
		return math.SmallestNonzeroFloat64, true
	case "rgas":
		return 8.314, true
	default:
		return 0, false
	}
}

// approxEpsilonMin is the floor used by the `sap`/`sna` approximate-equal
// predicates (spec §4.C).
const approxEpsilonMin = 1.1210387714598537e-44

// builtinConstantNames lists every name builtinConstant recognizes, used to
// seed a fresh chip's defines table.
var builtinConstantNames = []string{
	"nan", "pinf", "ninf", "pi", "tau", "deg2rad", "rad2deg", "epsilon", "rgas",
}
