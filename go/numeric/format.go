// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package numeric

import "strconv"

// TrimFormat formats v with up to precision fractional digits, trimming
// trailing zeros (and a trailing decimal point). Used by the simulation
// manager's human-readable dump.
func TrimFormat(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	end := len(s)
	for end > 0 && s[end-1] == '0' {
		end--
	}
	if end > 0 && s[end-1] == '.' {
		end--
	}
	if end == 0 {
		return "0"
	}
	return s[:end]
}

// PackedToText decodes a 6-byte big-endian ASCII-packed integer (as produced
// by the STR(...) preprocessor macro) back into a string, ignoring null
// bytes. Provided for diagnostics; the chip itself never needs to reverse the
// packing.
func PackedToText(packed uint64) string {
	b := make([]byte, 0, 6)
	for i := 5; i >= 0; i-- {
		c := byte(packed >> (uint(i) * 8))
		if c != 0 {
			b = append(b, c)
		}
	}
	return string(b)
}
