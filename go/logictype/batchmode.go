// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package logictype

import "math"

// BatchMode selects how a batch read aggregates values across multiple
// matching devices (spec §6.5, §4.C "Batch device I/O").
type BatchMode int32

const (
	Average BatchMode = 0
	Sum     BatchMode = 1
	Minimum BatchMode = 2
	Maximum BatchMode = 3
)

var batchModeNames = map[string]BatchMode{
	"Average": Average, "Sum": Sum, "Minimum": Minimum, "Maximum": Maximum,
}

// BatchModeFromValue maps a numeric tag to its BatchMode.
func BatchModeFromValue(value float64) (BatchMode, bool) {
	switch BatchMode(int32(value)) {
	case Average, Sum, Minimum, Maximum:
		return BatchMode(int32(value)), true
	default:
		return 0, false
	}
}

// BatchModeFromName looks up a BatchMode by its external name.
func BatchModeFromName(name string) (BatchMode, bool) {
	m, ok := batchModeNames[name]
	return m, ok
}

// ToValue returns the stable numeric tag for this BatchMode.
func (m BatchMode) ToValue() float64 { return float64(m) }

// Aggregate combines values per the batch mode. An empty slice aggregates to
// 0 in every mode (spec §4.C: "Aggregation over empty set returns 0").
func (m BatchMode) Aggregate(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	switch m {
	case Sum:
		var total float64
		for _, v := range values {
			total += v
		}
		return total
	case Average:
		var total float64
		for _, v := range values {
			total += v
		}
		return total / float64(len(values))
	case Minimum:
		min := math.Inf(1)
		for _, v := range values {
			if v < min {
				min = v
			}
		}
		return min
	case Maximum:
		max := math.Inf(-1)
		for _, v := range values {
			if v > max {
				max = v
			}
		}
		return max
	default:
		return 0
	}
}
