// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package device

import (
	"math"

	"github.com/chipsim-dev/chipsim/go/logictype"
)

// DaylightSensor reports a 0-1 intensity that follows the day/night cycle,
// plus a Horizontal/Vertical orientation pair some variants expose.
type DaylightSensor struct {
	base

	ticksPerDay float64
	tick        uint64
	horizontal  float64
	vertical    float64
}

// NewDaylightSensor creates a daylight sensor whose output cycles once every
// ticksPerDay ticks (spec's SimulationSettings.ticks_per_day).
func NewDaylightSensor(id, prefabHash int32, name string, ticksPerDay float64) *DaylightSensor {
	s := &DaylightSensor{base: newBase(id, prefabHash, name), ticksPerDay: ticksPerDay}
	s.properties[logictype.PrefabHash] = readOnly(func() float64 { return float64(prefabHash) })
	s.properties[logictype.On] = readOnly(func() float64 { return s.intensity() })
	s.properties[logictype.Horizontal] = readWriteClamped(
		func() float64 { return s.horizontal },
		func(v float64) { s.horizontal = v },
		0, 360,
	)
	s.properties[logictype.Vertical] = readWriteClamped(
		func() float64 { return s.vertical },
		func(v float64) { s.vertical = v },
		-90, 90,
	)
	return s
}

// intensity computes the sensor's 0-1 output as a sine curve over the day
// cycle: zero at the start of the cycle, peaking at 1 a quarter of the way
// through, back to zero at the halfway point, and clamped to zero for the
// whole second half.
func (s *DaylightSensor) intensity() float64 {
	phase := float64(s.tick%uint64(s.ticksPerDay)) / s.ticksPerDay
	v := math.Sin(phase * 2 * math.Pi)
	if v < 0 {
		return 0
	}
	return v
}

// Update advances the day/night cycle by one tick.
func (s *DaylightSensor) Update(tick uint64) error {
	s.tick = tick
	return nil
}
