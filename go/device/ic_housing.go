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

import "github.com/chipsim-dev/chipsim/go/logictype"

// ICHousing is a device whose sole purpose is to host a programmable chip:
// the IC10 housing prefab. Its device pins are exposed via its ChipSlot, and
// its own logic surface is limited to Setting (a scratch register some
// programs use to pass a single value in) and PrefabHash.
type ICHousing struct {
	base
	Slot *ChipSlot

	maxInstructionsPerTick int
	setting                float64
}

// NewICHousing creates an IC housing with the given pin count and per-tick
// instruction budget (spec's SimulationSettings.max_instructions_per_tick).
func NewICHousing(id, prefabHash int32, name string, pinCount, maxInstructionsPerTick int) *ICHousing {
	h := &ICHousing{
		base:                   newBase(id, prefabHash, name),
		Slot:                   NewChipSlot(pinCount),
		maxInstructionsPerTick: maxInstructionsPerTick,
	}
	h.Slot.SetHostDevice(h)
	h.properties[logictype.PrefabHash] = readOnly(func() float64 { return float64(prefabHash) })
	h.properties[logictype.Setting] = readWrite(
		func() float64 { return h.setting },
		func(v float64) { h.setting = v },
	)
	return h
}

// Run executes one tick of the installed chip, if any.
func (h *ICHousing) Run() error {
	return h.Slot.Run(h.maxInstructionsPerTick)
}
