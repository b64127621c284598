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

import "github.com/chipsim-dev/chipsim/go/logictype"

// HostSlot is the contract a chip needs from the slot hosting it: resolving
// device-pin operands to device reference ids, and identifying the host
// device itself (bound to the "db" built-in alias). Concrete chip slots
// (internal/device.ChipSlot) implement this without the chip package
// depending on the device package, mirroring the weak back-reference from
// chip to slot described in spec §9.
type HostSlot interface {
	// DevicePin resolves pin index n to a device reference id.
	DevicePin(n int) (int32, bool)
	// HostDeviceID returns the reference id of the device hosting this
	// chip, if any.
	HostDeviceID() (int32, bool)
}

// Network is the contract a chip needs to reach devices: direct reference-id
// addressed reads/writes, slot reads/writes, device-internal memory, and
// batched prefab/name-hash aggregation. A cable network (internal/net)
// implements this.
type Network interface {
	DeviceExists(id int32) bool
	Read(id int32, lt logictype.LogicType) (float64, error)
	Write(id int32, lt logictype.LogicType, value float64) error
	ReadSlot(id int32, slot int, lt logictype.LogicSlotType) (float64, error)
	WriteSlot(id int32, slot int, lt logictype.LogicSlotType, value float64) error
	GetMemory(id int32, index int) (float64, error)
	SetMemory(id int32, index int, value float64) error
	ClearMemory(id int32) error
	BatchReadByPrefab(prefabHash int32, lt logictype.LogicType, mode logictype.BatchMode) (float64, error)
	BatchWriteByPrefab(prefabHash int32, lt logictype.LogicType, value float64) (int, error)
	BatchReadByName(prefabHash, nameHash int32, lt logictype.LogicType, mode logictype.BatchMode) (float64, error)
	BatchWriteByName(prefabHash, nameHash int32, lt logictype.LogicType, value float64) (int, error)
}
