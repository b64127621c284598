// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package net implements the cable network: the reference-id, prefab-hash,
// and name-hash addressed device registry that chips reach devices through,
// and the batch aggregation logic behind the lb/sb/lbn/sbn opcodes.
package net

import "github.com/chipsim-dev/chipsim/go/logictype"

// Device is the contract the cable network needs from anything it carries:
// enough identity to be indexed by reference id, prefab hash, and name
// hash, the logic-type and slot-logic-type read/write surface, a private
// memory cell array, and the two-phase per-tick update the network drives.
// Concrete devices (internal/device) implement this without the net package
// depending on the device package.
type Device interface {
	ID() int32
	PrefabHash() int32
	NameHash() int32

	Read(lt logictype.LogicType) (float64, error)
	Write(lt logictype.LogicType, value float64) error
	ReadSlot(slot int, st logictype.LogicSlotType) (float64, error)
	WriteSlot(slot int, st logictype.LogicSlotType, value float64) error

	GetMemory(index int) (float64, error)
	SetMemory(index int, value float64) error
	ClearMemory()

	SetNetwork(network *CableNetwork)
	Network() *CableNetwork

	// Update advances device-internal state (sensors, phase changes) for
	// one tick. Run executes one tick of any IC housed in the device.
	Update(tick uint64) error
	Run() error
}
