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
	"hash/crc32"

	"github.com/chipsim-dev/chipsim/go/chiperr"
	"github.com/chipsim-dev/chipsim/go/logictype"
	"github.com/chipsim-dev/chipsim/go/net"
)

// NameHash returns the CRC32 (IEEE) hash of a device or item name, the same
// function rename and batch-by-name operations key on.
func NameHash(name string) int32 {
	return int32(crc32.ChecksumIEEE([]byte(name)))
}

// base carries the fields and property-dispatch machinery every concrete
// device kind shares: identity, the network back-reference, a name and its
// hash, and a private memory cell array backing clr/clrd, get/put.
type base struct {
	id         int32
	prefabHash int32
	name       string
	nameHash   int32
	network    *net.CableNetwork
	properties propertySet
	memory     [512]float64
}

func newBase(id, prefabHash int32, name string) base {
	return base{
		id:         id,
		prefabHash: prefabHash,
		name:       name,
		nameHash:   NameHash(name),
		properties: make(propertySet),
	}
}

func (b *base) ID() int32         { return b.id }
func (b *base) PrefabHash() int32 { return b.prefabHash }
func (b *base) NameHash() int32   { return b.nameHash }
func (b *base) Name() string      { return b.name }

// SetName updates the device's name, recomputing and re-indexing its name
// hash on the attached network (spec's device rename CRC32 hashing).
func (b *base) SetName(name string) {
	oldHash := b.nameHash
	b.name = name
	b.nameHash = NameHash(name)
	if b.network != nil {
		b.network.UpdateDeviceName(b.id, oldHash, b.nameHash)
	}
}

func (b *base) SetNetwork(n *net.CableNetwork) { b.network = n }
func (b *base) Network() *net.CableNetwork     { return b.network }

func (b *base) Read(lt logictype.LogicType) (float64, error)  { return b.properties.read(lt) }
func (b *base) Write(lt logictype.LogicType, v float64) error { return b.properties.write(lt, v) }

func (b *base) GetMemory(index int) (float64, error) {
	if index < 0 || index >= len(b.memory) {
		return 0, chiperr.ErrStackOverflow
	}
	return b.memory[index], nil
}

func (b *base) SetMemory(index int, value float64) error {
	if index < 0 || index >= len(b.memory) {
		return chiperr.ErrStackOverflow
	}
	b.memory[index] = value
	return nil
}

func (b *base) ClearMemory() { b.memory = [512]float64{} }

// ReadSlot and WriteSlot default to unsupported; devices with occupant
// slots (e.g. ICHousing's chip slot) override these.
func (b *base) ReadSlot(slot int, st logictype.LogicSlotType) (float64, error) {
	return 0, chiperr.ErrUnsupportedSlot
}
func (b *base) WriteSlot(slot int, st logictype.LogicSlotType, v float64) error {
	return chiperr.ErrUnsupportedSlot
}

// Update and Run default to no-ops; devices with per-tick behavior (sensors,
// atmospheric devices, the IC housing) override these.
func (b *base) Update(tick uint64) error { return nil }
func (b *base) Run() error               { return nil }
