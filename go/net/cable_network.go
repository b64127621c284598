// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package net

import (
	"sort"

	"golang.org/x/exp/slices"

	"github.com/chipsim-dev/chipsim/go/chiperr"
	"github.com/chipsim-dev/chipsim/go/logictype"
)

// CableNetwork connects devices so IC chips can reach them by reference id,
// by prefab hash (batch operations lb/sb), or by prefab+name hash (lbn/sbn).
// Ported from the reference cable network's BTreeMap-backed design: a main
// device map plus two secondary sorted indexes.
type CableNetwork struct {
	devices     map[int32]Device
	prefabIndex map[int32][]int32
	nameIndex   map[int32][]int32
}

// NewCableNetwork returns an empty network.
func NewCableNetwork() *CableNetwork {
	return &CableNetwork{
		devices:     make(map[int32]Device),
		prefabIndex: make(map[int32][]int32),
		nameIndex:   make(map[int32][]int32),
	}
}

func insertSorted(ids []int32, id int32) []int32 {
	i, found := slices.BinarySearch(ids, id)
	if found {
		return ids
	}
	return slices.Insert(ids, i, id)
}

func removeSorted(ids []int32, id int32) []int32 {
	i, found := slices.BinarySearch(ids, id)
	if !found {
		return ids
	}
	return slices.Delete(ids, i, i+1)
}

// AddDevice registers device on the network, indexing it by reference id,
// prefab hash, and name hash, and binds the device's network back-reference.
func (n *CableNetwork) AddDevice(d Device) {
	d.SetNetwork(n)
	id := d.ID()
	n.devices[id] = d
	n.prefabIndex[d.PrefabHash()] = insertSorted(n.prefabIndex[d.PrefabHash()], id)
	n.nameIndex[d.NameHash()] = insertSorted(n.nameIndex[d.NameHash()], id)
}

// RemoveDevice removes the device with the given reference id, if present.
func (n *CableNetwork) RemoveDevice(id int32) (Device, bool) {
	d, ok := n.devices[id]
	if !ok {
		return nil, false
	}
	delete(n.devices, id)
	d.SetNetwork(nil)

	prefab := d.PrefabHash()
	n.prefabIndex[prefab] = removeSorted(n.prefabIndex[prefab], id)
	if len(n.prefabIndex[prefab]) == 0 {
		delete(n.prefabIndex, prefab)
	}
	name := d.NameHash()
	n.nameIndex[name] = removeSorted(n.nameIndex[name], id)
	if len(n.nameIndex[name]) == 0 {
		delete(n.nameIndex, name)
	}
	return d, true
}

// UpdateDeviceName re-indexes a device whose name hash changed, e.g. after a
// rename operation (spec's device rename CRC32 hashing).
func (n *CableNetwork) UpdateDeviceName(id, oldNameHash, newNameHash int32) {
	n.nameIndex[oldNameHash] = removeSorted(n.nameIndex[oldNameHash], id)
	if len(n.nameIndex[oldNameHash]) == 0 {
		delete(n.nameIndex, oldNameHash)
	}
	n.nameIndex[newNameHash] = insertSorted(n.nameIndex[newNameHash], id)
}

// DeviceExists implements chip.Network.
func (n *CableNetwork) DeviceExists(id int32) bool {
	_, ok := n.devices[id]
	return ok
}

// Device returns the device with the given reference id, if present.
func (n *CableNetwork) Device(id int32) (Device, bool) {
	d, ok := n.devices[id]
	return d, ok
}

// DevicesByPrefab returns the sorted reference ids of every device whose
// prefab hash matches.
func (n *CableNetwork) DevicesByPrefab(prefabHash int32) []int32 {
	return append([]int32(nil), n.prefabIndex[prefabHash]...)
}

// DevicesByName returns the sorted reference ids of every device whose name
// hash matches.
func (n *CableNetwork) DevicesByName(nameHash int32) []int32 {
	return append([]int32(nil), n.nameIndex[nameHash]...)
}

// DeviceCount returns the number of devices on the network.
func (n *CableNetwork) DeviceCount() int { return len(n.devices) }

// AllDeviceIDs returns every device's reference id in ascending order.
func (n *CableNetwork) AllDeviceIDs() []int32 {
	ids := make([]int32, 0, len(n.devices))
	for id := range n.devices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clear removes every device from the network.
func (n *CableNetwork) Clear() {
	n.devices = make(map[int32]Device)
	n.prefabIndex = make(map[int32][]int32)
	n.nameIndex = make(map[int32][]int32)
}

// Update advances the network by one tick: every device's Update runs in
// ascending reference-id order, then every device's Run executes in the
// same order, mirroring the reference network's two-pass tick.
func (n *CableNetwork) Update(tick uint64) error {
	ids := n.AllDeviceIDs()
	for _, id := range ids {
		if err := n.devices[id].Update(tick); err != nil {
			return err
		}
	}
	for _, id := range ids {
		if err := n.devices[id].Run(); err != nil {
			return err
		}
	}
	return nil
}

// Read implements chip.Network.
func (n *CableNetwork) Read(id int32, lt logictype.LogicType) (float64, error) {
	d, ok := n.devices[id]
	if !ok {
		return 0, chiperr.ErrMissingDevice
	}
	return d.Read(lt)
}

// Write implements chip.Network.
func (n *CableNetwork) Write(id int32, lt logictype.LogicType, value float64) error {
	d, ok := n.devices[id]
	if !ok {
		return chiperr.ErrMissingDevice
	}
	return d.Write(lt, value)
}

// ReadSlot implements chip.Network.
func (n *CableNetwork) ReadSlot(id int32, slot int, st logictype.LogicSlotType) (float64, error) {
	d, ok := n.devices[id]
	if !ok {
		return 0, chiperr.ErrMissingDevice
	}
	return d.ReadSlot(slot, st)
}

// WriteSlot implements chip.Network.
func (n *CableNetwork) WriteSlot(id int32, slot int, st logictype.LogicSlotType, value float64) error {
	d, ok := n.devices[id]
	if !ok {
		return chiperr.ErrMissingDevice
	}
	return d.WriteSlot(slot, st, value)
}

// GetMemory implements chip.Network.
func (n *CableNetwork) GetMemory(id int32, index int) (float64, error) {
	d, ok := n.devices[id]
	if !ok {
		return 0, chiperr.ErrMissingDevice
	}
	return d.GetMemory(index)
}

// SetMemory implements chip.Network.
func (n *CableNetwork) SetMemory(id int32, index int, value float64) error {
	d, ok := n.devices[id]
	if !ok {
		return chiperr.ErrMissingDevice
	}
	return d.SetMemory(index, value)
}

// ClearMemory implements chip.Network.
func (n *CableNetwork) ClearMemory(id int32) error {
	d, ok := n.devices[id]
	if !ok {
		return chiperr.ErrMissingDevice
	}
	d.ClearMemory()
	return nil
}

func (n *CableNetwork) batchRead(ids []int32, lt logictype.LogicType, mode logictype.BatchMode) (float64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	values := make([]float64, 0, len(ids))
	for _, id := range ids {
		v, err := n.Read(id, lt)
		if err != nil {
			return 0, err
		}
		values = append(values, v)
	}
	return mode.Aggregate(values), nil
}

func (n *CableNetwork) batchWrite(ids []int32, lt logictype.LogicType, value float64) (int, error) {
	for _, id := range ids {
		if err := n.Write(id, lt, value); err != nil {
			return 0, err
		}
	}
	return len(ids), nil
}

func intersectSorted(a, b []int32) []int32 {
	out := make([]int32, 0, len(a))
	for _, id := range a {
		if _, found := slices.BinarySearch(b, id); found {
			out = append(out, id)
		}
	}
	return out
}

// BatchReadByPrefab implements chip.Network (the `lb` opcode).
func (n *CableNetwork) BatchReadByPrefab(prefabHash int32, lt logictype.LogicType, mode logictype.BatchMode) (float64, error) {
	return n.batchRead(n.prefabIndex[prefabHash], lt, mode)
}

// BatchWriteByPrefab implements chip.Network (the `sb` opcode).
func (n *CableNetwork) BatchWriteByPrefab(prefabHash int32, lt logictype.LogicType, value float64) (int, error) {
	return n.batchWrite(n.prefabIndex[prefabHash], lt, value)
}

// BatchReadByName implements chip.Network (the `lbn` opcode): the device
// set is the intersection of the prefab-hash and name-hash indexes.
func (n *CableNetwork) BatchReadByName(prefabHash, nameHash int32, lt logictype.LogicType, mode logictype.BatchMode) (float64, error) {
	ids := intersectSorted(n.prefabIndex[prefabHash], n.nameIndex[nameHash])
	return n.batchRead(ids, lt, mode)
}

// BatchWriteByName implements chip.Network (the `sbn` opcode).
func (n *CableNetwork) BatchWriteByName(prefabHash, nameHash int32, lt logictype.LogicType, value float64) (int, error) {
	ids := intersectSorted(n.prefabIndex[prefabHash], n.nameIndex[nameHash])
	return n.batchWrite(ids, lt, value)
}
