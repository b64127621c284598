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
	"testing"

	"github.com/chipsim-dev/chipsim/go/logictype"
)

type fakeDevice struct {
	id, prefab, name int32
	value            float64
	net              *CableNetwork
}

func (d *fakeDevice) ID() int32         { return d.id }
func (d *fakeDevice) PrefabHash() int32 { return d.prefab }
func (d *fakeDevice) NameHash() int32   { return d.name }

func (d *fakeDevice) Read(lt logictype.LogicType) (float64, error) { return d.value, nil }
func (d *fakeDevice) Write(lt logictype.LogicType, v float64) error {
	d.value = v
	return nil
}
func (d *fakeDevice) ReadSlot(slot int, st logictype.LogicSlotType) (float64, error) { return 0, nil }
func (d *fakeDevice) WriteSlot(slot int, st logictype.LogicSlotType, v float64) error {
	return nil
}
func (d *fakeDevice) GetMemory(index int) (float64, error) { return 0, nil }
func (d *fakeDevice) SetMemory(index int, v float64) error { return nil }
func (d *fakeDevice) ClearMemory()                         {}
func (d *fakeDevice) SetNetwork(n *CableNetwork)            { d.net = n }
func (d *fakeDevice) Network() *CableNetwork                { return d.net }
func (d *fakeDevice) Update(tick uint64) error              { return nil }
func (d *fakeDevice) Run() error                            { return nil }

func TestBatchReadByPrefab_Average(t *testing.T) {
	n := NewCableNetwork()
	n.AddDevice(&fakeDevice{id: 1, prefab: 100, name: 1, value: 10})
	n.AddDevice(&fakeDevice{id: 2, prefab: 100, name: 2, value: 20})
	n.AddDevice(&fakeDevice{id: 3, prefab: 200, name: 1, value: 1000})

	got, err := n.BatchReadByPrefab(100, logictype.On, logictype.Average)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 15 {
		t.Fatalf("got %v, want 15", got)
	}
}

func TestBatchReadByName_Intersection(t *testing.T) {
	n := NewCableNetwork()
	n.AddDevice(&fakeDevice{id: 1, prefab: 100, name: 1, value: 10})
	n.AddDevice(&fakeDevice{id: 2, prefab: 100, name: 2, value: 20})
	n.AddDevice(&fakeDevice{id: 3, prefab: 200, name: 1, value: 1000})

	got, err := n.BatchReadByName(100, 1, logictype.On, logictype.Sum)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Fatalf("got %v, want 10 (only device 1 matches both indexes)", got)
	}
}

func TestBatchReadByPrefab_EmptySetReturnsZero(t *testing.T) {
	n := NewCableNetwork()
	got, err := n.BatchReadByPrefab(999, logictype.On, logictype.Average)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestRemoveDevice_DropsFromIndexes(t *testing.T) {
	n := NewCableNetwork()
	n.AddDevice(&fakeDevice{id: 1, prefab: 100, name: 1})
	n.AddDevice(&fakeDevice{id: 2, prefab: 100, name: 2})

	if _, ok := n.RemoveDevice(1); !ok {
		t.Fatal("expected device 1 to be removed")
	}
	ids := n.DevicesByPrefab(100)
	if len(ids) != 1 || ids[0] != 2 {
		t.Fatalf("got %v, want [2]", ids)
	}
	if n.DeviceExists(1) {
		t.Fatal("device 1 should no longer exist")
	}
}

func TestBatchWriteByPrefab_WritesEveryMatch(t *testing.T) {
	n := NewCableNetwork()
	a := &fakeDevice{id: 1, prefab: 100, name: 1}
	b := &fakeDevice{id: 2, prefab: 100, name: 2}
	n.AddDevice(a)
	n.AddDevice(b)

	count, err := n.BatchWriteByPrefab(100, logictype.On, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("got %d, want 2", count)
	}
	if a.value != 42 || b.value != 42 {
		t.Fatalf("writes did not land: a=%v b=%v", a.value, b.value)
	}
}

func TestUpdate_RunsTwoPassesInAscendingOrder(t *testing.T) {
	var order []int32
	n := NewCableNetwork()
	n.AddDevice(&orderedDevice{fakeDevice: fakeDevice{id: 2}, order: &order})
	n.AddDevice(&orderedDevice{fakeDevice: fakeDevice{id: 1}, order: &order})

	if err := n.Update(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int32{1, 2, 1, 2}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

type orderedDevice struct {
	fakeDevice
	order *[]int32
}

func (d *orderedDevice) Update(tick uint64) error {
	*d.order = append(*d.order, d.id)
	return nil
}
func (d *orderedDevice) Run() error {
	*d.order = append(*d.order, d.id)
	return nil
}
