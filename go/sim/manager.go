// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package sim implements the simulation manager: the authoritative owner of
// every device and network, its id-allocation bookkeeping, and the
// deterministic per-tick update order (atmospheric phase changes, then
// device updates, then IC runs).
package sim

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/chipsim-dev/chipsim/go/atmos"
	"github.com/chipsim-dev/chipsim/go/logictype"
	"github.com/chipsim-dev/chipsim/go/net"
	"github.com/chipsim-dev/chipsim/go/numeric"
)

// Manager owns every device and network created during a simulation run and
// drives their per-tick update order. Ported from the reference
// SimulationManager; devices are constructed by their own kind-specific
// constructors (device.NewICHousing, device.NewGasSensor, ...) rather than a
// prefab-hash factory, since this port does not carry the full prefab
// catalogue (spec's device-catalogue Non-goal).
type Manager struct {
	devices             map[int32]net.Device
	cableNetworks       map[int32]*net.CableNetwork
	atmosphericNetworks map[int32]*atmos.Network

	nextCableNetworkID       int32
	nextAtmosphericNetworkID int32
	nextID                   int32
	allocatedIDs             map[int32]bool

	ticks uint64
}

// NewManager returns an empty manager with id counters starting at 1.
func NewManager() *Manager {
	return &Manager{
		devices:                  make(map[int32]net.Device),
		cableNetworks:            make(map[int32]*net.CableNetwork),
		atmosphericNetworks:      make(map[int32]*atmos.Network),
		nextCableNetworkID:       1,
		nextAtmosphericNetworkID: 1,
		nextID:                   1,
		allocatedIDs:             make(map[int32]bool),
	}
}

// AllocateNextID reserves and returns the next available reference id.
func (m *Manager) AllocateNextID() int32 {
	id := m.nextID
	m.allocatedIDs[id] = true
	m.nextID++
	return id
}

// ReserveID reserves a caller-chosen id, returning false if it is already
// taken.
func (m *Manager) ReserveID(id int32) bool {
	if m.allocatedIDs[id] {
		return false
	}
	m.allocatedIDs[id] = true
	if id >= m.nextID {
		m.nextID = id + 1
	}
	return true
}

// Ticks returns the number of simulation ticks run so far.
func (m *Manager) Ticks() uint64 { return m.ticks }

// RegisterDevice tracks a device the caller has already constructed (with an
// id obtained from AllocateNextID or ReserveID).
func (m *Manager) RegisterDevice(d net.Device) {
	m.devices[d.ID()] = d
}

// Device returns a tracked device by reference id.
func (m *Manager) Device(id int32) (net.Device, bool) {
	d, ok := m.devices[id]
	return d, ok
}

// RemoveDevice untracks a device, detaching it from its cable network first
// if it is attached to one.
func (m *Manager) RemoveDevice(id int32) (net.Device, bool) {
	d, ok := m.devices[id]
	if !ok {
		return nil, false
	}
	if n := d.Network(); n != nil {
		n.RemoveDevice(id)
	}
	delete(m.devices, id)
	return d, true
}

// sortedDeviceIDs returns every tracked device id in ascending order.
func (m *Manager) sortedDeviceIDs() []int32 {
	ids := maps.Keys(m.devices)
	slices.Sort(ids)
	return ids
}

// AllDevices returns every tracked device in ascending reference-id order.
func (m *Manager) AllDevices() []net.Device {
	ids := m.sortedDeviceIDs()
	out := make([]net.Device, len(ids))
	for i, id := range ids {
		out[i] = m.devices[id]
	}
	return out
}

// CreateCableNetwork creates and registers a new cable network, assigning it
// the next available network id.
func (m *Manager) CreateCableNetwork() (*net.CableNetwork, int32) {
	id := m.nextCableNetworkID
	m.nextCableNetworkID++
	n := net.NewCableNetwork()
	m.cableNetworks[id] = n
	return n, id
}

// CreateAtmosphericNetwork creates and registers a new atmospheric network
// of the given volume, assigning it the next available network id.
func (m *Manager) CreateAtmosphericNetwork(volume float64) (*atmos.Network, int32) {
	id := m.nextAtmosphericNetworkID
	m.nextAtmosphericNetworkID++
	n := atmos.NewNetwork(id, volume)
	m.atmosphericNetworks[id] = n
	return n, id
}

// CableNetwork returns a registered cable network by id.
func (m *Manager) CableNetwork(id int32) (*net.CableNetwork, bool) {
	n, ok := m.cableNetworks[id]
	return n, ok
}

// AtmosphericNetwork returns a registered atmospheric network by id.
func (m *Manager) AtmosphericNetwork(id int32) (*atmos.Network, bool) {
	n, ok := m.atmosphericNetworks[id]
	return n, ok
}

// RemoveCableNetwork unregisters a cable network by id.
func (m *Manager) RemoveCableNetwork(id int32) (*net.CableNetwork, bool) {
	n, ok := m.cableNetworks[id]
	if ok {
		delete(m.cableNetworks, id)
	}
	return n, ok
}

// RemoveAtmosphericNetwork unregisters an atmospheric network by id.
func (m *Manager) RemoveAtmosphericNetwork(id int32) (*atmos.Network, bool) {
	n, ok := m.atmosphericNetworks[id]
	if ok {
		delete(m.atmosphericNetworks, id)
	}
	return n, ok
}

func (m *Manager) sortedAtmosphericNetworkIDs() []int32 {
	ids := maps.Keys(m.atmosphericNetworks)
	slices.Sort(ids)
	return ids
}

func (m *Manager) sortedCableNetworkIDs() []int32 {
	ids := maps.Keys(m.cableNetworks)
	slices.Sort(ids)
	return ids
}

// Update runs one simulation tick in the spec's deterministic order:
// atmospheric phase changes (ascending network id), then every device's
// Update (ascending reference id), then every device's Run (ascending
// reference id). Returns the total count of species whose phase changed
// across every atmospheric network this tick.
func (m *Manager) Update() (int, error) {
	m.ticks++

	totalEffects := 0
	for _, id := range m.sortedAtmosphericNetworkIDs() {
		totalEffects += m.atmosphericNetworks[id].Update()
	}

	devices := m.AllDevices()
	for _, d := range devices {
		if err := d.Update(m.ticks); err != nil {
			return totalEffects, err
		}
	}
	for _, d := range devices {
		if err := d.Run(); err != nil {
			return totalEffects, err
		}
	}

	return totalEffects, nil
}

// Reset clears every tracked device and network and resets id allocation.
func (m *Manager) Reset() {
	for _, n := range m.cableNetworks {
		n.Clear()
	}
	m.cableNetworks = make(map[int32]*net.CableNetwork)
	m.atmosphericNetworks = make(map[int32]*atmos.Network)
	m.devices = make(map[int32]net.Device)
	m.nextCableNetworkID = 1
	m.nextAtmosphericNetworkID = 1
	m.nextID = 1
	m.allocatedIDs = make(map[int32]bool)
	m.ticks = 0
}

// String renders a human-readable dump of every cable network's devices
// (with their On/Mode/Setting/Horizontal/Vertical/Ratio state, where
// supported) and every atmospheric network's volume/temperature/pressure/
// moles, ported from the reference Display implementation.
func (m *Manager) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, "SimulationManager {")

	fmt.Fprintf(&b, "  Cable Networks (%d):\n", len(m.cableNetworks))
	for _, id := range m.sortedCableNetworkIDs() {
		n := m.cableNetworks[id]
		ids := n.AllDeviceIDs()
		fmt.Fprintf(&b, "    Network #%d: %d device(s)\n", id, len(ids))
		for _, deviceID := range ids {
			d, ok := n.Device(deviceID)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "      Device #%d (prefab: %d)\n", deviceID, d.PrefabHash())
			if values := deviceStateValues(d); len(values) > 0 {
				fmt.Fprintf(&b, "        State: %s\n", strings.Join(values, ", "))
			}
		}
	}

	fmt.Fprintf(&b, "  Atmospheric Networks (%d):\n", len(m.atmosphericNetworks))
	for _, id := range m.sortedAtmosphericNetworkIDs() {
		n := m.atmosphericNetworks[id]
		fmt.Fprintf(&b, "    Network #%d: %s L, %s K, %s kPa, %s mol\n", id,
			numeric.TrimFormat(n.Volume(), 3),
			numeric.TrimFormat(n.Temperature(), 2),
			numeric.TrimFormat(n.Pressure(), 3),
			numeric.TrimFormat(n.TotalMoles(atmos.StateAll), 3))
	}

	fmt.Fprint(&b, "}")
	return b.String()
}

func deviceStateValues(d net.Device) []string {
	var values []string
	for _, pair := range []struct {
		lt    logictype.LogicType
		label string
		boolean bool
	}{
		{logictype.On, "On", true},
		{logictype.Mode, "Mode", true},
	} {
		if v, err := d.Read(pair.lt); err == nil {
			state := "Off"
			if v != 0 {
				state = "On"
			}
			values = append(values, fmt.Sprintf("%s: %s", pair.label, state))
		}
	}
	for _, pair := range []struct {
		lt    logictype.LogicType
		label string
		unit  string
	}{
		{logictype.Setting, "Setting", ""},
		{logictype.Horizontal, "Horizontal", "°"},
		{logictype.Vertical, "Vertical", "°"},
		{logictype.Ratio, "Ratio", ""},
	} {
		if v, err := d.Read(pair.lt); err == nil {
			precision := 3
			if pair.unit == "°" {
				precision = 2
			}
			values = append(values, fmt.Sprintf("%s: %s%s", pair.label, numeric.TrimFormat(v, precision), pair.unit))
		}
	}
	return values
}
