// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package atmos

import "golang.org/x/exp/slices"

// Network wraps a GasMixture with an optional reference id and the set of
// devices connected to it, mirroring the cable network's membership-set
// shape for the atmospheric side of the simulation (pipes, vents, rooms).
type Network struct {
	ID      int32
	mixture *GasMixture
	members map[int32]bool
}

// NewNetwork creates an atmospheric network of the given volume.
func NewNetwork(id int32, volume float64) *Network {
	return &Network{ID: id, mixture: NewGasMixture(volume), members: make(map[int32]bool)}
}

// Mixture returns the network's underlying gas mixture.
func (n *Network) Mixture() *GasMixture { return n.mixture }

// AddMember records a device id as connected to this network.
func (n *Network) AddMember(deviceID int32) { n.members[deviceID] = true }

// RemoveMember drops a device id from this network.
func (n *Network) RemoveMember(deviceID int32) { delete(n.members, deviceID) }

// HasMember reports whether deviceID is connected to this network.
func (n *Network) HasMember(deviceID int32) bool { return n.members[deviceID] }

// Members returns the connected device ids in ascending order.
func (n *Network) Members() []int32 {
	ids := make([]int32, 0, len(n.members))
	for id := range n.members {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// MemberCount returns the number of devices connected to this network.
func (n *Network) MemberCount() int { return len(n.members) }

// Volume proxies GasMixture.Volume.
func (n *Network) Volume() float64 { return n.mixture.Volume() }

// SetVolume proxies GasMixture.SetVolume.
func (n *Network) SetVolume(volume float64) { n.mixture.SetVolume(volume) }

// Pressure proxies GasMixture.Pressure.
func (n *Network) Pressure() float64 { return n.mixture.Pressure() }

// Temperature proxies GasMixture.Temperature.
func (n *Network) Temperature() float64 { return n.mixture.Temperature() }

// Ratio proxies GasMixture.Ratio.
func (n *Network) Ratio(species Species) float64 { return n.mixture.Ratio(species) }

// TotalMoles proxies GasMixture.TotalMoles.
func (n *Network) TotalMoles(filter MatterState) float64 { return n.mixture.TotalMoles(filter) }

// AddGas proxies GasMixture.AddGas.
func (n *Network) AddGas(species Species, quantity, temperature float64) {
	n.mixture.AddGas(species, quantity, temperature)
}

// RemoveGas proxies GasMixture.RemoveGas.
func (n *Network) RemoveGas(species Species, quantity float64) Mole {
	return n.mixture.RemoveGas(species, quantity)
}

// TransferRatioTo proxies GasMixture.TransferRatioTo, unwrapping to the
// target network's mixture.
func (n *Network) TransferRatioTo(target *Network, ratio float64, filter MatterState) {
	n.mixture.TransferRatioTo(target.mixture, ratio, filter)
}

// EqualizeWith proxies GasMixture.EqualizeWith against another network's
// mixture.
func (n *Network) EqualizeWith(other *Network) {
	n.mixture.EqualizeWith(other.mixture)
}

// Update runs one tick of phase-change evaluation over the network's
// mixture, returning the number of species whose state changed.
func (n *Network) Update() int {
	return n.mixture.ProcessPhaseChanges()
}
