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

import (
	"math"

	"golang.org/x/exp/slices"
)

// minimumVolume is the floor a mixture's volume is clamped to after every
// mutation, keeping pressure/temperature calculations well-defined.
const minimumVolume = 1e-6

// GasMixture holds a quantum of each species present in some volume (a room,
// a pipe segment, a sealed canister). Each species is tracked independently
// as a Mole so that species can be at different temperatures within the
// same mixture until a phase change or equalization brings them together.
type GasMixture struct {
	volume float64
	moles  map[Species]*Mole
}

// NewGasMixture creates an empty mixture with the given volume in litres.
func NewGasMixture(volume float64) *GasMixture {
	return &GasMixture{volume: math.Max(volume, minimumVolume), moles: make(map[Species]*Mole)}
}

// Volume returns the mixture's total volume in litres.
func (g *GasMixture) Volume() float64 { return g.volume }

// SetVolume changes the mixture's volume; a subsequent phase-change pass may
// immediately reshuffle moles in response.
func (g *GasMixture) SetVolume(volume float64) {
	g.volume = math.Max(volume, minimumVolume)
}

// LiquidVolume returns the volume occupied by liquid species.
func (g *GasMixture) LiquidVolume() float64 {
	var total float64
	for _, m := range g.moles {
		if m.Species().IsLiquid() {
			total += m.Volume()
		}
	}
	return total
}

// GasVolume returns the volume available to gas species: the mixture's
// total volume less whatever liquid species currently occupy.
func (g *GasMixture) GasVolume() float64 {
	return math.Max(g.volume-g.LiquidVolume(), 0)
}

// speciesPresent returns the species with a non-empty quantum, in a fixed,
// stable (ascending tag) order.
func (g *GasMixture) speciesPresent() []Species {
	list := make([]Species, 0, len(g.moles))
	for s := range g.moles {
		list = append(list, s)
	}
	slices.Sort(list)
	return list
}

// Mole returns the quantum for species, and whether it is present.
func (g *GasMixture) Mole(species Species) (Mole, bool) {
	m, ok := g.moles[species]
	if !ok {
		return ZeroMole(species), false
	}
	return *m, true
}

func (g *GasMixture) moleOrZero(species Species) Mole {
	m, ok := g.Mole(species)
	if !ok {
		return ZeroMole(species)
	}
	return m
}

// TotalMoles sums the quantity of every species matching filter.
func (g *GasMixture) TotalMoles(filter MatterState) float64 {
	var total float64
	for _, m := range g.moles {
		if m.Species().MatchesState(filter) {
			total += m.Quantity()
		}
	}
	return total
}

// TotalEnergy sums the thermal energy of every species matching filter.
func (g *GasMixture) TotalEnergy(filter MatterState) float64 {
	var total float64
	for _, m := range g.moles {
		if m.Species().MatchesState(filter) {
			total += m.Energy()
		}
	}
	return total
}

// TotalHeatCapacity sums the heat capacity of every species matching filter.
func (g *GasMixture) TotalHeatCapacity(filter MatterState) float64 {
	var total float64
	for _, m := range g.moles {
		if m.Species().MatchesState(filter) {
			total += m.HeatCapacity()
		}
	}
	return total
}

// Temperature returns the mixture's overall temperature, the heat-capacity-
// weighted average across every species present (total energy over total
// heat capacity). Zero iff total heat capacity is
// zero.
func (g *GasMixture) Temperature() float64 {
	hc := g.TotalHeatCapacity(StateAll)
	if hc <= 0 {
		return 0
	}
	return g.TotalEnergy(StateAll) / hc
}

// Pressure returns the mixture's partial-pressure sum over its gas species
// (Dalton's law), each species contributing at its own temperature. Zero iff
// no gaseous moles are present.
func (g *GasMixture) Pressure() float64 {
	gasVolume := g.GasVolume()
	if gasVolume <= 0 {
		return 0
	}
	var pressure float64
	for _, m := range g.moles {
		if m.Species().IsGas() {
			pressure += m.Quantity() * IdealGasConstant * m.Temperature() / gasVolume
		}
	}
	return pressure
}

// Ratio returns species' share of the moles matching its own matter state
// (e.g. an oxygen ratio is oxygen moles over total gas moles).
func (g *GasMixture) Ratio(species Species) float64 {
	total := g.TotalMoles(species.State())
	if total <= 0 {
		return 0
	}
	return g.moleOrZero(species).Quantity() / total
}

func (g *GasMixture) mergeMole(m Mole) {
	if m.IsEmpty() {
		return
	}
	existing, ok := g.moles[m.Species()]
	if !ok {
		copied := m
		g.moles[m.Species()] = &copied
		return
	}
	existing.Add(m)
	if existing.IsEmpty() {
		delete(g.moles, m.Species())
	}
}

func (g *GasMixture) setMole(species Species, quantity, energy float64) {
	if quantity < MinimumQuantityMoles {
		delete(g.moles, species)
		return
	}
	m := MoleWithEnergy(species, quantity, energy)
	g.moles[species] = &m
}

// AddGas creates or merges n moles of species at temperature t (kelvin).
func (g *GasMixture) AddGas(species Species, n, t float64) {
	g.mergeMole(NewMole(species, n, t))
}

// RemoveGas removes up to n moles of species, returning the removed quantum.
func (g *GasMixture) RemoveGas(species Species, n float64) Mole {
	existing, ok := g.moles[species]
	if !ok {
		return ZeroMole(species)
	}
	removed := existing.Remove(n)
	if existing.IsEmpty() {
		delete(g.moles, species)
	}
	return removed
}

// RemoveAllGas removes species entirely, returning what was present.
func (g *GasMixture) RemoveAllGas(species Species) Mole {
	existing, ok := g.moles[species]
	if !ok {
		return ZeroMole(species)
	}
	delete(g.moles, species)
	return *existing
}

// RemoveMoles removes up to n moles split proportionally across every
// species matching filter, returning a new mixture (with the same volume)
// holding the removed content and its proportional energy.
func (g *GasMixture) RemoveMoles(n float64, filter MatterState) *GasMixture {
	result := NewGasMixture(g.volume)
	total := g.TotalMoles(filter)
	if total <= 0 || n <= 0 {
		return result
	}
	ratio := math.Min(n, total) / total
	for _, s := range g.speciesPresent() {
		m := g.moles[s]
		if !s.MatchesState(filter) {
			continue
		}
		removed := m.RemoveRatio(ratio)
		if m.IsEmpty() {
			delete(g.moles, s)
		}
		result.mergeMole(removed)
	}
	return result
}

// AddMixture merges every species of other into this mixture.
func (g *GasMixture) AddMixture(other *GasMixture) {
	for _, s := range other.speciesPresent() {
		g.mergeMole(*other.moles[s])
	}
}

// TransferRatioTo removes ratio (clamped to [0,1]) of the moles matching
// filter and adds them to target.
func (g *GasMixture) TransferRatioTo(target *GasMixture, ratio float64, filter MatterState) {
	ratio = clamp(ratio, 0, 1)
	amount := g.TotalMoles(filter) * ratio
	removed := g.RemoveMoles(amount, filter)
	target.AddMixture(removed)
}

// EqualizeWith redistributes per-species moles between g and other so both
// reach the same partial pressures, preserving total energy per species. A
// species missing from one side is treated as zero there.
func (g *GasMixture) EqualizeWith(other *GasMixture) {
	totalVolume := g.volume + other.volume
	if totalVolume <= 0 {
		return
	}
	ratioG := g.volume / totalVolume
	ratioOther := other.volume / totalVolume

	seen := make(map[Species]bool)
	union := make([]Species, 0, len(g.moles)+len(other.moles))
	for _, s := range g.speciesPresent() {
		if !seen[s] {
			seen[s] = true
			union = append(union, s)
		}
	}
	for _, s := range other.speciesPresent() {
		if !seen[s] {
			seen[s] = true
			union = append(union, s)
		}
	}
	slices.Sort(union)

	for _, s := range union {
		mg := g.moleOrZero(s)
		mo := other.moleOrZero(s)
		pooledQuantity := mg.Quantity() + mo.Quantity()
		if pooledQuantity <= 0 {
			continue
		}
		pooledEnergy := mg.Energy() + mo.Energy()

		nG := pooledQuantity * ratioG
		nOther := pooledQuantity * ratioOther
		eG := pooledEnergy * nG / pooledQuantity
		eOther := pooledEnergy * nOther / pooledQuantity

		g.setMole(s, nG, eG)
		other.setMole(s, nOther, eOther)
	}
}

// ProcessPhaseChanges runs one tick of phase-change evaluation across every
// species present, in a stable order, using the mixture's current pressure
// and gas volume with prevent-absolute-zero evaporation enabled. Returns the
// number of species whose state actually changed.
func (g *GasMixture) ProcessPhaseChanges() int {
	pressure := g.Pressure()
	gasVolume := g.GasVolume()

	var pending []Mole
	count := 0
	for _, s := range g.speciesPresent() {
		m := g.moles[s]
		result := m.ChangeState(pressure, gasVolume, 0, true)
		if m.IsEmpty() {
			delete(g.moles, s)
		}
		if result.Occurred {
			count++
			pending = append(pending, result.Changed)
		}
	}
	for _, m := range pending {
		g.mergeMole(m)
	}
	return count
}
