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
	"fmt"
	"math"
)

// Mole is a quantity of one species tracked with its thermal energy rather
// than its temperature directly, so mixing and transfer operations compose
// without repeatedly round-tripping through a temperature calculation.
type Mole struct {
	species  Species
	quantity float64
	energy   float64
}

// NewMole creates a Mole holding quantity moles of species at temperature
// kelvin.
func NewMole(species Species, quantity, temperature float64) Mole {
	quantity = math.Max(quantity, 0)
	temperature = math.Max(temperature, 0)
	return Mole{species: species, quantity: quantity, energy: quantity * species.SpecificHeat() * temperature}
}

// ZeroMole returns an empty Mole of the given species.
func ZeroMole(species Species) Mole { return Mole{species: species} }

// MoleWithEnergy creates a Mole with quantity and energy set directly.
func MoleWithEnergy(species Species, quantity, energy float64) Mole {
	return Mole{species: species, quantity: math.Max(quantity, 0), energy: math.Max(energy, 0)}
}

func (m Mole) Species() Species   { return m.species }
func (m Mole) Quantity() float64  { return m.quantity }
func (m Mole) Energy() float64    { return m.energy }

// Temperature computes T = E / (n * Cv).
func (m Mole) Temperature() float64 {
	if m.quantity <= MinimumQuantityMoles {
		return 0
	}
	return math.Max(m.energy/(m.quantity*m.species.SpecificHeat()), 0)
}

// HeatCapacity returns C = n * Cv, in J/K.
func (m Mole) HeatCapacity() float64 { return m.quantity * m.species.SpecificHeat() }

// IsEmpty reports whether the quantity is below the cleanup threshold.
func (m Mole) IsEmpty() bool { return m.quantity < MinimumQuantityMoles }

// SetQuantity changes the quantity while holding temperature constant.
func (m *Mole) SetQuantity(newQuantity float64) {
	temp := m.Temperature()
	m.quantity = math.Max(newQuantity, 0)
	m.energy = m.quantity * m.species.SpecificHeat() * temp
	m.cleanup()
}

// SetTemperature changes the energy to reach the given temperature at the
// current quantity.
func (m *Mole) SetTemperature(temperature float64) {
	temp := math.Max(temperature, 0)
	m.energy = m.quantity * m.species.SpecificHeat() * temp
}

// AddEnergy adds joules of thermal energy (negative to cool), floored at 0.
func (m *Mole) AddEnergy(joules float64) {
	m.energy = math.Max(m.energy+joules, 0)
}

// RemoveEnergy removes up to joules of thermal energy, returning the amount
// actually removed.
func (m *Mole) RemoveEnergy(joules float64) float64 {
	removed := math.Min(joules, m.energy)
	m.energy -= removed
	return removed
}

// Add merges another Mole of the same species into this one.
func (m *Mole) Add(other Mole) {
	if other.species != m.species {
		panic("atmos: cannot add moles of different species")
	}
	m.quantity += other.quantity
	m.energy += other.energy
	m.cleanup()
}

// Remove takes amount moles out of this Mole, returning them (with
// proportional energy) as a new Mole.
func (m *Mole) Remove(amount float64) Mole {
	amount = math.Max(math.Min(amount, m.quantity), 0)
	if amount <= 0 || m.quantity <= 0 {
		return ZeroMole(m.species)
	}
	removedEnergy := m.energy * amount / m.quantity
	m.quantity -= amount
	m.energy -= removedEnergy
	m.cleanup()
	return MoleWithEnergy(m.species, amount, removedEnergy)
}

// RemoveRatio removes ratio (clamped to [0,1]) of the current quantity.
func (m *Mole) RemoveRatio(ratio float64) Mole {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return m.Remove(m.quantity * ratio)
}

// TransferTo moves up to amount moles into target, returning the amount
// actually transferred.
func (m *Mole) TransferTo(target *Mole, amount float64) float64 {
	removed := m.Remove(amount)
	target.Add(removed)
	return removed.quantity
}

// EnergyToReachTemperature returns the energy delta needed to bring this
// Mole to targetTemp at its current quantity.
func (m Mole) EnergyToReachTemperature(targetTemp float64) float64 {
	return m.HeatCapacity() * (targetTemp - m.Temperature())
}

// Clear zeros the quantity and energy.
func (m *Mole) Clear() { m.quantity, m.energy = 0, 0 }

func (m *Mole) cleanup() {
	if m.quantity < MinimumQuantityMoles {
		m.Clear()
	}
}

// MatterState returns the species' matter state.
func (m Mole) MatterState() MatterState { return m.species.State() }

// WillFreeze reports whether this Mole's current temperature is at or below
// its species' freezing point.
func (m Mole) WillFreeze() bool {
	if m.quantity < MinimumQuantityMoles {
		return false
	}
	return m.Temperature() <= m.species.FreezingTemperature()
}

// Volume returns the liquid volume in litres (0 for gases).
func (m Mole) Volume() float64 { return m.species.MolarVolume() * m.quantity }

// Mass returns the mass in grams.
func (m Mole) Mass() float64 { return m.species.MolarMass() * m.quantity }

// EvaporationTemperatureClamped returns the evaporation temperature at
// pressure, clamped to the species' valid liquid temperature range.
func (m Mole) EvaporationTemperatureClamped(pressure float64) float64 {
	clampedPressure := clamp(pressure, m.species.MinLiquidPressure(), m.species.CriticalPressure())
	t := m.calculateEvaporationTemperature(clampedPressure)
	return clamp(t, m.species.FreezingTemperature(), m.species.MaxLiquidTemperature())
}

// EvaporationPressureClamped returns the evaporation pressure at
// temperature, clamped to the species' valid liquid pressure range.
func (m Mole) EvaporationPressureClamped(temperature float64) float64 {
	clampedTemp := clamp(temperature, m.species.FreezingTemperature(), m.species.MaxLiquidTemperature())
	p := m.calculateEvaporationPressure(clampedTemp)
	return clamp(p, m.species.MinLiquidPressure(), m.species.CriticalPressure())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// calculateEvaporationTemperature inverts the power-law vapor pressure
// curve P = A*T^B to solve for T given P.
func (m Mole) calculateEvaporationTemperature(pressure float64) float64 {
	a := m.species.EvaporationCoefficientA()
	b := m.species.EvaporationCoefficientB()
	return math.Pow(pressure/a, 1.0/b)
}

// calculateEvaporationPressure evaluates the power-law vapor pressure curve
// P = A*T^B.
func (m Mole) calculateEvaporationPressure(temperature float64) float64 {
	a := m.species.EvaporationCoefficientA()
	b := m.species.EvaporationCoefficientB()
	return a * math.Pow(temperature, b)
}

// PhaseChangeResult reports the outcome of a ChangeState call.
type PhaseChangeResult struct {
	Changed  Mole
	Occurred bool
}

func noPhaseChange() PhaseChangeResult { return PhaseChangeResult{} }

func somePhaseChange(mole Mole) PhaseChangeResult {
	return PhaseChangeResult{Changed: mole, Occurred: true}
}

// computeEvaporationBase computes the energy available for a liquid->gas
// state change this tick and the maximum quantity that change is limited
// to, or reports that no change should occur.
func (m Mole) computeEvaporationBase(pressure, volume, temperatureOffset float64, preventAbsoluteZeroEvaporation bool) (finalEnergy, maxQuantity float64, ok bool) {
	if !m.species.CanEvaporate() {
		return 0, 0, false
	}
	if _, hasTarget := m.species.EvaporationType(); !hasTarget {
		return 0, 0, false
	}

	evapTemp := m.EvaporationTemperatureClamped(pressure) + temperatureOffset
	evapPressure := m.EvaporationPressureClamped(m.Temperature())

	halfFreezing := m.species.FreezingTemperature() * HalfFreezingFactor

	if m.Temperature() < m.species.FreezingTemperature() && preventAbsoluteZeroEvaporation {
		effectiveTemp := math.Max(m.Temperature(), halfFreezing)
		evapPressure = mapToScale(halfFreezing, m.species.FreezingTemperature(), ArmstrongLimit, m.species.MinLiquidPressure(), effectiveTemp)
	}

	pressureDelta := evapPressure - pressure

	var effectiveEvapTemp float64
	if m.Temperature() <= evapTemp {
		if pressure > evapPressure || m.Temperature() <= halfFreezing {
			return 0, 0, false
		}
		t := clamp(pressureDelta/m.species.MinLiquidPressure(), 0, 1)
		effectiveEvapTemp = math.Max(lerp(m.Temperature(), m.Temperature()-EvapInterpolationTempDelta, t), halfFreezing)
	} else {
		effectiveEvapTemp = evapTemp
	}

	maxQuantity = m.quantity
	if pressure < evapPressure {
		maxQuantity = math.Max(calculateMoles(pressureDelta, volume, m.Temperature()), 0)
	}
	maxQuantity = math.Min(maxQuantity, m.quantity)
	if maxQuantity <= 0 {
		return 0, 0, false
	}

	energyForChange := calculateEnergyForTemperatureChange(m.quantity, m.species.SpecificHeat(), m.Temperature()-effectiveEvapTemp)

	adjustedEnergy := energyForChange
	if m.Temperature() < m.species.FreezingTemperature()+NearFreezingMargin &&
		m.Temperature() > halfFreezing+NearFreezingMargin &&
		preventAbsoluteZeroEvaporation {
		adjustedEnergy = SmallStateChangeRate * m.species.SpecificHeat() * m.quantity
	}

	finalEnergy = adjustedEnergy
	if m.Temperature() > m.species.MaxLiquidTemperature() {
		minEnergy := calculateEnergyForTemperatureChange(m.quantity, m.species.SpecificHeat(), m.Temperature()-m.species.MaxLiquidTemperature())
		finalEnergy = math.Max(adjustedEnergy, minEnergy)
	}

	return finalEnergy, maxQuantity, true
}

// ChangeState applies one tick of the phase-change algorithm: a liquid
// Mole tries to evaporate, a gas Mole tries to condense, at the given
// ambient pressure (kPa) and container volume (L). temperatureOffset
// biases the evaporation/condensation boundary (e.g. a heater's surface
// temperature); preventAbsoluteZeroEvaporation rate-limits state changes
// near a species' freezing point instead of letting them run unbounded.
func (m *Mole) ChangeState(pressure, volume, temperatureOffset float64, preventAbsoluteZeroEvaporation bool) PhaseChangeResult {
	if m.quantity < MinimumQuantityMoles {
		return noPhaseChange()
	}
	switch m.MatterState() {
	case StateLiquid:
		return m.tryEvaporate(pressure, volume, temperatureOffset, preventAbsoluteZeroEvaporation)
	case StateGas:
		return m.tryCondense(pressure, temperatureOffset)
	default:
		return noPhaseChange()
	}
}

func (m *Mole) tryEvaporate(pressure, volume, temperatureOffset float64, preventAbsoluteZeroEvaporation bool) PhaseChangeResult {
	if !m.species.CanEvaporate() {
		return noPhaseChange()
	}
	evapType, ok := m.species.EvaporationType()
	if !ok {
		return noPhaseChange()
	}
	finalEnergy, maxQuantity, ok := m.computeEvaporationBase(pressure, volume, temperatureOffset, preventAbsoluteZeroEvaporation)
	if !ok {
		return noPhaseChange()
	}

	minChangeEnergy := MinimumQuantityMoles * m.species.LatentHeatOfVaporization()
	if finalEnergy < minChangeEnergy {
		if m.quantity < MinimumWorldValidTotalMoles {
			return m.stateChangeLiquid(finalEnergy, FullStateChangeRatio, maxQuantity, evapType)
		}
		return noPhaseChange()
	}
	return m.stateChangeLiquid(finalEnergy, DefaultStateChangeRatio, maxQuantity, evapType)
}

func (m *Mole) tryCondense(pressure, temperatureOffset float64) PhaseChangeResult {
	if !m.species.CanCondense() {
		return noPhaseChange()
	}
	if pressure < m.species.MinLiquidPressure() {
		return noPhaseChange()
	}
	condensationType, ok := m.species.CondensationType()
	if !ok {
		return noPhaseChange()
	}

	condensationTemp := m.EvaporationTemperatureClamped(pressure) + temperatureOffset
	if m.Temperature() >= condensationTemp {
		return noPhaseChange()
	}

	deficitEnergy := calculateEnergyForTemperatureChange(m.quantity, m.species.SpecificHeat(), condensationTemp-m.Temperature())
	minChangeEnergy := MinimumQuantityMoles * m.species.LatentHeatOfVaporization()

	if deficitEnergy < minChangeEnergy {
		if m.quantity <= MinimumWorldValidTotalMoles {
			return m.stateChangeGas(deficitEnergy, FullStateChangeRatio, condensationType)
		}
		return noPhaseChange()
	}
	return m.stateChangeGas(deficitEnergy, DefaultStateChangeRatio, condensationType)
}

func (m *Mole) stateChangeLiquid(energyForChange, ratio, maxQuantity float64, targetType Species) PhaseChangeResult {
	if energyForChange <= 0 {
		return noPhaseChange()
	}
	maxQuantity = math.Min(maxQuantity, m.quantity)
	latentHeat := m.species.LatentHeatOfVaporization()

	molesToChange := calculateMolesForStateChange(energyForChange, latentHeat)
	scale := 1.0
	if molesToChange > maxQuantity {
		scale = molesToChange / maxQuantity
	}
	effectiveRatio := ratio
	if molesToChange < LowStateChangeQuantityBound {
		effectiveRatio = SmallStateChangeRate
	}

	molesToChange = (molesToChange / scale) * effectiveRatio
	energyUsed := (energyForChange / scale) * effectiveRatio

	energyFraction := molesToChange / m.quantity
	energyToTransfer := m.energy * energyFraction

	remainingEnergy := m.energy - energyToTransfer - energyUsed
	remainingQuantity := math.Max(m.quantity-molesToChange, 0)

	finalRemainingEnergy, extraDeficit := remainingEnergy, 0.0
	if remainingEnergy < 0 {
		finalRemainingEnergy, extraDeficit = 0, remainingEnergy
	}

	if remainingQuantity > 0 && finalRemainingEnergy <= 0 {
		return noPhaseChange()
	}
	if remainingQuantity <= 0 && finalRemainingEnergy > 0 {
		return noPhaseChange()
	}

	m.quantity = remainingQuantity
	m.energy = finalRemainingEnergy
	m.cleanup()

	return somePhaseChange(MoleWithEnergy(targetType, molesToChange, energyToTransfer+extraDeficit))
}

func (m *Mole) stateChangeGas(deficitEnergy, ratio float64, targetType Species) PhaseChangeResult {
	latentHeat := m.species.LatentHeatOfVaporization()

	maxEnergy := calculateEnergyForStateChange(m.quantity, latentHeat)
	deficitEnergy = math.Min(deficitEnergy, maxEnergy)

	molesToChange := calculateMolesForStateChange(deficitEnergy, latentHeat)
	scale := 1.0
	if molesToChange > m.quantity {
		scale = molesToChange / m.quantity
	}
	effectiveRatio := ratio
	if molesToChange < LowStateChangeQuantityBound {
		effectiveRatio = SmallStateChangeRate
	}

	molesToChange = (molesToChange / scale) * effectiveRatio
	energyReleased := (deficitEnergy / scale) * effectiveRatio

	energyFraction := molesToChange / m.quantity
	energyToTransfer := m.energy * energyFraction

	remainingEnergy := m.energy - energyToTransfer + energyReleased
	remainingQuantity := math.Max(m.quantity-molesToChange, 0)

	finalRemainingEnergy, extraDeficit := remainingEnergy, 0.0
	if remainingEnergy < 0 {
		finalRemainingEnergy, extraDeficit = 0, remainingEnergy
	}

	m.quantity = remainingQuantity
	m.energy = finalRemainingEnergy
	m.cleanup()

	return somePhaseChange(MoleWithEnergy(targetType, molesToChange, energyToTransfer+extraDeficit))
}

// Set directly assigns quantity and energy, discarding NaN or negative
// inputs to zero.
func (m *Mole) Set(quantity, energy float64) {
	if quantity < 0 || math.IsNaN(quantity) {
		quantity = 0
	}
	if energy < 0 || math.IsNaN(energy) {
		energy = 0
	}
	m.quantity, m.energy = quantity, energy
	m.cleanup()
}

// Scale multiplies quantity and energy by factor (negative or NaN treated
// as zero).
func (m *Mole) Scale(factor float64) {
	if math.IsNaN(factor) || factor < 0 {
		factor = 0
	}
	m.quantity *= factor
	m.energy *= factor
	m.cleanup()
}

func (m Mole) String() string {
	return fmt.Sprintf("%s: %.4f mol @ %.2f K", m.species.Symbol(), m.quantity, m.Temperature())
}
