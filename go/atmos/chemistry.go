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

// Tuning constants for the phase-change algorithm. Values are the
// implementation-defined constants this engine was distilled from did not
// fix in its public interface; chosen per the numeric values recorded in
// the design ledger's Open Question Resolutions.
const (
	// MinimumQuantityMoles is the residue threshold below which a Mole is
	// cleaned up to exactly zero.
	MinimumQuantityMoles = 1e-6
	// MinimumWorldValidTotalMoles is the quantity below which a phase
	// change is allowed to go to completion even without enough energy
	// for a "meaningful" change.
	MinimumWorldValidTotalMoles = 1e-4
	// HalfFreezingFactor scales a species' freezing point down to the
	// minimum temperature evaporation is still considered at.
	HalfFreezingFactor = 0.5
	// NearFreezingMargin (K) is the band above freezing point where
	// state-change energy is rate-limited rather than applied directly.
	NearFreezingMargin = 2.0
	// SmallStateChangeRate is the fraction of a state change applied per
	// tick when near freezing or changing a very small quantity.
	SmallStateChangeRate = 0.01
	// EvapInterpolationTempDelta (K) is the temperature span interpolated
	// across when computing an effective evaporation temperature near the
	// pressure boundary.
	EvapInterpolationTempDelta = 2.0
	// FullStateChangeRatio applies a phase change to completion in one
	// tick (used when the total quantity involved is negligible).
	FullStateChangeRatio = 1.0
	// DefaultStateChangeRatio is the fraction of a phase change applied
	// per tick under ordinary conditions.
	DefaultStateChangeRatio = 0.10
	// LowStateChangeQuantityBound (mol) below which SmallStateChangeRate
	// overrides whatever ratio was otherwise selected.
	LowStateChangeQuantityBound = 0.01
	// IdealGasConstant, R, in J/(mol*K).
	IdealGasConstant = 8.314
)

// mapToScale linearly maps value from the [inMin, inMax] range to the
// [outMin, outMax] range, clamping value to the input range first.
func mapToScale(inMin, inMax, outMin, outMax, value float64) float64 {
	if value < inMin {
		value = inMin
	} else if value > inMax {
		value = inMax
	}
	t := (value - inMin) / (inMax - inMin)
	return outMin + (outMax-outMin)*t
}

// lerp linearly interpolates between a and b by t (not clamped).
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// calculateMoles inverts the ideal gas law PV = nRT to estimate how many
// moles a pressure delta corresponds to at a given volume and temperature.
func calculateMoles(pressureDelta, volume, temperature float64) float64 {
	if temperature <= 0 {
		return 0
	}
	return pressureDelta * volume / (IdealGasConstant * temperature)
}

// calculateEnergyForTemperatureChange returns the energy (J) needed to move
// quantity moles of a substance with the given specific heat through
// deltaTemp kelvin.
func calculateEnergyForTemperatureChange(quantity, specificHeat, deltaTemp float64) float64 {
	return quantity * specificHeat * deltaTemp
}

// calculateMolesForStateChange returns how many moles a given amount of
// latent energy is enough to move across a phase boundary.
func calculateMolesForStateChange(energy, latentHeat float64) float64 {
	if latentHeat <= 0 {
		return 0
	}
	return energy / latentHeat
}

// calculateEnergyForStateChange returns the latent energy needed to move
// quantity moles across a phase boundary.
func calculateEnergyForStateChange(quantity, latentHeat float64) float64 {
	return quantity * latentHeat
}
