// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package atmos implements the multi-species atmospheric engine: the gas
// and liquid species table, gas mixtures, and the phase-change algorithm
// that moves moles between a mixture's gas and liquid states.
package atmos

// MatterState is the phase a Species exists in.
type MatterState uint8

const (
	StateNone MatterState = iota
	StateGas
	StateLiquid
	StateAll
)

// Species identifies one of the simulation's gas or liquid substances. The
// numeric values match the reference simulation's bitmask tags, which some
// programs read directly off Volume/PrefabHash-style logic types.
type Species uint32

const (
	Oxygen        Species = 1
	Nitrogen      Species = 2
	CarbonDioxide Species = 4
	Volatiles     Species = 8
	Pollutant     Species = 16
	Water         Species = 32
	NitrousOxide  Species = 64

	LiquidNitrogen      Species = 128
	LiquidOxygen        Species = 256
	LiquidVolatiles     Species = 512
	Steam               Species = 1024
	LiquidCarbonDioxide Species = 2048
	LiquidPollutant     Species = 4096
	LiquidNitrousOxide  Species = 8192
	Hydrogen            Species = 16384
	LiquidHydrogen      Species = 32768
	PollutedWater       Species = 65536
)

// AllSpecies lists every species in a fixed, stable iteration order.
var AllSpecies = []Species{
	Oxygen, Nitrogen, CarbonDioxide, Volatiles, Pollutant, NitrousOxide, Steam, Hydrogen,
	Water, PollutedWater, LiquidNitrogen, LiquidOxygen, LiquidVolatiles,
	LiquidCarbonDioxide, LiquidPollutant, LiquidNitrousOxide, LiquidHydrogen,
}

// FusionToVaporizationDenominator derives a species' latent heat of fusion
// from its latent heat of vaporization (spec's Open Question Resolutions).
const FusionToVaporizationDenominator = 34.0

// ArmstrongLimit is the minimum pressure (kPa) at which any liquid can
// exist, regardless of a species' own triple-point pressure.
const ArmstrongLimit = 6.3

type speciesInfo struct {
	symbol          string
	displayName     string
	specificHeat    float64 // J/(mol*K)
	state           MatterState
	freezingTemp    float64 // K
	minLiquidPress  float64 // kPa
	maxLiquidTemp   float64 // K, critical temperature
	criticalPress   float64 // kPa
	latentVapor     float64 // J/mol
	molarVolume     float64 // L/mol, 0 for gases
	molarMass       float64 // g/mol
	evaporatesTo    Species // 0 if not a liquid
	condensesTo     Species // 0 if not a gas
	evapCoeffA      float64
	evapCoeffB      float64
}

var table = map[Species]speciesInfo{
	Oxygen: {"O2", "Oxygen", 21.1, StateGas, 56.416, 6.3, 162.2, 6000, 800, 0, 16.0,
		0, LiquidOxygen, 2.6854996004e-11, 6.49214937325},
	Nitrogen: {"N2", "Nitrogen", 20.6, StateGas, 40.01, 6.3, 190.0, 6000, 500, 0, 64.0,
		0, LiquidNitrogen, 5.5757107833e-07, 4.40221368946},
	CarbonDioxide: {"CO2", "Carbon Dioxide", 28.2, StateGas, 217.82, 517.0, 265.0, 6000, 600, 0, 44.0,
		0, LiquidCarbonDioxide, 1.579573e-26, 12.195837931},
	Volatiles: {"VOL", "Volatiles", 20.4, StateGas, 81.6, 6.3, 195.0, 6000, 1000, 0, 16.0,
		0, LiquidVolatiles, 5.863496734e-15, 7.8643601035},
	Pollutant: {"X", "Pollutant", 24.8, StateGas, 173.32, 1800.0, 425.0, 6000, 2000, 0, 28.0,
		0, LiquidPollutant, 2.079033884, 1.31202194555},
	NitrousOxide: {"N2O", "Nitrous Oxide", 37.2, StateGas, 252.1, 800.0, 430.6, 2000, 4000, 0, 46.0,
		0, LiquidNitrousOxide, 0.065353501531, 1.70297431874},
	Steam: {"STM", "Steam", 72.0, StateGas, 273.15, 6.3, 643.0, 6000, 8000, 0, 18.0,
		0, Water, 3.8782059839e-19, 7.90030107708},
	Hydrogen: {"H2", "Hydrogen", 20.4, StateGas, 16.0, 6.3, 70.0, 6000, 350, 0, 2.0,
		0, LiquidHydrogen, 3.18041e-05, 4.4843872973},

	Water: {"H2O", "Water", 72.0, StateLiquid, 273.15, 6.3, 643.0, 6000, 8000, 0.018, 18.0,
		Steam, 0, 3.8782059839e-19, 7.90030107708},
	PollutedWater: {"XH2O", "Polluted Water", 72.0, StateLiquid, 276.15, 6.3, 629.0, 6000, 8000, 0.018, 18.0,
		Steam, 0, 4e-20, 8.27025711260823},
	LiquidNitrogen: {"LN2", "Liquid Nitrogen", 20.6, StateLiquid, 40.01, 6.3, 190.0, 6000, 500, 0.0348, 64.0,
		Nitrogen, 0, 5.5757107833e-07, 4.40221368946},
	LiquidOxygen: {"LOX", "Liquid Oxygen", 21.1, StateLiquid, 56.416, 6.3, 162.2, 6000, 800, 0.03, 16.0,
		Oxygen, 0, 2.6854996004e-11, 6.49214937325},
	LiquidVolatiles: {"LVOL", "Liquid Volatiles", 20.4, StateLiquid, 81.6, 6.3, 195.0, 6000, 1000, 0.04, 16.0,
		Volatiles, 0, 5.863496734e-15, 7.8643601035},
	LiquidCarbonDioxide: {"LCO2", "Liquid Carbon Dioxide", 28.2, StateLiquid, 217.82, 517.0, 265.0, 6000, 600, 0.04, 44.0,
		CarbonDioxide, 0, 1.579573e-26, 12.195837931},
	LiquidPollutant: {"LX", "Liquid Pollutant", 24.8, StateLiquid, 173.32, 1800.0, 425.0, 6000, 2000, 0.04, 28.0,
		Pollutant, 0, 2.079033884, 1.31202194555},
	LiquidNitrousOxide: {"LNOS", "Liquid Nitrous Oxide", 37.2, StateLiquid, 252.1, 800.0, 430.6, 2000, 4000, 0.026, 46.0,
		NitrousOxide, 0, 0.065353501531, 1.70297431874},
	LiquidHydrogen: {"LH2", "Liquid Hydrogen", 20.4, StateLiquid, 16.0, 6.3, 70.0, 6000, 350, 0.03, 2.0,
		Hydrogen, 0, 3.18041e-05, 4.4843872973},
}

func info(s Species) speciesInfo {
	i, ok := table[s]
	if !ok {
		panic("atmos: unknown species")
	}
	return i
}

func (s Species) Symbol() string       { return info(s).symbol }
func (s Species) DisplayName() string  { return info(s).displayName }
func (s Species) SpecificHeat() float64 { return info(s).specificHeat }
func (s Species) State() MatterState   { return info(s).state }
func (s Species) FreezingTemperature() float64 { return info(s).freezingTemp }
func (s Species) MaxLiquidTemperature() float64 { return info(s).maxLiquidTemp }
func (s Species) CriticalPressure() float64     { return info(s).criticalPress }
func (s Species) LatentHeatOfVaporization() float64 { return info(s).latentVapor }
func (s Species) LatentHeatOfFusion() float64 {
	return info(s).latentVapor / FusionToVaporizationDenominator
}
func (s Species) MolarVolume() float64 { return info(s).molarVolume }
func (s Species) MolarMass() float64   { return info(s).molarMass }
func (s Species) EvaporationCoefficientA() float64 { return info(s).evapCoeffA }
func (s Species) EvaporationCoefficientB() float64 { return info(s).evapCoeffB }

// MinLiquidPressure is the triple-point pressure below which liquid cannot
// exist, floored by ArmstrongLimit.
func (s Species) MinLiquidPressure() float64 {
	p := info(s).minLiquidPress
	if p < ArmstrongLimit {
		return ArmstrongLimit
	}
	return p
}

func (s Species) IsGas() bool     { return info(s).state == StateGas }
func (s Species) IsLiquid() bool  { return info(s).state == StateLiquid }
func (s Species) CanEvaporate() bool { return info(s).state == StateLiquid && info(s).evaporatesTo != 0 }
func (s Species) CanCondense() bool  { return info(s).state == StateGas && info(s).condensesTo != 0 }

// EvaporationType returns the gas this liquid evaporates into.
func (s Species) EvaporationType() (Species, bool) {
	g := info(s).evaporatesTo
	return g, g != 0
}

// CondensationType returns the liquid this gas condenses into.
func (s Species) CondensationType() (Species, bool) {
	l := info(s).condensesTo
	return l, l != 0
}

// MatchesState reports whether the species matches a MatterState filter.
func (s Species) MatchesState(state MatterState) bool {
	switch state {
	case StateAll:
		return true
	case StateGas:
		return s.IsGas()
	case StateLiquid:
		return s.IsLiquid()
	default:
		return false
	}
}
