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

import "testing"

func TestSpecies_StateMatchesTable(t *testing.T) {
	gases := []Species{Oxygen, Nitrogen, CarbonDioxide, Volatiles, Pollutant, NitrousOxide, Steam, Hydrogen}
	liquids := []Species{Water, PollutedWater, LiquidNitrogen, LiquidOxygen, LiquidVolatiles, LiquidCarbonDioxide, LiquidPollutant, LiquidNitrousOxide, LiquidHydrogen}

	for _, s := range gases {
		if !s.IsGas() || s.IsLiquid() {
			t.Errorf("%v: expected gas state", s)
		}
	}
	for _, s := range liquids {
		if !s.IsLiquid() || s.IsGas() {
			t.Errorf("%v: expected liquid state", s)
		}
	}
}

func TestSpecies_EvaporationCondensationAreInverse(t *testing.T) {
	for _, liquid := range []Species{Water, LiquidOxygen, LiquidNitrogen, LiquidCarbonDioxide, LiquidVolatiles, LiquidPollutant, LiquidNitrousOxide, LiquidHydrogen, PollutedWater} {
		gas, ok := liquid.EvaporationType()
		if !ok {
			t.Fatalf("%v: expected an evaporation target", liquid)
		}
		want := liquid
		if liquid == PollutedWater {
			// Polluted water boils off as Steam, which condenses to clean Water.
			want = Water
		}
		back, ok := gas.CondensationType()
		if !ok || back != want {
			t.Errorf("%v evaporates to %v, which condenses back to %v, want %v", liquid, gas, back, want)
		}
	}
}

func TestSpecies_MinLiquidPressureFlooredByArmstrongLimit(t *testing.T) {
	if p := Oxygen.MinLiquidPressure(); p != ArmstrongLimit {
		t.Errorf("Oxygen.MinLiquidPressure() = %v, want %v", p, ArmstrongLimit)
	}
	if p := Pollutant.MinLiquidPressure(); p != 1800.0 {
		t.Errorf("Pollutant.MinLiquidPressure() = %v, want 1800.0", p)
	}
}

func TestSpecies_LatentHeatOfFusionDerivedFromVaporization(t *testing.T) {
	got := Water.LatentHeatOfFusion()
	want := Water.LatentHeatOfVaporization() / FusionToVaporizationDenominator
	if got != want {
		t.Errorf("Water.LatentHeatOfFusion() = %v, want %v", got, want)
	}
}

func TestSpecies_MatchesState(t *testing.T) {
	if !Oxygen.MatchesState(StateAll) || !Oxygen.MatchesState(StateGas) || Oxygen.MatchesState(StateLiquid) {
		t.Errorf("Oxygen.MatchesState mismatched for gas species")
	}
	if !Water.MatchesState(StateAll) || !Water.MatchesState(StateLiquid) || Water.MatchesState(StateGas) {
		t.Errorf("Water.MatchesState mismatched for liquid species")
	}
}

func TestAllSpecies_CoversEveryConstant(t *testing.T) {
	if len(AllSpecies) != 17 {
		t.Fatalf("len(AllSpecies) = %d, want 17", len(AllSpecies))
	}
	for _, s := range AllSpecies {
		if s.Symbol() == "" {
			t.Errorf("species %v has no symbol", s)
		}
	}
}
