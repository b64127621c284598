// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package logictype

import "testing"

func TestLogicTypeStableCodes(t *testing.T) {
	cases := map[LogicType]float64{
		Mode: 3, Setting: 12, Horizontal: 20, Vertical: 21, Ratio: 24, On: 28,
		PrefabHash: 84, PressureInput: 106, TemperatureInput: 107,
		RatioOxygenInput: 108, TotalMolesInput: 115, PressureInput2: 116,
		TotalMolesInput2: 125, PressureOutput: 126, TotalMolesOutput: 135,
		PressureOutput2: 136, TotalMolesOutput2: 145,
		OperationalTemperatureEfficiency: 150, TemperatureDifferentialEfficiency: 151,
		PressureEfficiency: 152, LineNumber: 173, ReferenceId: 217, NameHash: 268,
		StackSize: 280,
	}
	for lt, want := range cases {
		if got := lt.ToValue(); got != want {
			t.Errorf("ToValue() = %v, want %v", got, want)
		}
		if back, ok := LogicTypeFromValue(want); !ok || back != lt {
			t.Errorf("LogicTypeFromValue(%v) = %v, %v; want %v, true", want, back, ok, lt)
		}
	}
}

func TestLogicTypeFromName(t *testing.T) {
	if lt, ok := LogicTypeFromName("Setting"); !ok || lt != Setting {
		t.Fatalf("LogicTypeFromName(Setting) = %v, %v", lt, ok)
	}
	if _, ok := LogicTypeFromName("NotARealProperty"); ok {
		t.Fatalf("expected unknown name to fail lookup")
	}
}

func TestLogicTypeFromValue_Unknown(t *testing.T) {
	if _, ok := LogicTypeFromValue(99999); ok {
		t.Fatalf("expected unknown numeric tag to fail lookup")
	}
}

func TestLogicSlotTypeRange(t *testing.T) {
	if st, ok := LogicSlotTypeFromValue(3); !ok || st != SlotQuantity {
		t.Fatalf("LogicSlotTypeFromValue(3) = %v, %v", st, ok)
	}
	if _, ok := LogicSlotTypeFromValue(33); ok {
		t.Fatalf("expected out-of-range slot tag to fail")
	}
	if _, ok := LogicSlotTypeFromValue(-1); ok {
		t.Fatalf("expected negative slot tag to fail")
	}
}

func TestBatchModeAggregate(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	if got := Sum.Aggregate(values); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
	if got := Average.Aggregate(values); got != 2.5 {
		t.Errorf("Average = %v, want 2.5", got)
	}
	if got := Minimum.Aggregate(values); got != 1 {
		t.Errorf("Minimum = %v, want 1", got)
	}
	if got := Maximum.Aggregate(values); got != 4 {
		t.Errorf("Maximum = %v, want 4", got)
	}
	if got := Sum.Aggregate(nil); got != 0 {
		t.Errorf("Sum of empty = %v, want 0", got)
	}
}

func TestBatchModeFromValue(t *testing.T) {
	for _, m := range []BatchMode{Average, Sum, Minimum, Maximum} {
		got, ok := BatchModeFromValue(m.ToValue())
		if !ok || got != m {
			t.Errorf("BatchModeFromValue(%v) = %v, %v", m.ToValue(), got, ok)
		}
	}
	if _, ok := BatchModeFromValue(99); ok {
		t.Fatalf("expected invalid batch mode tag to fail")
	}
}
