// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package device

import (
	"math"
	"testing"

	"github.com/chipsim-dev/chipsim/go/atmos"
	"github.com/chipsim-dev/chipsim/go/logictype"
)

func TestGasSensor_ReadsAttachedNetwork(t *testing.T) {
	s := NewGasSensor(1, 0xBEEF, "sensor")
	n := atmos.NewNetwork(1, 10)
	n.AddGas(atmos.Oxygen, 1, 300)
	n.AddGas(atmos.Nitrogen, 3, 300)
	s.Connect(ConnInput, n)

	ratio, err := s.Read(logictype.RatioOxygenInput)
	if err != nil {
		t.Fatalf("Read(RatioOxygenInput): %v", err)
	}
	if math.Abs(ratio-0.25) > 1e-9 {
		t.Fatalf("RatioOxygenInput = %v, want 0.25", ratio)
	}

	temp, err := s.Read(logictype.TemperatureInput)
	if err != nil {
		t.Fatalf("Read(TemperatureInput): %v", err)
	}
	if math.Abs(temp-300) > 1e-6 {
		t.Fatalf("TemperatureInput = %v, want 300", temp)
	}
}

func TestGasSensor_UnconnectedSlotReadsZero(t *testing.T) {
	s := NewGasSensor(1, 0xBEEF, "sensor")
	got, err := s.Read(logictype.PressureInput2)
	if err != nil {
		t.Fatalf("Read(PressureInput2): %v", err)
	}
	if got != 0 {
		t.Fatalf("PressureInput2 with no connection = %v, want 0", got)
	}
}

func TestGasSensor_DisconnectRemovesNetwork(t *testing.T) {
	s := NewGasSensor(1, 0xBEEF, "sensor")
	n := atmos.NewNetwork(1, 10)
	n.AddGas(atmos.Oxygen, 1, 300)
	s.Connect(ConnOutput, n)
	s.Disconnect(ConnOutput)

	if _, ok := s.Network(ConnOutput); ok {
		t.Fatalf("expected ConnOutput to be detached")
	}
	got, _ := s.Read(logictype.TotalMolesOutput)
	if got != 0 {
		t.Fatalf("TotalMolesOutput after disconnect = %v, want 0", got)
	}
}
