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
	"github.com/chipsim-dev/chipsim/go/atmos"
	"github.com/chipsim-dev/chipsim/go/logictype"
)

// connectionLogicSet names the logic types a connection slot exposes: its
// aggregate pressure/temperature/total-moles and one ratio type per
// monitored species.
type connectionLogicSet struct {
	pressure, temperature, totalMoles logictype.LogicType
	ratio                             map[atmos.Species]logictype.LogicType
}

var connectionLogicSets = map[AtmosphericConnection]connectionLogicSet{
	ConnInput: {
		pressure: logictype.PressureInput, temperature: logictype.TemperatureInput, totalMoles: logictype.TotalMolesInput,
		ratio: map[atmos.Species]logictype.LogicType{
			atmos.Oxygen: logictype.RatioOxygenInput, atmos.CarbonDioxide: logictype.RatioCarbonDioxideInput,
			atmos.Nitrogen: logictype.RatioNitrogenInput, atmos.Pollutant: logictype.RatioPollutantInput,
			atmos.Volatiles: logictype.RatioVolatilesInput, atmos.Steam: logictype.RatioSteamInput,
			atmos.NitrousOxide: logictype.RatioNitrousOxideInput,
		},
	},
	ConnInput2: {
		pressure: logictype.PressureInput2, temperature: logictype.TemperatureInput2, totalMoles: logictype.TotalMolesInput2,
		ratio: map[atmos.Species]logictype.LogicType{
			atmos.Oxygen: logictype.RatioOxygenInput2, atmos.CarbonDioxide: logictype.RatioCarbonDioxideInput2,
			atmos.Nitrogen: logictype.RatioNitrogenInput2, atmos.Pollutant: logictype.RatioPollutantInput2,
			atmos.Volatiles: logictype.RatioVolatilesInput2, atmos.Steam: logictype.RatioSteamInput2,
			atmos.NitrousOxide: logictype.RatioNitrousOxideInput2,
		},
	},
	ConnOutput: {
		pressure: logictype.PressureOutput, temperature: logictype.TemperatureOutput, totalMoles: logictype.TotalMolesOutput,
		ratio: map[atmos.Species]logictype.LogicType{
			atmos.Oxygen: logictype.RatioOxygenOutput, atmos.CarbonDioxide: logictype.RatioCarbonDioxideOutput,
			atmos.Nitrogen: logictype.RatioNitrogenOutput, atmos.Pollutant: logictype.RatioPollutantOutput,
			atmos.Volatiles: logictype.RatioVolatilesOutput, atmos.Steam: logictype.RatioSteamOutput,
			atmos.NitrousOxide: logictype.RatioNitrousOxideOutput,
		},
	},
	ConnOutput2: {
		pressure: logictype.PressureOutput2, temperature: logictype.TemperatureOutput2, totalMoles: logictype.TotalMolesOutput2,
		ratio: map[atmos.Species]logictype.LogicType{
			atmos.Oxygen: logictype.RatioOxygenOutput2, atmos.CarbonDioxide: logictype.RatioCarbonDioxideOutput2,
			atmos.Nitrogen: logictype.RatioNitrogenOutput2, atmos.Pollutant: logictype.RatioPollutantOutput2,
			atmos.Volatiles: logictype.RatioVolatilesOutput2, atmos.Steam: logictype.RatioSteamOutput2,
			atmos.NitrousOxide: logictype.RatioNitrousOxideOutput2,
		},
	},
}

// GasSensor reads the composition of up to four attached atmospheric
// networks (Input, Input2, Output, Output2), exposing them through the
// spec's per-connection, per-species logic types. A network connected on the
// Internal connection is stored, but no logic type reads it.
type GasSensor struct {
	base
	connections map[AtmosphericConnection]*atmos.Network
}

// NewGasSensor creates a gas sensor with no networks attached; attach with
// Connect before reading meaningful values.
func NewGasSensor(id, prefabHash int32, name string) *GasSensor {
	s := &GasSensor{base: newBase(id, prefabHash, name), connections: make(map[AtmosphericConnection]*atmos.Network)}
	s.properties[logictype.PrefabHash] = readOnly(func() float64 { return float64(prefabHash) })

	for conn, set := range connectionLogicSets {
		conn, set := conn, set
		s.properties[set.pressure] = readOnly(func() float64 { return s.networkValue(conn, (*atmos.Network).Pressure) })
		s.properties[set.temperature] = readOnly(func() float64 { return s.networkValue(conn, (*atmos.Network).Temperature) })
		s.properties[set.totalMoles] = readOnly(func() float64 { return s.networkValue(conn, func(n *atmos.Network) float64 { return n.TotalMoles(atmos.StateGas) }) })
		for species, lt := range set.ratio {
			species, lt := species, lt
			s.properties[lt] = readOnly(func() float64 { return s.networkValue(conn, func(n *atmos.Network) float64 { return n.Ratio(species) }) })
		}
	}
	return s
}

func (s *GasSensor) networkValue(conn AtmosphericConnection, read func(*atmos.Network) float64) float64 {
	n, ok := s.connections[conn]
	if !ok || n == nil {
		return 0
	}
	return read(n)
}

// Connect attaches an atmospheric network to the given connection slot.
func (s *GasSensor) Connect(conn AtmosphericConnection, network *atmos.Network) {
	s.connections[conn] = network
}

// Disconnect detaches whatever network is attached to conn, if any.
func (s *GasSensor) Disconnect(conn AtmosphericConnection) {
	delete(s.connections, conn)
}

// Network returns the network attached to conn, if any.
func (s *GasSensor) Network(conn AtmosphericConnection) (*atmos.Network, bool) {
	n, ok := s.connections[conn]
	return n, ok
}
