// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package logictype defines the fixed, stable numeric tag enumerations that
// are part of the external interface: LogicType (device properties),
// LogicSlotType (slot properties), and BatchMode (aggregation over a batch
// of devices). These are shared by the chip package (parsing, instruction
// dispatch) and the device/net packages (property registries, batch
// aggregation) without either depending on the other.
package logictype

// LogicType tags a readable/writable property on a device. Numeric codes
// are fixed by the external interface (spec §6.3) and must match bit-exactly
// so existing programs using numeric tags keep working.
type LogicType int32

const (
	Mode       LogicType = 3
	Setting    LogicType = 12
	Horizontal LogicType = 20
	Vertical   LogicType = 21
	Ratio      LogicType = 24
	On         LogicType = 28
	PrefabHash LogicType = 84

	PressureInput           LogicType = 106
	TemperatureInput        LogicType = 107
	RatioOxygenInput        LogicType = 108
	RatioCarbonDioxideInput LogicType = 109
	RatioNitrogenInput      LogicType = 110
	RatioPollutantInput     LogicType = 111
	RatioVolatilesInput     LogicType = 112
	RatioSteamInput         LogicType = 113
	RatioNitrousOxideInput  LogicType = 114
	TotalMolesInput         LogicType = 115

	PressureInput2           LogicType = 116
	TemperatureInput2        LogicType = 117
	RatioOxygenInput2        LogicType = 118
	RatioCarbonDioxideInput2 LogicType = 119
	RatioNitrogenInput2      LogicType = 120
	RatioPollutantInput2     LogicType = 121
	RatioVolatilesInput2     LogicType = 122
	RatioSteamInput2         LogicType = 123
	RatioNitrousOxideInput2  LogicType = 124
	TotalMolesInput2         LogicType = 125

	PressureOutput           LogicType = 126
	TemperatureOutput        LogicType = 127
	RatioOxygenOutput        LogicType = 128
	RatioCarbonDioxideOutput LogicType = 129
	RatioNitrogenOutput      LogicType = 130
	RatioPollutantOutput     LogicType = 131
	RatioVolatilesOutput     LogicType = 132
	RatioSteamOutput         LogicType = 133
	RatioNitrousOxideOutput  LogicType = 134
	TotalMolesOutput         LogicType = 135

	PressureOutput2           LogicType = 136
	TemperatureOutput2        LogicType = 137
	RatioOxygenOutput2        LogicType = 138
	RatioCarbonDioxideOutput2 LogicType = 139
	RatioNitrogenOutput2      LogicType = 140
	RatioPollutantOutput2     LogicType = 141
	RatioVolatilesOutput2     LogicType = 142
	RatioSteamOutput2         LogicType = 143
	RatioNitrousOxideOutput2  LogicType = 144
	TotalMolesOutput2         LogicType = 145

	OperationalTemperatureEfficiency  LogicType = 150
	TemperatureDifferentialEfficiency LogicType = 151
	PressureEfficiency                LogicType = 152

	LineNumber LogicType = 173
	ReferenceId LogicType = 217
	NameHash    LogicType = 268
	StackSize   LogicType = 280
)

var logicTypeNames = map[string]LogicType{
	"Mode": Mode, "Setting": Setting, "Horizontal": Horizontal, "Vertical": Vertical,
	"Ratio": Ratio, "On": On, "PrefabHash": PrefabHash,

	"PressureInput": PressureInput, "TemperatureInput": TemperatureInput,
	"RatioOxygenInput": RatioOxygenInput, "RatioCarbonDioxideInput": RatioCarbonDioxideInput,
	"RatioNitrogenInput": RatioNitrogenInput, "RatioPollutantInput": RatioPollutantInput,
	"RatioVolatilesInput": RatioVolatilesInput, "RatioSteamInput": RatioSteamInput,
	"RatioNitrousOxideInput": RatioNitrousOxideInput, "TotalMolesInput": TotalMolesInput,

	"PressureInput2": PressureInput2, "TemperatureInput2": TemperatureInput2,
	"RatioOxygenInput2": RatioOxygenInput2, "RatioCarbonDioxideInput2": RatioCarbonDioxideInput2,
	"RatioNitrogenInput2": RatioNitrogenInput2, "RatioPollutantInput2": RatioPollutantInput2,
	"RatioVolatilesInput2": RatioVolatilesInput2, "RatioSteamInput2": RatioSteamInput2,
	"RatioNitrousOxideInput2": RatioNitrousOxideInput2, "TotalMolesInput2": TotalMolesInput2,

	"PressureOutput": PressureOutput, "TemperatureOutput": TemperatureOutput,
	"RatioOxygenOutput": RatioOxygenOutput, "RatioCarbonDioxideOutput": RatioCarbonDioxideOutput,
	"RatioNitrogenOutput": RatioNitrogenOutput, "RatioPollutantOutput": RatioPollutantOutput,
	"RatioVolatilesOutput": RatioVolatilesOutput, "RatioSteamOutput": RatioSteamOutput,
	"RatioNitrousOxideOutput": RatioNitrousOxideOutput, "TotalMolesOutput": TotalMolesOutput,

	"PressureOutput2": PressureOutput2, "TemperatureOutput2": TemperatureOutput2,
	"RatioOxygenOutput2": RatioOxygenOutput2, "RatioCarbonDioxideOutput2": RatioCarbonDioxideOutput2,
	"RatioNitrogenOutput2": RatioNitrogenOutput2, "RatioPollutantOutput2": RatioPollutantOutput2,
	"RatioVolatilesOutput2": RatioVolatilesOutput2, "RatioSteamOutput2": RatioSteamOutput2,
	"RatioNitrousOxideOutput2": RatioNitrousOxideOutput2, "TotalMolesOutput2": TotalMolesOutput2,

	"OperationalTemperatureEfficiency":  OperationalTemperatureEfficiency,
	"TemperatureDifferentialEfficiency": TemperatureDifferentialEfficiency,
	"PressureEfficiency":                PressureEfficiency,

	"LineNumber": LineNumber, "ReferenceId": ReferenceId, "NameHash": NameHash,
	"StackSize": StackSize,
}

var validLogicTypes = func() map[LogicType]struct{} {
	set := make(map[LogicType]struct{}, len(logicTypeNames))
	for _, lt := range logicTypeNames {
		set[lt] = struct{}{}
	}
	return set
}()

// LogicTypeFromValue maps a numeric tag to its LogicType, or false if the
// tag is not a recognized member of the fixed enumeration.
func LogicTypeFromValue(value float64) (LogicType, bool) {
	lt := LogicType(int32(value))
	_, ok := validLogicTypes[lt]
	return lt, ok
}

// LogicTypeFromName looks up a LogicType by its external (case-sensitive)
// name, as used when the parser substitutes a numeric tag for a known
// logic-type token (spec §4.B rule 5).
func LogicTypeFromName(name string) (LogicType, bool) {
	lt, ok := logicTypeNames[name]
	return lt, ok
}

// ToValue returns the stable numeric tag for this LogicType.
func (l LogicType) ToValue() float64 { return float64(l) }
