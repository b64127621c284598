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

// LogicSlotType tags a readable/writable property on a physical item slot,
// per spec §6.4. Numeric codes 0..32 are fixed.
type LogicSlotType int32

const (
	SlotNone           LogicSlotType = 0
	SlotOccupied       LogicSlotType = 1
	SlotOccupantHash   LogicSlotType = 2
	SlotQuantity       LogicSlotType = 3
	SlotDamage         LogicSlotType = 4
	SlotEfficiency     LogicSlotType = 5
	SlotHealth         LogicSlotType = 6
	SlotGrowth         LogicSlotType = 7
	SlotPressure       LogicSlotType = 8
	SlotTemperature    LogicSlotType = 9
	SlotCharge         LogicSlotType = 10
	SlotChargeRatio    LogicSlotType = 11
	SlotClass          LogicSlotType = 12
	SlotPressureWaste  LogicSlotType = 13
	SlotPressureAir    LogicSlotType = 14
	SlotMaxQuantity    LogicSlotType = 15
	SlotMature         LogicSlotType = 16
	SlotPrefabHash     LogicSlotType = 17
	SlotSeeding        LogicSlotType = 18
	SlotLineNumber     LogicSlotType = 19
	SlotVolume         LogicSlotType = 20
	SlotOpen           LogicSlotType = 21
	SlotOn             LogicSlotType = 22
	SlotLock           LogicSlotType = 23
	SlotSortingClass   LogicSlotType = 24
	SlotFilterType     LogicSlotType = 25
	SlotReferenceId    LogicSlotType = 26
	SlotHarvestedHash  LogicSlotType = 27
	SlotMode           LogicSlotType = 28
	SlotMaturityRatio  LogicSlotType = 29
	SlotSeedingRatio   LogicSlotType = 30
	SlotFreeSlots      LogicSlotType = 31
	SlotTotalSlots     LogicSlotType = 32
)

var logicSlotTypeNames = map[string]LogicSlotType{
	"None": SlotNone, "Occupied": SlotOccupied, "OccupantHash": SlotOccupantHash,
	"Quantity": SlotQuantity, "Damage": SlotDamage, "Efficiency": SlotEfficiency,
	"Health": SlotHealth, "Growth": SlotGrowth, "Pressure": SlotPressure,
	"Temperature": SlotTemperature, "Charge": SlotCharge, "ChargeRatio": SlotChargeRatio,
	"Class": SlotClass, "PressureWaste": SlotPressureWaste, "PressureAir": SlotPressureAir,
	"MaxQuantity": SlotMaxQuantity, "Mature": SlotMature, "PrefabHash": SlotPrefabHash,
	"Seeding": SlotSeeding, "LineNumber": SlotLineNumber, "Volume": SlotVolume,
	"Open": SlotOpen, "On": SlotOn, "Lock": SlotLock, "SortingClass": SlotSortingClass,
	"FilterType": SlotFilterType, "ReferenceId": SlotReferenceId, "HarvestedHash": SlotHarvestedHash,
	"Mode": SlotMode, "MaturityRatio": SlotMaturityRatio, "SeedingRatio": SlotSeedingRatio,
	"FreeSlots": SlotFreeSlots, "TotalSlots": SlotTotalSlots,
}

// LogicSlotTypeFromValue maps a numeric tag (0..32) to its LogicSlotType.
func LogicSlotTypeFromValue(value float64) (LogicSlotType, bool) {
	v := int32(value)
	if v < 0 || v > 32 {
		return 0, false
	}
	return LogicSlotType(v), true
}

// LogicSlotTypeFromName looks up a LogicSlotType by its external name.
func LogicSlotTypeFromName(name string) (LogicSlotType, bool) {
	st, ok := logicSlotTypeNames[name]
	return st, ok
}

// ToValue returns the stable numeric tag for this LogicSlotType.
func (s LogicSlotType) ToValue() float64 { return float64(s) }
