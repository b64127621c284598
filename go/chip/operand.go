// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package chip implements the stack-machine interpreter: operand model,
// parser, opcode dispatch, and the chip runtime (registers, stack, program
// counter, symbol tables, sleep/halt state).
package chip

import "fmt"

// OperandKind tags the variant held by an Operand.
type OperandKind uint8

const (
	OperandRegister OperandKind = iota
	OperandImmediate
	OperandDevicePin
	OperandSymbol
)

// Operand is the tagged union the parser emits: Register(u8) | Immediate(f64)
// | DevicePin(u8) | Symbol(string). No allocation is needed for the first
// three variants; Symbol carries a string naming an alias, define, or label.
type Operand struct {
	Kind    OperandKind
	Reg     int
	Imm     float64
	Pin     int
	Name    string
}

func Register(n int) Operand      { return Operand{Kind: OperandRegister, Reg: n} }
func Immediate(v float64) Operand { return Operand{Kind: OperandImmediate, Imm: v} }
func DevicePin(n int) Operand     { return Operand{Kind: OperandDevicePin, Pin: n} }
func Symbol(name string) Operand  { return Operand{Kind: OperandSymbol, Name: name} }

// IsDestinationLegal reports whether this operand may appear in a
// destination slot: destination operands are never Immediate or DevicePin.
func (o Operand) IsDestinationLegal() bool {
	return o.Kind == OperandRegister || o.Kind == OperandSymbol
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandRegister:
		return fmt.Sprintf("r%d", o.Reg)
	case OperandImmediate:
		return fmt.Sprintf("%v", o.Imm)
	case OperandDevicePin:
		return fmt.Sprintf("d%d", o.Pin)
	case OperandSymbol:
		return o.Name
	default:
		return "?"
	}
}

// AliasTargetKind tags what an alias name resolves to.
type AliasTargetKind uint8

const (
	AliasRegister AliasTargetKind = iota
	AliasDevicePin
	AliasDeviceID
)

// AliasTarget is the value stored for an alias symbol: a register index, a
// device-pin index (not yet resolved to a device reference id), or a bound
// device reference id (used by the built-in "db" alias and by programs that
// bind a name directly to a device id).
type AliasTarget struct {
	Kind AliasTargetKind
	Reg  int
	Pin  int
	ID   int32
}
