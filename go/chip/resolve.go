// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package chip

import "github.com/chipsim-dev/chipsim/go/chiperr"

// resolveValue implements the operand resolution contract of spec §4.C:
// Register → current value, Immediate → the literal, Symbol → defines, then
// aliases (Register or Device, never Alias-chaining at runtime), then
// labels (as a line number), else a runtime error. DevicePin is never a
// value.
func (c *Chip) resolveValue(op Operand) (float64, error) {
	switch op.Kind {
	case OperandRegister:
		return c.registers[op.Reg], nil
	case OperandImmediate:
		return op.Imm, nil
	case OperandDevicePin:
		return 0, chiperr.ErrDevicePinAsValue
	case OperandSymbol:
		if v, ok := c.defines[op.Name]; ok {
			return v, nil
		}
		if target, ok := c.aliases[op.Name]; ok {
			switch target.Kind {
			case AliasRegister:
				return c.registers[target.Reg], nil
			case AliasDeviceID, AliasDevicePin:
				return 0, chiperr.ErrDeviceAliasAsValue
			}
		}
		if line, ok := c.labels[op.Name]; ok {
			return float64(line), nil
		}
		return 0, chiperr.ErrUnresolvedSymbol
	default:
		return 0, chiperr.ErrUnresolvedSymbol
	}
}

// resolveDeviceRefID implements the device reference-id resolution contract
// of spec §4.C:
//   - DevicePin(N) → consult the chip slot's pin vector, erroring if empty.
//   - Register → read the register, interpret as an i32.
//   - Immediate → cast to i32.
//   - Symbol → alias-to-Device returns the stored id; alias-to-Register
//     reads and casts; a define is cast; else runtime error.
func (c *Chip) resolveDeviceRefID(op Operand) (int32, error) {
	switch op.Kind {
	case OperandDevicePin:
		if c.slot == nil {
			return 0, chiperr.ErrNoHostDevice
		}
		id, ok := c.slot.DevicePin(op.Pin)
		if !ok {
			return 0, chiperr.ErrMissingDevice
		}
		return id, nil
	case OperandRegister:
		return int32(c.registers[op.Reg]), nil
	case OperandImmediate:
		return int32(op.Imm), nil
	case OperandSymbol:
		if target, ok := c.aliases[op.Name]; ok {
			switch target.Kind {
			case AliasDeviceID:
				return target.ID, nil
			case AliasRegister:
				return int32(c.registers[target.Reg]), nil
			case AliasDevicePin:
				if c.slot == nil {
					return 0, chiperr.ErrNoHostDevice
				}
				id, ok := c.slot.DevicePin(target.Pin)
				if !ok {
					return 0, chiperr.ErrMissingDevice
				}
				return id, nil
			}
		}
		if v, ok := c.defines[op.Name]; ok {
			return int32(v), nil
		}
		return 0, chiperr.ErrUnresolvedSymbol
	default:
		return 0, chiperr.ErrUnresolvedSymbol
	}
}

// resolveRegisterIndex returns the register index a destination operand
// writes to. Only Register and Symbol (resolving to an aliased register)
// operands are legal destinations (spec §4.B rule 4).
func (c *Chip) resolveRegisterIndex(op Operand) (int, error) {
	switch op.Kind {
	case OperandRegister:
		return op.Reg, nil
	case OperandSymbol:
		if target, ok := c.aliases[op.Name]; ok && target.Kind == AliasRegister {
			return target.Reg, nil
		}
		return 0, chiperr.ErrUnresolvedSymbol
	default:
		return 0, chiperr.ErrIllegalDestination
	}
}

// setDestination writes v to the register a destination operand names.
func (c *Chip) setDestination(op Operand, v float64) error {
	idx, err := c.resolveRegisterIndex(op)
	if err != nil {
		return err
	}
	c.registers[idx] = v
	return nil
}
