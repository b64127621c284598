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

import (
	"math"

	"github.com/chipsim-dev/chipsim/go/chiperr"
	"github.com/chipsim-dev/chipsim/go/logictype"
	"github.com/chipsim-dev/chipsim/go/numeric"
)

// LoadProgram replaces the chip's program, labels, aliases, and defines that
// came from a prior program (the built-ins and "db" survive), implementing
// the two-pass contract of spec §4.B: a first pass collects every label's
// line number (duplicates are a parse error), then a second pass parses
// every line against the now-complete label table.
func (c *Chip) LoadProgram(lines []string) error {
	labels := make(map[string]int, len(lines))
	for i, raw := range lines {
		if name, ok := labelName(raw); ok {
			if _, dup := labels[name]; dup {
				return chiperr.AtLine(i+1, chiperr.ErrDuplicateLabel)
			}
			labels[name] = i
		}
	}

	program := make([]Instruction, len(lines))
	for i, raw := range lines {
		inst, err := ParseLine(raw, i+1)
		if err != nil {
			return err
		}
		program[i] = inst
	}

	c.program = program
	c.labels = labels
	c.aliases = map[string]AliasTarget{
		"sp": {Kind: AliasRegister, Reg: StackPointerIndex},
		"ra": {Kind: AliasRegister, Reg: ReturnAddressIndex},
	}
	c.defines = make(map[string]float64, len(builtinConstantNames))
	for _, name := range builtinConstantNames {
		v, _ := builtinConstant(name)
		c.defines[name] = v
	}
	c.SetSlot(c.slot)
	c.pc = 0
	c.halted = false
	c.sleepTicks = 0
	c.lastErr = nil
	return nil
}

// Run executes up to maxSteps instructions, stopping early if the chip
// halts, sleeps out its budget, or reaches end of program. It returns the
// number of instructions actually executed; a step that only drains a sleep
// tick, or finds the chip halted or past its last line, counts as none.
func (c *Chip) Run(maxSteps int) (int, error) {
	for i := 0; i < maxSteps; i++ {
		executes := !c.halted && c.sleepTicks == 0 && c.pc >= 0 && c.pc < len(c.program)
		more, err := c.Step()
		if err != nil {
			return i, err
		}
		if !more {
			if !executes {
				return i, nil
			}
			return i + 1, nil
		}
	}
	return maxSteps, nil
}

// Step executes a single tick. It returns false when the chip has halted or
// run off the end of its program, at which point further calls are no-ops.
func (c *Chip) Step() (bool, error) {
	if c.halted {
		return false, nil
	}
	if c.sleepTicks > 0 {
		c.sleepTicks--
		return false, nil
	}
	if c.pc < 0 || c.pc >= len(c.program) {
		c.halted = true
		return false, nil
	}

	inst := c.program[c.pc]
	jumped, err := c.execute(inst)
	if err != nil {
		c.halted = true
		c.lastErr = chiperr.AtLine(inst.Line, err)
		return false, c.lastErr
	}
	if !jumped {
		c.pc++
	}
	if inst.Op == OpYield || inst.Op == OpSleep {
		return false, nil
	}
	return !c.halted, nil
}

// execute dispatches a single instruction, reporting whether it altered the
// program counter itself (jumps and branches) so Step knows not to advance
// it again.
func (c *Chip) execute(inst Instruction) (jumped bool, err error) {
	switch inst.Op {
	case OpNoop:
		return false, nil

	case OpMove:
		v, err := c.resolveValue(inst.B)
		if err != nil {
			return false, err
		}
		return false, c.setDestination(inst.A, v)

	case OpAlias:
		return false, c.execAlias(inst)

	case OpDefine:
		v, err := c.resolveValue(inst.B)
		if err != nil {
			return false, err
		}
		c.defines[inst.A.Name] = v
		return false, nil

	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow, OpMax, OpMin, OpAtan2:
		return false, c.execBinaryMath(inst)

	case OpSqrt, OpAbs, OpExp, OpLog, OpCeil, OpFloor, OpRound, OpTrunc,
		OpSin, OpCos, OpTan, OpAsin, OpAcos, OpAtan:
		return false, c.execUnaryMath(inst)

	case OpRand:
		return false, c.setDestination(inst.A, c.rng.Float64())

	case OpLerp:
		return false, c.execLerp(inst)

	case OpAnd, OpOr, OpXor, OpNor, OpSll, OpSla, OpSrl, OpSra:
		return false, c.execBitwise(inst)

	case OpNot:
		return false, c.execNot(inst)

	case OpExt:
		return false, c.execExt(inst)

	case OpIns:
		return false, c.execIns(inst)

	case OpSlt, OpSgt, OpSle, OpSge, OpSeq, OpSne:
		return false, c.execCompareBinary(inst)

	case OpSltz, OpSgtz, OpSlez, OpSgez, OpSeqz, OpSnez, OpSnan, OpSnanz:
		return false, c.execCompareUnary(inst)

	case OpSap, OpSna:
		return false, c.execApprox(inst)

	case OpSapz, OpSnaz:
		return false, c.execApproxZ(inst)

	case OpSdse, OpSdns:
		return false, c.execDeviceExistsPredicate(inst)

	case OpJ:
		return c.execJ(inst)

	case OpJr:
		return c.execJr(inst)

	case OpJal:
		return c.execJal(inst)

	case OpBranch:
		return c.execBranch(inst)

	case OpPush:
		return false, c.execPush(inst)

	case OpPop:
		return false, c.execPop(inst)

	case OpPeek:
		return false, c.execPeek(inst)

	case OpPoke:
		return false, c.execPoke(inst)

	case OpL:
		return false, c.execLoad(inst)
	case OpS:
		return false, c.execStore(inst)
	case OpLs:
		return false, c.execLoadSlot(inst)
	case OpSs:
		return false, c.execStoreSlot(inst)
	case OpLd:
		return false, c.execLoad(inst)
	case OpSd:
		return false, c.execStore(inst)
	case OpGet:
		return false, c.execGet(inst)
	case OpPut:
		return false, c.execPut(inst)
	case OpGetd:
		return false, c.execGet(inst)
	case OpPutd:
		return false, c.execPut(inst)

	case OpLb:
		return false, c.execBatchLoad(inst)
	case OpSb:
		return false, c.execBatchStore(inst)
	case OpLbn:
		return false, c.execBatchLoadNamed(inst)
	case OpSbn:
		return false, c.execBatchStoreNamed(inst)

	case OpYield:
		c.sleepTicks = 0
		return false, nil

	case OpSleep:
		v, err := c.resolveValue(inst.A)
		if err != nil {
			return false, err
		}
		ticks := int(v * 2)
		if ticks > 1 {
			c.sleepTicks = ticks - 1
		} else {
			c.sleepTicks = 0
		}
		return false, nil

	case OpHcf:
		return false, chiperr.ErrHalt

	case OpSelect:
		return false, c.execSelect(inst)

	case OpClr:
		id, err := c.resolveDeviceRefID(inst.A)
		if err != nil {
			return false, err
		}
		return false, c.network.ClearMemory(id)

	case OpClrd:
		id, err := c.resolveDeviceRefID(inst.A)
		if err != nil {
			return false, err
		}
		return false, c.network.ClearMemory(id)

	default:
		return false, chiperr.ErrUnknownMnemonic
	}
}

func (c *Chip) execAlias(inst Instruction) error {
	name := inst.A.Name
	switch inst.B.Kind {
	case OperandRegister:
		c.aliases[name] = AliasTarget{Kind: AliasRegister, Reg: inst.B.Reg}
	case OperandDevicePin:
		c.aliases[name] = AliasTarget{Kind: AliasDevicePin, Pin: inst.B.Pin}
	case OperandSymbol:
		target, ok := c.aliases[inst.B.Name]
		if !ok {
			return chiperr.ErrUnresolvedSymbol
		}
		c.aliases[name] = target
	default:
		return chiperr.ErrInvalidLiteral
	}
	return nil
}

func (c *Chip) execBinaryMath(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	b, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	var result float64
	switch inst.Op {
	case OpAdd:
		result = a + b
	case OpSub:
		result = a - b
	case OpMul:
		result = a * b
	case OpDiv:
		result = a / b
	case OpMod:
		result = math.Mod(math.Mod(a, b)+b, b)
	case OpPow:
		result = math.Pow(a, b)
	case OpMax:
		result = math.Max(a, b)
	case OpMin:
		result = math.Min(a, b)
	case OpAtan2:
		result = math.Atan2(a, b)
	}
	return c.setDestination(inst.A, result)
}

func (c *Chip) execUnaryMath(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	var result float64
	switch inst.Op {
	case OpSqrt:
		result = math.Sqrt(a)
	case OpAbs:
		result = math.Abs(a)
	case OpExp:
		result = math.Exp(a)
	case OpLog:
		result = math.Log(a)
	case OpCeil:
		result = math.Ceil(a)
	case OpFloor:
		result = math.Floor(a)
	case OpRound:
		result = math.Round(a)
	case OpTrunc:
		result = math.Trunc(a)
	case OpSin:
		result = math.Sin(a)
	case OpCos:
		result = math.Cos(a)
	case OpTan:
		result = math.Tan(a)
	case OpAsin:
		result = math.Asin(a)
	case OpAcos:
		result = math.Acos(a)
	case OpAtan:
		result = math.Atan(a)
	}
	return c.setDestination(inst.A, result)
}

func (c *Chip) execLerp(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	b, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	t, err := c.resolveValue(inst.D)
	if err != nil {
		return err
	}
	return c.setDestination(inst.A, a+(b-a)*t)
}

func (c *Chip) execBitwise(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	b, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	ai := numeric.ToBits(a, true)
	bi := numeric.ToBits(b, true)
	var result int64
	switch inst.Op {
	case OpAnd:
		result = ai & bi
	case OpOr:
		result = ai | bi
	case OpXor:
		result = ai ^ bi
	case OpNor:
		result = ^(ai | bi)
	case OpSll:
		result = ai << uint(bi&63)
	case OpSla:
		result = ai << uint(bi&63)
	case OpSrl:
		result = int64(uint64(numeric.ToBits(a, false)) >> uint(bi&63))
	case OpSra:
		result = ai >> uint(bi&63)
	}
	return c.setDestination(inst.A, numeric.FromBits(result))
}

func (c *Chip) execNot(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	result := ^numeric.ToBits(a, true)
	return c.setDestination(inst.A, numeric.FromBits(result))
}

func (c *Chip) execExt(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	start, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	length, err := c.resolveValue(inst.D)
	if err != nil {
		return err
	}
	startBit := int(start)
	lengthBit := int(length)
	if startBit < 0 || lengthBit < 0 || startBit+lengthBit > 53 {
		return chiperr.ErrShiftRange
	}
	bits := numeric.ToBits(a, false)
	mask := (int64(1) << uint(lengthBit)) - 1
	result := (bits >> uint(startBit)) & mask
	return c.setDestination(inst.A, numeric.FromBits(result))
}

func (c *Chip) execIns(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	insert, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	start, err := c.resolveValue(inst.D)
	if err != nil {
		return err
	}
	length, err := c.resolveValue(inst.E)
	if err != nil {
		return err
	}
	startBit := int(start)
	lengthBit := int(length)
	if startBit < 0 || lengthBit < 0 || startBit+lengthBit > 53 {
		return chiperr.ErrShiftRange
	}
	mask := ((int64(1) << uint(lengthBit)) - 1) << uint(startBit)
	base := numeric.ToBits(a, false)
	ins := (numeric.ToBits(insert, false) << uint(startBit)) & mask
	result := (base &^ mask) | ins
	return c.setDestination(inst.A, numeric.FromBits(result))
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (c *Chip) execCompareBinary(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	b, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	var result bool
	switch inst.Op {
	case OpSlt:
		result = a < b
	case OpSgt:
		result = a > b
	case OpSle:
		result = a <= b
	case OpSge:
		result = a >= b
	case OpSeq:
		result = a == b
	case OpSne:
		result = a != b
	}
	return c.setDestination(inst.A, boolToFloat(result))
}

func (c *Chip) execCompareUnary(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	var result bool
	switch inst.Op {
	case OpSltz:
		result = a < 0
	case OpSgtz:
		result = a > 0
	case OpSlez:
		result = a <= 0
	case OpSgez:
		result = a >= 0
	case OpSeqz:
		result = a == 0
	case OpSnez:
		result = a != 0
	case OpSnan:
		result = math.IsNaN(a)
	case OpSnanz:
		result = !math.IsNaN(a)
	}
	return c.setDestination(inst.A, boolToFloat(result))
}

func approxEpsilon(bound float64) float64 {
	e := math.Abs(bound)
	if e < approxEpsilonMin {
		return approxEpsilonMin
	}
	return e
}

func (c *Chip) execApprox(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	b, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	bound, err := c.resolveValue(inst.D)
	if err != nil {
		return err
	}
	close := math.Abs(a-b) <= approxEpsilon(bound)
	if inst.Op == OpSna {
		close = !close
	}
	return c.setDestination(inst.A, boolToFloat(close))
}

func (c *Chip) execApproxZ(inst Instruction) error {
	a, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	bound, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	close := math.Abs(a) <= approxEpsilon(bound)
	if inst.Op == OpSnaz {
		close = !close
	}
	return c.setDestination(inst.A, boolToFloat(close))
}

func (c *Chip) execDeviceExistsPredicate(inst Instruction) error {
	id, err := c.resolveDeviceRefID(inst.B)
	if err != nil {
		return c.setDestination(inst.A, boolToFloat(inst.Op == OpSdns))
	}
	exists := c.network != nil && c.network.DeviceExists(id)
	if inst.Op == OpSdns {
		exists = !exists
	}
	return c.setDestination(inst.A, boolToFloat(exists))
}

func (c *Chip) execJ(inst Instruction) (bool, error) {
	target, err := c.resolveValue(inst.Target)
	if err != nil {
		return false, err
	}
	c.pc = int(target)
	return true, nil
}

func (c *Chip) execJr(inst Instruction) (bool, error) {
	offset, err := c.resolveValue(inst.Target)
	if err != nil {
		return false, err
	}
	c.pc += int(offset)
	return true, nil
}

func (c *Chip) execJal(inst Instruction) (bool, error) {
	target, err := c.resolveValue(inst.Target)
	if err != nil {
		return false, err
	}
	c.registers[ReturnAddressIndex] = float64(c.pc + 1)
	c.pc = int(target)
	return true, nil
}

// evalBranchPredicate applies BranchForm's comparison axis to a and b (b is
// 0 and ignored for unary-z forms).
func evalBranchPredicate(form BranchForm, a, b, bound float64) bool {
	switch form.Predicate {
	case PredEq:
		return a == b
	case PredNe:
		return a != b
	case PredLt:
		return a < b
	case PredGt:
		return a > b
	case PredLe:
		return a <= b
	case PredGe:
		return a >= b
	case PredAp:
		return math.Abs(a-b) <= approxEpsilon(bound)
	case PredNa:
		return math.Abs(a-b) > approxEpsilon(bound)
	case PredNan:
		return math.IsNaN(a)
	default:
		return false
	}
}

func (c *Chip) execBranch(inst Instruction) (bool, error) {
	var taken bool
	var err error

	switch inst.Branch.Predicate {
	case PredDeviceExists, PredDeviceNotExists:
		id, rerr := c.resolveDeviceRefID(inst.A)
		exists := rerr == nil && c.network != nil && c.network.DeviceExists(id)
		taken = exists == (inst.Branch.Predicate == PredDeviceExists)
	default:
		a, rerr := c.resolveValue(inst.A)
		if rerr != nil {
			return false, rerr
		}
		var b, bound float64
		if !inst.Branch.UnaryZ {
			b, err = c.resolveValue(inst.B)
			if err != nil {
				return false, err
			}
			if inst.Branch.Predicate == PredAp || inst.Branch.Predicate == PredNa {
				bound, err = c.resolveValue(inst.C)
				if err != nil {
					return false, err
				}
			}
		} else if inst.Branch.Predicate == PredAp || inst.Branch.Predicate == PredNa {
			bound, err = c.resolveValue(inst.B)
			if err != nil {
				return false, err
			}
		}
		taken = evalBranchPredicate(inst.Branch, a, b, bound)
	}

	if !taken {
		return false, nil
	}

	target, err := c.resolveValue(inst.Target)
	if err != nil {
		return false, err
	}
	if inst.Branch.Link {
		c.registers[ReturnAddressIndex] = float64(c.pc + 1)
	}
	if inst.Branch.Relative {
		c.pc += int(target)
	} else {
		c.pc = int(target)
	}
	return true, nil
}

func (c *Chip) execPush(inst Instruction) error {
	v, err := c.resolveValue(inst.A)
	if err != nil {
		return err
	}
	sp := c.StackPointer()
	if sp < 0 || sp >= StackSize {
		return chiperr.ErrStackOverflow
	}
	c.stack[sp] = v
	c.registers[StackPointerIndex] = float64(sp + 1)
	return nil
}

func (c *Chip) execPop(inst Instruction) error {
	sp := c.StackPointer() - 1
	if sp < 0 || sp >= StackSize {
		return chiperr.ErrStackUnderflow
	}
	c.registers[StackPointerIndex] = float64(sp)
	return c.setDestination(inst.A, c.stack[sp])
}

func (c *Chip) execPeek(inst Instruction) error {
	sp := c.StackPointer() - 1
	if sp < 0 || sp >= StackSize {
		return chiperr.ErrStackUnderflow
	}
	return c.setDestination(inst.A, c.stack[sp])
}

func (c *Chip) execPoke(inst Instruction) error {
	idx, err := c.resolveValue(inst.A)
	if err != nil {
		return err
	}
	v, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	i := int(idx)
	if i < 0 || i >= StackSize {
		return chiperr.ErrStackOverflow
	}
	c.stack[i] = v
	return nil
}

func logicTypeFromOperand(op Operand) (logictype.LogicType, error) {
	if op.Kind != OperandImmediate {
		return 0, chiperr.ErrInvalidLogicTag
	}
	lt, ok := logictype.LogicTypeFromValue(op.Imm)
	if !ok {
		return 0, chiperr.ErrInvalidLogicTag
	}
	return lt, nil
}

func slotLogicTypeFromOperand(op Operand) (logictype.LogicSlotType, error) {
	if op.Kind != OperandImmediate {
		return 0, chiperr.ErrInvalidLogicTag
	}
	st, ok := logictype.LogicSlotTypeFromValue(op.Imm)
	if !ok {
		return 0, chiperr.ErrInvalidLogicTag
	}
	return st, nil
}

func batchModeFromOperand(op Operand) (logictype.BatchMode, error) {
	if op.Kind != OperandImmediate {
		return 0, chiperr.ErrInvalidBatchMode
	}
	m, ok := logictype.BatchModeFromValue(op.Imm)
	if !ok {
		return 0, chiperr.ErrInvalidBatchMode
	}
	return m, nil
}

// execLoad implements both `l` (device) and `ld` (batch-by-id-path is
// handled by the batch opcodes; `ld` here addresses a device by resolved
// reference id exactly like `l`).
func (c *Chip) execLoad(inst Instruction) error {
	id, err := c.resolveDeviceRefID(inst.B)
	if err != nil {
		return err
	}
	lt, err := logicTypeFromOperand(inst.C)
	if err != nil {
		return err
	}
	if c.network == nil {
		return chiperr.ErrMissingDevice
	}
	v, err := c.network.Read(id, lt)
	if err != nil {
		return err
	}
	return c.setDestination(inst.A, v)
}

func (c *Chip) execStore(inst Instruction) error {
	id, err := c.resolveDeviceRefID(inst.A)
	if err != nil {
		return err
	}
	lt, err := logicTypeFromOperand(inst.B)
	if err != nil {
		return err
	}
	v, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	if c.network == nil {
		return chiperr.ErrMissingDevice
	}
	return c.network.Write(id, lt, v)
}

func (c *Chip) execLoadSlot(inst Instruction) error {
	id, err := c.resolveDeviceRefID(inst.B)
	if err != nil {
		return err
	}
	slotIdx, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	st, err := slotLogicTypeFromOperand(inst.D)
	if err != nil {
		return err
	}
	if c.network == nil {
		return chiperr.ErrMissingDevice
	}
	v, err := c.network.ReadSlot(id, int(slotIdx), st)
	if err != nil {
		return err
	}
	return c.setDestination(inst.A, v)
}

func (c *Chip) execStoreSlot(inst Instruction) error {
	id, err := c.resolveDeviceRefID(inst.A)
	if err != nil {
		return err
	}
	slotIdx, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	st, err := slotLogicTypeFromOperand(inst.C)
	if err != nil {
		return err
	}
	v, err := c.resolveValue(inst.D)
	if err != nil {
		return err
	}
	if c.network == nil {
		return chiperr.ErrMissingDevice
	}
	return c.network.WriteSlot(id, int(slotIdx), st, v)
}

func (c *Chip) execGet(inst Instruction) error {
	id, err := c.resolveDeviceRefID(inst.B)
	if err != nil {
		return err
	}
	idx, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	if c.network == nil {
		return chiperr.ErrMissingDevice
	}
	v, err := c.network.GetMemory(id, int(idx))
	if err != nil {
		return err
	}
	return c.setDestination(inst.A, v)
}

func (c *Chip) execPut(inst Instruction) error {
	id, err := c.resolveDeviceRefID(inst.A)
	if err != nil {
		return err
	}
	idx, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	v, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	if c.network == nil {
		return chiperr.ErrMissingDevice
	}
	return c.network.SetMemory(id, int(idx), v)
}

func (c *Chip) execBatchLoad(inst Instruction) error {
	prefabHash, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	lt, err := logicTypeFromOperand(inst.C)
	if err != nil {
		return err
	}
	mode, err := batchModeFromOperand(inst.D)
	if err != nil {
		return err
	}
	if c.network == nil {
		return chiperr.ErrMissingDevice
	}
	v, err := c.network.BatchReadByPrefab(int32(prefabHash), lt, mode)
	if err != nil {
		return err
	}
	return c.setDestination(inst.A, v)
}

func (c *Chip) execBatchStore(inst Instruction) error {
	prefabHash, err := c.resolveValue(inst.A)
	if err != nil {
		return err
	}
	lt, err := logicTypeFromOperand(inst.B)
	if err != nil {
		return err
	}
	v, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	if c.network == nil {
		return chiperr.ErrMissingDevice
	}
	_, err = c.network.BatchWriteByPrefab(int32(prefabHash), lt, v)
	return err
}

func (c *Chip) execBatchLoadNamed(inst Instruction) error {
	prefabHash, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	nameHash, err := c.resolveValue(inst.C)
	if err != nil {
		return err
	}
	lt, err := logicTypeFromOperand(inst.D)
	if err != nil {
		return err
	}
	mode, err := batchModeFromOperand(inst.E)
	if err != nil {
		return err
	}
	if c.network == nil {
		return chiperr.ErrMissingDevice
	}
	v, err := c.network.BatchReadByName(int32(prefabHash), int32(nameHash), lt, mode)
	if err != nil {
		return err
	}
	return c.setDestination(inst.A, v)
}

func (c *Chip) execBatchStoreNamed(inst Instruction) error {
	prefabHash, err := c.resolveValue(inst.A)
	if err != nil {
		return err
	}
	nameHash, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	lt, err := logicTypeFromOperand(inst.C)
	if err != nil {
		return err
	}
	v, err := c.resolveValue(inst.D)
	if err != nil {
		return err
	}
	if c.network == nil {
		return chiperr.ErrMissingDevice
	}
	_, err = c.network.BatchWriteByName(int32(prefabHash), int32(nameHash), lt, v)
	return err
}

func (c *Chip) execSelect(inst Instruction) error {
	cond, err := c.resolveValue(inst.B)
	if err != nil {
		return err
	}
	if cond != 0 {
		v, err := c.resolveValue(inst.C)
		if err != nil {
			return err
		}
		return c.setDestination(inst.A, v)
	}
	v, err := c.resolveValue(inst.D)
	if err != nil {
		return err
	}
	return c.setDestination(inst.A, v)
}
