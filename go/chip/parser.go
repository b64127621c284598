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
	"strings"

	"github.com/chipsim-dev/chipsim/go/chiperr"
)

// ParseLine parses one preprocessed source line into an Instruction record,
// implementing the contract of spec §4.B. Blank lines and bare label lines
// become No-op records.
func ParseLine(line string, lineNo int) (Instruction, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Noop(lineNo), nil
	}
	if _, ok := labelName(trimmed); ok {
		return Noop(lineNo), nil
	}

	tokens := splitLine(trimmed)
	mnemonic := strings.ToLower(tokens[0])
	args := tokens[1:]

	build, ok := mnemonicTable[mnemonic]
	if !ok {
		return Instruction{}, chiperr.AtLine(lineNo, chiperr.ErrUnknownMnemonic)
	}
	inst, err := build(args, lineNo)
	if err != nil {
		return Instruction{}, chiperr.AtLine(lineNo, err)
	}
	return inst, nil
}

type mnemonicFunc func(args []string, line int) (Instruction, error)

// slotRole tags how a single argument token should be parsed.
type slotRole int

const (
	roleValue slotRole = iota
	roleDestination
	roleLogicType
	roleSlotLogicType
	roleBatchMode
)

// plain builds a mnemonicFunc that expects exactly len(roles) argument
// tokens, parsed per role and written into operand slots A..E in order.
func plain(op Opcode, roles ...slotRole) mnemonicFunc {
	return func(args []string, line int) (Instruction, error) {
		if len(args) != len(roles) {
			return Instruction{}, chiperr.ErrWrongArity
		}
		ops := make([]Operand, len(roles))
		for i, role := range roles {
			parsed, err := parseRole(role, args[i])
			if err != nil {
				return Instruction{}, err
			}
			ops[i] = parsed
		}
		inst := Instruction{Op: op, Line: line}
		slots := [5]*Operand{&inst.A, &inst.B, &inst.C, &inst.D, &inst.E}
		for i, o := range ops {
			*slots[i] = o
		}
		return inst, nil
	}
}

func parseRole(role slotRole, tok string) (Operand, error) {
	switch role {
	case roleDestination:
		return parseDestinationToken(tok)
	case roleLogicType:
		return parseLogicTypeToken(tok)
	case roleSlotLogicType:
		return parseSlotLogicTypeToken(tok)
	case roleBatchMode:
		return parseBatchModeToken(tok)
	default:
		return parseOperandToken(tok)
	}
}

// arity0 builds a mnemonicFunc for opcodes with no operands.
func arity0(op Opcode) mnemonicFunc {
	return func(args []string, line int) (Instruction, error) {
		if len(args) != 0 {
			return Instruction{}, chiperr.ErrWrongArity
		}
		return Instruction{Op: op, Line: line}, nil
	}
}

// jump builds a mnemonicFunc for j/jr/jal: a single target operand.
func jump(op Opcode) mnemonicFunc {
	return func(args []string, line int) (Instruction, error) {
		if len(args) != 1 {
			return Instruction{}, chiperr.ErrWrongArity
		}
		target, err := parseOperandToken(args[0])
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{Op: op, Target: target, Line: line}, nil
	}
}

// aliasParse handles the "alias name target" form (spec §4.B rule 6): the
// target must parse as r<N>, sp, ra, or d<N>.
func aliasParse(args []string, line int) (Instruction, error) {
	if len(args) != 2 {
		return Instruction{}, chiperr.ErrWrongArity
	}
	name := args[0]
	target, err := parseOperandToken(args[1])
	if err != nil {
		return Instruction{}, err
	}
	switch target.Kind {
	case OperandRegister, OperandDevicePin:
	case OperandSymbol:
		if target.Name != "sp" && target.Name != "ra" {
			return Instruction{}, chiperr.ErrInvalidLiteral
		}
	default:
		return Instruction{}, chiperr.ErrInvalidLiteral
	}
	return Instruction{Op: OpAlias, A: Symbol(name), B: target, Line: line}, nil
}

// defineParse handles "define name literal" (spec §4.B rule 7): the second
// operand must be a double literal.
func defineParse(args []string, line int) (Instruction, error) {
	if len(args) != 2 {
		return Instruction{}, chiperr.ErrWrongArity
	}
	name := args[0]
	value, err := parseOperandToken(args[1])
	if err != nil {
		return Instruction{}, err
	}
	if value.Kind != OperandImmediate {
		return Instruction{}, chiperr.ErrInvalidLiteral
	}
	return Instruction{Op: OpDefine, A: Symbol(name), B: value, Line: line}, nil
}

// branchStem describes one predicate family's operand shape.
type branchStem struct {
	predicate BranchPredicate
	// arity counts the comparison operands before the target: 1 for
	// unary-z/nan/device forms, 2 for binary forms and for unary-approx
	// (apz/naz: value and bound), 3 for binary-approx.
	arity int
}

var branchStems = map[string]branchStem{
	"eq": {PredEq, 2}, "eqz": {PredEq, 1},
	"ne": {PredNe, 2}, "nez": {PredNe, 1},
	"ge": {PredGe, 2}, "gez": {PredGe, 1},
	"gt": {PredGt, 2}, "gtz": {PredGt, 1},
	"le": {PredLe, 2}, "lez": {PredLe, 1},
	"lt": {PredLt, 2}, "ltz": {PredLt, 1},
	"ap": {PredAp, 3}, "apz": {PredAp, 2},
	"na": {PredNa, 3}, "naz": {PredNa, 2},
	"nan": {PredNan, 1},
	"dse": {PredDeviceExists, 1},
	"dns": {PredDeviceNotExists, 1},
}

func branch(stem branchStem, relative bool, link bool) mnemonicFunc {
	return func(args []string, line int) (Instruction, error) {
		if len(args) != stem.arity+1 {
			return Instruction{}, chiperr.ErrWrongArity
		}
		inst := Instruction{
			Op:   OpBranch,
			Line: line,
			Branch: BranchForm{
				Predicate: stem.predicate,
				UnaryZ:    stem.arity == 1 || (stem.arity == 2 && (stem.predicate == PredAp || stem.predicate == PredNa)),
				Relative:  relative,
				Link:      link,
			},
		}
		a, err := parseOperandToken(args[0])
		if err != nil {
			return Instruction{}, err
		}
		inst.A = a
		if stem.arity >= 2 {
			b, err := parseOperandToken(args[1])
			if err != nil {
				return Instruction{}, err
			}
			inst.B = b
		}
		if stem.arity >= 3 {
			c, err := parseOperandToken(args[2])
			if err != nil {
				return Instruction{}, err
			}
			inst.C = c
		}
		target, err := parseOperandToken(args[stem.arity])
		if err != nil {
			return Instruction{}, err
		}
		inst.Target = target
		return inst, nil
	}
}

var mnemonicTable = buildMnemonicTable()

func buildMnemonicTable() map[string]mnemonicFunc {
	t := make(map[string]mnemonicFunc, 256)

	// Data movement.
	t["move"] = plain(OpMove, roleDestination, roleValue)
	t["alias"] = aliasParse
	t["define"] = defineParse

	// Arithmetic.
	t["add"] = plain(OpAdd, roleDestination, roleValue, roleValue)
	t["sub"] = plain(OpSub, roleDestination, roleValue, roleValue)
	t["mul"] = plain(OpMul, roleDestination, roleValue, roleValue)
	t["div"] = plain(OpDiv, roleDestination, roleValue, roleValue)
	t["mod"] = plain(OpMod, roleDestination, roleValue, roleValue)
	t["sqrt"] = plain(OpSqrt, roleDestination, roleValue)
	t["abs"] = plain(OpAbs, roleDestination, roleValue)
	t["exp"] = plain(OpExp, roleDestination, roleValue)
	t["log"] = plain(OpLog, roleDestination, roleValue)
	t["pow"] = plain(OpPow, roleDestination, roleValue, roleValue)
	t["max"] = plain(OpMax, roleDestination, roleValue, roleValue)
	t["min"] = plain(OpMin, roleDestination, roleValue, roleValue)
	t["ceil"] = plain(OpCeil, roleDestination, roleValue)
	t["floor"] = plain(OpFloor, roleDestination, roleValue)
	t["round"] = plain(OpRound, roleDestination, roleValue)
	t["trunc"] = plain(OpTrunc, roleDestination, roleValue)
	t["rand"] = plain(OpRand, roleDestination)
	t["lerp"] = plain(OpLerp, roleDestination, roleValue, roleValue, roleValue)

	// Trigonometry.
	t["sin"] = plain(OpSin, roleDestination, roleValue)
	t["cos"] = plain(OpCos, roleDestination, roleValue)
	t["tan"] = plain(OpTan, roleDestination, roleValue)
	t["asin"] = plain(OpAsin, roleDestination, roleValue)
	t["acos"] = plain(OpAcos, roleDestination, roleValue)
	t["atan"] = plain(OpAtan, roleDestination, roleValue)
	t["atan2"] = plain(OpAtan2, roleDestination, roleValue, roleValue)

	// Bitwise and shifts.
	t["and"] = plain(OpAnd, roleDestination, roleValue, roleValue)
	t["or"] = plain(OpOr, roleDestination, roleValue, roleValue)
	t["xor"] = plain(OpXor, roleDestination, roleValue, roleValue)
	t["nor"] = plain(OpNor, roleDestination, roleValue, roleValue)
	t["not"] = plain(OpNot, roleDestination, roleValue)
	t["sll"] = plain(OpSll, roleDestination, roleValue, roleValue)
	t["sla"] = plain(OpSla, roleDestination, roleValue, roleValue)
	t["srl"] = plain(OpSrl, roleDestination, roleValue, roleValue)
	t["sra"] = plain(OpSra, roleDestination, roleValue, roleValue)

	// Bit fields.
	t["ext"] = plain(OpExt, roleDestination, roleValue, roleValue, roleValue)
	t["ins"] = plain(OpIns, roleDestination, roleValue, roleValue, roleValue, roleValue)

	// Comparison / predicate-set.
	t["slt"] = plain(OpSlt, roleDestination, roleValue, roleValue)
	t["sgt"] = plain(OpSgt, roleDestination, roleValue, roleValue)
	t["sle"] = plain(OpSle, roleDestination, roleValue, roleValue)
	t["sge"] = plain(OpSge, roleDestination, roleValue, roleValue)
	t["seq"] = plain(OpSeq, roleDestination, roleValue, roleValue)
	t["sne"] = plain(OpSne, roleDestination, roleValue, roleValue)
	t["sltz"] = plain(OpSltz, roleDestination, roleValue)
	t["sgtz"] = plain(OpSgtz, roleDestination, roleValue)
	t["slez"] = plain(OpSlez, roleDestination, roleValue)
	t["sgez"] = plain(OpSgez, roleDestination, roleValue)
	t["seqz"] = plain(OpSeqz, roleDestination, roleValue)
	t["snez"] = plain(OpSnez, roleDestination, roleValue)
	t["snan"] = plain(OpSnan, roleDestination, roleValue)
	t["snanz"] = plain(OpSnanz, roleDestination, roleValue)
	t["sap"] = plain(OpSap, roleDestination, roleValue, roleValue, roleValue)
	t["sna"] = plain(OpSna, roleDestination, roleValue, roleValue, roleValue)
	t["sapz"] = plain(OpSapz, roleDestination, roleValue, roleValue)
	t["snaz"] = plain(OpSnaz, roleDestination, roleValue, roleValue)

	// Device state predicates.
	t["sdse"] = plain(OpSdse, roleDestination, roleValue)
	t["sdns"] = plain(OpSdns, roleDestination, roleValue)

	// Jumps.
	t["j"] = jump(OpJ)
	t["jr"] = jump(OpJr)
	t["jal"] = jump(OpJal)

	// Branches: b<stem>[al] absolute, br<stem> relative (no link form is
	// present for relative branches in the source this was grounded on).
	for stem, spec := range branchStems {
		t["b"+stem] = branch(spec, false, false)
		t["b"+stem+"al"] = branch(spec, false, true)
		t["br"+stem] = branch(spec, true, false)
	}

	// Stack.
	t["push"] = plain(OpPush, roleValue)
	t["pop"] = plain(OpPop, roleDestination)
	t["peek"] = plain(OpPeek, roleDestination)
	t["poke"] = plain(OpPoke, roleValue, roleValue)

	// Device I/O.
	t["l"] = plain(OpL, roleDestination, roleValue, roleLogicType)
	t["s"] = plain(OpS, roleValue, roleLogicType, roleValue)
	t["ls"] = plain(OpLs, roleDestination, roleValue, roleValue, roleSlotLogicType)
	t["ss"] = plain(OpSs, roleValue, roleValue, roleSlotLogicType, roleValue)
	t["ld"] = plain(OpLd, roleDestination, roleValue, roleLogicType)
	t["sd"] = plain(OpSd, roleValue, roleLogicType, roleValue)
	t["get"] = plain(OpGet, roleDestination, roleValue, roleValue)
	t["put"] = plain(OpPut, roleValue, roleValue, roleValue)
	t["getd"] = plain(OpGetd, roleDestination, roleValue, roleValue)
	t["putd"] = plain(OpPutd, roleValue, roleValue, roleValue)

	// Batch device I/O.
	t["lb"] = plain(OpLb, roleDestination, roleValue, roleLogicType, roleBatchMode)
	t["sb"] = plain(OpSb, roleValue, roleLogicType, roleValue)
	t["lbn"] = plain(OpLbn, roleDestination, roleValue, roleValue, roleLogicType, roleBatchMode)
	t["sbn"] = plain(OpSbn, roleValue, roleValue, roleLogicType, roleValue)

	// Special.
	t["yield"] = arity0(OpYield)
	t["sleep"] = plain(OpSleep, roleValue)
	t["hcf"] = arity0(OpHcf)
	t["select"] = plain(OpSelect, roleDestination, roleValue, roleValue, roleValue)
	t["clr"] = plain(OpClr, roleValue)
	t["clrd"] = plain(OpClrd, roleValue)

	return t
}
