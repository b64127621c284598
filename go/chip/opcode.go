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

// Opcode identifies the instruction family a dispatch switch branches on.
// Values are grouped by family; the order carries no semantic weight beyond
// readability, unlike lfvm's EVM opcode table where numeric order mirrors
// the wire format.
type Opcode uint16

const (
	OpNoop Opcode = iota

	// Data movement.
	OpMove
	OpAlias
	OpDefine

	// Arithmetic.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpSqrt
	OpAbs
	OpExp
	OpLog
	OpPow
	OpMax
	OpMin
	OpCeil
	OpFloor
	OpRound
	OpTrunc
	OpRand
	OpLerp

	// Trigonometry.
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpAtan2

	// Bitwise and shifts.
	OpAnd
	OpOr
	OpXor
	OpNor
	OpNot
	OpSll
	OpSla
	OpSrl
	OpSra

	// Bit fields.
	OpExt
	OpIns

	// Comparison / predicate-set.
	OpSlt
	OpSgt
	OpSle
	OpSge
	OpSeq
	OpSne
	OpSltz
	OpSgtz
	OpSlez
	OpSgez
	OpSeqz
	OpSnez
	OpSnan
	OpSnanz
	OpSap
	OpSna
	OpSapz
	OpSnaz

	// Device state predicates.
	OpSdse
	OpSdns

	// Jumps.
	OpJ
	OpJr
	OpJal

	// Generic branch (comparison/target/link axes carried in the
	// instruction's BranchForm).
	OpBranch

	// Stack.
	OpPush
	OpPop
	OpPeek
	OpPoke

	// Device I/O.
	OpL
	OpS
	OpLs
	OpSs
	OpLd
	OpSd
	OpGet
	OpPut
	OpGetd
	OpPutd

	// Batch device I/O.
	OpLb
	OpSb
	OpLbn
	OpSbn

	// Special.
	OpYield
	OpSleep
	OpHcf
	OpSelect
	OpClr
	OpClrd
)

// BranchPredicate tags which of the three orthogonal comparison axes a
// branch instruction tests, per spec §4.C.
type BranchPredicate uint8

const (
	PredEq BranchPredicate = iota
	PredNe
	PredLt
	PredGt
	PredLe
	PredGe
	PredAp // approximate equal
	PredNa // approximate not-equal
	PredNan
	PredDeviceExists
	PredDeviceNotExists
)

// BranchForm carries the three orthogonal axes spec §4.C describes: the
// comparison predicate (and whether it is the unary z-suffixed form
// comparing against zero), the jump target form (absolute line vs relative
// offset), and whether the branch additionally writes the link register.
type BranchForm struct {
	Predicate BranchPredicate
	UnaryZ    bool
	Relative  bool
	Link      bool
}
