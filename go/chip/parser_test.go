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
	"errors"
	"testing"

	"github.com/chipsim-dev/chipsim/go/chiperr"
)

func TestParseLine_BlankAndLabelLinesAreNoop(t *testing.T) {
	for _, line := range []string{"", "   ", "loop:"} {
		inst, err := ParseLine(line, 1)
		if err != nil {
			t.Fatalf("ParseLine(%q): %v", line, err)
		}
		if inst.Op != OpNoop {
			t.Fatalf("ParseLine(%q).Op = %v, want OpNoop", line, inst.Op)
		}
	}
}

func TestParseLine_UnknownMnemonicErrors(t *testing.T) {
	_, err := ParseLine("frobnicate r0 1", 3)
	if err == nil {
		t.Fatalf("expected an error for an unknown mnemonic")
	}
}

func TestParseLine_WrongArityErrors(t *testing.T) {
	_, err := ParseLine("add r0 1", 1)
	if err == nil {
		t.Fatalf("expected an arity error for add with 2 operands")
	}
}

func TestParseLine_MoveParsesDestinationAndValue(t *testing.T) {
	inst, err := ParseLine("move r0 42", 1)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if inst.Op != OpMove {
		t.Fatalf("Op = %v, want OpMove", inst.Op)
	}
	if inst.A.Kind != OperandRegister || inst.A.Reg != 0 {
		t.Fatalf("A = %+v, want register 0", inst.A)
	}
	if inst.B.Kind != OperandImmediate || inst.B.Imm != 42 {
		t.Fatalf("B = %+v, want immediate 42", inst.B)
	}
}

func TestParseLine_AliasAcceptsRegisterAndStackAlias(t *testing.T) {
	inst, err := ParseLine("alias foo r3", 1)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if inst.Op != OpAlias || inst.A.Name != "foo" || inst.B.Reg != 3 {
		t.Fatalf("alias inst = %+v", inst)
	}

	if _, err := ParseLine("alias top sp", 1); err != nil {
		t.Fatalf("alias to sp should be legal: %v", err)
	}
}

func TestParseLine_AliasRejectsImmediateTarget(t *testing.T) {
	_, err := ParseLine("alias foo 5", 1)
	if err == nil {
		t.Fatalf("expected alias target to reject an immediate literal")
	}
}

func TestParseLine_BranchEncodesPredicateAndTarget(t *testing.T) {
	inst, err := ParseLine("beq r0 r1 10", 1)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if inst.Op != OpBranch {
		t.Fatalf("Op = %v, want OpBranch", inst.Op)
	}
	if inst.Branch.Predicate != PredEq || inst.Branch.Link || inst.Branch.Relative {
		t.Fatalf("Branch = %+v, want plain eq", inst.Branch)
	}
	if inst.Target.Kind != OperandImmediate || inst.Target.Imm != 10 {
		t.Fatalf("Target = %+v, want immediate 10", inst.Target)
	}
}

func TestParseLine_BranchAlVariantSetsLink(t *testing.T) {
	inst, err := ParseLine("beqal r0 r1 10", 1)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if !inst.Branch.Link {
		t.Fatalf("beqal should set Link")
	}
}

func TestParseLine_RelativeBranchPrefix(t *testing.T) {
	inst, err := ParseLine("breqz r0 2", 1)
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if !inst.Branch.Relative || !inst.Branch.UnaryZ || inst.Branch.Predicate != PredEq {
		t.Fatalf("Branch = %+v, want relative unary eq", inst.Branch)
	}
}

func TestParseLine_UnknownMnemonicErrorIsErrUnknownMnemonic(t *testing.T) {
	_, err := ParseLine("bogus", 7)
	if !errors.Is(err, chiperr.ErrUnknownMnemonic) {
		t.Fatalf("expected ErrUnknownMnemonic, got %v", err)
	}
}
