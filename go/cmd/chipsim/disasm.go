// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/chipsim-dev/chipsim/go/chip"
	"github.com/chipsim-dev/chipsim/go/preprocess"
)

var DisasmCmd = cli.Command{
	Action:    doDisasm,
	Name:      "disasm",
	Usage:     "preprocess and parse a program, printing one decoded instruction per line",
	ArgsUsage: "<program-file>",
}

func doDisasm(context *cli.Context) error {
	if context.Args().Len() < 1 {
		return fmt.Errorf("expected a program file, see --help")
	}
	path := context.Args().Get(0)

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	lines, err := preprocess.Lines(string(source))
	if err != nil {
		return fmt.Errorf("preprocessing %s: %w", path, err)
	}

	for i, line := range lines {
		inst, err := chip.ParseLine(line, i+1)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		fmt.Println(formatInstruction(inst, line))
	}
	return nil
}

// formatInstruction renders a decoded instruction as its line number, the
// preprocessed source it came from, and its full decoded operand slots.
// This is a structural dump rather than a faithful disassembly: the parser
// only goes one way (mnemonic text to Instruction), so there is no
// opcode-to-mnemonic reverse table, and unused operand slots print their
// zero value along with the ones the opcode actually reads.
func formatInstruction(inst chip.Instruction, source string) string {
	if inst.Op == chip.OpNoop {
		return fmt.Sprintf("%4d | %-40s | noop", inst.Line, source)
	}
	if inst.Op == chip.OpBranch {
		return fmt.Sprintf("%4d | %-40s | op=branch pred=%d target=%s A=%s B=%s C=%s",
			inst.Line, source, inst.Branch.Predicate, inst.Target, inst.A, inst.B, inst.C)
	}
	return fmt.Sprintf("%4d | %-40s | op=%d A=%s B=%s C=%s D=%s E=%s target=%s",
		inst.Line, source, inst.Op, inst.A, inst.B, inst.C, inst.D, inst.E, inst.Target)
}
