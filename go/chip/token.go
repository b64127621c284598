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
	"strconv"
	"strings"

	"github.com/chipsim-dev/chipsim/go/chiperr"
	"github.com/chipsim-dev/chipsim/go/logictype"
)

// parseOperandToken implements the tokenization rules of spec §4.B rule 3:
// sp/ra become Symbol, r<N> becomes Register(N), d<N> becomes DevicePin(N),
// a parseable double literal becomes Immediate, and anything else becomes
// Symbol(name).
func parseOperandToken(tok string) (Operand, error) {
	if tok == "" {
		return Operand{}, chiperr.ErrWrongArity
	}
	if tok == "sp" || tok == "ra" {
		return Symbol(tok), nil
	}
	if n, ok := parsePrefixedIndex(tok, 'r'); ok {
		if n < 0 || n >= RegisterCount {
			return Operand{}, chiperr.ErrRegisterOutOfRange
		}
		return Register(n), nil
	}
	if n, ok := parsePrefixedIndex(tok, 'd'); ok {
		if n < 0 {
			return Operand{}, chiperr.ErrPinOutOfRange
		}
		return DevicePin(n), nil
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return Immediate(v), nil
	}
	return Symbol(tok), nil
}

// parsePrefixedIndex reports whether tok is prefix followed by a decimal
// integer, e.g. "r5" with prefix 'r' yields (5, true).
func parsePrefixedIndex(tok string, prefix byte) (int, bool) {
	if len(tok) < 2 || tok[0] != prefix {
		return 0, false
	}
	rest := tok[1:]
	for _, c := range rest {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDestinationToken parses an operand that must be a legal destination
// (spec §4.B rule 4): never Immediate or DevicePin.
func parseDestinationToken(tok string) (Operand, error) {
	op, err := parseOperandToken(tok)
	if err != nil {
		return op, err
	}
	if !op.IsDestinationLegal() {
		return op, chiperr.ErrIllegalDestination
	}
	return op, nil
}

// parseLogicTypeToken implements spec §4.B rule 5 for logic-type arguments:
// if tok names a known LogicType, substitute the numeric tag as an
// Immediate; otherwise parse it as an ordinary operand (a register or
// define holding the tag at runtime).
func parseLogicTypeToken(tok string) (Operand, error) {
	if lt, ok := logictype.LogicTypeFromName(tok); ok {
		return Immediate(lt.ToValue()), nil
	}
	return parseOperandToken(tok)
}

// parseSlotLogicTypeToken is the slot-logic-type analogue of
// parseLogicTypeToken.
func parseSlotLogicTypeToken(tok string) (Operand, error) {
	if st, ok := logictype.LogicSlotTypeFromName(tok); ok {
		return Immediate(st.ToValue()), nil
	}
	return parseOperandToken(tok)
}

// parseBatchModeToken implements spec §4.B rule 5 for batch-mode arguments.
func parseBatchModeToken(tok string) (Operand, error) {
	if m, ok := logictype.BatchModeFromName(tok); ok {
		return Immediate(m.ToValue()), nil
	}
	return parseOperandToken(tok)
}

// splitLine tokenizes a preprocessed source line on whitespace.
func splitLine(line string) []string {
	return strings.Fields(line)
}

// labelName reports whether line is a bare label line ("name:") and returns
// the name.
func labelName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || !strings.HasSuffix(trimmed, ":") {
		return "", false
	}
	name := trimmed[:len(trimmed)-1]
	if name == "" || strings.ContainsAny(name, " \t") {
		return "", false
	}
	return name, true
}
