// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package preprocess

import (
	"strings"
	"testing"
)

func TestPreprocess_StripsComments(t *testing.T) {
	got, err := Preprocess("move r0 1 # set r0 to one")
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	if strings.Contains(got, "#") {
		t.Fatalf("expected comment stripped, got %q", got)
	}
}

func TestPreprocess_HashMatchesSpecScenario(t *testing.T) {
	got, err := Preprocess(`move r0 HASH("Test")`)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	if got != "move r0 2018365746" {
		t.Fatalf("Preprocess(HASH) = %q, want %q", got, "move r0 2018365746")
	}
}

func TestPreprocess_StrPacksAscii(t *testing.T) {
	got, err := Preprocess(`move r0 STR("A")`)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	if got != "move r0 65" {
		t.Fatalf("Preprocess(STR) = %q, want %q", got, "move r0 65")
	}
}

func TestPreprocess_StrRejectsOverlength(t *testing.T) {
	if _, err := Preprocess(`move r0 STR("TooLongText")`); err == nil {
		t.Fatalf("expected an error for a >6 character STR literal")
	}
}

func TestPreprocess_HexLiteral(t *testing.T) {
	got, err := Preprocess("move r0 $1A_2B")
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	if got != "move r0 6699" {
		t.Fatalf("Preprocess(hex) = %q, want %q", got, "move r0 6699")
	}
}

func TestPreprocess_BinaryLiteral(t *testing.T) {
	got, err := Preprocess("move r0 %1010_1100")
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	if got != "move r0 172" {
		t.Fatalf("Preprocess(binary) = %q, want %q", got, "move r0 172")
	}
}

func TestPreprocess_HashIsMemoizedAndDeterministic(t *testing.T) {
	first, err := Preprocess(`move r0 HASH("Repeat")`)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	second, err := Preprocess(`move r1 HASH("Repeat")`)
	if err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	firstVal := strings.TrimPrefix(first, "move r0 ")
	secondVal := strings.TrimPrefix(second, "move r1 ")
	if firstVal != secondVal {
		t.Fatalf("HASH(\"Repeat\") not deterministic: %q vs %q", firstVal, secondVal)
	}
}

func TestLines_SplitsProcessedSourceByLine(t *testing.T) {
	lines, err := Lines("move r0 0\nmove r1 1 # comment\nyield")
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	want := []string{"move r0 0", "move r1 1", "yield"}
	if len(lines) != len(want) {
		t.Fatalf("Lines() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("Lines()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
