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
	"github.com/chipsim-dev/chipsim/go/logictype"
)

// recordingNetwork is a minimal Network stand-in that records which device id
// ClearMemory was last called with, for asserting clrd targets the network
// rather than the chip's own stack.
type recordingNetwork struct {
	clearedID int32
	cleared   bool
}

func (n *recordingNetwork) DeviceExists(int32) bool { return true }
func (n *recordingNetwork) Read(int32, logictype.LogicType) (float64, error) {
	return 0, nil
}
func (n *recordingNetwork) Write(int32, logictype.LogicType, float64) error { return nil }
func (n *recordingNetwork) ReadSlot(int32, int, logictype.LogicSlotType) (float64, error) {
	return 0, nil
}
func (n *recordingNetwork) WriteSlot(int32, int, logictype.LogicSlotType, float64) error {
	return nil
}
func (n *recordingNetwork) GetMemory(int32, int) (float64, error) { return 0, nil }
func (n *recordingNetwork) SetMemory(int32, int, float64) error   { return nil }
func (n *recordingNetwork) ClearMemory(id int32) error {
	n.clearedID = id
	n.cleared = true
	return nil
}
func (n *recordingNetwork) BatchReadByPrefab(int32, logictype.LogicType, logictype.BatchMode) (float64, error) {
	return 0, nil
}
func (n *recordingNetwork) BatchWriteByPrefab(int32, logictype.LogicType, float64) (int, error) {
	return 0, nil
}
func (n *recordingNetwork) BatchReadByName(int32, int32, logictype.LogicType, logictype.BatchMode) (float64, error) {
	return 0, nil
}
func (n *recordingNetwork) BatchWriteByName(int32, int32, logictype.LogicType, float64) (int, error) {
	return 0, nil
}

func mustLoad(t *testing.T, c *Chip, lines []string) {
	t.Helper()
	if err := c.LoadProgram(lines); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
}

func TestChip_ArithmeticComputesIntoDestination(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"add r0 2 3", "mul r1 r0 10", "yield"})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(0) != 5 {
		t.Fatalf("r0 = %v, want 5", c.Register(0))
	}
	if c.Register(1) != 50 {
		t.Fatalf("r1 = %v, want 50", c.Register(1))
	}
}

func TestChip_StackPushPopRoundTrips(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"push 7", "push 9", "pop r1", "pop r0", "yield"})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(0) != 7 || c.Register(1) != 9 {
		t.Fatalf("r0=%v r1=%v, want 7, 9 (LIFO order)", c.Register(0), c.Register(1))
	}
	if c.StackPointer() != 0 {
		t.Fatalf("StackPointer() = %d, want 0 after matching pops", c.StackPointer())
	}
}

func TestChip_PopUnderflowHaltsWithError(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"pop r0"})
	if _, err := c.Run(10); !errors.Is(err, chiperr.ErrStackUnderflow) {
		t.Fatalf("Run() err = %v, want ErrStackUnderflow", err)
	}
	if !c.Halted() {
		t.Fatalf("expected chip to halt on stack underflow")
	}
}

func TestChip_PeekDoesNotConsumeStack(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"push 4", "peek r0", "peek r1", "yield"})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(0) != 4 || c.Register(1) != 4 {
		t.Fatalf("r0=%v r1=%v, want both 4", c.Register(0), c.Register(1))
	}
	if c.StackPointer() != 1 {
		t.Fatalf("StackPointer() = %d, want 1 (peek must not pop)", c.StackPointer())
	}
}

func TestChip_AbsoluteJumpSetsProgramCounter(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{
		"j 2",
		"move r0 1",
		"move r0 2",
		"yield",
	})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(0) != 2 {
		t.Fatalf("r0 = %v, want 2 (line 1 should have been skipped)", c.Register(0))
	}
}

func TestChip_JalSetsReturnAddress(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"jal 2", "yield", "move ra ra", "yield"})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(ReturnAddressIndex) != 1 {
		t.Fatalf("ra = %v, want 1 (the line after the jal)", c.Register(ReturnAddressIndex))
	}
}

func TestChip_BranchTakenAndNotTaken(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{
		"beq r0 r0 2",
		"move r1 99",
		"move r1 1",
		"bne r0 r0 6",
		"move r2 1",
		"yield",
		"move r2 99",
	})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(1) != 1 {
		t.Fatalf("r1 = %v, want 1 (beq r0 r0 should have been taken)", c.Register(1))
	}
	if c.Register(2) != 1 {
		t.Fatalf("r2 = %v, want 1 (bne r0 r0 should not have been taken)", c.Register(2))
	}
}

func TestChip_RelativeBranchOffsetsFromCurrentLine(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{
		"breqz r0 2",
		"move r0 99",
		"move r0 1",
		"yield",
	})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(0) != 1 {
		t.Fatalf("r0 = %v, want 1", c.Register(0))
	}
}

func TestChip_BranchAlLinkVariantSetsReturnAddress(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"beqzal r0 2", "yield", "yield"})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(ReturnAddressIndex) != 1 {
		t.Fatalf("ra = %v, want 1", c.Register(ReturnAddressIndex))
	}
}

func TestChip_SleepPausesExecutionForGivenTicks(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"sleep 2", "move r0 1", "yield"})
	n, err := c.Run(1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 1 {
		t.Fatalf("executed %d instructions in the first step, want 1 (sleeping)", n)
	}
	if c.Register(0) != 0 {
		t.Fatalf("r0 = %v, want 0 while still sleeping", c.Register(0))
	}
	// sleep 2 seconds -> ticks = 2*2-1 = 3 ticks still to drain after the
	// instruction's own tick, each Run call only draining one per tick.
	for i := 0; i < 3; i++ {
		n, err := c.Run(1)
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if n != 0 {
			t.Fatalf("executed %d instructions while draining sleep tick %d, want 0", n, i)
		}
		if c.Register(0) != 0 {
			t.Fatalf("r0 = %v, want 0 while still sleeping (tick %d)", c.Register(0), i)
		}
	}
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(0) != 1 {
		t.Fatalf("r0 = %v, want 1 after the sleep elapsed", c.Register(0))
	}
}

func TestChip_YieldEndsTheTickWithoutHalting(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"move r0 1", "yield", "move r0 2"})
	n, err := c.Run(10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 2 {
		t.Fatalf("Run() executed %d instructions, want 2 (yield stops the tick)", n)
	}
	if c.Register(0) != 1 {
		t.Fatalf("r0 = %v, want 1 (line after yield must not run this tick)", c.Register(0))
	}
	if c.Halted() {
		t.Fatalf("yield must not halt the chip")
	}
}

func TestChip_HcfHalts(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"hcf"})
	if _, err := c.Run(10); !errors.Is(err, chiperr.ErrHalt) {
		t.Fatalf("Run() err = %v, want ErrHalt", err)
	}
	if !c.Halted() {
		t.Fatalf("expected hcf to halt the chip")
	}
}

func TestChip_AliasRedirectsDestinationAndValue(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"alias counter r5", "move counter 3", "add r0 counter 1", "yield"})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(5) != 3 {
		t.Fatalf("r5 = %v, want 3 via the counter alias", c.Register(5))
	}
	if c.Register(0) != 4 {
		t.Fatalf("r0 = %v, want 4", c.Register(0))
	}
}

func TestChip_DefineInstallsNamedConstant(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"define answer 42", "move r0 answer", "yield"})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(0) != 42 {
		t.Fatalf("r0 = %v, want 42", c.Register(0))
	}
}

func TestChip_ComparisonOpsWriteBooleanResult(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"slt r0 1 2", "sgt r1 1 2", "yield"})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Register(0) != 1 {
		t.Fatalf("slt result = %v, want 1", c.Register(0))
	}
	if c.Register(1) != 0 {
		t.Fatalf("sgt result = %v, want 0", c.Register(1))
	}
}

func TestChip_RunStopsAtEndOfProgramWithoutError(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"move r0 1"})
	n, err := c.Run(10)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 1 {
		t.Fatalf("Run() = %d, want 1", n)
	}
	if !c.Halted() {
		t.Fatalf("running off the end of the program should halt the chip")
	}
	if c.LastError() != nil {
		t.Fatalf("LastError() = %v, want nil (running off the end is not an error)", c.LastError())
	}
}

func TestChip_ClrdClearsTargetDeviceMemoryNotOwnStack(t *testing.T) {
	c := New()
	net := &recordingNetwork{}
	c.SetNetwork(net)
	mustLoad(t, c, []string{"push 5", "clrd 12", "yield"})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !net.cleared {
		t.Fatalf("clrd did not reach the network's ClearMemory")
	}
	if net.clearedID != 12 {
		t.Fatalf("ClearMemory id = %d, want 12", net.clearedID)
	}
	if c.StackPointer() != 1 {
		t.Fatalf("StackPointer() = %d, want 1 (clrd must not clear the chip's own stack)", c.StackPointer())
	}
}

func TestChip_ClearResetsRegistersButKeepsProgram(t *testing.T) {
	c := New()
	mustLoad(t, c, []string{"move r0 1", "yield"})
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run: %v", err)
	}
	c.Clear()
	if c.Register(0) != 0 {
		t.Fatalf("r0 = %v, want 0 after Clear", c.Register(0))
	}
	if c.ProgramCounter() != 0 {
		t.Fatalf("ProgramCounter() = %d, want 0 after Clear", c.ProgramCounter())
	}
	if _, err := c.Run(10); err != nil {
		t.Fatalf("Run after Clear: %v", err)
	}
	if c.Register(0) != 1 {
		t.Fatalf("r0 = %v, want 1 (program should still be loaded after Clear)", c.Register(0))
	}
}
