// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package device

import (
	"testing"

	"github.com/chipsim-dev/chipsim/go/chip"
)

func TestChipSlot_DevicePinRoundTrip(t *testing.T) {
	s := NewChipSlot(6)
	if _, ok := s.DevicePin(0); ok {
		t.Fatalf("expected pin 0 unset")
	}
	s.SetDevicePin(0, 42, true)
	id, ok := s.DevicePin(0)
	if !ok || id != 42 {
		t.Fatalf("DevicePin(0) = %v, %v, want 42, true", id, ok)
	}
	s.SetDevicePin(0, 0, false)
	if _, ok := s.DevicePin(0); ok {
		t.Fatalf("expected pin 0 cleared")
	}
}

func TestChipSlot_DevicePinOutOfRangeIsSafe(t *testing.T) {
	s := NewChipSlot(6)
	s.SetDevicePin(99, 1, true)
	if _, ok := s.DevicePin(99); ok {
		t.Fatalf("out-of-range pin set should be a no-op")
	}
}

func TestChipSlot_HostDeviceIDRequiresHost(t *testing.T) {
	s := NewChipSlot(6)
	if _, ok := s.HostDeviceID(); ok {
		t.Fatalf("expected no host device id before SetHostDevice")
	}
	h := NewICHousing(7, 0, "h", 6, 128)
	s.SetHostDevice(h)
	id, ok := s.HostDeviceID()
	if !ok || id != 7 {
		t.Fatalf("HostDeviceID() = %v, %v, want 7, true", id, ok)
	}
}

func TestChipSlot_RunWithNoChipIsNoop(t *testing.T) {
	s := NewChipSlot(6)
	if err := s.Run(128); err != nil {
		t.Fatalf("Run with no chip installed: %v", err)
	}
	if got := s.LastExecutedInstructions(); got != 0 {
		t.Fatalf("LastExecutedInstructions() = %v, want 0", got)
	}
}

func TestChipSlot_RunTracksExecutedInstructionCount(t *testing.T) {
	s := NewChipSlot(6)
	c := chip.New()
	s.SetChip(c)
	if err := c.LoadProgram([]string{"move r0 1", "move r0 2", "yield"}); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	if err := s.Run(128); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := s.LastExecutedInstructions(); got != 3 {
		t.Fatalf("LastExecutedInstructions() = %v, want 3", got)
	}
}
