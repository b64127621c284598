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
	"github.com/chipsim-dev/chipsim/go/chip"
	"github.com/chipsim-dev/chipsim/go/chiperr"
	"github.com/chipsim-dev/chipsim/go/logictype"
	"github.com/chipsim-dev/chipsim/go/net"
)

// ChipSlot hosts one IC10 chip inside a device: the chip occupant itself,
// its device-pin bindings, and the host device it reads/writes memory on
// behalf of. Ported from the reference ChipSlot; it implements chip.HostSlot
// so the chip package can resolve device-pin operands and the "db" alias
// without importing this package.
type ChipSlot struct {
	host       net.Device
	chip       *chip.Chip
	devicePins []int32
	hasPin     []bool

	lastExecutedInstructions int
}

// NewChipSlot returns an empty chip slot with pinCount device pins.
func NewChipSlot(pinCount int) *ChipSlot {
	return &ChipSlot{
		devicePins: make([]int32, pinCount),
		hasPin:     make([]bool, pinCount),
	}
}

// SetHostDevice attaches the device this slot is embedded in.
func (s *ChipSlot) SetHostDevice(host net.Device) { s.host = host }

// SetChip inserts a chip into the slot, wiring its HostSlot and Network back
// to this slot and the host device's network respectively. Replaces any
// previously installed chip.
func (s *ChipSlot) SetChip(c *chip.Chip) {
	s.chip = c
	if c == nil {
		return
	}
	c.SetSlot(s)
	if s.host != nil {
		if n := s.host.Network(); n != nil {
			c.SetNetwork(n)
		} else {
			c.SetNetwork(nil)
		}
	}
}

// Chip returns the installed chip, if any.
func (s *ChipSlot) Chip() *chip.Chip { return s.chip }

// SetDevicePin binds pin to a device reference id, or clears it when ok is
// false.
func (s *ChipSlot) SetDevicePin(pin int, id int32, ok bool) {
	if pin < 0 || pin >= len(s.devicePins) {
		return
	}
	s.devicePins[pin] = id
	s.hasPin[pin] = ok
}

// DevicePin implements chip.HostSlot.
func (s *ChipSlot) DevicePin(n int) (int32, bool) {
	if n < 0 || n >= len(s.devicePins) || !s.hasPin[n] {
		return 0, false
	}
	return s.devicePins[n], true
}

// HostDeviceID implements chip.HostSlot.
func (s *ChipSlot) HostDeviceID() (int32, bool) {
	if s.host == nil {
		return 0, false
	}
	return s.host.ID(), true
}

// Run executes up to maxInstructions instructions of the installed chip for
// one tick, recording how many actually ran.
func (s *ChipSlot) Run(maxInstructions int) error {
	if s.chip == nil {
		return nil
	}
	n, err := s.chip.Run(maxInstructions)
	s.lastExecutedInstructions = n
	if err != nil {
		// A halted chip (hcf, or a runtime fault) is not a simulation
		// fault: the tick simply produced no further instructions.
		return nil
	}
	return nil
}

// LastExecutedInstructions reports how many instructions the most recent
// Run call actually executed.
func (s *ChipSlot) LastExecutedInstructions() int { return s.lastExecutedInstructions }

// Read proxies a logic read to the hosting device.
func (s *ChipSlot) Read(lt logictype.LogicType) (float64, error) {
	if s.host == nil {
		return 0, chiperr.ErrNoHostDevice
	}
	return s.host.Read(lt)
}

// Write proxies a logic write to the hosting device.
func (s *ChipSlot) Write(lt logictype.LogicType, value float64) error {
	if s.host == nil {
		return chiperr.ErrNoHostDevice
	}
	return s.host.Write(lt, value)
}
