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
	"time"

	"pgregory.net/rand"

	"github.com/chipsim-dev/chipsim/go/chiperr"
)

// Chip is the stack machine described by spec §3 "Chip": 18 registers, a
// 512-cell stack, a program counter, three symbol tables, and halt/sleep
// flags. It holds only the two narrow interfaces it needs from its
// environment (HostSlot, Network) rather than concrete device/network
// types, so this package has no dependency on the device or net packages.
type Chip struct {
	registers [RegisterCount]float64
	stack     [StackSize]float64

	program []Instruction
	labels  map[string]int
	aliases map[string]AliasTarget
	defines map[string]float64

	pc         int
	halted     bool
	sleepTicks int
	lastErr    error

	slot    HostSlot
	network Network
	rng     *rand.Rand
}

// New creates a chip with no program loaded. The built-in constants (spec
// §6.6) are installed as defines immediately.
func New() *Chip {
	c := &Chip{
		labels:  make(map[string]int),
		aliases: make(map[string]AliasTarget),
		defines: make(map[string]float64),
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	c.aliases["sp"] = AliasTarget{Kind: AliasRegister, Reg: StackPointerIndex}
	c.aliases["ra"] = AliasTarget{Kind: AliasRegister, Reg: ReturnAddressIndex}
	for _, name := range builtinConstantNames {
		v, _ := builtinConstant(name)
		c.defines[name] = v
	}
	return c
}

// SetSlot attaches the chip slot hosting this chip, used to resolve device
// pin operands. Installs the built-in "db" alias pointing at the host
// device's reference id (spec §4.J: "db is a built-in alias installed on
// every chip pointing at its host device's reference id").
func (c *Chip) SetSlot(slot HostSlot) {
	c.slot = slot
	if slot == nil {
		return
	}
	if id, ok := slot.HostDeviceID(); ok {
		c.aliases["db"] = AliasTarget{Kind: AliasDeviceID, ID: id}
	}
}

// SetNetwork attaches the cable network this chip can reach devices
// through.
func (c *Chip) SetNetwork(network Network) { c.network = network }

// SetRandSource overrides the PRNG, primarily for deterministic tests.
func (c *Chip) SetRandSource(src *rand.Rand) { c.rng = src }

// Register reads register n (0-indexed).
func (c *Chip) Register(n int) float64 { return c.registers[n] }

// SetRegister writes register n.
func (c *Chip) SetRegister(n int, v float64) { c.registers[n] = v }

// StackPointer returns the current stack pointer register value as an int.
func (c *Chip) StackPointer() int { return int(c.registers[StackPointerIndex]) }

// Halted reports whether the chip has stopped executing.
func (c *Chip) Halted() bool { return c.halted }

// LastError returns the error that halted the chip, if any.
func (c *Chip) LastError() error { return c.lastErr }

// ProgramCounter returns the current program counter.
func (c *Chip) ProgramCounter() int { return c.pc }

// Define installs a named double constant, overwriting any prior value.
func (c *Chip) Define(name string, value float64) { c.defines[name] = value }

// Clear resets registers, stack, pc, halted, and sleep state but keeps the
// loaded program, labels, aliases, and defines.
func (c *Chip) Clear() {
	c.registers = [RegisterCount]float64{}
	c.stack = [StackSize]float64{}
	c.pc = 0
	c.halted = false
	c.sleepTicks = 0
	c.lastErr = nil
}

// GetMemory reads stack cell index, proxying the default IC-hosting-device
// memory contract (spec §4.H: "proxy to the hosted chip's stack by
// default").
func (c *Chip) GetMemory(index int) (float64, error) {
	if index < 0 || index >= StackSize {
		return 0, chiperr.ErrStackOverflow
	}
	return c.stack[index], nil
}

// SetMemory writes stack cell index.
func (c *Chip) SetMemory(index int, value float64) error {
	if index < 0 || index >= StackSize {
		return chiperr.ErrStackOverflow
	}
	c.stack[index] = value
	return nil
}

// ClearMemory zeroes the entire stack.
func (c *Chip) ClearMemory() {
	c.stack = [StackSize]float64{}
}
