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
	"github.com/chipsim-dev/chipsim/go/device"
	"github.com/chipsim-dev/chipsim/go/preprocess"
	"github.com/chipsim-dev/chipsim/go/sim"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "load a program into a simulated IC housing and run it",
	ArgsUsage: "<program-file>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "ticks",
			Usage: "number of simulation ticks to run",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "pins",
			Usage: "number of device pins on the housing",
			Value: 6,
		},
		&cli.IntFlag{
			Name:  "max-instructions",
			Usage: "maximum instructions the chip may execute per tick",
			Value: 128,
		},
		&cli.Int64Flag{
			Name:  "prefab-hash",
			Usage: "prefab hash reported by the housing's PrefabHash logic type",
		},
		&cli.BoolFlag{
			Name:  "dump-registers",
			Usage: "print the chip's registers after the run completes",
		},
	},
}

func doRun(context *cli.Context) error {
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

	c := chip.New()
	if err := c.LoadProgram(lines); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	m := sim.NewManager()
	id := m.AllocateNextID()
	housing := device.NewICHousing(id, int32(context.Int64("prefab-hash")), "ic", context.Int("pins"), context.Int("max-instructions"))
	housing.Slot.SetChip(c)
	m.RegisterDevice(housing)

	ticks := context.Int("ticks")
	if ticks <= 0 {
		ticks = 1
	}
	for i := 0; i < ticks; i++ {
		if _, err := m.Update(); err != nil {
			return fmt.Errorf("tick %d: %w", i+1, err)
		}
	}

	fmt.Println(m.String())

	if context.Bool("dump-registers") {
		for i := 0; i < chip.RegisterCount; i++ {
			fmt.Printf("r%d = %v\n", i, c.Register(i))
		}
	}

	if err := c.LastError(); err != nil {
		return fmt.Errorf("chip halted with error: %w", err)
	}
	return nil
}
