// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package device implements concrete device kinds, the logic-property
// descriptor machinery every device kind registers its readable/writable
// LogicType surface through, and the chip slot that hosts an IC10 chip
// inside a device.
package device

import (
	"github.com/chipsim-dev/chipsim/go/chiperr"
	"github.com/chipsim-dev/chipsim/go/logictype"
)

// property describes how a single LogicType behaves on a device: whether it
// can be read and/or written, and how a write is applied. Every device kind
// builds its surface out of these descriptors instead of hand-rolling a
// read/write switch per kind (spec §4.H).
type property struct {
	readable bool
	writable bool
	get      func() float64
	set      func(float64)
	min, max float64
	clamp    bool
}

// readOnly declares a LogicType backed by a getter only; writes fail with
// ErrReadOnlyProperty.
func readOnly(get func() float64) property {
	return property{readable: true, get: get}
}

// readWrite declares a fully readable/writable LogicType.
func readWrite(get func() float64, set func(float64)) property {
	return property{readable: true, writable: true, get: get, set: set}
}

// readWriteBool declares a LogicType whose stored value is coerced to 0/1 on
// write (spec's boolean-valued logic types, e.g. On, Lock).
func readWriteBool(get func() float64, set func(float64)) property {
	return property{
		readable: true,
		writable: true,
		get:      get,
		set: func(v float64) {
			if v != 0 {
				set(1)
			} else {
				set(0)
			}
		},
	}
}

// readWriteClamped declares a LogicType whose write is clamped to [min, max]
// before being stored (e.g. Setting, Ratio).
func readWriteClamped(get func() float64, set func(float64), min, max float64) property {
	return property{
		readable: true,
		writable: true,
		get:      get,
		set: func(v float64) {
			if v < min {
				v = min
			} else if v > max {
				v = max
			}
			set(v)
		},
		min: min, max: max, clamp: true,
	}
}

// propertySet is the read/write surface a device kind exposes, keyed by
// LogicType.
type propertySet map[logictype.LogicType]property

func (ps propertySet) read(lt logictype.LogicType) (float64, error) {
	p, ok := ps[lt]
	if !ok {
		return 0, chiperr.ErrUnsupportedLogic
	}
	if !p.readable {
		return 0, chiperr.ErrWriteOnlyProperty
	}
	return p.get(), nil
}

func (ps propertySet) write(lt logictype.LogicType, value float64) error {
	p, ok := ps[lt]
	if !ok {
		return chiperr.ErrUnsupportedLogic
	}
	if !p.writable {
		return chiperr.ErrReadOnlyProperty
	}
	p.set(value)
	return nil
}

// canRead/canWrite mirror the reference Device trait's capability probes,
// used by devices that expose optional batch/introspection surfaces.
func (ps propertySet) canRead(lt logictype.LogicType) bool {
	p, ok := ps[lt]
	return ok && p.readable
}

func (ps propertySet) canWrite(lt logictype.LogicType) bool {
	p, ok := ps[lt]
	return ok && p.writable
}
