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

// AtmosphericConnection names one of the (up to) five atmospheric network
// ports a device can be wired to: two inputs, two outputs, and an internal
// atmosphere private to the device itself (e.g. a tank's own contents).
type AtmosphericConnection int

const (
	ConnInput AtmosphericConnection = iota
	ConnInput2
	ConnOutput
	ConnOutput2
	ConnInternal
)
