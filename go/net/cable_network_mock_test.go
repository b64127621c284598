// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package net_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/chipsim-dev/chipsim/go/device/devicemock"
	"github.com/chipsim-dev/chipsim/go/logictype"
	"github.com/chipsim-dev/chipsim/go/net"
)

// TestCableNetwork_BatchReadByPrefabCallsEveryMatchingDevice exercises the
// batch-aggregation contract (the lb opcode's network support) against
// scripted expectations instead of a hand-rolled fake, confirming Read is
// called exactly once per device carrying the prefab hash and that values
// outside that prefab are excluded from the aggregate.
func TestCableNetwork_BatchReadByPrefabCallsEveryMatchingDevice(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := devicemock.NewMockDevice(ctrl)
	a.EXPECT().ID().Return(int32(1)).AnyTimes()
	a.EXPECT().PrefabHash().Return(int32(100)).AnyTimes()
	a.EXPECT().NameHash().Return(int32(0)).AnyTimes()
	a.EXPECT().SetNetwork(gomock.Any())
	a.EXPECT().Read(logictype.Setting).Return(10.0, nil)

	b := devicemock.NewMockDevice(ctrl)
	b.EXPECT().ID().Return(int32(2)).AnyTimes()
	b.EXPECT().PrefabHash().Return(int32(100)).AnyTimes()
	b.EXPECT().NameHash().Return(int32(0)).AnyTimes()
	b.EXPECT().SetNetwork(gomock.Any())
	b.EXPECT().Read(logictype.Setting).Return(20.0, nil)

	other := devicemock.NewMockDevice(ctrl)
	other.EXPECT().ID().Return(int32(3)).AnyTimes()
	other.EXPECT().PrefabHash().Return(int32(200)).AnyTimes()
	other.EXPECT().NameHash().Return(int32(0)).AnyTimes()
	other.EXPECT().SetNetwork(gomock.Any())

	n := net.NewCableNetwork()
	n.AddDevice(a)
	n.AddDevice(b)
	n.AddDevice(other)

	got, err := n.BatchReadByPrefab(100, logictype.Setting, logictype.Average)
	if err != nil {
		t.Fatalf("BatchReadByPrefab: %v", err)
	}
	if got != 15.0 {
		t.Fatalf("BatchReadByPrefab average = %v, want 15 (devices 1 and 2 only)", got)
	}
}

// TestCableNetwork_BatchWriteByPrefabWritesEveryMatchingDevice confirms
// Write is invoked with the expected value on every device sharing the
// prefab hash, and on no other device.
func TestCableNetwork_BatchWriteByPrefabWritesEveryMatchingDevice(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := devicemock.NewMockDevice(ctrl)
	a.EXPECT().ID().Return(int32(1)).AnyTimes()
	a.EXPECT().PrefabHash().Return(int32(100)).AnyTimes()
	a.EXPECT().NameHash().Return(int32(0)).AnyTimes()
	a.EXPECT().SetNetwork(gomock.Any())
	a.EXPECT().Write(logictype.On, 1.0).Return(nil)

	other := devicemock.NewMockDevice(ctrl)
	other.EXPECT().ID().Return(int32(2)).AnyTimes()
	other.EXPECT().PrefabHash().Return(int32(200)).AnyTimes()
	other.EXPECT().NameHash().Return(int32(0)).AnyTimes()
	other.EXPECT().SetNetwork(gomock.Any())

	n := net.NewCableNetwork()
	n.AddDevice(a)
	n.AddDevice(other)

	count, err := n.BatchWriteByPrefab(100, logictype.On, 1.0)
	if err != nil {
		t.Fatalf("BatchWriteByPrefab: %v", err)
	}
	if count != 1 {
		t.Fatalf("BatchWriteByPrefab count = %d, want 1", count)
	}
}
