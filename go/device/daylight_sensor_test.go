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

	"github.com/chipsim-dev/chipsim/go/logictype"
)

func TestDaylightSensor_IntensityZeroAtMidnight(t *testing.T) {
	s := NewDaylightSensor(1, 0xAAAA, "sun", 1000)
	if err := s.Update(0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := s.Read(logictype.On)
	if err != nil {
		t.Fatalf("Read(On): %v", err)
	}
	if got != 0 {
		t.Fatalf("intensity at tick 0 = %v, want 0", got)
	}
}

func TestDaylightSensor_IntensityPeaksAtQuarterDay(t *testing.T) {
	s := NewDaylightSensor(1, 0xAAAA, "sun", 1000)
	if err := s.Update(250); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := s.Read(logictype.On)
	if err != nil {
		t.Fatalf("Read(On): %v", err)
	}
	if got < 0.99 {
		t.Fatalf("intensity at quarter-day = %v, want ~1.0", got)
	}
}

func TestDaylightSensor_HorizontalClampedToRange(t *testing.T) {
	s := NewDaylightSensor(1, 0xAAAA, "sun", 1000)
	if err := s.Write(logictype.Horizontal, 720); err != nil {
		t.Fatalf("Write(Horizontal): %v", err)
	}
	got, err := s.Read(logictype.Horizontal)
	if err != nil {
		t.Fatalf("Read(Horizontal): %v", err)
	}
	if got != 360 {
		t.Fatalf("Horizontal = %v, want clamped to 360", got)
	}
}

func TestDaylightSensor_VerticalClampedToRange(t *testing.T) {
	s := NewDaylightSensor(1, 0xAAAA, "sun", 1000)
	if err := s.Write(logictype.Vertical, -200); err != nil {
		t.Fatalf("Write(Vertical): %v", err)
	}
	got, err := s.Read(logictype.Vertical)
	if err != nil {
		t.Fatalf("Read(Vertical): %v", err)
	}
	if got != -90 {
		t.Fatalf("Vertical = %v, want clamped to -90", got)
	}
}
