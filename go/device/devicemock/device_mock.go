// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package devicemock is a hand-written GoMock-style mock of net.Device.
package devicemock

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	logictype "github.com/chipsim-dev/chipsim/go/logictype"
	net "github.com/chipsim-dev/chipsim/go/net"
)

// MockDevice is a mock of Device interface.
type MockDevice struct {
	ctrl     *gomock.Controller
	recorder *MockDeviceMockRecorder
}

// MockDeviceMockRecorder is the mock recorder for MockDevice.
type MockDeviceMockRecorder struct {
	mock *MockDevice
}

// NewMockDevice creates a new mock instance.
func NewMockDevice(ctrl *gomock.Controller) *MockDevice {
	mock := &MockDevice{ctrl: ctrl}
	mock.recorder = &MockDeviceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDevice) EXPECT() *MockDeviceMockRecorder {
	return m.recorder
}

// ID mocks base method.
func (m *MockDevice) ID() int32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ID")
	ret0, _ := ret[0].(int32)
	return ret0
}

// ID indicates an expected call of ID.
func (mr *MockDeviceMockRecorder) ID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ID", reflect.TypeOf((*MockDevice)(nil).ID))
}

// PrefabHash mocks base method.
func (m *MockDevice) PrefabHash() int32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PrefabHash")
	ret0, _ := ret[0].(int32)
	return ret0
}

// PrefabHash indicates an expected call of PrefabHash.
func (mr *MockDeviceMockRecorder) PrefabHash() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PrefabHash", reflect.TypeOf((*MockDevice)(nil).PrefabHash))
}

// NameHash mocks base method.
func (m *MockDevice) NameHash() int32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NameHash")
	ret0, _ := ret[0].(int32)
	return ret0
}

// NameHash indicates an expected call of NameHash.
func (mr *MockDeviceMockRecorder) NameHash() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NameHash", reflect.TypeOf((*MockDevice)(nil).NameHash))
}

// Read mocks base method.
func (m *MockDevice) Read(lt logictype.LogicType) (float64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Read", lt)
	ret0, _ := ret[0].(float64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Read indicates an expected call of Read.
func (mr *MockDeviceMockRecorder) Read(lt any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Read", reflect.TypeOf((*MockDevice)(nil).Read), lt)
}

// Write mocks base method.
func (m *MockDevice) Write(lt logictype.LogicType, value float64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Write", lt, value)
	ret0, _ := ret[0].(error)
	return ret0
}

// Write indicates an expected call of Write.
func (mr *MockDeviceMockRecorder) Write(lt, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Write", reflect.TypeOf((*MockDevice)(nil).Write), lt, value)
}

// ReadSlot mocks base method.
func (m *MockDevice) ReadSlot(slot int, st logictype.LogicSlotType) (float64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadSlot", slot, st)
	ret0, _ := ret[0].(float64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReadSlot indicates an expected call of ReadSlot.
func (mr *MockDeviceMockRecorder) ReadSlot(slot, st any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadSlot", reflect.TypeOf((*MockDevice)(nil).ReadSlot), slot, st)
}

// WriteSlot mocks base method.
func (m *MockDevice) WriteSlot(slot int, st logictype.LogicSlotType, value float64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteSlot", slot, st, value)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteSlot indicates an expected call of WriteSlot.
func (mr *MockDeviceMockRecorder) WriteSlot(slot, st, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteSlot", reflect.TypeOf((*MockDevice)(nil).WriteSlot), slot, st, value)
}

// GetMemory mocks base method.
func (m *MockDevice) GetMemory(index int) (float64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMemory", index)
	ret0, _ := ret[0].(float64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMemory indicates an expected call of GetMemory.
func (mr *MockDeviceMockRecorder) GetMemory(index any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMemory", reflect.TypeOf((*MockDevice)(nil).GetMemory), index)
}

// SetMemory mocks base method.
func (m *MockDevice) SetMemory(index int, value float64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetMemory", index, value)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetMemory indicates an expected call of SetMemory.
func (mr *MockDeviceMockRecorder) SetMemory(index, value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetMemory", reflect.TypeOf((*MockDevice)(nil).SetMemory), index, value)
}

// ClearMemory mocks base method.
func (m *MockDevice) ClearMemory() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ClearMemory")
}

// ClearMemory indicates an expected call of ClearMemory.
func (mr *MockDeviceMockRecorder) ClearMemory() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearMemory", reflect.TypeOf((*MockDevice)(nil).ClearMemory))
}

// SetNetwork mocks base method.
func (m *MockDevice) SetNetwork(network *net.CableNetwork) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetNetwork", network)
}

// SetNetwork indicates an expected call of SetNetwork.
func (mr *MockDeviceMockRecorder) SetNetwork(network any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetNetwork", reflect.TypeOf((*MockDevice)(nil).SetNetwork), network)
}

// Network mocks base method.
func (m *MockDevice) Network() *net.CableNetwork {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Network")
	ret0, _ := ret[0].(*net.CableNetwork)
	return ret0
}

// Network indicates an expected call of Network.
func (mr *MockDeviceMockRecorder) Network() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Network", reflect.TypeOf((*MockDevice)(nil).Network))
}

// Update mocks base method.
func (m *MockDevice) Update(tick uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", tick)
	ret0, _ := ret[0].(error)
	return ret0
}

// Update indicates an expected call of Update.
func (mr *MockDeviceMockRecorder) Update(tick any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockDevice)(nil).Update), tick)
}

// Run mocks base method.
func (m *MockDevice) Run() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run")
	ret0, _ := ret[0].(error)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockDeviceMockRecorder) Run() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockDevice)(nil).Run))
}
