// Package uccmocks provides go.uber.org/mock-generated-style collaborator
// mocks of the uci package's injected interfaces, for façade-level tests
// that want to stub CSI encoding, CRC, or block/polar behavior without
// pulling in the real internal/* implementations.
//
// These are hand-written in the shape mockgen would produce rather than
// generated, since this module does not run `go generate`.
package uccmocks

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/srsnr/uci-nr/uci"
)

// MockCsiCodec is a mock of uci.CsiCodec.
type MockCsiCodec struct {
	ctrl     *gomock.Controller
	recorder *MockCsiCodecRecorder
}

type MockCsiCodecRecorder struct{ mock *MockCsiCodec }

func NewMockCsiCodec(ctrl *gomock.Controller) *MockCsiCodec {
	m := &MockCsiCodec{ctrl: ctrl}
	m.recorder = &MockCsiCodecRecorder{m}
	return m
}

func (m *MockCsiCodec) EXPECT() *MockCsiCodecRecorder { return m.recorder }

func (m *MockCsiCodec) Pack(reports []uci.CsiReport, value interface{}, out []byte, maxBits int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Pack", reports, value, out, maxBits)
	return ret[0].(int)
}

func (mr *MockCsiCodecRecorder) Pack(reports, value, out, maxBits interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Pack", reflect.TypeOf((*MockCsiCodec)(nil).Pack), reports, value, out, maxBits)
}

func (m *MockCsiCodec) Unpack(reports []uci.CsiReport, bits []byte, value interface{}) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Unpack", reports, bits, value)
	return ret[0].(int)
}

func (mr *MockCsiCodecRecorder) Unpack(reports, bits, value interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unpack", reflect.TypeOf((*MockCsiCodec)(nil).Unpack), reports, bits, value)
}

func (m *MockCsiCodec) NofBits(reports []uci.CsiReport) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NofBits", reports)
	return ret[0].(int)
}

func (mr *MockCsiCodecRecorder) NofBits(reports interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NofBits", reflect.TypeOf((*MockCsiCodec)(nil).NofBits), reports)
}

func (m *MockCsiCodec) HasPart2(reports []uci.CsiReport) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasPart2", reports)
	return ret[0].(bool)
}

func (mr *MockCsiCodecRecorder) HasPart2(reports interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasPart2", reflect.TypeOf((*MockCsiCodec)(nil).HasPart2), reports)
}

func (m *MockCsiCodec) ToString(value interface{}) string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ToString", value)
	return ret[0].(string)
}

func (mr *MockCsiCodecRecorder) ToString(value interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ToString", reflect.TypeOf((*MockCsiCodec)(nil).ToString), value)
}

// MockCrc is a mock of uci.Crc.
type MockCrc struct {
	ctrl     *gomock.Controller
	recorder *MockCrcRecorder
}

type MockCrcRecorder struct{ mock *MockCrc }

func NewMockCrc(ctrl *gomock.Controller) *MockCrc {
	m := &MockCrc{ctrl: ctrl}
	m.recorder = &MockCrcRecorder{m}
	return m
}

func (m *MockCrc) EXPECT() *MockCrcRecorder { return m.recorder }

func (m *MockCrc) Attach(buf []byte, length int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Attach", buf, length)
	return ret[0].(int)
}

func (mr *MockCrcRecorder) Attach(buf, length interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Attach", reflect.TypeOf((*MockCrc)(nil).Attach), buf, length)
}

func (m *MockCrc) Checksum(buf []byte, length int) uint32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Checksum", buf, length)
	return ret[0].(uint32)
}

func (mr *MockCrcRecorder) Checksum(buf, length interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Checksum", reflect.TypeOf((*MockCrc)(nil).Checksum), buf, length)
}

func (m *MockCrc) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	return ret[0].(int)
}

func (mr *MockCrcRecorder) Len() *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockCrc)(nil).Len))
}

// MockBlockCodec is a mock of uci.BlockCodec.
type MockBlockCodec struct {
	ctrl     *gomock.Controller
	recorder *MockBlockCodecRecorder
}

type MockBlockCodecRecorder struct{ mock *MockBlockCodec }

func NewMockBlockCodec(ctrl *gomock.Controller) *MockBlockCodec {
	m := &MockBlockCodec{ctrl: ctrl}
	m.recorder = &MockBlockCodecRecorder{m}
	return m
}

func (m *MockBlockCodec) EXPECT() *MockBlockCodecRecorder { return m.recorder }

func (m *MockBlockCodec) Encode(payload []byte, a int, out []byte, e int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Encode", payload, a, out, e)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockBlockCodecRecorder) Encode(payload, a, out, e interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Encode", reflect.TypeOf((*MockBlockCodec)(nil).Encode), payload, a, out, e)
}

func (m *MockBlockCodec) Decode(llr []int8, e int, out []byte, a int) (float32, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Decode", llr, e, out, a)
	err, _ := ret[1].(error)
	return ret[0].(float32), err
}

func (mr *MockBlockCodecRecorder) Decode(llr, e, out, a interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Decode", reflect.TypeOf((*MockBlockCodec)(nil).Decode), llr, e, out, a)
}

// MockPolarCode is a mock of uci.PolarCode.
type MockPolarCode struct {
	ctrl     *gomock.Controller
	recorder *MockPolarCodeRecorder
}

type MockPolarCodeRecorder struct{ mock *MockPolarCode }

func NewMockPolarCode(ctrl *gomock.Controller) *MockPolarCode {
	m := &MockPolarCode{ctrl: ctrl}
	m.recorder = &MockPolarCodeRecorder{m}
	return m
}

func (m *MockPolarCode) EXPECT() *MockPolarCodeRecorder { return m.recorder }

func (m *MockPolarCode) Select(k, e, nMax int) (uci.PolarCodeParams, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Select", k, e, nMax)
	err, _ := ret[1].(error)
	return ret[0].(uci.PolarCodeParams), err
}

func (mr *MockPolarCodeRecorder) Select(k, e, nMax interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Select", reflect.TypeOf((*MockPolarCode)(nil).Select), k, e, nMax)
}

