package decoder

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	"github.com/bugVanisher/dvbsub/internal/dvbtype"
)

// MockClient is a gomock-generated-style mock for Client, hand-written
// in the same shape `mockgen` produces (matching
// media/protocol/rtmp/mock_conn.go's MockConn in the teacher repo) so
// pipeline/presenter tests can assert exact call sequences.
type MockClient struct {
	ctrl     *gomock.Controller
	recorder *MockClientMockRecorder
}

// MockClientMockRecorder is the mock recorder for MockClient.
type MockClientMockRecorder struct {
	mock *MockClient
}

// NewMockClient creates a new mock instance.
func NewMockClient(ctrl *gomock.Controller) *MockClient {
	mock := &MockClient{ctrl: ctrl}
	mock.recorder = &MockClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected
// use.
func (m *MockClient) EXPECT() *MockClientMockRecorder {
	return m.recorder
}

// GfxSetDisplayBounds mocks base method.
func (m *MockClient) GfxSetDisplayBounds(display, window dvbtype.Rectangle) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GfxSetDisplayBounds", display, window)
}

// GfxSetDisplayBounds indicates an expected call.
func (mr *MockClientMockRecorder) GfxSetDisplayBounds(display, window interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GfxSetDisplayBounds", reflect.TypeOf((*MockClient)(nil).GfxSetDisplayBounds), display, window)
}

// GfxClear mocks base method.
func (m *MockClient) GfxClear(rect dvbtype.Rectangle) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GfxClear", rect)
}

// GfxClear indicates an expected call.
func (mr *MockClientMockRecorder) GfxClear(rect interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GfxClear", reflect.TypeOf((*MockClient)(nil).GfxClear), rect)
}

// GfxDraw mocks base method.
func (m *MockClient) GfxDraw(bitmap dvbtype.Bitmap, srcRect, dstRect dvbtype.Rectangle) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GfxDraw", bitmap, srcRect, dstRect)
}

// GfxDraw indicates an expected call.
func (mr *MockClientMockRecorder) GfxDraw(bitmap, srcRect, dstRect interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GfxDraw", reflect.TypeOf((*MockClient)(nil).GfxDraw), bitmap, srcRect, dstRect)
}

// GfxFinish mocks base method.
func (m *MockClient) GfxFinish(modifiedRect dvbtype.Rectangle) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GfxFinish", modifiedRect)
}

// GfxFinish indicates an expected call.
func (mr *MockClientMockRecorder) GfxFinish(modifiedRect interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GfxFinish", reflect.TypeOf((*MockClient)(nil).GfxFinish), modifiedRect)
}

// GfxAllocate mocks base method.
func (m *MockClient) GfxAllocate(size int) []byte {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GfxAllocate", size)
	ret0, _ := ret[0].([]byte)
	return ret0
}

// GfxAllocate indicates an expected call.
func (mr *MockClientMockRecorder) GfxAllocate(size interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GfxAllocate", reflect.TypeOf((*MockClient)(nil).GfxAllocate), size)
}

// GfxFree mocks base method.
func (m *MockClient) GfxFree(block []byte) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GfxFree", block)
}

// GfxFree indicates an expected call.
func (mr *MockClientMockRecorder) GfxFree(block interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GfxFree", reflect.TypeOf((*MockClient)(nil).GfxFree), block)
}

// MockTimeProvider is a gomock-generated-style mock for TimeProvider.
type MockTimeProvider struct {
	ctrl     *gomock.Controller
	recorder *MockTimeProviderMockRecorder
}

// MockTimeProviderMockRecorder is the mock recorder for MockTimeProvider.
type MockTimeProviderMockRecorder struct {
	mock *MockTimeProvider
}

// NewMockTimeProvider creates a new mock instance.
func NewMockTimeProvider(ctrl *gomock.Controller) *MockTimeProvider {
	mock := &MockTimeProvider{ctrl: ctrl}
	mock.recorder = &MockTimeProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected
// use.
func (m *MockTimeProvider) EXPECT() *MockTimeProviderMockRecorder {
	return m.recorder
}

// GetStc mocks base method.
func (m *MockTimeProvider) GetStc() dvbtype.StcTime {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStc")
	ret0, _ := ret[0].(dvbtype.StcTime)
	return ret0
}

// GetStc indicates an expected call.
func (mr *MockTimeProviderMockRecorder) GetStc() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStc", reflect.TypeOf((*MockTimeProvider)(nil).GetStc))
}
