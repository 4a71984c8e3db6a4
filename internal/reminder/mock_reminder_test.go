// Mocks for the Notifier and Recorder interfaces, in mockgen's layout:
//   mockgen -source=unit.go -destination=mock_reminder_test.go -package=reminder

package reminder

import (
	reflect "reflect"

	models "github.com/culiutudousi/time-reminder/internal/models"
	gomock "github.com/golang/mock/gomock"
)

// MockNotifier is a mock of Notifier interface.
type MockNotifier struct {
	ctrl     *gomock.Controller
	recorder *MockNotifierMockRecorder
}

// MockNotifierMockRecorder is the mock recorder for MockNotifier.
type MockNotifierMockRecorder struct {
	mock *MockNotifier
}

// NewMockNotifier creates a new mock instance.
func NewMockNotifier(ctrl *gomock.Controller) *MockNotifier {
	mock := &MockNotifier{ctrl: ctrl}
	mock.recorder = &MockNotifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotifier) EXPECT() *MockNotifierMockRecorder {
	return m.recorder
}

// Remind mocks base method.
func (m *MockNotifier) Remind(message string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Remind", message)
}

// Remind indicates an expected call of Remind.
func (mr *MockNotifierMockRecorder) Remind(message interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remind", reflect.TypeOf((*MockNotifier)(nil).Remind), message)
}

// MockRecorder is a mock of Recorder interface.
type MockRecorder struct {
	ctrl     *gomock.Controller
	recorder *MockRecorderMockRecorder
}

// MockRecorderMockRecorder is the mock recorder for MockRecorder.
type MockRecorderMockRecorder struct {
	mock *MockRecorder
}

// NewMockRecorder creates a new mock instance.
func NewMockRecorder(ctrl *gomock.Controller) *MockRecorder {
	mock := &MockRecorder{ctrl: ctrl}
	mock.recorder = &MockRecorderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRecorder) EXPECT() *MockRecorderMockRecorder {
	return m.recorder
}

// SaveReminderRecord mocks base method.
func (m *MockRecorder) SaveReminderRecord(record *models.ReminderRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveReminderRecord", record)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveReminderRecord indicates an expected call of SaveReminderRecord.
func (mr *MockRecorderMockRecorder) SaveReminderRecord(record interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveReminderRecord", reflect.TypeOf((*MockRecorder)(nil).SaveReminderRecord), record)
}
