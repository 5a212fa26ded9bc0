package jobs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJob struct {
	mock.Mock
}

func (m *MockJob) Start() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockJob) Stop() {
	m.Called()
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	first, second := new(MockJob), new(MockJob)
	first.On("Start").Return(nil).Once()
	second.On("Start").Return(nil).Once()
	first.On("Stop").Once()
	second.On("Stop").Once()

	jm := NewJobManager(first, second)
	require.NoError(t, jm.StartAll())
	jm.StopAll()
	jm.StopAll()

	first.AssertExpectations(t)
	second.AssertExpectations(t)
}

func TestJobManager_StartAll_StopsStartedJobsOnFailure(t *testing.T) {
	first, second := new(MockJob), new(MockJob)
	first.On("Start").Return(nil).Once()
	first.On("Stop").Once()
	second.On("Start").Return(errors.New("bad schedule")).Once()

	jm := NewJobManager(first, second)
	err := jm.StartAll()

	require.Error(t, err)
	first.AssertExpectations(t)
	second.AssertNotCalled(t, "Stop")
}
