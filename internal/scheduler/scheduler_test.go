package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RunsAllJobs(t *testing.T) {
	m := mocks.NewMockMaintainer(t)
	log := newTestLogger(t)

	s := New(m, 50*time.Millisecond, log)

	m.EXPECT().CompletePastEvents(mock.Anything).Return(2, nil)
	m.EXPECT().PurgeNotifications(mock.Anything).Return(10, nil)
	m.EXPECT().ReconcileParticipants(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(m.Calls), 3)
}

func TestScheduler_Tick_FailingJobDoesNotStopOthers(t *testing.T) {
	m := mocks.NewMockMaintainer(t)
	log := newTestLogger(t)

	s := New(m, time.Hour, log)

	m.EXPECT().CompletePastEvents(mock.Anything).Return(0, errors.New("db error")).Once()
	m.EXPECT().PurgeNotifications(mock.Anything).Return(0, errors.New("mongo error")).Once()
	m.EXPECT().ReconcileParticipants(mock.Anything).Return(1, nil).Once()

	s.tick(context.Background())
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	m := mocks.NewMockMaintainer(t)
	log := newTestLogger(t)

	s := New(m, time.Second, log)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	m := mocks.NewMockMaintainer(t)
	log := newTestLogger(t)

	s := New(m, 30*time.Millisecond, log)

	m.EXPECT().CompletePastEvents(mock.Anything).Return(0, nil)
	m.EXPECT().PurgeNotifications(mock.Anything).Return(0, nil)
	m.EXPECT().ReconcileParticipants(mock.Anything).Return(0, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(m.Calls), 6)
}
