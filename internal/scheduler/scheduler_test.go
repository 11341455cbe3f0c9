package scheduler

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/diegoclair/slack-notify-bot/internal/domain"
	"github.com/diegoclair/slack-notify-bot/internal/domain/entity"
	"github.com/diegoclair/slack-notify-bot/mocks"
)

// fakeDriver records armed callbacks so tests can fire them by hand.
type fakeDriver struct {
	mu   sync.Mutex
	arms []*fakeArm
}

type fakeArm struct {
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func (a *fakeArm) Stop() bool {
	if a.stopped || a.fired {
		return false
	}
	a.stopped = true
	return true
}

func (d *fakeDriver) Schedule(at time.Time, fn func()) TimerHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	arm := &fakeArm{at: at, fn: fn}
	d.arms = append(d.arms, arm)
	return arm
}

// pending returns the arms that are neither stopped nor fired.
func (d *fakeDriver) pending() []*fakeArm {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []*fakeArm
	for _, arm := range d.arms {
		if !arm.stopped && !arm.fired {
			out = append(out, arm)
		}
	}
	return out
}

// fireAll invokes every pending callback, the way an elapsed timer would.
func (d *fakeDriver) fireAll() {
	for _, arm := range d.pending() {
		arm.fired = true
		arm.fn()
	}
}

func activeUsers(times ...string) []entity.NotificationUser {
	users := make([]entity.NotificationUser, 0, len(times))
	for i, v := range times {
		users = append(users, entity.NotificationUser{
			SlackUserID:      fmt.Sprintf("U%d", i+1),
			DisplayName:      fmt.Sprintf("user %d", i+1),
			NotificationTime: v,
			Timezone:         "UTC",
			AccountStatus:    domain.StatusPro,
		})
	}
	return users
}

type schedulerMocks struct {
	loader *mocks.MockUserLoader
	sender *mocks.MockBatchSender
}

func newSchedulerTest(t *testing.T) (s *Scheduler, m schedulerMocks, drv *fakeDriver, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = schedulerMocks{
		loader: mocks.NewMockUserLoader(ctrl),
		sender: mocks.NewMockBatchSender(ctrl),
	}
	drv = &fakeDriver{}
	s = New(m.loader, m.sender, drv, zerolog.Nop())
	return
}

func TestScheduler_Start(t *testing.T) {
	s, m, drv, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	m.loader.EXPECT().LoadUsers().Return(activeUsers("09:00", "18:30"), nil).Times(1)

	s.Start()

	require.Len(t, drv.pending(), 2)
	status := s.Status()
	assert.True(t, status.Running)
	assert.Equal(t, 2, status.ArmedCount)
}

func TestScheduler_StartTwiceIsNoop(t *testing.T) {
	s, m, drv, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	m.loader.EXPECT().LoadUsers().Return(activeUsers("09:00"), nil).Times(1)

	s.Start()
	s.Start() // must not rebuild

	assert.Len(t, drv.pending(), 1)
}

func TestScheduler_ReloadLeavesOneTimerPerCohort(t *testing.T) {
	s, m, drv, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	m.loader.EXPECT().LoadUsers().Return(activeUsers("09:00", "18:30"), nil).Times(3)

	s.Start()
	s.Reload()
	s.Reload()

	// two quick reloads must leave no duplicates and no orphans
	require.Len(t, drv.pending(), 2)
	keys := map[string]bool{}
	for _, entry := range s.Status().Entries {
		assert.False(t, keys[entry.CohortKey], "duplicate timer for cohort %s", entry.CohortKey)
		keys[entry.CohortKey] = true
	}
}

func TestScheduler_ReloadKeepsScheduleOnLoaderFailure(t *testing.T) {
	s, m, drv, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	first := m.loader.EXPECT().LoadUsers().Return(activeUsers("09:00"), nil).Times(1)
	m.loader.EXPECT().LoadUsers().Return(nil, fmt.Errorf("sheet unavailable")).After(first).Times(1)

	s.Start()
	before := s.Status()

	s.Reload()
	after := s.Status()

	require.Len(t, drv.pending(), 1)
	require.Len(t, after.Entries, 1)
	assert.Equal(t, before.Entries[0].CohortKey, after.Entries[0].CohortKey)
	assert.Equal(t, before.Entries[0].Target, after.Entries[0].Target)
}

func TestScheduler_FireSendsBatchAndRearms(t *testing.T) {
	s, m, drv, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	m.loader.EXPECT().LoadUsers().Return(activeUsers("09:00"), nil).Times(1)

	sent := make(chan []string, 1)
	m.sender.EXPECT().SendBatch(gomock.Any()).DoAndReturn(func(ids []string) error {
		sent <- ids
		return nil
	}).Times(1)

	s.Start()
	firedTarget := s.Status().Entries[0].Target

	drv.fireAll()

	select {
	case ids := <-sent:
		assert.Equal(t, []string{"U1"}, ids)
	case <-time.After(2 * time.Second):
		t.Fatal("sender was not invoked")
	}

	// re-armed exactly 24h after the fired target
	status := s.Status()
	require.Equal(t, 1, status.ArmedCount)
	assert.Equal(t, firedTarget.Add(24*time.Hour), status.Entries[0].Target)
}

func TestScheduler_FailingSenderStillRearms(t *testing.T) {
	s, m, drv, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	m.loader.EXPECT().LoadUsers().Return(activeUsers("09:00"), nil).Times(1)

	sent := make(chan struct{}, 1)
	m.sender.EXPECT().SendBatch(gomock.Any()).DoAndReturn(func([]string) error {
		defer close(sent)
		return fmt.Errorf("slack is down")
	}).Times(1)

	s.Start()
	firedTarget := s.Status().Entries[0].Target

	drv.fireAll()

	select {
	case <-sent:
	case <-time.After(2 * time.Second):
		t.Fatal("sender was not invoked")
	}

	status := s.Status()
	require.Equal(t, 1, status.ArmedCount)
	assert.Equal(t, firedTarget.Add(24*time.Hour), status.Entries[0].Target)
}

func TestScheduler_StaleFireDoesNotRearm(t *testing.T) {
	s, m, drv, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	m.loader.EXPECT().LoadUsers().Return(activeUsers("09:00"), nil).Times(2)
	m.sender.EXPECT().SendBatch(gomock.Any()).Return(nil).AnyTimes()

	s.Start()
	stale := drv.pending()[0]

	// reload discards the plan the captured callback belongs to
	s.Reload()

	// simulate the race where the timer elapsed before the reload
	// cancelled it: the in-flight fire completes but must not re-arm
	stale.fired = true
	stale.fn()

	require.Len(t, drv.pending(), 1)
	assert.Equal(t, 1, s.Status().ArmedCount)
}

func TestScheduler_Stop(t *testing.T) {
	s, m, drv, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	m.loader.EXPECT().LoadUsers().Return(activeUsers("09:00", "18:30"), nil).Times(1)

	s.Start()
	s.Stop()
	s.Stop() // idempotent

	assert.Empty(t, drv.pending())
	status := s.Status()
	assert.False(t, status.Running)
	assert.Zero(t, status.ArmedCount)
}

func TestScheduler_StatusCountsDown(t *testing.T) {
	s, m, _, ctrl := newSchedulerTest(t)
	defer ctrl.Finish()

	// a target half a day out keeps seconds_remaining comfortably positive
	far := time.Now().UTC().Add(12 * time.Hour).Format("15:04")
	m.loader.EXPECT().LoadUsers().Return(activeUsers(far), nil).Times(1)

	s.Start()

	first := s.Status()
	require.Len(t, first.Entries, 1)
	assert.Positive(t, first.Entries[0].SecondsRemaining)

	time.Sleep(1100 * time.Millisecond)

	second := s.Status()
	require.Len(t, second.Entries, 1)
	assert.Less(t, second.Entries[0].SecondsRemaining, first.Entries[0].SecondsRemaining)
	assert.Equal(t, first.Entries[0].Target, second.Entries[0].Target)
}
