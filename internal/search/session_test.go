package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbar/internal/debounce"
	"findbar/internal/domain"
	"findbar/internal/store"
)

const ms = time.Millisecond

type settlement struct {
	at    time.Duration
	query string
	ids   []string
}

func newTestSession(t *testing.T, items []domain.Item) (*Session, *debounce.ManualScheduler, *[]settlement) {
	t.Helper()

	rs := store.Default()
	if items != nil {
		var err error
		rs, err = store.NewMemoryStore(items)
		require.NoError(t, err)
	}

	sched := debounce.NewManualScheduler()
	s := NewSession(rs, sched, DefaultDelay, domain.DefaultVisibility())

	var settled []settlement
	s.SetSettleFunction(func(s *Session) {
		settled = append(settled, settlement{at: sched.Now(), query: s.Query(), ids: ids(s.Results())})
	})
	return s, sched, &settled
}

func TestSessionStartsIdle(t *testing.T) {
	s, _, _ := newTestSession(t, nil)
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, "", s.Query())
	assert.Equal(t, domain.TabAll, s.Tab())
	assert.Equal(t, domain.DefaultVisibility(), s.Visibility())
	assert.Empty(t, s.Results())
	assert.False(t, s.Searching())
}

func TestSessionDebounceSupersession(t *testing.T) {
	s, sched, settled := newTestSession(t, nil)

	s.SetQuery("a")
	sched.AdvanceTo(100 * ms)
	s.SetQuery("ab")
	sched.AdvanceTo(150 * ms)
	s.SetQuery("abc")

	sched.AdvanceTo(449 * ms)
	assert.Empty(t, *settled, "nothing settles before the last edit's delay elapses")
	assert.Equal(t, StatePending, s.State())
	assert.True(t, s.Searching())
	assert.Equal(t, 1, sched.Pending(), "at most one recomputation is pending")

	sched.AdvanceTo(2 * time.Second)
	require.Len(t, *settled, 1)
	assert.Equal(t, 450*ms, (*settled)[0].at)
	assert.Equal(t, "abc", (*settled)[0].query)
	assert.Equal(t, StateSettled, s.State())
}

func TestSessionSettlesWithFilteredResults(t *testing.T) {
	s, sched, settled := newTestSession(t, nil)

	s.SetQuery("rudraksh")
	sched.Advance(DefaultDelay)

	require.Len(t, *settled, 1)
	assert.Equal(t, []string{"2", "3", "5"}, ids(s.Results()))
	assert.Equal(t, StateSettled, s.State())
}

func TestSessionEmptyQueryIsImmediate(t *testing.T) {
	s, sched, settled := newTestSession(t, nil)

	s.SetQuery("r")
	sched.Advance(DefaultDelay)
	require.NotEmpty(t, s.Results())

	s.SetQuery("ro")
	s.SetQuery("")
	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, s.Results())
	assert.Equal(t, 0, sched.Pending(), "the pending recomputation is cancelled")

	sched.Advance(time.Second)
	assert.Len(t, *settled, 1)
}

func TestSessionUnchangedQueryIsNoop(t *testing.T) {
	s, sched, _ := newTestSession(t, nil)

	require.True(t, s.SetQuery("r"))
	sched.Advance(DefaultDelay)
	assert.False(t, s.SetQuery("r"))
	assert.Equal(t, StateSettled, s.State())

	require.True(t, s.SetQuery(""))
	assert.False(t, s.SetQuery(""))
}

func TestSessionClear(t *testing.T) {
	s, sched, settled := newTestSession(t, nil)

	s.SetQuery("r")
	sched.Advance(DefaultDelay)
	s.SetQuery("ru")
	sched.Advance(100 * ms)

	s.Clear()
	assert.Equal(t, "", s.Query())
	assert.Empty(t, s.Results())
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 0, sched.Pending())

	sched.Advance(time.Second)
	assert.Len(t, *settled, 1, "no recomputation survives a clear")
}

func TestSessionTabChangeRestartsDebounce(t *testing.T) {
	s, sched, settled := newTestSession(t, nil)

	s.SetQuery("rudraksh")
	sched.Advance(DefaultDelay)

	require.True(t, s.SetTab(domain.TabFiles))
	assert.Equal(t, StatePending, s.State())
	assert.Equal(t, []string{"2", "3", "5"}, ids(s.Results()), "old results stay until the recomputation lands")

	sched.Advance(DefaultDelay)
	assert.Equal(t, []string{"3", "5"}, ids(s.Results()))
	assert.Len(t, *settled, 2)
}

func TestSessionTabChangeWhileIdle(t *testing.T) {
	s, sched, _ := newTestSession(t, nil)

	s.SetTab(domain.TabPeople)
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 0, sched.Pending())

	s.SetQuery("r")
	sched.Advance(DefaultDelay)
	assert.Equal(t, []string{"1", "2", "4"}, ids(s.Results()))
}

func TestSessionVisibilityToggle(t *testing.T) {
	s, sched, _ := newTestSession(t, nil)

	vis := s.ToggleVisibility(domain.GroupChats)
	assert.True(t, vis.Chats)
	assert.Equal(t, StateIdle, s.State(), "toggling while idle schedules nothing")
	assert.Equal(t, 0, sched.Pending())

	s.SetQuery("rudraksh")
	sched.Advance(DefaultDelay)
	assert.Equal(t, []string{"2", "3", "5", "7"}, ids(s.Results()))

	s.ToggleVisibility(domain.GroupFiles)
	assert.Equal(t, StatePending, s.State())
	sched.Advance(DefaultDelay)
	assert.Equal(t, []string{"2", "7"}, ids(s.Results()))
}

func TestSessionTabListFollowsVisibility(t *testing.T) {
	items := []domain.Item{
		{ID: "c1", Category: domain.CategoryChat, Title: "Design chat"},
		{ID: "c2", Category: domain.CategoryChat, Title: "Ops chat"},
		{ID: "p1", Category: domain.CategoryPerson, Title: "Chatty Cathy"},
	}
	s, _, _ := newTestSession(t, items)

	s.SetQuery("chat")
	assert.Equal(t, -1, IndexOf(s.Tabs(), domain.TabChat), "chat tab hidden while chats are disabled")

	s.ToggleVisibility(domain.GroupChats)
	tabs := s.Tabs()
	i := IndexOf(tabs, domain.TabChat)
	require.NotEqual(t, -1, i)
	assert.Equal(t, 2, tabs[i].Count)
}

func TestSessionActiveTabFallsBackToAll(t *testing.T) {
	s, sched, _ := newTestSession(t, nil)

	s.ToggleVisibility(domain.GroupLists)
	s.SetQuery("list")
	s.SetTab(domain.TabList)
	sched.Advance(DefaultDelay)
	assert.Equal(t, []string{"8"}, ids(s.Results()))

	s.ToggleVisibility(domain.GroupLists)
	assert.Equal(t, domain.TabAll, s.Tab(), "a tab that disappears resets to all")

	sched.Advance(DefaultDelay)
	assert.Empty(t, s.Results(), "lists are no longer part of the all view")
}

func TestSessionUnaffectedTabKeptOnToggle(t *testing.T) {
	s, _, _ := newTestSession(t, nil)

	s.SetTab(domain.TabPeople)
	s.ToggleVisibility(domain.GroupPeople)
	assert.Equal(t, domain.TabPeople, s.Tab(), "files and people tabs are always offered")
}

func TestSessionClose(t *testing.T) {
	s, sched, settled := newTestSession(t, nil)

	s.SetQuery("r")
	s.Close()
	assert.Equal(t, 0, sched.Pending())

	assert.False(t, s.SetQuery("ru"))
	sched.Advance(time.Second)
	assert.Empty(t, *settled)
}

// capturingScheduler hands tasks back to the test and can't cancel them,
// the way a timer behaves once it has already fired and its task is queued.
type capturingScheduler struct {
	tasks []func()
}

type uncancellable struct{}

func (uncancellable) Cancel() bool { return false }

func (c *capturingScheduler) Schedule(_ time.Duration, task func()) debounce.Handle {
	c.tasks = append(c.tasks, task)
	return uncancellable{}
}

func TestSessionIgnoresStaleTasks(t *testing.T) {
	sched := &capturingScheduler{}
	s := NewSession(store.Default(), sched, DefaultDelay, domain.DefaultVisibility())

	settles := 0
	s.SetSettleFunction(func(*Session) { settles++ })

	s.SetQuery("r")
	s.SetQuery("rudraksh")
	require.Len(t, sched.tasks, 2)

	// the stale task arrives after the fresh edit
	sched.tasks[0]()
	assert.Equal(t, StatePending, s.State())
	assert.Zero(t, settles)

	sched.tasks[1]()
	assert.Equal(t, StateSettled, s.State())
	assert.Equal(t, []string{"2", "3", "5"}, ids(s.Results()))

	// a duplicate delivery of the applied task is also ignored
	sched.tasks[1]()
	assert.Equal(t, 1, settles)
}

func TestSessionStaleTaskAfterClear(t *testing.T) {
	sched := &capturingScheduler{}
	s := NewSession(store.Default(), sched, DefaultDelay, domain.DefaultVisibility())

	s.SetQuery("r")
	s.Clear()
	sched.tasks[0]()

	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, s.Results())
}

func TestNewSessionDefaultsDelay(t *testing.T) {
	s := NewSession(store.Default(), debounce.NewManualScheduler(), 0, domain.DefaultVisibility())
	assert.Equal(t, DefaultDelay, s.Delay())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "settled", StateSettled.String())
}
