package altecs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriumgames/altecs"
)

type trace struct{ lines []string }

func (t *trace) add(s string) { t.lines = append(t.lines, s) }

type score struct{ Points int }

type frozen struct{ Reason string }

type stageLoop struct {
	Trace *trace `altecs:"res"`
	name  string
}

func (l *stageLoop) Run() { l.Trace.add(l.name) }

type countLoop struct{ n *int }

func (l *countLoop) Run() { *l.n++ }

type scoreLoop struct {
	Entity altecs.EntityID
	Score  *score
	_      altecs.Without[frozen]
	seen   *[]altecs.EntityID
}

func (l *scoreLoop) Run() {
	l.Score.Points++
	*l.seen = append(*l.seen, l.Entity)
}

func TestLoopsRunInStageOrder(t *testing.T) {
	tr := &trace{}
	f := newFixture(t, nil, func(b *altecs.Builder) {
		b.Bundle(altecs.NewBundle("stages").
			Resource(tr).
			Loop(&stageLoop{name: "after"}, 0, altecs.After).
			Loop(&stageLoop{name: "before"}, 0, altecs.Before).
			Loop(&stageLoop{name: "default"}, 0, altecs.Default).
			Build())
	})

	f.tick(0)
	assert.Equal(t, []string{"before", "default", "after"}, tr.lines)
	f.tick(0)
	assert.Len(t, tr.lines, 6)
	assert.Equal(t, uint64(2), f.app.TickNumber())
}

func TestLoopIntervalStartsOnFirstTick(t *testing.T) {
	n := 0
	f := newFixture(t, nil, func(b *altecs.Builder) {
		b.Bundle(altecs.NewBundle("interval").
			Loop(&countLoop{n: &n}, 10*time.Second, altecs.Default).
			Build())
	})

	f.tick(0)
	assert.Equal(t, 1, n)
	f.tick(5 * time.Second)
	assert.Equal(t, 1, n)
	f.tick(5 * time.Second)
	assert.Equal(t, 2, n)
	f.tick(9 * time.Second)
	assert.Equal(t, 2, n)
	f.tick(time.Second)
	assert.Equal(t, 3, n)
}

func TestPerEntityLoopFilters(t *testing.T) {
	var seen []altecs.EntityID
	loop := &scoreLoop{seen: &seen}
	f := newFixture(t, nil, func(b *altecs.Builder) {
		b.Bundle(altecs.NewBundle("scores").Loop(loop, 0, altecs.Default).Build())
	})
	w := f.world()

	scored := w.Spawn(&score{})
	w.Spawn(&score{}, &frozen{Reason: "afk"})
	w.Spawn()

	f.tick(0)
	assert.Equal(t, []altecs.EntityID{scored}, seen)
	assert.Equal(t, 1, altecs.Get[score](w, scored).Points)
	assert.Nil(t, loop.Score, "injected fields are cleared after the run")
	assert.True(t, loop.Entity.IsZero())
	assert.NotNil(t, loop.seen, "payload fields are kept")
}

type noteTask struct {
	Trace *trace `altecs:"res"`
	note  string
}

func (t *noteTask) Run() { t.Trace.add(t.note) }

type otherTask struct {
	Trace *trace `altecs:"res"`
	note  string
}

func (t *otherTask) Run() { t.Trace.add(t.note) }

type scoreTask struct {
	Score *score
	runs  *int
}

func (t *scoreTask) Run() {
	t.Score.Points += 10
	*t.runs++
}

type countTask struct{ n *int }

func (t *countTask) Run() { *t.n++ }

type panicTask struct{}

func (*panicTask) Run() { panic("boom") }

func TestScheduleRunsWhenDue(t *testing.T) {
	tr := &trace{}
	f := newFixture(t, nil, func(b *altecs.Builder) { b.Resource(tr) })

	h := altecs.Schedule(f.app, &noteTask{note: "later"}, 2*time.Second)
	require.NotNil(t, h)

	f.tick(time.Second)
	assert.Empty(t, tr.lines)
	f.tick(time.Second)
	assert.Equal(t, []string{"later"}, tr.lines)
	f.tick(time.Second)
	assert.Len(t, tr.lines, 1)
}

func TestDispatchAndCancel(t *testing.T) {
	tr := &trace{}
	f := newFixture(t, nil, func(b *altecs.Builder) { b.Resource(tr) })

	altecs.Dispatch(f.app, &noteTask{note: "a"})
	h := altecs.Dispatch(f.app, &noteTask{note: "b"})
	h.Cancel()
	assert.True(t, h.Cancelled())

	f.tick(0)
	assert.Equal(t, []string{"a"}, tr.lines)
}

func TestBundleTaskStage(t *testing.T) {
	tr := &trace{}
	f := newFixture(t, nil, func(b *altecs.Builder) {
		b.Resource(tr).Bundle(altecs.NewBundle("tasks").Task(&noteTask{}, altecs.After).Build())
	})

	altecs.Dispatch(f.app, &noteTask{note: "after"})
	altecs.Dispatch(f.app, &otherTask{note: "default"})
	f.tick(0)
	assert.Equal(t, []string{"default", "after"}, tr.lines)
}

func TestTaskRunsForEveryMatchingEntity(t *testing.T) {
	f := newFixture(t, nil, nil)
	w := f.world()
	a := w.Spawn(&score{})
	b := w.Spawn(&score{Points: 1})
	f.tick(0)

	runs := 0
	altecs.Dispatch(f.app, &scoreTask{runs: &runs})
	f.tick(0)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 10, altecs.Get[score](w, a).Points)
	assert.Equal(t, 11, altecs.Get[score](w, b).Points)
}

func TestScheduleForSkipsGoneEntity(t *testing.T) {
	f := newFixture(t, nil, nil)
	w := f.world()
	id := w.Spawn(&score{})
	f.tick(0)

	runs := 0
	altecs.DispatchFor(f.app, id, &scoreTask{runs: &runs})
	f.tick(0)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 10, altecs.Get[score](w, id).Points)

	altecs.ScheduleFor(f.app, id, &scoreTask{runs: &runs}, time.Second)
	require.NoError(t, w.Despawn(id))
	f.tick(time.Second)
	assert.Equal(t, 1, runs)
}

func TestScheduleRepeating(t *testing.T) {
	f := newFixture(t, nil, nil)

	n := 0
	h := altecs.ScheduleRepeating(f.app, &countTask{n: &n}, time.Second, 3)
	require.NotNil(t, h)

	f.tick(0)
	assert.Equal(t, 0, n, "the first run is one interval away")
	for range 4 {
		f.tick(time.Second)
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, h.Runs())

	assert.Nil(t, altecs.ScheduleRepeating(f.app, &countTask{n: &n}, time.Second, 0))
}

func TestCancelRepeating(t *testing.T) {
	f := newFixture(t, nil, nil)

	n := 0
	h := altecs.ScheduleRepeating(f.app, &countTask{n: &n}, time.Second, -1)
	f.tick(time.Second)
	f.tick(time.Second)
	h.Cancel()
	f.tick(time.Second)
	f.tick(time.Second)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, h.Runs())
}

func TestScheduleRepeatingForStopsWithEntity(t *testing.T) {
	f := newFixture(t, nil, nil)
	w := f.world()
	id := w.Spawn(&score{})
	f.tick(0)

	runs := 0
	h := altecs.ScheduleRepeatingFor(f.app, id, &scoreTask{runs: &runs}, time.Second, -1)
	f.tick(time.Second)
	assert.Equal(t, 1, runs)

	require.NoError(t, w.Despawn(id))
	f.tick(time.Second)
	f.tick(time.Second)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, h.Runs())
}

func TestTaskPanicIsFatal(t *testing.T) {
	f := newFixture(t, nil, nil)

	altecs.Dispatch(f.app, &panicTask{})
	f.tick(0)

	require.Len(t, f.fatals, 1)
	fe := f.fatals[0]
	assert.Equal(t, "task panicTask", fe.Op)
	assert.Equal(t, f.res, fe.Resource)
	assert.ErrorIs(t, fe, altecs.ErrSystemPanic)
	assert.ErrorContains(t, fe, "boom")
}
