package altecs

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"
)

// scheduledTask is a task waiting in the queue for its execution time.
type scheduledTask struct {
	executeAt time.Time

	// entity is the entity the task runs against when bound is set.
	entity EntityID
	bound  bool

	// task is the task instance with payload
	task Runnable

	meta   *SystemMeta
	bundle *Bundle

	cancelled atomic.Bool

	// index is the heap index
	index int
}

// taskQueue is a min-heap of scheduled tasks ordered by execution time.
// Tasks scheduled with the same time run in scheduling order.
type taskQueue struct {
	mu   sync.Mutex
	heap []*scheduledTask
	seq  map[*scheduledTask]uint64
	next uint64
}

func newTaskQueue() *taskQueue {
	return &taskQueue{
		heap: make([]*scheduledTask, 0, 64),
		seq:  make(map[*scheduledTask]uint64),
	}
}

// Push adds a task to the queue, compacting cancelled tasks now and then.
func (q *taskQueue) Push(task *scheduledTask) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.heap) > 100 && len(q.heap)%100 == 0 {
		q.compactHeap()
	}

	q.seq[task] = q.next
	q.next++
	task.index = len(q.heap)
	q.heap = append(q.heap, task)
	q.up(task.index)
}

// PopDue removes and returns every non-cancelled task due at now, in order.
func (q *taskQueue) PopDue(now time.Time) []*scheduledTask {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []*scheduledTask
	cancelled := 0

	for len(q.heap) > 0 && !q.heap[0].executeAt.After(now) {
		task := q.pop()
		if task.cancelled.Load() {
			cancelled++
			continue
		}
		due = append(due, task)
	}

	if cancelled > 50 && len(q.heap) > 0 {
		q.compactHeap()
	}
	return due
}

// Peek returns the execution time of the earliest task.
func (q *taskQueue) Peek() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.heap) == 0 {
		return time.Time{}, false
	}
	return q.heap[0].executeAt, true
}

// Len returns the number of queued tasks, cancelled ones included.
func (q *taskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.heap)
}

// Clear drops every queued task.
func (q *taskQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	clear(q.heap)
	q.heap = q.heap[:0]
	clear(q.seq)
}

// compactHeap removes cancelled tasks and restores the heap property.
// Caller must hold the lock.
func (q *taskQueue) compactHeap() {
	write := 0
	for read := 0; read < len(q.heap); read++ {
		task := q.heap[read]
		if task.cancelled.Load() {
			delete(q.seq, task)
			continue
		}
		q.heap[write] = task
		task.index = write
		write++
	}
	clear(q.heap[write:])
	q.heap = q.heap[:write]

	for i := len(q.heap)/2 - 1; i >= 0; i-- {
		q.down(i, len(q.heap))
	}
}

func (q *taskQueue) pop() *scheduledTask {
	n := len(q.heap) - 1
	q.swap(0, n)
	q.down(0, n)
	task := q.heap[n]
	q.heap[n] = nil
	q.heap = q.heap[:n]
	task.index = -1
	delete(q.seq, task)
	return task
}

func (q *taskQueue) less(i, j int) bool {
	a, b := q.heap[i], q.heap[j]
	if a.executeAt.Equal(b.executeAt) {
		return q.seq[a] < q.seq[b]
	}
	return a.executeAt.Before(b.executeAt)
}

func (q *taskQueue) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *taskQueue) down(i, n int) {
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		j := left
		if right := left + 1; right < n && q.less(right, left) {
			j = right
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
}

func (q *taskQueue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.heap[i].index = i
	q.heap[j].index = j
}

// TaskHandle allows cancelling a scheduled task.
type TaskHandle struct {
	task *scheduledTask
}

// Cancel cancels the scheduled task. Cancelling a task that already ran is a
// no-op.
func (h *TaskHandle) Cancel() {
	if h != nil && h.task != nil {
		h.task.cancelled.Store(true)
	}
}

// Cancelled reports whether Cancel was called.
func (h *TaskHandle) Cancelled() bool {
	return h != nil && h.task != nil && h.task.cancelled.Load()
}

// Schedule schedules a task to run after delay, measured on the
// Application's clock. The task runs on the first tick at or after that time.
// A task that reads components runs once for every matching entity.
// Returns nil if the task type cannot be analyzed.
func Schedule(app *Application, task Runnable, delay time.Duration) *TaskHandle {
	return ScheduleAt(app, task, app.now().Add(delay))
}

// ScheduleAt schedules a task for a specific time on the Application's clock.
// If the time is in the past, the task runs on the next tick.
func ScheduleAt(app *Application, task Runnable, at time.Time) *TaskHandle {
	scheduled := newScheduledTask(app, task, at)
	if scheduled == nil {
		return nil
	}
	app.tasks.Push(scheduled)
	return &TaskHandle{task: scheduled}
}

// ScheduleFor schedules a task to run against one entity after delay.
// The task is skipped if the entity is gone or no longer matches the task's
// filters when it comes due.
func ScheduleFor(app *Application, id EntityID, task Runnable, delay time.Duration) *TaskHandle {
	scheduled := newScheduledTask(app, task, app.now().Add(delay))
	if scheduled == nil {
		return nil
	}
	scheduled.entity = id
	scheduled.bound = true
	app.tasks.Push(scheduled)
	return &TaskHandle{task: scheduled}
}

// Dispatch runs a task on the next tick.
func Dispatch(app *Application, task Runnable) *TaskHandle {
	return Schedule(app, task, 0)
}

// DispatchFor runs a task against one entity on the next tick.
func DispatchFor(app *Application, id EntityID, task Runnable) *TaskHandle {
	return ScheduleFor(app, id, task, 0)
}

func newScheduledTask(app *Application, task Runnable, at time.Time) *scheduledTask {
	if app == nil || task == nil {
		return nil
	}
	meta, bundle := app.taskMeta(reflect.TypeOf(task))
	if meta == nil {
		return nil
	}
	return &scheduledTask{
		executeAt: at,
		task:      task,
		meta:      meta,
		bundle:    bundle,
	}
}

// RepeatingTaskHandle allows cancelling a repeating task.
type RepeatingTaskHandle struct {
	cancelled atomic.Bool
	runs      atomic.Int64
}

// Cancel prevents future executions.
func (h *RepeatingTaskHandle) Cancel() {
	if h != nil {
		h.cancelled.Store(true)
	}
}

// Runs returns how many times the task has run.
func (h *RepeatingTaskHandle) Runs() int {
	if h == nil {
		return 0
	}
	return int(h.runs.Load())
}

// repeatingTask reschedules itself after each run until its count is spent.
type repeatingTask struct {
	app       *Application
	inner     Runnable
	interval  time.Duration
	remaining int // -1 for infinite
	handle    *RepeatingTaskHandle
	entity    EntityID
	bound     bool
	meta      *SystemMeta
	bundle    *Bundle
}

func (r *repeatingTask) Run() {
	if r.handle.cancelled.Load() {
		return
	}

	if r.bound {
		mask, alive := r.app.world.mask(r.entity)
		if !alive {
			return
		}
		if r.meta.canRun(mask) {
			r.app.sched.runOnce("task", r.inner, r.entity, r.meta, r.bundle)
		}
	} else {
		r.app.sched.runSystem("task", r.inner, r.meta, r.bundle)
	}
	r.handle.runs.Add(1)

	if r.remaining > 0 {
		r.remaining--
	}
	if r.remaining == 0 || r.handle.cancelled.Load() {
		return
	}
	r.push()
}

func (r *repeatingTask) push() {
	r.app.tasks.Push(&scheduledTask{
		executeAt: r.app.now().Add(r.interval),
		task:      r,
		// The wrapper injects the inner task itself.
		meta: &SystemMeta{Name: r.meta.Name, Stage: r.meta.Stage},
	})
}

// ScheduleRepeating schedules a task to run every interval.
// If times is -1, the task repeats until cancelled; if times is > 0, it runs
// exactly that many times. Returns nil for times == 0.
func ScheduleRepeating(app *Application, task Runnable, interval time.Duration, times int) *RepeatingTaskHandle {
	return scheduleRepeating(app, EntityID{}, false, task, interval, times)
}

// ScheduleRepeatingFor is ScheduleRepeating bound to one entity. Repetition
// stops once the entity is gone.
func ScheduleRepeatingFor(app *Application, id EntityID, task Runnable, interval time.Duration, times int) *RepeatingTaskHandle {
	return scheduleRepeating(app, id, true, task, interval, times)
}

func scheduleRepeating(app *Application, id EntityID, bound bool, task Runnable, interval time.Duration, times int) *RepeatingTaskHandle {
	if app == nil || task == nil || times == 0 {
		return nil
	}
	meta, bundle := app.taskMeta(reflect.TypeOf(task))
	if meta == nil {
		return nil
	}

	handle := &RepeatingTaskHandle{}
	r := &repeatingTask{
		app:       app,
		inner:     task,
		interval:  interval,
		remaining: times,
		handle:    handle,
		entity:    id,
		bound:     bound,
		meta:      meta,
		bundle:    bundle,
	}
	r.push()
	return handle
}
