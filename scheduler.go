package altecs

import (
	"time"
)

// scheduler runs loops and due tasks when the host ticks the Application.
// It runs on the host's callback thread and never starts goroutines.
type scheduler struct {
	app *Application

	loops [stageCount][]*loopState

	// Tick tracking
	lastTick   time.Time
	tickNumber uint64
}

// loopState tracks the state of a single loop system.
type loopState struct {
	system   Runnable
	meta     *SystemMeta
	bundle   *Bundle
	interval time.Duration
	lastRun  time.Time
	nextRun  time.Time
}

// ShouldRun checks if the loop should run at the given time.
func (l *loopState) ShouldRun(now time.Time) bool {
	if l.interval == 0 {
		return true
	}
	return !now.Before(l.nextRun)
}

// MarkRun updates the last run time and schedules the next run.
func (l *loopState) MarkRun(now time.Time) {
	l.lastRun = now
	if l.interval > 0 {
		// Drift-free timing
		l.nextRun = l.nextRun.Add(l.interval)
		if l.nextRun.Before(now) {
			// Catch up if we're behind
			l.nextRun = now.Add(l.interval)
		}
	}
}

func newScheduler(app *Application) *scheduler {
	return &scheduler{app: app}
}

// addLoop registers a loop. A loop runs on the first tick after it is added
// and then every interval; an interval of 0 runs it every tick.
func (s *scheduler) addLoop(system Runnable, meta *SystemMeta, bundle *Bundle, interval time.Duration, stage Stage) {
	s.loops[stage] = append(s.loops[stage], &loopState{
		system:   system,
		meta:     meta,
		bundle:   bundle,
		interval: interval,
	})
}

// tick executes one scheduler tick: due loops stage by stage, then due tasks.
func (s *scheduler) tick(now time.Time) {
	s.tickNumber++
	s.lastTick = now

	for stage := Before; stage < stageCount; stage++ {
		for _, loop := range s.loops[stage] {
			if !loop.ShouldRun(now) {
				continue
			}
			s.runSystem("loop", loop.system, loop.meta, loop.bundle)
			loop.MarkRun(now)
		}
	}

	s.processTasks(now)
}

// processTasks runs all due tasks grouped by stage.
func (s *scheduler) processTasks(now time.Time) {
	due := s.app.tasks.PopDue(now)
	if len(due) == 0 {
		return
	}

	byStage := make([][]*scheduledTask, stageCount)
	for _, task := range due {
		byStage[task.meta.Stage] = append(byStage[task.meta.Stage], task)
	}

	for stage := Before; stage < stageCount; stage++ {
		for _, task := range byStage[stage] {
			if task.cancelled.Load() {
				continue
			}
			s.executeTask(task)
		}
	}
}

// executeTask runs a task. A task bound to an entity runs only if the entity
// is still alive and passes the task's filters.
func (s *scheduler) executeTask(task *scheduledTask) {
	if !task.bound {
		s.runSystem("task", task.task, task.meta, task.bundle)
		return
	}

	mask, alive := s.app.world.mask(task.entity)
	if !alive || !task.meta.canRun(mask) {
		return
	}
	s.runOnce("task", task.task, task.entity, task.meta, task.bundle)
}

// runSystem runs a system once, or once for every matching entity when the
// system reads components.
func (s *scheduler) runSystem(kind string, system Runnable, meta *SystemMeta, bundle *Bundle) {
	if !meta.PerEntity {
		s.runOnce(kind, system, EntityID{}, meta, bundle)
		return
	}
	for _, id := range s.app.world.match(meta.RequireMask, meta.ExcludeMask) {
		s.runOnce(kind, system, id, meta, bundle)
	}
}

func (s *scheduler) runOnce(kind string, system Runnable, id EntityID, meta *SystemMeta, bundle *Bundle) {
	if injectSystem(system, id, meta, bundle, s.app) {
		s.app.runGuarded(kind, meta.Name, system.Run)
	}
	zeroSystem(system, meta)
}
