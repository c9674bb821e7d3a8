package altecs

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"runtime/debug"
	"time"
	"unsafe"

	"github.com/google/uuid"
)

// Application is one loaded logic module. It owns a World mirroring the
// host's objects, the module's State, and the handlers, loops and tasks
// registered by its bundles.
//
// An Application is driven by the Runtime from the host's callback thread;
// its methods must not be called concurrently.
type Application struct {
	id       uuid.UUID
	api      NativeAPI
	world    *World
	decoder  *Decoder
	state    State
	ctx      *Context
	log      *slog.Logger
	clock    func() time.Time
	onFatal  func(error)
	resource NativeHandle
	config   Config

	bundles  []*Bundle
	handlers []*handlerMeta
	sched    *scheduler
	tasks    *taskQueue

	// resources and injections hold application-wide values keyed by their
	// element type
	resources  map[reflect.Type]unsafe.Pointer
	injections map[reflect.Type]unsafe.Pointer

	// adhoc caches metadata of task types no bundle registered
	adhoc map[reflect.Type]*SystemMeta
}

// ID returns the instance id used in logs.
func (a *Application) ID() uuid.UUID {
	return a.id
}

// World returns the application's entity store.
func (a *Application) World() *World {
	return a.world
}

// API returns the NativeAPI the application talks to.
func (a *Application) API() NativeAPI {
	return a.api
}

// Logger returns the application's logger.
func (a *Application) Logger() *slog.Logger {
	return a.log
}

// State returns the application's top-level State.
func (a *Application) State() State {
	return a.state
}

// Resource returns the host resource the application is bound to, or the
// nil handle before the Runtime binds it.
func (a *Application) Resource() NativeHandle {
	return a.resource
}

// TickNumber returns the number of ticks run so far.
func (a *Application) TickNumber() uint64 {
	return a.sched.tickNumber
}

// Now returns the current time on the application's clock.
func (a *Application) Now() time.Time {
	return a.now()
}

func (a *Application) now() time.Time {
	return a.clock()
}

// Config returns the configuration the Application runs with.
func (a *Application) Config() Config {
	return a.config
}

// configure applies the registry sizing and decoder settings of cfg.
func (a *Application) configure(cfg Config) {
	a.config = cfg
	a.decoder.LogUnknown(cfg.LogUnknownEvents)
	a.world.objects.reserve(cfg.Registry)
}

// bind attaches the application to a host resource and reports fatal errors
// to onFatal. It is called by the Runtime once the loader returns.
func (a *Application) bind(resource NativeHandle, log *slog.Logger, onFatal func(error)) {
	a.resource = resource
	if log != nil {
		a.log = log.With("resource", resource.String(), "instance", a.id.String())
		a.ctx.Logger = a.log
		a.decoder.log = a.log
		a.world.log = a.log
	}
	if onFatal != nil {
		a.onFatal = onFatal
	}
}

// Start runs State.OnStart.
func (a *Application) Start() {
	a.runGuarded("state", "OnStart", func() { a.state.OnStart(a.ctx) })
	a.world.Maintain()
}

// Stop runs State.OnStop.
func (a *Application) Stop() {
	a.runGuarded("state", "OnStop", func() { a.state.OnStop(a.ctx) })
	a.world.Maintain()
}

// HandleEvent decodes a host event record and dispatches it. Records of an
// unknown type are dropped. A decode error means the host broke its
// ordering guarantee and is returned for the caller to treat as fatal.
func (a *Application) HandleEvent(raw NativeHandle) error {
	ev, err := a.decoder.Decode(raw)
	if err != nil {
		return err
	}
	if ev == nil {
		return nil
	}
	a.Dispatch(ev)
	return nil
}

// Dispatch passes an event to State.HandleEvent and then to every bundle
// handler listening for its type.
func (a *Application) Dispatch(ev Event) {
	a.runGuarded("state", "HandleEvent", func() { a.state.HandleEvent(a.ctx, ev) })
	a.dispatchHandlers(ev)
}

// Tick runs one host tick: buffered structural changes are applied, then
// State.Tick, due loops and due tasks run, and changes they requested are
// applied before Tick returns.
func (a *Application) Tick() {
	a.world.Maintain()
	a.runGuarded("state", "Tick", func() { a.state.Tick(a.ctx) })
	a.sched.tick(a.now())
	a.world.Maintain()
}

// CreateObject mirrors a host object the host has just created.
// Objects of kinds that are not mirrored are ignored.
func (a *Application) CreateObject(handle NativeHandle) error {
	kind, err := a.world.objects.Kind(handle)
	if errors.Is(err, ErrUnknownObjectType) {
		a.log.Debug("altecs: ignoring object", "handle", handle.String(), "err", err)
		return nil
	}
	if err != nil {
		return err
	}
	id, err := a.world.objects.Register(kind, handle)
	if err != nil {
		return err
	}
	a.log.Debug("altecs: object created", "kind", kind.String(), "handle", handle.String(), "entity", id.String())
	return nil
}

// RemoveObject drops the mirror of a host object the host is removing.
// The entity stays readable until the next Maintain.
func (a *Application) RemoveObject(handle NativeHandle) error {
	kind, err := a.world.objects.Kind(handle)
	if errors.Is(err, ErrUnknownObjectType) {
		return nil
	}
	if err != nil {
		return err
	}
	id, err := a.world.objects.Unregister(kind, handle)
	if err != nil {
		return err
	}
	a.log.Debug("altecs: object removed", "kind", kind.String(), "handle", handle.String(), "entity", id.String())
	return nil
}

// Close drops pending tasks and applies outstanding structural changes.
func (a *Application) Close() {
	a.tasks.Clear()
	a.world.Maintain()
}

// AppResource returns an application-wide resource registered with
// Builder.Resource, or nil.
func AppResource[T any](a *Application) *T {
	if a == nil {
		return nil
	}
	return (*T)(a.resources[reflect.TypeFor[T]()])
}

// AppInjection returns a value registered with Builder.Injection, or nil.
func AppInjection[T any](a *Application) *T {
	if a == nil {
		return nil
	}
	return (*T)(a.injection(reflect.TypeFor[T]()))
}

// resource looks a resource up in the bundle first, then application-wide.
func (a *Application) resourceFor(bundle *Bundle, t reflect.Type) unsafe.Pointer {
	if bundle != nil {
		if ptr := bundle.getResource(t); ptr != nil {
			return ptr
		}
	}
	return a.resources[t]
}

func (a *Application) injection(t reflect.Type) unsafe.Pointer {
	return a.injections[t]
}

// taskMeta returns the metadata and owning bundle of a task type. Types no
// bundle registered are analyzed on first use and run in the Default stage.
func (a *Application) taskMeta(t reflect.Type) (*SystemMeta, *Bundle) {
	for _, b := range a.bundles {
		if meta := b.getTaskMeta(t); meta != nil {
			return meta, b
		}
	}

	t = pointerElem(t)
	if meta, ok := a.adhoc[t]; ok {
		return meta, nil
	}
	meta, err := analyzeSystem(t)
	if err != nil {
		a.log.Warn("altecs: cannot schedule task", "task", t.String(), "err", err)
		return nil, nil
	}
	meta.Stage = Default
	a.adhoc[t] = meta
	return meta, nil
}

// runGuarded runs fn and turns a panic into a fatal error.
func (a *Application) runGuarded(kind, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("altecs: recovered panic",
				"kind", kind,
				"system", name,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			a.fatal(&FatalError{
				Op:       kind + " " + name,
				Resource: a.resource,
				Err:      fmt.Errorf("%w: %v", ErrSystemPanic, r),
			})
		}
	}()
	fn()
}

// fatal reports a fatal error. Without an OnFatal handler it panics.
func (a *Application) fatal(err error) {
	if a.onFatal != nil {
		a.onFatal(err)
		return
	}
	panic(err)
}
