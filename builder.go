package altecs

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"
	"unsafe"

	"github.com/google/uuid"
)

// Builder configures an Application before it is built.
// Use NewBuilder to create a builder and chain configuration methods.
type Builder struct {
	state      State
	bundles    []func(*Application) *Bundle
	resources  []any
	injections []any
	components []reflect.Type
	config     Config
	clock      func() time.Time
	log        *slog.Logger
	onFatal    func(error)
}

// NewBuilder creates a builder for an Application driven by state.
// A nil state uses NopState.
func NewBuilder(state State) *Builder {
	if state == nil {
		state = NopState{}
	}
	return &Builder{
		state:  state,
		config: DefaultConfig(),
		clock:  time.Now,
	}
}

// Bundle adds a bundle to the builder.
func (b *Builder) Bundle(callback func(*Application) *Bundle) *Builder {
	b.bundles = append(b.bundles, callback)
	return b
}

// Resource adds an application-wide resource available to every bundle
// through fields tagged altecs:"res". res must be a pointer.
func (b *Builder) Resource(res any) *Builder {
	b.resources = append(b.resources, res)
	return b
}

// Injection adds a value available to systems through fields tagged
// altecs:"inj". inj must be a pointer.
func (b *Builder) Injection(inj any) *Builder {
	b.injections = append(b.injections, inj)
	return b
}

// Config sets the configuration used to size the registry and control
// decoder logging. A Runtime replaces it with its own when it loads the
// Application.
func (b *Builder) Config(cfg Config) *Builder {
	b.config = cfg
	return b
}

// Clock replaces the clock loops and tasks are timed with.
func (b *Builder) Clock(clock func() time.Time) *Builder {
	if clock != nil {
		b.clock = clock
	}
	return b
}

// Logger sets the logger used until the Runtime binds the Application.
func (b *Builder) Logger(log *slog.Logger) *Builder {
	b.log = log
	return b
}

// OnFatal sets the handler for fatal errors raised outside a Runtime.
// The Runtime replaces it when it binds the Application.
func (b *Builder) OnFatal(fn func(error)) *Builder {
	b.onFatal = fn
	return b
}

// Register registers component type T up front, so its ComponentID is fixed
// before any system is analyzed.
func Register[T any](b *Builder) *Builder {
	b.components = append(b.components, reflect.TypeFor[T]())
	return b
}

// Build builds the Application against api.
func (b *Builder) Build(api NativeAPI) (*Application, error) {
	if api == nil {
		return nil, fmt.Errorf("build: nil NativeAPI")
	}

	for _, t := range b.components {
		registerComponentType(t)
	}

	log := b.log
	if log == nil {
		log = slog.Default()
	}

	a := &Application{
		id:         uuid.New(),
		api:        api,
		state:      b.state,
		clock:      b.clock,
		onFatal:    b.onFatal,
		tasks:      newTaskQueue(),
		resources:  make(map[reflect.Type]unsafe.Pointer),
		injections: make(map[reflect.Type]unsafe.Pointer),
		adhoc:      make(map[reflect.Type]*SystemMeta),
	}
	a.log = log.With("instance", a.id.String())
	a.world = NewWorld(api, b.config.Registry)
	a.world.log = a.log
	a.world.onFatal = func(err error) {
		a.fatal(&FatalError{Op: "facet", Resource: a.resource, Err: err})
	}
	a.decoder = NewDecoder(api, a.world.objects, a.log)
	a.configure(b.config)
	a.sched = newScheduler(a)
	a.ctx = &Context{World: a.world, Application: a, Logger: a.log}

	var hooks []func(*Application)
	for _, f := range b.bundles {
		bund := f(a)
		a.bundles = append(a.bundles, bund)
		hooks = append(hooks, bund.postInitHooks...)
	}

	for _, res := range b.resources {
		t, ptr := pointerOf(res)
		a.resources[t] = ptr
	}
	for _, inj := range b.injections {
		t, ptr := pointerOf(inj)
		a.injections[t] = ptr
	}

	if err := a.build(); err != nil {
		return nil, fmt.Errorf("build systems: %w", err)
	}

	for _, hook := range hooks {
		hook(a)
	}
	return a, nil
}

// build analyzes every bundle and registers its handlers and loops.
func (a *Application) build() error {
	for _, b := range a.bundles {
		if err := b.build(); err != nil {
			return fmt.Errorf("bundle %s: %w", b.name, err)
		}
		for _, h := range b.handlers {
			if err := a.registerHandler(h, b); err != nil {
				return fmt.Errorf("bundle %s: %w", b.name, err)
			}
		}
		for i, reg := range b.loops {
			a.sched.addLoop(reg.system, b.loopMeta[i], b, reg.interval, reg.stage)
		}
	}
	return nil
}
