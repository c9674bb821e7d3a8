package altecs

import (
	"fmt"
	"reflect"
	"time"
	"unsafe"
)

// Bundle groups related handlers, systems, and resources together.
// Bundles are registered with the Builder and keep features of one logic
// module apart from each other.
type Bundle struct {
	name string

	handlers []any
	loops    []loopRegistration
	tasks    []taskRegistration

	// resources holds bundle-level resources keyed by their element type
	resources map[reflect.Type]unsafe.Pointer

	postInitHooks []func(*Application)

	// meta holds computed metadata for systems
	loopMeta []*SystemMeta
	taskMeta map[reflect.Type]*SystemMeta
}

type loopRegistration struct {
	system   Runnable
	interval time.Duration
	stage    Stage
}

type taskRegistration struct {
	system Runnable
	stage  Stage
}

// NewBundle creates a new bundle with the given name.
func NewBundle(name string) *Bundle {
	return &Bundle{
		name:      name,
		resources: make(map[reflect.Type]unsafe.Pointer),
		taskMeta:  make(map[reflect.Type]*SystemMeta),
	}
}

// Name returns the bundle name.
func (b *Bundle) Name() string {
	return b.name
}

// Resource registers a bundle-level resource. res must be a pointer; systems
// of this bundle receive it through fields tagged altecs:"res".
func (b *Bundle) Resource(res any) *Bundle {
	t, ptr := pointerOf(res)
	b.resources[t] = ptr
	return b
}

// PostInit registers a hook run once the Application is built.
func (b *Bundle) PostInit(hook func(*Application)) *Bundle {
	b.postInitHooks = append(b.postInitHooks, hook)
	return b
}

// Build returns a callback function that returns this bundle.
// This allows for cleaner inline bundle initialization:
//
//	bund := altecs.NewBundle("gameplay").
//	    Handler(&SpawnHandler{}).
//	    Build()
//
//	app, err := altecs.NewBuilder(state).
//	    Bundle(bund).
//	    Build(api)
func (b *Bundle) Build() func(*Application) *Bundle {
	return func(*Application) *Bundle {
		return b
	}
}

// Handler registers an event handler.
// Handlers are structs with methods taking a single event, like
// HandleConnect(*altecs.EventPlayerConnect).
func (b *Bundle) Handler(h any) *Bundle {
	b.handlers = append(b.handlers, h)
	return b
}

// Loop registers a loop system that runs at fixed intervals.
// Interval of 0 means the loop runs every tick.
func (b *Bundle) Loop(sys Runnable, interval time.Duration, stage Stage) *Bundle {
	b.loops = append(b.loops, loopRegistration{
		system:   sys,
		interval: interval,
		stage:    stage,
	})
	return b
}

// Task registers a task type and the stage it runs in.
// Tasks are one-shot systems scheduled dynamically; unregistered task types
// are analyzed on first use and run in the Default stage.
func (b *Bundle) Task(sys Runnable, stage Stage) *Bundle {
	b.tasks = append(b.tasks, taskRegistration{
		system: sys,
		stage:  stage,
	})
	return b
}

// build analyzes all loops and tasks and computes their metadata.
func (b *Bundle) build() error {
	for _, reg := range b.loops {
		meta, err := analyzeSystem(reflect.TypeOf(reg.system))
		if err != nil {
			return err
		}
		meta.Stage = reg.stage
		b.loopMeta = append(b.loopMeta, meta)
	}

	for _, reg := range b.tasks {
		t := pointerElem(reflect.TypeOf(reg.system))
		meta, err := analyzeSystem(t)
		if err != nil {
			return err
		}
		meta.Stage = reg.stage
		b.taskMeta[t] = meta
	}

	return nil
}

// getTaskMeta retrieves task metadata by type.
func (b *Bundle) getTaskMeta(t reflect.Type) *SystemMeta {
	return b.taskMeta[pointerElem(t)]
}

// getResource retrieves a bundle resource by element type.
func (b *Bundle) getResource(t reflect.Type) unsafe.Pointer {
	return b.resources[t]
}

// pointerOf returns the element type and address of a pointer value.
func pointerOf(v any) (reflect.Type, unsafe.Pointer) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		panic(fmt.Sprintf("altecs: resource must be a non-nil pointer, got %T", v))
	}
	return rv.Type().Elem(), rv.UnsafePointer()
}
