package altecs

import (
	"errors"
	"log/slog"
)

// ScriptRuntime is the callback surface the host invokes for every resource
// of the registered resource type. Callbacks for one resource are never
// concurrent.
type ScriptRuntime interface {
	Create(resource NativeHandle) bool
	Destroy(resource NativeHandle)
	Start(resource NativeHandle) bool
	Stop(resource NativeHandle) bool
	OnEvent(resource, event NativeHandle) bool
	OnTick(resource NativeHandle)
	OnCreateBaseObject(resource, object NativeHandle)
	OnRemoveBaseObject(resource, object NativeHandle)
}

// Runtime implements ScriptRuntime on top of a ResourceRegistry. It loads
// an Application per resource and forwards every callback to it.
type Runtime struct {
	api       NativeAPI
	loader    Loader
	cfg       Config
	resources *ResourceRegistry
	log       *slog.Logger

	// OnFatal receives every *FatalError after it is logged. The default
	// panics, terminating the host process.
	OnFatal func(err *FatalError)
}

var _ ScriptRuntime = (*Runtime)(nil)

// NewRuntime creates a runtime loading modules with loader. Logs go to the
// host console at cfg's level, and every loaded Application runs with cfg.
func NewRuntime(api NativeAPI, loader Loader, cfg Config) *Runtime {
	log := slog.New(NewHostHandler(api, cfg.Level()))
	return &Runtime{
		api:       api,
		loader:    loader,
		cfg:       cfg,
		resources: NewResourceRegistry(log),
		log:       log,
	}
}

// Main registers rt with the host under the configured resource type.
// A host shim calls it from its entry point.
func Main(api NativeAPI, rt *Runtime) bool {
	if !api.RegisterScriptRuntime(rt.cfg.ResourceType, rt) {
		rt.log.Error("altecs: register runtime failed", "type", rt.cfg.ResourceType)
		return false
	}
	rt.log.Info("altecs: runtime registered", "type", rt.cfg.ResourceType, "sdk", SDKVersion, "version", Version)
	return true
}

// Resources returns the registry of loaded resources.
func (rt *Runtime) Resources() *ResourceRegistry {
	return rt.resources
}

// Logger returns the runtime's logger.
func (rt *Runtime) Logger() *slog.Logger {
	return rt.log
}

// Create loads the Application of resource.
func (rt *Runtime) Create(resource NativeHandle) bool {
	info := rt.api.Resource(resource)
	ok := rt.resources.OnCreate(resource, func() (*Application, error) {
		main, err := rt.loader.Load(info)
		if err != nil {
			return nil, err
		}
		app, err := main(rt.api)
		if err != nil {
			return nil, errors.Join(ErrLoaderFailed, err)
		}
		if app != nil {
			app.configure(rt.cfg)
			app.bind(resource, rt.log.With("name", info.Name), func(err error) {
				rt.fatal("system", resource, err)
			})
		}
		return app, nil
	})
	if ok {
		rt.log.Info("altecs: resource created", "resource", resource.String(), "name", info.Name)
	}
	return ok
}

// Destroy drops the Application of resource.
func (rt *Runtime) Destroy(resource NativeHandle) {
	if rt.resources.OnDestroy(resource) {
		rt.log.Info("altecs: resource destroyed", "resource", resource.String())
		return
	}
	rt.log.Warn("altecs: destroy unknown resource", "resource", resource.String())
}

// Start runs the State's OnStart. An unknown resource is logged and
// reported as a failed start.
func (rt *Runtime) Start(resource NativeHandle) bool {
	err := rt.resources.Dispatch(resource, func(a *Application) error {
		a.Start()
		return nil
	})
	if err != nil {
		rt.log.Error("altecs: start", "resource", resource.String(), "err", err)
		return false
	}
	return true
}

// Stop runs the State's OnStop. An unknown resource is logged and reported
// as a failed stop.
func (rt *Runtime) Stop(resource NativeHandle) bool {
	err := rt.resources.Dispatch(resource, func(a *Application) error {
		a.Stop()
		return nil
	})
	if err != nil {
		rt.log.Error("altecs: stop", "resource", resource.String(), "err", err)
		return false
	}
	return true
}

// OnEvent decodes and dispatches a host event.
func (rt *Runtime) OnEvent(resource, event NativeHandle) bool {
	err := rt.resources.Dispatch(resource, func(a *Application) error {
		return a.HandleEvent(event)
	})
	if err != nil {
		rt.fatal("OnEvent", resource, err)
	}
	return true
}

// OnTick runs one tick of the resource's Application.
func (rt *Runtime) OnTick(resource NativeHandle) {
	err := rt.resources.Dispatch(resource, func(a *Application) error {
		a.Tick()
		return nil
	})
	if err != nil {
		rt.fatal("OnTick", resource, err)
	}
}

// OnCreateBaseObject mirrors a new host object.
func (rt *Runtime) OnCreateBaseObject(resource, object NativeHandle) {
	err := rt.resources.Dispatch(resource, func(a *Application) error {
		return a.CreateObject(object)
	})
	if err != nil {
		rt.fatal("OnCreateBaseObject", resource, err)
	}
}

// OnRemoveBaseObject drops the mirror of a removed host object.
func (rt *Runtime) OnRemoveBaseObject(resource, object NativeHandle) {
	err := rt.resources.Dispatch(resource, func(a *Application) error {
		return a.RemoveObject(object)
	})
	if err != nil {
		rt.fatal("OnRemoveBaseObject", resource, err)
	}
}

// fatal logs err as a *FatalError and hands it to OnFatal.
func (rt *Runtime) fatal(op string, resource NativeHandle, err error) {
	var fe *FatalError
	if !errors.As(err, &fe) {
		fe = &FatalError{Op: op, Resource: resource, Err: err}
	}
	rt.log.Error("altecs: fatal", "op", fe.Op, "resource", fe.Resource.String(), "err", fe.Err)

	if rt.OnFatal != nil {
		rt.OnFatal(fe)
		return
	}
	panic(fe)
}
