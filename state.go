package altecs

import "log/slog"

// State is the top-level logic of an Application. The Runtime calls it from
// the host's callback thread, never concurrently.
type State interface {
	// OnStart is called when the host starts the resource.
	OnStart(ctx *Context)
	// OnStop is called when the host stops the resource.
	OnStop(ctx *Context)
	// HandleEvent is called for every decoded host event, before bundle
	// handlers run.
	HandleEvent(ctx *Context, ev Event)
	// Tick is called once per host tick, before loops and tasks.
	Tick(ctx *Context)
}

// Context is passed to State callbacks.
type Context struct {
	World       *World
	Application *Application
	Logger      *slog.Logger
}

// NopState implements State with no-ops. Embed it to implement only the
// callbacks you need.
type NopState struct{}

func (NopState) OnStart(*Context)            {}
func (NopState) OnStop(*Context)             {}
func (NopState) HandleEvent(*Context, Event) {}
func (NopState) Tick(*Context)               {}
