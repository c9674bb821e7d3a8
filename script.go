package altecs

// ClientScriptFunc handles a script event sent by a player's client.
type ClientScriptFunc func(ctx *Context, player EntityID, args []MValue)

// ServerScriptFunc handles a script event raised by another server resource.
type ServerScriptFunc func(ctx *Context, args []MValue)

// ScriptRouter routes script events to functions by event name.
//
// Register it as a bundle handler to route every script event the
// Application receives, or call Route from State.HandleEvent.
//
//	router := altecs.NewScriptRouter().
//	    OnClient("chat:send", onChat)
//	bundle.Handler(router)
type ScriptRouter struct {
	App *Application

	client map[string][]ClientScriptFunc
	server map[string][]ServerScriptFunc
}

// NewScriptRouter creates an empty router.
func NewScriptRouter() *ScriptRouter {
	return &ScriptRouter{
		client: make(map[string][]ClientScriptFunc),
		server: make(map[string][]ServerScriptFunc),
	}
}

// OnClient adds fn for client script events called name.
func (r *ScriptRouter) OnClient(name string, fn ClientScriptFunc) *ScriptRouter {
	r.client[name] = append(r.client[name], fn)
	return r
}

// OnServer adds fn for server script events called name.
func (r *ScriptRouter) OnServer(name string, fn ServerScriptFunc) *ScriptRouter {
	r.server[name] = append(r.server[name], fn)
	return r
}

// Route calls the functions registered for a script event and reports
// whether any matched. Other events are ignored.
func (r *ScriptRouter) Route(ctx *Context, ev Event) bool {
	switch ev := ev.(type) {
	case *EventClientScript:
		fns := r.client[ev.Name]
		for _, fn := range fns {
			fn(ctx, ev.Target, ev.Args)
		}
		return len(fns) > 0
	case *EventServerScript:
		fns := r.server[ev.Name]
		for _, fn := range fns {
			fn(ctx, ev.Args)
		}
		return len(fns) > 0
	}
	return false
}

// HandleClientScript routes client script events when the router is
// registered as a handler.
func (r *ScriptRouter) HandleClientScript(ev *EventClientScript) {
	r.Route(r.App.ctx, ev)
}

// HandleServerScript routes server script events when the router is
// registered as a handler.
func (r *ScriptRouter) HandleServerScript(ev *EventServerScript) {
	r.Route(r.App.ctx, ev)
}
