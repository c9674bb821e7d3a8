package altecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriumgames/altecs"
	"github.com/oriumgames/altecs/hosttest"
)

type vip struct{ Level int }

type label struct{ text string }

type settings struct{ greeting string }

type missing struct{}

type greeter struct {
	Entity   altecs.EntityID
	Player   *altecs.Player
	Label    *label    `altecs:"res"`
	Settings *settings `altecs:"inj"`
	_        altecs.Without[vip]
	greeted  *[]string
}

func (g *greeter) HandleConnect(ev *altecs.EventPlayerConnect) {
	*g.greeted = append(*g.greeted, g.Settings.greeting+" "+g.Player.Name()+" from "+g.Label.text)
}

func (g *greeter) HandleDisconnect(ev *altecs.EventPlayerDisconnect) {
	*g.greeted = append(*g.greeted, "bye "+g.Player.Name())
}

type consoleLog struct {
	App  *altecs.Application
	seen *[]string
}

func (c *consoleLog) OnCommand(ev *altecs.EventConsoleCommand) {
	if c.App != nil {
		*c.seen = append(*c.seen, ev.Name)
	}
}

type needsMissing struct {
	Missing *missing `altecs:"res"`
	runs    *int
}

func (n *needsMissing) OnCommand(*altecs.EventConsoleCommand) { *n.runs++ }

type recordingState struct {
	altecs.NopState
	calls []string
}

func (s *recordingState) OnStart(*altecs.Context) { s.calls = append(s.calls, "start") }
func (s *recordingState) OnStop(*altecs.Context)  { s.calls = append(s.calls, "stop") }
func (s *recordingState) Tick(*altecs.Context)    { s.calls = append(s.calls, "tick") }

func (s *recordingState) HandleEvent(_ *altecs.Context, ev altecs.Event) {
	if cmd, ok := ev.(*altecs.EventConsoleCommand); ok {
		s.calls = append(s.calls, "event "+cmd.Name)
	}
}

func TestHandlerRunsAgainstSubject(t *testing.T) {
	var greeted []string
	g := &greeter{greeted: &greeted}
	f := newFixture(t, nil, func(b *altecs.Builder) {
		b.Resource(&label{text: "app"}).
			Injection(&settings{greeting: "hello"}).
			Bundle(altecs.NewBundle("greet").Resource(&label{text: "bundle"}).Handler(g).Build())
	})

	alice, _ := f.player(t, "alice")
	bob, bobID := f.player(t, "bob")
	require.NoError(t, altecs.Add(f.world(), bobID, &vip{Level: 1}))

	f.host.Fire(hosttest.PlayerConnect(alice))
	f.host.Fire(hosttest.PlayerConnect(bob))
	f.host.Fire(hosttest.PlayerDisconnect(alice, "quit"))

	assert.Equal(t, []string{"hello alice from bundle", "bye alice"}, greeted)
	assert.Nil(t, g.Player)
	assert.Nil(t, g.Label)
	assert.Nil(t, g.Settings)
	assert.True(t, g.Entity.IsZero())
	assert.Equal(t, "app", altecs.AppResource[label](f.app).text)
	assert.Equal(t, "hello", altecs.AppInjection[settings](f.app).greeting)
	assert.Empty(t, f.fatals)
}

func TestGlobalHandlerAndMissingResource(t *testing.T) {
	var seen []string
	runs := 0
	f := newFixture(t, nil, func(b *altecs.Builder) {
		b.Bundle(altecs.NewBundle("console").
			Handler(&consoleLog{seen: &seen}).
			Handler(&needsMissing{runs: &runs}).
			Build())
	})

	f.host.Fire(hosttest.ConsoleCommand("status"))
	assert.Equal(t, []string{"status"}, seen)
	assert.Zero(t, runs, "a handler missing a resource is skipped")
}

func TestStateCallbacks(t *testing.T) {
	state := &recordingState{}
	f := newFixture(t, state, nil)

	f.host.Fire(hosttest.ConsoleCommand("status"))
	f.tick(0)
	require.True(t, f.host.StopResource(f.res))

	assert.Equal(t, []string{"start", "event status", "tick", "stop"}, state.calls)
	assert.Zero(t, f.rt.Resources().Len())
}

func TestHandlerRegistrationErrors(t *testing.T) {
	host := hosttest.NewHost()

	_, err := altecs.NewBuilder(nil).
		Bundle(altecs.NewBundle("bad").Handler(&label{}).Build()).
		Build(host)
	assert.ErrorContains(t, err, "no event methods")

	_, err = altecs.NewBuilder(nil).
		Bundle(altecs.NewBundle("bad").Handler(consoleLog{}).Build()).
		Build(host)
	assert.ErrorContains(t, err, "must be a pointer")

	_, err = altecs.NewBuilder(nil).Build(nil)
	assert.Error(t, err)
}

func TestHandlerPanicIsFatal(t *testing.T) {
	f := newFixture(t, nil, func(b *altecs.Builder) {
		b.Bundle(altecs.NewBundle("console").Handler(&consoleLog{}).Build())
	})

	f.host.Fire(hosttest.ConsoleCommand("status"))

	require.Len(t, f.fatals, 1)
	assert.Equal(t, "handler consoleLog", f.fatals[0].Op)
	assert.ErrorIs(t, f.fatals[0], altecs.ErrSystemPanic)
}

func TestScriptRouter(t *testing.T) {
	var got []string
	router := altecs.NewScriptRouter().
		OnClient("ping", func(ctx *altecs.Context, player altecs.EntityID, args []altecs.MValue) {
			name := altecs.Get[altecs.Player](ctx.World, player).Name()
			got = append(got, "client "+name+" "+args[0].String())
		}).
		OnServer("ping", func(ctx *altecs.Context, args []altecs.MValue) {
			got = append(got, "server "+args[0].String())
		})
	f := newFixture(t, nil, func(b *altecs.Builder) {
		b.Bundle(altecs.NewBundle("scripts").Handler(router).Build())
	})

	h, _ := f.player(t, "alice")
	f.host.Fire(hosttest.ClientScript(h, "ping", altecs.IntValue(1)))
	f.host.Fire(hosttest.ServerScript("ping", altecs.BoolValue(true)))
	f.host.Fire(hosttest.ClientScript(h, "pong"))

	assert.Equal(t, []string{"client alice 1L", "server true"}, got)
	assert.Nil(t, router.App)
}
