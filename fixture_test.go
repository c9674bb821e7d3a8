package altecs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oriumgames/altecs"
	"github.com/oriumgames/altecs/hosttest"
)

// fixture runs one resource on an in-memory host with a manual clock.
type fixture struct {
	host   *hosttest.Host
	rt     *altecs.Runtime
	res    altecs.NativeHandle
	app    *altecs.Application
	now    time.Time
	fatals []*altecs.FatalError
}

func newFixture(t *testing.T, state altecs.State, configure func(b *altecs.Builder)) *fixture {
	t.Helper()

	f := &fixture{
		host: hosttest.NewHost(),
		now:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	loader := altecs.NewStaticLoader(map[string]altecs.MainFunc{
		"test": func(api altecs.NativeAPI) (*altecs.Application, error) {
			b := altecs.NewBuilder(state).Clock(func() time.Time { return f.now })
			if configure != nil {
				configure(b)
			}
			return b.Build(api)
		},
	})
	f.rt = altecs.NewRuntime(f.host, loader, altecs.DefaultConfig())
	f.rt.OnFatal = func(err *altecs.FatalError) { f.fatals = append(f.fatals, err) }
	require.True(t, altecs.Main(f.host, f.rt))

	res, ok := f.host.StartResource(altecs.ResourceInfo{Name: "test"})
	require.True(t, ok)
	f.res = res

	app, ok := f.rt.Resources().Get(res)
	require.True(t, ok)
	f.app = app
	return f
}

func (f *fixture) world() *altecs.World {
	return f.app.World()
}

func (f *fixture) tick(d time.Duration) {
	f.now = f.now.Add(d)
	f.host.Tick()
}

// player connects a player and returns its handle and entity.
func (f *fixture) player(t *testing.T, name string) (altecs.NativeHandle, altecs.EntityID) {
	t.Helper()
	h := f.host.Connect(name)
	id, err := f.world().Objects().Resolve(altecs.KindPlayer, h)
	require.NoError(t, err)
	return h, id
}
