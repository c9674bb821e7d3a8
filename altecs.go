// Package altecs mirrors objects owned by an alt:V-style game server host into a
// local entity store and translates host events into typed Go events.
//
// A host process owns every player, vehicle, blip, voice channel, collision shape
// and checkpoint. altecs never touches those objects directly: it keeps an opaque
// NativeHandle per object, maps it to a local EntityID, and attaches typed facets
// that forward to the host's NativeAPI. altecs provides:
//   - An ObjectRegistry keeping handle <-> entity maps in sync with the host
//   - Facet components mirroring the native interfaces an object implements
//   - A Decoder turning tagged host event records into closed-set Go events
//   - A ResourceRegistry hosting several logic modules behind one Runtime
//
// # Quick Start
//
// A logic module exposes a MainFunc that builds its Application:
//
//	func Main(api altecs.NativeAPI) (*altecs.Application, error) {
//	    bundle := altecs.NewBundle("freeroam").
//	        Handler(&SpawnHandler{}).
//	        Loop(&WeatherSync{}, time.Second, altecs.Default)
//
//	    return altecs.NewBuilder(&GameState{}).
//	        Bundle(bundle.Build()).
//	        Build(api)
//	}
//
// The host shim registers a Runtime once per process:
//
//	rt := altecs.NewRuntime(api, altecs.NewStaticLoader(map[string]altecs.MainFunc{
//	    "freeroam": freeroam.Main,
//	}), cfg)
//	altecs.Main(api, rt)
//
// # Facets
//
// Facets are components attached when the host announces an object:
//
//	p := altecs.Get[altecs.Player](w, id)
//	p.Spawn(mgl32.Vec3{0, 0, 71.2}, 0)
//	p.GiveWeapon(altecs.Hash("weapon_pistol"), 200, false)
//
// # Events
//
// Host events arrive already resolved to entity ids:
//
//	func (s *GameState) HandleEvent(ctx *altecs.Context, ev altecs.Event) {
//	    switch ev := ev.(type) {
//	    case *altecs.EventPlayerConnect:
//	        altecs.Get[altecs.Player](ctx.World, ev.Target).SetModel(0x705E61F2)
//	    }
//	}
//
// # Tag Reference
//
//	(none)           Required component, or injected by type (*World, *Application, EntityID)
//	altecs:"opt"     Optional component (nil if missing)
//	altecs:"rel"     Relation traversal from the preceding component
//	altecs:"res"     Bundle resource, falling back to Builder.Resource
//	altecs:"inj"     Builder.Injection value
package altecs

import "math"

// Version is the altecs version.
const Version = "1.0.0"

// SDKVersion is the host SDK version this package is built against.
const SDKVersion uint32 = 36

// Dimensions understood by the host.
const (
	DefaultDimension int32 = 0
	GlobalDimension  int32 = math.MinInt32
)
