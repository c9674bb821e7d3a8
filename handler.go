package altecs

import (
	"fmt"
	"reflect"
)

// handlerMeta holds a registered handler and the event types it accepts.
type handlerMeta struct {
	meta     *SystemMeta
	bundle   *Bundle
	instance any
	events   map[reflect.Type]int
}

var eventInterfaceType = reflect.TypeFor[Event]()

// registerHandler registers a handler with the application.
// Every exported method taking exactly one Event argument becomes an event
// listener; the method name does not matter.
func (a *Application) registerHandler(h any, bundle *Bundle) error {
	t := reflect.TypeOf(h)
	if t.Kind() != reflect.Pointer {
		return fmt.Errorf("handler %T: must be a pointer to a struct", h)
	}

	meta, err := analyzeSystem(t)
	if err != nil {
		return err
	}

	events := make(map[reflect.Type]int)
	for i := 0; i < t.NumMethod(); i++ {
		method := t.Method(i)
		if method.Type.NumIn() != 2 {
			continue
		}
		in := method.Type.In(1)
		if !in.Implements(eventInterfaceType) {
			continue
		}
		events[in] = i
	}
	if len(events) == 0 {
		return fmt.Errorf("handler %s: no event methods", meta.Name)
	}

	a.handlers = append(a.handlers, &handlerMeta{
		meta:     meta,
		bundle:   bundle,
		instance: h,
		events:   events,
	})
	return nil
}

// dispatchHandlers runs every handler listening for the event's type.
// Handlers that read components run against the event's subject entity and
// are skipped when the subject lacks them.
func (a *Application) dispatchHandlers(ev Event) {
	eventType := reflect.TypeOf(ev)
	subject, _ := Subject(ev)

	for _, hm := range a.handlers {
		methodIdx, ok := hm.events[eventType]
		if !ok {
			continue
		}

		if hm.meta.PerEntity {
			mask, alive := a.world.mask(subject)
			if !alive || !hm.meta.canRun(mask) {
				continue
			}
		}

		if !injectSystem(hm.instance, subject, hm.meta, hm.bundle, a) {
			zeroSystem(hm.instance, hm.meta)
			continue
		}

		a.runGuarded("handler", hm.meta.Name, func() {
			reflect.ValueOf(hm.instance).Method(methodIdx).Call([]reflect.Value{reflect.ValueOf(ev)})
		})

		zeroSystem(hm.instance, hm.meta)
	}
}

// Subject returns the entity an event is primarily about: the player that
// connected, was damaged, or entered a vehicle, the entity whose meta changed,
// the source of an explosion or shot, and the entity entering a collision
// shape. Global events have no subject.
func Subject(ev Event) (EntityID, bool) {
	switch e := ev.(type) {
	case *EventPlayerConnect:
		return e.Target, true
	case *EventPlayerDisconnect:
		return e.Target, true
	case *EventClientScript:
		return e.Target, true
	case *EventSyncedMetaChange:
		return e.Target, true
	case *EventStreamSyncedMetaChange:
		return e.Target, true
	case *EventPlayerDamage:
		return e.Target, true
	case *EventPlayerDeath:
		return e.Target, true
	case *EventExplosion:
		return e.Source, true
	case *EventWeaponDamage:
		return e.Source, true
	case *EventCollisionShape:
		return e.Entity, true
	case *EventPlayerEnterVehicle:
		return e.Player, true
	case *EventPlayerLeaveVehicle:
		return e.Player, true
	case *EventPlayerChangeVehicleSeat:
		return e.Player, true
	case *EventRemoveEntity:
		return e.Target, true
	default:
		return EntityID{}, false
	}
}
