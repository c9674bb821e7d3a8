package altecs

import (
	"reflect"
	"unsafe"
)

// injectSystem fills the fields of system for one run against entity id.
// Global systems pass the zero id. It reports false when a required
// component, relation, or resource is missing and the run must be skipped.
func injectSystem(system any, id EntityID, meta *SystemMeta, bundle *Bundle, app *Application) bool {
	base := reflect.ValueOf(system).UnsafePointer()
	w := app.world

	for i := range meta.Fields {
		field := &meta.Fields[i]

		switch field.Kind {
		case InjectWorld:
			setFieldPtr(base, field.Offset, unsafe.Pointer(w))

		case InjectApplication:
			setFieldPtr(base, field.Offset, unsafe.Pointer(app))

		case InjectEntity:
			*(*EntityID)(unsafe.Add(base, field.Offset)) = id

		case InjectComponent:
			ptr := w.component(id, field.ComponentID)
			if ptr == nil && !field.Optional {
				return false
			}
			setFieldPtr(base, field.Offset, ptr)

		case InjectRelation:
			target, ok := relationTarget(base, meta, field)
			var ptr unsafe.Pointer
			if ok {
				ptr = w.component(target, field.ComponentID)
			}
			if ptr == nil && !field.Optional {
				return false
			}
			setFieldPtr(base, field.Offset, ptr)

		case InjectRelationSlice:
			slice := reflect.MakeSlice(reflect.SliceOf(reflect.PointerTo(field.ComponentType)), 0, 0)
			for _, target := range relationTargets(base, meta, field, w) {
				if ptr := w.component(target, field.ComponentID); ptr != nil {
					slice = reflect.Append(slice, reflect.NewAt(field.ComponentType, ptr))
				}
			}
			reflect.NewAt(slice.Type(), unsafe.Add(base, field.Offset)).Elem().Set(slice)

		case InjectResource:
			res := app.resourceFor(bundle, field.ComponentType)
			if res == nil {
				return false
			}
			setFieldPtr(base, field.Offset, res)

		case InjectInjection:
			inj := app.injection(field.ComponentType)
			if inj == nil {
				return false
			}
			setFieldPtr(base, field.Offset, inj)

		case InjectPhantomWith, InjectPhantomWithout, InjectPayload:
			continue
		}
	}

	return true
}

// zeroSystem clears every injected field so nothing outlives the run.
// Payload fields are kept; they belong to the system.
func zeroSystem(system any, meta *SystemMeta) {
	base := reflect.ValueOf(system).UnsafePointer()

	for i := range meta.Fields {
		field := &meta.Fields[i]

		switch field.Kind {
		case InjectWorld, InjectApplication, InjectComponent, InjectRelation, InjectResource, InjectInjection:
			setFieldPtr(base, field.Offset, nil)

		case InjectEntity:
			*(*EntityID)(unsafe.Add(base, field.Offset)) = EntityID{}

		case InjectRelationSlice:
			v := reflect.NewAt(reflect.SliceOf(reflect.PointerTo(field.ComponentType)), unsafe.Add(base, field.Offset)).Elem()
			v.Set(reflect.Zero(v.Type()))
		}
	}
}

// setFieldPtr sets a pointer field at the given offset.
func setFieldPtr(base unsafe.Pointer, offset uintptr, value unsafe.Pointer) {
	*(*unsafe.Pointer)(unsafe.Add(base, offset)) = value
}

// relationField returns the Relation or RelationSet a rel field follows, as
// stored in the already injected source component.
func relationField(base unsafe.Pointer, meta *SystemMeta, field *FieldMeta) (any, bool) {
	src := &meta.Fields[field.RelationSourceIndex]
	comp := *(*unsafe.Pointer)(unsafe.Add(base, src.Offset))
	if comp == nil {
		return nil, false
	}
	v := reflect.NewAt(src.ComponentType, comp).Elem().Field(field.RelationFieldIndex)
	return reflect.NewAt(v.Type(), v.Addr().UnsafePointer()).Interface(), true
}

func relationTarget(base unsafe.Pointer, meta *SystemMeta, field *FieldMeta) (EntityID, bool) {
	rel, ok := relationField(base, meta, field)
	if !ok {
		return EntityID{}, false
	}
	target := rel.(relationSource).relationTarget()
	return target, !target.IsZero()
}

func relationTargets(base unsafe.Pointer, meta *SystemMeta, field *FieldMeta, w *World) []EntityID {
	rel, ok := relationField(base, meta, field)
	if !ok {
		return nil
	}
	return rel.(relationSetSource).relationTargets(w)
}
