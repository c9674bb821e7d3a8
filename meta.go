package altecs

import (
	"fmt"
	"reflect"
)

var (
	worldPtrType = reflect.TypeFor[*World]()
	appPtrType   = reflect.TypeFor[*Application]()
	entityIDType = reflect.TypeFor[EntityID]()
)

// SystemMeta holds pre-computed metadata about a system type.
// This is computed once at registration time and reused for all executions.
type SystemMeta struct {
	// Type is the reflect.Type of the system struct
	Type reflect.Type

	// Name is the type name for logs
	Name string

	// RequireMask is the bitmask of required components
	RequireMask Bitmask

	// ExcludeMask is the bitmask of excluded components (Without[T])
	ExcludeMask Bitmask

	// Fields holds injection metadata for each field
	Fields []FieldMeta

	// Stage is the execution stage
	Stage Stage

	// PerEntity is set when the system reads components or filters on them,
	// in which case it runs once for every matching entity.
	PerEntity bool
}

// FieldMeta holds metadata about a single injectable field.
type FieldMeta struct {
	// Offset is the field offset in the struct
	Offset uintptr

	// Name is the field name for error messages
	Name string

	// Kind is how the field is filled
	Kind InjectKind

	// ComponentID is the ID of the component type (for component fields)
	ComponentID ComponentID

	// ComponentType is the reflect.Type of the component or resource.
	// For payload fields, this stores the type of the field itself.
	ComponentType reflect.Type

	// Optional indicates the field can be nil
	Optional bool

	// RelationSourceIndex is the index in Fields of the component holding
	// the Relation or RelationSet this field follows
	RelationSourceIndex int

	// RelationFieldIndex is the struct field index of the Relation or
	// RelationSet inside the source component
	RelationFieldIndex int
}

// canRun reports whether an entity mask satisfies the system's filters.
func (m *SystemMeta) canRun(mask Bitmask) bool {
	return mask.ContainsAll(m.RequireMask) && !mask.ContainsAny(m.ExcludeMask)
}

// analyzeSystem analyzes a system type and returns its metadata.
func analyzeSystem(systemType reflect.Type) (*SystemMeta, error) {
	if systemType.Kind() == reflect.Pointer {
		systemType = systemType.Elem()
	}
	if systemType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("system must be a struct, got %v", systemType.Kind())
	}

	meta := &SystemMeta{
		Type: systemType,
		Name: systemType.Name(),
	}

	lastComponentIndex := -1

	for i := 0; i < systemType.NumField(); i++ {
		field := systemType.Field(i)
		tag := parseTag(field.Tag.Get(tagName))

		fieldMeta := FieldMeta{
			Offset:              field.Offset,
			Name:                field.Name,
			Optional:            tag.Optional,
			RelationSourceIndex: -1,
		}

		switch {
		case field.Type == worldPtrType:
			fieldMeta.Kind = InjectWorld

		case field.Type == appPtrType:
			fieldMeta.Kind = InjectApplication

		case field.Type == entityIDType && field.IsExported():
			fieldMeta.Kind = InjectEntity
			meta.PerEntity = true

		case field.Type.Implements(phantomTypeInfoType):
			compType, isWithout, _ := getPhantomInfo(field.Type)
			compID := registerComponentType(compType)
			if isWithout {
				fieldMeta.Kind = InjectPhantomWithout
				meta.ExcludeMask.Set(compID)
			} else {
				fieldMeta.Kind = InjectPhantomWith
				meta.RequireMask.Set(compID)
			}
			fieldMeta.ComponentID = compID
			fieldMeta.ComponentType = compType
			meta.PerEntity = true

		case tag.Inject:
			fieldMeta.Kind = InjectInjection
			fieldMeta.ComponentType = pointerElem(field.Type)

		case tag.Resource:
			fieldMeta.Kind = InjectResource
			fieldMeta.ComponentType = pointerElem(field.Type)

		case tag.Relation:
			if err := analyzeRelation(meta, &fieldMeta, field, lastComponentIndex); err != nil {
				return nil, err
			}

		case field.Type.Kind() == reflect.Pointer && field.Type.Elem().Kind() == reflect.Struct:
			compType := field.Type.Elem()
			compID := registerComponentType(compType)
			fieldMeta.Kind = InjectComponent
			fieldMeta.ComponentID = compID
			fieldMeta.ComponentType = compType
			if !tag.Optional {
				meta.RequireMask.Set(compID)
			}
			lastComponentIndex = len(meta.Fields)
			meta.PerEntity = true

		default:
			fieldMeta.Kind = InjectPayload
			fieldMeta.ComponentType = field.Type
		}

		meta.Fields = append(meta.Fields, fieldMeta)
	}

	return meta, nil
}

// analyzeRelation links a rel-tagged field to the Relation or RelationSet in
// the closest preceding component field.
func analyzeRelation(meta *SystemMeta, fm *FieldMeta, field reflect.StructField, source int) error {
	compType := field.Type
	isSlice := compType.Kind() == reflect.Slice
	if isSlice {
		compType = compType.Elem()
	}
	compType = pointerElem(compType)

	if source < 0 {
		return fmt.Errorf("system %s: relation field %s has no preceding component field", meta.Name, field.Name)
	}

	fm.ComponentID = registerComponentType(compType)
	fm.ComponentType = compType
	fm.RelationSourceIndex = source
	fm.Kind = InjectRelation
	if isSlice {
		fm.Kind = InjectRelationSlice
	}

	sourceType := meta.Fields[source].ComponentType
	for j := 0; j < sourceType.NumField(); j++ {
		ptr := reflect.New(sourceType.Field(j).Type).Interface()
		if isSlice {
			if rs, ok := ptr.(relationSetSource); ok && rs.TargetType() == compType {
				fm.RelationFieldIndex = j
				return nil
			}
			continue
		}
		if r, ok := ptr.(relationSource); ok && r.TargetType() == compType {
			fm.RelationFieldIndex = j
			return nil
		}
	}
	return fmt.Errorf("system %s: component %s has no relation to %s for field %s",
		meta.Name, sourceType.Name(), compType.Name(), field.Name)
}

func pointerElem(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}
