// Package blueprint derives the template shape of a game object type and keeps
// tables of template records.
//
// A blueprint describes a kind of game object: every data field of the entity
// except its identifier. Function-valued fields are behaviour and never part of a
// blueprint. Go has no type-level projection, so each entity kind declares its
// blueprint struct by hand and Verify checks the two against each other.
package blueprint

import (
	"fmt"
	"reflect"
	"sort"
	"unicode"
)

// IdentityField is the key of the instance identifier, never part of a blueprint.
const IdentityField = "id"

// Shape maps field keys to their types. A key is the Go field name with its
// leading upper-case run lowered (Name -> name, AttributePoints -> attributePoints,
// ID -> id). Embedded structs are flattened.
type Shape map[string]reflect.Type

// Keys returns the sorted field keys.
func (s Shape) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key is part of the shape.
func (s Shape) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Projection returns the blueprint shape of entity type t: all of its fields
// minus function-valued fields minus the identifier.
func Projection(t reflect.Type) Shape {
	out := make(Shape)
	for k, typ := range fieldsOf(t) {
		if k == IdentityField || typ.Kind() == reflect.Func {
			continue
		}
		out[k] = typ
	}
	return out
}

// ProjectionOf is Projection for a type parameter.
func ProjectionOf[T any]() Shape {
	return Projection(reflect.TypeFor[T]())
}

// ShapeOf returns every field of B, including any identifier or function field.
func ShapeOf[B any]() Shape {
	return fieldsOf(reflect.TypeFor[B]())
}

// Verify checks that blueprint type B is exactly the projection of entity type T.
func Verify[T, B any]() error {
	return verify(reflect.TypeFor[T](), reflect.TypeFor[B]())
}

func verify(entity, bp reflect.Type) error {
	want := Projection(entity)
	got := fieldsOf(bp)

	var (
		behaviour  []string
		missing    []string
		unexpected []string
		mismatched []string
	)
	for _, k := range got.Keys() {
		typ := got[k]
		switch {
		case k == IdentityField:
		case typ.Kind() == reflect.Func:
			behaviour = append(behaviour, k)
		case !want.Has(k):
			unexpected = append(unexpected, k)
		case want[k] != typ:
			mismatched = append(mismatched, fmt.Sprintf("%s: want %s, got %s", k, want[k], typ))
		}
	}
	for _, k := range want.Keys() {
		if !got.Has(k) {
			missing = append(missing, k)
		}
	}

	if !got.Has(IdentityField) && len(behaviour)+len(missing)+len(unexpected)+len(mismatched) == 0 {
		return nil
	}

	data := map[string]any{
		"entity":    entity.String(),
		"blueprint": bp.String(),
	}
	if got.Has(IdentityField) {
		data["identity_field"] = IdentityField
	}
	if len(behaviour) != 0 {
		data["behaviour_fields"] = behaviour
	}
	if len(missing) != 0 {
		data["missing"] = missing
	}
	if len(unexpected) != 0 {
		data["unexpected"] = unexpected
	}
	if len(mismatched) != 0 {
		data["type_mismatch"] = mismatched
	}
	return ErrShapeMismatch.WithDataMap(data)
}

type fieldInfo struct {
	typ   reflect.Type
	depth int
}

func fieldsOf(t reflect.Type) Shape {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := make(Shape)
	if t == nil || t.Kind() != reflect.Struct {
		return out
	}
	found := make(map[string]fieldInfo)
	collect(t, 0, found, map[reflect.Type]bool{})
	for k, f := range found {
		out[k] = f.typ
	}
	return out
}

// collect flattens embedded structs. A shallower field shadows a deeper one, the
// way Go resolves promoted fields.
func collect(t reflect.Type, depth int, found map[string]fieldInfo, visiting map[reflect.Type]bool) {
	if visiting[t] {
		return
	}
	visiting[t] = true
	defer delete(visiting, t)

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			inner := f.Type
			if inner.Kind() == reflect.Pointer {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				collect(inner, depth+1, found, visiting)
				continue
			}
		}
		key := fieldKey(f.Name)
		if prev, ok := found[key]; ok && prev.depth <= depth {
			continue
		}
		found[key] = fieldInfo{typ: f.Type, depth: depth}
	}
}

func fieldKey(name string) string {
	r := []rune(name)
	for i := 0; i < len(r) && unicode.IsUpper(r[i]); i++ {
		if i > 0 && i+1 < len(r) && unicode.IsLower(r[i+1]) {
			break
		}
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}
