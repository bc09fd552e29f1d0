package fastbill

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Kind is the JSON-level kind a value is checked against.
type Kind string

// Kinds understood by the type guard.
const (
	KindObject    Kind = "object"
	KindNumber    Kind = "number"
	KindString    Kind = "string"
	KindBoolean   Kind = "boolean"
	KindUndefined Kind = "undefined"
	KindOther     Kind = "unknown"
)

// Guard checks a single value. Create one with TypeOf.
type Guard struct {
	value any
}

// TypeOf starts a type check on value.
//
//	if err := fastbill.TypeOf(id).MustBe(fastbill.KindNumber); err != nil {
//	    return err
//	}
func TypeOf(value any) Guard {
	return Guard{value: value}
}

// Kind returns the kind of the guarded value.
func (g Guard) Kind() Kind {
	return KindOf(g.value)
}

// MustBe returns a type error unless the guarded value is of the expected kind.
func (g Guard) MustBe(expected Kind) error {
	actual := KindOf(g.value)
	if actual == expected {
		return nil
	}

	return NewTypeError(fmt.Sprintf("expected %s, got %s", expected, actual), nil)
}

// KindOf classifies value. Maps, structs, slices and arrays are objects;
// nil and nil pointers are undefined.
func KindOf(value any) Kind {
	if value == nil {
		return KindUndefined
	}

	if _, ok := value.(json.Number); ok {
		return KindNumber
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return KindUndefined
		}

		rv = rv.Elem()
	}

	//nolint:exhaustive // remaining kinds have no JSON counterpart
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return KindUndefined
		}

		return KindObject
	case reflect.Struct, reflect.Array:
		return KindObject
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	default:
		return KindOther
	}
}
