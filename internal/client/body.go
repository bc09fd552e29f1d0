package client

import (
	"bytes"
	"encoding/json"
	"maps"
	"reflect"

	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// toObject normalises a request body to a JSON object. Maps and typed
// request structs are both accepted; anything that does not encode to a JSON
// object is a type error. The result is a fresh map, so callers may add keys
// without touching the caller's value.
func toObject(name string, body any) (map[string]any, error) {
	err := fastbill.TypeOf(body).MustBe(fastbill.KindObject)
	if err != nil {
		return nil, fastbill.NewTypeError(name+": "+err.Error(), nil)
	}

	if m, ok := body.(map[string]any); ok {
		return maps.Clone(m), nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fastbill.NewTypeError(name+" is not serializable", err)
	}

	encoded = bytes.TrimSpace(encoded)
	if len(encoded) == 0 || encoded[0] != '{' {
		return nil, fastbill.NewTypeError(name+": expected object, got "+jsonKind(encoded), nil)
	}

	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()

	var object map[string]any

	err = decoder.Decode(&object)
	if err != nil {
		return nil, fastbill.NewTypeError(name+" is not serializable", err)
	}

	return object, nil
}

// jsonKind names the top-level JSON kind of data for error messages.
func jsonKind(data []byte) string {
	if len(data) == 0 {
		return string(fastbill.KindUndefined)
	}

	switch data[0] {
	case '"':
		return string(fastbill.KindString)
	case 't', 'f':
		return string(fastbill.KindBoolean)
	case 'n':
		return "null"
	case '[':
		return "array"
	default:
		return string(fastbill.KindNumber)
	}
}

// field checks that object[key] is of the expected kind. label names the
// field in the error, e.g. "message.recipient.to".
func field(object map[string]any, key, label string, expected fastbill.Kind) (any, error) {
	value := object[key]

	err := fastbill.TypeOf(value).MustBe(expected)
	if err != nil {
		return nil, fastbill.NewTypeError(label+": "+err.Error(), nil)
	}

	return value, nil
}

// stringField is field for strings. Named string types and pointers to
// strings are accepted like plain strings.
func stringField(object map[string]any, key, label string) (string, error) {
	value, err := field(object, key, label, fastbill.KindString)
	if err != nil {
		return "", err
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}

	return rv.String(), nil
}

// bodyOrEmpty returns an empty object for a missing body.
func bodyOrEmpty(body any) any {
	if fastbill.KindOf(body) == fastbill.KindUndefined {
		return map[string]any{}
	}

	return body
}
