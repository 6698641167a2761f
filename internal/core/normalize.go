package core

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// FallbackPrefix marks values the normalizer could not interpret and
// rendered through fmt.Sprint instead. Consumers can detect lossy
// conversion by looking for it.
const FallbackPrefix = "!str:"

// DepthPlaceholder replaces any subtree nested deeper than maxDepth. SDK
// result objects are expected to be shallow acyclic trees; this bound only
// exists so an unexpected cycle cannot recurse forever.
const DepthPlaceholder = "!max-depth"

// maxDepth bounds normalization recursion.
const maxDepth = 32

// TimeFormat is the fixed serialization format for temporal values.
// Timestamps are always strings, never epoch integers.
const TimeFormat = time.RFC3339Nano

// Normalizable lets an SDK result type supply its own JSON-safe
// representation instead of being reflected field by field.
type Normalizable interface {
	NormalizedValue() any
}

// Normalize converts an arbitrary value into a tree of JSON-safe values:
// nil, bool, int64, float64, string, []any and map[string]any. It is total:
// every input produces output, with uninterpretable values degraded to
// their string form (see FallbackPrefix) rather than failing.
//
// Map keys are coerced to strings; the JSON encoder does not preserve their
// insertion order and callers must not depend on it.
//
// Normalize is idempotent on its own output.
func Normalize(v any) any {
	return normalize(v, 0)
}

func normalize(v any, depth int) any {
	if depth > maxDepth {
		return DepthPlaceholder
	}
	if v == nil {
		return nil
	}

	if n, ok := v.(Normalizable); ok {
		return normalize(n.NormalizedValue(), depth+1)
	}
	if t, ok := v.(time.Time); ok {
		return t.Format(TimeFormat)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		// Converted through int64; brokerage quantities never approach the
		// uint64 upper half.
		return int64(rv.Uint())

	case reflect.Float32, reflect.Float64:
		return rv.Float()

	case reflect.String:
		return rv.String()

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface(), depth+1)

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = normalize(rv.Index(i).Interface(), depth+1)
		}
		return out

	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := coerceKey(iter.Key())
			out[key] = normalize(iter.Value().Interface(), depth+1)
		}
		return out

	case reflect.Struct:
		return normalizeStruct(rv, depth)

	default:
		// chan, func, complex, unsafe pointer: degrade to string form.
		return FallbackPrefix + fmt.Sprint(v)
	}
}

// normalizeStruct reflects the exported named fields of an SDK result
// object into a mapping of field name to normalized field value. The json
// tag name wins when present; fields tagged "-" are skipped; anonymous
// embedded structs are flattened the way encoding/json flattens them.
func normalizeStruct(rv reflect.Value, depth int) any {
	out := make(map[string]any)
	collectFields(rv, depth, out)
	return out
}

func collectFields(rv reflect.Value, depth int, out map[string]any) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		if field.Anonymous {
			fv := rv.Field(i)
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				collectFields(fv, depth, out)
				continue
			}
		}

		name := field.Name
		omitEmpty := false
		if tag, ok := field.Tag.Lookup("json"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" && len(parts) == 1 {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitEmpty = true
				}
			}
		}

		fv := rv.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}
		out[name] = normalize(fv.Interface(), depth+1)
	}
}

func coerceKey(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	return fmt.Sprint(key.Interface())
}
