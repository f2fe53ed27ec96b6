// Package normalize converts arbitrary nested values into JSON-safe
// primitives before they reach a response body or the realtime hub.
package normalize

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// maxDepth bounds recursion so a cyclic or degenerate structure
// terminates instead of overflowing the stack.
const maxDepth = 32

// Value converts v into a JSON-safe value: timestamps become RFC 3339
// strings, fixed-point numerics become float64, maps, slices and
// structs are walked recursively, and primitives pass through
// untouched. Value is idempotent.
func Value(v any) any {
	return walk(reflect.ValueOf(v), 0)
}

func walk(rv reflect.Value, depth int) any {
	if !rv.IsValid() || depth > maxDepth {
		return nil
	}

	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case time.Time:
			return x.Format(time.RFC3339)
		case *time.Time:
			if x == nil {
				return nil
			}
			return x.Format(time.RFC3339)
		case pgtype.Numeric:
			if !x.Valid {
				return nil
			}
			f, err := x.Float64Value()
			if err != nil {
				return nil
			}
			return f.Float64
		case []byte:
			return string(x)
		}
	}

	switch rv.Kind() {
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return walk(rv.Elem(), depth+1)

	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = walk(iter.Value(), depth+1)
		}
		return out

	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = walk(rv.Index(i), depth+1)
		}
		return out

	case reflect.Struct:
		return walkStruct(rv, depth)

	default:
		if rv.CanInterface() {
			return rv.Interface()
		}
		return nil
	}
}

// walkStruct converts a struct into a map keyed by the field's json
// tag name, falling back to the field name when untagged.
func walkStruct(rv reflect.Value, depth int) any {
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		out[name] = walk(rv.Field(i), depth+1)
	}
	return out
}
