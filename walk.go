package landing

import "reflect"

// rewriteStrings returns a deep copy of v with every string leaf passed
// through fn. Shape and ordering are preserved exactly: slices stay
// slices in order, structs keep every non-string field untouched. The
// input value is never mutated, which is what lets the export pipeline
// treat the caller's document as an immutable snapshot.
func rewriteStrings(v reflect.Value, fn func(string) string) reflect.Value {
	switch v.Kind() {
	case reflect.String:
		out := reflect.New(v.Type()).Elem()
		out.SetString(fn(v.String()))
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(rewriteStrings(v.Index(i), fn))
		}
		return out
	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			out.Field(i).Set(rewriteStrings(v.Field(i), fn))
		}
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(rewriteStrings(v.Elem(), fn))
		return out
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(rewriteStrings(v.Elem(), fn))
		return out
	default:
		return v
	}
}

// rewriteBlockData applies rewriteStrings to a block payload.
func rewriteBlockData(data BlockData, fn func(string) string) BlockData {
	if data == nil {
		return nil
	}
	out := rewriteStrings(reflect.ValueOf(data), fn)
	return out.Interface().(BlockData)
}
