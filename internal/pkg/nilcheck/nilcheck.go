// Package nilcheck finds nil collections in loaded values.
package nilcheck

import (
	"reflect"
	"strconv"
)

// Find walks v and returns the path of every nil slice or map it holds.
// Fields named CustomData are skipped: they are opaque JSON, not collections.
func Find(v any) []string {
	var found []string
	walk(reflect.ValueOf(v), "$", &found)
	return found
}

func walk(v reflect.Value, path string, found *[]string) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			walk(v.Elem(), path, found)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Name == "CustomData" {
				continue
			}
			walk(v.Field(i), path+"."+f.Name, found)
		}
	case reflect.Slice:
		if v.IsNil() {
			*found = append(*found, path)
			return
		}
		// raw JSON payloads are leaves
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return
		}
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i), path+"["+strconv.Itoa(i)+"]", found)
		}
	case reflect.Map:
		if v.IsNil() {
			*found = append(*found, path)
		}
	}
}
