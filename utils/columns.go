package utils

import (
	"reflect"
)

// ColumnList returns the `db` tags of the struct fields, in declaration order.
// Embedded structs are flattened.
func ColumnList[T any](prefixes ...string) []string {
	var zero T
	prefix := ""
	if len(prefixes) > 0 {
		prefix = prefixes[0] + "."
	}

	columns := make([]string, 0)
	for _, name := range dbTags(reflect.TypeOf(zero)) {
		columns = append(columns, prefix+name)
	}
	return columns
}

func dbTags(t reflect.Type) []string {
	tags := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			tags = append(tags, dbTags(field.Type)...)
			continue
		}
		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			tags = append(tags, tag)
		}
	}
	return tags
}
