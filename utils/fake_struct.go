package utils

import (
	"reflect"

	"github.com/go-faker/faker/v4"
	"github.com/go-faker/faker/v4/pkg/options"
)

// FakeStruct fills a db model with random data and also returns its values in
// column order, ready to be fed to a mocked row.
func FakeStruct[T any](opts ...options.OptionFunc) (T, []any) {
	var object T
	if err := faker.FakeData(&object, opts...); err != nil {
		panic(err)
	}
	return object, rowValues(reflect.ValueOf(object))
}

func FakeStructs[T any](count int, opts ...options.OptionFunc) ([]T, [][]any) {
	objects := make([]T, count)
	rows := make([][]any, count)
	for i := range count {
		objects[i], rows[i] = FakeStruct[T](opts...)
	}
	return objects, rows
}

func rowValues(v reflect.Value) []any {
	values := make([]any, 0, v.NumField())
	for i := range v.NumField() {
		field := v.Type().Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			values = append(values, rowValues(v.Field(i))...)
			continue
		}
		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			values = append(values, v.Field(i).Interface())
		}
	}
	return values
}
