package pure_utils

import "encoding/json"

// Null holds an optional JSON field. Set reports whether the field was present in the
// payload at all, Valid whether it carried a non-null value.
type Null[T any] struct {
	value T
	Valid bool
	Set   bool
}

func NullFrom[T any](v T) Null[T] {
	return Null[T]{value: v, Valid: true, Set: true}
}

func NullFromPtr[T any](p *T) Null[T] {
	if p == nil {
		return Null[T]{Set: true}
	}
	return NullFrom(*p)
}

func (n Null[T]) Value() T {
	return n.value
}

func (n Null[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.value
	return &v
}

func (n *Null[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if string(data) == "null" {
		var zero T
		n.value = zero
		n.Valid = false
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		n.Valid = false
		return err
	}
	n.value = v
	n.Valid = true
	return nil
}
