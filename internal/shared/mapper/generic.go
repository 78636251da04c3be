// Package mapper holds slice helpers shared by persistence mappers and DTO converters.
package mapper

import "fmt"

// MapSlice applies mapFunc to each element. A nil input yields nil.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceWithID maps a slice of pointers, stopping at the first failure and
// naming the offending item's id in the error. Nil inputs are skipped.
func MapSliceWithID[T any, R any](
	items []*T,
	mapFunc func(*T) (*R, error),
	getID func(*T) uint,
) ([]*R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %d: %w", getID(item), err)
		}
		result = append(result, mapped)
	}
	return result, nil
}
