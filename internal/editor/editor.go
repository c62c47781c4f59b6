// Package editor derives new collection snapshots from old ones. Every
// function returns a fresh slice and leaves its input untouched.
package editor

import (
	"errors"
	"fmt"

	"wedding-planner/internal/models"
)

// ErrInvalidPatch is wrapped by every validation failure of a patch or a
// new record.
var ErrInvalidPatch = errors.New("invalid change")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidPatch, fmt.Sprintf(format, args...))
}

// Append returns items followed by item.
func Append[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Prepend returns item followed by items.
func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// Replace returns a copy of items where the element with the given id is
// replaced by fn(element). found is false when no element matches; the
// copy is then equal to items.
func Replace[T models.Keyed](items []T, id string, fn func(T) T) (out []T, found bool) {
	out = make([]T, len(items))
	for i, item := range items {
		if !found && item.Key() == id {
			out[i] = fn(item)
			found = true
			continue
		}
		out[i] = item
	}
	return out, found
}

// Remove returns a copy of items without the element with the given id.
func Remove[T models.Keyed](items []T, id string) (out []T, found bool) {
	out = make([]T, 0, len(items))
	for _, item := range items {
		if item.Key() == id {
			found = true
			continue
		}
		out = append(out, item)
	}
	return out, found
}

// Find returns the element with the given id.
func Find[T models.Keyed](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
