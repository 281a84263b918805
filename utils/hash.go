package utils

import (
	"reflect"

	"github.com/benbjohnson/immutable"
)

// PointerHasher is a hasher for pointer-like keys of persistent maps.
// Keys are hashed by address and compared by identity.
type PointerHasher[T any] struct{}

// Hash computes the uint32 hash of pointer v.
func (PointerHasher[T]) Hash(v T) uint32 {
	p := reflect.ValueOf(v).Pointer()
	return uint32(p ^ (p >> 32))
}

// Equal checks identity between two pointers.
func (PointerHasher[T]) Equal(a, b T) bool {
	return any(a) == any(b)
}

var _ immutable.Hasher[any] = PointerHasher[any]{}
