// Package guard provides a lightweight mechanism for enforcing that value
// objects and commands are created through their constructor functions.
// A zero-value struct embedding a ConstructorGuard fails validation, which
// prevents invariants from being bypassed by direct struct literals.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// not-constructed error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is invalid; NewConstructorGuard produces a valid guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call this from the owning type's constructor function.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when nil is given.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr != nil {
		return notConstructedErr
	}

	return ErrDefaultConstructorGuard
}
