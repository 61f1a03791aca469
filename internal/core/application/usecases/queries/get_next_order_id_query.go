package queries

import (
	"errors"

	"northwind/internal/pkg/guard"
)

var (
	ErrGetNextOrderIDQueryIsNotConstructed = errors.New(
		"GetNextOrderIDQuery must be created via NewGetNextOrderIDQuery constructor",
	)
)

// GetNextOrderIDQuery previews the identifier the store would assign to the
// next order. This is a parameterless query.
type GetNextOrderIDQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNextOrderIDQuery creates a next-identifier preview query.
func NewGetNextOrderIDQuery() GetNextOrderIDQuery {
	return GetNextOrderIDQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNextOrderIDQueryIsNotConstructed if validation fails.
func (q GetNextOrderIDQuery) Validate() error {
	return q.guard.Validate(ErrGetNextOrderIDQueryIsNotConstructed)
}
