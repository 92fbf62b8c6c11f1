package domain

import "errors"

// Sentinel errors used across layers. All of them are recoverable:
// the shift controller reports a message and leaves state unchanged.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrEmptyCatalog      = errors.New("recipe catalog is empty")
	ErrNoCustomer        = errors.New("no customer waiting")
	ErrNoPizza           = errors.New("no pizza in progress")
	ErrMissingBase       = errors.New("pizza needs dough first")
	ErrDuplicateBase     = errors.New("pizza already has dough")
	ErrTooFewIngredients = errors.New("pizza needs more ingredients")
)
