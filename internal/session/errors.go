package session

import "errors"

var (
	// ErrNoPrincipal is returned by persistence operations invoked while
	// nobody is signed in.
	ErrNoPrincipal = errors.New("no signed-in principal")

	// ErrNotInCache is returned by UsePerson when the requested id is not
	// present in the people cache.
	ErrNotInCache = errors.New("record not in cache")

	// ErrUnknownField is returned by the draft setters for keys that are
	// not wire keys of the record kind.
	ErrUnknownField = errors.New("unknown draft field")
)
