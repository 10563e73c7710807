// Package result provides a two-variant outcome type carrying either a
// success value or an error value. Expected failures travel as values
// instead of panics; only unwrapping the wrong variant aborts, because
// that is a bug in the caller rather than bad input.
package result

import "fmt"

type tag uint8

const (
	tagOk tag = iota
	tagErr
)

// Result holds exactly one tagged payload: an ok value of type T or an
// error value of type E. Values are immutable once constructed.
type Result[T, E any] struct {
	tag tag
	ok  T
	err E
}

// Ok wraps a success value.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{tag: tagOk, ok: v}
}

// Err wraps an error value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{tag: tagErr, err: e}
}

// IsOk reports whether r holds the Ok variant.
func (r Result[T, E]) IsOk() bool { return r.tag == tagOk }

// IsErr reports whether r holds the Err variant.
func (r Result[T, E]) IsErr() bool { return r.tag == tagErr }

// GetOk returns the Ok payload and true, or the zero value and false when
// r is the Err variant.
func GetOk[T, E any](r Result[T, E]) (T, bool) {
	if r.tag != tagOk {
		var zero T
		return zero, false
	}
	return r.ok, true
}

// GetErr returns the Err payload and true, or the zero value and false when
// r is the Ok variant.
func GetErr[T, E any](r Result[T, E]) (E, bool) {
	if r.tag != tagErr {
		var zero E
		return zero, false
	}
	return r.err, true
}

// UnwrapOk returns the Ok payload. It panics when r is the Err variant:
// callers are expected to branch on IsOk or GetOk first, or to unwrap only
// a variant already established by prior branching.
func UnwrapOk[T, E any](r Result[T, E]) T {
	if r.tag != tagOk {
		panic(fmt.Sprintf("result: unwrapped Err variant as Ok (err: %v)", r.err))
	}
	return r.ok
}

// UnwrapErr returns the Err payload. It panics when r is the Ok variant.
func UnwrapErr[T, E any](r Result[T, E]) E {
	if r.tag != tagErr {
		panic(fmt.Sprintf("result: unwrapped Ok variant as Err (ok: %v)", r.ok))
	}
	return r.err
}

// MapOk transforms the Ok payload with f, passing an Err variant through
// unchanged.
func MapOk[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.tag != tagOk {
		return Err[U](r.err)
	}
	return Ok[U, E](f(r.ok))
}

// MapErr transforms the Err payload with f, passing an Ok variant through
// unchanged.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.tag != tagErr {
		return Ok[T, F](r.ok)
	}
	return Err[T](f(r.err))
}
