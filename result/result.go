package result

/*
{-| A `Result` is the result of a computation that may fail. This is a great
way to manage errors in Elm.

# Type and Constructors
@docs Result

# Mapping
@docs map, map2

# Chaining
@docs andThen

# Handling Errors
@docs withDefault, toMaybe, fromMaybe, mapError
-}
*/

import (
	"github.com/npillmayer/elmkit/maybe"
)

// Result carries its error case as a Go error value rather than a free
// type parameter.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	var v T
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&e):
	}
	return Err[S](e)
}

func Map2[T, S, U any](f func(T, S) U, x Result[T], y Result[S]) Result[U] {
	var v T
	var w S
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		switch n := y.Match(); n {
		case n.Ok(&w):
			return Ok(f(v, w))
		case n.Err(&e):
		}
	case m.Err(&e):
	}
	return Err[U](e)
}

func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&e):
	}
	return Err[S](e)
}

// MapError transforms the error of a failed result, leaving an Ok untouched.
func MapError[T any](f func(error) error, x Result[T]) Result[T] {
	var e error
	switch m := x.Match(); m {
	case m.Err(&e):
		return Err[T](f(e))
	}
	return x
}

// ToMaybe drops the error information of a result.
func ToMaybe[T any](x Result[T]) maybe.Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	}
	return maybe.Nothing[T]()
}

// FromMaybe turns a maybe into a result, using err for the Nothing case.
func FromMaybe[T any](err error, x maybe.Maybe[T]) Result[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Ok(v)
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

// matcher is handed out by pointer: the match cases return the identical
// pointer (or nil), so the switch compares pointers and never the payload,
// which may be of an uncomparable type.
type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
