/*
Package elmkit is a Go port of the Elm core library.

The sub-packages mirror Elm's core modules (Basics, Maybe, Result, Tuple,
Char, String, List, Array, Dict) as thin layers over Go-native primitives
and a pair of persistent collection types. This root package holds the
function-level combinators of module Basics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package elmkit

// Identity returns its argument unchanged.
func Identity[T any](a T) T {
	return a
}

// Always returns a function that ignores its argument and produces a.
func Always[A, B any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Flip swaps the arguments of a two-argument function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}
