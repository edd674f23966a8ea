package tuple

/*
{-| Elm has built-in syntax for tuples, so you can have a 2-tuple with any kind
of values in it.

@docs pair, first, second, mapFirst, mapSecond, mapBoth
-}
*/

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// P constructs a pair, letting type inference do the work.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

func First[A, B any](p Pair[A, B]) A {
	return p.First
}

func Second[A, B any](p Pair[A, B]) B {
	return p.Second
}

func MapFirst[A, B, X any](f func(A) X, p Pair[A, B]) Pair[X, B] {
	return Pair[X, B]{f(p.First), p.Second}
}

func MapSecond[A, B, Y any](f func(B) Y, p Pair[A, B]) Pair[A, Y] {
	return Pair[A, Y]{p.First, f(p.Second)}
}

func MapBoth[A, B, X, Y any](f func(A) X, g func(B) Y, p Pair[A, B]) Pair[X, Y] {
	return Pair[X, Y]{f(p.First), g(p.Second)}
}
