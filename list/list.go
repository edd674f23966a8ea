package list

/*
{-| You can create a `List` in Elm with the `[1,2,3]` syntax. This module has
a bunch of functions to help you work with them.

# Create
@docs singleton, repeat, range

# Transform
@docs map, indexedMap, foldl, foldr, filter, filterMap, reverse

# Utilities
@docs length, member, all, any, maximum, minimum, sum, product

# Combine
@docs append, concat, concatMap, intersperse, map2, unzip

# Sort
@docs sort, sortBy, sortWith

# Deconstruct
@docs head, tail, take, drop, partition
-}
*/

import (
	"sort"

	"github.com/npillmayer/elmkit/basics"
	"github.com/npillmayer/elmkit/maybe"
	"github.com/npillmayer/elmkit/tuple"
)

// Lists are plain Go slices. Every function returns a fresh slice and leaves
// its arguments untouched.

func Singleton[T any](x T) []T {
	return []T{x}
}

func Repeat[T any](n int, x T) []T {
	if n <= 0 {
		return nil
	}
	xs := make([]T, n)
	for i := range xs {
		xs[i] = x
	}
	return xs
}

// Range creates a list of integers from low to high, inclusive.
func Range(low, high int) []int {
	if low > high {
		return nil
	}
	xs := make([]int, 0, high-low+1)
	for n := low; n <= high; n++ {
		xs = append(xs, n)
	}
	return xs
}

// --- Transform -------------------------------------------------------------

func Map[T, S any](f func(T) S, xs []T) []S {
	ys := make([]S, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}

func IndexedMap[T, S any](f func(int, T) S, xs []T) []S {
	ys := make([]S, len(xs))
	for i, x := range xs {
		ys[i] = f(i, x)
	}
	return ys
}

// Foldl reduces a list from the left.
//
//     Foldl(cons, nil, []int{1, 2, 3}) == []int{3, 2, 1}
//
func Foldl[T, A any](f func(T, A) A, acc A, xs []T) A {
	for _, x := range xs {
		acc = f(x, acc)
	}
	return acc
}

// Foldr reduces a list from the right.
func Foldr[T, A any](f func(T, A) A, acc A, xs []T) A {
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

func Filter[T any](pred func(T) bool, xs []T) []T {
	var ys []T
	for _, x := range xs {
		if pred(x) {
			ys = append(ys, x)
		}
	}
	return ys
}

// FilterMap applies a partial function to a list, keeping the successful
// outcomes only.
func FilterMap[T, S any](f func(T) maybe.Maybe[S], xs []T) []S {
	var ys []S
	for _, x := range xs {
		var v S
		switch m := f(x).Match(); m {
		case m.Just(&v):
			ys = append(ys, v)
		case m.Nothing():
		}
	}
	return ys
}

func Reverse[T any](xs []T) []T {
	ys := make([]T, len(xs))
	for i, x := range xs {
		ys[len(xs)-1-i] = x
	}
	return ys
}

// --- Utilities -------------------------------------------------------------

func Length[T any](xs []T) int {
	return len(xs)
}

func Member[T comparable](x T, xs []T) bool {
	for _, y := range xs {
		if y == x {
			return true
		}
	}
	return false
}

func All[T any](pred func(T) bool, xs []T) bool {
	for _, x := range xs {
		if !pred(x) {
			return false
		}
	}
	return true
}

func Any[T any](pred func(T) bool, xs []T) bool {
	for _, x := range xs {
		if pred(x) {
			return true
		}
	}
	return false
}

func Maximum[T basics.Ordered](xs []T) maybe.Maybe[T] {
	if len(xs) == 0 {
		return maybe.Nothing[T]()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return maybe.Just(m)
}

func Minimum[T basics.Ordered](xs []T) maybe.Maybe[T] {
	if len(xs) == 0 {
		return maybe.Nothing[T]()
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return maybe.Just(m)
}

func Sum[T basics.Number](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}
	return s
}

func Product[T basics.Number](xs []T) T {
	var p T = 1
	for _, x := range xs {
		p *= x
	}
	return p
}

// --- Combine ---------------------------------------------------------------

func AppendList[T any](xs, ys []T) []T {
	zs := make([]T, 0, len(xs)+len(ys))
	zs = append(zs, xs...)
	return append(zs, ys...)
}

func Concat[T any](lists [][]T) []T {
	var zs []T
	for _, xs := range lists {
		zs = append(zs, xs...)
	}
	return zs
}

func ConcatMap[T, S any](f func(T) []S, xs []T) []S {
	var zs []S
	for _, x := range xs {
		zs = append(zs, f(x)...)
	}
	return zs
}

// Intersperse places a value between all elements of a list.
func Intersperse[T any](sep T, xs []T) []T {
	if len(xs) == 0 {
		return nil
	}
	ys := make([]T, 0, 2*len(xs)-1)
	for i, x := range xs {
		if i > 0 {
			ys = append(ys, sep)
		}
		ys = append(ys, x)
	}
	return ys
}

// Map2 combines two lists pairwise, stopping at the shorter one.
func Map2[T, S, U any](f func(T, S) U, xs []T, ys []S) []U {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	zs := make([]U, n)
	for i := 0; i < n; i++ {
		zs[i] = f(xs[i], ys[i])
	}
	return zs
}

func Unzip[A, B any](ps []tuple.Pair[A, B]) ([]A, []B) {
	as := make([]A, len(ps))
	bs := make([]B, len(ps))
	for i, p := range ps {
		as[i], bs[i] = p.First, p.Second
	}
	return as, bs
}

// --- Sort ------------------------------------------------------------------

func Sort[T basics.Ordered](xs []T) []T {
	ys := AppendList(xs, nil)
	sort.SliceStable(ys, func(i, j int) bool {
		return ys[i] < ys[j]
	})
	return ys
}

// SortBy sorts by a derived, comparable property.
func SortBy[T any, K basics.Ordered](f func(T) K, xs []T) []T {
	ys := AppendList(xs, nil)
	sort.SliceStable(ys, func(i, j int) bool {
		return f(ys[i]) < f(ys[j])
	})
	return ys
}

// SortWith sorts with a custom three-way comparison.
func SortWith[T any](cmp func(T, T) basics.Order, xs []T) []T {
	ys := AppendList(xs, nil)
	sort.SliceStable(ys, func(i, j int) bool {
		return cmp(ys[i], ys[j]) == basics.LT
	})
	return ys
}

// --- Deconstruct -----------------------------------------------------------

func Head[T any](xs []T) maybe.Maybe[T] {
	if len(xs) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(xs[0])
}

func Tail[T any](xs []T) maybe.Maybe[[]T] {
	if len(xs) == 0 {
		return maybe.Nothing[[]T]()
	}
	return maybe.Just(xs[1:])
}

func Take[T any](n int, xs []T) []T {
	if n <= 0 {
		return nil
	}
	if n > len(xs) {
		n = len(xs)
	}
	return xs[:n]
}

func Drop[T any](n int, xs []T) []T {
	if n <= 0 {
		return xs
	}
	if n > len(xs) {
		n = len(xs)
	}
	return xs[n:]
}

// Partition splits a list into elements satisfying pred and those that don't.
func Partition[T any](pred func(T) bool, xs []T) ([]T, []T) {
	var yes, no []T
	for _, x := range xs {
		if pred(x) {
			yes = append(yes, x)
		} else {
			no = append(no, x)
		}
	}
	return yes, no
}
