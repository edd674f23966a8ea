package basics

/*
{-| Tons of useful functions that get imported by default.

# Math
@docs toFloat, round, floor, ceiling, truncate, min, max, clamp, compare,
xor, modBy, remainderBy, negate, abs, sqrt, logBase, e, pi

# Angles
@docs degrees, radians, turns

-}
*/

import (
	"math"
)

// Ordered is the constraint for key types with a total order, i.e. the types
// Elm calls `comparable`.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Number is the constraint for arithmetic element types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Order is the result of a three-way comparison.
type Order int

const (
	LT Order = -1
	EQ Order = 0
	GT Order = 1
)

func (ord Order) String() string {
	switch ord {
	case LT:
		return "LT"
	case GT:
		return "GT"
	}
	return "EQ"
}

// Compare returns the ordering of a relative to b.
func Compare[T Ordered](a, b T) Order {
	if a < b {
		return LT
	} else if a > b {
		return GT
	}
	return EQ
}

func Min[T Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to the range low…high.
func Clamp[T Ordered](low, high, x T) T {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func Negate[T Number](x T) T {
	return -x
}

// Xor is the exclusive-or on booleans.
func Xor(a, b bool) bool {
	return a != b
}

// ModBy performs modular arithmetic: the result has the sign of the modulus.
//
//     ModBy(4, -1) == 3
//
func ModBy(modulus, x int) int {
	r := x % modulus
	if r != 0 && (r < 0) != (modulus < 0) {
		return r + modulus
	}
	return r
}

// RemainderBy is the remainder after division: the result has the sign of x.
//
//     RemainderBy(4, -1) == -1
//
func RemainderBy(divisor, x int) int {
	return x % divisor
}

func ToFloat(n int) float64 {
	return float64(n)
}

// Round rounds to the nearest integer, halves towards positive infinity.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func Floor(x float64) int {
	return int(math.Floor(x))
}

func Ceiling(x float64) int {
	return int(math.Ceil(x))
}

// Truncate drops the fractional part, rounding towards zero.
func Truncate(x float64) int {
	return int(math.Trunc(x))
}

func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// LogBase computes the logarithm of x in a given base.
func LogBase(base, x float64) float64 {
	return math.Log(x) / math.Log(base)
}

const (
	E  = math.E
	Pi = math.Pi
)

// Degrees converts degrees into radians, the angle unit used throughout.
func Degrees(d float64) float64 {
	return d * math.Pi / 180
}

// Radians is the identity on angles; it exists for symmetry with Degrees
// and Turns.
func Radians(r float64) float64 {
	return r
}

// Turns converts full turns into radians.
func Turns(t float64) float64 {
	return t * 2 * math.Pi
}

func IsNaN(x float64) bool {
	return math.IsNaN(x)
}

func IsInfinite(x float64) bool {
	return math.IsInf(x, 0)
}
