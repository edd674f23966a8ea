package str

/*
{-| A built-in representation for efficient string manipulation. String literals
are enclosed in `"double quotes"`.

# Strings
@docs isEmpty, length, reverse, repeat, replace

# Building and Splitting
@docs append, concat, split, join, words, lines

# Get Substrings
@docs slice, left, right, dropLeft, dropRight

# Check for Substrings
@docs contains, startsWith, endsWith, indexes

# Int and Float Conversions
@docs toInt, fromInt, toFloat, fromFloat

# Char Conversions
@docs fromChar, cons, uncons

# Formatting
@docs toUpper, toLower, pad, padLeft, padRight, trim, trimLeft, trimRight

# Higher-Order Functions
@docs map, filter, foldl, foldr, any, all, toList, fromList
-}
*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/elmkit/maybe"
	"github.com/npillmayer/elmkit/tuple"
)

// All indices are in terms of runes, not bytes.

func IsEmpty(s string) bool {
	return s == ""
}

func Length(s string) int {
	return len([]rune(s))
}

func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func Repeat(n int, s string) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

func Replace(before, after, s string) string {
	return strings.ReplaceAll(s, before, after)
}

// --- Building and splitting ------------------------------------------------

func Append(a, b string) string {
	return a + b
}

func Concat(chunks []string) string {
	return strings.Join(chunks, "")
}

func Split(sep, s string) []string {
	return strings.Split(s, sep)
}

func Join(sep string, chunks []string) string {
	return strings.Join(chunks, sep)
}

// Words breaks a string into its whitespace-separated words.
func Words(s string) []string {
	return strings.Fields(s)
}

// Lines breaks a string at newlines, treating "\r\n" as a single break.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// --- Substrings ------------------------------------------------------------

// Slice takes a substring given a start and end index. Negative indices count
// from the end of the string:
//
//     Slice(0, 6, "snakes on a plane!")   == "snakes"
//     Slice(-6, -1, "snakes on a plane!") == "plane"
//
func Slice(start, end int, s string) string {
	runes := []rune(s)
	lo := translate(start, len(runes))
	hi := translate(end, len(runes))
	if lo >= hi {
		return ""
	}
	return string(runes[lo:hi])
}

// translate resolves a possibly negative index against length n and clamps
// it into [0, n].
func translate(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func Left(n int, s string) string {
	if n < 1 {
		return ""
	}
	return Slice(0, n, s)
}

func Right(n int, s string) string {
	if n < 1 {
		return ""
	}
	return Slice(-n, Length(s), s)
}

func DropLeft(n int, s string) string {
	if n < 1 {
		return s
	}
	return Slice(n, Length(s), s)
}

func DropRight(n int, s string) string {
	if n < 1 {
		return s
	}
	return Slice(0, -n, s)
}

// --- Substring checks ------------------------------------------------------

func Contains(sub, s string) bool {
	return strings.Contains(s, sub)
}

func StartsWith(prefix, s string) bool {
	return strings.HasPrefix(s, prefix)
}

func EndsWith(suffix, s string) bool {
	return strings.HasSuffix(s, suffix)
}

// Indexes returns the rune offsets of all (non-overlapping) occurrences of
// sub within s.
func Indexes(sub, s string) []int {
	if sub == "" {
		return nil
	}
	var inx []int
	off, runeoff := 0, 0
	for {
		i := strings.Index(s[off:], sub)
		if i < 0 {
			return inx
		}
		runeoff += len([]rune(s[off : off+i]))
		inx = append(inx, runeoff)
		runeoff += len([]rune(sub))
		off += i + len(sub)
	}
}

// --- Number conversions ----------------------------------------------------

// ToInt parses a string as a decimal integer, Nothing on malformed input.
func ToInt(s string) maybe.Maybe[int] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return maybe.Nothing[int]()
	}
	return maybe.Just(n)
}

func FromInt(n int) string {
	return strconv.Itoa(n)
}

// ToFloat parses a string as a float, Nothing on malformed input.
func ToFloat(s string) maybe.Maybe[float64] {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return maybe.Nothing[float64]()
	}
	return maybe.Just(x)
}

func FromFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// --- Char conversions ------------------------------------------------------

func FromChar(c rune) string {
	return string(c)
}

// Cons prepends a character onto a string.
func Cons(c rune, s string) string {
	return string(c) + s
}

// Uncons splits a non-empty string into its head character and tail.
func Uncons(s string) maybe.Maybe[tuple.Pair[rune, string]] {
	runes := []rune(s)
	if len(runes) == 0 {
		return maybe.Nothing[tuple.Pair[rune, string]]()
	}
	return maybe.Just(tuple.P(runes[0], string(runes[1:])))
}

// --- Formatting ------------------------------------------------------------

func ToUpper(s string) string {
	return strings.ToUpper(s)
}

func ToLower(s string) string {
	return strings.ToLower(s)
}

// Pad centers a string within pad characters until it reaches length n.
func Pad(n int, c rune, s string) string {
	half := float64(n-Length(s)) / 2
	left := Repeat(int(half+0.5), string(c))
	right := Repeat(int(half), string(c))
	return left + s + right
}

func PadLeft(n int, c rune, s string) string {
	return Repeat(n-Length(s), string(c)) + s
}

func PadRight(n int, c rune, s string) string {
	return s + Repeat(n-Length(s), string(c))
}

func Trim(s string) string {
	return strings.TrimSpace(s)
}

func TrimLeft(s string) string {
	return strings.TrimLeft(s, " \t\n\v\f\r")
}

func TrimRight(s string) string {
	return strings.TrimRight(s, " \t\n\v\f\r")
}

// --- Higher-order functions ------------------------------------------------

func Map(f func(rune) rune, s string) string {
	return strings.Map(f, s)
}

func Filter(pred func(rune) bool, s string) string {
	var sb strings.Builder
	for _, c := range s {
		if pred(c) {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// Foldl reduces a string from the left, a character at a time.
func Foldl[A any](f func(rune, A) A, acc A, s string) A {
	for _, c := range s {
		acc = f(c, acc)
	}
	return acc
}

// Foldr reduces a string from the right, a character at a time.
func Foldr[A any](f func(rune, A) A, acc A, s string) A {
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		acc = f(runes[i], acc)
	}
	return acc
}

func Any(pred func(rune) bool, s string) bool {
	for _, c := range s {
		if pred(c) {
			return true
		}
	}
	return false
}

func All(pred func(rune) bool, s string) bool {
	for _, c := range s {
		if !pred(c) {
			return false
		}
	}
	return true
}

func ToList(s string) []rune {
	return []rune(s)
}

func FromList(runes []rune) string {
	return string(runes)
}
