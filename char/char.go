package char

/*
{-| Functions for working with characters. Characters are Unicode code points,
represented as Go runes.

# ASCII letters
@docs isUpper, isLower, isAlpha, isAlphaNum

# Digits
@docs isDigit, isOctDigit, isHexDigit

# Conversion
@docs toUpper, toLower, toCode, fromCode
-}
*/

import "unicode"

// The is… predicates are restricted to the ASCII range, matching Elm.

func IsUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func IsLower(c rune) bool {
	return c >= 'a' && c <= 'z'
}

func IsAlpha(c rune) bool {
	return IsUpper(c) || IsLower(c)
}

func IsDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func IsAlphaNum(c rune) bool {
	return IsAlpha(c) || IsDigit(c)
}

func IsOctDigit(c rune) bool {
	return c >= '0' && c <= '7'
}

func IsHexDigit(c rune) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// ToUpper converts to upper case across the full Unicode range.
func ToUpper(c rune) rune {
	return unicode.ToUpper(c)
}

// ToLower converts to lower case across the full Unicode range.
func ToLower(c rune) rune {
	return unicode.ToLower(c)
}

// ToCode returns the Unicode code point of a character.
func ToCode(c rune) int {
	return int(c)
}

// FromCode returns the character for a Unicode code point.
func FromCode(code int) rune {
	return rune(code)
}
