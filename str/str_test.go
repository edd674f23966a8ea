package str_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	. "github.com/npillmayer/elmkit/str"
	"github.com/npillmayer/elmkit/tuple"
)

func TestLengthIsRuneBased(t *testing.T) {
	if Length("héllo") != 5 {
		t.Errorf("expected length(\"héllo\") to be 5, is %d", Length("héllo"))
	}
	if !IsEmpty("") || IsEmpty(" ") {
		t.Error("isEmpty broken")
	}
}

func TestReverse(t *testing.T) {
	if Reverse("stressed") != "desserts" {
		t.Errorf("expected reverse to yield \"desserts\", is %q", Reverse("stressed"))
	}
	if Reverse("héllo") != "olléh" {
		t.Errorf("expected rune-wise reversal, got %q", Reverse("héllo"))
	}
}

func TestSlice(t *testing.T) {
	c := []struct {
		start, end int
		want       string
	}{
		{7, 9, "on"},
		{0, 6, "snakes"},
		{0, -7, "snakes on a"},
		{-6, -1, "plane"},
		{-1, -6, ""},   // start after end
		{4, 4, ""},     // empty range
		{0, 100, "snakes on a plane!"}, // clamped
		{-100, 6, "snakes"},
	}
	for i, x := range c {
		got := Slice(x.start, x.end, "snakes on a plane!")
		if got != x.want {
			t.Errorf("%d: expected slice(%d, %d) to be %q, is %q", i, x.start, x.end, x.want, got)
		}
	}
}

func TestLeftRightDrop(t *testing.T) {
	assert.Equal(t, "go", Left(2, "gopher"))
	assert.Equal(t, "her", Right(3, "gopher"))
	assert.Equal(t, "pher", DropLeft(2, "gopher"))
	assert.Equal(t, "gop", DropRight(3, "gopher"))
	assert.Equal(t, "", Left(0, "gopher"))
	assert.Equal(t, "gopher", DropLeft(-1, "gopher"))
}

func TestSplitJoinWordsLines(t *testing.T) {
	assert.Equal(t, []string{"cat", "dog", "cow"}, Split(",", "cat,dog,cow"))
	assert.Equal(t, "1/2/3", Join("/", []string{"1", "2", "3"}))
	assert.Equal(t, []string{"how", "are", "you"}, Words(" how \t are \n you "))
	assert.Equal(t, []string{"how are you", "good?"}, Lines("how are you\r\ngood?"))
}

func TestIndexes(t *testing.T) {
	assert.Equal(t, []int{1, 4, 7, 10}, Indexes("i", "Mississippi"))
	assert.Nil(t, Indexes("x", "Mississippi"))
	assert.Nil(t, Indexes("", "Mississippi"))
	// offsets are rune offsets
	assert.Equal(t, []int{2}, Indexes("l", "héllo")[:1])
}

func TestNumberConversions(t *testing.T) {
	var n int
	switch m := ToInt("-42").Match(); m {
	case m.Just(&n):
	case m.Nothing():
		t.Error("expected toInt(\"-42\") to succeed, didn't")
	}
	if n != -42 {
		t.Errorf("expected toInt(\"-42\") to be -42, is %d", n)
	}

	switch m := ToInt("3.1").Match(); m {
	case m.Nothing():
	default:
		t.Error("expected toInt(\"3.1\") to be Nothing, isn't")
	}

	if ToInt("+5").WithDefault(0) != 5 {
		t.Error("expected toInt(\"+5\") to be 5, isn't")
	}
	switch m := ToInt("++5").Match(); m {
	case m.Nothing():
	default:
		t.Error("expected toInt(\"++5\") to be Nothing, isn't")
	}

	var x float64
	switch m := ToFloat("3.5").Match(); m {
	case m.Just(&x):
	case m.Nothing():
		t.Error("expected toFloat(\"3.5\") to succeed, didn't")
	}
	if x != 3.5 {
		t.Errorf("expected toFloat(\"3.5\") to be 3.5, is %g", x)
	}

	assert.Equal(t, "-42", FromInt(-42))
	assert.Equal(t, "3.5", FromFloat(3.5))
}

func TestConsUncons(t *testing.T) {
	if Cons('g', "opher") != "gopher" {
		t.Error("expected cons('g', \"opher\") to be \"gopher\", isn't")
	}
	var p tuple.Pair[rune, string]
	switch m := Uncons("gopher").Match(); m {
	case m.Just(&p):
	case m.Nothing():
		t.Fatal("expected uncons of non-empty string to be a Just, isn't")
	}
	if p.First != 'g' || p.Second != "opher" {
		t.Errorf("expected uncons to yield ('g', \"opher\"), is %v", p)
	}
	switch m := Uncons("").Match(); m {
	case m.Nothing():
	default:
		t.Error("expected uncons(\"\") to be Nothing, isn't")
	}
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "  121  ", Pad(7, ' ', "121"))
	assert.Equal(t, "  12  ", Pad(6, ' ', "12"))
	assert.Equal(t, "0000121", PadLeft(7, '0', "121"))
	assert.Equal(t, "121.000", PadRight(7, '0', "121."))
	assert.Equal(t, "121", PadLeft(2, '0', "121")) // no truncation
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "hats", Trim("  hats  \n"))
	assert.Equal(t, "hats  \n", TrimLeft("  hats  \n"))
	assert.Equal(t, "  hats", TrimRight("  hats  \n"))
}

func TestHigherOrder(t *testing.T) {
	shift := Map(func(c rune) rune {
		if c == '/' {
			return '.'
		}
		return c
	}, "a/b/c")
	assert.Equal(t, "a.b.c", shift)

	assert.Equal(t, "22", Filter(unicode.IsDigit, "R2-D2"))

	lenl := Foldl(func(c rune, n int) int { return n + 1 }, 0, "héllo")
	if lenl != 5 {
		t.Errorf("expected foldl to count 5 runes, counts %d", lenl)
	}
	rev := Foldr(func(c rune, acc string) string { return acc + string(c) }, "", "time")
	if rev != "emit" {
		t.Errorf("expected foldr to reverse into \"emit\", is %q", rev)
	}

	if !Any(unicode.IsDigit, "90210") || Any(unicode.IsDigit, "heart") {
		t.Error("any broken")
	}
	if !All(unicode.IsDigit, "90210") || All(unicode.IsDigit, "R2-D2") {
		t.Error("all broken")
	}
}

func TestListConversion(t *testing.T) {
	assert.Equal(t, []rune{'a', 'b', 'c'}, ToList("abc"))
	assert.Equal(t, "abc", FromList([]rune{'a', 'b', 'c'}))
}
