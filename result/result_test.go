package result_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	. "github.com/npillmayer/elmkit/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultWithDefault(t *testing.T) {
	if Ok(7).WithDefault(100) != 7 {
		t.Error("expected Ok(7) to have value 7, isn't")
	}
	if Err[int](errors.New("not ok")).WithDefault(100) != 100 {
		t.Error("expected Err to default to 100, isn't")
	}
}

func TestResultMap(t *testing.T) {
	x := Map(strconv.Itoa, Ok(7))
	var s string
	switch m := x.Match(); m {
	case m.Ok(&s):
	default:
		t.Error("expected map(itoa, Ok 7) to be an Ok, isn't")
	}
	if s != "7" {
		t.Errorf("expected map(itoa, Ok 7) to be \"7\", is %q", s)
	}

	y := Map(strconv.Itoa, Err[int](errors.New("not ok")))
	var e error
	switch m := y.Match(); m {
	case m.Err(&e):
		t.Logf("Err: %s", e)
	default:
		t.Error("expected map over an Err to stay an Err, doesn't")
	}
}

func TestResultAndThen(t *testing.T) {
	atoi := func(s string) Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[int](err)
		}
		return Ok(n)
	}

	var v int
	var e error
	switch m := AndThen(atoi, Ok("42")).Match(); m {
	case m.Ok(&v):
	case m.Err(&e):
		t.Errorf("expected Ok(\"42\") |> andThen(atoi) to be Ok, is Err: %s", e)
	}
	if v != 42 {
		t.Errorf("expected andThen(atoi) to yield 42, is %d", v)
	}

	switch m := AndThen(atoi, Ok("seven")).Match(); m {
	case m.Ok(&v):
		t.Error("expected Ok(\"seven\") |> andThen(atoi) to fail, didn't")
	case m.Err(&e):
		t.Logf("Err: %s", e)
	}
}

func TestResultMapError(t *testing.T) {
	wrap := func(err error) error {
		return fmt.Errorf("parse: %w", err)
	}
	y := MapError(wrap, Err[int](errors.New("not ok")))
	var e error
	switch m := y.Match(); m {
	case m.Err(&e):
	default:
		t.Fatal("expected mapError over an Err to stay an Err, doesn't")
	}
	if e.Error() != "parse: not ok" {
		t.Errorf("expected wrapped error message, got %q", e.Error())
	}
}

func TestResultUncomparablePayload(t *testing.T) {
	x := Ok([]string{"a", "b"})

	var v []string
	var e error
	switch m := x.Match(); m { // must not compare the slice payload
	case m.Ok(&v):
	case m.Err(&e):
		t.Error("expected Ok of a slice to match the Ok case, didn't")
	}
	if len(v) != 2 || v[1] != "b" {
		t.Errorf("expected v to be [a b], is %v", v)
	}

	joined := Map(func(xs []string) int { return len(xs) }, x)
	if joined.WithDefault(0) != 2 {
		t.Error("expected Map over a slice payload to yield 2, didn't")
	}
}

func TestResultMaybeConversion(t *testing.T) {
	var v int
	switch m := ToMaybe(Ok(7)).Match(); m {
	case m.Just(&v):
	case m.Nothing():
		t.Error("expected toMaybe(Ok 7) to be Just(7), isn't")
	}
	if v != 7 {
		t.Errorf("expected toMaybe(Ok 7) to carry 7, is %d", v)
	}

	back := FromMaybe[int](errors.New("was nothing"), ToMaybe(Err[int](errors.New("not ok"))))
	var e error
	switch m := back.Match(); m {
	case m.Err(&e):
		t.Logf("Err: %s", e)
	default:
		t.Error("expected fromMaybe of a Nothing to be Err, isn't")
	}
}
