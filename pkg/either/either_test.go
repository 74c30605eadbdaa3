package either

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestNew_BothPopulated(t *testing.T) {
	t.Parallel()

	l, r := "L", "R"
	_, err := New(&l, &r)
	if !errors.Is(err, ErrBothValues) {
		t.Fatalf("expected ErrBothValues, got %v", err)
	}
	if err.Error() != "Either cannot have both a left and a right" {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
}

func TestNew_NeitherPopulated(t *testing.T) {
	t.Parallel()

	_, err := New[string, string](nil, nil)
	if !errors.Is(err, ErrNoValues) {
		t.Fatalf("expected ErrNoValues, got %v", err)
	}
	if err.Error() != "Either requires a left or a right" {
		t.Fatalf("unexpected error text: %q", err.Error())
	}
}

func TestNew_SingleSide(t *testing.T) {
	t.Parallel()

	l := "boom"
	e, err := New[string, int](&l, nil)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	if !e.IsLeft() || e.IsRight() {
		t.Fatalf("expected a Left, got %v", e)
	}
	if got := e.LeftOr(""); got != "boom" {
		t.Fatalf("expected left payload boom, got %q", got)
	}

	r := 9
	e2, err := New[string, int](nil, &r)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	if !e2.IsRight() || e2.IsLeft() {
		t.Fatalf("expected a Right, got %v", e2)
	}
	if got := e2.RightOr(-1); got != 9 {
		t.Fatalf("expected right payload 9, got %d", got)
	}
}

func TestMust_PanicsOnConstructionError(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNoValues) {
			t.Fatalf("expected panic with ErrNoValues, got %v", r)
		}
	}()
	Must(New[int, int](nil, nil))
}

func TestExclusivityQueries(t *testing.T) {
	t.Parallel()

	l := Left[string, int]("e")
	r := Right[string, int](1)

	if l.IsLeft() == l.IsRight() {
		t.Fatalf("IsLeft and IsRight must be mutually exclusive for %v", l)
	}
	if r.IsLeft() == r.IsRight() {
		t.Fatalf("IsLeft and IsRight must be mutually exclusive for %v", r)
	}
}

func TestMap_RightBiased(t *testing.T) {
	t.Parallel()

	doubled := Map(Right[string, int](21), func(v int) int { return v * 2 })
	if got := doubled.RightOr(-1); got != 42 {
		t.Fatalf("expected Right(42), got %v", doubled)
	}

	invoked := false
	passed := Map(Left[string, int]("reason"), func(v int) string {
		invoked = true
		return strconv.Itoa(v)
	})
	if invoked {
		t.Fatalf("fn must not run for a Left")
	}
	if !passed.IsLeft() || passed.LeftOr("") != "reason" {
		t.Fatalf("expected Left payload to pass through unchanged, got %v", passed)
	}
}

func TestFlatMap_RightBiased(t *testing.T) {
	t.Parallel()

	parse := func(s string) Either[string, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Left[string, int]("not a number: " + s)
		}
		return Right[string, int](n)
	}

	if got := FlatMap(Right[string, string]("12"), parse); got.RightOr(-1) != 12 {
		t.Fatalf("expected Right(12), got %v", got)
	}
	if got := FlatMap(Right[string, string]("x"), parse); got.LeftOr("") != "not a number: x" {
		t.Fatalf("expected Left from fn, got %v", got)
	}

	invoked := false
	got := FlatMap(Left[string, string]("earlier"), func(string) Either[string, int] {
		invoked = true
		return Right[string, int](0)
	})
	if invoked || got.LeftOr("") != "earlier" {
		t.Fatalf("expected short-circuit with earlier Left, got %v (invoked=%v)", got, invoked)
	}
}

func TestMapLeft(t *testing.T) {
	t.Parallel()

	upper := MapLeft(Left[string, int]("oops"), strings.ToUpper)
	if got := upper.LeftOr(""); got != "OOPS" {
		t.Fatalf("expected Left(OOPS), got %v", upper)
	}

	invoked := false
	kept := MapLeft(Right[string, int](3), func(s string) string {
		invoked = true
		return s
	})
	if invoked || kept.RightOr(-1) != 3 {
		t.Fatalf("expected Right payload to pass through, got %v (invoked=%v)", kept, invoked)
	}
}

func TestMatch_ActiveBranch(t *testing.T) {
	t.Parallel()

	got := Match(Right[string, int](5),
		func(l string) string { return "left:" + l },
		func(r int) string { return "right:" + strconv.Itoa(r) })
	if got != "right:5" {
		t.Fatalf("expected right:5, got %q", got)
	}

	got = Match(Left[string, int]("bad"),
		func(l string) string { return "left:" + l },
		func(r int) string { return "right" })
	if got != "left:bad" {
		t.Fatalf("expected left:bad, got %q", got)
	}
}

func TestTap_PartialHandlers(t *testing.T) {
	t.Parallel()

	var seenRight int
	Right[string, int](7).Tap(TapHandlers[string, int]{
		OnRight: func(r int) { seenRight = r },
	})
	if seenRight != 7 {
		t.Fatalf("expected OnRight to observe 7, got %d", seenRight)
	}

	var seenLeft string
	Left[string, int]("warn").Tap(TapHandlers[string, int]{
		OnLeft: func(l string) { seenLeft = l },
	})
	if seenLeft != "warn" {
		t.Fatalf("expected OnLeft to observe warn, got %q", seenLeft)
	}

	// missing handlers are no-ops
	Right[string, int](1).Tap(TapHandlers[string, int]{})
	Left[string, int]("x").Tap(TapHandlers[string, int]{})
}

func TestMustLeftAndMustRight(t *testing.T) {
	t.Parallel()

	if got := Left[string, int]("e").MustLeft(); got != "e" {
		t.Fatalf("expected e, got %q", got)
	}
	if got := Right[string, int](4).MustRight(); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestMustLeft_PanicsOnRight(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		we, ok := r.(WrongSideError)
		if !ok || we.Error() != "Either holds a right, not a left" {
			t.Fatalf("expected WrongSideError for the right arm, got %v", r)
		}
	}()
	Right[string, int](1).MustLeft()
}

func TestMustRight_PanicsOnLeft(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		we, ok := r.(WrongSideError)
		if !ok || we.Error() != "Either holds a left, not a right" {
			t.Fatalf("expected WrongSideError for the left arm, got %v", r)
		}
	}()
	Left[string, int]("e").MustRight()
}

func TestMethodMapAndFlatMap(t *testing.T) {
	t.Parallel()

	e := Right[string, int](10).
		Map(func(v int) int { return v + 1 }).
		FlatMap(func(v int) Either[string, int] {
			if v > 100 {
				return Left[string, int]("too big")
			}
			return Right[string, int](v * 2)
		})
	if got := e.RightOr(-1); got != 22 {
		t.Fatalf("expected Right(22), got %v", e)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := Right[string, int](3).String(); got != "Right(3)" {
		t.Fatalf("expected Right(3), got %q", got)
	}
	if got := Left[string, int]("e").String(); got != "Left(e)" {
		t.Fatalf("expected Left(e), got %q", got)
	}
}
