package optkit

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// catchUnwrap runs f, which must panic with *UnwrapError, and returns
// the recovered panic value.
func catchUnwrap(t *testing.T, f func()) *UnwrapError {
	t.Helper()
	var caught *UnwrapError
	func() {
		defer func() {
			v := recover()
			if v == nil {
				t.Fatalf("expected a panic, got none")
			}
			ue, ok := v.(*UnwrapError)
			if !ok {
				t.Fatalf("expected panic value of type *UnwrapError, got %T (%v)", v, v)
			}
			caught = ue
		}()
		f()
	}()
	return caught
}

func TestOptionVariants(t *testing.T) {
	s := Some(10)
	if !s.IsSome() || s.IsNone() {
		t.Errorf("expected Some(10) to be the present variant")
	}
	n := None[int]()
	if n.IsSome() || !n.IsNone() {
		t.Errorf("expected None to be the absent variant")
	}
	if v, ok := s.Get(); !ok || v != 10 {
		t.Errorf("expected Get of Some(10) to be (10, true), got (%d, %v)", v, ok)
	}
	if _, ok := n.Get(); ok {
		t.Errorf("expected Get of None to report absence")
	}
}

func TestOptionUnwrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "optkit.types")
	defer teardown()
	//
	if v := Some(10).Unwrap(); v != 10 {
		t.Errorf("expected Some(10).Unwrap() to be 10, is %d", v)
	}
	if v := Some(10).UnwrapOr(20); v != 10 {
		t.Errorf("expected Some(10).UnwrapOr(20) to be 10, is %d", v)
	}
	if v := None[int]().UnwrapOr(20); v != 20 {
		t.Errorf("expected None.UnwrapOr(20) to be 20, is %d", v)
	}
	if v := None[int]().UnwrapOrElse(func() int { return 7 }); v != 7 {
		t.Errorf("expected None.UnwrapOrElse to evaluate the fallback, got %d", v)
	}
	if v := None[int]().UnwrapOrZero(); v != 0 {
		t.Errorf("expected None.UnwrapOrZero to be 0, is %d", v)
	}
	ue := catchUnwrap(t, func() { None[int]().Unwrap() })
	if ue.Op != "Option.Unwrap" {
		t.Errorf("expected failed op 'Option.Unwrap', got %q", ue.Op)
	}
	ue = catchUnwrap(t, func() { None[string]().Expect("user must exist") })
	if !strings.Contains(ue.Error(), "user must exist") {
		t.Errorf("expected Expect message in error, got %q", ue.Error())
	}
}

// TestOptionEquality verifies the structural equality contract: None
// values of a type are always equal, regardless of how they were
// constructed, and Some values compare by contained value.
func TestOptionEquality(t *testing.T) {
	if None[int]() != None[int]() {
		t.Errorf("expected two independently constructed None values to be equal")
	}
	var zero Option[int]
	if zero != None[int]() {
		t.Errorf("expected the zero value of Option to equal None")
	}
	if Some(3).Filter(func(n int) bool { return n > 5 }) != None[int]() {
		t.Errorf("expected a filtered-out Some to equal None")
	}
	if Some(10) != Some(10) {
		t.Errorf("expected Some(10) == Some(10)")
	}
	if Some(10) == Some(20) {
		t.Errorf("expected Some(10) != Some(20)")
	}
	if Some(0) == None[int]() {
		t.Errorf("expected Some(zero value) to differ from None")
	}
}

func TestOptionFromPtr(t *testing.T) {
	if FromPtr((*int)(nil)) != None[int]() {
		t.Errorf("expected FromPtr(nil) to be None")
	}
	v := 42
	if FromPtr(&v) != Some(42) {
		t.Errorf("expected FromPtr(&42) to be Some(42)")
	}
	if p := Some(42).Ptr(); p == nil || *p != 42 {
		t.Errorf("expected Ptr of Some(42) to point at 42")
	}
	if p := None[int]().Ptr(); p != nil {
		t.Errorf("expected Ptr of None to be nil, points at %d", *p)
	}
}

func TestOptionBoolOperators(t *testing.T) {
	tests := []struct {
		name     string
		got      Option[int]
		expected Option[int]
	}{
		{"Or keeps Some", Some(1).Or(Some(2)), Some(1)},
		{"Or falls back", None[int]().Or(Some(2)), Some(2)},
		{"Or of two None", None[int]().Or(None[int]()), None[int]()},
		{"OrElse keeps Some", Some(1).OrElse(func() Option[int] { return Some(2) }), Some(1)},
		{"OrElse falls back", None[int]().OrElse(func() Option[int] { return Some(2) }), Some(2)},
		{"Xor left", Some(1).Xor(None[int]()), Some(1)},
		{"Xor right", None[int]().Xor(Some(2)), Some(2)},
		{"Xor both Some", Some(1).Xor(Some(2)), None[int]()},
		{"Xor both None", None[int]().Xor(None[int]()), None[int]()},
		{"And keeps rhs", And(Some(1), Some(2)), Some(2)},
		{"And on None", And(None[int](), Some(2)), None[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v; want %v", tt.got, tt.expected)
			}
		})
	}
}

func TestOptionFilterInspect(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }
	if Some(4).Filter(isEven) != Some(4) {
		t.Errorf("expected Some(4) to pass the even filter")
	}
	if Some(3).Filter(isEven) != None[int]() {
		t.Errorf("expected Some(3) to be filtered out")
	}
	if None[int]().Filter(isEven) != None[int]() {
		t.Errorf("expected None to stay None under Filter")
	}
	if !Some(4).IsSomeAnd(isEven) || None[int]().IsSomeAnd(isEven) {
		t.Errorf("IsSomeAnd mismatch")
	}
	seen := 0
	Some(5).Inspect(func(n int) { seen = n })
	if seen != 5 {
		t.Errorf("expected Inspect to observe 5, saw %d", seen)
	}
	None[int]().Inspect(func(n int) { t.Errorf("Inspect must not run on None") })
}

func TestOptionMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if Map(Some(3), double) != Some(6) {
		t.Errorf("expected Map to double the contained value")
	}
	if Map(None[int](), double) != None[int]() {
		t.Errorf("expected Map to leave None unchanged")
	}
	if MapOr(None[int](), -1, double) != -1 {
		t.Errorf("expected MapOr to return the default for None")
	}
	if MapOr(Some(3), -1, double) != 6 {
		t.Errorf("expected MapOr to apply the function for Some")
	}
	if MapOrElse(None[int](), func() int { return -1 }, double) != -1 {
		t.Errorf("expected MapOrElse to evaluate the fallback for None")
	}
	half := func(n int) Option[int] {
		if n%2 != 0 {
			return None[int]()
		}
		return Some(n / 2)
	}
	if AndThen(Some(8), half) != Some(4) {
		t.Errorf("expected AndThen to chain into Some(4)")
	}
	if AndThen(Some(3), half) != None[int]() {
		t.Errorf("expected AndThen to propagate the chained None")
	}
	if AndThen(None[int](), half) != None[int]() {
		t.Errorf("expected AndThen on None to short-circuit")
	}
}

func TestOptionZipFlatten(t *testing.T) {
	z := Zip(Some(1), Some("a"))
	if z != Some(Pair[int, string]{First: 1, Second: "a"}) {
		t.Errorf("expected Zip to pair both values, got %v", z)
	}
	if Zip(Some(1), None[string]()) != None[Pair[int, string]]() {
		t.Errorf("expected Zip with an empty side to be None")
	}
	zw := ZipWith(Some(2), Some(3), func(a, b int) int { return a * b })
	if zw != Some(6) {
		t.Errorf("expected ZipWith to combine to Some(6), got %v", zw)
	}
	if Flatten(Some(Some(9))) != Some(9) {
		t.Errorf("expected Flatten to remove one level of nesting")
	}
	if Flatten(Some(None[int]())) != None[int]() {
		t.Errorf("expected Flatten of Some(None) to be None")
	}
	if Flatten(None[Option[int]]()) != None[int]() {
		t.Errorf("expected Flatten of None to be None")
	}
	if !Contains(Some(7), 7) || Contains(Some(7), 8) || Contains(None[int](), 7) {
		t.Errorf("Contains mismatch")
	}
}

func TestOptionString(t *testing.T) {
	tests := []struct {
		option   Option[int]
		expected string
	}{
		{Some(10), "Some(10)"},
		{None[int](), "None"},
	}

	for _, tt := range tests {
		if result := tt.option.String(); result != tt.expected {
			t.Errorf("Option.String() = %q; want %q", result, tt.expected)
		}
	}
}
