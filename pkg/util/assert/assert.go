package assert

import (
	"reflect"
	"testing"
)

// Equal fails the test immediately if actual is not equal to expected.
// Integers are compared by value rather than by type, so a literal can be
// checked against (say) a uint16 field without casting at the call site.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()

	if reflect.DeepEqual(expected, actual) || numericEqual(expected, actual) {
		return
	}

	t.Errorf("expected: %v, actual: %v", expected, actual)
	logMessage(t, msg...)
	t.FailNow()
}

// NotEqual fails the test immediately if actual is equal to expected.
func NotEqual(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()

	if !reflect.DeepEqual(expected, actual) && !numericEqual(expected, actual) {
		return
	}

	t.Errorf("unexpected: %v", actual)
	logMessage(t, msg...)
	t.FailNow()
}

// True fails the test immediately if condition is false.
func True(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if condition {
		return
	}

	t.Errorf("condition is false")
	logMessage(t, msg...)
	t.FailNow()
}

// False fails the test immediately if condition is true.
func False(t *testing.T, condition bool, msg ...any) {
	t.Helper()

	if !condition {
		return
	}

	t.Errorf("condition is true")
	logMessage(t, msg...)
	t.FailNow()
}

// Nil fails the test immediately if value is neither nil nor a nil pointer,
// slice, map, channel, function or interface.
func Nil(t *testing.T, value any, msg ...any) {
	t.Helper()

	if isNil(value) {
		return
	}

	t.Errorf("expected nil, got: %v", value)
	logMessage(t, msg...)
	t.FailNow()
}

// NotNil fails the test immediately if value is nil (see Nil).
func NotNil(t *testing.T, value any, msg ...any) {
	t.Helper()

	if !isNil(value) {
		return
	}

	t.Errorf("unexpected nil")
	logMessage(t, msg...)
	t.FailNow()
}

func logMessage(t *testing.T, msg ...any) {
	t.Helper()

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}

	return false
}

// numericEqual reports whether expected and actual are both integers holding
// the same value, regardless of their declared widths.
func numericEqual(expected, actual any) bool {
	a, aNeg, aOk := normalise(expected)
	b, bNeg, bOk := normalise(actual)

	return aOk && bOk && a == b && aNeg == bNeg
}

// normalise converts an integer of any width into its raw bits along with a
// sign flag, such that two integers are equal iff their normalised forms are.
func normalise(x any) (uint64, bool, bool) {
	rv := reflect.ValueOf(x)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		return uint64(n), n < 0, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), false, true
	}

	return 0, false, false
}
