package runtimex

import (
	"errors"
	"testing"
)

// recovered runs fn and returns the value it panicked with, if any.
func recovered(fn func()) (out any) {
	defer func() {
		out = recover()
	}()
	fn()
	return
}

func TestPanicOnError(t *testing.T) {
	t.Run("error is nil", func(t *testing.T) {
		if v := recovered(func() { PanicOnError(nil, "config") }); v != nil {
			t.Fatal("unexpected panic", v)
		}
	})

	t.Run("error is not nil", func(t *testing.T) {
		expected := errors.New("mocked error")
		v := recovered(func() { PanicOnError(expected, "config") })
		err, ok := v.(error)
		if !ok || !errors.Is(err, expected) {
			t.Fatal("not the error we expected", v)
		}
		if err.Error() != "config: mocked error" {
			t.Fatal("unexpected message", err.Error())
		}
	})
}

func TestAssert(t *testing.T) {
	if v := recovered(func() { Assert(true, "database exists") }); v != nil {
		t.Fatal("unexpected panic", v)
	}
	v := recovered(func() { Assert(false, "database exists") })
	if err, ok := v.(error); !ok || err.Error() != "database exists" {
		t.Fatal("unexpected panic value", v)
	}
}

func TestTry1(t *testing.T) {
	if got := Try1(42, nil); got != 42 {
		t.Fatal("unexpected value", got)
	}
	expected := errors.New("mocked error")
	v := recovered(func() { Try1("", expected) })
	if err, ok := v.(error); !ok || !errors.Is(err, expected) {
		t.Fatal("not the error we expected", v)
	}
}
