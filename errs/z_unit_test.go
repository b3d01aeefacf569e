package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOutOfRangeIs(t *testing.T) {
	err := OutOfRange(Warn, "x", 9, 8)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err.ErrLv != Warn {
		t.Fatalf("expected warn level, got %v", err.ErrLv)
	}
	if !strings.Contains(err.Error(), "x 9 out of [0,8)") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestWrapKeepsLevel(t *testing.T) {
	inner := NewWarn("bad move")
	w := Wrap(inner, "select failed")
	if w.ErrLv != Warn {
		t.Fatalf("expected inherited warn level, got %v", w.ErrLv)
	}
	std := Wrap(fmt.Errorf("io"), "read failed")
	if std.ErrLv != Fatal {
		t.Fatalf("expected fatal for foreign cause, got %v", std.ErrLv)
	}
	if e, ok := AsErr(fmt.Errorf("ctx: %w", w)); !ok || e != w {
		t.Fatalf("AsErr should unwrap to the outer *E")
	}
}
