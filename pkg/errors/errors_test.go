package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

type recordingHandler struct {
	handled []*AnimError
}

func (h *recordingHandler) HandleError(err *AnimError) {
	h.handled = append(h.handled, err)
}

func TestAnimErrorFormat(t *testing.T) {
	err := &AnimError{
		Op:   "animator.transitionToRunning",
		Kind: KindTiming,
		Err:  fmt.Errorf("strange start delay of 60000ms"),
	}
	want := "animator.transitionToRunning [timing]: strange start delay of 60000ms"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestAnimErrorUnwrap(t *testing.T) {
	inner := stderrors.New("boom")
	err := &AnimError{Op: "op", Kind: KindTarget, Err: inner}
	if !stderrors.Is(err, inner) {
		t.Fatal("AnimError should unwrap to its inner error")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindUnknown:    "unknown",
		KindTiming:     "timing",
		KindTarget:     "target",
		KindConfig:     "config",
		KindStoryboard: "storyboard",
		Kind(99):       "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}

func TestReportUsesInstalledHandler(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&AnimError{Op: "op", Kind: KindTiming, Err: stderrors.New("x")})
	Report(nil)

	if len(h.handled) != 1 {
		t.Fatalf("handled %d errors, want 1", len(h.handled))
	}
	if h.handled[0].Timestamp.IsZero() {
		t.Error("Report should stamp a timestamp")
	}
}

func TestWarnfFormats(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Warnf("animator.transitionToRunning", KindTiming, "strange duration of %dms", -5)

	if len(h.handled) != 1 {
		t.Fatalf("handled %d errors, want 1", len(h.handled))
	}
	got := h.handled[0]
	if got.Kind != KindTiming {
		t.Errorf("kind = %v, want timing", got.Kind)
	}
	if got.Err.Error() != "strange duration of -5ms" {
		t.Errorf("err = %q", got.Err.Error())
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Fatalf("DefaultHandler = %T after reset, want *LogHandler", DefaultHandler)
	}
}
