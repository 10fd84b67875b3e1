package observ

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerReportOrder(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin("tokenize")
	tm.End(a, "")
	b := tm.Begin("parse")
	tm.End(b, "3 decls")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(rep.Phases))
	}
	if rep.Phases[0].Name != "tokenize" || rep.Phases[1].Name != "parse" {
		t.Fatalf("unexpected order: %+v", rep.Phases)
	}
	if rep.Phases[1].Note != "3 decls" {
		t.Fatalf("note = %q", rep.Phases[1].Note)
	}
}

func TestTimerNestedPhasesNotDoubleCounted(t *testing.T) {
	tm := NewTimer()
	outer := tm.Begin("parse")
	inner := tm.Begin("file:a.pwn")
	time.Sleep(2 * time.Millisecond)
	tm.End(inner, "")
	tm.End(outer, "")

	rep := tm.Report()
	if rep.TotalMS != rep.Phases[0].DurationMS {
		t.Fatalf("total %.3f ms must equal outer phase %.3f ms", rep.TotalMS, rep.Phases[0].DurationMS)
	}
}

func TestTimerTrackMarksFailure(t *testing.T) {
	tm := NewTimer()
	want := errors.New("boom")
	if err := tm.Track("load", func() error { return want }); !errors.Is(err, want) {
		t.Fatalf("Track returned %v", err)
	}
	if !strings.Contains(tm.Summary(), "// failed") {
		t.Fatalf("summary lacks failure note:\n%s", tm.Summary())
	}
}

func TestTimerConcurrentAndNil(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			tm.End(tm.Begin("file"), "")
		})
	}
	wg.Wait()
	if n := len(tm.Report().Phases); n != 8 {
		t.Fatalf("got %d phases, want 8", n)
	}

	var nilTimer *Timer
	nilTimer.End(nilTimer.Begin("x"), "")
	if len(nilTimer.Report().Phases) != 0 {
		t.Fatalf("nil timer must report nothing")
	}
	if tm.End(-1, ""); len(tm.Report().Phases) != 8 {
		t.Fatalf("End(-1) changed phases")
	}
}
