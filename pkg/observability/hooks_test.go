package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingHooks struct {
	loads    []string
	analyzed []string
	failures int
}

func (r *recordingHooks) OnLoadComplete(_ context.Context, path string, _ time.Duration, err error) {
	r.loads = append(r.loads, path)
	if err != nil {
		r.failures++
	}
}

func (r *recordingHooks) OnAnalyzeComplete(_ context.Context, path, kind string, _ time.Duration, err error) {
	r.analyzed = append(r.analyzed, path+"="+kind)
	if err != nil {
		r.failures++
	}
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()
	h := NoopAnalysisHooks{}
	h.OnLoadComplete(ctx, "a.json", time.Millisecond, nil)
	h.OnAnalyzeComplete(ctx, "a.json", "tile", time.Millisecond, errors.New("boom"))
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Fatal("Analysis() should return NoopAnalysisHooks by default")
	}

	rec := &recordingHooks{}
	SetAnalysisHooks(rec)
	if Analysis() != rec {
		t.Fatal("SetAnalysisHooks should register custom hooks")
	}

	SetAnalysisHooks(nil)
	if Analysis() != rec {
		t.Error("SetAnalysisHooks(nil) should keep the current hooks")
	}

	ctx := context.Background()
	Analysis().OnLoadComplete(ctx, "a.json", 0, nil)
	Analysis().OnAnalyzeComplete(ctx, "a.json", "stretch", 0, nil)
	Analysis().OnAnalyzeComplete(ctx, "b.json", "", 0, errors.New("bad"))

	if len(rec.loads) != 1 || len(rec.analyzed) != 2 || rec.failures != 1 {
		t.Errorf("recorded loads=%v analyzed=%v failures=%d", rec.loads, rec.analyzed, rec.failures)
	}

	Reset()
	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Error("Reset should restore the no-op hooks")
	}
}
