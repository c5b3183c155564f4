// Package observability provides hooks for instrumenting metadata analysis.
//
// Hooks let an embedding application count loads, failures and scaling kinds
// without this module depending on a metrics backend. Register them once at
// startup:
//
//	func main() {
//	    observability.SetAnalysisHooks(&promHooks{})
//	    // ... run application
//	}
//
// Callers report events around each stage:
//
//	start := time.Now()
//	view, err := metadata.Load(path)
//	observability.Analysis().OnLoadComplete(ctx, path, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// AnalysisHooks receives events from loading and analyzing metadata files.
type AnalysisHooks interface {
	// OnLoadComplete records a metadata file read and decode.
	OnLoadComplete(ctx context.Context, path string, duration time.Duration, err error)

	// OnAnalyzeComplete records one analyzer run. kind is empty when err is set.
	OnAnalyzeComplete(ctx context.Context, path, kind string, duration time.Duration, err error)
}

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnLoadComplete(context.Context, string, time.Duration, error) {}
func (NoopAnalysisHooks) OnAnalyzeComplete(context.Context, string, string, time.Duration, error) {
}

var (
	analysisHooks AnalysisHooks = NoopAnalysisHooks{}
	hooksMu       sync.RWMutex
)

// SetAnalysisHooks registers custom analysis hooks. A nil h is ignored.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Reset restores the no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	analysisHooks = NoopAnalysisHooks{}
}
