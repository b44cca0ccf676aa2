package testutil

import (
	"context"
	"testing"
)

// CleanupFunc stops whatever Setup started.
type CleanupFunc func() error

// Setup starts component with a background context.
func Setup(component TestComponent) (CleanupFunc, error) {
	return SetupWithContext(context.Background(), component)
}

// SetupWithContext starts component and returns its stop function.
func SetupWithContext(ctx context.Context, component TestComponent) (CleanupFunc, error) {
	if err := component.Start(ctx); err != nil {
		return nil, err
	}
	return func() error { return component.Stop(ctx) }, nil
}

// THelper runs component lifecycle calls against a test, failing it on error.
type THelper struct {
	t   testing.TB
	ctx context.Context
}

// T returns a THelper bound to t.
//
//	svc := testutil.NewService(reports.Path, reports.Version)
//	testutil.T(t).Setup(svc) // stopped by t.Cleanup
func T(t testing.TB) *THelper {
	return &THelper{t: t, ctx: context.Background()}
}

// WithContext replaces the context passed to the component.
func (h *THelper) WithContext(ctx context.Context) *THelper {
	h.ctx = ctx
	return h
}

// Setup starts component and registers its Stop with t.Cleanup.
func (h *THelper) Setup(component TestComponent) {
	h.t.Helper()
	if err := component.Start(h.ctx); err != nil {
		h.t.Fatalf("start %s: %v", component.Name(), err)
	}
	h.t.Cleanup(func() {
		if err := component.Stop(h.ctx); err != nil {
			h.t.Errorf("stop %s: %v", component.Name(), err)
		}
	})
}

// Reset clears component state between cases.
func (h *THelper) Reset(component TestComponent) {
	h.t.Helper()
	if err := component.Reset(h.ctx); err != nil {
		h.t.Fatalf("reset %s: %v", component.Name(), err)
	}
}

// Snapshot captures component state for a later Restore.
func (h *THelper) Snapshot(component TestComponent) interface{} {
	h.t.Helper()
	snapshot, err := component.Snapshot(h.ctx)
	if err != nil {
		h.t.Fatalf("snapshot %s: %v", component.Name(), err)
	}
	return snapshot
}

// Restore puts component back into a captured state.
func (h *THelper) Restore(component TestComponent, snapshot interface{}) {
	h.t.Helper()
	if err := component.Restore(h.ctx, snapshot); err != nil {
		h.t.Fatalf("restore %s: %v", component.Name(), err)
	}
}
