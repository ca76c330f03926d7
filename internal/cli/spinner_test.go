package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("Working")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	if s.Cancelled() {
		t.Error("plain Stop should not mark the spinner cancelled")
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Working")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancelled after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Working")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopOutcomes(t *testing.T) {
	s := newSpinner("Working")
	s.Start()
	s.StopWithSuccess("Done")

	s = newSpinner("Working")
	s.Start()
	s.StopWithError("Failed")
}
