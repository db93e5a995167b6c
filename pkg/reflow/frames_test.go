package reflow

import (
	"context"
	"testing"
	"time"
)

func TestManualFrames_RequestsDuringFlushWaitForNextFrame(t *testing.T) {
	f := &ManualFrames{}
	var ran []string
	f.RequestFrame(func() {
		ran = append(ran, "first")
		f.RequestFrame(func() { ran = append(ran, "second") })
	})

	if n := f.Flush(); n != 1 {
		t.Fatalf("Flush ran %d callbacks, want 1", n)
	}
	if len(ran) != 1 {
		t.Fatalf("ran = %v, want only first", ran)
	}
	f.Flush()
	if len(ran) != 2 || ran[1] != "second" {
		t.Fatalf("ran = %v, want [first second]", ran)
	}
}

func TestTickerFrames_DeliversFrame(t *testing.T) {
	f := NewTickerFrames(time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() { _ = f.Run(ctx) }()
	f.RequestFrame(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("frame callback never ran")
	}
}

func TestTickerFrames_StopsOnCancel(t *testing.T) {
	f := NewTickerFrames(0)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- f.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		if err != context.Canceled {
			t.Fatalf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
