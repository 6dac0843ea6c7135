package graceful_test

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"gopostboard/pkg/shutdown"
)

func sendTerminationSignal(t *testing.T) {
	t.Helper()

	process, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("failed to find own process: %v", err)
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("failed to send SIGTERM: %v", err)
	}
}

func TestWaitRunsAllHooksOnSignal(t *testing.T) {
	var calls atomic.Int32
	waitDone := make(chan struct{})

	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}

	go func() {
		shutdown.Wait(time.Second, hook, hook, hook)
		close(waitDone)
	}()

	time.Sleep(100 * time.Millisecond)
	sendTerminationSignal(t)

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after the signal")
	}

	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 hook invocations, got %d", got)
	}
}

func TestWaitCutsOffSlowHooks(t *testing.T) {
	var finished atomic.Bool
	waitDone := make(chan struct{})

	slowHook := func(ctx context.Context) error {
		select {
		case <-time.After(2 * time.Second):
			finished.Store(true)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	go func() {
		shutdown.Wait(300*time.Millisecond, slowHook)
		close(waitDone)
	}()

	time.Sleep(100 * time.Millisecond)
	start := time.Now()
	sendTerminationSignal(t)

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not honor its timeout")
	}

	if elapsed := time.Since(start); elapsed >= time.Second {
		t.Errorf("Wait returned after %v, expected well under a second", elapsed)
	}
	if finished.Load() {
		t.Error("slow hook ran to completion despite the timeout")
	}
}
