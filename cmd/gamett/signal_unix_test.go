//go:build !windows

package main

import (
	"sync/atomic"
	"syscall"
	"testing"
	"time"
)

func TestWatchSignals_Interrupt(t *testing.T) {
	var cancel atomic.Bool
	stop := watchSignals(&cancel)
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("kill: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !cancel.Load() {
		if time.Now().After(deadline) {
			t.Fatal("cancel flag not set after SIGINT")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWatchSignals_StopWithoutSignal(t *testing.T) {
	var cancel atomic.Bool
	stop := watchSignals(&cancel)
	stop()
	if cancel.Load() {
		t.Error("cancel flag set without a signal")
	}
}
