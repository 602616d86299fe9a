package main

import (
	"os"
	"os/signal"
	"sync/atomic"
)

// watchSignals sets cancel when the process is interrupted. The returned
// function stops watching and must be called once the work is done.
func watchSignals(cancel *atomic.Bool) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	notifySignals(sigCh)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigCh:
			cancel.Store(true)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
