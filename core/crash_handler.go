package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// restoreHook puts the terminal back into a sane state, installed by the host once the screen is up
var restoreHook atomic.Pointer[func()]

// SetRestoreHook installs the terminal restore function used by HandleCrash, nil clears it
func SetRestoreHook(fn func()) {
	if fn == nil {
		restoreHook.Store(nil)
		return
	}
	restoreHook.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	if fn := restoreHook.Swap(nil); fn != nil {
		(*fn)()
	}

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
