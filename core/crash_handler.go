package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the host display before a crash report is printed
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
)

// RegisterCrashTerminal sets the display restored by HandleCrash, nil clears it
func RegisterCrashTerminal(f Finalizer) {
	crashMu.Lock()
	crashTerminal = f
	crashMu.Unlock()
}

// HandleCrash is the unified fatal panic handler that restores the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	term := crashTerminal
	crashMu.Unlock()
	if term != nil {
		term.Fini()
	}

	Logger().Error("crash", "panic", fmt.Sprint(r), "stack", string(debug.Stack()))

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Recover logs a panic from a frame-level operation and lets the caller continue
// Must be called directly via defer
func Recover(where string) {
	if r := recover(); r != nil {
		Logger().Error("recovered panic", "where", where, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
	}
}

// Go runs a function in a new goroutine with panic recovery.
// Background work (decode, detection) must never take the process down, so panics are logged and dropped.
func Go(fn func()) {
	go func() {
		defer Recover("background")
		fn()
	}()
}
