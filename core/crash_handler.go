package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Terminal restore sequences used when no screen finalizer is registered
var resetSequences = []string{
	"\x1b[?1000l", // mouse click tracking off
	"\x1b[?1006l", // SGR mouse off
	"\x1b[?25h",   // cursor show
	"\x1b[?1049l", // leave alternate screen
	"\x1b[0m",     // reset attributes
	"\x1b[?7h",    // auto-wrap on
}

var (
	crashMu   sync.Mutex
	crashFini func()
	exitFunc  = os.Exit
)

// SetCrashFinalizer registers the screen teardown run before a crash report
// Passing nil falls back to raw escape sequences
func SetCrashFinalizer(fini func()) {
	crashMu.Lock()
	crashFini = fini
	crashMu.Unlock()
}

// EmergencyReset writes terminal restore sequences to w
func EmergencyReset(w io.Writer) {
	for _, seq := range resetSequences {
		io.WriteString(w, seq)
	}
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	fini := crashFini
	crashMu.Unlock()

	if fini != nil {
		fini()
	} else {
		EmergencyReset(os.Stdout)
	}

	// Raw mode may still be active, use \r\n
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exitFunc(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so a crash restores the terminal
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
