package testutil

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
)

// stdoutMu serializes every swap of the process-wide os.Stdout.
var stdoutMu sync.Mutex

// SwapStdout points os.Stdout at f while fn runs. The previous value is
// restored when fn returns, panics, or calls t.FailNow.
func SwapStdout(t testing.TB, f *os.File, fn func()) {
	t.Helper()
	stdoutMu.Lock()
	defer stdoutMu.Unlock()

	old := os.Stdout
	os.Stdout = f
	defer func() { os.Stdout = old }()
	fn()
}

// CaptureStdout runs fn with os.Stdout redirected into a pipe and returns
// everything fn wrote.
func CaptureStdout(t testing.TB, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() { _ = r.Close() }()

	var buf bytes.Buffer
	copied := make(chan error, 1)
	go func() {
		_, err := io.Copy(&buf, r)
		copied <- err
	}()

	func() {
		defer func() { _ = w.Close() }()
		SwapStdout(t, w, fn)
	}()

	if err := <-copied; err != nil {
		t.Fatalf("read: %v", err)
	}
	return buf.String()
}
