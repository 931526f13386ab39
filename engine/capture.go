//go:build linux || darwin

package engine

import (
	"os"

	"golang.org/x/sys/unix"
)

// capture is the scoped stdio redirection wrapped around every foreign call
// on a non-verbose handle. Plugins print banners, license nags and debug
// spew; redirecting fds 1 and 2 to the null device for exactly the duration
// of one call keeps that noise out of the host's streams without leaking the
// redirection across unrelated calls.
//
// The redirection works at the file descriptor level because the plugin
// writes through libc, not through os.Stdout.
type capture struct {
	savedOut int
	savedErr int
}

// silenceStdio redirects fds 1 and 2 to the null device and returns a
// restore function. Call the restore function on every exit path; the
// engine does so via defer so a panic unwinds the redirection too.
//
// On any setup failure the redirection is abandoned and a no-op restore is
// returned: losing capture is better than losing the host's stdio.
func silenceStdio() func() {
	devnull, err := unix.Open(os.DevNull, unix.O_WRONLY, 0)
	if err != nil {
		return func() {}
	}

	c := capture{savedOut: -1, savedErr: -1}
	if c.savedOut, err = unix.Dup(1); err != nil {
		unix.Close(devnull)
		return func() {}
	}
	if c.savedErr, err = unix.Dup(2); err != nil {
		unix.Close(devnull)
		unix.Close(c.savedOut)
		return func() {}
	}

	if err := dupTo(devnull, 1); err == nil {
		_ = dupTo(devnull, 2)
	}
	unix.Close(devnull)

	return func() {
		_ = dupTo(c.savedOut, 1)
		_ = dupTo(c.savedErr, 2)
		unix.Close(c.savedOut)
		unix.Close(c.savedErr)
	}
}

// quiet returns the stdio guard for one foreign call: a real redirection for
// captured handles, a no-op for verbose ones.
func (h *Handle) quiet() func() {
	if h.verbose {
		return func() {}
	}
	return silenceStdio()
}
