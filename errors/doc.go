// Package errors provides the structured error type used throughout vsthost.
//
// Errors are categorized by Phase (where in the host/plugin conversation the
// error occurred) and Kind (what went wrong). Callers match with errors.Is
// against a Phase/Kind pair instead of parsing messages:
//
//	if stderrors.Is(err, &errors.Error{Phase: errors.PhaseProcess, Kind: errors.KindPrecisionNotSupported}) {
//	    // fall back to single precision
//	}
//
// Convenience constructors cover the common patterns:
//
//	err := errors.EntryPointNotFound(path, probed)
//	err := errors.ChannelCountMismatch("input", got, want)
//
// Faults inside the plugin's native code are deliberately absent from this
// taxonomy: the host runs untrusted machine code in-process, and a native
// fault terminates the process rather than surfacing as an Error.
package errors
