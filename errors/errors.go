package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the host/plugin conversation the error occurred.
type Phase string

const (
	PhaseLoad     Phase = "load"     // library open, entry probe, descriptor validation
	PhaseDispatch Phase = "dispatch" // opcode calls through the dispatcher pointer
	PhaseParam    Phase = "param"    // direct get/set-parameter calls
	PhaseProcess  Phase = "process"  // sample-block processing
	PhaseEvents   Phase = "events"   // MIDI event delivery
	PhaseState    Phase = "state"    // host state machine transitions
	PhaseDecode   Phase = "decode"   // audio file decoding
)

// Kind categorizes the error.
type Kind string

const (
	KindLibrary               Kind = "library"                 // dlopen/dlclose failure
	KindEntryPointNotFound    Kind = "entry_point_not_found"   // no known entry symbol present
	KindInvalidPlugin         Kind = "invalid_plugin"          // descriptor magic mismatch or nil descriptor
	KindUnsupportedSampleType Kind = "unsupported_sample_type" // buffer precision is neither 32 nor 64 bit float
	KindPrecisionNotSupported Kind = "precision_not_supported" // double processing against a single-only plugin
	KindMissingSampleFrames   Kind = "missing_sample_frames"   // no input buffer and no explicit frame count
	KindChannelCountMismatch  Kind = "channel_count_mismatch"  // buffer shape disagrees with the descriptor
	KindInvalidInput          Kind = "invalid_input"
	KindNotLoaded             Kind = "not_loaded" // operation against an unloaded or closed handle
	KindBadTransition         Kind = "bad_transition"
	KindUnsupportedFormat     Kind = "unsupported_format"
)

// Error is the structured error type used throughout the host.
type Error struct {
	Phase  Phase
	Kind   Kind
	Detail string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two Errors match when their
// Phase and Kind agree; Detail and Cause are context, not identity.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// New creates an error with a formatted detail message.
func New(phase Phase, kind Kind, format string, args ...any) *Error {
	detail := format
	if len(args) > 0 {
		detail = fmt.Sprintf(format, args...)
	}
	return &Error{Phase: phase, Kind: kind, Detail: detail}
}

// Wrap wraps an existing error with Phase/Kind context.
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{Phase: phase, Kind: kind, Detail: detail, Cause: cause}
}

// Convenience constructors for the fixed taxonomy.

// Library creates a dynamic library error (open, symbol table, close).
func Library(detail string, cause error) *Error {
	return &Error{Phase: PhaseLoad, Kind: KindLibrary, Detail: detail, Cause: cause}
}

// EntryPointNotFound is returned when none of the probed entry symbols exist.
func EntryPointNotFound(path string, probed []string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindEntryPointNotFound,
		Detail: fmt.Sprintf("no entry symbol in %s (tried %s)", path, strings.Join(probed, ", ")),
	}
}

// InvalidPlugin is returned when the entry point yields no usable descriptor.
func InvalidPlugin(detail string, args ...any) *Error {
	return New(PhaseLoad, KindInvalidPlugin, detail, args...)
}

// UnsupportedSampleType is returned for a buffer precision the ABI does not define.
func UnsupportedSampleType(detail string, args ...any) *Error {
	return New(PhaseProcess, KindUnsupportedSampleType, detail, args...)
}

// PrecisionNotSupported is returned when 64-bit processing is requested but
// the plugin's capability flag denies it.
func PrecisionNotSupported() *Error {
	return &Error{
		Phase:  PhaseProcess,
		Kind:   KindPrecisionNotSupported,
		Detail: "plugin does not advertise double-precision processing",
	}
}

// MissingSampleFrames is returned by the convenience process path when
// neither an input buffer nor an explicit frame count is given.
func MissingSampleFrames() *Error {
	return &Error{
		Phase:  PhaseProcess,
		Kind:   KindMissingSampleFrames,
		Detail: "frame count required when no input buffer is given",
	}
}

// ChannelCountMismatch reports a buffer whose channel count disagrees with
// the descriptor's declared count for the given direction.
func ChannelCountMismatch(direction string, got, want int) *Error {
	return &Error{
		Phase:  PhaseProcess,
		Kind:   KindChannelCountMismatch,
		Detail: fmt.Sprintf("%s buffer has %d channels, plugin declares %d", direction, got, want),
	}
}

// NotLoaded reports an operation against an unloaded or closed handle.
func NotLoaded(phase Phase, what string) *Error {
	return &Error{Phase: phase, Kind: KindNotLoaded, Detail: what + " is not loaded"}
}

// BadTransition reports an illegal host state machine transition.
func BadTransition(from, to string) *Error {
	return &Error{
		Phase:  PhaseState,
		Kind:   KindBadTransition,
		Detail: fmt.Sprintf("cannot move from %s to %s", from, to),
	}
}

// InvalidInput creates an invalid input error.
func InvalidInput(phase Phase, detail string, args ...any) *Error {
	return New(phase, KindInvalidInput, detail, args...)
}

// UnsupportedFormat reports an audio file format the decoder registry
// does not recognize.
func UnsupportedFormat(detail string) *Error {
	return &Error{Phase: PhaseDecode, Kind: KindUnsupportedFormat, Detail: detail}
}
