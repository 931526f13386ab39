// Package engine provides the low-level foreign-call bridge to a VST2
// plugin: a shared object exposing a single entry symbol that returns a
// descriptor struct full of raw C function pointers.
//
// # Architecture
//
// The package provides two main types:
//
//	Handle - a loaded plugin: owns the library handle and descriptor pointer,
//	         exposes Dispatch, the direct parameter calls, and the
//	         precision-specific process calls
//	Buffer - a channel-major audio buffer backed by C memory, so its
//	         per-channel pointer array can be handed to the plugin zero-copy
//
// # Load Flow
//
//  1. Load() opens the library and probes the entry symbols in order
//     (VSTPluginMain, then main)
//  2. The entry function is called with the exported audio-master callback;
//     its return value is the plugin's descriptor
//  3. The descriptor magic is validated; a protocol version other than 2400
//     logs a warning but does not block loading
//  4. Attach() performs steps 2-3 against an in-process entry function,
//     for statically linked effects and the test fixtures
//
// # Callback Routing
//
// cgo exports exactly one audio-master symbol into the C world. The engine
// routes it to the Go callback registered for the calling descriptor, with a
// pending slot covering callbacks made before the entry function returns.
//
// # Stdio Capture
//
// Unless a handle is verbose, file descriptors 1 and 2 are redirected to the
// null device immediately before every foreign call and restored immediately
// after, on every exit path. Plugins are chatty; hosts are not.
//
// # Thread Safety
//
// All calls are strictly synchronous: they block the calling goroutine until
// the plugin's function pointer returns. A Handle is not safe for concurrent
// use. There is no cancellation; a plugin that hangs, hangs the host.
//
// A fault inside the plugin's native code is not recoverable and terminates
// the process. The host runs untrusted machine code in-process by design.
package engine
