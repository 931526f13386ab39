// Package vsthost hosts native VST2 audio plugins inside a Go process.
//
// A plugin is a shared object exposing one entry symbol that returns a
// descriptor struct of raw function pointers. The host loads the binary with
// dlopen, validates the descriptor and then talks to the plugin through
// three channels: a general-purpose opcode dispatcher, two direct parameter
// accessors, and precision-specific block-processing functions that consume
// channel-major audio buffers with no sample copying.
//
// # Architecture Overview
//
// The module is organized into packages with distinct responsibilities:
//
//	vsthost/           This overview
//	├── vst/           The ABI as pure Go: opcodes, flags, magic, mirror structs
//	├── engine/        The cgo bridge: library loading, dispatch, buffers,
//	│                  host-callback routing, scoped stdio capture
//	├── runtime/       High-level API: Plugin, Host callback, SimpleHost
//	├── midi/          Note events delivered to plugins
//	├── analysis/      Level and pitch measurements over rendered audio
//	├── audiofile/     WAV/MP3/Ogg Vorbis input, WAV output
//	├── errors/        Structured error types
//	└── testbed/       In-process fixture plugins for the tests
//
// # Quick Start
//
// Play a note through a synth plugin:
//
//	host := runtime.NewSimpleHost(runtime.WithSampleRate(44100))
//	if err := host.LoadPlugin("synth.so"); err != nil {
//	    log.Fatal(err)
//	}
//	defer host.Close()
//
//	host.Open()
//	host.Resume()
//	audio, err := host.PlayNote(69, time.Second)
//
// # Thread Safety
//
// Every call into a plugin is strictly synchronous and blocks until the
// plugin's native code returns; there is no cancellation. Handles, Plugins
// and SimpleHosts are not safe for concurrent use. Loading is serialized
// process-wide because the ABI's entry-time callback carries no user data.
//
// # Fault Isolation
//
// There is none. Plugins are untrusted native code running in this process;
// a crash inside a plugin is a crash of the host process, not an error
// value. What the host does isolate is plugin console noise: stdout and
// stderr are captured and discarded around every foreign call unless the
// handle was loaded in verbose mode.
package vsthost
