// Package runtime is the high-level plugin host API.
//
// A Plugin wraps an engine.Handle with the operations a host session needs:
// lifecycle transitions (Open, Resume, Suspend, Close), the parameter bridge
// (values through the descriptor's direct function pointers, names and
// properties through the dispatcher), capability queries and block
// processing at either precision.
//
// The Host interface is the plugin-to-host callback. It is injected at load
// time, never ambient state; MinimalHost is the smallest implementation a
// plugin will initialize against.
//
// SimpleHost layers a small state machine on top of Plugin for the common
// load, configure, play a note, render, close session.
//
// Everything here is strictly synchronous and single-threaded: each call
// blocks until the plugin's native code returns, with no cancellation. A
// fault inside the plugin is a process-level failure, not an error value.
package runtime
