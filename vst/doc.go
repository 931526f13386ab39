// Package vst defines the VST 2.4 binary contract as seen from a host:
// the descriptor magic, the opcode sets for both call directions, the
// capability flag bits, and the fixed-layout structs exchanged through
// dispatcher queries.
//
// Everything here is plain Go data. The engine package owns the actual
// foreign calls; this package only names the numbers both sides agree on.
package vst
