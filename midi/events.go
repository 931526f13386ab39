// Package midi models the small slice of MIDI this host emits: note-on and
// note-off events addressed to a plugin within one processing block.
package midi

import (
	"fmt"
	"math"
)

type EventType uint8

const (
	EventTypeNoteOff EventType = iota
	EventTypeNoteOn
)

// Event is a single channel-voice message with a frame offset into the
// current block.
type Event struct {
	Kind        EventType
	Channel     uint8 // 0-15
	Note        uint8 // 0-127
	Velocity    uint8 // 0-127
	DeltaFrames int32
}

// NoteOn creates a note-on event at the start of the block.
func NoteOn(channel, note, velocity uint8) Event {
	return Event{Kind: EventTypeNoteOn, Channel: channel, Note: note, Velocity: velocity}
}

// NoteOff creates a note-off event at the start of the block.
func NoteOff(channel, note uint8) Event {
	return Event{Kind: EventTypeNoteOff, Channel: channel, Note: note}
}

// Status returns the MIDI status byte for the event.
func (e Event) Status() uint8 {
	switch e.Kind {
	case EventTypeNoteOn:
		return 0x90 | e.Channel&0x0F
	default:
		return 0x80 | e.Channel&0x0F
	}
}

// Bytes returns the three-byte channel-voice message.
func (e Event) Bytes() [3]byte {
	return [3]byte{e.Status(), e.Note & 0x7F, e.Velocity & 0x7F}
}

func (e Event) String() string {
	name := "NoteOff"
	if e.Kind == EventTypeNoteOn {
		name = "NoteOn"
	}
	return fmt.Sprintf("%s{ch:%d, note:%d, vel:%d, offset:%d}",
		name, e.Channel, e.Note, e.Velocity, e.DeltaFrames)
}

// NoteFrequency returns the equal-tempered frequency of a MIDI note number
// (A4 = note 69 = 440 Hz).
func NoteFrequency(note uint8) float64 {
	return 440.0 * math.Exp2((float64(note)-69.0)/12.0)
}
