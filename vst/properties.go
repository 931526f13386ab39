package vst

import "bytes"

// ParameterProperties mirrors VstParameterProperties bit-for-bit. The struct
// contains no pointers, so a zeroed instance can be handed to the plugin's
// dispatcher as the output buffer of an EffGetParameterProperties query.
//
// The dispatcher's integer return signals whether the plugin supports the
// query at all. A "not supported" result must be treated as opaque: plugins
// are free to scribble on the struct before returning zero.
type ParameterProperties struct {
	StepFloat               float32
	SmallStepFloat          float32
	LargeStepFloat          float32
	Label                   [MaxLabelLen]byte
	Flags                   int32
	MinInteger              int32
	MaxInteger              int32
	StepInteger             int32
	LargeStepInteger        int32
	ShortLabel              [MaxShortLabel]byte
	DisplayIndex            int16
	Category                int16
	NumParametersInCategory int16
	Reserved                int16
	CategoryLabel           [24]byte
	Future                  [16]byte
}

// ParameterProperties flag bits.
const (
	ParameterIsSwitch                int32 = 1 << 0
	ParameterUsesIntegerMinMax       int32 = 1 << 1
	ParameterUsesFloatStep           int32 = 1 << 2
	ParameterUsesIntStep             int32 = 1 << 3
	ParameterSupportsDisplayIndex    int32 = 1 << 4
	ParameterSupportsDisplayCategory int32 = 1 << 5
	ParameterCanRamp                 int32 = 1 << 6
)

// LabelString returns Label up to its first NUL.
func (p *ParameterProperties) LabelString() string { return TrimNul(p.Label[:]) }

// ShortLabelString returns ShortLabel up to its first NUL.
func (p *ParameterProperties) ShortLabelString() string { return TrimNul(p.ShortLabel[:]) }

// PinProperties mirrors VstPinProperties, used for input and output pin
// queries. Same supported/opaque contract as ParameterProperties.
type PinProperties struct {
	Label           [MaxLabelLen]byte
	Flags           int32
	ArrangementType int32
	ShortLabel      [MaxShortLabel]byte
	Future          [48]byte
}

// PinProperties flag bits.
const (
	PinIsActive   int32 = 1 << 0
	PinIsStereo   int32 = 1 << 1
	PinUseSpeaker int32 = 1 << 2
)

// LabelString returns Label up to its first NUL.
func (p *PinProperties) LabelString() string { return TrimNul(p.Label[:]) }

// TrimNul interprets b as a NUL-terminated C string.
func TrimNul(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
