package vst

// Flags is the descriptor capability bitset.
type Flags int32

const (
	FlagHasEditor          Flags = 1 << 0
	FlagCanReplacing       Flags = 1 << 4
	FlagProgramChunks      Flags = 1 << 5
	FlagIsSynth            Flags = 1 << 8
	FlagNoSoundInStop      Flags = 1 << 9
	FlagCanDoubleReplacing Flags = 1 << 12
)

// Has reports whether all bits of f are set.
func (fl Flags) Has(f Flags) bool { return fl&f == f }

// PlugCategory is the plugin category hint returned by EffGetPlugCategory.
type PlugCategory int32

const (
	CategoryUnknown PlugCategory = iota
	CategoryEffect
	CategorySynth
	CategoryAnalysis
	CategoryMastering
	CategorySpacializer
	CategoryRoomFx
	CategorySurroundFx
	CategoryRestoration
	CategoryOfflineProcess
	CategoryShell
	CategoryGenerator
)

var categoryNames = map[PlugCategory]string{
	CategoryUnknown:        "unknown",
	CategoryEffect:         "effect",
	CategorySynth:          "synth",
	CategoryAnalysis:       "analysis",
	CategoryMastering:      "mastering",
	CategorySpacializer:    "spacializer",
	CategoryRoomFx:         "room-fx",
	CategorySurroundFx:     "surround-fx",
	CategoryRestoration:    "restoration",
	CategoryOfflineProcess: "offline-process",
	CategoryShell:          "shell",
	CategoryGenerator:      "generator",
}

func (c PlugCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}
