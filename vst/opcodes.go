package vst

// Magic is the descriptor magic constant: 'V','s','t','P' packed big-endian.
// A loaded binary whose descriptor does not carry it is not a VST2 plugin.
const Magic int32 = 1450406992

// Version is the protocol version this host targets (VST 2.4).
const Version int64 = 2400

// String length limits from the 2.4 headers. Plugins are known to overrun
// the nominal limits, so callers size scratch buffers with MaxScratchLen.
const (
	MaxParamStrLen = 8
	MaxLabelLen    = 64
	MaxShortLabel  = 8
	MaxScratchLen  = 64
)

// PluginOpcode selects the operation performed by a host-to-plugin
// dispatcher call.
type PluginOpcode int32

const (
	EffOpen            PluginOpcode = 0
	EffClose           PluginOpcode = 1
	EffSetProgram      PluginOpcode = 2
	EffGetProgram      PluginOpcode = 3
	EffSetProgramName  PluginOpcode = 4
	EffGetProgramName  PluginOpcode = 5
	EffGetParamLabel   PluginOpcode = 6
	EffGetParamDisplay PluginOpcode = 7
	EffGetParamName    PluginOpcode = 8
	EffSetSampleRate   PluginOpcode = 10
	EffSetBlockSize    PluginOpcode = 11
	EffMainsChanged    PluginOpcode = 12
	EffEditGetRect     PluginOpcode = 13
	EffEditOpen        PluginOpcode = 14
	EffEditClose       PluginOpcode = 15
	EffEditIdle        PluginOpcode = 19
	EffGetChunk        PluginOpcode = 23
	EffSetChunk        PluginOpcode = 24
	EffProcessEvents   PluginOpcode = 25
	EffCanBeAutomated  PluginOpcode = 26

	EffGetProgramNameIndexed PluginOpcode = 29
	EffGetInputProperties    PluginOpcode = 33
	EffGetOutputProperties   PluginOpcode = 34
	EffGetPlugCategory       PluginOpcode = 35
	EffSetBypass             PluginOpcode = 44
	EffGetEffectName         PluginOpcode = 45
	EffGetVendorString       PluginOpcode = 47
	EffGetProductString      PluginOpcode = 48
	EffGetVendorVersion      PluginOpcode = 49
	EffCanDo                 PluginOpcode = 51
	EffGetTailSize           PluginOpcode = 52

	EffGetParameterProperties PluginOpcode = 56
	EffGetVstVersion          PluginOpcode = 58

	EffStartProcess             PluginOpcode = 71
	EffStopProcess              PluginOpcode = 72
	EffSetProcessPrecision      PluginOpcode = 77
	EffGetNumMidiInputChannels  PluginOpcode = 78
	EffGetNumMidiOutputChannels PluginOpcode = 79
)

// HostOpcode selects the operation a plugin requests from the host through
// the audio-master callback.
type HostOpcode int32

const (
	AudioMasterAutomate               HostOpcode = 0
	AudioMasterVersion                HostOpcode = 1
	AudioMasterCurrentID              HostOpcode = 2
	AudioMasterIdle                   HostOpcode = 3
	AudioMasterGetTime                HostOpcode = 7
	AudioMasterProcessEvents          HostOpcode = 8
	AudioMasterIOChanged              HostOpcode = 13
	AudioMasterSizeWindow             HostOpcode = 15
	AudioMasterGetSampleRate          HostOpcode = 16
	AudioMasterGetBlockSize           HostOpcode = 17
	AudioMasterGetInputLatency        HostOpcode = 18
	AudioMasterGetOutputLatency       HostOpcode = 19
	AudioMasterGetCurrentProcessLevel HostOpcode = 23
	AudioMasterGetAutomationState     HostOpcode = 24
	AudioMasterGetVendorString        HostOpcode = 32
	AudioMasterGetProductString       HostOpcode = 33
	AudioMasterGetVendorVersion       HostOpcode = 34
	AudioMasterCanDo                  HostOpcode = 37
	AudioMasterGetLanguage            HostOpcode = 38
	AudioMasterUpdateDisplay          HostOpcode = 42
	AudioMasterBeginEdit              HostOpcode = 43
	AudioMasterEndEdit                HostOpcode = 44
)

// EntrySymbols is the ordered probe list for a plugin's entry point.
// The first symbol present in the loaded library wins.
var EntrySymbols = []string{"VSTPluginMain", "main"}
