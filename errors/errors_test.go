package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseProcess,
				Kind:   KindChannelCountMismatch,
				Detail: "output buffer has 1 channels, plugin declares 2",
			},
			contains: []string{"[process]", "channel_count_mismatch", "declares 2"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLoad,
				Kind:  KindInvalidPlugin,
			},
			contains: []string{"[load]", "invalid_plugin"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindLibrary,
				Detail: "open plugin",
				Cause:  errors.New("file not found"),
			},
			contains: []string{"[load]", "library", "open plugin", "caused by", "file not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseLoad, KindLibrary, cause, "dlopen")

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not match the cause through the chain")
	}
}

func TestError_Is(t *testing.T) {
	err := ChannelCountMismatch("input", 1, 2)

	if !errors.Is(err, &Error{Phase: PhaseProcess, Kind: KindChannelCountMismatch}) {
		t.Error("same phase/kind should match")
	}
	if errors.Is(err, &Error{Phase: PhaseProcess, Kind: KindPrecisionNotSupported}) {
		t.Error("different kind should not match")
	}
	if errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindChannelCountMismatch}) {
		t.Error("different phase should not match")
	}
	if errors.Is(err, errors.New("channel_count_mismatch")) {
		t.Error("plain error should not match")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"entry point", EntryPointNotFound("/tmp/p.so", []string{"VSTPluginMain", "main"}), PhaseLoad, KindEntryPointNotFound},
		{"invalid plugin", InvalidPlugin("magic mismatch: got %d", 7), PhaseLoad, KindInvalidPlugin},
		{"precision", PrecisionNotSupported(), PhaseProcess, KindPrecisionNotSupported},
		{"frames", MissingSampleFrames(), PhaseProcess, KindMissingSampleFrames},
		{"channels", ChannelCountMismatch("output", 3, 2), PhaseProcess, KindChannelCountMismatch},
		{"not loaded", NotLoaded(PhaseDispatch, "plugin"), PhaseDispatch, KindNotLoaded},
		{"transition", BadTransition("Closed", "Resumed"), PhaseState, KindBadTransition},
		{"format", UnsupportedFormat(".flac"), PhaseDecode, KindUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %q, want %q", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %q, want %q", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestEntryPointNotFound_ListsProbedSymbols(t *testing.T) {
	err := EntryPointNotFound("/opt/plug.so", []string{"VSTPluginMain", "main"})
	msg := err.Error()
	for _, want := range []string{"/opt/plug.so", "VSTPluginMain", "main"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}
