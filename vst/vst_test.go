package vst

import "testing"

func TestFlagsHas(t *testing.T) {
	fl := FlagCanReplacing | FlagIsSynth
	if !fl.Has(FlagIsSynth) {
		t.Fatal("synth bit not reported")
	}
	if fl.Has(FlagCanDoubleReplacing) {
		t.Fatal("double bit reported without being set")
	}
	if !fl.Has(FlagCanReplacing | FlagIsSynth) {
		t.Fatal("combined bits not reported")
	}
}

func TestPlugCategoryString(t *testing.T) {
	if got := CategorySynth.String(); got != "synth" {
		t.Fatalf("CategorySynth = %q, want synth", got)
	}
	if got := PlugCategory(99).String(); got != "unknown" {
		t.Fatalf("unknown category = %q, want unknown", got)
	}
}

func TestTrimNul(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{[]byte{'G', 'a', 'i', 'n', 0, 'x', 'x'}, "Gain"},
		{[]byte{0}, ""},
		{[]byte("dB"), "dB"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := TrimNul(tc.in); got != tc.want {
			t.Fatalf("TrimNul(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMagicSpellsVstP(t *testing.T) {
	want := int32('V')<<24 | int32('s')<<16 | int32('t')<<8 | int32('P')
	if Magic != want {
		t.Fatalf("Magic = %d, want %d", Magic, want)
	}
}

func TestPropertiesLabelStrings(t *testing.T) {
	var p ParameterProperties
	copy(p.Label[:], "Cutoff\x00junk")
	copy(p.ShortLabel[:], "Cut\x00")
	if got := p.LabelString(); got != "Cutoff" {
		t.Fatalf("LabelString = %q, want Cutoff", got)
	}
	if got := p.ShortLabelString(); got != "Cut" {
		t.Fatalf("ShortLabelString = %q, want Cut", got)
	}

	var pin PinProperties
	copy(pin.Label[:], "Out 1\x00")
	if got := pin.LabelString(); got != "Out 1" {
		t.Fatalf("pin LabelString = %q, want Out 1", got)
	}
}
