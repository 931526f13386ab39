//go:build linux || darwin

package engine_test

import (
	"testing"

	"github.com/hq9000/vsthost/engine"
)

func TestBufferViews(t *testing.T) {
	b, err := engine.NewBuffer(engine.Single, 2, 16)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	defer b.Free()

	if b.NumChannels() != 2 || b.Frames() != 16 {
		t.Fatalf("shape = (%d, %d), want (2, 16)", b.NumChannels(), b.Frames())
	}
	if b.Float64() != nil {
		t.Fatal("single-precision buffer exposes float64 views")
	}

	b.Float32()[0][3] = 0.75
	if got := b.Float32()[0][3]; got != 0.75 {
		t.Fatalf("sample readback = %g, want 0.75", got)
	}

	b.Zero()
	if got := b.Float32()[0][3]; got != 0 {
		t.Fatalf("sample after Zero = %g, want 0", got)
	}
}

func TestBufferZeroChannels(t *testing.T) {
	b, err := engine.NewBuffer(engine.Single, 0, 16)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	defer b.Free()
	if len(b.Float32()) != 0 {
		t.Fatalf("zero-channel buffer has %d views", len(b.Float32()))
	}
}

func TestBufferInvalidShape(t *testing.T) {
	if _, err := engine.NewBuffer(engine.Single, 2, 0); err == nil {
		t.Fatal("expected error for zero frames")
	}
	if _, err := engine.NewBuffer(engine.Single, -1, 16); err == nil {
		t.Fatal("expected error for negative channels")
	}
	if _, err := engine.NewBuffer(engine.Precision(7), 2, 16); err == nil {
		t.Fatal("expected error for invalid precision")
	}
}

func TestBufferCopyFloat32(t *testing.T) {
	b, err := engine.NewBuffer(engine.Single, 2, 4)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	defer b.Free()

	if err := b.CopyFloat32([][]float32{{1, 2, 3, 4}}); err == nil {
		t.Fatal("expected channel mismatch error")
	}
	if err := b.CopyFloat32([][]float32{{1, 2, 3, 4}, {5, 6, 7, 8}}); err != nil {
		t.Fatalf("copy: %v", err)
	}
	if got := b.Float32()[1][2]; got != 7 {
		t.Fatalf("copied sample = %g, want 7", got)
	}

	d, err := engine.NewBuffer(engine.Double, 1, 4)
	if err != nil {
		t.Fatalf("allocate double: %v", err)
	}
	defer d.Free()
	if err := d.CopyFloat32([][]float32{{1, 2, 3, 4}}); err == nil {
		t.Fatal("expected precision error copying float32 into a double buffer")
	}
}

func TestBufferFreeIdempotent(t *testing.T) {
	b, err := engine.NewBuffer(engine.Double, 1, 8)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	b.Free()
	b.Free()
}
