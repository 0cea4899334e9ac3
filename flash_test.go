package blitfx

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFlashFades(t *testing.T) {
	f := NewFlash(1, ease.Linear)
	if f.Alpha != 1 || f.Done {
		t.Fatalf("initial = (%v, %v), want (1, false)", f.Alpha, f.Done)
	}

	f.Update(0.5)
	if f.Alpha != 0.5 {
		t.Errorf("Alpha at half = %v, want 0.5", f.Alpha)
	}
	if f.Done {
		t.Error("should not be done at half")
	}

	f.Update(0.6)
	if !f.Done {
		t.Error("should be done after full duration")
	}
	if f.Alpha != 0 {
		t.Errorf("Alpha at end = %v, want 0", f.Alpha)
	}

	f.Update(1)
	if f.Alpha != 0 {
		t.Error("Update after Done should not change Alpha")
	}
}

func TestFlashRestart(t *testing.T) {
	f := NewFlash(0.25, ease.OutQuad)
	f.Update(1)
	f.Restart()
	if f.Alpha != 1 || f.Done {
		t.Errorf("after Restart = (%v, %v), want (1, false)", f.Alpha, f.Done)
	}
	f.Update(0.1)
	if f.Alpha >= 1 || f.Alpha <= 0 {
		t.Errorf("Alpha mid-fade = %v, want in (0, 1)", f.Alpha)
	}
}
