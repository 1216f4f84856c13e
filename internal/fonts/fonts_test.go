package fonts

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFaceMeasures(t *testing.T) {
	face, err := Face(16)
	if err != nil {
		t.Fatalf("Face failed: %v", err)
	}

	short := Measure(face, "Box")
	long := Measure(face, "Box 00 Box 01")
	if short <= 0 {
		t.Fatalf("Measure(Box) = %d, want > 0", short)
	}
	if long <= short {
		t.Errorf("Measure of longer text = %d, want > %d", long, short)
	}
	if Measure(face, "") != 0 {
		t.Error("Measure of empty string should be 0")
	}
	if Measure(nil, "x") != 0 {
		t.Error("Measure with nil face should be 0")
	}
}

func TestLineHeightGrowsWithSize(t *testing.T) {
	small := FaceOrFallback(10)
	large := FaceOrFallback(32)
	if LineHeight(large) <= LineHeight(small) {
		t.Errorf("line height %d at 32pt, want more than %d at 10pt", LineHeight(large), LineHeight(small))
	}
}

func TestBasicFontMeasure(t *testing.T) {
	if got := Measure(basicfont.Face7x13, "abc"); got != 21 {
		t.Errorf("Measure(basicfont, abc) = %d, want 21", got)
	}
}
