package graphics

import "testing"

func TestColorChannels(t *testing.T) {
	c := RGBA8(0x11, 0x22, 0x33, 0x80)
	if c != Color(0x80112233) {
		t.Fatalf("RGBA8 = %#x, want 0x80112233", uint32(c))
	}
	if got := c.Alpha8(); got != 0x80 {
		t.Errorf("Alpha8 = %#x, want 0x80", got)
	}
	if got := RGB(1, 2, 3).Alpha8(); got != 0xFF {
		t.Errorf("RGB alpha = %#x, want 0xFF", got)
	}
}

func TestWithAlpha8PreservesRGB(t *testing.T) {
	c := RGB(0xAA, 0xBB, 0xCC).WithAlpha8(0x42)
	if c != Color(0x42AABBCC) {
		t.Fatalf("WithAlpha8 = %#x, want 0x42AABBCC", uint32(c))
	}
}

func TestPaintStyleString(t *testing.T) {
	cases := []struct {
		style PaintStyle
		want  string
	}{
		{PaintStyleFill, "fill"},
		{PaintStyleStroke, "stroke"},
		{PaintStyleFillAndStroke, "fill_and_stroke"},
		{PaintStyle(9), "PaintStyle(9)"},
	}
	for _, c := range cases {
		if got := c.style.String(); got != c.want {
			t.Errorf("PaintStyle(%d).String() = %q, want %q", int(c.style), got, c.want)
		}
	}
}

func TestNewPaintDefaults(t *testing.T) {
	p := NewPaint()
	if p.Color != ColorBlack {
		t.Errorf("default color = %#x, want opaque black", uint32(p.Color))
	}
	if p.Style != PaintStyleFill {
		t.Errorf("default style = %v, want fill", p.Style)
	}
	if !p.AntiAlias {
		t.Error("default paint should be anti-aliased")
	}
}
