package core

import "testing"

func TestColorsCoverPalette(t *testing.T) {
	colors := Colors()
	if len(colors) != int(ColorGray)+1 {
		t.Fatalf("len(Colors()) = %d, want %d", len(colors), ColorGray+1)
	}
	for i, c := range colors {
		if int(c) != i {
			t.Errorf("Colors()[%d] = %d", i, c)
		}
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}

	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestColorRGB(t *testing.T) {
	if r, g, b := ColorBrightGreen.RGB(); r != 0 || g != 0xff || b != 0 {
		t.Errorf("BrightGreen = %d,%d,%d", r, g, b)
	}

	dr, dg, db := ColorDefault.RGB()
	if r, g, b := Color(200).RGB(); r != dr || g != dg || b != db {
		t.Error("unknown color should fall back to default")
	}
}
