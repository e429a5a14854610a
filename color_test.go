package sketch

import "testing"

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#000", RGB(0, 0, 0)},
		{"#fff", RGB(1, 1, 1)},
		{"#ff0000", RGB(1, 0, 0)},
		{"00ff00", RGB(0, 1, 0)},
		{"#0000ff80", RGBA2(0, 0, 1, float64(0x80) / 255)},
		{"#f00a", RGBA2(1, 0, 0, float64(0xaa) / 255)},
		{"nonsense!", RGB(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Hex(tt.in)
			if !almostEqual(got.R, tt.want.R, 1e-9) ||
				!almostEqual(got.G, tt.want.G, 1e-9) ||
				!almostEqual(got.B, tt.want.B, 1e-9) ||
				!almostEqual(got.A, tt.want.A, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA2(0.2, 0.4, 0.6, 1)
	got := FromColor(c.Color())
	if !almostEqual(got.R, c.R, 0.01) || !almostEqual(got.G, c.G, 0.01) ||
		!almostEqual(got.B, c.B, 0.01) || !almostEqual(got.A, c.A, 0.01) {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}
