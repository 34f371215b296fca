package colorutil

import "testing"

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []RGB{
		{0, 0, 0},
		{255, 255, 255},
		{1, 2, 3},
		{128, 0, 200},
	}
	for _, c := range cases {
		if got := Unpack(c.Pack()); got != c {
			t.Errorf("round trip of %+v gave %+v", c, got)
		}
	}
}

func TestPackDistinct(t *testing.T) {
	// Channel values must not bleed into each other.
	if New(0, 1, 0).Pack() == New(0, 0, 1).Pack() {
		t.Error("green and blue channels collide")
	}
	if New(1, 0, 0).Pack() == New(0, 1, 0).Pack() {
		t.Error("red and green channels collide")
	}
}

func TestRGBA(t *testing.T) {
	c := New(10, 20, 30).RGBA()
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 255 {
		t.Errorf("unexpected RGBA %+v", c)
	}
}
