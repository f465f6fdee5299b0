package normalize

import "testing"

func TestParseSizeGB(t *testing.T) {
	cases := []struct {
		in   interface{}
		def  float64
		want float64
	}{
		{"2TB", 0, 2048},
		{"512MB", 0, 0.5},
		{"100", 0, 100},
		{"100GB", 0, 100},
		{"100 gb", 0, 100},
		{"1.5tb", 0, 1536},
		{100, 0, 100},
		{float64(50), 0, 50},
		{"bogus", 20, 20},
		{nil, 20, 20},
		{"", 20, 20},
	}

	for _, c := range cases {
		got := ParseSizeGB(c.in, c.def)
		if got != c.want {
			t.Errorf("ParseSizeGB(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseMemoryMB(t *testing.T) {
	cases := []struct {
		in   interface{}
		def  float64
		want float64
	}{
		{"256MB", 128, 256},
		{"1GB", 128, 1024},
		{"128", 128, 128},
		{512, 128, 512},
		{"garbage", 128, 128},
		{nil, 128, 128},
	}

	for _, c := range cases {
		got := ParseMemoryMB(c.in, c.def)
		if got != c.want {
			t.Errorf("ParseMemoryMB(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestToFloat(t *testing.T) {
	cases := []struct {
		in   interface{}
		def  float64
		want float64
	}{
		{5, 0, 5},
		{2.5, 0, 2.5},
		{"10", 0, 10},
		{"5 million", 0, 5e6},
		{"1.2 billion", 0, 1.2e9},
		{"2 TB", 0, 2048},
		{"no number", 7, 7},
		{nil, 7, 7},
		{true, 0, 1},
	}

	for _, c := range cases {
		got := ToFloat(c.in, c.def)
		if got != c.want {
			t.Errorf("ToFloat(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLocationForRegion(t *testing.T) {
	loc, ok := LocationForRegion("ap-south-1")
	if !ok || loc != "Asia Pacific (Mumbai)" {
		t.Errorf("LocationForRegion(ap-south-1) = %q, %v", loc, ok)
	}

	// Display names pass through
	loc, ok = LocationForRegion("US East (N. Virginia)")
	if !ok || loc != "US East (N. Virginia)" {
		t.Errorf("LocationForRegion(display name) = %q, %v", loc, ok)
	}

	if _, ok := LocationForRegion("mars-west-1"); ok {
		t.Error("expected mars-west-1 to be unmapped")
	}
	if _, ok := LocationForRegion(""); ok {
		t.Error("expected empty region to be unmapped")
	}
}
