package fonts

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		family string
		want   Variant
	}{
		{DefaultFamily, Regular},
		{"", Regular},
		{"Arial, sans-serif", Regular},
		{"'Fira Code', monospace", Mono},
		{`"Courier New", serif`, Mono},
		{"Inter Bold", Bold},
		{"Inter, Menlo", Mono},
	}

	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			if got := Resolve(tt.family); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.family, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, v := range []Variant{Regular, Bold, Mono} {
		t.Run(v.String(), func(t *testing.T) {
			f, err := Parse(v)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", v, err)
			}
			if f == nil {
				t.Fatal("Parse returned nil font")
			}
			again, _ := Parse(v)
			if again != f {
				t.Error("Parse should return the cached font on repeated calls")
			}
		})
	}
}

func TestForFamilyEmpty(t *testing.T) {
	f, err := ForFamily("  ")
	if err != nil {
		t.Fatalf("ForFamily error: %v", err)
	}
	regular, _ := Parse(Regular)
	if f != regular {
		t.Error("empty family should resolve to the regular face")
	}
}
