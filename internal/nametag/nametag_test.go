package nametag

import "testing"

func TestComputePrefix(t *testing.T) {
	tests := []struct {
		name       string
		document   string
		underscore string
		dash       string
	}{
		{"underscore in name", "dpx_widget.f3d", "dpx_", "dpx-"},
		{"no underscore", "abcdef", "abc_", "abc-"},
		{"uppercase document", "DPX_Widget.f3d", "dpx_", "dpx-"},
		{"long first segment", "bracket_assembly.f3d", "bracket_", "bracket-"},
		{"short name without underscore", "ab", "ab_", "ab-"},
		{"exactly three characters", "dpx", "dpx_", "dpx-"},
		{"empty name", "", "_", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputePrefix(tt.document)
			if p.Underscore != tt.underscore {
				t.Errorf("Underscore = %q, want %q", p.Underscore, tt.underscore)
			}
			if p.Dash != tt.dash {
				t.Errorf("Dash = %q, want %q", p.Dash, tt.dash)
			}
		})
	}
}

func TestStripVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no suffix", "dpx_lever", "dpx_lever"},
		{"single suffix", "dpx_bracket_v2", "dpx_bracket"},
		{"multi digit suffix", "dpx_bracket_v123", "dpx_bracket"},
		{"stacked suffixes", "dpx_arm_v1_v2", "dpx_arm"},
		{"underscore v mid-name", "dpx_vertical_mount", "dpx_vertical_mount"},
		{"v without digits", "dpx_lever_v", "dpx_lever_v"},
		{"digits without v", "dpx_lever_3", "dpx_lever_3"},
		{"suffix not at end", "dpx_v2_lever", "dpx_v2_lever"},
		{"empty name", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripVersion(tt.input); got != tt.expected {
				t.Errorf("StripVersion(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// Stripping an already-stripped name must be a no-op.
func TestStripVersionIdempotent(t *testing.T) {
	names := []string{
		"dpx_lever", "dpx_bracket_v2", "dpx_arm_v1_v2",
		"dpx_vertical_mount", "std_screw", "", "_v3",
	}
	for _, name := range names {
		once := StripVersion(name)
		twice := StripVersion(once)
		if once != twice {
			t.Errorf("StripVersion not idempotent for %q: %q != %q", name, once, twice)
		}
	}
}

func TestStripVersionInvertsNextName(t *testing.T) {
	bases := []string{"dpx_lever", "dpx-bracket", "dpx_vertical_mount", "x"}
	for _, base := range bases {
		for _, version := range []int{0, 1, 4, 27, 100} {
			if got := StripVersion(NextName(base, version)); got != base {
				t.Errorf("StripVersion(NextName(%q, %d)) = %q, want %q", base, version, got, base)
			}
		}
	}
}

func TestSplitVersion(t *testing.T) {
	base, version, tagged := SplitVersion("dpx_bracket_v7")
	if !tagged || base != "dpx_bracket" || version != 7 {
		t.Errorf("SplitVersion = (%q, %d, %v), want (dpx_bracket, 7, true)", base, version, tagged)
	}

	base, _, tagged = SplitVersion("dpx_bracket")
	if tagged || base != "dpx_bracket" {
		t.Errorf("SplitVersion on untagged name = (%q, tagged=%v)", base, tagged)
	}
}

func TestMatches(t *testing.T) {
	prefix := ComputePrefix("dpx_widget.f3d")

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"underscore form", "dpx_lever", true},
		{"dash form", "dpx-lever", true},
		{"uppercase name", "DPX_Lever", true},
		{"tagged name", "dpx_bracket_v2", true},
		{"foreign prefix", "std_screw", false},
		{"empty name", "", false},
		{"prefix only", "dpx_", true},
		{"prefix without separator", "dpxlever", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prefix.Matches(tt.input); got != tt.expected {
				t.Errorf("Matches(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNextName(t *testing.T) {
	if got := NextName("dpx_lever", 4); got != "dpx_lever_v4" {
		t.Errorf("NextName = %q, want dpx_lever_v4", got)
	}
}

func TestRetagged(t *testing.T) {
	tests := []struct {
		input    string
		version  int
		expected string
	}{
		{"dpx_lever", 4, "dpx_lever_v4"},
		{"dpx_bracket_v2", 4, "dpx_bracket_v4"},
		{"dpx_bracket_v4", 4, "dpx_bracket_v4"},
	}
	for _, tt := range tests {
		if got := Retagged(tt.input, tt.version); got != tt.expected {
			t.Errorf("Retagged(%q, %d) = %q, want %q", tt.input, tt.version, got, tt.expected)
		}
	}
}
