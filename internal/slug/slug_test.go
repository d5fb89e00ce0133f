package slug

import "testing"

// TestGenerate exercises the slug generator with the kinds of strings it
// actually sees: uploaded filenames, with special characters, whitespace,
// and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Typical filenames (extension already stripped) ---
		{
			name:  "simple two words",
			input: "Kitchen Remodel",
			want:  "kitchen-remodel",
		},
		{
			name:  "camera default name",
			input: "DSC04312",
			want:  "dsc04312",
		},
		{
			name:  "name with year",
			input: "Open House 2026",
			want:  "open-house-2026",
		},
		{
			name:  "already a slug",
			input: "living-room-wide",
			want:  "living-room-wide",
		},

		// --- Special characters ---
		{
			name:  "parentheses and brackets",
			input: "Backyard (final) [edit]",
			want:  "backyard-final-edit",
		},
		{
			name:  "copy suffix with dots",
			input: "IMG_2024.copy.2",
			want:  "img2024copy2",
		},
		{
			name:  "ampersand",
			input: "Before & After",
			want:  "before-after",
		},
		{
			name:  "apostrophe",
			input: "Chef's Table",
			want:  "chefs-table",
		},

		// --- Whitespace and hyphen handling ---
		{
			name:  "leading and trailing spaces",
			input: "  drone shot  ",
			want:  "drone-shot",
		},
		{
			name:  "multiple hyphens collapsed",
			input: "roof---detail",
			want:  "roof-detail",
		},
		{
			name:  "hyphens and spaces mixed",
			input: " --front -- yard-- ",
			want:  "front-yard",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%^&*()",
			want:  "",
		},
		{
			name:  "only hyphens",
			input: "-----",
			want:  "",
		},
		{
			name:  "single character",
			input: "A",
			want:  "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an already
// valid slug produces the same result.
func TestGenerate_Idempotent(t *testing.T) {
	slugs := []string{
		"kitchen-remodel",
		"dsc04312",
		"a",
		"123",
	}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			got := Generate(s)
			if got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}
