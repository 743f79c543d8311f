package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "My First Post",
			want:  "my-first-post",
		},
		{
			name:  "punctuation and digits",
			title: "Hello, World! 2024",
			want:  "hello-world-2024",
		},
		{
			name:  "whitespace runs collapse",
			title: "a  \t b \n c",
			want:  "a-b-c",
		},
		{
			name:  "leading and trailing junk trimmed",
			title: "  --Go!--  ",
			want:  "go",
		},
		{
			name:  "uppercase lowered",
			title: "GOLANG",
			want:  "golang",
		},
		{
			name:  "symbol-only input yields empty",
			title: "!!! ??? ***",
			want:  "",
		},
		{
			name:  "empty input yields empty",
			title: "",
			want:  "",
		},
		{
			name:  "unicode symbols stripped",
			title: "café ☕ time",
			want:  "caf-time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlug(tt.title); got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	titles := []string{
		"Hello, World! 2024",
		"My First Post",
		"a  \t b \n c",
		"--already-slugged--",
		"",
	}

	for _, title := range titles {
		once := GenerateSlug(title)
		twice := GenerateSlug(once)
		if once != twice {
			t.Errorf("GenerateSlug not idempotent for %q: first %q, second %q", title, once, twice)
		}
	}
}
