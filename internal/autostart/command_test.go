package autostart

import "testing"

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "quoted path",
			input:    `"C:\Program Files\Toss\toss.exe"`,
			expected: `C:\Program Files\Toss\toss.exe`,
		},
		{
			name:     "quoted path with trailing flags",
			input:    `"C:\Program Files\Toss\toss.exe" --minimized`,
			expected: `C:\Program Files\Toss\toss.exe`,
		},
		{
			name:     "unquoted path",
			input:    "/usr/local/bin/toss",
			expected: "/usr/local/bin/toss",
		},
		{
			name:     "unquoted path with trailing flags",
			input:    "/usr/local/bin/toss --minimized",
			expected: "/usr/local/bin/toss",
		},
		{
			name:     "unterminated quote",
			input:    `"C:\Toss\toss.exe`,
			expected: `C:\Toss\toss.exe`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  /usr/local/bin/toss  ",
			expected: "/usr/local/bin/toss",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := parseCommand(tt.input); got != tt.expected {
				t.Errorf("parseCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestQuoteCommandRoundTrip(t *testing.T) {
	t.Parallel()

	path := `C:\Program Files\Toss\toss.exe`
	if got := parseCommand(quoteCommand(path)); got != path {
		t.Errorf("parseCommand(quoteCommand(%q)) = %q, want the original path", path, got)
	}
}
