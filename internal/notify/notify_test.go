package notify

import "testing"

func TestQuoteAppleScript(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "note published", `"note published"`},
		{"empty", "", `""`},
		{"with quotes", `said "hi"`, `"said \"hi\""`},
		{"with backslash", `a\b`, `"a\\b"`},
		{"backslash then quote", `\"`, `"\\\""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quoteAppleScript(tt.input); got != tt.want {
				t.Errorf("quoteAppleScript(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
