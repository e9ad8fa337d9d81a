package repl

import (
	"slices"
	"testing"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "flag", 4, "flag", 0, 4},
		{"second_word", "flag --ver", 10, "--ver", 5, 10},
		{"mid_word", "option", 3, "option", 0, 6},
		{"at_start", "flag", 0, "flag", 0, 4},
		{"empty_at_boundary", "flag ", 5, "", 5, 5},
		{"multiple_spaces", "flag  -v", 8, "-v", 6, 8},
		{"cursor_past_end", "args", 10, "args", 0, 4},
		{"equals_inside", "option --out=a", 14, "--out=a", 7, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	s := newSession("--verbose", "-o", "out", "--verbose")

	tests := []struct {
		name      string
		input     string
		wordStart int
		want      []string
	}{
		{"command", "fl", 0, commandNames()},
		{"tokens", "flag --v", 5, []string{"--verbose", "-o", "out"}},
		{"load_has_none", "load x", 5, nil},
		{"action_has_none", "quit x", 5, nil},
		{"unknown_has_none", "nope x", 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.candidates(tt.input, tt.wordStart)
			if !slices.Equal(got, tt.want) {
				t.Errorf("candidates(%q, %d) = %q, want %q",
					tt.input, tt.wordStart, got, tt.want)
			}
		})
	}
}
