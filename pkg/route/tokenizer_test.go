package route

import (
	"strings"
	"testing"

	"github.com/driftcli/drift/pkg/errors"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string // compact token encodings
	}{
		{
			name:  "SingleToken",
			input: "3F",
			want:  []string{"3F"},
		},
		{
			name:  "TwoTokens",
			input: "3F4R",
			want:  []string{"3F", "4R"},
		},
		{
			name:  "AllDirections",
			input: "1B2F3L4R",
			want:  []string{"1B", "2F", "3L", "4R"},
		},
		{
			name:  "MultiDigitMagnitude",
			input: "120F7L",
			want:  []string{"120F", "7L"},
		},
		{
			name:  "ZeroMagnitude",
			input: "0F",
			want:  []string{"0F"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}
			if len(tokens) != len(tt.want) {
				t.Fatalf("len(tokens) = %d, want %d", len(tokens), len(tt.want))
			}
			for i, w := range tt.want {
				if got := tokens[i].String(); got != w {
					t.Errorf("tokens[%d] = %q, want %q", i, got, w)
				}
			}
		})
	}
}

func TestTokenizeCaseInsensitive(t *testing.T) {
	lower, err := Tokenize("3f4r")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	upper, err := Tokenize("3F4R")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}

	if len(lower) != len(upper) {
		t.Fatalf("token counts differ: %d vs %d", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] != upper[i] {
			t.Errorf("tokens[%d]: %v vs %v, want identical canonical tokens", i, lower[i], upper[i])
		}
	}
	if lower[0].Direction != Forward {
		t.Errorf("Direction = %v, want Forward", lower[0].Direction)
	}
}

func TestTokenizeRejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{
			name:  "Empty",
			input: "",
			code:  errors.ErrCodeEmptyInput,
		},
		{
			name:  "WhitespaceOnly",
			input: "   ",
			code:  errors.ErrCodeEmptyInput,
		},
		{
			name:  "LeadingDirection",
			input: "F5",
			code:  errors.ErrCodeMissingMagnitude,
		},
		{
			name:  "AdjacentDirections",
			input: "5FF",
			code:  errors.ErrCodeMissingMagnitude,
		},
		{
			name:  "TrailingDigits",
			input: "5F3",
			code:  errors.ErrCodeDanglingMagnitude,
		},
		{
			name:  "InvalidLetter",
			input: "3F4X",
			code:  errors.ErrCodeInvalidCharacter,
		},
		{
			name:  "EmbeddedSpace",
			input: "3F 4R",
			code:  errors.ErrCodeInvalidCharacter,
		},
		{
			name:  "Punctuation",
			input: "3F,4R",
			code:  errors.ErrCodeInvalidCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Tokenize(%q) = %v, want error", tt.input, tokens)
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("error code = %v, want %v", got, tt.code)
			}
			if tokens != nil {
				t.Errorf("tokens = %v, want nil on rejection", tokens)
			}
		})
	}
}

// The first invalid character is the one reported, even when later
// characters would also be invalid.
func TestTokenizeReportsFirstInvalidCharacter(t *testing.T) {
	_, err := Tokenize("3F?4R!")
	if err == nil {
		t.Fatal("Tokenize accepted input with invalid characters")
	}
	if !errors.Is(err, errors.ErrCodeInvalidCharacter) {
		t.Fatalf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCharacter)
	}
	if !strings.Contains(err.Error(), "'?'") {
		t.Errorf("error = %q, want it to name the first offending character '?'", err)
	}
}

// Trailing digit runs of any length must be rejected, not silently folded
// into the previous token's magnitude.
func TestTokenizeTrailingDigitRuns(t *testing.T) {
	for _, input := range []string{"5F3", "5F33", "5F333", "5F123456789", "7"} {
		t.Run(input, func(t *testing.T) {
			_, err := Tokenize(input)
			if !errors.Is(err, errors.ErrCodeDanglingMagnitude) {
				t.Errorf("Tokenize(%q) error code = %v, want %v",
					input, errors.GetCode(err), errors.ErrCodeDanglingMagnitude)
			}
		})
	}
}

func TestTokenizePreservesOrder(t *testing.T) {
	tokens, err := Tokenize("10F2L8B1R")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	want := []string{"10F", "2L", "8B", "1R"}
	for i, w := range want {
		if tokens[i].String() != w {
			t.Errorf("tokens[%d] = %q, want %q", i, tokens[i], w)
		}
	}
	if got := Encode(tokens); got != "10F2L8B1R" {
		t.Errorf("Encode = %q, want round-trip of canonical input", got)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		r    rune
		want Direction
		ok   bool
	}{
		{'F', Forward, true},
		{'f', Forward, true},
		{'B', Back, true},
		{'b', Back, true},
		{'L', Left, true},
		{'l', Left, true},
		{'R', Right, true},
		{'r', Right, true},
		{'X', 0, false},
		{'5', 0, false},
		{' ', 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseDirection(tt.r)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseDirection(%q) = (%v, %v), want (%v, %v)", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}
