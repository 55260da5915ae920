package route

import (
	"strings"

	"github.com/driftcli/drift/pkg/errors"
)

// allowedSet describes the valid character set for user-facing rejections.
const allowedSet = "digits 0-9 and directions F, B, L, R (either case)"

// Tokenize converts a raw route string into an ordered token sequence.
//
// The scan is a single left-to-right pass: digit runes accumulate into a
// magnitude buffer, and a direction rune closes the buffer into one token.
// The whole input is rejected on the first violation; no partial sequence
// is ever returned. Rejection reasons:
//
//   - ErrCodeEmptyInput: input is empty or whitespace-only
//   - ErrCodeInvalidCharacter: a rune outside the allowed set appears
//   - ErrCodeMissingMagnitude: a direction with no digits before it
//   - ErrCodeDanglingMagnitude: trailing digits with no direction
func Tokenize(input string) ([]Token, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no movement string entered")
	}

	var (
		tokens []Token
		buf    strings.Builder
	)
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			buf.WriteRune(r)
		default:
			dir, ok := ParseDirection(r)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidCharacter,
					"invalid character %q: allowed are %s", r, allowedSet)
			}
			if buf.Len() == 0 {
				return nil, errors.New(errors.ErrCodeMissingMagnitude,
					"direction %s has no preceding step count", dir)
			}
			tokens = append(tokens, Token{Magnitude: buf.String(), Direction: dir})
			buf.Reset()
		}
	}

	// Digits after the last emitted token mean the input ended mid-token.
	if buf.Len() > 0 {
		return nil, errors.New(errors.ErrCodeDanglingMagnitude,
			"trailing steps %q have no direction", buf.String())
	}
	return tokens, nil
}
