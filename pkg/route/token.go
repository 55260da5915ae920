package route

import (
	"fmt"
	"strings"
	"unicode"
)

// Direction is one of the four cardinal relative movements.
type Direction rune

// Direction values. Stored in canonical upper case regardless of how the
// input spelled them.
const (
	Forward Direction = 'F'
	Back    Direction = 'B'
	Left    Direction = 'L'
	Right   Direction = 'R'
)

// ParseDirection maps a rune to its Direction, case-insensitively.
// The second return value reports whether r is a direction rune at all.
func ParseDirection(r rune) (Direction, bool) {
	switch unicode.ToUpper(r) {
	case 'F':
		return Forward, true
	case 'B':
		return Back, true
	case 'L':
		return Left, true
	case 'R':
		return Right, true
	}
	return 0, false
}

// Unit returns the unit vector for the direction on the 2D plane:
// horizontal (left/right) and vertical (forward/back) components.
func (d Direction) Unit() (h, v int) {
	switch d {
	case Forward:
		return 0, 1
	case Back:
		return 0, -1
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	}
	return 0, 0
}

// MarshalJSON encodes the direction as its canonical letter, e.g. "F".
func (d Direction) MarshalJSON() ([]byte, error) {
	return []byte(`"` + string(rune(d)) + `"`), nil
}

// UnmarshalJSON decodes a single-letter direction, case-insensitively.
func (d *Direction) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if len(s) != 1 {
		return fmt.Errorf("invalid direction: %q", s)
	}
	dir, ok := ParseDirection(rune(s[0]))
	if !ok {
		return fmt.Errorf("invalid direction: %q", s)
	}
	*d = dir
	return nil
}

// String returns the long name of the direction ("forward", "back", ...).
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%q)", rune(d))
}

// Token is one {magnitude}{direction} unit parsed from a route string.
// Magnitude is kept as the original digit run; it is parsed to a number
// only at calculation time.
type Token struct {
	Magnitude string    `json:"magnitude"`
	Direction Direction `json:"direction"`
}

// String returns the compact encoding of the token, e.g. "3F".
func (t Token) String() string {
	return t.Magnitude + string(rune(t.Direction))
}

// Encode joins a token sequence back into its compact route string.
func Encode(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.String())
	}
	return b.String()
}
