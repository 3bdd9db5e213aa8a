// Package dice holds the value types shared by the planner: a single die
// face and a hand (a multiset of faces).
package dice

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ErrInvalidInput is returned for out-of-contract inputs: negative counts,
// dice with fewer than one side, or faces outside [1, sides].
var ErrInvalidInput = errors.New("invalid input")

// MaxSides is the largest die a Die can hold.
const MaxSides = math.MaxUint16

// Die is a single face value, 1-based.
type Die uint16

// Hand is a multiset of dice. Order is irrelevant to every operation in
// this module; Canonical gives the sorted representative. A Hand is never
// modified in place.
type Hand []Die

// NewHand builds a hand from plain ints.
func NewHand(vals ...int) Hand {
	return lo.Map(vals, func(v int, _ int) Die {
		return Die(v)
	})
}

// Faces returns the outcome alphabet 1..sides. More than MaxSides sides
// cannot be represented and is rejected with ErrInvalidInput.
func Faces(sides int) (Hand, error) {
	if sides < 1 || sides > MaxSides {
		return nil, fmt.Errorf("%w: die must have between 1 and %d sides, got %d",
			ErrInvalidInput, MaxSides, sides)
	}
	faces := make(Hand, sides)
	for i := range faces {
		faces[i] = Die(i + 1)
	}
	return faces, nil
}

// Canonical returns a sorted copy of the hand.
func (h Hand) Canonical() Hand {
	c := make(Hand, len(h))
	copy(c, h)
	slices.Sort(c)
	return c
}

// Concat returns a new hand holding the dice of h followed by the dice of o.
func (h Hand) Concat(o Hand) Hand {
	c := make(Hand, 0, len(h)+len(o))
	c = append(c, h...)
	return append(c, o...)
}

// Count returns how many times d appears in the hand.
func (h Hand) Count(d Die) int {
	return lo.Count(h, d)
}

// Equals is multiset equality.
func (h Hand) Equals(o Hand) bool {
	if len(h) != len(o) {
		return false
	}
	return slices.Equal(h.Canonical(), o.Canonical())
}

// Contains reports whether sub is a sub-multiset of h, that is, every value
// of sub appears in h at least as many times.
func (h Hand) Contains(sub Hand) bool {
	have := lo.CountValues(h)
	for d, n := range lo.CountValues(sub) {
		if have[d] < n {
			return false
		}
	}
	return true
}

// Compare orders hands canonically: shorter first, then lexicographically
// by sorted faces. It is the order holds are searched in.
func Compare(a, b Hand) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return slices.Compare(a.Canonical(), b.Canonical())
}

// Validate checks every die against a die with the given number of sides.
func (h Hand) Validate(sides int) error {
	if _, err := Faces(sides); err != nil {
		return err
	}
	for i, d := range h {
		if d < 1 || int(d) > sides {
			return fmt.Errorf("%w: die %d has value %d, want 1-%d",
				ErrInvalidInput, i, d, sides)
		}
	}
	return nil
}

// Ints returns the faces as plain ints; handy for serializing.
func (h Hand) Ints() []int {
	return lo.Map(h, func(d Die, _ int) int {
		return int(d)
	})
}

// String renders a hand compactly. Single-digit faces are written back to
// back (11156). If any face has more than one digit the hand is written as
// a parenthesised list, (1,12), so that ParseHand reads it back unchanged.
// The empty hand is "-".
func (h Hand) String() string {
	if len(h) == 0 {
		return "-"
	}
	parts := lo.Map(h, func(d Die, _ int) string {
		return strconv.Itoa(int(d))
	})
	if lo.SomeBy(h, func(d Die) bool { return d > 9 }) {
		return "(" + strings.Join(parts, ",") + ")"
	}
	return strings.Join(parts, "")
}

// ParseHand reads a hand written as "11156", "1,1,1,5,6", "1 1 1 5 6" or
// "(1, 1, 1, 5, 6)". Inside parentheses every field is a whole face, so
// "(12)" is a single twelve while "12" is a one and a two. The strings "",
// "-" and "()" are the empty hand.
func ParseHand(s string) (Hand, error) {
	s = strings.TrimSpace(s)
	listed := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	if listed {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" || s == "-" {
		return Hand{}, nil
	}
	var fields []string
	if listed || strings.ContainsAny(s, ", ") {
		fields = strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' '
		})
	} else {
		fields = strings.Split(s, "")
	}
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: bad die %q in hand %q", ErrInvalidInput, f, s)
		}
		vals = append(vals, v)
	}
	return fromInts(vals)
}

func fromInts(vals []int) (Hand, error) {
	h := make(Hand, 0, len(vals))
	for _, v := range vals {
		if v < 1 || v > MaxSides {
			return nil, fmt.Errorf("%w: die %d out of range 1-%d", ErrInvalidInput, v, MaxSides)
		}
		h = append(h, Die(v))
	}
	return h, nil
}

// MarshalYAML writes a hand as a plain list of ints.
func (h Hand) MarshalYAML() (interface{}, error) {
	return h.Ints(), nil
}

// MarshalJSON writes a hand as a list of ints; an empty or nil hand is [].
func (h Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Ints())
}

// UnmarshalJSON accepts either a list of ints or a string in any form
// ParseHand reads.
func (h *Hand) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := ParseHand(s)
		if err != nil {
			return err
		}
		*h = parsed
		return nil
	}
	var vals []int
	if err := json.Unmarshal(b, &vals); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	parsed, err := fromInts(vals)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
