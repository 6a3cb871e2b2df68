package arc

import (
	"fmt"
)

// Domain bounds of the cyclic unit domain. DomainMin and DomainMax
// are identified as the same point: an arc may wrap through the join.
const (
	DomainMin = 0.0
	DomainMax = 1.0
)

// Segment is one contiguous sub-segment of the unit domain.
// Invariant: DomainMin <= X1 < X2 <= DomainMax and Length == X2 - X1.
// A Segment is a plain value; it is replaced wholesale, never
// field-mutated in place.
//
// The classification below compares bounds against DomainMin and
// DomainMax exactly. Inputs that represent true domain endpoints must
// be snapped to exactly those values by the producer.
type Segment struct {
	X1     float64
	X2     float64
	Length float64
}

// New validates the bounds against the domain invariant and returns
// the segment.
func New(x1, x2 float64) (Segment, error) {
	s := Of(x1, x2)
	if err := s.Validate(); err != nil {
		return Segment{}, err
	}
	return s, nil
}

// Of returns the segment (x1, x2) without validation. Callers own the
// precondition x1 < x2.
func Of(x1, x2 float64) Segment {
	return Segment{X1: x1, X2: x2, Length: x2 - x1}
}

// Full returns the whole domain as one segment.
func Full() Segment {
	return Of(DomainMin, DomainMax)
}

// Zero returns the zero-length sentinel at DomainMin. It is the
// answer when no clear area remains and the initial value for the
// largest-leaf accumulator; it never enters a tree.
func Zero() Segment {
	return Segment{X1: DomainMin, X2: DomainMin}
}

func (s Segment) Validate() error {
	if s.X1 < DomainMin || s.X2 > DomainMax {
		return fmt.Errorf("segment %s outside domain (%g, %g)", s, DomainMin, DomainMax)
	}
	if s.X1 >= s.X2 {
		return fmt.Errorf("invalid segment %s: left bound must be smaller than right bound", s)
	}
	return nil
}

func (s Segment) IsZero() bool {
	return s.Length == 0
}

func (s Segment) String() string {
	return fmt.Sprintf("(%g, %g)", s.X1, s.X2)
}

// TrimmedLeft returns s with its left bound moved right to x.
func (s Segment) TrimmedLeft(x float64) Segment {
	return Of(x, s.X2)
}

// TrimmedRight returns s with its right bound moved left to x.
func (s Segment) TrimmedRight(x float64) Segment {
	return Of(s.X1, x)
}

// EntirelyBefore reports whether s lies entirely before other in the
// domain.
func (s Segment) EntirelyBefore(other Segment) bool {
	return s.X2 <= other.X1
}

// EntirelyAfter reports whether s lies entirely after other in the
// domain.
func (s Segment) EntirelyAfter(other Segment) bool {
	return other.X2 <= s.X1
}

// CoveredBy reports whether s is entirely contained within other.
func (s Segment) CoveredBy(other Segment) bool {
	return other.X1 <= s.X1 && s.X2 <= other.X2
}

// Covers reports whether s entirely contains other.
func (s Segment) Covers(other Segment) bool {
	return other.CoveredBy(s)
}

// InMiddleOf reports whether s is inside other, but not touching the
// edges of other.
func (s Segment) InMiddleOf(other Segment) bool {
	return other.X1 < s.X1 && s.X2 < other.X2
}

// OverlapsStartOf reports whether s entirely overlaps the start of
// other, but not all of other.
func (s Segment) OverlapsStartOf(other Segment) bool {
	return s.X1 <= other.X1 && other.X1 < s.X2 && s.X2 < other.X2
}

// OverlapsEndOf reports whether s entirely overlaps the end of
// other, but not all of other.
func (s Segment) OverlapsEndOf(other Segment) bool {
	return other.X1 < s.X1 && s.X1 < other.X2 && other.X2 <= s.X2
}

// Overlaps reports whether s and other share any interior point.
func (s Segment) Overlaps(other Segment) bool {
	return s.X1 < other.X2 && other.X1 < s.X2
}
