package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/henderiw/arctable/pkg/arc"
)

// Record is one raw covering record as read from the input source.
// X1 and X2 are positions in the unit domain. A record with X1 > X2
// wraps through the 0/1 join point and denotes the union of (0, X2)
// and (X1, 1). X1 == X2 is invalid and is rejected at construction.
type Record struct {
	X1 float64
	X2 float64
}

func New(x1, x2 float64) (Record, error) {
	if x1 < arc.DomainMin || x1 > arc.DomainMax {
		return Record{}, fmt.Errorf("value %g outside domain (%g, %g)", x1, arc.DomainMin, arc.DomainMax)
	}
	if x2 < arc.DomainMin || x2 > arc.DomainMax {
		return Record{}, fmt.Errorf("value %g outside domain (%g, %g)", x2, arc.DomainMin, arc.DomainMax)
	}
	if x1 == x2 {
		return Record{}, fmt.Errorf("invalid record (%g, %g): bounds are equal", x1, x2)
	}
	return Record{X1: x1, X2: x2}, nil
}

// Parse parses a record from two whitespace-separated values.
func Parse(s string) (Record, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Record{}, fmt.Errorf("expected two values in record %q", s)
	}
	x1, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid value %q in record %q", fields[0], s)
	}
	x2, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid value %q in record %q", fields[1], s)
	}
	return New(x1, x2)
}

// IsWrap reports whether the record wraps through the join point.
func (r Record) IsWrap() bool {
	return r.X1 > r.X2
}

func (r Record) String() string {
	return fmt.Sprintf("(%g, %g)", r.X1, r.X2)
}

// Segments returns the component covering segments of r: one segment
// for a plain record, the (0, x2) and (x1, 1) pair for a wrap record.
// A wrap component that collapses to zero length (x2 at the domain
// minimum or x1 at the maximum) is omitted.
func (r Record) Segments() []arc.Segment {
	if !r.IsWrap() {
		return []arc.Segment{arc.Of(r.X1, r.X2)}
	}
	segs := make([]arc.Segment, 0, 2)
	if r.X2 > arc.DomainMin {
		segs = append(segs, arc.Of(arc.DomainMin, r.X2))
	}
	if r.X1 < arc.DomainMax {
		segs = append(segs, arc.Of(r.X1, arc.DomainMax))
	}
	return segs
}

// ReadAll reads covering records from rd, one per line. Blank lines
// and lines starting with # are skipped. Invalid records do not stop
// the scan; their errors are joined and returned alongside the valid
// records.
func ReadAll(rd io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(rd)

	var records []Record
	var errm error
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		r, err := Parse(s)
		if err != nil {
			errm = errors.Join(errm, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		errm = errors.Join(errm, err)
	}
	return records, errm
}
