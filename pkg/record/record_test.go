package record

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tj/assert"

	"github.com/henderiw/arctable/pkg/arc"
)

func TestParse(t *testing.T) {
	cases := map[string]struct {
		line        string
		expected    Record
		expectedErr bool
	}{
		"Normal":        {line: "0.2 0.5", expected: Record{X1: 0.2, X2: 0.5}},
		"Wrap":          {line: "0.7 0.3", expected: Record{X1: 0.7, X2: 0.3}},
		"Tabs":          {line: "0.25\t0.75", expected: Record{X1: 0.25, X2: 0.75}},
		"Endpoints":     {line: "0 1", expected: Record{X1: 0, X2: 1}},
		"OneValue":      {line: "0.5", expectedErr: true},
		"ThreeValues":   {line: "0.1 0.2 0.3", expectedErr: true},
		"NotANumber":    {line: "0.1 abc", expectedErr: true},
		"EqualBounds":   {line: "0.4 0.4", expectedErr: true},
		"OutsideDomain": {line: "0.5 1.5", expectedErr: true},
		"Negative":      {line: "-0.2 0.5", expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r, err := Parse(tc.line)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, r)
		})
	}
}

func TestSegments(t *testing.T) {
	cases := map[string]struct {
		record   Record
		wrap     bool
		expected []arc.Segment
	}{
		"Plain": {
			record:   Record{X1: 0.2, X2: 0.5},
			expected: []arc.Segment{arc.Of(0.2, 0.5)},
		},
		"Wrap": {
			record:   Record{X1: 0.7, X2: 0.3},
			wrap:     true,
			expected: []arc.Segment{arc.Of(0, 0.3), arc.Of(0.7, 1)},
		},
		"WrapToJoin": {
			// wraps to exactly the join point: the zero-length
			// component is dropped
			record:   Record{X1: 0.7, X2: 0},
			wrap:     true,
			expected: []arc.Segment{arc.Of(0.7, 1)},
		},
		"WrapFromJoin": {
			record:   Record{X1: 1, X2: 0.3},
			wrap:     true,
			expected: []arc.Segment{arc.Of(0, 0.3)},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.wrap, tc.record.IsWrap())
			if diff := cmp.Diff(tc.expected, tc.record.Segments()); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadAll(t *testing.T) {
	input := strings.Join([]string{
		"# covering records",
		"0.2 0.5",
		"",
		"0.7 0.3",
		"   ",
	}, "\n")

	records, err := ReadAll(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, []Record{{X1: 0.2, X2: 0.5}, {X1: 0.7, X2: 0.3}}, records)
}

func TestReadAllInvalidLines(t *testing.T) {
	input := strings.Join([]string{
		"0.2 0.5",
		"0.4 0.4",
		"not a record",
		"0.6 0.9",
	}, "\n")

	records, err := ReadAll(strings.NewReader(input))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "line 3")
	// valid records survive alongside the joined errors
	assert.Equal(t, []Record{{X1: 0.2, X2: 0.5}, {X1: 0.6, X2: 0.9}}, records)
}
