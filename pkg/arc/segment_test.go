package arc

import (
	"testing"

	"github.com/tj/assert"
)

func TestNew(t *testing.T) {
	cases := map[string]struct {
		x1          float64
		x2          float64
		expectedErr bool
	}{
		"Normal":      {x1: 0.2, x2: 0.5},
		"FullDomain":  {x1: 0, x2: 1},
		"Equal":       {x1: 0.4, x2: 0.4, expectedErr: true},
		"Inverted":    {x1: 0.6, x2: 0.2, expectedErr: true},
		"BelowDomain": {x1: -0.1, x2: 0.5, expectedErr: true},
		"AboveDomain": {x1: 0.5, x2: 1.1, expectedErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := New(tc.x1, tc.x2)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.x1, s.X1)
			assert.Equal(t, tc.x2, s.X2)
			assert.Equal(t, tc.x2-tc.x1, s.Length)
		})
	}
}

func TestClassification(t *testing.T) {
	seg := Of(0.3, 0.7)

	cases := map[string]struct {
		cover          Segment
		entirelyBefore bool
		entirelyAfter  bool
		overlapsStart  bool
		inMiddle       bool
		overlapsEnd    bool
		covers         bool
		overlaps       bool
	}{
		"EntirelyBefore": {cover: Of(0.1, 0.3), entirelyBefore: true},
		"OverlapsStart":  {cover: Of(0.2, 0.5), overlapsStart: true, overlaps: true},
		"InMiddle":       {cover: Of(0.4, 0.6), inMiddle: true, overlaps: true},
		"OverlapsEnd":    {cover: Of(0.5, 0.8), overlapsEnd: true, overlaps: true},
		"Covers":         {cover: Of(0.2, 0.8), covers: true, overlaps: true},
		"ExactMatch":     {cover: Of(0.3, 0.7), covers: true, overlaps: true},
		"EntirelyAfter":  {cover: Of(0.7, 0.9), entirelyAfter: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.entirelyBefore, tc.cover.EntirelyBefore(seg))
			assert.Equal(t, tc.entirelyAfter, tc.cover.EntirelyAfter(seg))
			assert.Equal(t, tc.overlapsStart, tc.cover.OverlapsStartOf(seg))
			assert.Equal(t, tc.inMiddle, tc.cover.InMiddleOf(seg))
			assert.Equal(t, tc.overlapsEnd, tc.cover.OverlapsEndOf(seg))
			assert.Equal(t, tc.covers, seg.CoveredBy(tc.cover))
			assert.Equal(t, tc.covers, tc.cover.Covers(seg))
			assert.Equal(t, tc.overlaps, tc.cover.Overlaps(seg))
		})
	}
}

func TestTrim(t *testing.T) {
	seg := Of(0.25, 0.75)

	left := seg.TrimmedLeft(0.5)
	assert.Equal(t, Of(0.5, 0.75), left)

	right := seg.TrimmedRight(0.5)
	assert.Equal(t, Of(0.25, 0.5), right)
}

func TestSentinels(t *testing.T) {
	assert.Equal(t, 1.0, Full().Length)
	assert.False(t, Full().IsZero())
	assert.True(t, Zero().IsZero())
	assert.Equal(t, "(0.25, 0.5)", Of(0.25, 0.5).String())
}
