package main

import (
	"testing"

	"github.com/henderiw/rangeset/pkg/rangeset"
	"github.com/tj/assert"
)

func TestParseCandidate(t *testing.T) {
	cases := map[string]struct {
		line        string
		wantSegment int64
		wantRange   rangeset.Range
		wantLabels  map[string]string
		expectErr   bool
	}{
		"Normal": {
			line:        "0.5 10 3",
			wantSegment: 3,
			wantRange:   rangeset.RangeFrom(0.5, 10),
		},
		"WithLabels": {
			line:        "0 5 1 speaker=a,channel=2",
			wantSegment: 1,
			wantRange:   rangeset.RangeFrom(0, 5),
			wantLabels:  map[string]string{"speaker": "a", "channel": "2"},
		},
		"TooFewFields":  {line: "0 5", expectErr: true},
		"TooManyFields": {line: "0 5 1 a=b extra", expectErr: true},
		"BadStart":      {line: "x 5 1", expectErr: true},
		"BadEnd":        {line: "0 x 1", expectErr: true},
		"BadSegment":    {line: "0 5 x", expectErr: true},
		"BadLabels":     {line: "0 5 1 ===", expectErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			segment, rng, lbls, err := parseCandidate(tc.line)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantSegment, segment)
			assert.Equal(t, tc.wantRange, rng)
			for k, v := range tc.wantLabels {
				assert.Equal(t, v, lbls[k])
			}
		})
	}
}
