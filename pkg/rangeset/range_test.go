package rangeset

import (
	"testing"

	"github.com/tj/assert"
)

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		s         string
		want      Range
		expectErr bool
	}{
		"Normal":        {s: "100-199", want: Range{100, 199}},
		"Fractional":    {s: "2.5-10.75", want: Range{2.5, 10.75}},
		"ZeroLength":    {s: "5-5", want: Range{5, 5}},
		"NegativeStart": {s: "-3-7", want: Range{-3, 7}},
		"NegativeEnd":   {s: "-5--3", expectErr: true},
		"NoHyphen":      {s: "100", expectErr: true},
		"BadStart":      {s: "x-10", expectErr: true},
		"BadEnd":        {s: "10-x", expectErr: true},
		"Inverted":      {s: "199-100", expectErr: true},
		"Empty":         {s: "", expectErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseRange(tc.s)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRangeLess(t *testing.T) {
	cases := map[string]struct {
		a, b Range
		want bool
	}{
		"ByStart":       {a: Range{0, 10}, b: Range{1, 2}, want: true},
		"ByEnd":         {a: Range{0, 5}, b: Range{0, 10}, want: true},
		"Equal":         {a: Range{0, 5}, b: Range{0, 5}, want: false},
		"GreaterStart":  {a: Range{2, 3}, b: Range{1, 100}, want: false},
		"NegativeStart": {a: Range{-5, 0}, b: Range{0, 0}, want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.a.Less(tc.b); got != tc.want {
				t.Errorf("%s < %s: -want %t, +got: %t", tc.a, tc.b, tc.want, got)
			}
		})
	}
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "2.5-10", RangeFrom(2.5, 10).String())
	assert.Equal(t, "0-0", Range{}.String())
}

func TestRangeValid(t *testing.T) {
	assert.True(t, RangeFrom(0, 0).IsValid())
	assert.True(t, RangeFrom(-3, 7).IsValid())
	assert.False(t, RangeFrom(7, -3).IsValid())
	assert.True(t, Range{}.IsZero())
	assert.False(t, RangeFrom(0, 1).IsZero())
}
