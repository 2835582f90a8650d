package punct

import (
	"testing"

	"github.com/tj/assert"
)

func TestIs(t *testing.T) {
	cases := map[string]struct {
		r        rune
		is       bool
		isEOS    bool
		isLeft   bool
		isRight  bool
	}{
		"Period":          {r: '.', is: true, isEOS: true},
		"Question":        {r: '?', is: true, isEOS: true},
		"Semicolon":       {r: ';', is: true},
		"OpenParen":       {r: '(', is: true, isLeft: true},
		"CloseParen":      {r: ')', is: true, isRight: true},
		"FullwidthStop":   {r: '。', is: true, isEOS: true},
		"FullwidthComma":  {r: '，', isEOS: true},
		"LeftCJKBracket":  {r: '《', is: true, isLeft: true},
		"RightCJKBracket": {r: '》', is: true, isRight: true},
		"Letter":          {r: 'a'},
		"Digit":           {r: '7'},
		"Space":           {r: ' '},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.is, Is(tc.r))
			assert.Equal(t, tc.isEOS, IsEOS(tc.r))
			assert.Equal(t, tc.isLeft, IsLeft(tc.r))
			assert.Equal(t, tc.isRight, IsRight(tc.r))
		})
	}
}
