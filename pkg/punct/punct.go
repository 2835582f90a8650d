// Package punct classifies punctuation characters, including the
// CJK fullwidth forms, into membership classes used when trimming
// or extending matched spans.
package punct

var (
	all   = runeSet(`'.;?!():-<>/"。；？！（）：-《》【】”“`)
	eos   = runeSet(`.?,，!。？！`)
	left  = runeSet(`"'(<《【“`)
	right = runeSet(`"')>》】”`)
)

func runeSet(s string) map[rune]struct{} {
	m := make(map[rune]struct{}, len(s))
	for _, r := range s {
		m[r] = struct{}{}
	}
	return m
}

// Is reports whether r is a punctuation character.
func Is(r rune) bool {
	_, ok := all[r]
	return ok
}

// IsEOS reports whether r ends a sentence.
func IsEOS(r rune) bool {
	_, ok := eos[r]
	return ok
}

// IsLeft reports whether r is an opening quote or bracket.
func IsLeft(r rune) bool {
	_, ok := left[r]
	return ok
}

// IsRight reports whether r is a closing quote or bracket.
func IsRight(r rune) bool {
	_, ok := right[r]
	return ok
}
