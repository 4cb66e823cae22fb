package parser

// IFS is the fixed, ordered list of conditional-opener phrases. A
// conditional's condition keyword must match one of these as a literal
// prefix.
var IFS = []string{
	"given that",
	"assuming that",
	"conceding that",
	"granted that",
	"in case that",
	"on the assumption that",
	"on the occasion that",
	"supposing that",
	"whenever",
	"wherever",
	"with the condition that",
}

// ELSES is the fixed, ordered list of else-opener phrases.
var ELSES = []string{
	"otherwise",
	"differently",
	"any other way",
	"contrarily",
	"diversely",
	"elseways",
	"if not",
	"in different circumstances",
	"on the other hand",
	"or else",
	"or then",
	"under other conditions",
	"variously",
}

// phraseRotation tracks which variants of a fixed phrase list have been
// consumed during the current parse. A variant may not be reused until
// every variant in the list has been used at least once, at which point the
// used set clears and the cycle restarts.
type phraseRotation struct {
	variants []string
	used     map[int]bool
}

func newPhraseRotation(variants []string) *phraseRotation {
	return &phraseRotation{variants: variants, used: make(map[int]bool)}
}

// tryPhrase attempts to match one of the rotation's variants as a literal
// prefix at the parser's current position, trying variants in declared
// order and taking the first prefix match. On a match it consumes the
// phrase and any trailing inline space. Reusing a variant before its list
// has cycled is a hard parse error.
func (p *Parser) tryPhrase(r *phraseRotation) (bool, error) {
	if len(r.used) == len(r.variants) {
		r.used = make(map[int]bool)
	}
	for idx, phrase := range r.variants {
		if p.peekLiteral(phrase) {
			if r.used[idx] {
				return false, p.errorf("phrase %q reused before its rotation completed", phrase)
			}
			r.used[idx] = true
			p.consumeLiteral(phrase)
			p.skipInlineSpace()
			return true, nil
		}
	}
	return false, nil
}
