package postprocess

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/asr4memory/go-asr/internal/segment"
)

// UppercaseSentences upper-cases the first letter of each segment
// after the first, unless the preceding segment ends in a comma. A
// comma ending signals that the current segment continues a clause,
// so its casing is left alone. Mutates the slice in place; the first
// segment is never touched.
func UppercaseSentences(segs []segment.Segment) {
	for i := 1; i < len(segs); i++ {
		prev := segs[i-1].Text
		cur := segs[i].Text
		if prev == "" || cur == "" {
			continue
		}
		if strings.HasSuffix(prev, ",") {
			continue
		}

		r, size := utf8.DecodeRuneInString(cur)
		if unicode.IsLower(r) {
			segs[i].Text = string(unicode.ToUpper(r)) + cur[size:]
		}
	}
}
