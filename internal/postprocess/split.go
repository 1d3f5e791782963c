package postprocess

import (
	"strings"
	"unicode/utf8"

	"github.com/asr4memory/go-asr/internal/segment"
)

// SplitLongSentences splits any segment whose text exceeds the
// configured length budget at the first comma past the budget,
// repeating on the remainder until no split point is left.
//
// The split timestamp is interpolated from the character-length ratio
// of the two parts, so the emitted spans tile the original
// [start, end] exactly, with no gap or overlap. Word lists are
// partitioned by counting whitespace-delimited words in the first
// part; this word-count split is an approximation and can misalign
// around punctuation-adjacent tokens.
//
// Lengths are counted in runes, not bytes, so the budget means the
// same thing for non-ASCII text. Segments at or under the budget,
// and over-long segments with no comma past the budget, pass through
// unchanged.
func SplitLongSentences(segs []segment.Segment, opts Options) []segment.Segment {
	maxLen := opts.maxSentenceLength()
	out := make([]segment.Segment, 0, len(segs))

	for _, seg := range segs {
		if utf8.RuneCountInString(seg.Text) <= maxLen {
			out = append(out, seg)
			continue
		}

		current := seg
		for {
			runes := []rune(current.Text)
			if len(runes) <= maxLen {
				out = append(out, current)
				break
			}

			splitIndex := commaAtOrAfter(runes, maxLen)
			if splitIndex == -1 {
				// No split point left: yield the remainder unsplit.
				out = append(out, current)
				break
			}

			part1 := strings.TrimSpace(string(runes[:splitIndex+1]))
			part2 := strings.TrimSpace(string(runes[splitIndex+1:]))

			ratio := float64(utf8.RuneCountInString(part1)) / float64(len(runes))
			splitTime := current.Start + (current.End-current.Start)*ratio

			words1, words2 := partitionWords(current.Words, part1)

			out = append(out, segment.Segment{
				Start:   current.Start,
				End:     splitTime,
				Text:    part1,
				Speaker: current.Speaker,
				Words:   words1,
			})

			current = segment.Segment{
				Start:   splitTime,
				End:     current.End,
				Text:    part2,
				Speaker: current.Speaker,
				Words:   words2,
			}
		}
	}

	return out
}

// commaAtOrAfter returns the index of the first comma at or after
// position from, or -1.
func commaAtOrAfter(runes []rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == ',' {
			return i
		}
	}
	return -1
}

// partitionWords splits a word list between the two text parts by the
// number of whitespace-delimited words in the first part. Entries are
// partitioned, never duplicated.
func partitionWords(words []segment.Word, part1 string) ([]segment.Word, []segment.Word) {
	if words == nil {
		return nil, nil
	}
	n := len(strings.Fields(part1))
	if n > len(words) {
		n = len(words)
	}
	return words[:n], words[n:]
}
